package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"pawmate_server/models"

	"github.com/google/uuid"
)

// Response kinds shared by the swipe and likes inbox engines
const (
	EventCandidate      = "candidate"
	EventNoCandidates   = "no_candidates"
	EventStopped        = "stopped"
	EventExhausted      = "exhausted"
	EventNotBrowsing    = "not_browsing"
	EventAwaitingReason = "awaiting_reason"
	EventReportFiled    = "report_filed"
	EventStaleTarget    = "stale_target"
	EventLikeEntry      = "like_entry"
	EventNoLikes        = "no_likes"
	EventInboxExhausted = "inbox_exhausted"
	EventMatched        = "matched"
)

// SwipeEvent is the engine's answer to a swipe interaction
type SwipeEvent struct {
	Kind      string         `json:"kind"`
	Message   string         `json:"message,omitempty"`
	Candidate *CandidateView `json:"candidate,omitempty"`
}

// SwipeService runs the per-user discovery session state machine
type SwipeService struct {
	Candidates *CandidateService
	Profiles   ProfileStore
	Ledger     RelationshipLedger
	Reports    ReportLog
	Notifier   Notifier
	Sessions   *SessionStore
}

// notifyBestEffort pushes a text to a channel, logging and swallowing failure.
// Delivery never blocks or rolls back the reaction that triggered it.
func notifyBestEffort(n Notifier, channelRef, text string) {
	if channelRef == "" {
		return
	}
	if err := n.Notify(channelRef, text); err != nil {
		log.Printf("⚠️ Notification to channel %s dropped: %v", channelRef, err)
	}
}

// currentCandidate returns the entry under judgment, skipping entries whose
// profile was deleted mid-session.
func (ss *SwipeService) currentCandidate(ctx context.Context, sess *swipeSession) (*CandidateView, bool) {
	for sess.index < len(sess.entries) {
		view := sess.entries[sess.index]
		profile, err := ss.Profiles.GetProfile(ctx, view.Profile.UserID)
		if err == nil && profile != nil {
			return &view, true
		}
		if err != nil {
			log.Printf("⚠️ Skipping candidate %s, profile lookup failed: %v", view.Profile.UserID, err)
		}
		sess.index++
	}
	return nil, false
}

// Start materializes a fresh candidate list for the user and shows the first
// card. Any cursor the user already had is discarded without warning.
func (ss *SwipeService) Start(ctx context.Context, userID, mode string) (*SwipeEvent, error) {
	if mode != models.ModeNearby && mode != models.ModeAll {
		return nil, fmt.Errorf("invalid discovery mode '%s'", mode)
	}

	candidates, err := ss.Candidates.ListCandidates(ctx, userID, mode)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return &SwipeEvent{Kind: EventNoCandidates, Message: "No candidates available right now"}, nil
	}

	us := ss.Sessions.user(userID)
	us.mu.Lock()
	defer us.mu.Unlock()

	sess := &swipeSession{entries: candidates, mode: mode}
	us.swipe = sess
	us.likes = nil

	view, ok := ss.currentCandidate(ctx, sess)
	if !ok {
		us.swipe = nil
		return &SwipeEvent{Kind: EventNoCandidates, Message: "No candidates available right now"}, nil
	}

	log.Printf("🔎 %s started browsing (%s), %d candidates", userID, mode, len(candidates))
	return &SwipeEvent{Kind: EventCandidate, Candidate: view}, nil
}

// React applies a like/dislike/stop to the candidate currently on display.
// targetID names the candidate being judged and is validated against the
// cursor, so a stale client can never react to the wrong card.
func (ss *SwipeService) React(ctx context.Context, userID, action, targetID string) (*SwipeEvent, error) {
	us := ss.Sessions.user(userID)
	us.mu.Lock()
	defer us.mu.Unlock()

	sess := us.swipe
	if sess == nil {
		return &SwipeEvent{Kind: EventNotBrowsing, Message: "You are not browsing profiles"}, nil
	}
	if sess.awaitingReason {
		return &SwipeEvent{Kind: EventAwaitingReason, Message: "Send the report reason first"}, nil
	}

	if action == models.ReactionStop {
		us.swipe = nil
		return &SwipeEvent{Kind: EventStopped, Message: "You stopped browsing profiles"}, nil
	}

	view, ok := ss.currentCandidate(ctx, sess)
	if !ok {
		us.swipe = nil
		return &SwipeEvent{Kind: EventExhausted, Message: "No more candidates"}, nil
	}

	switch action {
	case models.ReactionReport:
		sess.awaitingReason = true
		return &SwipeEvent{Kind: EventAwaitingReason, Message: "Describe the reason for your report"}, nil

	case models.ReactionLike, models.ReactionDislike:
		if targetID != view.Profile.UserID {
			return &SwipeEvent{Kind: EventStaleTarget, Message: "That profile is not the one on display"}, nil
		}

		if err := ss.Ledger.UpsertReaction(ctx, userID, targetID, action); err != nil {
			// cursor untouched: the reaction can be retried
			return nil, err
		}

		if action == models.ReactionLike {
			notifyBestEffort(ss.Notifier, view.Profile.NotifyChannel, "Someone liked your pet's profile! 💌")
		}

		sess.index++
		next, ok := ss.currentCandidate(ctx, sess)
		if !ok {
			us.swipe = nil
			return &SwipeEvent{Kind: EventExhausted, Message: "No more candidates"}, nil
		}
		return &SwipeEvent{Kind: EventCandidate, Candidate: next}, nil

	default:
		return nil, fmt.Errorf("invalid reaction '%s'", action)
	}
}

// SubmitReport completes a pending report: it records the complaint, forces a
// dislike on the reported candidate and resumes browsing without skipping or
// re-showing anyone.
func (ss *SwipeService) SubmitReport(ctx context.Context, userID, reason string) (*SwipeEvent, error) {
	us := ss.Sessions.user(userID)
	us.mu.Lock()
	defer us.mu.Unlock()

	sess := us.swipe
	if sess == nil || !sess.awaitingReason {
		return &SwipeEvent{Kind: EventNotBrowsing, Message: "You are not currently browsing"}, nil
	}

	view, ok := ss.currentCandidate(ctx, sess)
	if !ok {
		us.swipe = nil
		return &SwipeEvent{Kind: EventExhausted, Message: "No more candidates"}, nil
	}

	report := models.Report{
		ReportID:    uuid.NewString(),
		ReporterID:  userID,
		ReportedID:  view.Profile.UserID,
		Description: reason,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := ss.Reports.AddReport(ctx, report); err != nil {
		// still awaiting: the user may resend the reason
		return nil, err
	}
	if err := ss.Ledger.UpsertReaction(ctx, userID, view.Profile.UserID, models.StateDislike); err != nil {
		return nil, err
	}

	log.Printf("🚩 Report filed by %s against %s", userID, view.Profile.UserID)

	sess.awaitingReason = false
	sess.index++
	next, ok := ss.currentCandidate(ctx, sess)
	if !ok {
		us.swipe = nil
		return &SwipeEvent{Kind: EventExhausted, Message: "Thanks, we will review your report. No more candidates"}, nil
	}
	return &SwipeEvent{Kind: EventReportFiled, Message: "Thanks, we will review your report", Candidate: next}, nil
}
