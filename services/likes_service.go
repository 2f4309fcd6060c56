package services

import (
	"context"
	"fmt"
	"log"

	"pawmate_server/models"
)

// MatchReveal is a drained mutual match: the reciprocating profile plus the
// contact handle the match unlocked.
type MatchReveal struct {
	Profile       models.PetProfile `json:"profile"`
	ContactHandle string            `json:"contactHandle,omitempty"`
}

// InboxEvent is the engine's answer to a likes inbox interaction
type InboxEvent struct {
	Kind    string             `json:"kind"`
	Message string             `json:"message,omitempty"`
	Matches []MatchReveal      `json:"matches,omitempty"`
	Liker   *models.PetProfile `json:"liker,omitempty"`
}

// LikesInboxService runs the per-user cursor over inbound likes
type LikesInboxService struct {
	Profiles ProfileStore
	Ledger   RelationshipLedger
	Notifier Notifier
	Sessions *SessionStore
}

// currentLiker returns the like entry under judgment, skipping entries whose
// sender profile was deleted.
func (ls *LikesInboxService) currentLiker(ctx context.Context, sess *likesSession) (*models.PetProfile, bool) {
	for sess.index < len(sess.entries) {
		rec := sess.entries[sess.index]
		profile, err := ls.Profiles.GetProfile(ctx, rec.ActorID)
		if err == nil && profile != nil {
			return profile, true
		}
		if err != nil {
			log.Printf("⚠️ Skipping liker %s, profile lookup failed: %v", rec.ActorID, err)
		}
		sess.index++
	}
	return nil, false
}

// Open drains the user's unseen mutual matches, then opens a cursor over the
// remaining inbound likes. The drain is eager and complete: every match is
// revealed and marked seen before any like is shown.
func (ls *LikesInboxService) Open(ctx context.Context, userID string) (*InboxEvent, error) {
	unseen, err := ls.Ledger.UnseenMutualMatches(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mutual matches: %w", err)
	}

	var drained []MatchReveal
	for _, rec := range unseen {
		matched, err := ls.Profiles.GetProfile(ctx, rec.ActorID)
		if err != nil {
			return nil, err
		}
		if matched != nil {
			drained = append(drained, MatchReveal{Profile: *matched, ContactHandle: matched.ContactHandle})
		}
		// marked seen even when the matched profile is gone, so the tombstone
		// does not resurface on every visit
		if err := ls.Ledger.MarkMatchSeen(ctx, rec.ActorID, rec.TargetID); err != nil {
			return nil, err
		}
	}

	likes, err := ls.Ledger.InboundLikes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch inbound likes: %w", err)
	}

	us := ls.Sessions.user(userID)
	us.mu.Lock()
	defer us.mu.Unlock()

	if len(likes) == 0 {
		us.likes = nil
		message := "You have no likes yet"
		if len(drained) > 0 {
			message = "That was all of them"
		}
		return &InboxEvent{Kind: EventNoLikes, Message: message, Matches: drained}, nil
	}

	sess := &likesSession{entries: likes}
	us.likes = sess
	us.swipe = nil

	liker, ok := ls.currentLiker(ctx, sess)
	if !ok {
		us.likes = nil
		message := "You have no likes yet"
		if len(drained) > 0 {
			message = "That was all of them"
		}
		return &InboxEvent{Kind: EventNoLikes, Message: message, Matches: drained}, nil
	}

	log.Printf("💌 %s opened their likes inbox: %d likes, %d matches drained", userID, len(likes), len(drained))
	return &InboxEvent{Kind: EventLikeEntry, Matches: drained, Liker: liker}, nil
}

// React applies reciprocate/skip/stop to the like entry on display. likerID
// names the sender being judged and is validated against the cursor.
func (ls *LikesInboxService) React(ctx context.Context, userID, action, likerID string) (*InboxEvent, error) {
	us := ls.Sessions.user(userID)
	us.mu.Lock()
	defer us.mu.Unlock()

	sess := us.likes
	if sess == nil {
		return &InboxEvent{Kind: EventNotBrowsing, Message: "Your likes inbox is not open"}, nil
	}

	if action == models.InboxStop {
		us.likes = nil
		return &InboxEvent{Kind: EventStopped, Message: "You stopped browsing likes"}, nil
	}

	liker, ok := ls.currentLiker(ctx, sess)
	if !ok {
		us.likes = nil
		return &InboxEvent{Kind: EventInboxExhausted, Message: "That was all of your likes"}, nil
	}

	switch action {
	case models.InboxReciprocate:
		if likerID != liker.UserID {
			return &InboxEvent{Kind: EventStaleTarget, Message: "That profile is not the one on display"}, nil
		}

		requester, err := ls.Profiles.GetProfile(ctx, userID)
		if err != nil {
			return nil, err
		}
		if requester == nil {
			// requester's own profile vanished mid-session; nothing to reveal
			us.likes = nil
			return &InboxEvent{Kind: EventStopped, Message: "Your profile no longer exists"}, nil
		}

		if err := ls.Ledger.Reciprocate(ctx, userID, likerID); err != nil {
			// cursor untouched: the action can be retried
			return nil, err
		}

		text := "🎉 It's a mutual match!"
		if requester.ContactHandle != "" {
			text = fmt.Sprintf("🎉 It's a mutual match! Contact: @%s", requester.ContactHandle)
		}
		notifyBestEffort(ls.Notifier, liker.NotifyChannel, text)

		sess.index++
		next, ok := ls.currentLiker(ctx, sess)
		if !ok {
			us.likes = nil
			return &InboxEvent{Kind: EventInboxExhausted, Message: "It's a match! That was all of your likes"}, nil
		}
		return &InboxEvent{Kind: EventMatched, Message: "It's a match!", Liker: next}, nil

	case models.InboxSkip:
		if likerID != liker.UserID {
			return &InboxEvent{Kind: EventStaleTarget, Message: "That profile is not the one on display"}, nil
		}

		// the like record stays for a future inbox visit
		sess.index++
		next, ok := ls.currentLiker(ctx, sess)
		if !ok {
			us.likes = nil
			return &InboxEvent{Kind: EventInboxExhausted, Message: "That was all of your likes"}, nil
		}
		return &InboxEvent{Kind: EventLikeEntry, Liker: next}, nil

	default:
		return nil, fmt.Errorf("invalid inbox action '%s'", action)
	}
}
