package services

import (
	"context"

	"pawmate_server/models"
)

// Store interfaces consumed by the discovery and session engines. The
// DynamoDB-backed services below implement them; tests substitute
// in-memory fakes.

// ProfileStore is the durable source of truth for pet profiles
type ProfileStore interface {
	// GetProfile returns (nil, nil) when no profile exists for the user
	GetProfile(ctx context.Context, userID string) (*models.PetProfile, error)
	GetAllProfilesExcept(ctx context.Context, userID string) ([]models.PetProfile, error)
	SaveProfile(ctx context.Context, profile models.PetProfile) error
	UpdateProfileFields(ctx context.Context, userID string, updates map[string]interface{}) (*models.PetProfile, error)
	DeleteProfile(ctx context.Context, userID string) error
}

// RelationshipLedger is the durable log of directed reactions between users
type RelationshipLedger interface {
	// UpsertReaction writes the authoritative record for (actorID, targetID)
	UpsertReaction(ctx context.Context, actorID, targetID, state string) error
	// ExcludedIDs returns every user the given user has a record with, in either direction
	ExcludedIDs(ctx context.Context, userID string) (map[string]struct{}, error)
	// InboundLikes returns records where the user is the target and state is like
	InboundLikes(ctx context.Context, userID string) ([]models.RelationshipRecord, error)
	// UnseenMutualMatches returns mutual_match records targeting the user with seenByTarget false
	UnseenMutualMatches(ctx context.Context, userID string) ([]models.RelationshipRecord, error)
	// MarkMatchSeen flips seenByTarget on the (actorID, targetID) record
	MarkMatchSeen(ctx context.Context, actorID, targetID string) error
	// Reciprocate upgrades likerID's like into a mutual match owned by userID,
	// inserting the mutual_match record and deleting the original like as one
	// durable unit.
	Reciprocate(ctx context.Context, userID, likerID string) error
}

// ReportLog stores complaints for the moderation workflow
type ReportLog interface {
	AddReport(ctx context.Context, report models.Report) error
	// GetReport returns (nil, nil) when no report exists with the id
	GetReport(ctx context.Context, reportID string) (*models.Report, error)
	ListReports(ctx context.Context) ([]models.Report, error)
	DeleteReport(ctx context.Context, reportID string) error
	DeleteReportsAgainst(ctx context.Context, reportedID string) error
}

// Notifier pushes a text notification to a user's channel. Delivery is
// best-effort: callers log failures and move on.
type Notifier interface {
	Notify(channelRef, text string) error
}
