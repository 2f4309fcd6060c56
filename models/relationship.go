package models

// RelationshipRecord is a directed reaction edge between two users.
// At most one authoritative record exists per (actorId, targetId) pair;
// a later write for the same pair replaces the state.
type RelationshipRecord struct {
	ActorID      string `dynamodbav:"actorId" json:"actorId"`           // ✅ Partition Key: who reacted
	TargetID     string `dynamodbav:"targetId" json:"targetId"`         // ✅ Sort Key: who was reacted to
	State        string `dynamodbav:"state" json:"state"`               // like, dislike, mutual_match
	SeenByTarget bool   `dynamodbav:"seenByTarget" json:"seenByTarget"` // Set when the target drains the match from their inbox
	CreatedAt    string `dynamodbav:"createdAt" json:"createdAt"`       // Timestamp of the last state change
}

// RelationshipsTable is the DynamoDB table name for relationship records
const RelationshipsTable = "Relationships"

// TargetIDIndex is the GSI for querying records where the user is the target
const TargetIDIndex = "targetId-index"
