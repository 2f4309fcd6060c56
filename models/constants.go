package models

// ✅ Relationship states (like, dislike, mutual_match)
const (
	StateLike        = "like"
	StateDislike     = "dislike"
	StateMutualMatch = "mutual_match"
)

// ✅ Discovery modes
const (
	ModeNearby = "nearby"
	ModeAll    = "all"
)

// ✅ Swipe reactions accepted while browsing
const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
	ReactionStop    = "stop"
	ReactionReport  = "report"
)

// ✅ Likes inbox actions
const (
	InboxReciprocate = "reciprocate"
	InboxSkip        = "skip"
	InboxStop        = "stop"
)

// ValidReactionStates are the states a plain swipe reaction may write.
// The like -> mutual_match upgrade is not one of them: it only happens
// through the transactional reciprocation on the ledger.
var ValidReactionStates = map[string]bool{
	StateLike:    true,
	StateDislike: true,
}
