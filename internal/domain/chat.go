package domain

// Role tags the author of a conversation turn.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Turn is a single immutable message in a conversation.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// TurnState tracks one submission through the chat pipeline.
type TurnState string

const (
	TurnIdle          TurnState = "idle"
	TurnAwaitingReply TurnState = "awaiting_reply"
	TurnRendered      TurnState = "rendered"
	TurnFailed        TurnState = "failed"
	// TurnDiscarded means the reply arrived after the view was closed.
	TurnDiscarded TurnState = "discarded"
)
