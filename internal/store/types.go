package store

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Conversation is the owner record of an append-only message log.
type Conversation struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Message is one persisted turn of a conversation. Mode records which
// assistant mode produced the turn and may be empty.
type Message struct {
	ID             int64     `db:"id" json:"id"`
	ConversationID string    `db:"conversation_id" json:"conversation_id"`
	Role           string    `db:"role" json:"role"`
	Content        string    `db:"content" json:"content"`
	Mode           string    `db:"mode" json:"mode,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
