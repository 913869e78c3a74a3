package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound reports a lookup for a conversation that does not exist.
var ErrNotFound = errors.New("conversation not found")

// CreateConversation inserts a new conversation owned by userID and returns
// it. The identifier is an opaque UUID generated here.
func (s *Store) CreateConversation(ctx context.Context, userID string) (*Conversation, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("store not initialised")
	}
	if strings.TrimSpace(userID) == "" {
		userID = "default_user"
	}
	conversation := Conversation{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversations (id, user_id, created_at) VALUES (?, ?, ?)`,
		conversation.ID, conversation.UserID, conversation.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert conversation: %w", err)
	}
	return &conversation, nil
}

// GetConversation retrieves a conversation by identifier. A miss is reported
// as ErrNotFound.
func (s *Store) GetConversation(ctx context.Context, id string) (*Conversation, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("store not initialised")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrNotFound
	}
	var conversation Conversation
	if err := s.db.GetContext(ctx, &conversation, `SELECT * FROM conversations WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select conversation: %w", err)
	}
	return &conversation, nil
}

// AppendMessage persists one turn at the tail of a conversation and returns
// the stored record with its assigned identifier.
func (s *Store) AppendMessage(ctx context.Context, msg Message) (*Message, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("store not initialised")
	}
	if strings.TrimSpace(msg.ConversationID) == "" {
		return nil, errors.New("conversation id required")
	}
	if msg.Role != RoleUser && msg.Role != RoleAssistant {
		return nil, fmt.Errorf("invalid message role %q", msg.Role)
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (conversation_id, role, content, mode, created_at) VALUES (?, ?, ?, ?, ?)`,
		msg.ConversationID, msg.Role, msg.Content, msg.Mode, msg.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("message id: %w", err)
	}
	msg.ID = id
	return &msg, nil
}

// MessagesForConversation returns every persisted turn of a conversation in
// creation order.
func (s *Store) MessagesForConversation(ctx context.Context, conversationID string) ([]Message, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("store not initialised")
	}
	messages := []Message{}
	if err := s.db.SelectContext(ctx, &messages,
		`SELECT * FROM messages WHERE conversation_id = ? ORDER BY created_at, id`, conversationID); err != nil {
		return nil, fmt.Errorf("select messages: %w", err)
	}
	return messages, nil
}
