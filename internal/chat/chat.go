// Package chat implements the conversational turn flow: resolve the
// conversation, persist the user turn, replay history to the model and
// persist the answer.
package chat

import (
	"context"
	"fmt"

	"github.com/bizcopilot/backend/internal/common"
	"github.com/bizcopilot/backend/internal/llm"
	"github.com/bizcopilot/backend/internal/modes"
	"github.com/bizcopilot/backend/internal/store"
)

const defaultUserID = "default_user"

// Request is one inbound chat turn.
type Request struct {
	Message        string
	Mode           modes.Mode
	ConversationID string
}

// Response carries the assistant answer plus the persisted transcript
// (empty when history is disabled).
type Response struct {
	ConversationID string
	Answer         string
	Messages       []store.Message
}

type Service struct {
	gateway     *llm.Gateway
	store       *store.Store
	saveHistory bool
}

func NewService(gateway *llm.Gateway, st *store.Store, saveHistory bool) *Service {
	return &Service{gateway: gateway, store: st, saveHistory: saveHistory}
}

// Assemble produces the ordered role/content list replayed to the model.
// With history disabled it contains only the new user message; otherwise it
// is the persisted sequence, which already includes the just-appended user
// turn.
func Assemble(history []store.Message, newMessage string, historyEnabled bool) []llm.Message {
	if !historyEnabled || len(history) == 0 {
		return []llm.Message{{Role: llm.RoleUser, Content: newMessage}}
	}
	out := make([]llm.Message, 0, len(history))
	for _, msg := range history {
		out = append(out, llm.Message{Role: msg.Role, Content: msg.Content})
	}
	return out
}

// Respond executes one chat turn. An unknown conversation identifier is
// reported as store.ErrNotFound; an absent one creates a new conversation.
func (s *Service) Respond(ctx context.Context, req Request) (*Response, error) {
	logger := common.Logger()
	var conversation *store.Conversation
	var err error
	if req.ConversationID != "" {
		conversation, err = s.store.GetConversation(ctx, req.ConversationID)
		if err != nil {
			return nil, err
		}
	} else {
		conversation, err = s.store.CreateConversation(ctx, defaultUserID)
		if err != nil {
			return nil, fmt.Errorf("create conversation: %w", err)
		}
		logger.Info("chat: conversation created", "conversation_id", conversation.ID)
	}

	if s.saveHistory {
		_, err = s.store.AppendMessage(ctx, store.Message{
			ConversationID: conversation.ID,
			Role:           store.RoleUser,
			Content:        req.Message,
			Mode:           req.Mode.String(),
		})
		if err != nil {
			return nil, fmt.Errorf("persist user turn: %w", err)
		}
	}

	var history []store.Message
	if s.saveHistory {
		history, err = s.store.MessagesForConversation(ctx, conversation.ID)
		if err != nil {
			return nil, fmt.Errorf("load history: %w", err)
		}
	}
	messages := Assemble(history, req.Message, s.saveHistory)

	logger.Debug("chat: invoking model", "conversation_id", conversation.ID, "mode", req.Mode, "messages", len(messages))
	answer, err := s.gateway.Generate(ctx, req.Mode.SystemPrompt(), messages)
	if err != nil {
		return nil, err
	}

	var transcript []store.Message
	if s.saveHistory {
		_, err = s.store.AppendMessage(ctx, store.Message{
			ConversationID: conversation.ID,
			Role:           store.RoleAssistant,
			Content:        answer,
			Mode:           req.Mode.String(),
		})
		if err != nil {
			return nil, fmt.Errorf("persist assistant turn: %w", err)
		}
		transcript, err = s.store.MessagesForConversation(ctx, conversation.ID)
		if err != nil {
			return nil, fmt.Errorf("load transcript: %w", err)
		}
	}

	return &Response{
		ConversationID: conversation.ID,
		Answer:         answer,
		Messages:       transcript,
	}, nil
}
