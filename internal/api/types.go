package api

import (
	"time"

	"github.com/bizcopilot/backend/internal/store"
)

type chatRequest struct {
	Message        string `json:"message"`
	Mode           string `json:"mode"`
	ConversationID string `json:"conversation_id,omitempty"`
}

type chatResponse struct {
	ConversationID string       `json:"conversation_id"`
	Answer         string       `json:"answer"`
	Messages       []messageDTO `json:"messages"`
}

type messageDTO struct {
	ID             int64     `json:"id"`
	ConversationID string    `json:"conversation_id"`
	Role           string    `json:"role"`
	Content        string    `json:"content"`
	Mode           string    `json:"mode,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type healthResponse struct {
	Status    string `json:"status"`
	LLMStatus string `json:"llm_status"`
}

func toMessageDTOs(messages []store.Message) []messageDTO {
	out := make([]messageDTO, 0, len(messages))
	for _, msg := range messages {
		out = append(out, messageDTO{
			ID:             msg.ID,
			ConversationID: msg.ConversationID,
			Role:           msg.Role,
			Content:        msg.Content,
			Mode:           msg.Mode,
			CreatedAt:      msg.CreatedAt,
		})
	}
	return out
}
