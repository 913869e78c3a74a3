package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/bizcopilot/backend/internal/chat"
	"github.com/bizcopilot/backend/internal/common"
	"github.com/bizcopilot/backend/internal/modes"
	"github.com/bizcopilot/backend/internal/store"
)

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("api: chat decode failed", "error", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Message == "" {
		logger.Warn("api: chat message missing")
		writeError(w, http.StatusBadRequest, fmt.Errorf("message required"))
		return
	}
	mode, err := modes.Parse(req.Mode)
	if err != nil {
		logger.Warn("api: chat mode rejected", "mode", req.Mode)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	logger.Info("api: chat request received", "mode", mode, "message_length", len(req.Message), "conversation_id", req.ConversationID)

	resp, err := s.chat.Respond(r.Context(), chat.Request{
		Message:        req.Message,
		Mode:           mode,
		ConversationID: req.ConversationID,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	logger.Info("api: chat completion succeeded", "conversation_id", resp.ConversationID)
	writeJSON(w, http.StatusOK, chatResponse{
		ConversationID: resp.ConversationID,
		Answer:         resp.Answer,
		Messages:       toMessageDTOs(resp.Messages),
	})
}
