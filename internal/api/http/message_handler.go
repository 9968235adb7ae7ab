package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"quickgig-backend/internal/domain"
	"quickgig-backend/internal/service"
)

type MessageHandler struct {
	msgSvc service.MessageService
}

func NewMessageHandler(msgSvc service.MessageService) *MessageHandler {
	return &MessageHandler{msgSvc: msgSvc}
}

type sendMessageRequest struct {
	ReceiverID domain.UserID `json:"receiver_id"`
	Content    string        `json:"content"`
}

func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.ReceiverID == "" || req.Content == "" {
		writeBadRequest(w, "receiver_id and content are required")
		return
	}

	msg, err := h.msgSvc.Send(r.Context(), userIDFrom(r.Context()), req.ReceiverID, req.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

func (h *MessageHandler) Conversation(w http.ResponseWriter, r *http.Request) {
	otherID := domain.UserID(mux.Vars(r)["userID"])
	msgs, err := h.msgSvc.Conversation(r.Context(), userIDFrom(r.Context()), otherID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

func (h *MessageHandler) ListConversations(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.msgSvc.ListConversations(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.msgSvc.MarkRead(r.Context(), userIDFrom(r.Context()), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
