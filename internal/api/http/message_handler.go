package http

import (
	"encoding/json"
	"net/http"

	"studygroups-backend/internal/domain"
	"studygroups-backend/internal/service"
)

type MessageHandler struct {
	msgSvc service.MessageService
}

func NewMessageHandler(msgSvc service.MessageService) *MessageHandler {
	return &MessageHandler{msgSvc: msgSvc}
}

func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := groupID(r)
	if !ok {
		writeBadRequest(w, "invalid group id")
		return
	}
	msgs, err := h.msgSvc.List(r.Context(), id, userID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	if msgs == nil {
		msgs = []domain.Message{}
	}
	writeJSON(w, http.StatusOK, msgs)
}

func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	id, ok := groupID(r)
	if !ok {
		writeBadRequest(w, "invalid group id")
		return
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if body.Message == "" {
		writeBadRequest(w, "message is required")
		return
	}

	msg, err := h.msgSvc.Send(r.Context(), id, userID(r), body.Message)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}
