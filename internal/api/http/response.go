package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"studygroups-backend/internal/domain"
	"studygroups-backend/internal/logger"
	"studygroups-backend/internal/service"
)

// Error codes the clients key on. CodeSessionExpired in particular is the
// fatal signal that stops the chat poller.
const (
	CodeSessionExpired     = "SESSION_EXPIRED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeBadRequest         = "BAD_REQUEST"
	CodeInternal           = "INTERNAL"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrAuthExpired):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error(), Code: CodeSessionExpired})
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error(), Code: CodeInvalidCredentials})
	case errors.Is(err, domain.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: err.Error(), Code: CodeForbidden})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error(), Code: CodeNotFound})
	case domain.IsConflict(err), errors.Is(err, service.ErrEmailTaken):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error(), Code: CodeConflict})
	case errors.Is(err, service.ErrInvalidAction):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Code: CodeBadRequest})
	default:
		logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error", Code: CodeInternal})
	}
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg, Code: CodeBadRequest})
}
