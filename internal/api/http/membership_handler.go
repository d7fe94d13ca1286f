package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"studygroups-backend/internal/domain"
	"studygroups-backend/internal/service"
)

type MembershipHandler struct {
	memberSvc service.MembershipService
}

func NewMembershipHandler(memberSvc service.MembershipService) *MembershipHandler {
	return &MembershipHandler{memberSvc: memberSvc}
}

func (h *MembershipHandler) Join(w http.ResponseWriter, r *http.Request) {
	id, ok := groupID(r)
	if !ok {
		writeBadRequest(w, "invalid group id")
		return
	}
	outcome, err := h.memberSvc.Join(r.Context(), id, userID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"outcome": string(outcome)})
}

func (h *MembershipHandler) Leave(w http.ResponseWriter, r *http.Request) {
	id, ok := groupID(r)
	if !ok {
		writeBadRequest(w, "invalid group id")
		return
	}
	if err := h.memberSvc.Leave(r.Context(), id, userID(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *MembershipHandler) RequestJoin(w http.ResponseWriter, r *http.Request) {
	id, ok := groupID(r)
	if !ok {
		writeBadRequest(w, "invalid group id")
		return
	}
	outcome, err := h.memberSvc.RequestJoin(r.Context(), id, userID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"outcome": string(outcome)})
}

func (h *MembershipHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	id, ok := groupID(r)
	if !ok {
		writeBadRequest(w, "invalid group id")
		return
	}
	reqs, err := h.memberSvc.ListPendingRequests(r.Context(), id, userID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	if reqs == nil {
		reqs = []domain.JoinRequest{}
	}
	writeJSON(w, http.StatusOK, reqs)
}

func (h *MembershipHandler) ProcessRequest(w http.ResponseWriter, r *http.Request) {
	requestID, err := strconv.ParseInt(mux.Vars(r)["requestID"], 10, 64)
	if err != nil {
		writeBadRequest(w, "invalid request id")
		return
	}
	var body struct {
		Action service.RequestAction `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	req, err := h.memberSvc.ProcessRequest(r.Context(), requestID, body.Action, userID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *MembershipHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	id, ok := groupID(r)
	if !ok {
		writeBadRequest(w, "invalid group id")
		return
	}
	members, err := h.memberSvc.ListMembers(r.Context(), id, userID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	if members == nil {
		members = []domain.Membership{}
	}
	writeJSON(w, http.StatusOK, members)
}

func (h *MembershipHandler) Role(w http.ResponseWriter, r *http.Request) {
	id, ok := groupID(r)
	if !ok {
		writeBadRequest(w, "invalid group id")
		return
	}
	role, err := h.memberSvc.ResolveRole(r.Context(), id, userID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"role": string(role)})
}

func (h *MembershipHandler) Promote(w http.ResponseWriter, r *http.Request) {
	h.changeRole(w, r, h.memberSvc.Promote)
}

func (h *MembershipHandler) Demote(w http.ResponseWriter, r *http.Request) {
	h.changeRole(w, r, h.memberSvc.Demote)
}

func (h *MembershipHandler) Remove(w http.ResponseWriter, r *http.Request) {
	h.changeRole(w, r, h.memberSvc.Remove)
}

func (h *MembershipHandler) changeRole(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, groupID int64, actingUserID, targetUserID string) error) {
	id, ok := groupID(r)
	if !ok {
		writeBadRequest(w, "invalid group id")
		return
	}
	target := mux.Vars(r)["userID"]
	if target == "" {
		writeBadRequest(w, "invalid user id")
		return
	}
	if err := op(r.Context(), id, userID(r), target); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
