package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"studygroups-backend/internal/domain"
	"studygroups-backend/internal/service"
)

type GroupHandler struct {
	groupSvc service.GroupService
}

func NewGroupHandler(groupSvc service.GroupService) *GroupHandler {
	return &GroupHandler{groupSvc: groupSvc}
}

func groupID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["groupID"], 10, 64)
	return id, err == nil
}

func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name        string                 `json:"name"`
		Description string                 `json:"description"`
		Visibility  domain.GroupVisibility `json:"visibility"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if body.Name == "" {
		writeBadRequest(w, "group name is required")
		return
	}

	group, err := h.groupSvc.CreateGroup(r.Context(), userID(r), body.Name, body.Description, body.Visibility)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, group)
}

func (h *GroupHandler) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.groupSvc.ListGroups(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if groups == nil {
		groups = []domain.Group{}
	}
	writeJSON(w, http.StatusOK, groups)
}

func (h *GroupHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	groups, err := h.groupSvc.ListGroupsByCreator(r.Context(), userID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	if groups == nil {
		groups = []domain.Group{}
	}
	writeJSON(w, http.StatusOK, groups)
}

func (h *GroupHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := groupID(r)
	if !ok {
		writeBadRequest(w, "invalid group id")
		return
	}
	group, err := h.groupSvc.GetGroup(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, group)
}

func (h *GroupHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	id, ok := groupID(r)
	if !ok {
		writeBadRequest(w, "invalid group id")
		return
	}
	var body struct {
		Name        *string                 `json:"name"`
		Description *string                 `json:"description"`
		Visibility  *domain.GroupVisibility `json:"visibility"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	group, err := h.groupSvc.UpdateSettings(r.Context(), id, userID(r), domain.GroupSettings{
		Name:        body.Name,
		Description: body.Description,
		Visibility:  body.Visibility,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, group)
}

func (h *GroupHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := groupID(r)
	if !ok {
		writeBadRequest(w, "invalid group id")
		return
	}
	var body struct {
		Status domain.GroupStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	if err := h.groupSvc.UpdateStatus(r.Context(), id, userID(r), body.Status); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": string(body.Status)})
}

func (h *GroupHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	id, ok := groupID(r)
	if !ok {
		writeBadRequest(w, "invalid group id")
		return
	}
	var body struct {
		NewOwnerID string `json:"new_owner_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.NewOwnerID == "" {
		writeBadRequest(w, "new_owner_id is required")
		return
	}

	if err := h.groupSvc.TransferOwnership(r.Context(), id, userID(r), body.NewOwnerID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *GroupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := groupID(r)
	if !ok {
		writeBadRequest(w, "invalid group id")
		return
	}
	if err := h.groupSvc.DeleteGroup(r.Context(), id, userID(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
