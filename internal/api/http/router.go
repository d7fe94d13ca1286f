package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"studygroups-backend/internal/security"
	"studygroups-backend/internal/service"
)

// NewRouter wires all handlers. Everything except signup/login/refresh sits
// behind the bearer-token authenticator.
func NewRouter(
	tokens security.TokenManager,
	authSvc service.AuthService,
	groupSvc service.GroupService,
	memberSvc service.MembershipService,
	msgSvc service.MessageService,
) *mux.Router {
	authHandler := NewAuthHandler(authSvc)
	groupHandler := NewGroupHandler(groupSvc)
	memberHandler := NewMembershipHandler(memberSvc)
	msgHandler := NewMessageHandler(msgSvc)

	r := mux.NewRouter()
	r.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	r.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)

	api := r.NewRoute().Subrouter()
	api.Use(Authenticator(tokens))

	api.HandleFunc("/auth/me", authHandler.Me).Methods(http.MethodGet)

	api.HandleFunc("/groups", groupHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/groups", groupHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/groups/mine", groupHandler.ListMine).Methods(http.MethodGet)
	api.HandleFunc("/groups/{groupID}", groupHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/groups/{groupID}", groupHandler.UpdateSettings).Methods(http.MethodPatch)
	api.HandleFunc("/groups/{groupID}", groupHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/groups/{groupID}/status", groupHandler.UpdateStatus).Methods(http.MethodPut)
	api.HandleFunc("/groups/{groupID}/transfer", groupHandler.Transfer).Methods(http.MethodPost)

	api.HandleFunc("/groups/{groupID}/join", memberHandler.Join).Methods(http.MethodPost)
	api.HandleFunc("/groups/{groupID}/leave", memberHandler.Leave).Methods(http.MethodPost)
	api.HandleFunc("/groups/{groupID}/role", memberHandler.Role).Methods(http.MethodGet)
	api.HandleFunc("/groups/{groupID}/members", memberHandler.ListMembers).Methods(http.MethodGet)
	api.HandleFunc("/groups/{groupID}/members/{userID}", memberHandler.Remove).Methods(http.MethodDelete)
	api.HandleFunc("/groups/{groupID}/members/{userID}/promote", memberHandler.Promote).Methods(http.MethodPost)
	api.HandleFunc("/groups/{groupID}/members/{userID}/demote", memberHandler.Demote).Methods(http.MethodPost)
	api.HandleFunc("/groups/{groupID}/requests", memberHandler.RequestJoin).Methods(http.MethodPost)
	api.HandleFunc("/groups/{groupID}/requests", memberHandler.ListRequests).Methods(http.MethodGet)
	api.HandleFunc("/requests/{requestID}/process", memberHandler.ProcessRequest).Methods(http.MethodPost)

	api.HandleFunc("/groups/{groupID}/messages", msgHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/groups/{groupID}/messages", msgHandler.Send).Methods(http.MethodPost)

	return r
}
