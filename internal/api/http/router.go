package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"quickgig-backend/internal/realtime"
	"quickgig-backend/internal/security"
	"quickgig-backend/internal/service"
)

// Services bundles everything the HTTP layer depends on.
type Services struct {
	Auth          service.AuthService
	Profiles      service.ProfileService
	Jobs          service.JobService
	Applications  service.ApplicationService
	Messages      service.MessageService
	Notifications service.NotificationService
}

// NewRouter builds the full route table. Everything under /api/v1 except
// auth endpoints requires a valid access token.
func NewRouter(svcs Services, tokens security.TokenManager, broker *realtime.Broker) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()

	authHandler := NewAuthHandler(svcs.Auth)
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods("POST")

	authed := api.NewRoute().Subrouter()
	authed.Use(AuthMiddleware(tokens))

	profileHandler := NewProfileHandler(svcs.Profiles)
	authed.HandleFunc("/profiles/me", profileHandler.GetMine).Methods("GET")
	authed.HandleFunc("/profiles/me", profileHandler.Update).Methods("PUT")
	authed.HandleFunc("/profiles/{id}", profileHandler.Get).Methods("GET")

	jobHandler := NewJobHandler(svcs.Jobs)
	authed.HandleFunc("/jobs", jobHandler.Create).Methods("POST")
	authed.HandleFunc("/jobs/feed", jobHandler.Feed).Methods("GET")
	authed.HandleFunc("/jobs/mine", jobHandler.ListMine).Methods("GET")
	authed.HandleFunc("/jobs/{id}", jobHandler.Get).Methods("GET")
	authed.HandleFunc("/jobs/{id}", jobHandler.Update).Methods("PUT")
	authed.HandleFunc("/jobs/{id}", jobHandler.Delete).Methods("DELETE")

	appHandler := NewApplicationHandler(svcs.Applications)
	authed.HandleFunc("/applications", appHandler.Apply).Methods("POST")
	authed.HandleFunc("/applications/mine", appHandler.ListMine).Methods("GET")
	authed.HandleFunc("/applications/{id}/hire", appHandler.Hire).Methods("POST")
	authed.HandleFunc("/applications/{id}", appHandler.Withdraw).Methods("DELETE")
	authed.HandleFunc("/jobs/{id}/applications", appHandler.ListForJob).Methods("GET")

	msgHandler := NewMessageHandler(svcs.Messages)
	authed.HandleFunc("/messages", msgHandler.Send).Methods("POST")
	authed.HandleFunc("/messages/conversations", msgHandler.ListConversations).Methods("GET")
	authed.HandleFunc("/messages/with/{userID}", msgHandler.Conversation).Methods("GET")
	authed.HandleFunc("/messages/{id}/read", msgHandler.MarkRead).Methods("POST")

	noteHandler := NewNotificationHandler(svcs.Notifications)
	authed.HandleFunc("/notifications", noteHandler.List).Methods("GET")
	authed.HandleFunc("/notifications/{id}/read", noteHandler.MarkAsRead).Methods("POST")

	eventsHandler := NewEventsHandler(broker)
	authed.HandleFunc("/events", eventsHandler.Stream).Methods("GET")

	return r
}
