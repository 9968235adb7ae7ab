package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"quickgig-backend/internal/domain"
	"quickgig-backend/internal/service"
)

type ProfileHandler struct {
	profileSvc service.ProfileService
}

func NewProfileHandler(profileSvc service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileSvc: profileSvc}
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := domain.UserID(mux.Vars(r)["id"])
	profile, err := h.profileSvc.GetProfile(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileSvc.GetProfile(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var profile domain.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	profile.ID = userIDFrom(r.Context())

	if err := h.profileSvc.UpdateProfile(r.Context(), profile.ID, &profile); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
