package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"quickgig-backend/internal/domain"
	"quickgig-backend/internal/service"
)

type ApplicationHandler struct {
	appSvc service.ApplicationService
}

func NewApplicationHandler(appSvc service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{appSvc: appSvc}
}

type applyRequest struct {
	JobID domain.JobID `json:"job_id"`
}

func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req applyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.JobID == "" {
		writeBadRequest(w, "job_id is required")
		return
	}

	app, err := h.appSvc.Apply(r.Context(), req.JobID, userIDFrom(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, app)
}

func (h *ApplicationHandler) Hire(w http.ResponseWriter, r *http.Request) {
	id := domain.ApplicationID(mux.Vars(r)["id"])
	if err := h.appSvc.Hire(r.Context(), id, userIDFrom(r.Context())); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "hired"})
}

func (h *ApplicationHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	id := domain.ApplicationID(mux.Vars(r)["id"])
	if err := h.appSvc.Withdraw(r.Context(), id, userIDFrom(r.Context())); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *ApplicationHandler) ListForJob(w http.ResponseWriter, r *http.Request) {
	jobID := domain.JobID(mux.Vars(r)["id"])
	apps, err := h.appSvc.ListForJob(r.Context(), jobID, userIDFrom(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, apps)
}

func (h *ApplicationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	apps, err := h.appSvc.ListForApplicant(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, apps)
}
