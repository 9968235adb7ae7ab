package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"github.com/gorilla/mux"

	"quickgig-backend/internal/domain"
	"quickgig-backend/internal/feed"
	"quickgig-backend/internal/service"
)

type JobHandler struct {
	jobSvc service.JobService

	// One generation counter per viewer. A slow feed response that was
	// overtaken by a newer request from the same viewer is answered with 409
	// so the client keeps only the freshest result.
	mu          sync.Mutex
	generations map[domain.UserID]*feed.Generation
}

func NewJobHandler(jobSvc service.JobService) *JobHandler {
	return &JobHandler{
		jobSvc:      jobSvc,
		generations: make(map[domain.UserID]*feed.Generation),
	}
}

func (h *JobHandler) generationFor(viewerID domain.UserID) *feed.Generation {
	h.mu.Lock()
	defer h.mu.Unlock()
	g, ok := h.generations[viewerID]
	if !ok {
		g = &feed.Generation{}
		h.generations[viewerID] = g
	}
	return g
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var job domain.Job
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if job.Title == "" {
		writeBadRequest(w, "title is required")
		return
	}
	job.OwnerID = userIDFrom(r.Context())

	if err := h.jobSvc.CreateJob(r.Context(), &job); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, job)
}

func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	var job domain.Job
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	job.ID = domain.JobID(mux.Vars(r)["id"])

	if err := h.jobSvc.UpdateJob(r.Context(), userIDFrom(r.Context()), &job); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := domain.JobID(mux.Vars(r)["id"])
	if err := h.jobSvc.DeleteJob(r.Context(), userIDFrom(r.Context()), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := domain.JobID(mux.Vars(r)["id"])
	job, err := h.jobSvc.GetJob(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func (h *JobHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobSvc.ListMyJobs(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

// Feed serves the filtered, sorted open-jobs view. Filter and sort values
// come straight from query parameters; bad values degrade to defaults rather
// than failing the request.
func (h *JobHandler) Feed(w http.ResponseWriter, r *http.Request) {
	viewerID := userIDFrom(r.Context())
	q := r.URL.Query()

	cfg := feed.ParseConfig(
		q.Get("query"),
		q.Get("min_pay"),
		q.Get("food_only") == "true",
		q.Get("sort"),
	)

	var lat, long *float64
	if v, err := strconv.ParseFloat(q.Get("lat"), 64); err == nil {
		lat = &v
	}
	if v, err := strconv.ParseFloat(q.Get("long"), 64); err == nil {
		long = &v
	}

	gen := h.generationFor(viewerID)
	token := gen.Next()

	jobs, err := h.jobSvc.GetFeed(r.Context(), viewerID, lat, long, cfg)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if !gen.Accept(token) {
		writeJSON(w, http.StatusConflict, errorResponse{Error: "superseded by a newer feed request"})
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}
