package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Codenidhi/-hustlehub-jobportal/internal/catalog"
	"github.com/Codenidhi/-hustlehub-jobportal/pkg/apperr"
)

type JobsHandler struct {
	catalog *catalog.Service
}

// NewJobsHandler creates a new JobsHandler with required dependencies.
func NewJobsHandler(c *catalog.Service) *JobsHandler {
	return &JobsHandler{catalog: c}
}

func (h *JobsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req catalog.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.New(apperr.KindValidation, "Invalid request"))
		return
	}

	job, err := h.catalog.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		"success": true,
		"message": "Job added successfully!",
		"job":     job,
	})
}

func (h *JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.catalog.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, jobs)
}

func (h *JobsHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	jobs, err := h.catalog.Search(r.Context(), catalog.SearchFilter{
		Title:    q.Get("title"),
		Location: q.Get("location"),
		Type:     q.Get("type"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, jobs)
}

func (h *JobsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.catalog.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{"success": true, "message": "Job deleted successfully"})
}
