package api

import (
	"encoding/json"
	"net/http"

	"github.com/Codenidhi/-hustlehub-jobportal/internal/directory"
	"github.com/Codenidhi/-hustlehub-jobportal/pkg/apperr"
)

type UsersHandler struct {
	directory *directory.Service
}

// NewUsersHandler creates a new UsersHandler with required dependencies.
func NewUsersHandler(d *directory.Service) *UsersHandler {
	return &UsersHandler{directory: d}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.directory.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

func (h *UsersHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req directory.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.New(apperr.KindValidation, "Invalid request"))
		return
	}

	if _, err := h.directory.Register(r.Context(), req); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{"success": true, "message": "User created!"})
}

func (h *UsersHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.New(apperr.KindValidation, "Invalid request"))
		return
	}

	user, err := h.directory.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		"success": true,
		"message": "Login successful",
		"user":    user,
	})
}
