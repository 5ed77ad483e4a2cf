package user

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ldmoraes/minimal-blog-api/internal/models"
	"github.com/ldmoraes/minimal-blog-api/internal/web"
)

// Handler holds the user HTTP handlers.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /api/users.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.All(r.Context())
	if err != nil {
		web.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	web.JSON(w, http.StatusOK, users)
}

// Get handles GET /api/users/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.ByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		web.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if u == nil {
		web.Error(w, http.StatusNotFound, "User not found")
		return
	}
	web.JSON(w, http.StatusOK, u)
}

// Create handles POST /api/users.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	u, err := h.svc.Register(r.Context(), req.FirstName, req.LastName, req.Email)
	if err != nil {
		web.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	web.JSON(w, http.StatusCreated, u)
}

// Delete handles DELETE /api/users/{id}. Any failure answers 500, a
// missing user included; kept for compatibility with existing clients.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		web.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
