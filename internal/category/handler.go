package category

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ldmoraes/minimal-blog-api/internal/models"
	"github.com/ldmoraes/minimal-blog-api/internal/web"
)

// Handler holds the category HTTP handlers.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /api/categories.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.All(r.Context())
	if err != nil {
		web.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	web.JSON(w, http.StatusOK, categories)
}

// Get handles GET /api/categories/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.ByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		web.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if c == nil {
		web.Error(w, http.StatusNotFound, "Category not found")
		return
	}
	web.JSON(w, http.StatusOK, c)
}

// Create handles POST /api/categories.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c, err := h.svc.Create(r.Context(), req.Name)
	if err != nil {
		web.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	web.JSON(w, http.StatusCreated, c)
}

// Update handles PUT /api/categories/{id}. A missing category answers 400,
// not 404; kept for compatibility with existing clients.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), req.Name)
	if err != nil {
		web.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	web.JSON(w, http.StatusOK, c)
}

// Delete handles DELETE /api/categories/{id}. Same 400-on-any-error
// contract as Update.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		web.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
