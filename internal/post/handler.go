package post

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ldmoraes/minimal-blog-api/internal/models"
	"github.com/ldmoraes/minimal-blog-api/internal/web"
)

// Handler holds the post HTTP handlers.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /api/posts.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.All(r.Context())
	if err != nil {
		web.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	web.JSON(w, http.StatusOK, posts)
}

// ByAuthor handles GET /api/posts/author/{authorId}.
func (h *Handler) ByAuthor(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.ByAuthor(r.Context(), chi.URLParam(r, "authorId"))
	if err != nil {
		web.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	web.JSON(w, http.StatusOK, posts)
}

// Search handles GET /api/posts/search/{searchTerm}.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.SearchByTitle(r.Context(), chi.URLParam(r, "searchTerm"))
	if err != nil {
		web.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	web.JSON(w, http.StatusOK, posts)
}

// Get handles GET /api/posts/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.ByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		web.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if p == nil {
		web.Error(w, http.StatusNotFound, "Post not found")
		return
	}
	web.JSON(w, http.StatusOK, p)
}

// Create handles POST /api/posts.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p, err := h.svc.Register(r.Context(), req.Title, req.Body, req.IsPublished, req.AuthorID, req.CategoryIDs)
	if err != nil {
		web.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	web.JSON(w, http.StatusCreated, p)
}

// Update handles PUT /api/posts/{id}. A missing post answers 400, not 404;
// kept for compatibility with existing clients.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), req.Title, req.Body, req.IsPublished)
	if err != nil {
		web.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	web.JSON(w, http.StatusOK, p)
}

// Delete handles DELETE /api/posts/{id}. Same 400-on-any-error contract as
// Update.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		web.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
