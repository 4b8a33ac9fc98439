package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/finapp/backend/internal/dto"
	"github.com/finapp/backend/internal/errs"
	"github.com/finapp/backend/internal/middleware"
	"github.com/finapp/backend/internal/models"
	"github.com/finapp/backend/internal/response"
)

type categoryService interface {
	List(ctx context.Context, uid string) ([]models.Category, error)
	Create(ctx context.Context, uid string, req dto.CreateCategoryRequest) (*models.Category, error)
	Update(ctx context.Context, uid, id string, req dto.CreateCategoryRequest) (*models.Category, error)
	Delete(ctx context.Context, uid, id string) error
}

type categoryHandlers struct {
	ResponseHandler response.ResponseHandler
	CategorySvc     categoryService
}

func NewCategoryHandlers(deps *Deps) *categoryHandlers {
	return &categoryHandlers{
		ResponseHandler: deps.ResponseHandler,
		CategorySvc:     deps.CategorySvc,
	}
}

func (h *categoryHandlers) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{categoryId}", h.Update)
	r.Delete("/{categoryId}", h.Delete)
	return r
}

func (h *categoryHandlers) List(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	categories, err := h.CategorySvc.List(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, categories)
}

func (h *categoryHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body: "+err.Error()))
		return
	}
	uid := middleware.UID(r.Context())
	cat, err := h.CategorySvc.Create(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, cat)
}

func (h *categoryHandlers) Update(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")
	var req dto.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body: "+err.Error()))
		return
	}
	uid := middleware.UID(r.Context())
	cat, err := h.CategorySvc.Update(r.Context(), uid, categoryID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, cat)
}

func (h *categoryHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")
	uid := middleware.UID(r.Context())
	if err := h.CategorySvc.Delete(r.Context(), uid, categoryID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, map[string]string{"message": "category deleted"})
}
