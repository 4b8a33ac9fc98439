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

type budgetService interface {
	List(ctx context.Context, uid string) ([]models.Budget, error)
	Create(ctx context.Context, uid string, req dto.CreateBudgetRequest) (*models.Budget, error)
	Update(ctx context.Context, uid, id string, req dto.CreateBudgetRequest) (*models.Budget, error)
	Delete(ctx context.Context, uid, id string) error
}

type budgetHandlers struct {
	ResponseHandler response.ResponseHandler
	BudgetSvc       budgetService
}

func NewBudgetHandlers(deps *Deps) *budgetHandlers {
	return &budgetHandlers{
		ResponseHandler: deps.ResponseHandler,
		BudgetSvc:       deps.BudgetSvc,
	}
}

func (h *budgetHandlers) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{budgetId}", h.Update)
	r.Delete("/{budgetId}", h.Delete)
	return r
}

func (h *budgetHandlers) List(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	budgets, err := h.BudgetSvc.List(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, budgets)
}

func (h *budgetHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body: "+err.Error()))
		return
	}
	uid := middleware.UID(r.Context())
	budget, err := h.BudgetSvc.Create(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, budget)
}

func (h *budgetHandlers) Update(w http.ResponseWriter, r *http.Request) {
	budgetID := chi.URLParam(r, "budgetId")
	var req dto.CreateBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body: "+err.Error()))
		return
	}
	uid := middleware.UID(r.Context())
	budget, err := h.BudgetSvc.Update(r.Context(), uid, budgetID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, budget)
}

func (h *budgetHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	budgetID := chi.URLParam(r, "budgetId")
	uid := middleware.UID(r.Context())
	if err := h.BudgetSvc.Delete(r.Context(), uid, budgetID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, map[string]string{"message": "budget deleted"})
}
