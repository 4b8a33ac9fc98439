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

type recurringService interface {
	List(ctx context.Context, uid string) ([]models.RecurringRule, error)
	Create(ctx context.Context, uid string, req dto.CreateRecurringRequest) (*models.RecurringRule, error)
	Update(ctx context.Context, uid, id string, req dto.CreateRecurringRequest) (*models.RecurringRule, error)
	Delete(ctx context.Context, uid, id string) error
}

type recurringHandlers struct {
	ResponseHandler response.ResponseHandler
	RecurringSvc    recurringService
}

func NewRecurringHandlers(deps *Deps) *recurringHandlers {
	return &recurringHandlers{
		ResponseHandler: deps.ResponseHandler,
		RecurringSvc:    deps.RecurringSvc,
	}
}

func (h *recurringHandlers) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{recurringId}", h.Update)
	r.Delete("/{recurringId}", h.Delete)
	return r
}

func (h *recurringHandlers) List(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	rules, err := h.RecurringSvc.List(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, rules)
}

func (h *recurringHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRecurringRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body: "+err.Error()))
		return
	}
	uid := middleware.UID(r.Context())
	rule, err := h.RecurringSvc.Create(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, rule)
}

func (h *recurringHandlers) Update(w http.ResponseWriter, r *http.Request) {
	recurringID := chi.URLParam(r, "recurringId")
	var req dto.CreateRecurringRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body: "+err.Error()))
		return
	}
	uid := middleware.UID(r.Context())
	rule, err := h.RecurringSvc.Update(r.Context(), uid, recurringID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, rule)
}

func (h *recurringHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	recurringID := chi.URLParam(r, "recurringId")
	uid := middleware.UID(r.Context())
	if err := h.RecurringSvc.Delete(r.Context(), uid, recurringID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, map[string]string{"message": "recurring rule deleted"})
}
