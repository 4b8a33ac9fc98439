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

type goalService interface {
	List(ctx context.Context, uid string) ([]models.Goal, error)
	Create(ctx context.Context, uid string, req dto.CreateGoalRequest) (*models.Goal, error)
	Update(ctx context.Context, uid, id string, req dto.CreateGoalRequest) (*models.Goal, error)
	Delete(ctx context.Context, uid, id string) error
}

type goalHandlers struct {
	ResponseHandler response.ResponseHandler
	GoalSvc         goalService
}

func NewGoalHandlers(deps *Deps) *goalHandlers {
	return &goalHandlers{
		ResponseHandler: deps.ResponseHandler,
		GoalSvc:         deps.GoalSvc,
	}
}

func (h *goalHandlers) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{goalId}", h.Update)
	r.Delete("/{goalId}", h.Delete)
	return r
}

func (h *goalHandlers) List(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	goals, err := h.GoalSvc.List(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, goals)
}

func (h *goalHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body: "+err.Error()))
		return
	}
	uid := middleware.UID(r.Context())
	goal, err := h.GoalSvc.Create(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, goal)
}

func (h *goalHandlers) Update(w http.ResponseWriter, r *http.Request) {
	goalID := chi.URLParam(r, "goalId")
	var req dto.CreateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body: "+err.Error()))
		return
	}
	uid := middleware.UID(r.Context())
	goal, err := h.GoalSvc.Update(r.Context(), uid, goalID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, goal)
}

func (h *goalHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	goalID := chi.URLParam(r, "goalId")
	uid := middleware.UID(r.Context())
	if err := h.GoalSvc.Delete(r.Context(), uid, goalID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, map[string]string{"message": "goal deleted"})
}
