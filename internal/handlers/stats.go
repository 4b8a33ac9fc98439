package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/finapp/backend/internal/dto"
	"github.com/finapp/backend/internal/middleware"
	"github.com/finapp/backend/internal/response"
)

type statsService interface {
	Summary(ctx context.Context, uid, startDate, endDate string) (dto.SummaryResponse, error)
	ByCategory(ctx context.Context, uid, startDate, endDate string) ([]dto.CategoryStat, error)
}

type statsHandlers struct {
	ResponseHandler response.ResponseHandler
	StatsSvc        statsService
}

func NewStatsHandlers(deps *Deps) *statsHandlers {
	return &statsHandlers{
		ResponseHandler: deps.ResponseHandler,
		StatsSvc:        deps.StatsSvc,
	}
}

func (h *statsHandlers) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/summary", h.Summary)
	r.Get("/by-category", h.ByCategory)
	return r
}

func (h *statsHandlers) Summary(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	uid := middleware.UID(r.Context())

	summary, err := h.StatsSvc.Summary(r.Context(), uid, params.Get("start_date"), params.Get("end_date"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, summary)
}

func (h *statsHandlers) ByCategory(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	uid := middleware.UID(r.Context())

	stats, err := h.StatsSvc.ByCategory(r.Context(), uid, params.Get("start_date"), params.Get("end_date"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, stats)
}
