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

type accountService interface {
	List(ctx context.Context, uid string) ([]models.Account, error)
	Create(ctx context.Context, uid string, req dto.CreateAccountRequest) (*models.Account, error)
	Update(ctx context.Context, uid, id string, req dto.CreateAccountRequest) (*models.Account, error)
	Delete(ctx context.Context, uid, id string) error
}

type accountHandlers struct {
	ResponseHandler response.ResponseHandler
	AccountSvc      accountService
}

func NewAccountHandlers(deps *Deps) *accountHandlers {
	return &accountHandlers{
		ResponseHandler: deps.ResponseHandler,
		AccountSvc:      deps.AccountSvc,
	}
}

func (h *accountHandlers) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{accountId}", h.Update)
	r.Delete("/{accountId}", h.Delete)
	return r
}

func (h *accountHandlers) List(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	accounts, err := h.AccountSvc.List(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, accounts)
}

func (h *accountHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body: "+err.Error()))
		return
	}
	uid := middleware.UID(r.Context())
	acc, err := h.AccountSvc.Create(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, acc)
}

func (h *accountHandlers) Update(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountId")
	var req dto.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body: "+err.Error()))
		return
	}
	uid := middleware.UID(r.Context())
	acc, err := h.AccountSvc.Update(r.Context(), uid, accountID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, acc)
}

func (h *accountHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountId")
	uid := middleware.UID(r.Context())
	if err := h.AccountSvc.Delete(r.Context(), uid, accountID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, map[string]string{"message": "account deleted"})
}
