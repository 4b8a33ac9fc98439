package handlers

import (
	"net/http"

	"github.com/finapp/backend/internal/response"
)

type statusHandlers struct {
	ResponseHandler response.ResponseHandler
}

func NewStatusHandlers(deps *Deps) *statusHandlers {
	return &statusHandlers{ResponseHandler: deps.ResponseHandler}
}

// Status is the unauthenticated liveness probe.
func (h *statusHandlers) Status(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, map[string]string{
		"message": "Finance App V2.0 API",
		"status":  "online",
	})
}
