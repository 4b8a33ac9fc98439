package response

import (
	"encoding/json"
	"net/http"

	"github.com/finapp/backend/pkg/logger"
)

// WriteSuccess writes data as the raw response body. The frontend consumes
// plain rows and objects, so there is no envelope.
func (h *responseHandler) WriteSuccess(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Last-ditch logging; can't return an error now
		log := logger.FromContext(r.Context())
		log.Error("failed to encode success response", "error", err)
	}
}
