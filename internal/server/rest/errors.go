package rest

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/seashells/internal/common"
)

type errorBody struct {
	Detail string `json:"detail"`
}

// writeError maps service errors onto status codes. Unexpected errors are
// logged and reported without their text.
func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{Detail: err.Error()})
	case errors.Is(err, common.ErrorNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Detail: "Seashell not found"})
	default:
		h.logger.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Detail: common.ErrorInternal.Error()})
	}
}
