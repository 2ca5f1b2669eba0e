// Package rest exposes the seashell service over HTTP with JSON bodies.
package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/seashells/internal/common"
	"github.com/dmitrijs2005/seashells/internal/logging"
	"github.com/dmitrijs2005/seashells/internal/server/models"
)

// SeashellService is the subset of services.SeashellService the handlers use.
type SeashellService interface {
	Create(ctx context.Context, in models.SeashellCreate) (*models.Seashell, error)
	GetByID(ctx context.Context, id int64) (*models.Seashell, error)
	Update(ctx context.Context, id int64, in models.SeashellUpdate) (*models.Seashell, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, q models.ListQuery) ([]*models.Seashell, int, error)
}

// Handlers contains the HTTP route handlers.
type Handlers struct {
	svc    SeashellService
	logger logging.Logger
}

// NewHandler builds the router with request logging applied.
func NewHandler(svc SeashellService, l logging.Logger) http.Handler {
	h := &Handlers{svc: svc, logger: l.With("module", "rest")}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.HandleRoot)
	mux.HandleFunc("GET /health", h.HandleHealth)

	for _, base := range []string{"/seashells", "/seashells/{$}"} {
		mux.HandleFunc("POST "+base, h.HandleCreate)
		mux.HandleFunc("GET "+base, h.HandleList)
	}
	mux.HandleFunc("GET /seashells/{id}", h.HandleGet)
	mux.HandleFunc("PUT /seashells/{id}", h.HandleUpdate)
	mux.HandleFunc("DELETE /seashells/{id}", h.HandleDelete)

	return requestLogger(h.logger, mux)
}

// HandleRoot handles GET /, a connectivity check.
func (h *Handlers) HandleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusCreated, "Server Connected.")
}

// HandleHealth handles GET /health.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleCreate handles POST /seashells/.
func (h *Handlers) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in models.SeashellCreate
	if err := decodeBody(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}

	shell, err := h.svc.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, shell)
}

// HandleList handles GET /seashells/ with pagination, search and sorting.
func (h *Handlers) HandleList(w http.ResponseWriter, r *http.Request) {
	q, err := parseListQuery(r.URL.Query())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	items, total, err := h.svc.List(r.Context(), q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("X-Total-Count", strconv.Itoa(total))
	writeJSON(w, http.StatusOK, items)
}

// HandleGet handles GET /seashells/{id}.
func (h *Handlers) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	shell, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, shell)
}

// HandleUpdate handles PUT /seashells/{id}. Absent keys are left unchanged.
func (h *Handlers) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var in models.SeashellUpdate
	if err := decodeBody(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}

	shell, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, shell)
}

// HandleDelete handles DELETE /seashells/{id}.
func (h *Handlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id must be an integer, got %q", common.ErrorValidation, raw)
	}
	return id, nil
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON body: %v", common.ErrorValidation, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
