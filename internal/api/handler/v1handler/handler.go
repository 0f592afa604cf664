// Package v1handler implements the HTTP handlers for version 1 of the lead
// scoring API.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"leadscore/internal/leads"
	"leadscore/pkg/logger"
	"leadscore/pkg/serrors"
)

// DefaultLimit is the page size used when a list request does not specify one.
const DefaultLimit = 20

// MaxLimit caps the page size of list requests.
const MaxLimit = 100

// Deps holds the dependencies of the v1 handlers.
type Deps struct {
	Leads leads.Leads
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes registers all v1 endpoints on the given router. The router is
// expected to already run the authentication middleware, so every handler can
// read the user ID from the request context.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/leads/score", h.ScoreLead)
	r.Post("/leads/enrich-score", h.EnrichScoreLead)
	r.Get("/leads", h.ListLeads)
	r.Get("/leads/export", h.ExportLeads)
	r.Get("/leads/{id}", h.GetLead)
	r.Get("/leads/{id}/recommendations", h.GetRecommendations)
	r.Delete("/leads/{id}", h.DeleteLead)

	r.Post("/batches", h.CreateBatch)
	r.Get("/batches/{id}", h.GetBatch)
	r.Get("/batches/{id}/items", h.ListBatchItems)
	r.Post("/batches/{id}/cancel", h.CancelBatch)
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// statusFromError maps semantic error kinds to HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, serrors.ErrInvalidProfile), errors.Is(err, serrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, serrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, serrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, serrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, serrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, serrors.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, serrors.ErrEnrichmentUnavailable), errors.Is(err, serrors.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as a JSON error response. Internal errors are logged
// and returned without the underlying message, everything else carries its
// semantic kind and message to the client.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := statusFromError(err)

	code := serrors.ErrInternal.Error()
	message := "internal server error"
	if status == http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		message = err.Error()

		var serr *serrors.Error
		var k serrors.Kind
		switch {
		case errors.As(err, &serr) && serr.Kind() != nil:
			code = serr.Kind().Error()
		case errors.As(err, &k):
			code = k.Error()
		}
	}

	writeJSON(ctx, w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error(ctx, "could not write response", zap.Error(err))
	}
}

// decodeJSON parses the request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}

// uuidFromRequest parses the "id" URL parameter.
func uuidFromRequest(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid id")
	}

	return id, nil
}
