// Package v1handler implements the /v1 HTTP endpoints of the customer service.
package v1handler

import (
	"context"
	"customers/internal/customers"
	"customers/pkg/logger"
	"customers/pkg/serrors"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// Deps are the collaborators the handlers delegate to.
type Deps struct {
	Customers customers.Service
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Error is the body of every failed response.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorStatusCode pairs an error body with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   Error
}

func statusOf(kind serrors.Kind) int {
	switch kind {
	case serrors.ErrBadRequest:
		return http.StatusBadRequest
	case serrors.ErrNotFound:
		return http.StatusNotFound
	case serrors.ErrConflict:
		return http.StatusConflict
	case serrors.ErrTimeout:
		return http.StatusGatewayTimeout
	case serrors.ErrUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NewError maps err to a response. Errors without a client facing kind become
// a 500 with a generic message; the details are logged, never returned.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)
	status := statusOf(kind)

	if status == http.StatusInternalServerError {
		logger.Error(ctx, "could not handle request", zap.Error(err))

		return &ErrorStatusCode{
			StatusCode: status,
			Response: Error{
				Code:    serrors.ErrInternal.Error(),
				Message: "internal error",
			},
		}
	}

	message := ""
	var se *serrors.Error
	if errors.As(err, &se) {
		message = se.Message()
	}
	if message == "" {
		switch kind {
		case serrors.ErrNotFound:
			message = "resource not found"
		default:
			message = kind.Error()
		}
	}

	return &ErrorStatusCode{
		StatusCode: status,
		Response: Error{
			Code:    kind.Error(),
			Message: message,
		},
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}

func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(r.Context(), w, res.StatusCode, res.Response)
}

// decodeJSON reads the request body into v. A malformed body is a bad request.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}
