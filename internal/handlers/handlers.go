package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/XavierBriggs/fortuna/services/football-feeds/internal/upstream"
	"github.com/XavierBriggs/fortuna/services/football-feeds/pkg/models"
	"github.com/go-chi/chi/v5"
)

const defaultTimeout = 25 * time.Second

// Option configures a handler
type Option func(*options)

type options struct {
	logger          *slog.Logger
	now             func() time.Time
	timeout         time.Duration
	swallowUpstream bool
}

func newOptions(opts []Option) options {
	o := options{
		logger:  slog.Default(),
		now:     time.Now,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger used for upstream failures
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock sets the clock that decides what "today" is
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithTimeout bounds the provider calls of a single request
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithSwallowUpstreamErrors makes list endpoints answer provider failures
// with an empty result instead of 502
func WithSwallowUpstreamErrors(swallow bool) Option {
	return func(o *options) {
		o.swallowUpstream = swallow
	}
}

func (o options) context(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), o.timeout)
}

// absorb reports whether err is an upstream failure that should be served
// as an empty result
func (o options) absorb(op string, err error) bool {
	var upErr *upstream.Error
	if !o.swallowUpstream || !errors.As(err, &upErr) {
		return false
	}

	o.logger.Warn("upstream failure served as empty result", "op", op, "error", err)
	return true
}

// fail translates a handler error into the error envelope
func (o options) fail(w http.ResponseWriter, op string, err error) {
	status := http.StatusInternalServerError

	var upErr *upstream.Error
	if errors.As(err, &upErr) {
		status = http.StatusBadGateway
	}

	o.logger.Error("request failed", "op", op, "status", status, "error", err)
	respondError(w, status, err.Error())
}

// respondHealth answers a health check without calling the provider
func respondHealth(w http.ResponseWriter, service string) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"service": service,
		"status":  "healthy",
	})
}

// Helper functions

func queryParam(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}

// parseIDParam reads a numeric path parameter
func parseIDParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("error encoding response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, models.ErrorResponse{
		Success: false,
		Error:   message,
	})
}
