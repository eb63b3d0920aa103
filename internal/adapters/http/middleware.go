package http

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type ctxKey string

const (
	ctxKeyRequestID ctxKey = "request_id"
	ctxKeyOperator  ctxKey = "operator_id"
)

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", reqID)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKeyRequestID, reqID)))
	})
}

// operatorMiddleware guards the mutating routes. The commit sequence refuses
// to stamp audit fields without a known operator, so a request that cannot
// name one is rejected here instead of deep inside a transaction.
func operatorMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		operatorID, err := uuid.Parse(r.Header.Get("X-Operator-Id"))
		if err != nil || operatorID == uuid.Nil {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "a valid X-Operator-Id header is required")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKeyOperator, operatorID)))
	})
}

func (h *Handler) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				h.logger.ErrorContext(r.Context(), "request panicked",
					"module", "http.middleware",
					"operation", r.Method+" "+r.URL.Path,
					"request_id", requestIDFromContext(r.Context()),
					"panic", rec,
				)
				writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (h *Handler) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		h.logger.InfoContext(r.Context(), "request handled",
			"module", "http.middleware",
			"operation", r.Method+" "+r.URL.Path,
			"request_id", requestIDFromContext(r.Context()),
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func requestIDFromContext(ctx context.Context) string {
	if s, ok := ctx.Value(ctxKeyRequestID).(string); ok {
		return s
	}
	return ""
}

// OperatorFromContext exposes the acting principal placed by operatorMiddleware.
func OperatorFromContext(ctx context.Context) uuid.UUID {
	if id, ok := ctx.Value(ctxKeyOperator).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

// HeaderOperatorProvider resolves the operator from the request context.
type HeaderOperatorProvider struct{}

func (HeaderOperatorProvider) OperatorID(ctx context.Context) uuid.UUID {
	return OperatorFromContext(ctx)
}
