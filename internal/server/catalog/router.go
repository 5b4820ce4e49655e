package catalog

import (
	"net/http"
	"time"

	"github.com/Acontplus-S-A-S/mikunaWeb/internal/common"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter mounts the catalog endpoint under CategoryPath (and under
// prefix+CategoryPath when prefix is set, e.g. "/public/api").
func NewRouter(h *Handler, logger logging.Logger, prefix string) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(echoRequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/healthz", h.Health)
	r.Post(common.CategoryPath, h.Categories)
	if prefix != "" && prefix != "/" {
		r.Route(prefix, func(r chi.Router) {
			r.Post(common.CategoryPath, h.Categories)
		})
	}

	return r
}

// echoRequestID returns the request id chi assigned (or received) in the
// response headers.
func echoRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := middleware.GetReqID(r.Context()); id != "" {
			w.Header().Set(common.RequestIDHeaderName, id)
		}
		next.ServeHTTP(w, r)
	})
}

// requestLogger records method, path, status and duration of every request.
func requestLogger(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			logger.Info(r.Context(), "http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"duration", time.Since(start).String(),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
