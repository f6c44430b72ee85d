package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"catalogo-iluminacao/logging"
)

// RequestLogger emits one structured entry per request
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		log := logging.L().With(
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_ip", r.RemoteAddr,
			"request_id", middleware.GetReqID(r.Context()),
		)
		if status >= http.StatusInternalServerError {
			log.Warn("request")
			return
		}
		log.Info("request")
	})
}
