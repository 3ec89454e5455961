package server

import (
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/oklog/ulid/v2"

	"github.com/slok/todo/internal/log"
)

const requestIDHeader = "X-Request-Id"

// withRequestLogging tags every request with an ID and logs the result once served.
func (s *Server) withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := ulid.Make().String()
		ctx := s.logger.SetValuesOnCtx(r.Context(), log.Kv{"request-id": reqID})
		r = r.WithContext(ctx)
		w.Header().Set(requestIDHeader, reqID)

		m := httpsnoop.CaptureMetrics(next, w, r)

		logger := s.logger.WithCtxValues(ctx).WithValues(log.Kv{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   m.Code,
			"duration": m.Duration.String(),
			"bytes":    m.Written,
		})
		if m.Code >= http.StatusInternalServerError {
			logger.Warningf("request failed")
			return
		}
		logger.Debugf("request served")
	})
}
