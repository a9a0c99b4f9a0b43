package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/msomdec/course-api/internal/domain"
)

const healthTimeout = 2 * time.Second

// HandleHealthz reports whether the database answers a ping: 200 {"status":"ok"}
// or 503 {"status":"unavailable"}.
func HandleHealthz(db domain.Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			slog.WarnContext(r.Context(), "health check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
