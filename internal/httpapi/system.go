package httpapi

import (
	"net/http"
	"time"

	"github.com/tripmates/userd/internal/store"
	"github.com/tripmates/userd/pkg/httpx"
	"github.com/tripmates/userd/pkg/slogx"
)

type healthResult struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// LivezHandler reports process liveness.
func LivezHandler(startTime time.Time, version string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteResult(w, http.StatusOK, healthResult{
			Status:  "ok",
			Version: version,
			Uptime:  time.Since(startTime).Round(time.Second).String(),
		})
	})
}

// ReadyzHandler reports readiness, checking the store connection.
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := st.Ping(r.Context()); err != nil {
			slogx.FromContext(r.Context()).Warn("readiness check failed", "err", err)
			httpx.WriteError(w, http.StatusServiceUnavailable, "store unreachable")
			return
		}
		httpx.WriteResult(w, http.StatusOK, healthResult{
			Status:  "ready",
			Version: version,
			Uptime:  time.Since(startTime).Round(time.Second).String(),
		})
	})
}
