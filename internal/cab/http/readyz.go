package http

import (
	"net/http"
	"time"

	"github.com/akshat7606/QuickC/internal/cab/store"
	"github.com/akshat7606/QuickC/pkg/cabsdk"
	"github.com/akshat7606/QuickC/pkg/httpx"
)

// writableLog is the failure log as seen by the readiness probe.
type writableLog interface {
	Writable() error
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and checks for critical dependencies
//	@Description	Includes uptime, version, and status of the bookings database and the geocoding failure log
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	cabsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	cabsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store, failures writableLog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &cabsdk.HealthChecks{
			Database:   "ok",
			FailureLog: "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		// An unwritable log does not block traffic, failures are just not recorded.
		if err := failures.Writable(); err != nil {
			checks.FailureLog = "error: " + err.Error()
			if overallStatus == "ok" {
				overallStatus = "degraded"
			}
		}

		httpx.NoCache(w)
		httpx.WriteJSON(w, statusCode, cabsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
