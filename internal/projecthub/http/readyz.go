package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/projecthub/internal/projecthub/store"
	"github.com/aussiebroadwan/projecthub/pkg/httpx"
	"github.com/aussiebroadwan/projecthub/pkg/mailx"
	"github.com/aussiebroadwan/projecthub/pkg/projectsdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness probe
//	@Description	Checks the database connection and that a mail sender is configured
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	projectsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	projectsdk.HealthResponse	"service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store, sender mailx.Sender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &projectsdk.HealthChecks{
			Database: "ok",
			Mail:     "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if sender == nil {
			checks.Mail = "error: no mail sender configured"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, projectsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
