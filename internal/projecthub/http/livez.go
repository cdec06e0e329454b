package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/projecthub/pkg/httpx"
	"github.com/aussiebroadwan/projecthub/pkg/projectsdk"
)

// LivezHandler godoc
//
//	@Summary		Liveness probe
//	@Description	Returns 200 with uptime and version while the process is running
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	projectsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, projectsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}
