package http

import (
	"net/http"
	"time"

	"github.com/akshat7606/QuickC/internal/cab/catalog"
	"github.com/akshat7606/QuickC/pkg/cabsdk"
	"github.com/akshat7606/QuickC/pkg/httpx"
)

// PartnerHealthHandler godoc
//
//	@Summary		Partner integrations health
//	@Description	Reports the state of each ride partner. The mock driver pool is offline when no catalog driver is available.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	cabsdk.PartnerHealthResponse
//	@Router			/v1/partner/health [get].
func PartnerHealthHandler(drivers *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pool := "online"
		if len(drivers.Available("")) == 0 {
			pool = "offline"
		}

		httpx.WriteJSON(w, http.StatusOK, cabsdk.PartnerHealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC(),
			Partners: map[string]string{
				"mock_drivers": pool,
				"ivr_system":   "online",
			},
		})
	}
}
