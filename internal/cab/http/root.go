package http

import (
	"net/http"

	"github.com/akshat7606/QuickC/pkg/cabsdk"
	"github.com/akshat7606/QuickC/pkg/httpx"
)

// ServiceInfoHandler godoc
//
//	@Summary		Service banner
//	@Description	Identifies the API and confirms it is running
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	cabsdk.ServiceInfoResponse
//	@Router			/ [get].
func ServiceInfoHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, cabsdk.ServiceInfoResponse{
			Message: "Universal Cab Aggregator API",
			Status:  "running",
		})
	}
}
