package http

import (
	"errors"
	"net/http"

	"github.com/akshat7606/QuickC/internal/cab/service"
	"github.com/akshat7606/QuickC/pkg/cabsdk"
	"github.com/akshat7606/QuickC/pkg/httpx"
	"github.com/akshat7606/QuickC/pkg/slogx"
)

type SearchHandler struct {
	SearchService *service.SearchService
}

// ServeHTTP handles ride search
//
//	@Summary		Search rides
//	@Description	Prices every available driver of the requested ride type for a trip, cheapest first.
//	@Description	Use an offer's driver_id and fare with /v1/book.
//	@Tags			Rides
//	@Accept			json
//	@Produce		json
//	@Param			request	body		cabsdk.SearchRequest			true	"Pickup, optional drop and ride type"
//	@Success		200		{object}	cabsdk.SearchResponse
//	@Failure		400		{object}	cabsdk.ValidationErrorResponse	"Malformed or invalid request"
//	@Failure		429		{object}	cabsdk.ErrorResponse			"Rate limit exceeded"
//	@Router			/v1/search [post].
func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req cabsdk.SearchRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	res, err := h.SearchService.Search(ctx, req.RideType)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRideType) {
			httpx.WriteError(w, http.StatusBadRequest, cabsdk.ErrorCodeInvalidRequest, err.Error())
			return
		}
		log.Error("search failed", "error", err)
		writeServerError(w, "Failed to search rides")
		return
	}

	response := cabsdk.SearchResponse{
		Offers:   make([]cabsdk.DriverOffer, len(res.Offers)),
		SearchID: res.SearchID,
	}
	for i, o := range res.Offers {
		response.Offers[i] = cabsdk.DriverOffer{
			DriverID:    o.Driver.ID,
			DriverName:  o.Driver.Name,
			VehicleType: string(o.Driver.VehicleType),
			Fare:        o.Fare,
			ETAMinutes:  o.ETAMinutes,
			Rating:      o.Driver.Rating,
			Phone:       o.Driver.Phone,
		}
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}
