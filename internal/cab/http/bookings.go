package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akshat7606/QuickC/internal/cab/domain"
	"github.com/akshat7606/QuickC/internal/cab/service"
	"github.com/akshat7606/QuickC/pkg/cabsdk"
	"github.com/akshat7606/QuickC/pkg/httpx"
	"github.com/akshat7606/QuickC/pkg/slogx"
)

type BookingsHandler struct {
	BookingService *service.BookingService
}

// HandleBook confirms a booking
//
//	@Summary		Book a ride
//	@Description	Confirms a booking with the driver from a search offer. The ETA is fixed at booking time.
//	@Tags			Rides
//	@Accept			json
//	@Produce		json
//	@Param			request	body		cabsdk.BookRequest				true	"Rider phone, pickup, driver and quoted fare"
//	@Success		200		{object}	cabsdk.BookingResponse
//	@Failure		400		{object}	cabsdk.ValidationErrorResponse	"Malformed or invalid request"
//	@Failure		429		{object}	cabsdk.ErrorResponse			"Rate limit exceeded"
//	@Failure		500		{object}	cabsdk.ErrorResponse			"Internal server error"
//	@Router			/v1/book [post].
func (h *BookingsHandler) HandleBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req cabsdk.BookRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	raw, err := json.Marshal(req)
	if err != nil {
		log.Error("failed to encode booking request", "error", err)
		writeServerError(w, "Failed to create booking")
		return
	}

	b, err := h.BookingService.Book(ctx, service.BookInput{
		Phone:         req.Phone,
		PickupAddress: req.PickupAddress,
		DropAddress:   req.DropAddress,
		DriverID:      req.DriverID,
		Fare:          req.Fare,
		Raw:           raw,
	})
	switch {
	case errors.Is(err, service.ErrInvalidPhone), errors.Is(err, service.ErrInvalidFare):
		httpx.WriteError(w, http.StatusBadRequest, cabsdk.ErrorCodeInvalidRequest, err.Error())
		return
	case err != nil:
		writeServerError(w, "Failed to create booking")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, cabsdk.BookingResponse{
		BookingID:   b.BookingID,
		DriverName:  b.DriverName,
		DriverPhone: b.DriverPhone,
		Fare:        b.Fare,
		ETAMinutes:  b.ETAMinutes,
		Status:      string(b.Status),
	})
}

// HandleHistory lists a rider's bookings
//
//	@Summary		Booking history
//	@Description	Lists bookings made from a phone number, newest first
//	@Tags			Rides
//	@Produce		json
//	@Param			phone	path		string	true	"Rider phone number"
//	@Success		200		{object}	cabsdk.HistoryResponse
//	@Failure		400		{object}	cabsdk.ErrorResponse	"Missing phone"
//	@Failure		500		{object}	cabsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/history/{phone} [get].
func (h *BookingsHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	phone := r.PathValue("phone")

	bookings, err := h.BookingService.History(ctx, phone)
	switch {
	case errors.Is(err, service.ErrInvalidPhone):
		httpx.WriteError(w, http.StatusBadRequest, cabsdk.ErrorCodeInvalidRequest, err.Error())
		return
	case err != nil:
		log.Error("failed to list bookings", "error", err)
		writeServerError(w, "Failed to retrieve booking history")
		return
	}

	response := cabsdk.HistoryResponse{
		Phone:    phone,
		Bookings: make([]cabsdk.BookingRecord, len(bookings)),
	}
	for i, b := range bookings {
		response.Bookings[i] = toBookingRecord(b)
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}

// HandleGet fetches one booking
//
//	@Summary		Get booking
//	@Description	Fetches a booking by its UCA reference
//	@Tags			Rides
//	@Produce		json
//	@Param			booking_id	path		string	true	"Booking reference"
//	@Success		200			{object}	cabsdk.BookingRecord
//	@Failure		404			{object}	cabsdk.ErrorResponse	"Unknown booking"
//	@Failure		500			{object}	cabsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/bookings/{booking_id} [get].
func (h *BookingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	b, err := h.BookingService.Get(ctx, r.PathValue("booking_id"))
	switch {
	case errors.Is(err, service.ErrBookingNotFound):
		httpx.WriteError(w, http.StatusNotFound, cabsdk.ErrorCodeNotFound, "Booking not found")
		return
	case err != nil:
		log.Error("failed to get booking", "error", err)
		writeServerError(w, "Failed to retrieve booking")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toBookingRecord(b))
}

func toBookingRecord(b domain.Booking) cabsdk.BookingRecord {
	return cabsdk.BookingRecord{
		BookingID:      b.BookingID,
		Phone:          b.Phone,
		PickupLocation: b.PickupLocation,
		DropLocation:   b.DropLocation,
		DriverName:     b.DriverName,
		DriverPhone:    b.DriverPhone,
		Fare:           b.Fare,
		Status:         string(b.Status),
		Channel:        string(b.Channel),
		CreatedAt:      b.CreatedAt,
		ETAMinutes:     b.ETAMinutes,
	}
}
