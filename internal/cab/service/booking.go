package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/akshat7606/QuickC/internal/cab/catalog"
	"github.com/akshat7606/QuickC/internal/cab/domain"
	"github.com/akshat7606/QuickC/internal/cab/store"
	"github.com/akshat7606/QuickC/pkg/idx"
	"github.com/akshat7606/QuickC/pkg/slogx"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidPhone    = errors.New("phone number is required")
	ErrInvalidFare     = errors.New("fare must be positive")
)

// Placeholder driver for bookings whose driver ID is not in the catalog,
// e.g. an offer from an older roster.
const (
	unassignedDriverName  = "Driver"
	unassignedDriverPhone = "+919876543200"
)

// Every call-in booking is dispatched the same way until the voice flow
// collects a pickup.
const (
	ivrPickup      = "Current Location (IVR)"
	ivrDrop        = "Nearby Destination"
	ivrDriverPhone = "+919876543201"
	ivrFare        = 45.0
	ivrETAMinutes  = 8
)

// HistoryLimit caps how many bookings a history lookup returns.
const HistoryLimit = 200

type BookInput struct {
	Phone         string
	PickupAddress string
	DropAddress   *string
	DriverID      string
	Fare          float64
	Raw           json.RawMessage
}

type BookingService struct {
	Store   store.Store
	Catalog *catalog.Catalog
	Pricer  *Pricer
}

// Book confirms an app booking with the driver from a search offer.
func (s *BookingService) Book(ctx context.Context, in BookInput) (domain.Booking, error) {
	l := slogx.FromContext(ctx)

	phone := strings.TrimSpace(in.Phone)
	if phone == "" {
		return domain.Booking{}, ErrInvalidPhone
	}
	if in.Fare <= 0 {
		return domain.Booking{}, ErrInvalidFare
	}

	driverName, driverPhone := unassignedDriverName, unassignedDriverPhone
	if d, err := s.Catalog.Driver(in.DriverID); err == nil {
		driverName, driverPhone = d.Name, d.Phone
	} else {
		l.Warn("booking for unknown driver, assigning placeholder", "driver_id", in.DriverID)
	}

	return s.create(ctx, domain.Booking{
		Phone:          phone,
		PickupLocation: in.PickupAddress,
		DropLocation:   in.DropAddress,
		DriverName:     driverName,
		DriverPhone:    driverPhone,
		Fare:           in.Fare,
		ETAMinutes:     s.Pricer.ETA(DefaultDistanceKm),
		Status:         domain.StatusConfirmed,
		Channel:        domain.ChannelApp,
		RawData:        in.Raw,
	})
}

// BookIVR records the fixed booking made for a phone call.
func (s *BookingService) BookIVR(ctx context.Context, caller string) (domain.Booking, error) {
	caller = strings.TrimSpace(caller)
	if caller == "" {
		return domain.Booking{}, ErrInvalidPhone
	}

	driverName := "Rajesh Kumar"
	if d, err := s.Catalog.Driver(catalog.DriverID(ivrDriverPhone)); err == nil {
		driverName = d.Name
	}

	raw, _ := json.Marshal(map[string]string{"source": "ivr", "caller": caller})
	drop := ivrDrop
	return s.create(ctx, domain.Booking{
		Phone:          caller,
		PickupLocation: ivrPickup,
		DropLocation:   &drop,
		DriverName:     driverName,
		DriverPhone:    ivrDriverPhone,
		Fare:           ivrFare,
		ETAMinutes:     ivrETAMinutes,
		Status:         domain.StatusConfirmed,
		Channel:        domain.ChannelIVR,
		RawData:        raw,
	})
}

func (s *BookingService) create(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	l := slogx.FromContext(ctx)

	// A collision needs two ULIDs in the same millisecond with equal
	// entropy; retry once rather than fail the rider.
	for attempt := 0; ; attempt++ {
		b.BookingID = idx.NewBookingID().String()
		created, err := s.Store.Bookings().CreateBooking(ctx, b)
		if err == nil {
			l.Info("booking confirmed",
				"booking_id", created.BookingID,
				"channel", string(created.Channel),
				"fare", created.Fare,
			)
			return created, nil
		}
		if !errors.Is(err, store.ErrAlreadyExists) || attempt > 0 {
			l.Error("failed to create booking", "error", err, "channel", string(b.Channel))
			return domain.Booking{}, err
		}
	}
}

// History lists bookings for phone, newest first.
func (s *BookingService) History(ctx context.Context, phone string) ([]domain.Booking, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, ErrInvalidPhone
	}
	return s.Store.Bookings().ListBookingsByPhone(ctx, phone, HistoryLimit)
}

// Get fetches a booking by its reference.
func (s *BookingService) Get(ctx context.Context, bookingID string) (domain.Booking, error) {
	id, err := idx.ParseBookingID(bookingID)
	if err != nil {
		return domain.Booking{}, ErrBookingNotFound
	}
	b, err := s.Store.Bookings().GetBookingByID(ctx, id.String())
	if errors.Is(err, store.ErrNotFound) {
		return domain.Booking{}, ErrBookingNotFound
	}
	return b, err
}
