package store

import (
	"context"
	"errors"

	"github.com/akshat7606/QuickC/internal/cab/domain"
)

//go:generate mockgen -destination=mock/store_mock.go -package=mock . Store,Bookings

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Drivers implement it and expose
// sub-repositories per table.
type Store interface {
	Bookings() Bookings

	ApplyMigrations() error

	// Close releases the underlying database handle.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Bookings interface {
	// CreateBooking inserts b and returns it with ID and CreatedAt set.
	// A duplicate BookingID yields ErrAlreadyExists.
	CreateBooking(ctx context.Context, b domain.Booking) (domain.Booking, error)

	// GetBookingByID looks a booking up by its rider-facing reference.
	GetBookingByID(ctx context.Context, bookingID string) (domain.Booking, error)

	// ListBookingsByPhone returns up to limit bookings for phone, newest
	// first. limit <= 0 means no limit.
	ListBookingsByPhone(ctx context.Context, phone string, limit int) ([]domain.Booking, error)
}
