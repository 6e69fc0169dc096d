package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/akshat7606/QuickC/internal/cab/domain"
)

type bookingsRepo struct {
	db  *sql.DB
	now func() time.Time
}

const bookingColumns = `id, booking_id, phone, pickup_location, drop_location, driver_name,
	driver_phone, fare, eta_minutes, status, channel, created_at, raw_data`

func (r *bookingsRepo) CreateBooking(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = r.now()
	}
	b.CreatedAt = b.CreatedAt.UTC().Truncate(time.Millisecond)
	if b.Status == "" {
		b.Status = domain.StatusConfirmed
	}

	var raw sql.NullString
	if len(b.RawData) > 0 {
		raw = sql.NullString{String: string(b.RawData), Valid: true}
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO bookings (booking_id, phone, pickup_location, drop_location, driver_name,
			driver_phone, fare, eta_minutes, status, channel, created_at, raw_data)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.BookingID, b.Phone, b.PickupLocation, mapOptionalString(b.DropLocation), b.DriverName,
		b.DriverPhone, b.Fare, b.ETAMinutes, string(b.Status), string(b.Channel),
		b.CreatedAt.UnixMilli(), raw,
	)
	if err != nil {
		return domain.Booking{}, mapConstraint(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Booking{}, err
	}
	b.ID = id
	return b, nil
}

func (r *bookingsRepo) GetBookingByID(ctx context.Context, bookingID string) (domain.Booking, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE booking_id = ?`, bookingID)
	b, err := scanBooking(row)
	if err != nil {
		return domain.Booking{}, mapNotFound(err)
	}
	return b, nil
}

func (r *bookingsRepo) ListBookingsByPhone(ctx context.Context, phone string, limit int) ([]domain.Booking, error) {
	if limit <= 0 {
		limit = -1 // sqlite: no limit
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+bookingColumns+` FROM bookings
		WHERE phone = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, phone, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []domain.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBooking(s scanner) (domain.Booking, error) {
	var (
		b         domain.Booking
		drop      sql.NullString
		status    string
		channel   string
		createdAt int64
		raw       sql.NullString
	)
	if err := s.Scan(
		&b.ID, &b.BookingID, &b.Phone, &b.PickupLocation, &drop, &b.DriverName,
		&b.DriverPhone, &b.Fare, &b.ETAMinutes, &status, &channel, &createdAt, &raw,
	); err != nil {
		return domain.Booking{}, err
	}

	b.DropLocation = mapNullStringPtr(drop)
	b.Status = domain.BookingStatus(status)
	b.Channel = domain.Channel(channel)
	b.CreatedAt = time.UnixMilli(createdAt).UTC()
	if raw.Valid {
		b.RawData = json.RawMessage(raw.String)
	}
	return b, nil
}
