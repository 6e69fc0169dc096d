package sqlite_test

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/akshat7606/QuickC/internal/cab/domain"
	"github.com/akshat7606/QuickC/internal/cab/store"
	"github.com/akshat7606/QuickC/internal/cab/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "cab.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())
	return st
}

func booking(id, phone string, at time.Time) domain.Booking {
	drop := "Nearby Destination"
	return domain.Booking{
		BookingID:      id,
		Phone:          phone,
		PickupLocation: "Connaught Place",
		DropLocation:   &drop,
		DriverName:     "Rajesh Kumar",
		DriverPhone:    "+919876543201",
		Fare:           45,
		ETAMinutes:     8,
		Channel:        domain.ChannelApp,
		CreatedAt:      at,
		RawData:        json.RawMessage(`{"source":"test"}`),
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.ApplyMigrations())
	require.NoError(t, st.Ping(t.Context()))
}

func TestCreateAndGetBooking(t *testing.T) {
	st := newTestStore(t)
	at := time.Date(2026, 3, 1, 9, 30, 0, 123_456_789, time.UTC)

	created, err := st.Bookings().CreateBooking(t.Context(), booking("UCA1", "+911111111111", at))
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.Equal(t, domain.StatusConfirmed, created.Status, "status defaults to confirmed")

	got, err := st.Bookings().GetBookingByID(t.Context(), "UCA1")
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, at.Truncate(time.Millisecond), got.CreatedAt)
	require.Equal(t, "Nearby Destination", *got.DropLocation)
	require.Equal(t, domain.ChannelApp, got.Channel)
	require.JSONEq(t, `{"source":"test"}`, string(got.RawData))
}

func TestGetBookingNotFound(t *testing.T) {
	st := newTestStore(t)

	_, err := st.Bookings().GetBookingByID(t.Context(), "UCA-missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestDuplicateBookingID(t *testing.T) {
	st := newTestStore(t)
	b := booking("UCA1", "+911111111111", time.Now())

	_, err := st.Bookings().CreateBooking(t.Context(), b)
	require.NoError(t, err)
	_, err = st.Bookings().CreateBooking(t.Context(), b)
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestListBookingsByPhone(t *testing.T) {
	st := newTestStore(t)
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	phone := "+912222222222"

	for i, id := range []string{"UCA-a", "UCA-b", "UCA-c"} {
		_, err := st.Bookings().CreateBooking(t.Context(), booking(id, phone, base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, err)
	}
	noDrop := booking("UCA-other", "+913333333333", base)
	noDrop.DropLocation = nil
	_, err := st.Bookings().CreateBooking(t.Context(), noDrop)
	require.NoError(t, err)

	got, err := st.Bookings().ListBookingsByPhone(t.Context(), phone, 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "UCA-c", got[0].BookingID, "newest first")
	require.Equal(t, "UCA-a", got[2].BookingID)

	got, err = st.Bookings().ListBookingsByPhone(t.Context(), phone, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	got, err = st.Bookings().ListBookingsByPhone(t.Context(), "+913333333333", 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Nil(t, got[0].DropLocation)

	got, err = st.Bookings().ListBookingsByPhone(t.Context(), "+910000000000", 0)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}
