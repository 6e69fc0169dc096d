package idx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/akshat7606/QuickC/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewAndParse(t *testing.T) {
	id := idx.New()
	require.False(t, id.IsZero())

	parsed, err := idx.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)

	_, err = idx.Parse("not-a-ulid")
	require.ErrorIs(t, err, idx.ErrInvalid)
}

func TestOrderingWithinSameMillisecond(t *testing.T) {
	at := time.Unix(1700000000, 0).UTC()
	a := idx.NewAt(at)
	b := idx.NewAt(at)

	require.Less(t, a.String(), b.String())
}

func TestBookingID(t *testing.T) {
	id := idx.NewBookingID()
	require.True(t, strings.HasPrefix(id.String(), idx.BookingPrefix))

	parsed, err := idx.ParseBookingID(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)

	// Timestamp references from before the ULID switch still resolve.
	legacy, err := idx.ParseBookingID("UCA1712345678")
	require.NoError(t, err)
	require.Equal(t, "UCA1712345678", legacy.String())

	for _, bad := range []string{"", "UCA", "XYZ1712345678", "UCA12ab", idx.New().String()} {
		_, err := idx.ParseBookingID(bad)
		require.ErrorIs(t, err, idx.ErrInvalid, bad)
	}
}

func TestBookingIDsAreUnique(t *testing.T) {
	seen := make(map[idx.ID]struct{}, 1000)
	for range 1000 {
		id := idx.NewBookingID()
		_, dup := seen[id]
		require.False(t, dup)
		seen[id] = struct{}{}
	}
}
