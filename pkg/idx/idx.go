// Package idx generates sortable identifiers: ULIDs for request IDs and
// prefixed ULIDs for bookings.
package idx

import (
	"crypto/rand"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

type ID string

// Zero is the empty ID.
const Zero ID = ""

// BookingPrefix starts every booking reference handed to riders.
const BookingPrefix = "UCA"

// ErrInvalid reports a malformed ID string.
var ErrInvalid = errors.New("idx: invalid id")

var (
	globalOnce sync.Once
	global     *generator
)

// generator hands out ULIDs from a monotonic source so IDs minted within
// the same millisecond still sort in creation order.
type generator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func (g *generator) NewAt(t time.Time) ID {
	g.mu.Lock()
	defer g.mu.Unlock()

	return ID(ulid.MustNew(ulid.Timestamp(t), g.entropy).String())
}

func initGlobal() {
	global = &generator{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// New returns a ULID for the current UTC time.
func New() ID {
	return NewAt(time.Now().UTC())
}

// NewAt returns a ULID stamped with t.
func NewAt(t time.Time) ID {
	globalOnce.Do(initGlobal)
	return global.NewAt(t)
}

// NewBookingID returns a booking reference such as "UCA01JAX3...".
func NewBookingID() ID {
	return ID(BookingPrefix) + New()
}

// Parse validates a bare ULID string.
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, ErrInvalid
	}
	if _, err := ulid.ParseStrict(s); err != nil {
		return Zero, ErrInvalid
	}
	return ID(s), nil
}

// ParseBookingID validates a booking reference. Legacy references built
// from a unix timestamp ("UCA1712345678") are accepted as well.
func ParseBookingID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	rest, ok := strings.CutPrefix(s, BookingPrefix)
	if !ok || rest == "" {
		return Zero, ErrInvalid
	}
	if _, err := ulid.ParseStrict(rest); err == nil {
		return ID(s), nil
	}
	for _, c := range rest {
		if c < '0' || c > '9' {
			return Zero, ErrInvalid
		}
	}
	return ID(s), nil
}

func (id ID) IsZero() bool { return id == Zero }

func (id ID) String() string { return string(id) }
