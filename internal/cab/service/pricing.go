package service

import (
	"math"
	"math/rand/v2"
	"sync"

	"github.com/akshat7606/QuickC/internal/cab/domain"
)

const (
	PerKmRate       = 8.0
	DefaultBaseFare = 30.0
	MinFare         = 15.0
	MinETAMinutes   = 5

	// DefaultDistanceKm stands in for the trip length when none is known.
	DefaultDistanceKm = 5.0

	minMockDistanceKm = 3.0
	maxMockDistanceKm = 8.0
)

var baseFares = map[domain.VehicleType]float64{
	domain.VehicleBike:  15,
	domain.VehicleAuto:  25,
	domain.VehicleSedan: 35,
	domain.VehicleSUV:   50,
}

// BaseFare is the list price for a trip: a per-vehicle flag fall plus a
// per-km rate, rounded to paise.
func BaseFare(vt domain.VehicleType, distanceKm float64) float64 {
	base, ok := baseFares[vt]
	if !ok {
		base = DefaultBaseFare
	}
	return round2(base + PerKmRate*distanceKm)
}

// Pricer quotes fares and ETAs with a little jitter so offers look like
// they came from different partners. Safe for concurrent use.
type Pricer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPricer returns a Pricer with a deterministic sequence for seed.
func NewPricer(seed uint64) *Pricer {
	return &Pricer{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewRandomPricer returns a Pricer seeded from the runtime source.
func NewRandomPricer() *Pricer {
	return NewPricer(rand.Uint64())
}

// Distance returns a mock trip length in [3, 8) km.
func (p *Pricer) Distance() float64 {
	return minMockDistanceKm + p.float64()*(maxMockDistanceKm-minMockDistanceKm)
}

// Fare quotes a trip: BaseFare plus jitter in [-5, 10), never below MinFare.
func (p *Pricer) Fare(vt domain.VehicleType, distanceKm float64) float64 {
	jitter := -5 + p.float64()*15
	return round2(math.Max(BaseFare(vt, distanceKm)+jitter, MinFare))
}

// ETA estimates pickup minutes: 3 per km plus jitter in [-2, 5], never
// below MinETAMinutes.
func (p *Pricer) ETA(distanceKm float64) int {
	p.mu.Lock()
	jitter := p.rng.IntN(8) - 2
	p.mu.Unlock()
	return max(MinETAMinutes, int(distanceKm*3)+jitter)
}

func (p *Pricer) float64() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Float64()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
