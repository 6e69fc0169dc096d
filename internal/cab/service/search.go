package service

import (
	"context"
	"errors"
	"slices"

	"github.com/akshat7606/QuickC/internal/cab/catalog"
	"github.com/akshat7606/QuickC/internal/cab/domain"
	"github.com/akshat7606/QuickC/pkg/slogx"
	"github.com/google/uuid"
)

var ErrInvalidRideType = errors.New("ride type must be one of bike, auto, sedan, suv, any")

type SearchResult struct {
	SearchID string
	Offers   []domain.Offer // cheapest first
}

type SearchService struct {
	Catalog *catalog.Catalog
	Pricer  *Pricer
}

// Search prices every available driver of the requested ride type. One
// mock distance is drawn per search so offers are comparable.
func (s *SearchService) Search(ctx context.Context, rideType string) (SearchResult, error) {
	vt, ok := domain.ParseVehicleType(rideType)
	if !ok {
		return SearchResult{}, ErrInvalidRideType
	}

	distance := s.Pricer.Distance()
	drivers := s.Catalog.Available(vt)

	offers := make([]domain.Offer, 0, len(drivers))
	for _, d := range drivers {
		offers = append(offers, domain.Offer{
			Driver:     d,
			Fare:       s.Pricer.Fare(d.VehicleType, distance),
			ETAMinutes: s.Pricer.ETA(distance),
		})
	}
	slices.SortStableFunc(offers, func(a, b domain.Offer) int {
		switch {
		case a.Fare < b.Fare:
			return -1
		case a.Fare > b.Fare:
			return 1
		default:
			return 0
		}
	})

	res := SearchResult{SearchID: uuid.NewString(), Offers: offers}
	slogx.FromContext(ctx).Debug("search priced",
		"search_id", res.SearchID,
		"ride_type", string(vt),
		"distance_km", round2(distance),
		"offers", len(offers),
	)
	return res, nil
}
