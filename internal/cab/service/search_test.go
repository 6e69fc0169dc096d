package service

import (
	"testing"

	"github.com/akshat7606/QuickC/internal/cab/catalog"
	"github.com/akshat7606/QuickC/internal/cab/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newSearchService(t *testing.T) *SearchService {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return &SearchService{Catalog: cat, Pricer: NewPricer(1)}
}

func TestSearchAllRideTypes(t *testing.T) {
	s := newSearchService(t)

	for _, rideType := range []string{"", "any", "ANY"} {
		res, err := s.Search(t.Context(), rideType)
		require.NoError(t, err)
		require.Len(t, res.Offers, s.Catalog.Len())

		_, err = uuid.Parse(res.SearchID)
		require.NoError(t, err)

		for i := 1; i < len(res.Offers); i++ {
			require.LessOrEqual(t, res.Offers[i-1].Fare, res.Offers[i].Fare, "offers are sorted by fare")
		}
	}
}

func TestSearchFiltersByRideType(t *testing.T) {
	s := newSearchService(t)

	res, err := s.Search(t.Context(), "auto")
	require.NoError(t, err)
	require.Len(t, res.Offers, 2)
	for _, o := range res.Offers {
		require.Equal(t, domain.VehicleAuto, o.Driver.VehicleType)
		require.GreaterOrEqual(t, o.Fare, MinFare)
		require.GreaterOrEqual(t, o.ETAMinutes, MinETAMinutes)
	}

	res, err = s.Search(t.Context(), "suv")
	require.NoError(t, err)
	require.Len(t, res.Offers, 1)
	require.Equal(t, "Suresh Patel", res.Offers[0].Driver.Name)
}

func TestSearchRejectsUnknownRideType(t *testing.T) {
	s := newSearchService(t)

	_, err := s.Search(t.Context(), "helicopter")
	require.ErrorIs(t, err, ErrInvalidRideType)
}

func TestSearchIDsAreUnique(t *testing.T) {
	s := newSearchService(t)

	a, err := s.Search(t.Context(), "")
	require.NoError(t, err)
	b, err := s.Search(t.Context(), "")
	require.NoError(t, err)
	require.NotEqual(t, a.SearchID, b.SearchID)
}
