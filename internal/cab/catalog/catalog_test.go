package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/akshat7606/QuickC/internal/cab/catalog"
	"github.com/akshat7606/QuickC/internal/cab/domain"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)
	require.Equal(t, 5, c.Len())

	autos := c.Available(domain.VehicleAuto)
	require.Len(t, autos, 2)
	require.Equal(t, "Rajesh Kumar", autos[0].Name)

	require.Len(t, c.Available(""), 5)

	d, err := c.Driver(catalog.DriverID("+919876543202"))
	require.NoError(t, err)
	require.Equal(t, "Amit Singh", d.Name)
	require.Equal(t, domain.VehicleSedan, d.VehicleType)

	_, err = c.Driver("nope")
	require.ErrorIs(t, err, catalog.ErrUnknownDriver)
}

func TestDriverIDIsStable(t *testing.T) {
	require.Equal(t, catalog.DriverID("+919876543201"), catalog.DriverID(" +919876543201 "))
	require.NotEqual(t, catalog.DriverID("+919876543201"), catalog.DriverID("+919876543202"))
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drivers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
drivers:
  - name: Test Rider
    phone: "+910000000001"
    vehicle_type: BIKE
    rating: 5
  - name: Off Duty
    phone: "+910000000002"
    vehicle_type: bike
    rating: 3.9
    unavailable: true
`), 0o600))

	c, err := catalog.Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	require.Len(t, c.Available(domain.VehicleBike), 1)

	def, err := catalog.Load("")
	require.NoError(t, err)
	require.Equal(t, 5, def.Len())
}

func TestParseRejectsBadRosters(t *testing.T) {
	cases := map[string]string{
		"empty":        `drivers: []`,
		"bad vehicle":  "drivers:\n  - {name: A, phone: '1', vehicle_type: tram, rating: 4}",
		"missing name": "drivers:\n  - {phone: '1', vehicle_type: auto, rating: 4}",
		"bad rating":   "drivers:\n  - {name: A, phone: '1', vehicle_type: auto, rating: 7}",
		"duplicate":    "drivers:\n  - {name: A, phone: '1', vehicle_type: auto}\n  - {name: B, phone: '1', vehicle_type: bike}",
		"not yaml":     "drivers: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := catalog.Parse([]byte(doc))
			require.Error(t, err)
		})
	}
}
