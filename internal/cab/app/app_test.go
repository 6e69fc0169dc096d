package app

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/akshat7606/QuickC/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	return Config{
		MapMyIndiaLogFile:    filepath.Join(dir, "failures.log"),
		MapMyIndiaLogMax:     100,
		FrontendOrigins:      "http://localhost:5173",
		DatabaseFile:         filepath.Join(dir, "cab.db"),
		Env:                  "test",
		LogLevel:             "error",
		LogFormat:            "json",
		Port:                 0,
		ShutdownGracePeriod:  time.Second,
		HousekeepingInterval: time.Hour,
	}
}

func TestApplicationWiring(t *testing.T) {
	app, err := newApplication(testConfig(t), slogx.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.db.Close() })

	for _, path := range []string{"/", "/livez", "/readyz", "/v1/partner/health"} {
		rec := httptest.NewRecorder()
		app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/search",
		strings.NewReader(`{"pickup_lat":19.07,"pickup_lng":72.87,"pickup_address":"Bandra"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"search_id"`)

	// No credentials configured.
	rec = httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/mapmyindia/autocomplete?query=x", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestApplicationCustomDriverCatalog(t *testing.T) {
	cfg := testConfig(t)
	cfg.DriversFile = filepath.Join(t.TempDir(), "drivers.yaml")
	require.NoError(t, os.WriteFile(cfg.DriversFile, []byte(`drivers:
  - name: Test Rider
    phone: "+910000000001"
    vehicle_type: bike
    rating: 5
`), 0o600))

	app, err := newApplication(cfg, slogx.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.db.Close() })
	require.Equal(t, 1, app.drivers.Len())

	cfg.DriversFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = newApplication(cfg, slogx.Discard())
	require.Error(t, err)
}

func TestApplicationShutdown(t *testing.T) {
	app, err := newApplication(testConfig(t), slogx.Discard())
	require.NoError(t, err)

	app.housekeepingService.Start()
	require.NoError(t, app.Shutdown())
}
