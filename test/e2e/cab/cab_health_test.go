package cab_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	client := setupCabContainer(t, nil)

	live, err := client.GetLiveness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)

	ready, err := client.GetReadiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.Equal(t, "ok", ready.Checks.Database)
	require.Equal(t, "ok", ready.Checks.FailureLog)

	partners, err := client.GetPartnerHealth(t.Context())
	require.NoError(t, err)
	require.Equal(t, "online", partners.Partners["mock_drivers"])

	info, err := client.GetServiceInfo(t.Context())
	require.NoError(t, err)
	require.Equal(t, "running", info.Status)
}
