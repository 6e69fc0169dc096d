package cab_test

import (
	"net/http"
	"testing"

	"github.com/akshat7606/QuickC/pkg/cabsdk"
	"github.com/stretchr/testify/require"
)

func TestFailureLogRateLimit(t *testing.T) {
	client := setupCabContainer(t, map[string]string{
		"RATELIMIT_STRICT_REQUESTS": "3",
		"RATELIMIT_STRICT_BURST":    "3",
	})

	for range 3 {
		_, err := client.FailureLogs(t.Context(), adminToken, 1)
		require.NoError(t, err)
	}

	_, err := client.FailureLogs(t.Context(), adminToken, 1)
	requireAPIError(t, err, http.StatusTooManyRequests, cabsdk.ErrorCodeRateLimitExceeded)
}
