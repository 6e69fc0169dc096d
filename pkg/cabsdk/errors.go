package cabsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/akshat7606/QuickC/pkg/faillog"
)

// Error codes used in ErrorResponse.Error.
const (
	ErrorCodeInvalidRequest    = "invalid_request"
	ErrorCodeValidation        = "validation_error"
	ErrorCodeNotFound          = "not_found"
	ErrorCodeForbidden         = "forbidden"
	ErrorCodeServerError       = "server_error"
	ErrorCodeNotConfigured     = "geocoding_not_configured"
	ErrorCodeUpstreamFailed    = "upstream_failed"
	ErrorCodeRateLimitExceeded = "rate_limit_exceeded"
)

// APIError is any non-2xx response from the API.
type APIError struct {
	StatusCode  int
	Code        string
	Description string

	// Details holds per-field rules for validation errors.
	Details map[string]string

	// Geocoding proxy failures only.
	UpstreamStatus int
	UpstreamBody   string
	SanitizedLogs  []faillog.Entry
}

func (e *APIError) Error() string {
	return fmt.Sprintf("cabsdk: %d %s: %s", e.StatusCode, e.Code, e.Description)
}

// parseErrorResponse turns a non-2xx body into an *APIError, falling back
// to the status text when the body is not one of ours.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var payload struct {
		ProxyErrorResponse
		Details map[string]string `json:"details"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return &APIError{
			StatusCode:     resp.StatusCode,
			Code:           payload.Error,
			Description:    payload.ErrorDescription,
			Details:        payload.Details,
			UpstreamStatus: payload.UpstreamStatus,
			UpstreamBody:   payload.UpstreamBody,
			SanitizedLogs:  payload.SanitizedLogs,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
