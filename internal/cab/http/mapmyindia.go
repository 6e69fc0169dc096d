package http

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/akshat7606/QuickC/pkg/cabsdk"
	"github.com/akshat7606/QuickC/pkg/faillog"
	"github.com/akshat7606/QuickC/pkg/httpx"
	"github.com/akshat7606/QuickC/pkg/mapmyindia"
	"github.com/akshat7606/QuickC/pkg/slogx"
)

const (
	DefaultLogLimit = 50
	MaxLogLimit     = 1000

	// debugLogTail is how many failure entries a debug 502 carries.
	debugLogTail = 5
)

type GeocodeHandler struct {
	Resolver *mapmyindia.Resolver
	Failures *faillog.Sink
	// Debug attaches upstream bodies and recent failure entries to 502s.
	Debug bool
}

// HandleAutocomplete proxies place suggestions
//
//	@Summary		Place autocomplete
//	@Description	Proxies MapMyIndia place suggestions. Tries the static REST key first and falls back to an OAuth token
//	@Description	when the key is refused. The provider JSON is returned unchanged.
//	@Tags			Geocoding
//	@Produce		json
//	@Param			query	query		string	true	"Text to complete"
//	@Success		200		{object}	object	"Provider response"
//	@Failure		400		{object}	cabsdk.ErrorResponse		"Missing query"
//	@Failure		500		{object}	cabsdk.ErrorResponse		"No MapMyIndia credentials configured"
//	@Failure		502		{object}	cabsdk.ProxyErrorResponse	"Provider failed"
//	@Router			/v1/mapmyindia/autocomplete [get].
func (h *GeocodeHandler) HandleAutocomplete(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		httpx.WriteError(w, http.StatusBadRequest, cabsdk.ErrorCodeInvalidRequest, "query is required")
		return
	}

	body, err := h.Resolver.Autocomplete(r.Context(), query)
	if err != nil {
		h.writeGeocodeError(r.Context(), w, err)
		return
	}
	httpx.WriteRawJSON(w, http.StatusOK, body)
}

// HandleReverse proxies reverse geocoding
//
//	@Summary		Reverse geocode
//	@Description	Proxies MapMyIndia reverse geocoding with the same credential fallback as autocomplete.
//	@Tags			Geocoding
//	@Produce		json
//	@Param			lat	query		number	true	"Latitude"
//	@Param			lng	query		number	true	"Longitude"
//	@Success		200	{object}	object	"Provider response"
//	@Failure		400	{object}	cabsdk.ErrorResponse		"Bad coordinates"
//	@Failure		500	{object}	cabsdk.ErrorResponse		"No MapMyIndia credentials configured"
//	@Failure		502	{object}	cabsdk.ProxyErrorResponse	"Provider failed"
//	@Router			/v1/mapmyindia/reverse [get].
func (h *GeocodeHandler) HandleReverse(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, err := parseCoordinate(q.Get("lat"), 90)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, cabsdk.ErrorCodeInvalidRequest, "lat "+err.Error())
		return
	}
	lng, err := parseCoordinate(q.Get("lng"), 180)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, cabsdk.ErrorCodeInvalidRequest, "lng "+err.Error())
		return
	}

	body, err := h.Resolver.Reverse(r.Context(), lat, lng)
	if err != nil {
		h.writeGeocodeError(r.Context(), w, err)
		return
	}
	httpx.WriteRawJSON(w, http.StatusOK, body)
}

// HandleLogs returns recent failure entries
//
//	@Summary		Geocoding failure log
//	@Description	Returns the most recent sanitized geocoding failures. Requires the configured admin token.
//	@Tags			Geocoding
//	@Produce		json
//	@Param			admin_token	query		string	true	"Admin token"
//	@Param			limit		query		int		false	"Entries to return (default 50, max 1000)"
//	@Success		200			{object}	cabsdk.FailureLogsResponse
//	@Failure		400			{object}	cabsdk.ErrorResponse	"Bad limit"
//	@Failure		403			{object}	cabsdk.ErrorResponse	"Log access disabled or wrong token"
//	@Failure		429			{object}	cabsdk.ErrorResponse	"Rate limit exceeded"
//	@Router			/v1/mapmyindia/logs [get].
func (h *GeocodeHandler) HandleLogs(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())
	q := r.URL.Query()

	limit := DefaultLogLimit
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			httpx.WriteError(w, http.StatusBadRequest, cabsdk.ErrorCodeInvalidRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, MaxLogLimit)
	}

	entries, err := h.Failures.Read(q.Get("admin_token"), limit)
	switch {
	case errors.Is(err, faillog.ErrLoggingDisabled):
		httpx.WriteError(w, http.StatusForbidden, cabsdk.ErrorCodeForbidden, "Log access is not enabled")
		return
	case errors.Is(err, faillog.ErrInvalidAdminToken):
		log.Warn("failure log read with invalid admin token")
		httpx.WriteError(w, http.StatusForbidden, cabsdk.ErrorCodeForbidden, "Invalid admin token")
		return
	case err != nil:
		log.Error("failed to read failure log", "error", err)
		writeServerError(w, "Failed to read failure log")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, cabsdk.FailureLogsResponse{Entries: entries})
}

func (h *GeocodeHandler) writeGeocodeError(ctx context.Context, w http.ResponseWriter, err error) {
	log := slogx.FromContext(ctx)

	if errors.Is(err, mapmyindia.ErrCredentialsUnavailable) {
		log.Error("geocoding requested without credentials")
		httpx.WriteError(w, http.StatusInternalServerError, cabsdk.ErrorCodeNotConfigured,
			"MapMyIndia credentials are not configured")
		return
	}

	status := mapmyindia.UpstreamStatus(err)
	log.Warn("geocoding failed", "error", err, "upstream_status", status)

	resp := cabsdk.ProxyErrorResponse{
		Error:            cabsdk.ErrorCodeUpstreamFailed,
		ErrorDescription: upstreamMessage(err, status),
		UpstreamStatus:   status,
	}
	if h.Debug {
		var rejected *mapmyindia.RejectedError
		if errors.As(err, &rejected) {
			resp.UpstreamBody = rejected.Body
		}
		if entries, readErr := h.Failures.ReadLast(debugLogTail); readErr == nil {
			resp.SanitizedLogs = entries
		}
	}
	httpx.WriteJSON(w, http.StatusBadGateway, resp)
}

func upstreamMessage(err error, status int) string {
	var msg string
	switch {
	case errors.Is(err, mapmyindia.ErrTokenExchangeFailed) && status != 0:
		msg = fmt.Sprintf("MapMyIndia token exchange failed with status %d", status)
	case errors.Is(err, mapmyindia.ErrTokenExchangeFailed):
		msg = "MapMyIndia token endpoint is unreachable"
	case status != 0:
		msg = fmt.Sprintf("MapMyIndia request failed with status %d", status)
	default:
		msg = "MapMyIndia is unreachable"
	}
	if errors.Is(err, mapmyindia.ErrAllAuthMethodsFailed) {
		msg = "All MapMyIndia authentication methods failed: " + msg
	}
	return msg
}

func parseCoordinate(raw string, limit float64) (float64, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, errors.New("is required")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("must be a number")
	}
	if v < -limit || v > limit {
		return 0, fmt.Errorf("must be between -%g and %g", limit, limit)
	}
	return v, nil
}
