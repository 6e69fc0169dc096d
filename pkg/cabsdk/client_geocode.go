package cabsdk

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// Autocomplete returns place suggestions for query.
func (c *Client) Autocomplete(ctx context.Context, query string) (GeocodeResult, error) {
	var out json.RawMessage
	if err := c.getJSON(ctx, "/v1/mapmyindia/autocomplete", url.Values{"query": {query}}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Reverse returns the address at lat, lng.
func (c *Client) Reverse(ctx context.Context, lat, lng float64) (GeocodeResult, error) {
	q := url.Values{
		"lat": {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lng": {strconv.FormatFloat(lng, 'f', -1, 64)},
	}
	var out json.RawMessage
	if err := c.getJSON(ctx, "/v1/mapmyindia/reverse", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FailureLogs reads the most recent proxy failures. limit <= 0 uses the
// server default.
func (c *Client) FailureLogs(ctx context.Context, adminToken string, limit int) (*FailureLogsResponse, error) {
	q := url.Values{"admin_token": {adminToken}}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out FailureLogsResponse
	if err := c.getJSON(ctx, "/v1/mapmyindia/logs", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
