package cabsdk

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Search prices every available driver for a pickup, cheapest first.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	var out SearchResponse
	if err := c.postJSON(ctx, "/v1/search", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Book confirms a ride with the driver from a search offer.
func (c *Client) Book(ctx context.Context, req BookRequest) (*BookingResponse, error) {
	var out BookingResponse
	if err := c.postJSON(ctx, "/v1/book", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// History lists bookings made from phone, newest first.
func (c *Client) History(ctx context.Context, phone string) (*HistoryResponse, error) {
	var out HistoryResponse
	if err := c.getJSON(ctx, "/v1/history/"+url.PathEscape(phone), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetBooking fetches one booking by its reference.
func (c *Client) GetBooking(ctx context.Context, bookingID string) (*BookingRecord, error) {
	var out BookingRecord
	if err := c.getJSON(ctx, "/v1/bookings/"+url.PathEscape(bookingID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// IVRWebhook posts a voice-call webhook the way the telephony provider
// does and returns the TwiML document the server answers with.
func (c *Client) IVRWebhook(ctx context.Context, from string) (string, error) {
	form := url.Values{"From": {from}}
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/ivr", nil, strings.NewReader(form.Encode()), map[string]string{
		"Content-Type": "application/x-www-form-urlencoded",
	})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", parseErrorResponse(resp, body)
	}
	return string(body), nil
}
