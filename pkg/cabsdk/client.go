package cabsdk

import (
	"net/http"
	"strings"
	"time"
)

// Client talks to one QuickC deployment.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a client with a 15 second timeout, long enough to cover
// a geocoding call that exhausts both upstream auth schemes.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}
