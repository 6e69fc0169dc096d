package cabsdk

import (
	"context"
)

// GetLiveness checks if the service is alive.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.getJSON(ctx, "/livez", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetReadiness checks the database and the failure log.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.getJSON(ctx, "/readyz", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

func (c *Client) GetPartnerHealth(ctx context.Context) (*PartnerHealthResponse, error) {
	var health PartnerHealthResponse
	if err := c.getJSON(ctx, "/v1/partner/health", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

func (c *Client) GetServiceInfo(ctx context.Context) (*ServiceInfoResponse, error) {
	var info ServiceInfoResponse
	if err := c.getJSON(ctx, "/", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}
