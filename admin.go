package ragclient

import (
	"context"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// APIClient is a provisioned client credential, as returned by the
// admin endpoints. The secret is only present in the creation
// response.
type APIClient struct {
	ID             string   `json:"id"`
	OrganizationID string   `json:"organization_id"`
	Name           string   `json:"name"`
	Scopes         []string `json:"scopes,omitempty"`
	Secret         string   `json:"secret,omitempty"`
	CreatedAt      string   `json:"created_at,omitempty"`
}

// CreateAPIClientRequest provisions a new client credential. Admin
// scope required.
type CreateAPIClientRequest struct {
	OrganizationID string   `json:"organization_id"`
	Name           string   `json:"name"`
	Scopes         []string `json:"scopes,omitempty"`
}

func (r CreateAPIClientRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.OrganizationID, validation.Required),
		validation.Field(&r.Name, validation.Required, validation.Length(1, 128)),
	)
}

// UsageReport summarizes billable activity for the token's tenant.
type UsageReport struct {
	OrganizationID   string `json:"organization_id"`
	Period           string `json:"period"`
	DocumentsIndexed int64  `json:"documents_indexed"`
	SearchQueries    int64  `json:"search_queries"`
	StorageBytes     int64  `json:"storage_bytes"`
}

// HealthStatus is the service's self-reported health.
type HealthStatus struct {
	Status  string            `json:"status"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// CreateAPIClient provisions a client credential.
func (c *Client) CreateAPIClient(ctx context.Context, req CreateAPIClientRequest) (*APIClient, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var apiClient APIClient
	if err := c.do(ctx, "CreateAPIClient", http.MethodPost, "/v1/admin/clients", nil, req, &apiClient); err != nil {
		return nil, err
	}
	return &apiClient, nil
}

// Usage returns the current billing period's usage.
func (c *Client) Usage(ctx context.Context) (*UsageReport, error) {
	var report UsageReport
	if err := c.do(ctx, "Usage", http.MethodGet, "/v1/admin/usage", nil, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// Health checks the service. Works without an authenticator.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var status HealthStatus
	if err := c.do(ctx, "Health", http.MethodGet, "/v1/health", nil, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
