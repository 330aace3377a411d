package ragclient

import (
	"context"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Organization is the tenant owning the current token.
type Organization struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Plan      string               `json:"plan,omitempty"`
	Settings  OrganizationSettings `json:"settings"`
	CreatedAt string               `json:"created_at,omitempty"`
}

// OrganizationSettings holds tenant-wide configuration.
type OrganizationSettings struct {
	DefaultConfidentialityLevel string `json:"default_confidentiality_level,omitempty"`
	RetentionDays               int    `json:"retention_days,omitempty"`
	AllowExternalSharing        bool   `json:"allow_external_sharing"`
}

func (s OrganizationSettings) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.RetentionDays, validation.Min(0), validation.Max(3650)),
		validation.Field(&s.DefaultConfidentialityLevel,
			validation.In("public", "internal", "restricted", "secret")),
	)
}

// Member is a user belonging to the organization.
type Member struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// MemberList is the organization's membership.
type MemberList struct {
	Members []Member `json:"members"`
	Total   int      `json:"total"`
}

// Organization fetches the token's tenant.
func (c *Client) Organization(ctx context.Context) (*Organization, error) {
	var org Organization
	if err := c.do(ctx, "Organization", http.MethodGet, "/v1/organization", nil, nil, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

// UpdateOrganizationSettings replaces the tenant's settings.
func (c *Client) UpdateOrganizationSettings(ctx context.Context, settings OrganizationSettings) (*Organization, error) {
	if err := validateRequest(settings); err != nil {
		return nil, err
	}

	var org Organization
	if err := c.do(ctx, "UpdateOrganizationSettings", http.MethodPut, "/v1/organization/settings", nil, settings, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

// ListMembers returns the organization's members.
func (c *Client) ListMembers(ctx context.Context) (*MemberList, error) {
	var list MemberList
	if err := c.do(ctx, "ListMembers", http.MethodGet, "/v1/organization/members", nil, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}
