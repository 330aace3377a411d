package ragclient

import (
	"context"
	"net/http"
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Collection groups documents that share an index configuration.
type Collection struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	EmbeddingModel string `json:"embedding_model,omitempty"`
	DocumentCount  int    `json:"document_count"`
	CreatedAt      string `json:"created_at,omitempty"`
}

// CollectionList is the full collection listing.
type CollectionList struct {
	Collections []Collection `json:"collections"`
	Total       int          `json:"total"`
}

// CreateCollectionRequest creates a new collection.
type CreateCollectionRequest struct {
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	EmbeddingModel string `json:"embedding_model,omitempty"`
}

func (r CreateCollectionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 128)),
		validation.Field(&r.Description, validation.Length(0, 1024)),
	)
}

// CreateCollection creates a collection.
func (c *Client) CreateCollection(ctx context.Context, req CreateCollectionRequest) (*Collection, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var col Collection
	if err := c.do(ctx, "CreateCollection", http.MethodPost, "/v1/collections", nil, req, &col); err != nil {
		return nil, err
	}
	return &col, nil
}

// GetCollection fetches a collection by id.
func (c *Client) GetCollection(ctx context.Context, id string) (*Collection, error) {
	if id == "" {
		return nil, validation.Errors{"id": validation.ErrRequired}
	}

	var col Collection
	if err := c.do(ctx, "GetCollection", http.MethodGet, "/v1/collections/"+url.PathEscape(id), nil, nil, &col); err != nil {
		return nil, err
	}
	return &col, nil
}

// ListCollections returns all collections visible to the token.
func (c *Client) ListCollections(ctx context.Context) (*CollectionList, error) {
	var list CollectionList
	if err := c.do(ctx, "ListCollections", http.MethodGet, "/v1/collections", nil, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// DeleteCollection removes a collection and all documents in it.
func (c *Client) DeleteCollection(ctx context.Context, id string) error {
	if id == "" {
		return validation.Errors{"id": validation.ErrRequired}
	}
	return c.do(ctx, "DeleteCollection", http.MethodDelete, "/v1/collections/"+url.PathEscape(id), nil, nil, nil)
}
