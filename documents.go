package ragclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Document is a single indexed document as the service reports it.
type Document struct {
	ID           string         `json:"id"`
	CollectionID string         `json:"collection_id"`
	Title        string         `json:"title,omitempty"`
	ContentType  string         `json:"content_type,omitempty"`
	Status       string         `json:"status"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	CreatedAt    string         `json:"created_at,omitempty"`
	UpdatedAt    string         `json:"updated_at,omitempty"`
}

// DocumentList is a page of documents.
type DocumentList struct {
	Documents []Document `json:"documents"`
	Total     int        `json:"total"`
	Offset    int        `json:"offset"`
	Limit     int        `json:"limit"`
}

// IngestDocumentRequest submits a document for indexing.
type IngestDocumentRequest struct {
	CollectionID         string         `json:"collection_id"`
	Title                string         `json:"title,omitempty"`
	Content              string         `json:"content"`
	ContentType          string         `json:"content_type,omitempty"`
	ConfidentialityLevel string         `json:"confidentiality_level,omitempty"`
	Metadata             map[string]any `json:"metadata,omitempty"`
}

func (r IngestDocumentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CollectionID, validation.Required),
		validation.Field(&r.Content, validation.Required),
		validation.Field(&r.ContentType, validation.In("text/plain", "text/markdown", "text/html", "application/pdf")),
	)
}

// ListDocumentsRequest filters and pages the document listing.
type ListDocumentsRequest struct {
	CollectionID string
	Status       string
	Offset       int
	Limit        int
}

func (r ListDocumentsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Offset, validation.Min(0)),
		validation.Field(&r.Limit, validation.Min(0), validation.Max(500)),
	)
}

// IngestDocument submits a document for indexing. The service
// processes it asynchronously; the returned document's Status reports
// the pipeline stage.
func (c *Client) IngestDocument(ctx context.Context, req IngestDocumentRequest) (*Document, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var doc Document
	if err := c.do(ctx, "IngestDocument", http.MethodPost, "/v1/documents", nil, req, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetDocument fetches a single document by id.
func (c *Client) GetDocument(ctx context.Context, id string) (*Document, error) {
	if id == "" {
		return nil, validation.Errors{"id": validation.ErrRequired}
	}

	var doc Document
	if err := c.do(ctx, "GetDocument", http.MethodGet, "/v1/documents/"+url.PathEscape(id), nil, nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// DeleteDocument removes a document and its index entries.
func (c *Client) DeleteDocument(ctx context.Context, id string) error {
	if id == "" {
		return validation.Errors{"id": validation.ErrRequired}
	}
	return c.do(ctx, "DeleteDocument", http.MethodDelete, "/v1/documents/"+url.PathEscape(id), nil, nil, nil)
}

// ListDocuments returns a page of documents matching the request.
func (c *Client) ListDocuments(ctx context.Context, req ListDocumentsRequest) (*DocumentList, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	query := url.Values{}
	if req.CollectionID != "" {
		query.Set("collection_id", req.CollectionID)
	}
	if req.Status != "" {
		query.Set("status", req.Status)
	}
	if req.Offset > 0 {
		query.Set("offset", strconv.Itoa(req.Offset))
	}
	if req.Limit > 0 {
		query.Set("limit", strconv.Itoa(req.Limit))
	}

	var list DocumentList
	if err := c.do(ctx, "ListDocuments", http.MethodGet, "/v1/documents", query, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}
