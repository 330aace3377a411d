package ragclient

import (
	"context"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// SearchRequest queries the retrieval index.
type SearchRequest struct {
	Query                 string         `json:"query"`
	CollectionID          string         `json:"collection_id,omitempty"`
	TopK                  int            `json:"top_k,omitempty"`
	ConfidentialityLevels []string       `json:"confidentiality_levels,omitempty"`
	Filters               map[string]any `json:"filters,omitempty"`
}

func (r SearchRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Query, validation.Required),
		validation.Field(&r.TopK, validation.Min(0), validation.Max(100)),
	)
}

// SearchHit is one retrieved chunk with its relevance score.
type SearchHit struct {
	DocumentID string         `json:"document_id"`
	ChunkID    string         `json:"chunk_id,omitempty"`
	Content    string         `json:"content"`
	Score      float64        `json:"score"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// SearchResult is the ranked hit list for a query.
type SearchResult struct {
	Hits  []SearchHit `json:"hits"`
	Total int         `json:"total"`
}

// RetrieveRequest asks for grounded context assembled for a prompt.
type RetrieveRequest struct {
	Query        string `json:"query"`
	CollectionID string `json:"collection_id,omitempty"`
	MaxTokens    int    `json:"max_tokens,omitempty"`
}

func (r RetrieveRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Query, validation.Required),
		validation.Field(&r.MaxTokens, validation.Min(0)),
	)
}

// RetrieveResult is the assembled context plus its sources.
type RetrieveResult struct {
	Context string      `json:"context"`
	Sources []SearchHit `json:"sources"`
}

// Search runs a similarity query against the retrieval index.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var result SearchResult
	if err := c.do(ctx, "Search", http.MethodPost, "/v1/search", nil, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Retrieve assembles grounded context for a query, ready to splice
// into a prompt.
func (c *Client) Retrieve(ctx context.Context, req RetrieveRequest) (*RetrieveResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var result RetrieveResult
	if err := c.do(ctx, "Retrieve", http.MethodPost, "/v1/retrieve", nil, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
