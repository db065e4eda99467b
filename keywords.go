package seoplatform

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// KeywordsService manages keyword tracking.
type KeywordsService struct {
	client *Client
}

// CreateKeywordRequest represents the request to add a keyword to a project.
type CreateKeywordRequest struct {
	// Keyword is the search term to track (required).
	Keyword string `json:"keyword"`
	// Tags are optional labels for the keyword. Omitted when empty.
	Tags []string `json:"tags,omitempty"`
}

// List returns the keywords tracked under a project.
func (s *KeywordsService) List(ctx context.Context, projectID string) (*KeywordList, error) {
	var list KeywordList
	if err := s.client.do(ctx, http.MethodGet, "/projects/"+url.PathEscape(projectID)+"/keywords", nil, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Get returns a keyword by ID.
func (s *KeywordsService) Get(ctx context.Context, keywordID string) (*Keyword, error) {
	var keyword Keyword
	if err := s.client.do(ctx, http.MethodGet, "/keywords/"+url.PathEscape(keywordID), nil, nil, &keyword); err != nil {
		return nil, err
	}
	return &keyword, nil
}

// Create adds a keyword to a project.
func (s *KeywordsService) Create(ctx context.Context, projectID string, req CreateKeywordRequest) (*Keyword, error) {
	var keyword Keyword
	if err := s.client.do(ctx, http.MethodPost, "/projects/"+url.PathEscape(projectID)+"/keywords", nil, req, &keyword); err != nil {
		return nil, err
	}
	return &keyword, nil
}

// Delete stops tracking a keyword.
func (s *KeywordsService) Delete(ctx context.Context, keywordID string) error {
	return s.client.do(ctx, http.MethodDelete, "/keywords/"+url.PathEscape(keywordID), nil, nil, nil)
}

// Suggestions returns keyword suggestions for a seed term. A limit of zero
// or less uses the server default of 10.
func (s *KeywordsService) Suggestions(ctx context.Context, seed string, limit int) ([]Suggestion, error) {
	query := url.Values{}
	query.Set("seed", seed)
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var suggestions []Suggestion
	if err := s.client.do(ctx, http.MethodGet, "/keywords/suggestions", query, nil, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}
