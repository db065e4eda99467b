package seoplatform

import (
	"context"
	"net/http"
	"net/url"
)

// BacklinksService monitors and analyzes backlinks.
type BacklinksService struct {
	client *Client
}

// ListBacklinksOptions are the optional parameters for listing backlinks.
type ListBacklinksOptions struct {
	// Status filters backlinks by lifecycle status. Empty means no filter.
	Status BacklinkStatus
}

// List returns the backlinks discovered for a project.
func (s *BacklinksService) List(ctx context.Context, projectID string, opts *ListBacklinksOptions) (*BacklinkList, error) {
	query := url.Values{}
	if opts != nil && opts.Status != "" {
		query.Set("status", string(opts.Status))
	}

	var list BacklinkList
	if err := s.client.do(ctx, http.MethodGet, "/projects/"+url.PathEscape(projectID)+"/backlinks", query, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Stats returns aggregate backlink statistics for a project.
func (s *BacklinksService) Stats(ctx context.Context, projectID string) (*BacklinkStats, error) {
	var stats BacklinkStats
	if err := s.client.do(ctx, http.MethodGet, "/projects/"+url.PathEscape(projectID)+"/backlinks/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Refresh asks the platform to re-crawl the project's backlink profile.
func (s *BacklinksService) Refresh(ctx context.Context, projectID string) error {
	return s.client.do(ctx, http.MethodPost, "/projects/"+url.PathEscape(projectID)+"/backlinks/refresh", nil, nil, nil)
}
