package seoplatform

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// RankingsService tracks search-engine rankings.
type RankingsService struct {
	client *Client
}

// ListRankingsOptions are the optional parameters for listing rankings.
type ListRankingsOptions struct {
	// Limit is the page size (server default: 100).
	Limit int
	// Offset is the number of rankings to skip.
	Offset int
}

// trackRequest is the request body for tracking keyword rankings.
type trackRequest struct {
	KeywordIDs []string `json:"keywordIds"`
}

// List returns current rankings for a project.
func (s *RankingsService) List(ctx context.Context, projectID string, opts *ListRankingsOptions) (*RankingList, error) {
	query := url.Values{}
	if opts != nil {
		if opts.Limit > 0 {
			query.Set("limit", strconv.Itoa(opts.Limit))
		}
		if opts.Offset > 0 {
			query.Set("offset", strconv.Itoa(opts.Offset))
		}
	}

	var list RankingList
	if err := s.client.do(ctx, http.MethodGet, "/projects/"+url.PathEscape(projectID)+"/rankings", query, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// History returns a keyword's ranking history. A days value of zero or less
// uses the server default of 30 days.
func (s *RankingsService) History(ctx context.Context, keywordID string, days int) ([]RankingPoint, error) {
	query := url.Values{}
	if days > 0 {
		query.Set("days", strconv.Itoa(days))
	}

	var points []RankingPoint
	if err := s.client.do(ctx, http.MethodGet, "/keywords/"+url.PathEscape(keywordID)+"/rankings/history", query, nil, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// Track requests fresh ranking measurements for the given keywords.
func (s *RankingsService) Track(ctx context.Context, projectID string, keywordIDs []string) ([]Ranking, error) {
	var rankings []Ranking
	body := trackRequest{KeywordIDs: keywordIDs}
	if err := s.client.do(ctx, http.MethodPost, "/projects/"+url.PathEscape(projectID)+"/rankings/track", nil, body, &rankings); err != nil {
		return nil, err
	}
	return rankings, nil
}
