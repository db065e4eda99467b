package seoplatform

import (
	"context"
	"net/http"
	"net/url"
)

// AuditsService manages site audits.
type AuditsService struct {
	client *Client
}

// StartAuditOptions are the optional parameters for starting an audit.
type StartAuditOptions struct {
	// MaxPages limits how many pages the audit scans. Zero means no limit
	// is sent and the server default applies.
	MaxPages int
}

// startAuditRequest is the request body for starting an audit.
type startAuditRequest struct {
	MaxPages int `json:"maxPages,omitempty"`
}

// List returns the audits run for a project.
func (s *AuditsService) List(ctx context.Context, projectID string) ([]Audit, error) {
	var audits []Audit
	if err := s.client.do(ctx, http.MethodGet, "/projects/"+url.PathEscape(projectID)+"/audits", nil, nil, &audits); err != nil {
		return nil, err
	}
	return audits, nil
}

// Get returns an audit by ID.
func (s *AuditsService) Get(ctx context.Context, auditID string) (*Audit, error) {
	var audit Audit
	if err := s.client.do(ctx, http.MethodGet, "/audits/"+url.PathEscape(auditID), nil, nil, &audit); err != nil {
		return nil, err
	}
	return &audit, nil
}

// Start starts a new audit for a project.
func (s *AuditsService) Start(ctx context.Context, projectID string, opts *StartAuditOptions) (*Audit, error) {
	body := startAuditRequest{}
	if opts != nil {
		body.MaxPages = opts.MaxPages
	}

	var audit Audit
	if err := s.client.do(ctx, http.MethodPost, "/projects/"+url.PathEscape(projectID)+"/audits", nil, body, &audit); err != nil {
		return nil, err
	}
	return &audit, nil
}

// Cancel cancels a running audit.
func (s *AuditsService) Cancel(ctx context.Context, auditID string) error {
	return s.client.do(ctx, http.MethodPost, "/audits/"+url.PathEscape(auditID)+"/cancel", nil, nil, nil)
}

// Latest returns the most recent audit for a project.
func (s *AuditsService) Latest(ctx context.Context, projectID string) (*Audit, error) {
	var audit Audit
	if err := s.client.do(ctx, http.MethodGet, "/projects/"+url.PathEscape(projectID)+"/audits/latest", nil, nil, &audit); err != nil {
		return nil, err
	}
	return &audit, nil
}
