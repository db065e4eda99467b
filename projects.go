package seoplatform

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ProjectsService manages SEO projects.
type ProjectsService struct {
	client *Client
}

// ListProjectsOptions are the optional parameters for listing projects.
type ListProjectsOptions struct {
	// Limit is the page size (server default: 50).
	Limit int
	// Cursor is the opaque pagination cursor from a previous page.
	Cursor string
}

// CreateProjectRequest represents the request to create a new project.
type CreateProjectRequest struct {
	// Name is the human-readable project name (required).
	Name string `json:"name"`
	// Domain is the website domain to track (required).
	Domain string `json:"domain"`
	// TargetCountry is the target country code, e.g. "US" (required).
	TargetCountry string `json:"targetCountry"`
	// TargetLanguage is the target language code, e.g. "en" (required).
	TargetLanguage string `json:"targetLanguage"`
}

// UpdateProjectRequest represents the request to update a project.
// Nil fields are left unchanged and omitted from the request body.
type UpdateProjectRequest struct {
	Name           *string `json:"name,omitempty"`
	Domain         *string `json:"domain,omitempty"`
	TargetCountry  *string `json:"targetCountry,omitempty"`
	TargetLanguage *string `json:"targetLanguage,omitempty"`
	IsActive       *bool   `json:"isActive,omitempty"`
}

// List returns all projects, paginated by an opaque cursor.
func (s *ProjectsService) List(ctx context.Context, opts *ListProjectsOptions) (*ProjectList, error) {
	query := url.Values{}
	if opts != nil {
		if opts.Limit > 0 {
			query.Set("limit", strconv.Itoa(opts.Limit))
		}
		if opts.Cursor != "" {
			query.Set("cursor", opts.Cursor)
		}
	}

	var list ProjectList
	if err := s.client.do(ctx, http.MethodGet, "/projects", query, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Get returns a project by ID.
func (s *ProjectsService) Get(ctx context.Context, projectID string) (*Project, error) {
	var project Project
	if err := s.client.do(ctx, http.MethodGet, "/projects/"+url.PathEscape(projectID), nil, nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// Create creates a new project.
func (s *ProjectsService) Create(ctx context.Context, req CreateProjectRequest) (*Project, error) {
	var project Project
	if err := s.client.do(ctx, http.MethodPost, "/projects", nil, req, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// Update updates a project. Only the non-nil fields of req are sent.
func (s *ProjectsService) Update(ctx context.Context, projectID string, req UpdateProjectRequest) (*Project, error) {
	var project Project
	if err := s.client.do(ctx, http.MethodPut, "/projects/"+url.PathEscape(projectID), nil, req, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// Delete deletes a project.
func (s *ProjectsService) Delete(ctx context.Context, projectID string) error {
	return s.client.do(ctx, http.MethodDelete, "/projects/"+url.PathEscape(projectID), nil, nil, nil)
}
