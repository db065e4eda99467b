package seoplatform

import "time"

// Project represents a tracked website with target market settings.
type Project struct {
	// ID is the unique identifier for the project.
	ID string `json:"id"`
	// Name is the human-readable project name.
	Name string `json:"name"`
	// Domain is the tracked website domain.
	Domain string `json:"domain"`
	// TargetCountry is the target country code (e.g., "US").
	TargetCountry string `json:"targetCountry"`
	// TargetLanguage is the target language code (e.g., "en").
	TargetLanguage string `json:"targetLanguage"`
	// IsActive indicates whether tracking is active for this project.
	IsActive bool `json:"isActive"`
	// CreatedAt is when the project was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is when the project was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}

// Keyword represents a search term tracked under a project.
type Keyword struct {
	// ID is the unique identifier for the keyword.
	ID string `json:"id"`
	// ProjectID is the project this keyword belongs to.
	ProjectID string `json:"projectId"`
	// Keyword is the tracked search term.
	Keyword string `json:"keyword"`
	// Tags are optional labels attached to the keyword.
	Tags []string `json:"tags,omitempty"`
	// CreatedAt is when the keyword was added.
	CreatedAt time.Time `json:"createdAt"`
}

// Suggestion represents a suggested keyword derived from a seed term.
type Suggestion struct {
	// Keyword is the suggested search term.
	Keyword string `json:"keyword"`
	// SearchVolume is the estimated monthly search volume.
	SearchVolume int `json:"searchVolume"`
	// Difficulty is the estimated ranking difficulty (0-100).
	Difficulty int `json:"difficulty"`
}

// Ranking represents a keyword's measured search-engine position.
type Ranking struct {
	// KeywordID is the keyword this ranking belongs to.
	KeywordID string `json:"keywordId"`
	// Keyword is the tracked search term.
	Keyword string `json:"keyword,omitempty"`
	// Position is the current search-engine position.
	Position int `json:"position"`
	// PreviousPosition is the position at the prior measurement, if any.
	PreviousPosition int `json:"previousPosition,omitempty"`
	// URL is the ranking page.
	URL string `json:"url,omitempty"`
	// Timestamp is when the position was measured.
	Timestamp time.Time `json:"timestamp"`
}

// RankingPoint represents one point in a keyword's ranking history.
type RankingPoint struct {
	// Date is the day of the measurement.
	Date string `json:"date"`
	// Position is the measured position on that day.
	Position int `json:"position"`
}

// AuditStatus is the lifecycle status of an audit job.
type AuditStatus string

// Audit statuses reported by the API.
const (
	AuditStatusPending   AuditStatus = "pending"
	AuditStatusRunning   AuditStatus = "running"
	AuditStatusCompleted AuditStatus = "completed"
	AuditStatusCancelled AuditStatus = "cancelled"
	AuditStatusFailed    AuditStatus = "failed"
)

// Audit represents an automated site-quality scan job.
type Audit struct {
	// ID is the unique identifier for the audit.
	ID string `json:"id"`
	// ProjectID is the project the audit scans.
	ProjectID string `json:"projectId"`
	// Status is the current job status.
	Status AuditStatus `json:"status"`
	// MaxPages is the page-scan limit for the audit, if one was set.
	MaxPages int `json:"maxPages,omitempty"`
	// StartedAt is when the audit started.
	StartedAt time.Time `json:"startedAt"`
	// CompletedAt is when the audit finished (zero if still running).
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// BacklinkStatus is the lifecycle status of a backlink.
type BacklinkStatus string

// Backlink statuses reported by the API.
const (
	BacklinkStatusActive  BacklinkStatus = "active"
	BacklinkStatusLost    BacklinkStatus = "lost"
	BacklinkStatusPending BacklinkStatus = "pending"
)

// Backlink represents an inbound link to a tracked domain.
type Backlink struct {
	// ID is the unique identifier for the backlink.
	ID string `json:"id"`
	// ProjectID is the project the backlink belongs to.
	ProjectID string `json:"projectId"`
	// SourceURL is the page linking in.
	SourceURL string `json:"sourceUrl"`
	// TargetURL is the linked page on the tracked domain.
	TargetURL string `json:"targetUrl"`
	// AnchorText is the link's anchor text.
	AnchorText string `json:"anchorText,omitempty"`
	// Status is the backlink lifecycle status.
	Status BacklinkStatus `json:"status"`
	// FirstSeen is when the link was first discovered.
	FirstSeen time.Time `json:"firstSeen"`
	// LastSeen is when the link was last confirmed.
	LastSeen time.Time `json:"lastSeen"`
}

// BacklinkStats summarizes a project's backlink profile.
type BacklinkStats struct {
	// Total is the number of known backlinks.
	Total int `json:"total"`
	// Active is the number of currently active backlinks.
	Active int `json:"active"`
	// Lost is the number of lost backlinks.
	Lost int `json:"lost"`
	// Pending is the number of backlinks awaiting verification.
	Pending int `json:"pending"`
	// ReferringDomains is the number of unique linking domains.
	ReferringDomains int `json:"referringDomains"`
}

// RateLimitStatus reports the caller's current rate-limit window.
type RateLimitStatus struct {
	// Limit is the number of requests allowed per window.
	Limit int `json:"limit"`
	// Remaining is the number of requests left in the current window.
	Remaining int `json:"remaining"`
	// ResetAt is when the window resets.
	ResetAt time.Time `json:"resetAt"`
}

// Pagination is the envelope echoed back by list endpoints.
type Pagination struct {
	// Limit is the page size used for the request.
	Limit int `json:"limit"`
	// Offset is the offset used, for offset-paginated endpoints.
	Offset int `json:"offset,omitempty"`
	// NextCursor is the cursor for the next page, for cursor-paginated
	// endpoints. Empty when there are no more pages.
	NextCursor string `json:"nextCursor,omitempty"`
	// Total is the total number of matching records, when known.
	Total int `json:"total,omitempty"`
}

// ProjectList is the response envelope for listing projects.
type ProjectList struct {
	Data       []Project  `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// KeywordList is the response envelope for listing keywords.
type KeywordList struct {
	Data       []Keyword  `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// RankingList is the response envelope for listing rankings.
type RankingList struct {
	Data       []Ranking  `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// BacklinkList is the response envelope for listing backlinks.
type BacklinkList struct {
	Data       []Backlink `json:"data"`
	Pagination Pagination `json:"pagination"`
}
