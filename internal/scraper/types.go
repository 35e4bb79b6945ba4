// Package scraper defines core types shared across subsystems.
package scraper

import (
	"time"
)

// FetchStrategy identifies which retrieval path produced a page.
type FetchStrategy string

// Strategy values recorded on every fetch result.
const (
	StrategyDirect   FetchStrategy = "direct-fetch"
	StrategyRendered FetchStrategy = "rendered-fetch"
)

// FetchStatus represents the terminal outcome of a retrieval attempt.
type FetchStatus string

// Fetch status values.
const (
	FetchStatusOK     FetchStatus = "ok"
	FetchStatusFailed FetchStatus = "failed"
)

// FetchRequest captures everything needed to fetch a URL.
type FetchRequest struct {
	URL     string
	Timeout time.Duration
}

// PageResult is the outcome of retrieving one URL.
// Immutable once produced; consumed by the normalizer and contact extractor.
type PageResult struct {
	URL      string
	Body     string
	Strategy FetchStrategy
	Duration time.Duration
	Status   FetchStatus
}

// Document is the cleaned plain-text view of a fetched page.
// Text is newline-joined with no markup and no blank lines.
type Document struct {
	URL  string
	Text string
}

// Contacts holds the structured contact data extracted from one page.
// All slices are deduplicated in first-seen order and capped.
type Contacts struct {
	Emails      []string            `json:"emails"`
	Phones      []string            `json:"phones"`
	SocialLinks map[string][]string `json:"social_links"`
	SourceURL   string              `json:"source_url"`
}

// URLResult is the per-URL payload merged into a batch result.
// Either Error is empty and the success fields are populated, or Error
// describes why the URL's pipeline failed.
type URLResult struct {
	URL         string        `json:"url"`
	CleanedText string        `json:"cleaned_text,omitempty"`
	Chunks      []string      `json:"-"`
	Contacts    *Contacts     `json:"contacts,omitempty"`
	Parsed      string        `json:"parsed,omitempty"`
	Strategy    FetchStrategy `json:"strategy,omitempty"`
	Duration    time.Duration `json:"-"`
	Error       string        `json:"error,omitempty"`
}

// BatchResult aggregates one outcome per unique input URL.
// Completion order is not input order; callers correlate by URL.
type BatchResult struct {
	ID      string        `json:"id"`
	Results []URLResult   `json:"results"`
	Elapsed time.Duration `json:"elapsed"`
}

// ByURL indexes the batch outcomes by source URL.
func (b BatchResult) ByURL() map[string]URLResult {
	out := make(map[string]URLResult, len(b.Results))
	for _, r := range b.Results {
		out[r.URL] = r
	}
	return out
}
