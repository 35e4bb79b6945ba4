package scraper

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by the retrieval layer.
var (
	// ErrAllStrategiesFailed means every configured fetch strategy was tried.
	ErrAllStrategiesFailed = errors.New("all fetch strategies failed")
	// ErrBadStatus marks a non-success HTTP status on an otherwise complete fetch.
	ErrBadStatus = errors.New("non-success status")
)

// FetchError wraps a failed retrieval attempt with the strategy that produced it.
type FetchError struct {
	URL      string
	Strategy FetchStrategy
	Status   int
	Err      error
}

func (e *FetchError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("fetch %s via %s: status %d: %v", e.URL, e.Strategy, e.Status, e.Err)
	}
	return fmt.Sprintf("fetch %s via %s: %v", e.URL, e.Strategy, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// TaskError wraps any pipeline failure for per-URL reporting.
type TaskError struct {
	URL string
	Err error
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("pipeline task for %s: %v", e.URL, e.Err)
}

func (e *TaskError) Unwrap() error {
	return e.Err
}
