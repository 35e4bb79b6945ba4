package scraper

import (
	"context"
	"time"
)

// Fetcher retrieves a URL and returns the raw document body plus metadata.
type Fetcher interface {
	Fetch(ctx context.Context, request FetchRequest) (PageResult, error)
}

// Normalizer reduces raw markup to cleaned plain text.
type Normalizer interface {
	Normalize(rawMarkup string, sourceURL string) Document
}

// ContactExtractor pulls emails, phones and social links out of raw markup.
type ContactExtractor interface {
	Extract(rawMarkup string, sourceURL string) (Contacts, error)
}

// Completer is the opaque text-in/text-out language model collaborator.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Clock returns the current time (useful for testing).
type Clock interface {
	Now() time.Time
}

// IDGenerator produces batch run IDs.
type IDGenerator interface {
	NewID() (string, error)
}
