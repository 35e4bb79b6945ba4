package batch

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/leadgenai/scraper/internal/scraper"
)

// Orchestrator fans URL work out to a fixed pool of workers and joins on
// every dispatched task. One task's failure never aborts its siblings.
type Orchestrator struct {
	pipeline    *Pipeline
	ids         scraper.IDGenerator
	clock       scraper.Clock
	concurrency int
	logger      *zap.Logger
}

// New constructs an Orchestrator.
func New(
	pipeline *Pipeline,
	ids scraper.IDGenerator,
	clock scraper.Clock,
	concurrency int,
	logger *zap.Logger,
) *Orchestrator {
	if concurrency <= 0 {
		concurrency = 6
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		pipeline:    pipeline,
		ids:         ids,
		clock:       clock,
		concurrency: concurrency,
		logger:      logger,
	}
}

// RunBatch processes every unique input URL and returns one outcome per
// unique URL. Duplicate inputs collapse to a single dispatch and a single
// result; callers needing per-slot fan-out correlate by URL. Completion
// order is arbitrary, so results always carry their source URL.
func (o *Orchestrator) RunBatch(ctx context.Context, urls []string, fieldsPrompt string) (scraper.BatchResult, error) {
	batchID, err := o.ids.NewID()
	if err != nil {
		return scraper.BatchResult{}, fmt.Errorf("generate batch id: %w", err)
	}

	unique := dedupeURLs(urls)
	start := o.clock.Now()
	o.logger.Info("batch started",
		zap.String("batch_id", batchID),
		zap.Int("urls", len(urls)),
		zap.Int("unique", len(unique)),
	)

	jobs := make(chan string)
	results := make(chan scraper.URLResult, len(unique))

	var wg sync.WaitGroup
	for i := 0; i < o.concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for url := range jobs {
				results <- o.runTask(ctx, url, fieldsPrompt)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, url := range unique {
			select {
			case jobs <- url:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	collected := make([]scraper.URLResult, 0, len(unique))
	for r := range results {
		collected = append(collected, r)
	}

	// Context cancellation can stop dispatch early; still account for every
	// unique URL exactly once.
	if len(collected) < len(unique) {
		done := make(map[string]bool, len(collected))
		for _, r := range collected {
			done[r.URL] = true
		}
		for _, url := range unique {
			if !done[url] {
				collected = append(collected, scraper.URLResult{
					URL:   url,
					Error: fmt.Sprintf("batch canceled before dispatch: %v", ctx.Err()),
				})
			}
		}
	}

	elapsed := o.clock.Now().Sub(start)
	o.logger.Info("batch finished",
		zap.String("batch_id", batchID),
		zap.Int("results", len(collected)),
		zap.Duration("elapsed", elapsed),
	)

	return scraper.BatchResult{
		ID:      batchID,
		Results: collected,
		Elapsed: elapsed,
	}, nil
}

// runTask isolates one URL's pipeline: a panic anywhere inside becomes that
// URL's failure payload instead of taking down the batch.
func (o *Orchestrator) runTask(ctx context.Context, url string, fieldsPrompt string) (result scraper.URLResult) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("pipeline task panicked", zap.String("url", url), zap.Any("panic", r))
			result = scraper.URLResult{
				URL:   url,
				Error: fmt.Sprintf("pipeline task panicked: %v", r),
			}
		}
	}()
	return o.pipeline.Process(ctx, url, fieldsPrompt)
}

// dedupeURLs keeps the first occurrence of each URL in input order.
func dedupeURLs(urls []string) []string {
	seen := make(map[string]bool, len(urls))
	out := make([]string, 0, len(urls))
	for _, url := range urls {
		if url == "" || seen[url] {
			continue
		}
		seen[url] = true
		out = append(out, url)
	}
	return out
}
