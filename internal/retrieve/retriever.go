// Package retrieve coordinates fetch strategies behind a single Fetch call.
package retrieve

import (
	"context"
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/leadgenai/scraper/internal/scraper"
)

// Strategy is a fetcher that names its retrieval path.
type Strategy interface {
	scraper.Fetcher
	Strategy() scraper.FetchStrategy
}

// Retriever tries each configured strategy in order until one succeeds.
// The first strategy is expected to be the cheap direct fetch; later entries
// are progressively heavier fallbacks.
type Retriever struct {
	strategies []Strategy
	cache      *lru.Cache[string, scraper.PageResult]
	logger     *zap.Logger
}

// New constructs a Retriever. cacheSize zero disables result caching.
func New(strategies []Strategy, cacheSize int, logger *zap.Logger) (*Retriever, error) {
	if len(strategies) == 0 {
		return nil, errors.New("at least one fetch strategy is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	var cache *lru.Cache[string, scraper.PageResult]
	if cacheSize > 0 {
		c, err := lru.New[string, scraper.PageResult](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("build fetch cache: %w", err)
		}
		cache = c
	}
	return &Retriever{
		strategies: strategies,
		cache:      cache,
		logger:     logger,
	}, nil
}

// Fetch returns exactly one outcome per call: the first strategy's result on
// success, else the last strategy's failure. Results are cached by URL;
// entries are immutable so concurrent insertion races are benign.
func (r *Retriever) Fetch(ctx context.Context, request scraper.FetchRequest) (scraper.PageResult, error) {
	if r.cache != nil {
		if cached, ok := r.cache.Get(request.URL); ok {
			scraper.TotalCacheHits.Inc()
			r.logger.Debug("fetch served from cache", zap.String("url", request.URL))
			return cached, nil
		}
	}

	scraper.TotalFetches.Inc()

	var lastErr error
	for i, strategy := range r.strategies {
		if ctx.Err() != nil {
			break
		}
		if i > 0 {
			scraper.TotalRenderedFallbacks.Inc()
			r.logger.Debug("falling back to next strategy",
				zap.String("url", request.URL),
				zap.String("strategy", string(strategy.Strategy())),
			)
		}
		result, err := strategy.Fetch(ctx, request)
		if err != nil {
			lastErr = err
			r.logger.Warn("fetch strategy failed",
				zap.String("url", request.URL),
				zap.String("strategy", string(strategy.Strategy())),
				zap.Error(err),
			)
			continue
		}
		if r.cache != nil {
			r.cache.Add(request.URL, result)
		}
		return result, nil
	}

	scraper.TotalFetchErrors.Inc()
	if lastErr == nil {
		lastErr = ctx.Err()
	}
	return scraper.PageResult{
		URL:    request.URL,
		Status: scraper.FetchStatusFailed,
	}, fmt.Errorf("%w: %w", scraper.ErrAllStrategiesFailed, lastErr)
}

// PurgeCache drops every cached result. Callers needing freshness use this
// or size the cache to zero.
func (r *Retriever) PurgeCache() {
	if r.cache != nil {
		r.cache.Purge()
	}
}
