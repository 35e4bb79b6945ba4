// Package batch runs the fetch/normalize/extract pipeline over many URLs.
package batch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/leadgenai/scraper/internal/llm"
	"github.com/leadgenai/scraper/internal/normalize"
	"github.com/leadgenai/scraper/internal/scraper"
)

// PipelineConfig controls single-URL pipeline behavior.
type PipelineConfig struct {
	FetchTimeout time.Duration
	ChunkMaxLen  int
}

// Pipeline executes the full single-URL flow synchronously: fetch, then
// normalize and extract from the raw markup, then chunk, then optionally
// complete each chunk against the model. Concurrency exists only across
// URLs, never inside one URL's pipeline.
type Pipeline struct {
	fetcher    scraper.Fetcher
	normalizer scraper.Normalizer
	extractor  scraper.ContactExtractor
	completer  scraper.Completer
	cfg        PipelineConfig
	logger     *zap.Logger
}

// NewPipeline constructs a Pipeline. completer may be nil when no model
// parsing is wanted.
func NewPipeline(
	fetcher scraper.Fetcher,
	normalizer scraper.Normalizer,
	extractor scraper.ContactExtractor,
	completer scraper.Completer,
	cfg PipelineConfig,
	logger *zap.Logger,
) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ChunkMaxLen <= 0 {
		cfg.ChunkMaxLen = 6000
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 10 * time.Second
	}
	return &Pipeline{
		fetcher:    fetcher,
		normalizer: normalizer,
		extractor:  extractor,
		completer:  completer,
		cfg:        cfg,
		logger:     logger,
	}
}

// Process runs one URL through the pipeline. It always returns a result;
// fetch failure yields an error payload, while normalization or extraction
// trouble degrades to partial output with the error attached.
func (p *Pipeline) Process(ctx context.Context, url string, fieldsPrompt string) scraper.URLResult {
	result := scraper.URLResult{URL: url}

	page, err := p.fetcher.Fetch(ctx, scraper.FetchRequest{
		URL:     url,
		Timeout: p.cfg.FetchTimeout,
	})
	if err != nil {
		taskErr := &scraper.TaskError{URL: url, Err: err}
		p.logger.Warn("fetch failed", zap.String("url", url), zap.Error(err))
		result.Error = taskErr.Error()
		return result
	}
	result.Strategy = page.Strategy
	result.Duration = page.Duration

	doc := p.normalizer.Normalize(page.Body, url)
	result.CleanedText = doc.Text
	result.Chunks = normalize.Chunk(doc.Text, p.cfg.ChunkMaxLen)

	contacts, err := p.extractor.Extract(page.Body, url)
	result.Contacts = &contacts
	if err != nil {
		p.logger.Warn("contact extraction degraded", zap.String("url", url), zap.Error(err))
		result.Error = err.Error()
	}

	if p.completer != nil && fieldsPrompt != "" {
		parsed, err := p.completeChunks(ctx, fieldsPrompt, result.Chunks)
		if err != nil {
			p.logger.Warn("model completion failed", zap.String("url", url), zap.Error(err))
			result.Error = err.Error()
		} else {
			result.Parsed = parsed
		}
	}

	return result
}

// completeChunks invokes the model once per chunk and joins the outputs,
// preserving the newline-delimited "key :: value" contract.
func (p *Pipeline) completeChunks(ctx context.Context, fieldsPrompt string, chunks []string) (string, error) {
	outputs := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		out, err := p.completer.Complete(ctx, llm.BuildPrompt(fieldsPrompt, chunk))
		if err != nil {
			return "", fmt.Errorf("complete chunk %d of %d: %w", i+1, len(chunks), err)
		}
		outputs = append(outputs, out)
	}
	return strings.Join(outputs, "\n"), nil
}
