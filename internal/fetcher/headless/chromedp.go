// Package headless contains the rendered-fetch strategy backed by chromedp.
package headless

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"

	"github.com/leadgenai/scraper/internal/scraper"
)

// Config controls the behavior of the headless fetcher.
type Config struct {
	UserAgent         string
	NavigationTimeout time.Duration
}

// Fetcher implements scraper.Fetcher using chromedp and headless Chrome.
// Every Fetch call launches its own browser process and tears it down on
// exit, so a crashed or hung render cannot leak into later fetches.
type Fetcher struct {
	cfg Config
}

// NewChromedp creates a headless fetcher backed by chromedp.
func NewChromedp(cfg Config) *Fetcher {
	if cfg.NavigationTimeout <= 0 {
		cfg.NavigationTimeout = 25 * time.Second
	}
	return &Fetcher{cfg: cfg}
}

// Strategy reports which retrieval path this fetcher implements.
func (f *Fetcher) Strategy() scraper.FetchStrategy {
	return scraper.StrategyRendered
}

// Fetch navigates with a headless browser and returns the fully rendered DOM.
func (f *Fetcher) Fetch(ctx context.Context, request scraper.FetchRequest) (scraper.PageResult, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", "new"),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disk-cache-size", "0"),
		chromedp.Flag("blink-settings", "imagesEnabled=false"),
		chromedp.Flag("hide-scrollbars", true),
	)
	if f.cfg.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(f.cfg.UserAgent))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	timeout := request.Timeout
	if timeout <= 0 {
		timeout = f.cfg.NavigationTimeout
	}
	taskCtx, cancel := context.WithTimeout(taskCtx, timeout)
	defer cancel()

	start := time.Now()
	html, err := f.runHeadless(taskCtx, request.URL)
	if err != nil {
		return scraper.PageResult{}, &scraper.FetchError{
			URL:      request.URL,
			Strategy: scraper.StrategyRendered,
			Err:      err,
		}
	}

	return scraper.PageResult{
		URL:      request.URL,
		Body:     html,
		Strategy: scraper.StrategyRendered,
		Duration: time.Since(start),
		Status:   scraper.FetchStatusOK,
	}, nil
}

func (f *Fetcher) runHeadless(ctx context.Context, url string) (string, error) {
	var html string
	actions := []chromedp.Action{
		network.Enable(),
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(500 * time.Millisecond),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	}
	if err := chromedp.Run(ctx, actions...); err != nil {
		return "", fmt.Errorf("chromedp run: %w", err)
	}
	return html, nil
}
