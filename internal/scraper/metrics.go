package scraper

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TotalFetches tracks the number of fetch attempts dispatched.
	TotalFetches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scraper_fetches_total",
		Help: "The total number of page fetch attempts.",
	})
	// TotalRenderedFallbacks tracks direct fetches promoted to the headless browser.
	TotalRenderedFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scraper_rendered_fallbacks_total",
		Help: "The total number of fetches that fell back to headless rendering.",
	})
	// TotalFetchErrors tracks fetches that failed on every strategy.
	TotalFetchErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scraper_fetch_errors_total",
		Help: "The total number of fetches that failed all strategies.",
	})
	// TotalCacheHits tracks fetches served from the bounded result cache.
	TotalCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scraper_cache_hits_total",
		Help: "The total number of fetches served from the result cache.",
	})
	// TotalContactsFound tracks extracted contact entries across all categories.
	TotalContactsFound = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scraper_contacts_found_total",
		Help: "The total number of contact entries extracted.",
	})
)
