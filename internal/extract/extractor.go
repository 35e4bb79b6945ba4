// Package extract locates contact information in raw page markup.
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/leadgenai/scraper/internal/scraper"
)

// Config caps extraction output per category.
type Config struct {
	MaxEmails     int
	MaxPhones     int
	MaxPerSocial  int
	MaxAnchorScan int
}

// Extractor implements scraper.ContactExtractor with regex and anchor rules.
// All results are deduplicated in first-seen order before capping, so output
// is deterministic for a fixed input.
type Extractor struct {
	cfg Config
}

// New builds an Extractor, filling unset caps with defaults.
func New(cfg Config) *Extractor {
	if cfg.MaxEmails <= 0 {
		cfg.MaxEmails = 5
	}
	if cfg.MaxPhones <= 0 {
		cfg.MaxPhones = 3
	}
	if cfg.MaxPerSocial <= 0 {
		cfg.MaxPerSocial = 3
	}
	if cfg.MaxAnchorScan <= 0 {
		cfg.MaxAnchorScan = 100
	}
	return &Extractor{cfg: cfg}
}

// Extract pulls emails, phones and social links from the markup. It never
// panics; a failed parse degrades to an empty record plus an error.
func (e *Extractor) Extract(rawMarkup string, sourceURL string) (scraper.Contacts, error) {
	contacts := scraper.Contacts{
		Emails:      []string{},
		Phones:      []string{},
		SocialLinks: map[string][]string{},
		SourceURL:   sourceURL,
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawMarkup))
	if err != nil {
		return contacts, fmt.Errorf("parse markup for %s: %w", sourceURL, err)
	}

	text := doc.Text()
	contacts.Emails = e.extractEmails(text)
	contacts.Phones = e.extractPhones(text)
	contacts.SocialLinks = e.extractSocialLinks(doc, sourceURL)

	found := len(contacts.Emails) + len(contacts.Phones)
	for _, links := range contacts.SocialLinks {
		found += len(links)
	}
	scraper.TotalContactsFound.Add(float64(found))

	return contacts, nil
}

// dedupeCap keeps the first occurrence of each value, up to limit entries.
func dedupeCap(values []string, limit int) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, limit)
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
		if len(out) == limit {
			break
		}
	}
	return out
}
