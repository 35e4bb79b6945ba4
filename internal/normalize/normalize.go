// Package normalize reduces raw page markup to model-ready plain text.
package normalize

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/leadgenai/scraper/internal/scraper"
)

// Elements removed wholesale from the content region.
const strippedElements = "script, style, nav, footer, header, iframe"

// Class-attribute substrings that mark boilerplate containers.
var boilerplateClassKeywords = []string{"nav", "menu", "footer", "header", "sidebar"}

// Normalizer implements scraper.Normalizer with goquery.
type Normalizer struct{}

// New creates a Normalizer.
func New() *Normalizer {
	return &Normalizer{}
}

// Normalize extracts the primary content region and linearizes it to
// newline-joined text with no markup and no blank lines. Malformed markup
// degrades to partial or empty output; it never fails.
func (n *Normalizer) Normalize(rawMarkup string, sourceURL string) scraper.Document {
	out := scraper.Document{URL: sourceURL}
	if strings.TrimSpace(rawMarkup) == "" {
		return out
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawMarkup))
	if err != nil {
		return out
	}

	region := findContentRegion(doc)
	if region == nil || region.Length() == 0 {
		return out
	}

	region.Find(strippedElements).Remove()
	region.Find("[class]").Each(func(_ int, s *goquery.Selection) {
		class, _ := s.Attr("class")
		if isBoilerplateClass(class) {
			s.Remove()
		}
	})

	out.Text = linearize(region)
	return out
}

// findContentRegion tries a semantic main element, then id/class content
// markers, then the document body. First match wins.
func findContentRegion(doc *goquery.Document) *goquery.Selection {
	for _, selector := range []string{"main", "#content", "#main", ".content", ".main", "body"} {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}
	return nil
}

func isBoilerplateClass(class string) bool {
	lower := strings.ToLower(class)
	for _, kw := range boilerplateClassKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// linearize joins every text node under the selection with newlines,
// dropping lines that are empty after trimming.
func linearize(sel *goquery.Selection) string {
	var parts []string
	for _, node := range sel.Nodes {
		collectText(node, &parts)
	}

	lines := make([]string, 0, len(parts))
	for _, part := range parts {
		for _, line := range strings.Split(part, "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				lines = append(lines, line)
			}
		}
	}
	return strings.Join(lines, "\n")
}

func collectText(node *html.Node, parts *[]string) {
	if node.Type == html.TextNode {
		*parts = append(*parts, node.Data)
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, parts)
	}
}
