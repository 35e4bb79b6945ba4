package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// socialDomains maps platform host substrings to bucket names.
// Classification is domain-based; the keyword list below only feeds the
// "other" fallback bucket.
var socialDomains = []struct {
	domain   string
	platform string
}{
	{"facebook.com", "facebook"},
	{"twitter.com", "twitter"},
	{"linkedin.com", "linkedin"},
	{"instagram.com", "instagram"},
	{"youtube.com", "youtube"},
	{"pinterest.com", "pinterest"},
	{"tiktok.com", "tiktok"},
}

var socialKeywords = []string{
	"facebook", "twitter", "linkedin", "instagram", "youtube", "pinterest", "tiktok",
}

// extractSocialLinks scans anchors (bounded for performance), resolves
// relative hrefs against the page URL, and buckets each link by platform
// domain. Buckets are deduplicated in first-seen order and capped.
func (e *Extractor) extractSocialLinks(doc *goquery.Document, sourceURL string) map[string][]string {
	base, baseErr := url.Parse(sourceURL)

	raw := map[string][]string{}
	scanned := 0
	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if scanned >= e.cfg.MaxAnchorScan {
			return false
		}
		scanned++

		href, ok := s.Attr("href")
		if !ok || href == "" {
			return true
		}
		href = strings.ToLower(strings.TrimSpace(href))

		if baseErr == nil && !strings.HasPrefix(href, "http") && !strings.HasPrefix(href, "www") {
			ref, err := url.Parse(href)
			if err != nil {
				return true
			}
			href = base.ResolveReference(ref).String()
		}

		if platform, found := classify(href); found {
			raw[platform] = append(raw[platform], href)
		}
		return true
	})

	out := make(map[string][]string, len(raw))
	for platform, links := range raw {
		out[platform] = dedupeCap(links, e.cfg.MaxPerSocial)
	}
	return out
}

func classify(href string) (string, bool) {
	for _, sd := range socialDomains {
		if strings.Contains(href, sd.domain) {
			return sd.platform, true
		}
	}
	for _, kw := range socialKeywords {
		if strings.Contains(href, kw) {
			return "other", true
		}
	}
	return "", false
}
