package extract

import "regexp"

var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// extractEmails matches the standard local@domain.tld shape against visible
// text. Case is kept as matched; dedup is by exact string equality.
func (e *Extractor) extractEmails(text string) []string {
	matches := emailPattern.FindAllString(text, -1)
	return dedupeCap(matches, e.cfg.MaxEmails)
}
