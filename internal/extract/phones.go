package extract

import "regexp"

var (
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`)
	nonDigit     = regexp.MustCompile(`\D`)
)

// minPhoneDigits drops fragments the phone pattern over-matches.
const minPhoneDigits = 7

// extractPhones matches optional-country-code phone shapes, normalizes each
// match to its digits, and discards anything shorter than seven digits.
// Dedup is by normalized digit string, first-seen order.
func (e *Extractor) extractPhones(text string) []string {
	matches := phonePattern.FindAllString(text, -1)

	normalized := make([]string, 0, len(matches))
	for _, m := range matches {
		digits := nonDigit.ReplaceAllString(m, "")
		if len(digits) < minPhoneDigits {
			continue
		}
		normalized = append(normalized, digits)
	}
	return dedupeCap(normalized, e.cfg.MaxPhones)
}
