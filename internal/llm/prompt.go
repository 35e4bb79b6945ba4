package llm

import "strings"

// fieldPrompt instructs the model to emit one "key :: value" pair per line.
// Downstream consumers parse that format; keep it stable.
const fieldPrompt = `Extract information matching this description: {parse_description}

Format each finding as:
key :: value
key :: value

Example for 'extract social media links':
twitter :: https://twitter.com/company
linkedin :: https://linkedin.com/company

Text to analyze: {dom_content}
Return ONLY the key :: value pairs, nothing else.`

// BuildPrompt renders the field-extraction prompt for one content chunk.
func BuildPrompt(parseDescription, chunk string) string {
	out := strings.ReplaceAll(fieldPrompt, "{parse_description}", parseDescription)
	return strings.ReplaceAll(out, "{dom_content}", chunk)
}
