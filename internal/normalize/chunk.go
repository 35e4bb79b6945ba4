package normalize

// Chunk splits text into non-overlapping segments of at most maxLen runes,
// left to right with no boundary awareness. Concatenating the chunks in
// order reproduces the input exactly. Empty input yields an empty slice.
// maxLen must be positive; configuration validates that before dispatch, so
// a non-positive value here is a programmer error and returns nil.
func Chunk(text string, maxLen int) []string {
	if maxLen <= 0 || text == "" {
		return nil
	}

	runes := []rune(text)
	chunks := make([]string, 0, (len(runes)+maxLen-1)/maxLen)
	for start := 0; start < len(runes); start += maxLen {
		end := start + maxLen
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
