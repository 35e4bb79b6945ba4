package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChunkRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		text   string
		maxLen int
		want   int
	}{
		{name: "exact multiple", text: strings.Repeat("a", 12), maxLen: 4, want: 3},
		{name: "remainder", text: strings.Repeat("b", 13), maxLen: 4, want: 4},
		{name: "single chunk", text: "short", maxLen: 6000, want: 1},
		{name: "one char chunks", text: "abc", maxLen: 1, want: 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			chunks := Chunk(tc.text, tc.maxLen)
			require.Len(t, chunks, tc.want)
			require.Equal(t, tc.text, strings.Join(chunks, ""))
			for _, c := range chunks {
				require.LessOrEqual(t, len([]rune(c)), tc.maxLen)
			}
		})
	}
}

func TestChunkEmptyInput(t *testing.T) {
	t.Parallel()

	require.Empty(t, Chunk("", 100))
}

func TestChunkNonPositiveMaxLen(t *testing.T) {
	t.Parallel()

	require.Nil(t, Chunk("text", 0))
	require.Nil(t, Chunk("text", -1))
}

func TestChunkDoesNotSplitRunes(t *testing.T) {
	t.Parallel()

	text := "héllo wörld"
	chunks := Chunk(text, 3)
	require.Equal(t, text, strings.Join(chunks, ""))
	for _, c := range chunks {
		require.True(t, strings.ToValidUTF8(c, "?") == c)
	}
}
