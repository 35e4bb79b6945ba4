package extract

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractEmailsCaseSensitiveDedup(t *testing.T) {
	t.Parallel()

	raw := `<html><body><p>Contact: jane.doe@example.com and JANE@EXAMPLE.COM
	and jane.doe@example.com again</p></body></html>`

	contacts, err := New(Config{}).Extract(raw, "https://acme.com")
	require.NoError(t, err)
	require.Equal(t, []string{"jane.doe@example.com", "JANE@EXAMPLE.COM"}, contacts.Emails)
}

func TestExtractEmailsCapped(t *testing.T) {
	t.Parallel()

	body := "<html><body>"
	for i := 0; i < 10; i++ {
		body += fmt.Sprintf("<p>user%d@example.com</p>", i)
	}
	body += "</body></html>"

	contacts, err := New(Config{MaxEmails: 5}).Extract(body, "https://acme.com")
	require.NoError(t, err)
	require.Len(t, contacts.Emails, 5)
	require.Equal(t, "user0@example.com", contacts.Emails[0])
}

func TestExtractPhonesNormalized(t *testing.T) {
	t.Parallel()

	raw := `<html><body><p>Call us: (415) 555-2671 or +1 415.555.2671</p></body></html>`

	contacts, err := New(Config{}).Extract(raw, "https://acme.com")
	require.NoError(t, err)
	require.Contains(t, contacts.Phones, "4155552671")
	require.Contains(t, contacts.Phones, "14155552671")
}

func TestExtractPhonesDropShortMatches(t *testing.T) {
	t.Parallel()

	// No digit sequence long enough to be a phone number.
	raw := `<html><body><p>Room 123, floor 45</p></body></html>`

	contacts, err := New(Config{}).Extract(raw, "https://acme.com")
	require.NoError(t, err)
	require.Empty(t, contacts.Phones)
}

func TestExtractDeterministicAcrossCalls(t *testing.T) {
	t.Parallel()

	raw := `<html><body>
		<p>a@x.com b@x.com c@x.com</p>
		<p>(415) 555-2671 (415) 555-2672</p>
		<a href="https://facebook.com/one">f1</a>
		<a href="https://facebook.com/two">f2</a>
		<a href="https://twitter.com/acme">t</a>
	</body></html>`

	e := New(Config{})
	first, err := e.Extract(raw, "https://acme.com")
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := e.Extract(raw, "https://acme.com")
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestExtractEmptyMarkup(t *testing.T) {
	t.Parallel()

	contacts, err := New(Config{}).Extract("", "https://acme.com")
	require.NoError(t, err)
	require.Empty(t, contacts.Emails)
	require.Empty(t, contacts.Phones)
	require.Empty(t, contacts.SocialLinks)
	require.Equal(t, "https://acme.com", contacts.SourceURL)
}
