package collyfetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/leadgenai/scraper/internal/scraper"
)

func TestFetcherSuccess(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Contains(t, r.UserAgent(), "Mozilla")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer srv.Close()

	f := New(Config{
		UserAgent: "Mozilla/5.0 (test)",
		Timeout:   time.Second,
	})

	result, err := f.Fetch(context.Background(), scraper.FetchRequest{URL: srv.URL})
	require.NoError(t, err)
	require.Equal(t, scraper.StrategyDirect, result.Strategy)
	require.Equal(t, scraper.FetchStatusOK, result.Status)
	require.Contains(t, result.Body, "hello")
	require.Greater(t, result.Duration, time.Duration(0))
}

func TestFetcherNonSuccessStatusIsError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := New(Config{Timeout: time.Second})

	_, err := f.Fetch(context.Background(), scraper.FetchRequest{URL: srv.URL})
	require.Error(t, err)

	var fetchErr *scraper.FetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, scraper.StrategyDirect, fetchErr.Strategy)
}

func TestFetcherNetworkErrorIsError(t *testing.T) {
	t.Parallel()

	f := New(Config{Timeout: time.Second})

	_, err := f.Fetch(context.Background(), scraper.FetchRequest{URL: "http://127.0.0.1:1"})
	require.Error(t, err)
}

func TestFetcherContextCancel(t *testing.T) {
	t.Parallel()

	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-block
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()
	defer close(block)

	f := New(Config{Timeout: 10 * time.Second})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := f.Fetch(ctx, scraper.FetchRequest{URL: srv.URL})
	require.Error(t, err)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFetcherRequestTimeoutOverridesConfig(t *testing.T) {
	t.Parallel()

	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer slow.Close()

	f := New(Config{Timeout: 10 * time.Second})

	_, err := f.Fetch(context.Background(), scraper.FetchRequest{
		URL:     slow.URL,
		Timeout: 50 * time.Millisecond,
	})
	require.Error(t, err)
}
