package retrieve

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/leadgenai/scraper/internal/scraper"
)

type fakeStrategy struct {
	name   scraper.FetchStrategy
	result scraper.PageResult
	err    error
	calls  int
}

func (f *fakeStrategy) Fetch(_ context.Context, request scraper.FetchRequest) (scraper.PageResult, error) {
	f.calls++
	if f.err != nil {
		return scraper.PageResult{}, f.err
	}
	result := f.result
	result.URL = request.URL
	result.Strategy = f.name
	result.Status = scraper.FetchStatusOK
	return result, nil
}

func (f *fakeStrategy) Strategy() scraper.FetchStrategy {
	return f.name
}

func TestRetrieverFirstStrategyWins(t *testing.T) {
	t.Parallel()

	direct := &fakeStrategy{name: scraper.StrategyDirect, result: scraper.PageResult{Body: "fast"}}
	rendered := &fakeStrategy{name: scraper.StrategyRendered, result: scraper.PageResult{Body: "slow"}}

	r, err := New([]Strategy{direct, rendered}, 0, zap.NewNop())
	require.NoError(t, err)

	result, err := r.Fetch(context.Background(), scraper.FetchRequest{URL: "https://a.com"})
	require.NoError(t, err)
	require.Equal(t, "fast", result.Body)
	require.Equal(t, scraper.StrategyDirect, result.Strategy)
	require.Equal(t, 1, direct.calls)
	require.Zero(t, rendered.calls)
}

func TestRetrieverFallsBackOnFailure(t *testing.T) {
	t.Parallel()

	direct := &fakeStrategy{name: scraper.StrategyDirect, err: errors.New("connection refused")}
	rendered := &fakeStrategy{name: scraper.StrategyRendered, result: scraper.PageResult{Body: "rendered"}}

	r, err := New([]Strategy{direct, rendered}, 0, zap.NewNop())
	require.NoError(t, err)

	result, err := r.Fetch(context.Background(), scraper.FetchRequest{URL: "https://a.com"})
	require.NoError(t, err)
	require.Equal(t, "rendered", result.Body)
	require.Equal(t, scraper.StrategyRendered, result.Strategy)
	require.Equal(t, 1, direct.calls)
	require.Equal(t, 1, rendered.calls)
}

func TestRetrieverAllStrategiesFail(t *testing.T) {
	t.Parallel()

	direct := &fakeStrategy{name: scraper.StrategyDirect, err: errors.New("refused")}
	rendered := &fakeStrategy{name: scraper.StrategyRendered, err: errors.New("browser crashed")}

	r, err := New([]Strategy{direct, rendered}, 0, zap.NewNop())
	require.NoError(t, err)

	result, err := r.Fetch(context.Background(), scraper.FetchRequest{URL: "https://a.com"})
	require.ErrorIs(t, err, scraper.ErrAllStrategiesFailed)
	require.Equal(t, scraper.FetchStatusFailed, result.Status)
	require.Equal(t, 1, direct.calls)
	require.Equal(t, 1, rendered.calls)
}

func TestRetrieverCachesResults(t *testing.T) {
	t.Parallel()

	direct := &fakeStrategy{name: scraper.StrategyDirect, result: scraper.PageResult{Body: "cached"}}

	r, err := New([]Strategy{direct}, 8, zap.NewNop())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		result, err := r.Fetch(context.Background(), scraper.FetchRequest{URL: "https://a.com"})
		require.NoError(t, err)
		require.Equal(t, "cached", result.Body)
	}
	require.Equal(t, 1, direct.calls)

	r.PurgeCache()
	_, err = r.Fetch(context.Background(), scraper.FetchRequest{URL: "https://a.com"})
	require.NoError(t, err)
	require.Equal(t, 2, direct.calls)
}

func TestRetrieverZeroCacheSizeDisablesCaching(t *testing.T) {
	t.Parallel()

	direct := &fakeStrategy{name: scraper.StrategyDirect, result: scraper.PageResult{Body: "x"}}

	r, err := New([]Strategy{direct}, 0, zap.NewNop())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := r.Fetch(context.Background(), scraper.FetchRequest{URL: "https://a.com"})
		require.NoError(t, err)
	}
	require.Equal(t, 3, direct.calls)
}

func TestRetrieverRequiresStrategies(t *testing.T) {
	t.Parallel()

	_, err := New(nil, 0, zap.NewNop())
	require.Error(t, err)
}
