package browse_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"orderdeck/internal/browse"
	"orderdeck/internal/domain"
)

type fetchCall struct {
	kind     browse.RequestKind
	term     string
	page     int
	pageSize int
}

// fakeFetcher records calls and answers with a page that echoes the request
// parameters, so tests can tell which response landed.
type fakeFetcher struct {
	calls []fetchCall
	err   error
}

func (f *fakeFetcher) List(_ context.Context, page, pageSize int) (domain.Page, error) {
	f.calls = append(f.calls, fetchCall{kind: browse.KindList, page: page, pageSize: pageSize})
	if f.err != nil {
		return domain.Page{}, f.err
	}
	return pageFor("", page), nil
}

func (f *fakeFetcher) Search(_ context.Context, query string, page, pageSize int) (domain.Page, error) {
	f.calls = append(f.calls, fetchCall{kind: browse.KindSearch, term: query, page: page, pageSize: pageSize})
	if f.err != nil {
		return domain.Page{}, f.err
	}
	return pageFor(query, page), nil
}

func pageFor(term string, page int) domain.Page {
	return domain.Page{
		Orders:     []domain.Order{{ID: term, CustomerID: term}},
		Page:       page,
		TotalPages: 9,
		HasPrev:    page > 1,
		HasNext:    page < 9,
	}
}

func newCoordinator(fetcher browse.Fetcher) *browse.Coordinator {
	return browse.NewCoordinator(fetcher, zerolog.Nop())
}

func TestEmptyTermIssuesListRequest(t *testing.T) {
	fetcher := &fakeFetcher{}
	c := newCoordinator(fetcher)

	ticket := c.Begin(browse.DefaultQuery())
	comp := c.Fetch(context.Background(), ticket)
	require.True(t, c.Apply(comp))

	require.Len(t, fetcher.calls, 1)
	require.Equal(t, fetchCall{kind: browse.KindList, page: 1, pageSize: 20}, fetcher.calls[0])
}

func TestNonEmptyTermIssuesSearchRequest(t *testing.T) {
	fetcher := &fakeFetcher{}
	c := newCoordinator(fetcher)

	ticket := c.Begin(browse.DefaultQuery().WithTerm("alice").WithPage(2))
	comp := c.Fetch(context.Background(), ticket)
	require.True(t, c.Apply(comp))

	require.Len(t, fetcher.calls, 1)
	require.Equal(t, fetchCall{kind: browse.KindSearch, term: "alice", page: 2, pageSize: 20}, fetcher.calls[0])
}

func TestLoadingLifecycle(t *testing.T) {
	fetcher := &fakeFetcher{}
	c := newCoordinator(fetcher)
	require.False(t, c.Loading())

	ticket := c.Begin(browse.DefaultQuery())
	require.True(t, c.Loading())

	comp := c.Fetch(context.Background(), ticket)
	require.True(t, c.Loading(), "fetching alone must not clear the flag")

	c.Apply(comp)
	require.False(t, c.Loading())
}

func TestLoadingClearsOnFailureToo(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("boom")}
	c := newCoordinator(fetcher)

	ticket := c.Begin(browse.DefaultQuery())
	comp := c.Fetch(context.Background(), ticket)

	require.False(t, c.Apply(comp))
	require.False(t, c.Loading(), "loading must clear regardless of outcome")
}

func TestStaleCompletionIsDropped(t *testing.T) {
	fetcher := &fakeFetcher{}
	c := newCoordinator(fetcher)

	// R1 issued first, R2 supersedes it before R1 completes.
	t1 := c.Begin(browse.DefaultQuery().WithTerm("ali"))
	t2 := c.Begin(browse.DefaultQuery().WithTerm("alice"))

	comp1 := c.Fetch(context.Background(), t1)
	comp2 := c.Fetch(context.Background(), t2)

	// R2 completes first and wins.
	require.True(t, c.Apply(comp2))
	require.Equal(t, "alice", c.Result().Orders[0].ID)

	// R1 completes later; it must not overwrite the newer result set.
	require.False(t, c.Apply(comp1))
	require.Equal(t, "alice", c.Result().Orders[0].ID)
	require.False(t, c.Loading())
}

func TestSupersededCompletionDoesNotClearLoading(t *testing.T) {
	fetcher := &fakeFetcher{}
	c := newCoordinator(fetcher)

	t1 := c.Begin(browse.DefaultQuery())
	comp1 := c.Fetch(context.Background(), t1)

	// A newer request is issued before R1's completion is applied.
	c.Begin(browse.DefaultQuery().WithPage(2))

	require.False(t, c.Apply(comp1))
	require.True(t, c.Loading(), "the in-flight request still owes a completion")
	require.Nil(t, c.Result())
}

func TestFetchFailureKeepsPreviousResultSet(t *testing.T) {
	fetcher := &fakeFetcher{}
	c := newCoordinator(fetcher)

	// First fetch succeeds and populates the result set.
	t1 := c.Begin(browse.DefaultQuery())
	require.True(t, c.Apply(c.Fetch(context.Background(), t1)))
	before := c.Result()
	require.NotNil(t, before)

	// Second fetch fails; the stale-but-valid page stays on screen.
	fetcher.err = errors.New("service unavailable")
	t2 := c.Begin(browse.DefaultQuery().WithPage(2))
	require.False(t, c.Apply(c.Fetch(context.Background(), t2)))

	require.Equal(t, before, c.Result())
	require.False(t, c.Loading())
}

func TestSuccessReplacesResultSetWholesale(t *testing.T) {
	fetcher := &fakeFetcher{}
	c := newCoordinator(fetcher)

	t1 := c.Begin(browse.DefaultQuery())
	require.True(t, c.Apply(c.Fetch(context.Background(), t1)))

	t2 := c.Begin(browse.DefaultQuery().WithPage(2))
	require.True(t, c.Apply(c.Fetch(context.Background(), t2)))

	result := c.Result()
	require.Equal(t, 2, result.Page)
	require.True(t, result.HasPrev)
	require.True(t, result.HasNext)
	require.Len(t, result.Orders, 1)
}
