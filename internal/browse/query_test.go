package browse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"orderdeck/internal/browse"
)

func TestDefaultQuery(t *testing.T) {
	q := browse.DefaultQuery()
	require.Equal(t, "", q.Term)
	require.Equal(t, 1, q.Page)
	require.Equal(t, 20, q.PageSize)
	require.Equal(t, browse.KindList, q.Kind())
}

func TestWithTermResetsPage(t *testing.T) {
	q := browse.DefaultQuery().WithPage(7)
	q = q.WithTerm("alice")

	require.Equal(t, "alice", q.Term)
	require.Equal(t, 1, q.Page, "a new search always restarts pagination")
	require.Equal(t, 20, q.PageSize)
}

func TestWithPageSizeResetsPage(t *testing.T) {
	q := browse.DefaultQuery().WithPage(3)
	q = q.WithPageSize(50)

	require.Equal(t, 50, q.PageSize)
	require.Equal(t, 1, q.Page)
}

func TestWithPageKeepsTermAndSize(t *testing.T) {
	q := browse.DefaultQuery().WithTerm("alice").WithPageSize(100).WithPage(4)

	require.Equal(t, "alice", q.Term)
	require.Equal(t, 4, q.Page)
	require.Equal(t, 100, q.PageSize)
}

func TestKindIsPureFunctionOfTerm(t *testing.T) {
	require.Equal(t, browse.KindList, browse.Query{Term: "", Page: 9, PageSize: 50}.Kind())
	require.Equal(t, browse.KindSearch, browse.Query{Term: "x", Page: 1, PageSize: 10}.Kind())

	// Clearing the term goes back to a list request regardless of history.
	q := browse.DefaultQuery().WithTerm("alice").WithTerm("")
	require.Equal(t, browse.KindList, q.Kind())
}

func TestNextPageSizeCycles(t *testing.T) {
	require.Equal(t, 20, browse.NextPageSize(10))
	require.Equal(t, 50, browse.NextPageSize(20))
	require.Equal(t, 100, browse.NextPageSize(50))
	require.Equal(t, 10, browse.NextPageSize(100))
	require.Equal(t, 10, browse.NextPageSize(33), "unknown sizes restart the cycle")
}
