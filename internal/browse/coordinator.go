package browse

import (
	"context"

	"github.com/rs/zerolog"

	"orderdeck/internal/domain"
)

// Fetcher is the slice of the orders service the coordinator needs.
type Fetcher interface {
	List(ctx context.Context, page, pageSize int) (domain.Page, error)
	Search(ctx context.Context, query string, page, pageSize int) (domain.Page, error)
}

// Ticket identifies one issued request: a sequence number plus the query
// snapshot it was issued for. The sequence number is what lets a completion
// be recognized as stale after a newer request has been issued.
type Ticket struct {
	Seq   uint64
	Query Query
}

// Completion is the settled outcome of a ticketed request.
type Completion struct {
	Ticket Ticket
	Page   domain.Page
	Err    error
}

// Coordinator decides which remote operation to issue for a query and
// reconciles completions back into the shared result set. Begin and Apply
// must be called from the single event goroutine (the Bubble Tea update
// loop); only Fetch may run concurrently, and it touches no shared state.
type Coordinator struct {
	fetcher Fetcher
	log     zerolog.Logger

	seq     uint64
	loading bool
	result  *domain.Page
}

// NewCoordinator creates a coordinator over the given fetcher.
func NewCoordinator(fetcher Fetcher, log zerolog.Logger) *Coordinator {
	return &Coordinator{fetcher: fetcher, log: log}
}

// Begin issues a new request for the given query: it bumps the sequence
// number, raises the loading flag and returns the ticket the asynchronous
// fetch must carry back.
func (c *Coordinator) Begin(q Query) Ticket {
	c.seq++
	c.loading = true
	return Ticket{Seq: c.seq, Query: q}
}

// Fetch performs the remote call for a ticket. It is safe to run off the
// event goroutine; it reads only the ticket and the fetcher.
func (c *Coordinator) Fetch(ctx context.Context, t Ticket) Completion {
	var (
		page domain.Page
		err  error
	)
	if t.Query.Kind() == KindSearch {
		page, err = c.fetcher.Search(ctx, t.Query.Term, t.Query.Page, t.Query.PageSize)
	} else {
		page, err = c.fetcher.List(ctx, t.Query.Page, t.Query.PageSize)
	}
	return Completion{Ticket: t, Page: page, Err: err}
}

// Apply folds a completion into the result set. A completion whose ticket
// was superseded by a later Begin is dropped entirely: it neither replaces
// the result set nor clears the loading flag, since the newer request still
// owes a completion. For the latest ticket the loading flag always clears;
// on success the result set is replaced wholesale, on failure it is left
// untouched and the error only goes to the log. Returns true when the
// result set was replaced.
func (c *Coordinator) Apply(comp Completion) bool {
	if comp.Ticket.Seq != c.seq {
		c.log.Debug().
			Uint64("seq", comp.Ticket.Seq).
			Uint64("latest", c.seq).
			Msg("dropping superseded fetch completion")
		return false
	}

	c.loading = false

	if comp.Err != nil {
		c.log.Error().
			Err(comp.Err).
			Str("kind", comp.Ticket.Query.Kind().String()).
			Str("term", comp.Ticket.Query.Term).
			Int("page", comp.Ticket.Query.Page).
			Int("pageSize", comp.Ticket.Query.PageSize).
			Msg("fetch failed, keeping previous result set")
		return false
	}

	page := comp.Page
	c.result = &page
	return true
}

// Loading reports whether the most recently issued request is still
// outstanding.
func (c *Coordinator) Loading() bool {
	return c.loading
}

// Result returns the last successfully fetched page, or nil before the
// first successful fetch.
func (c *Coordinator) Result() *domain.Page {
	return c.result
}
