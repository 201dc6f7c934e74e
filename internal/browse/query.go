package browse

// PageSizes are the page sizes the UI can cycle through.
var PageSizes = []int{10, 20, 50, 100}

// RequestKind identifies which remote operation a query maps to.
type RequestKind int

const (
	KindList RequestKind = iota
	KindSearch
)

func (k RequestKind) String() string {
	if k == KindSearch {
		return "search"
	}
	return "list"
}

// Query holds the user-controlled parameters that determine the next request:
// search term, page number and page size. Transitions are pure so that the
// order of state change versus request issuance stays explicit.
type Query struct {
	Term     string
	Page     int
	PageSize int
}

// DefaultQuery is the query used at startup.
func DefaultQuery() Query {
	return Query{Term: "", Page: 1, PageSize: 20}
}

// WithTerm returns the query with a new search term. Changing the term
// always restarts pagination on page 1.
func (q Query) WithTerm(term string) Query {
	q.Term = term
	q.Page = 1
	return q
}

// WithPage returns the query moved to the given page. The caller guarantees
// page >= 1; there is no upper bound here, the service response is
// authoritative on range.
func (q Query) WithPage(page int) Query {
	q.Page = page
	return q
}

// WithPageSize returns the query with a new page size and pagination
// restarted on page 1.
func (q Query) WithPageSize(size int) Query {
	q.PageSize = size
	q.Page = 1
	return q
}

// Kind reports which remote operation this query maps to: an empty term is a
// list request, anything else is a search request. There is no mixed mode.
func (q Query) Kind() RequestKind {
	if q.Term == "" {
		return KindList
	}
	return KindSearch
}

// NextPageSize returns the page size after current in PageSizes, wrapping
// around at the end. Unknown sizes restart the cycle.
func NextPageSize(current int) int {
	for i, size := range PageSizes {
		if size == current {
			return PageSizes[(i+1)%len(PageSizes)]
		}
	}
	return PageSizes[0]
}
