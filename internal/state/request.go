package state

import "time"

// Status is the phase of the current search request.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusError
	StatusSuccess
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	case StatusSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// ResultItem is one disease returned by the search service.
type ResultItem struct {
	Code   string // unique key (disease code)
	Label  string // display label, may carry highlight markers
	Target string // raw name used to build the navigation URL
}

// ResultSet is the ordered answer to exactly one query.
// ID identifies the set: two sets with the same ID are the same answer.
type ResultSet struct {
	ID         uint64
	Query      string
	TotalCount int
	Items      []ResultItem
}

// Len returns the number of items.
func (r ResultSet) Len() int {
	return len(r.Items)
}

// Empty reports whether the set has no items.
func (r ResultSet) Empty() bool {
	return len(r.Items) == 0
}

// RequestState is the coordinator's view of the latest query.
// Results is only meaningful for StatusSuccess, Err for StatusError.
type RequestState struct {
	Status    Status
	Query     string
	Results   ResultSet
	Err       error
	FetchedAt time.Time
	Cached    bool // Results came from the freshness window
}

// Idle is the state for an empty query.
func Idle() RequestState {
	return RequestState{Status: StatusIdle}
}

// Loading is the state while the request for query is in flight.
func Loading(query string) RequestState {
	return RequestState{Status: StatusLoading, Query: query}
}

// Failed is the terminal state of a request that could not be completed.
func Failed(query string, err error) RequestState {
	return RequestState{Status: StatusError, Query: query, Err: err}
}

// Succeeded is the terminal state of a resolved request.
func Succeeded(results ResultSet, fetchedAt time.Time, cached bool) RequestState {
	return RequestState{
		Status:    StatusSuccess,
		Query:     results.Query,
		Results:   results,
		FetchedAt: fetchedAt,
		Cached:    cached,
	}
}

// Items returns the visible items: empty unless the request succeeded.
func (s RequestState) Items() []ResultItem {
	if s.Status != StatusSuccess {
		return nil
	}
	return s.Results.Items
}

// ResultSetID returns the identity of the visible result set, or 0.
func (s RequestState) ResultSetID() uint64 {
	if s.Status != StatusSuccess {
		return 0
	}
	return s.Results.ID
}
