package state

// Subscription delivers store changes to one subscriber.
// Each channel holds at most one value: a lagging subscriber only sees the
// latest value of each slice.
type Subscription struct {
	QueryChanged  <-chan string
	ResultChanged <-chan RequestState
	RecordChanged <-chan []ResultItem
	Done          <-chan struct{}

	queryCh  chan string
	resultCh chan RequestState
	recordCh chan []ResultItem
	doneCh   chan struct{}
}

func newSubscription() *Subscription {
	s := &Subscription{
		queryCh:  make(chan string, 1),
		resultCh: make(chan RequestState, 1),
		recordCh: make(chan []ResultItem, 1),
		doneCh:   make(chan struct{}),
	}
	s.QueryChanged = s.queryCh
	s.ResultChanged = s.resultCh
	s.RecordChanged = s.recordCh
	s.Done = s.doneCh
	return s
}

func (s *Subscription) close() {
	close(s.doneCh)
}

// replace drops any undelivered value and sends v. Callers hold the store
// lock, so there is a single sender per channel.
func replace[T any](ch chan T, v T) {
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- v:
	default:
	}
}

func (s *Subscription) sendQuery(q string) {
	replace(s.queryCh, q)
}

func (s *Subscription) sendResult(r RequestState) {
	replace(s.resultCh, r)
}

func (s *Subscription) sendRecord(items []ResultItem) {
	replace(s.recordCh, items)
}
