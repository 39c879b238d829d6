package app

import "github.com/llehouerou/trialsearch/internal/state"

// QueryChangedMsg carries the store's new query.
type QueryChangedMsg struct {
	Query string
}

// ResultChangedMsg carries the store's new request state.
type ResultChangedMsg struct {
	State state.RequestState
}

// RecordChangedMsg carries a newly published disease record.
type RecordChangedMsg struct {
	Items []state.ResultItem
}

// StoreClosedMsg is sent once the store subscription ends.
type StoreClosedMsg struct{}
