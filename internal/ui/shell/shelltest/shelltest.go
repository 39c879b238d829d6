// Package shelltest provides a store-backed fake searcher and helpers for
// testing presentation shells without the network.
package shelltest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/trialsearch/internal/highlight"
	"github.com/llehouerou/trialsearch/internal/state"
	"github.com/llehouerou/trialsearch/internal/ui/action"
	"github.com/llehouerou/trialsearch/internal/ui/shell"
	"github.com/llehouerou/trialsearch/internal/ui/testutil"
)

// BaseURL is the search page used by Deps.
const BaseURL = "https://trials.test/search?q="

// Diabetes is a typical answer for "당뇨".
var Diabetes = []state.ResultItem{
	{Code: "E10", Label: "제1형 |당뇨|병", Target: "제1형 당뇨병"},
	{Code: "E11", Label: "제2형 |당뇨|병", Target: "제2형 당뇨병"},
	{Code: "O24", Label: "임신성 |당뇨|병", Target: "임신성 당뇨병"},
}

// Search records the queries a shell starts and publishes Idle or Loading
// the way the coordinator does. Tests resolve requests explicitly.
type Search struct {
	Store   *state.Store
	Queries []string
	nextID  uint64
}

// Search implements input.Searcher.
func (s *Search) Search(query string) tea.Cmd {
	s.Queries = append(s.Queries, query)
	if query == "" {
		s.Store.SetResultState(state.Idle())
		return nil
	}
	s.Store.SetResultState(state.Loading(query))
	return nil
}

// Resolve publishes a new result set for query and returns its ID.
func (s *Search) Resolve(query string, items ...state.ResultItem) uint64 {
	s.nextID++
	s.Store.SetResultState(state.Succeeded(state.ResultSet{
		ID:         s.nextID,
		Query:      query,
		TotalCount: len(items),
		Items:      items,
	}, time.Time{}, false))
	s.Store.SetDiseaseRecord(items)
	return s.nextID
}

// Fail publishes a failed request.
func (s *Search) Fail(query string, err error) {
	s.Store.SetResultState(state.Failed(query, err))
}

// Deps returns shell dependencies wired to a fresh store and a Search.
func Deps() (shell.Deps, *Search) {
	store := state.NewStore()
	search := &Search{Store: store}
	return shell.Deps{
		Store:      store,
		Search:     search,
		Parser:     highlight.Default,
		BaseURL:    BaseURL,
		MaxVisible: 8,
		Labels:     shell.LabelsFor("ko"),
		Now:        func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) },
	}, search
}

// Commit runs cmd and returns the Commit it emits, failing the test when
// there is none.
func Commit(t *testing.T, cmd tea.Cmd) (string, shell.Commit) {
	t.Helper()
	for _, msg := range flatten(testutil.ExecuteCmd(cmd)) {
		if am, ok := msg.(action.Msg); ok {
			if c, ok := am.Action.(shell.Commit); ok {
				return am.Source, c
			}
		}
	}
	t.Fatalf("no commit emitted")
	return "", shell.Commit{}
}

func flatten(msg tea.Msg) []tea.Msg {
	if msgs, ok := msg.([]tea.Msg); ok {
		return msgs
	}
	return []tea.Msg{msg}
}
