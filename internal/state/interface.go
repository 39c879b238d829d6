package state

// QueryWriter is the surface the input controller needs.
type QueryWriter interface {
	Query() string
	SetQuery(q string)
}

// ResultWriter is the surface the coordinator needs. It reads Query to drop
// answers to text the user has moved past.
type ResultWriter interface {
	Query() string
	ResultState() RequestState
	SetResultState(r RequestState)
	SetDiseaseRecord(items []ResultItem)
}

// Reader is the read-only surface of the presentation shells.
type Reader interface {
	Query() string
	ResultState() RequestState
	DiseaseRecord() []ResultItem
}

// Verify Store implements the interfaces at compile time.
var (
	_ QueryWriter  = (*Store)(nil)
	_ ResultWriter = (*Store)(nil)
	_ Reader       = (*Store)(nil)
)
