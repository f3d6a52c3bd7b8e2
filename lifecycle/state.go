package lifecycle

// State is the coordinator's lifecycle state. It advances monotonically
// and never regresses.
type State string

const (
	// StateInit: constructed, no units processed.
	StateInit State = "init"
	// StateLoading: the extension loader is iterating units.
	StateLoading State = "loading"
	// StateWaiting: all units processed, pending set non-empty.
	StateWaiting State = "waiting"
	// StateReady: terminal; pending set empty.
	StateReady State = "ready"
)

var stateRank = map[State]int{
	StateInit:    0,
	StateLoading: 1,
	StateWaiting: 2,
	StateReady:   3,
}
