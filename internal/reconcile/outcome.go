package reconcile

import "fmt"

type OutcomeKind int

const (
	OutcomeEmpty OutcomeKind = iota
	OutcomeLoaded
	OutcomeCorrupt
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeLoaded:
		return "loaded"
	case OutcomeCorrupt:
		return "corrupt"
	default:
		return "empty"
	}
}

// LoadOutcome tells "nothing saved yet" apart from "saved data is unreadable".
// Err wraps domain.ErrPersistenceCorrupt when the data could not be decoded.
type LoadOutcome struct {
	Kind  OutcomeKind
	Count int
	Err   error
}

func (o LoadOutcome) String() string {
	switch o.Kind {
	case OutcomeLoaded:
		return fmt.Sprintf("loaded(%d)", o.Count)
	case OutcomeCorrupt:
		return fmt.Sprintf("corrupt(%v)", o.Err)
	default:
		return "empty"
	}
}

func outcomeOf(n int, err error) LoadOutcome {
	switch {
	case err != nil:
		// I/O failures land here too; err still says which one it was
		return LoadOutcome{Kind: OutcomeCorrupt, Err: err}
	case n == 0:
		return LoadOutcome{Kind: OutcomeEmpty}
	default:
		return LoadOutcome{Kind: OutcomeLoaded, Count: n}
	}
}
