package navigator

import "moviebrowser/internal/domain"

type Status int

const (
	Idle Status = iota
	Loading
)

func (s Status) String() string {
	if s == Loading {
		return "loading"
	}
	return "idle"
}

// State is what the browser shows.
type State struct {
	CurrentPage int
	TotalCount  int64
	Items       []domain.Movie
	Status      Status
	// Err is the failure of the latest fetch, cleared by the next success.
	Err error

	seq uint64
}

// LastPage is the highest page Next may reach.
func (s State) LastPage() int {
	return domain.LastPage(s.TotalCount)
}

// Intent is a user navigation request.
type Intent int

const (
	Initial Intent = iota
	Previous
	Next
	Reload
)

func (i Intent) String() string {
	switch i {
	case Initial:
		return "initial"
	case Previous:
		return "previous"
	case Next:
		return "next"
	case Reload:
		return "reload"
	default:
		return "unknown"
	}
}

// Plan returns the page an intent should fetch. ok is false when the
// navigator is already at the bound and no fetch must be issued.
func Plan(s State, in Intent) (page int, ok bool) {
	switch in {
	case Initial:
		return 0, true
	case Reload:
		return s.CurrentPage, true
	case Previous:
		target := max(0, s.CurrentPage-1)
		return target, target != s.CurrentPage
	case Next:
		target := min(s.LastPage(), s.CurrentPage+1)
		return target, target != s.CurrentPage
	default:
		return s.CurrentPage, false
	}
}

// Action is an input to Reduce.
type Action interface{ isAction() }

type FetchStarted struct {
	Seq  uint64
	Page int
}

type FetchSucceeded struct {
	Seq    uint64
	Page   int
	Result domain.PageResult
}

type FetchFailed struct {
	Seq  uint64
	Page int
	Err  error
}

func (FetchStarted) isAction()   {}
func (FetchSucceeded) isAction() {}
func (FetchFailed) isAction()    {}

// Begin issues the next sequence number and moves s to Loading.
func Begin(s State, page int) (State, FetchStarted) {
	started := FetchStarted{Seq: s.seq + 1, Page: page}
	return Reduce(s, started), started
}

// Reduce applies a to s.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case FetchStarted:
		if a.Seq <= s.seq {
			return s
		}
		s.seq = a.Seq
		s.Status = Loading
		return s

	case FetchSucceeded:
		if a.Seq != s.seq {
			return s
		}
		items := a.Result.Items
		if items == nil {
			items = []domain.Movie{}
		}
		return State{
			CurrentPage: a.Page,
			TotalCount:  max(0, a.Result.TotalCount),
			Items:       items,
			Status:      Idle,
			seq:         s.seq,
		}

	case FetchFailed:
		if a.Seq != s.seq {
			return s
		}
		s.Status = Idle
		s.Err = a.Err
		return s

	default:
		return s
	}
}

// IsStale reports whether a completion for seq would be dropped by s.
func (s State) IsStale(seq uint64) bool {
	return seq != s.seq
}
