package navigator

import (
	"context"
	"sync"

	"moviebrowser/internal/domain"
	"moviebrowser/internal/logging"

	"github.com/rs/zerolog"
)

// Fetcher loads one page of movies.
type Fetcher interface {
	FetchPage(ctx context.Context, page int) (domain.PageResult, error)
}

// Navigator owns a State and is the only thing that changes CurrentPage.
// It is safe for concurrent use; overlapping calls resolve to the one issued last.
type Navigator struct {
	fetcher Fetcher
	logger  zerolog.Logger

	mu    sync.Mutex
	state State
}

func New(f Fetcher) *Navigator {
	return &Navigator{fetcher: f, logger: logging.NewLogger("navigator")}
}

// State returns a snapshot of the current state.
func (n *Navigator) State() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

// LoadInitial fetches page 0.
func (n *Navigator) LoadInitial(ctx context.Context) error { return n.dispatch(ctx, Initial) }

// GoToPrevious moves one page back unless already on page 0.
func (n *Navigator) GoToPrevious(ctx context.Context) error { return n.dispatch(ctx, Previous) }

// GoToNext moves one page forward unless already on the last page.
func (n *Navigator) GoToNext(ctx context.Context) error { return n.dispatch(ctx, Next) }

// Reload fetches the current page again.
func (n *Navigator) Reload(ctx context.Context) error { return n.dispatch(ctx, Reload) }

func (n *Navigator) dispatch(ctx context.Context, in Intent) error {
	n.mu.Lock()
	page, ok := Plan(n.state, in)
	if !ok {
		n.mu.Unlock()
		n.logger.Debug().Stringer("intent", in).Int("page", page).Msg("at bound, no fetch")
		return nil
	}
	var started FetchStarted
	n.state, started = Begin(n.state, page)
	n.mu.Unlock()

	res, err := n.fetcher.FetchPage(ctx, page)

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.state.IsStale(started.Seq) {
		n.logger.Warn().Uint64("seq", started.Seq).Int("page", page).Msg("dropping superseded response")
		return err
	}
	if err != nil {
		n.logger.Error().Err(err).Stringer("intent", in).Int("page", page).Msg("fetch failed, keeping previous page")
		n.state = Reduce(n.state, FetchFailed{Seq: started.Seq, Page: page, Err: err})
		return err
	}
	n.state = Reduce(n.state, FetchSucceeded{Seq: started.Seq, Page: page, Result: res})
	return nil
}
