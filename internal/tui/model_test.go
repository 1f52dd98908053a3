package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"moviebrowser/internal/client"
	"moviebrowser/internal/domain"
	"moviebrowser/internal/navigator"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	total int64
	err   error
	calls []int
}

func (s *stubFetcher) FetchPage(_ context.Context, page int) (domain.PageResult, error) {
	s.calls = append(s.calls, page)
	if s.err != nil {
		return domain.PageResult{}, s.err
	}
	items := []domain.Movie{}
	start := domain.Offset(page)
	for i := start; i < start+domain.PageSize && i < s.total; i++ {
		title := fmt.Sprintf("Movie %03d", i)
		items = append(items, domain.Movie{ID: i + 1, MovieTitle: &title})
	}
	return domain.PageResult{TotalCount: s.total, Items: items}, nil
}

// drain runs cmd once and returns the produced messages, expanding batches.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// deliver feeds every pageLoadedMsg produced by cmd back into the model.
func deliver(t *testing.T, m *BrowserModel, cmd tea.Cmd) {
	t.Helper()
	for _, msg := range drain(cmd) {
		if _, ok := msg.(pageLoadedMsg); ok {
			m.Update(msg)
		}
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestBrowserModelInitialLoad(t *testing.T) {
	f := &stubFetcher{total: 120}
	m := NewBrowserModel(context.Background(), f)
	assert.Equal(t, navigator.Loading, m.State().Status)
	assert.Contains(t, m.View(), "Loading")

	deliver(t, m, m.Init())

	s := m.State()
	assert.Equal(t, navigator.Idle, s.Status)
	assert.Equal(t, 0, s.CurrentPage)
	assert.EqualValues(t, 120, s.TotalCount)
	assert.Len(t, s.Items, 25)
	assert.Equal(t, []int{0}, f.calls)

	view := m.View()
	assert.Contains(t, view, "Top Rated Movies")
	assert.Contains(t, view, "Movie 000")
	assert.Contains(t, view, "Total: 120, page 0 of 4")
}

func TestBrowserModelNavigationBounds(t *testing.T) {
	f := &stubFetcher{total: 120}
	m := NewBrowserModel(context.Background(), f)
	deliver(t, m, m.Init())

	_, cmd := m.Update(key("p"))
	assert.Nil(t, cmd, "previous on page 0 is a no-op")

	for i := 0; i < 4; i++ {
		_, cmd = m.Update(key("right"))
		require.NotNil(t, cmd)
		assert.Equal(t, navigator.Loading, m.State().Status)
		deliver(t, m, cmd)
	}
	assert.Equal(t, 4, m.State().CurrentPage)

	_, cmd = m.Update(key("n"))
	assert.Nil(t, cmd, "next on last page is a no-op")
	assert.Equal(t, []int{0, 1, 2, 3, 4}, f.calls)

	_, cmd = m.Update(key("left"))
	deliver(t, m, cmd)
	assert.Equal(t, 3, m.State().CurrentPage)
}

func TestBrowserModelFailedFetchKeepsPage(t *testing.T) {
	f := &stubFetcher{total: 60}
	m := NewBrowserModel(context.Background(), f)
	deliver(t, m, m.Init())

	f.err = errors.New("movies api: status 500: failed to load movies")
	_, cmd := m.Update(key("n"))
	deliver(t, m, cmd)

	s := m.State()
	assert.Equal(t, 0, s.CurrentPage)
	assert.Len(t, s.Items, 25)
	assert.Equal(t, navigator.Idle, s.Status)
	assert.Contains(t, m.View(), "failed to load movies")
	assert.Contains(t, m.View(), "Movie 000")
}

func TestErrorLineRetryHint(t *testing.T) {
	serverErr := fmt.Errorf("fetch page 1: %w", &client.APIError{StatusCode: 503, Message: "database unavailable"})
	assert.Equal(t, "Error: fetch page 1: movies api: status 503: database unavailable (press r to retry)", errorLine(serverErr))

	badRequest := &client.APIError{StatusCode: 400, Message: "page: must be a non-negative integer"}
	assert.Equal(t, "Error: movies api: status 400: page: must be a non-negative integer", errorLine(badRequest))

	assert.Contains(t, errorLine(errors.New("connection refused")), "press r to retry")
}

func TestBrowserModelDropsSupersededResponse(t *testing.T) {
	f := &stubFetcher{total: 120}
	m := NewBrowserModel(context.Background(), f)
	deliver(t, m, m.Init())

	_, first := m.Update(key("n"))
	_, second := m.Update(key("r"))

	// reload of page 0 was issued last; its answer lands before the next-page one
	deliver(t, m, second)
	deliver(t, m, first)

	assert.Equal(t, 0, m.State().CurrentPage)
}

func TestBrowserModelQuit(t *testing.T) {
	m := NewBrowserModel(context.Background(), &stubFetcher{})
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

func TestBrowserModelEmptyCatalog(t *testing.T) {
	m := NewBrowserModel(context.Background(), &stubFetcher{})
	deliver(t, m, m.Init())

	view := m.View()
	assert.Contains(t, view, "No movies on this page.")
	assert.Contains(t, view, "Total: 0, page 0 of 0")
}

func TestRenderPlain(t *testing.T) {
	title := "Avatar"
	score := 7.9
	year := 2009
	gross := int64(760505847)
	res := domain.PageResult{TotalCount: 5043, Items: []domain.Movie{
		{ID: 1, MovieTitle: &title, ImdbScore: &score, TitleYear: &year, Gross: &gross},
		{ID: 2},
	}}

	var buf bytes.Buffer
	require.NoError(t, RenderPlain(&buf, 3, res))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "Avatar")
	assert.Contains(t, lines[1], "7.9")
	assert.Contains(t, lines[1], "$760,505,847")
	assert.Contains(t, lines[2], "(untitled)")
	assert.Equal(t, "Total: 5,043, page 3 of 201", lines[3])
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderJSON(&buf, domain.PageResult{TotalCount: 0, Items: []domain.Movie{}}))
	assert.JSONEq(t, `{"totalMovies":0,"movies":[]}`, buf.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab...", truncate("abcdefgh", 5))
	assert.Equal(t, "ab", truncate("abcdefgh", 2))
}
