package tui

import (
	"context"
	"errors"
	"strings"

	"moviebrowser/internal/client"
	"moviebrowser/internal/domain"
	"moviebrowser/internal/navigator"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// pageLoadedMsg carries a finished fetch back into Update.
type pageLoadedMsg struct {
	seq    uint64
	page   int
	result domain.PageResult
	err    error
}

// BrowserModel is the Bubble Tea model for paging through the catalog. All
// state changes go through navigator.Reduce.
type BrowserModel struct {
	ctx     context.Context
	fetcher navigator.Fetcher

	state   navigator.State
	initial navigator.FetchStarted

	spinner  spinner.Model
	width    int
	quitting bool
}

// NewBrowserModel starts in Loading with the page-0 fetch queued for Init.
func NewBrowserModel(ctx context.Context, fetcher navigator.Fetcher) *BrowserModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	page, _ := navigator.Plan(navigator.State{}, navigator.Initial)
	state, started := navigator.Begin(navigator.State{}, page)

	return &BrowserModel{
		ctx:     ctx,
		fetcher: fetcher,
		state:   state,
		initial: started,
		spinner: s,
	}
}

// State returns the navigation state currently displayed.
func (m *BrowserModel) State() navigator.State {
	return m.state
}

func (m *BrowserModel) Init() tea.Cmd {
	return tea.Batch(m.fetch(m.initial), m.spinner.Tick)
}

func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case pageLoadedMsg:
		if msg.err != nil {
			m.state = navigator.Reduce(m.state, navigator.FetchFailed{Seq: msg.seq, Page: msg.page, Err: msg.err})
		} else {
			m.state = navigator.Reduce(m.state, navigator.FetchSucceeded{Seq: msg.seq, Page: msg.page, Result: msg.result})
		}
		return m, nil

	case spinner.TickMsg:
		if m.state.Status != navigator.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *BrowserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "n", "right", "l", "pgdown":
		return m, m.navigate(navigator.Next)
	case "p", "left", "h", "pgup":
		return m, m.navigate(navigator.Previous)
	case "r":
		return m, m.navigate(navigator.Reload)
	}
	return m, nil
}

// navigate returns nil when the intent is a no-op at a bound.
func (m *BrowserModel) navigate(in navigator.Intent) tea.Cmd {
	page, ok := navigator.Plan(m.state, in)
	if !ok {
		return nil
	}
	wasLoading := m.state.Status == navigator.Loading

	var started navigator.FetchStarted
	m.state, started = navigator.Begin(m.state, page)

	if wasLoading {
		return m.fetch(started)
	}
	return tea.Batch(m.fetch(started), m.spinner.Tick)
}

func (m *BrowserModel) fetch(started navigator.FetchStarted) tea.Cmd {
	ctx, fetcher := m.ctx, m.fetcher
	return func() tea.Msg {
		res, err := fetcher.FetchPage(ctx, started.Page)
		return pageLoadedMsg{seq: started.Seq, page: started.Page, result: res, err: err}
	}
}

func (m *BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Top Rated Movies"))
	b.WriteString("\n")
	b.WriteString(HeaderStyle.Render(headerRow()))
	b.WriteString("\n")

	for _, movie := range m.state.Items {
		b.WriteString(movieRow(movie))
		b.WriteString("\n")
	}
	if len(m.state.Items) == 0 && m.state.Status == navigator.Idle && m.state.Err == nil {
		b.WriteString(FooterStyle.Render("No movies on this page."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.pageBar())
	b.WriteString("\n")

	if m.state.Status == navigator.Loading {
		b.WriteString(m.spinner.View() + " Loading...")
		b.WriteString("\n")
	}
	if m.state.Err != nil {
		b.WriteString(ErrorStyle.Render(errorLine(m.state.Err)))
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle.Render("←/p previous • →/n next • r reload • q quit"))
	return b.String()
}

func (m *BrowserModel) pageBar() string {
	prev := LinkStyle.Render("Previous")
	if _, ok := navigator.Plan(m.state, navigator.Previous); !ok {
		prev = DisabledStyle.Render("Previous")
	}
	next := LinkStyle.Render("Next")
	if _, ok := navigator.Plan(m.state, navigator.Next); !ok {
		next = DisabledStyle.Render("Next")
	}
	summary := FooterStyle.Render(pageSummary(m.state.TotalCount, m.state.CurrentPage))
	return lipgloss.JoinHorizontal(lipgloss.Top, prev, "  ", summary, "  ", next)
}

// errorLine adds a retry hint unless the API rejected the request outright.
func errorLine(err error) string {
	line := "Error: " + err.Error()
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && !apiErr.Temporary() {
		return line
	}
	return line + " (press r to retry)"
}
