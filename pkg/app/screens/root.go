package screens

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/purrfect/pkg/app/components"
	"github.com/kerbaras/purrfect/pkg/app/styles"
	"github.com/kerbaras/purrfect/pkg/data"
	"github.com/kerbaras/purrfect/pkg/gallery"
)

const title = "Purrfect Cat Gallery"

// Fetcher runs gallery requests. Implemented by services.FetchController.
type Fetcher interface {
	Fetch(ctx context.Context, req gallery.Request) gallery.Result
	Cancel()
}

type fetchResultMsg struct {
	result gallery.Result
}

// RootScreen is the whole gallery: mode tabs, status line, the scrollable
// image region and the pager.
type RootScreen struct {
	fetcher Fetcher
	state   gallery.State
	initial *gallery.Request

	viewport viewport.Model
	spinner  spinner.Model
	help     help.Model
	keys     keyMap

	width  int
	height int
}

func NewRootScreen(fetcher Fetcher, mode data.ViewMode) *RootScreen {
	state, req := gallery.New(mode)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.StatusLoading

	r := &RootScreen{
		fetcher:  fetcher,
		state:    state,
		initial:  req,
		viewport: viewport.New(0, 0),
		spinner:  sp,
		help:     help.New(),
		keys:     newKeyMap(),
	}
	r.syncKeys()
	return r
}

// State returns the current gallery state.
func (r *RootScreen) State() gallery.State {
	return r.state
}

func (r *RootScreen) Init() tea.Cmd {
	req := r.initial
	r.initial = nil
	return tea.Batch(r.spinner.Tick, r.fetch(req))
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		r.help.Width = msg.Width
		r.refresh()
		return r, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, r.keys.Quit):
			r.fetcher.Cancel()
			return r, tea.Quit
		case key.Matches(msg, r.keys.Grid):
			return r, r.switchMode(data.GridMode)
		case key.Matches(msg, r.keys.Column):
			return r, r.switchMode(data.ColumnMode)
		case key.Matches(msg, r.keys.Infinite):
			return r, r.switchMode(data.InfiniteMode)
		case key.Matches(msg, r.keys.Cycle):
			return r, r.switchMode(r.state.Mode.Next())
		case key.Matches(msg, r.keys.Prev):
			return r, r.apply(r.state.Prev())
		case key.Matches(msg, r.keys.Next):
			return r, r.apply(r.state.Next())
		case key.Matches(msg, r.keys.Refresh):
			return r, r.apply(r.state.Refresh())
		case key.Matches(msg, r.keys.Help):
			r.help.ShowAll = !r.help.ShowAll
			r.refresh()
			return r, nil
		case key.Matches(msg, r.keys.Bottom):
			r.viewport.GotoBottom()
			return r, r.maybeLoadMore()
		case key.Matches(msg, r.keys.Down):
			return r, r.scroll(msg, true)
		}
		return r, r.scroll(msg, false)

	case tea.MouseMsg:
		return r, r.scroll(msg, msg.Button == tea.MouseButtonWheelDown)

	case spinner.TickMsg:
		var cmd tea.Cmd
		r.spinner, cmd = r.spinner.Update(msg)
		return r, cmd

	case fetchResultMsg:
		return r, r.resolve(msg.result)
	}

	return r, nil
}

func (r *RootScreen) View() string {
	if r.width == 0 {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		r.headerView(),
		r.viewport.View(),
		r.footerView(),
	)
}

func (r *RootScreen) headerView() string {
	header := lipgloss.JoinVertical(lipgloss.Center,
		styles.TitleStyle.Render(title),
		"",
		components.Tabs(r.state.Mode),
		"",
		r.statusView(),
	)
	return lipgloss.PlaceHorizontal(r.width, lipgloss.Center, header)
}

func (r *RootScreen) statusView() string {
	switch {
	case r.state.Loading && (r.state.Mode.Paginated() || len(r.state.Images) == 0):
		return r.spinner.View() + " " + styles.StatusLoading.Render("Loading adorable cats...")
	case r.state.Err != nil:
		return styles.StatusError.Render(r.state.Err.Error())
	case r.state.Empty():
		return styles.MutedStyle.Render("No cat images found. Try refreshing!")
	}
	return styles.MutedStyle.Render(fmt.Sprintf("%d cats", len(r.state.Images)))
}

func (r *RootScreen) footerView() string {
	var b strings.Builder
	if r.state.Mode.Paginated() {
		pager := components.Pager(r.state.Page, r.state.CanPrev(), r.state.CanNext())
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(r.width, lipgloss.Center, pager))
	}
	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render(r.help.View(r.keys)))
	return b.String()
}

func (r *RootScreen) contentView() string {
	width := max(r.width-2, 1)
	switch r.state.Mode {
	case data.ColumnMode:
		return components.Column(r.state.Images, width)
	case data.InfiniteMode:
		return components.Infinite(r.state.Images, width, r.state.Loading, r.state.HasMore)
	default:
		return components.Grid(r.state.Images, width)
	}
}

// refresh re-renders the image region and sizes the viewport to whatever
// the header and footer leave over.
func (r *RootScreen) refresh() {
	if r.width == 0 {
		return
	}
	chrome := lipgloss.Height(r.headerView()) + lipgloss.Height(r.footerView())
	r.viewport.Width = r.width
	r.viewport.Height = max(r.height-chrome, 1)
	r.viewport.SetContent(r.contentView())
}

func (r *RootScreen) syncKeys() {
	r.keys.Prev.SetEnabled(r.state.CanPrev())
	r.keys.Next.SetEnabled(r.state.CanNext())
}

func (r *RootScreen) switchMode(mode data.ViewMode) tea.Cmd {
	cmd := r.apply(r.state.SwitchMode(mode))
	r.viewport.GotoTop()
	return cmd
}

// apply installs a new state and starts its request, if it has one.
func (r *RootScreen) apply(state gallery.State, req *gallery.Request) tea.Cmd {
	r.state = state
	r.syncKeys()
	r.refresh()
	return r.fetch(req)
}

func (r *RootScreen) fetch(req *gallery.Request) tea.Cmd {
	if req == nil {
		return nil
	}
	fetcher, request := r.fetcher, *req
	return func() tea.Msg {
		return fetchResultMsg{result: fetcher.Fetch(context.Background(), request)}
	}
}

func (r *RootScreen) resolve(result gallery.Result) tea.Cmd {
	if result.Seq != r.state.Seq {
		return nil
	}
	r.state = r.state.Resolve(result)
	r.syncKeys()
	r.refresh()

	if r.state.Mode.Paginated() {
		r.viewport.GotoTop()
		return nil
	}
	// Keep pulling pages until the feed overflows the screen; after that
	// scrolling to the bottom asks for more.
	if result.Err == nil && r.viewport.TotalLineCount() <= r.viewport.Height {
		return r.apply(r.state.LoadMore())
	}
	return nil
}

// scroll forwards msg to the viewport. Only a downward scroll may ask the
// infinite feed for another page.
func (r *RootScreen) scroll(msg tea.Msg, down bool) tea.Cmd {
	var cmd tea.Cmd
	r.viewport, cmd = r.viewport.Update(msg)
	if !down {
		return cmd
	}
	return tea.Batch(cmd, r.maybeLoadMore())
}

func (r *RootScreen) maybeLoadMore() tea.Cmd {
	if r.state.Mode != data.InfiniteMode || !r.viewport.AtBottom() {
		return nil
	}
	state, req := r.state.LoadMore()
	if req == nil {
		return nil
	}
	cmd := r.apply(state, req)
	r.viewport.GotoBottom()
	return cmd
}
