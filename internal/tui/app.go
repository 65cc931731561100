// Package tui is the terminal front end of the reader. App turns keys
// into view.Controller calls and keeps the last View it got back;
// drawing is done by render.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muu0726/Tech-Information/internal/browser"
	"github.com/muu0726/Tech-Information/internal/logger"
	"github.com/muu0726/Tech-Information/internal/news"
	"github.com/muu0726/Tech-Information/internal/view"
)

// readMarkDelay is how long a just-opened item keeps its unread look.
const readMarkDelay = 500 * time.Millisecond

// Loader fetches the feed document once at startup.
type Loader func(ctx context.Context) ([]news.Item, error)

type App struct {
	ctrl    *view.Controller
	load    Loader
	open    func(url string) error
	timeout time.Duration
	now     func() time.Time

	view   view.View
	cursor int
	scroll int
	notice string

	width    int
	height   int
	showHelp bool

	spinner spinner.Model
	help    help.Model
	keys    keyMap
	st      styles
	loc     locale
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Controller *view.Controller
	Load       Loader
	Open       func(url string) error // defaults to browser.Open
	Timeout    time.Duration
	Theme      string
	Locale     string
	Category   news.Category
}

func NewApp(opts RunOpts) *App {
	st := newStyles(opts.Theme)

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = st.spinner

	open := opts.Open
	if open == nil {
		open = browser.Open
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	a := &App{
		ctrl:    opts.Controller,
		load:    opts.Load,
		open:    open,
		timeout: timeout,
		now:     time.Now,
		spinner: sp,
		help:    help.New(),
		keys:    newKeyMap(),
		st:      st,
		loc:     localeFor(opts.Locale),
	}
	if opts.Category != "" && opts.Category != news.All {
		a.view = a.ctrl.SelectCategory(opts.Category)
	} else {
		a.view = a.ctrl.Snapshot()
	}
	return a
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadCmd(), a.spinner.Tick)
}

func (a *App) loadCmd() tea.Cmd {
	load := a.load
	timeout := a.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		items, err := load(ctx)
		if err != nil {
			return feedErrMsg{err: err}
		}
		return feedLoadedMsg{items: items}
	}
}

func openBrowserCmd(open func(string) error, url string) tea.Cmd {
	return func() tea.Msg {
		if err := open(url); err != nil {
			return openErrMsg{err: err}
		}
		return nil
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, nil

	case tea.KeyMsg:
		a.notice = ""
		return a.handleKey(msg)

	case feedLoadedMsg:
		logger.Debugf("[tui] feed loaded: %d items", len(msg.items))
		a.setView(a.ctrl.Load(msg.items))
		return a, nil

	case feedErrMsg:
		logger.Errorf("[tui] loading feed: %v", msg.err)
		a.setView(a.ctrl.Fail(msg.err))
		return a, nil

	case readRefreshMsg:
		a.setView(a.ctrl.Snapshot())
		return a, nil

	case openErrMsg:
		a.notice = msg.err.Error()
		return a, nil

	case spinner.TickMsg:
		if a.view.Status == view.Loading {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if a.showHelp {
		switch msg.String() {
		case "?", "esc", "q":
			a.showHelp = false
		}
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.showHelp = true
		return a, nil
	}

	// nothing but quit and help while loading or after a failed load
	if a.view.Status == view.Loading || a.view.Status == view.Error {
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(a.view.Cards)-1 {
			a.cursor++
			a.scroll = 0
		}
	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
			a.scroll = 0
		}
	case key.Matches(msg, a.keys.ScrollDown):
		a.scroll++
	case key.Matches(msg, a.keys.ScrollUp):
		if a.scroll > 0 {
			a.scroll--
		}
	case key.Matches(msg, a.keys.NextTab):
		a.selectTab(a.tabIndex() + 1)
	case key.Matches(msg, a.keys.PrevTab):
		a.selectTab(a.tabIndex() - 1)
	case key.Matches(msg, a.keys.Tab1):
		a.selectTab(0)
	case key.Matches(msg, a.keys.Tab2):
		a.selectTab(1)
	case key.Matches(msg, a.keys.Tab3):
		a.selectTab(2)
	case key.Matches(msg, a.keys.Tab4):
		a.selectTab(3)
	case key.Matches(msg, a.keys.SavedOnly):
		a.setView(a.ctrl.ToggleSavedOnly())
		a.cursor, a.scroll = 0, 0
	case key.Matches(msg, a.keys.Save):
		if card, ok := a.current(); ok {
			v, err := a.ctrl.ToggleSaved(card.Item.ID)
			a.setView(v)
			if err != nil {
				a.notice = err.Error()
			}
		}
	case key.Matches(msg, a.keys.Open):
		return a, a.openCurrent()
	}
	return a, nil
}

// openCurrent marks the selected item read right away but only shows it
// after readMarkDelay.
func (a *App) openCurrent() tea.Cmd {
	card, ok := a.current()
	if !ok {
		return nil
	}
	if _, err := a.ctrl.MarkRead(card.Item.ID); err != nil {
		a.notice = err.Error()
	}
	return tea.Batch(
		openBrowserCmd(a.open, card.Item.Link),
		tea.Tick(readMarkDelay, func(time.Time) tea.Msg { return readRefreshMsg{} }),
	)
}

func (a *App) current() (view.Card, bool) {
	if a.cursor < 0 || a.cursor >= len(a.view.Cards) {
		return view.Card{}, false
	}
	return a.view.Cards[a.cursor], true
}

func (a *App) tabIndex() int {
	for i, c := range news.Categories() {
		if c == a.view.State.Category {
			return i
		}
	}
	return 0
}

func (a *App) selectTab(i int) {
	cats := news.Categories()
	i = (i + len(cats)) % len(cats)
	a.setView(a.ctrl.SelectCategory(cats[i]))
	a.cursor, a.scroll = 0, 0
}

func (a *App) setView(v view.View) {
	a.view = v
	if a.cursor >= len(v.Cards) {
		a.cursor = max(0, len(v.Cards)-1)
	}
}

func (a *App) layout() layout {
	l := layout{
		width:   a.width,
		height:  a.height,
		cursor:  a.cursor,
		scroll:  a.scroll,
		now:     a.now(),
		spinner: a.spinner.View(),
		hints:   a.help.View(a.keys),
		notice:  a.notice,
		st:      a.st,
		loc:     a.loc,
	}
	if a.showHelp {
		l.fullHelp = a.help.FullHelpView(a.keys.FullHelp())
	}
	return l
}

func (a *App) View() string {
	return render(a.view, a.layout())
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
