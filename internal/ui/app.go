// Package ui is the Bubble Tea terminal interface for skim.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/skim/internal/store"
	"github.com/abelbrown/skim/internal/track"
)

// Store is the subset of store methods the UI needs. Narrow on purpose
// so tests can substitute a fake.
type Store interface {
	GetArticles(limit int, includeRead bool) ([]store.Article, error)
	MarkRead(id string, at time.Time) error
	RecentReads(limit int) ([]track.ReadEvent, error)
}

// view states
const (
	viewStream = iota
	viewReader
)

// App is the root model.
type App struct {
	store     Store
	driftCfg  track.Config
	itemLimit int
	showRead  bool

	state  int
	stream streamModel
	reader readerModel

	nudge  track.Nudge
	status string
	width  int
	height int
}

// New creates the root model.
func New(st Store, driftCfg track.Config, itemLimit int, showRead bool) App {
	return App{
		store:     st,
		driftCfg:  driftCfg,
		itemLimit: itemLimit,
		showRead:  showRead,
		reader:    newReader(),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.loadArticles
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.stream.setSize(msg.Width, msg.Height-2)
		a.reader.setSize(msg.Width, msg.Height-2)
		return a, nil

	case ArticlesUpdatedMsg:
		if msg.New > 0 {
			a.status = fmt.Sprintf("%d new articles", msg.New)
		}
		return a, a.loadArticles

	case articlesLoadedMsg:
		a.stream.setArticles(msg.articles)
		return a, nil

	case nudgeMsg:
		a.nudge = msg.nudge
		return a, a.loadArticles

	case errMsg:
		a.status = msg.err.Error()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.state {
	case viewReader:
		switch {
		case key.Matches(msg, appKeys.Back):
			a.state = viewStream
			return a, nil
		case key.Matches(msg, appKeys.Quit):
			return a, tea.Quit
		}
		var cmd tea.Cmd
		a.reader, cmd = a.reader.update(msg)
		return a, cmd

	default: // viewStream
		switch {
		case key.Matches(msg, appKeys.Quit):
			return a, tea.Quit
		case key.Matches(msg, appKeys.Open):
			article, ok := a.stream.selected()
			if !ok {
				return a, nil
			}
			a.state = viewReader
			a.reader.setArticle(article)
			return a, a.markRead(article.ID)
		case key.Matches(msg, appKeys.Refresh):
			return a, a.loadArticles
		}
		var cmd tea.Cmd
		a.stream, cmd = a.stream.update(msg)
		return a, cmd
	}
}

// View implements tea.Model.
func (a App) View() string {
	var b strings.Builder

	b.WriteString(styleHeader.Render(" skim"))
	if a.status != "" {
		b.WriteString("  " + styleHelp.Render(a.status))
	}
	b.WriteString("\n")

	switch a.state {
	case viewReader:
		b.WriteString(a.reader.view())
	default:
		b.WriteString(a.stream.view())
	}

	if a.nudge.Triggered {
		b.WriteString("\n")
		b.WriteString(styleNudge.Render(fmt.Sprintf(
			"%.0f%% of your recent reading is %q - try: %s",
			a.nudge.DominantFraction*100,
			a.nudge.DominantTopic,
			strings.Join(a.nudge.SuggestedTopics, ", "))))
	}

	b.WriteString("\n")
	b.WriteString(styleHelp.Render(" j/k move · enter read · esc back · r refresh · q quit"))
	return b.String()
}

// loadArticles reads the display list from the store.
func (a App) loadArticles() tea.Msg {
	articles, err := a.store.GetArticles(a.itemLimit, a.showRead)
	if err != nil {
		return errMsg{err}
	}
	return articlesLoadedMsg{articles}
}

// markRead records the read event and re-evaluates drift over the
// fresh window. Drift runs on every read; whether to keep showing a
// repeat nudge is decided here in the presentation layer, simply by
// rendering whatever the latest decision says.
func (a App) markRead(id string) tea.Cmd {
	return func() tea.Msg {
		if err := a.store.MarkRead(id, time.Now()); err != nil {
			return errMsg{err}
		}
		events, err := a.store.RecentReads(a.driftCfg.WindowSize)
		if err != nil {
			return errMsg{err}
		}
		return nudgeMsg{track.EvaluateDrift(events, a.driftCfg)}
	}
}

// Key bindings shared across views.
var appKeys = struct {
	Open    key.Binding
	Back    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}{
	Open:    key.NewBinding(key.WithKeys("enter")),
	Back:    key.NewBinding(key.WithKeys("esc", "backspace")),
	Refresh: key.NewBinding(key.WithKeys("r")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
