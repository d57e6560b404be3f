package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/skim/internal/store"
)

// streamModel is the scrolling article list.
type streamModel struct {
	articles []store.Article
	cursor   int
	viewport int // Index of first visible article
	width    int
	height   int
}

// setArticles updates the list, clamping the cursor.
func (m *streamModel) setArticles(articles []store.Article) {
	m.articles = articles
	if m.cursor >= len(articles) {
		m.cursor = max(0, len(articles)-1)
	}
}

func (m *streamModel) setSize(width, height int) {
	m.width = width
	m.height = height
}

// selected returns the article under the cursor.
func (m streamModel) selected() (store.Article, bool) {
	if m.cursor >= 0 && m.cursor < len(m.articles) {
		return m.articles[m.cursor], true
	}
	return store.Article{}, false
}

func (m streamModel) update(msg tea.Msg) (streamModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, streamKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, streamKeys.Down):
			if m.cursor < len(m.articles)-1 {
				m.cursor++
			}
		case key.Matches(msg, streamKeys.PageUp):
			m.cursor = max(0, m.cursor-m.visibleLines())
		case key.Matches(msg, streamKeys.PageDown):
			m.cursor = min(max(0, len(m.articles)-1), m.cursor+m.visibleLines())
		case key.Matches(msg, streamKeys.Home):
			m.cursor = 0
			m.viewport = 0
		case key.Matches(msg, streamKeys.End):
			if len(m.articles) > 0 {
				m.cursor = len(m.articles) - 1
			}
		}
	}

	m.ensureCursorVisible()
	return m, nil
}

func (m *streamModel) ensureCursorVisible() {
	visible := m.visibleLines()
	if visible <= 0 {
		return
	}
	if m.cursor < m.viewport {
		m.viewport = m.cursor
	}
	if m.cursor >= m.viewport+visible {
		m.viewport = m.cursor - visible + 1
	}
}

func (m streamModel) visibleLines() int {
	// Each article renders as two lines (headline + TL;DR preview),
	// with header/footer reserved above and below.
	return max(1, (m.height-4)/2)
}

func (m streamModel) view() string {
	if len(m.articles) == 0 {
		return styleHelp.Render("  No articles yet. Fetching feeds...")
	}

	var b strings.Builder
	end := min(m.viewport+m.visibleLines(), len(m.articles))
	for i := m.viewport; i < end; i++ {
		b.WriteString(m.renderArticle(m.articles[i], i == m.cursor))
		b.WriteString("\n")
	}
	return b.String()
}

// renderArticle renders the two-line entry: badges + headline, then an
// indented TL;DR preview.
func (m streamModel) renderArticle(a store.Article, selected bool) string {
	signal := signalStyle(a.Signal).Render(fmt.Sprintf("%.2f", a.Signal))
	mood := sentimentGlyph(a.Sentiment)
	src := styleSourceBadge.Render(fmt.Sprintf("[%s]", truncate(a.SourceName, 8)))
	age := styleTimestamp.Render(formatAge(a.Published))
	topics := styleTopic.Render(strings.Join(a.Topics, ","))

	maxTitle := max(20, m.width-40)
	title := truncate(a.Title, maxTitle)

	line := fmt.Sprintf("%s %s %s %s  %s %s", signal, mood, src, title, topics, age)
	switch {
	case selected:
		line = styleItemSelected.Render(line)
	case a.Read:
		line = styleItemRead.Render(line)
	default:
		line = styleItemNormal.Render(line)
	}

	preview := styleTLDR.Render("       " + truncate(a.TLDR, max(20, m.width-8)))
	return line + "\n" + preview
}

// formatAge returns a human-readable age string.
func formatAge(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

// Key bindings for the stream view.
var streamKeys = struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
}{
	Up:       key.NewBinding(key.WithKeys("up", "k")),
	Down:     key.NewBinding(key.WithKeys("down", "j")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d")),
	Home:     key.NewBinding(key.WithKeys("home", "g")),
	End:      key.NewBinding(key.WithKeys("end", "G")),
}
