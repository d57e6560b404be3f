package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/skim/internal/store"
)

// readerModel shows one article: analysis header, TL;DR, then body.
type readerModel struct {
	article  store.Article
	viewport viewport.Model
	width    int
	height   int
}

func newReader() readerModel {
	return readerModel{viewport: viewport.New(0, 0)}
}

func (m *readerModel) setSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(1, height-2)
	m.viewport.SetContent(m.renderContent())
}

// setArticle loads an article and scrolls back to the top.
func (m *readerModel) setArticle(a store.Article) {
	m.article = a
	m.viewport.SetContent(m.renderContent())
	m.viewport.GotoTop()
}

func (m readerModel) update(msg tea.Msg) (readerModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m readerModel) view() string {
	return m.viewport.View()
}

func (m readerModel) renderContent() string {
	a := m.article
	var b strings.Builder

	b.WriteString(styleHeader.Render(a.Title))
	b.WriteString("\n")
	b.WriteString(styleTimestamp.Render(fmt.Sprintf(
		"%s · %s · %d min read", a.SourceName, a.Published.Format("Jan 2 15:04"), a.ReadMinutes)))
	b.WriteString("\n\n")

	signal := signalStyle(a.Signal).Render(fmt.Sprintf("signal %.2f", a.Signal))
	b.WriteString(fmt.Sprintf("%s  sentiment %s%.2f  %s\n\n",
		signal, sentimentGlyph(a.Sentiment), a.Sentiment,
		styleTopic.Render(strings.Join(a.Topics, " "))))

	if a.TLDR != "" {
		b.WriteString(styleTLDR.Render("TL;DR: " + a.TLDR))
		b.WriteString("\n\n")
	}

	b.WriteString(wrapText(a.Content, max(20, m.width-2)))
	return b.String()
}

// wrapText greedily wraps words to the given width.
func wrapText(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	lineLen := 0
	for i, w := range words {
		if i > 0 {
			if lineLen+1+len(w) > width {
				b.WriteString("\n")
				lineLen = 0
			} else {
				b.WriteString(" ")
				lineLen++
			}
		}
		b.WriteString(w)
		lineLen += len(w)
	}
	return b.String()
}
