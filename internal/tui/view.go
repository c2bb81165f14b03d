package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/ryosukesatoh/newsdeck/internal/newsapi"
)

const (
	browseHelp    = "enter: search | /: edit query | ←/→: prev/next | l: like | b: bookmark | y: share | o: open | tab: bookmarks | q: quit"
	bookmarksHelp = "j/k: move | b: remove | l: like | y: share | o: open | tab/esc: back | q: quit"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(appTitleStyle.Render("newsdeck"))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	if m.sess.Busy() {
		b.WriteString("  " + m.spin.View() + bylineStyle.Render("searching..."))
	}
	b.WriteString("\n\n")

	if msg := m.sess.ErrMessage(); msg != "" {
		b.WriteString(errorStyle.Render(msg))
		b.WriteString("\n\n")
	}

	if m.mode == viewBookmarks {
		b.WriteString(m.bookmarksView())
	} else {
		b.WriteString(m.browseView())
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")

	help := browseHelp
	if m.mode == viewBookmarks {
		help = bookmarksHelp
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}

func (m Model) browseView() string {
	a, ok := m.sess.Current()
	if !ok {
		if m.sess.Busy() {
			return ""
		}
		return bylineStyle.Render("No results yet. Type a topic and press enter.")
	}

	var b strings.Builder
	position := fmt.Sprintf("Article %d of %d", m.sess.Index()+1, m.sess.Len())
	b.WriteString(positionStyle.Render(position))
	if markers := m.markers(a.ID); markers != "" {
		b.WriteString("  " + markerStyle.Render(markers))
	}
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(a.Title))
	b.WriteString("\n")
	b.WriteString(bylineStyle.Render(byline(a)))
	b.WriteString("\n\n")
	b.WriteString(wordwrap.String(a.Summary, m.contentWidth()))
	b.WriteString("\n\n")
	b.WriteString(urlStyle.Render(a.URL))

	return cardStyle.Render(b.String())
}

func (m Model) bookmarksView() string {
	marks := m.sess.Bookmarks()
	if len(marks) == 0 {
		return bylineStyle.Render("No bookmarks yet.")
	}

	var b strings.Builder
	b.WriteString(positionStyle.Render(fmt.Sprintf("Bookmarks (%d)", len(marks))))
	b.WriteString("\n\n")
	for i, a := range marks {
		line := fmt.Sprintf("%2d. %s", i+1, a.Title)
		if a.Source != "" {
			line += bylineStyle.Render(" - " + a.Source)
		}
		if m.sess.Liked(a.ID) {
			line += "  " + markerStyle.Render("♥")
		}
		if i == m.bmCursor {
			line = cursorLineStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) markers(id string) string {
	var parts []string
	if m.sess.Liked(id) {
		parts = append(parts, "♥ liked")
	}
	if m.sess.Bookmarked(id) {
		parts = append(parts, "★ bookmarked")
	}
	return strings.Join(parts, "  ")
}

func (m Model) contentWidth() int {
	if m.width > 10 {
		width := m.width - 8
		if width > 100 {
			width = 100
		}
		return width
	}
	return 72
}

func byline(a newsapi.Article) string {
	switch {
	case a.Source != "" && a.Author != "":
		return a.Source + " - " + a.Author
	case a.Source != "":
		return a.Source
	default:
		return a.Author
	}
}
