// Package tui is the Bubble Tea front end for the search-and-browse
// session. All session mutation happens inside Update; network calls run as
// commands and come back as messages carrying the request sequence number.
package tui

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/ryosukesatoh/newsdeck/internal/clipboard"
	"github.com/ryosukesatoh/newsdeck/internal/newsapi"
	"github.com/ryosukesatoh/newsdeck/internal/render"
	"github.com/ryosukesatoh/newsdeck/internal/session"
)

type viewMode int

const (
	viewBrowse viewMode = iota
	viewBookmarks
)

type searchResultMsg struct {
	seq      uint64
	articles []newsapi.Article
}

type searchFailedMsg struct {
	seq uint64
	err error
}

type shareResultMsg struct {
	err error
}

type openResultMsg struct {
	err error
}

type clearStatusMsg struct {
	id int
}

type Model struct {
	sess     *session.Session
	gateway  newsapi.Searcher
	defaults newsapi.Query
	timeout  time.Duration
	logger   zerolog.Logger

	input textinput.Model
	spin  spinner.Model

	mode     viewMode
	bmCursor int

	width  int
	height int

	status   string
	statusID int

	copyFn func(string) error
	openFn func(string) error
}

func New(gateway newsapi.Searcher, defaults newsapi.Query, timeout time.Duration, logger zerolog.Logger) Model {
	input := textinput.New()
	input.Placeholder = "Search news..."
	input.CharLimit = 120
	input.Width = 50
	input.SetValue(defaults.Topic)
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = spinnerStyle

	return Model{
		sess:     session.New(),
		gateway:  gateway,
		defaults: defaults,
		timeout:  timeout,
		logger:   logger,
		input:    input,
		spin:     spin,
		copyFn:   clipboard.Copy,
		openFn:   openInBrowser,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.sess.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case searchResultMsg:
		if !m.sess.Install(msg.seq, msg.articles) {
			m.logger.Debug().Uint64("seq", msg.seq).Msg("discarding stale search result")
			return m, nil
		}
		return m.setStatus(resultStatus(len(msg.articles)))

	case searchFailedMsg:
		if m.sess.Fail(msg.seq) {
			m.logger.Warn().Err(msg.err).Msg("search failed")
		}
		return m, nil

	case shareResultMsg:
		if msg.err != nil {
			return m.setStatus("Could not copy to clipboard")
		}
		return m.setStatus("Copied to clipboard")

	case openResultMsg:
		if msg.err != nil {
			return m.setStatus("Could not open browser")
		}
		return m.setStatus("Opened in browser")

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.input.Focused() {
		switch msg.String() {
		case "enter":
			return m.submitSearch()
		case "esc":
			m.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	if m.mode == viewBookmarks {
		return m.handleBookmarksKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/", "s":
		m.input.Focus()
		return m, textinput.Blink
	case "enter":
		return m.submitSearch()
	case "right", "n":
		m.sess.Step(1)
		return m, nil
	case "left", "p":
		m.sess.Step(-1)
		return m, nil
	case "l":
		if a, ok := m.sess.Current(); ok {
			if m.sess.ToggleLiked(a.ID) {
				return m.setStatus("Liked")
			}
			return m.setStatus("Unliked")
		}
		return m, nil
	case "b":
		if a, ok := m.sess.Current(); ok {
			if m.sess.ToggleBookmark(a) {
				return m.setStatus("Bookmarked")
			}
			return m.setStatus("Bookmark removed")
		}
		return m, nil
	case "y":
		if a, ok := m.sess.Current(); ok {
			return m, shareCmd(a, m.copyFn)
		}
		return m, nil
	case "o":
		if a, ok := m.sess.Current(); ok {
			return m, openCmd(a.URL, m.openFn)
		}
		return m, nil
	case "tab", "B":
		m.mode = viewBookmarks
		m.bmCursor = 0
		return m, nil
	}

	return m, nil
}

func (m Model) handleBookmarksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	marks := m.sess.Bookmarks()

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "tab", "B":
		m.mode = viewBrowse
		return m, nil
	case "down", "j":
		if m.bmCursor < len(marks)-1 {
			m.bmCursor++
		}
		return m, nil
	case "up", "k":
		if m.bmCursor > 0 {
			m.bmCursor--
		}
		return m, nil
	case "b":
		if a, ok := m.bookmarkUnderCursor(marks); ok {
			m.sess.ToggleBookmark(a)
			if m.bmCursor >= len(marks)-1 && m.bmCursor > 0 {
				m.bmCursor--
			}
			return m.setStatus("Bookmark removed")
		}
		return m, nil
	case "l":
		if a, ok := m.bookmarkUnderCursor(marks); ok {
			if m.sess.ToggleLiked(a.ID) {
				return m.setStatus("Liked")
			}
			return m.setStatus("Unliked")
		}
		return m, nil
	case "y":
		if a, ok := m.bookmarkUnderCursor(marks); ok {
			return m, shareCmd(a, m.copyFn)
		}
		return m, nil
	case "o":
		if a, ok := m.bookmarkUnderCursor(marks); ok {
			return m, openCmd(a.URL, m.openFn)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) bookmarkUnderCursor(marks []newsapi.Article) (newsapi.Article, bool) {
	if len(marks) == 0 || m.bmCursor < 0 || m.bmCursor >= len(marks) {
		return newsapi.Article{}, false
	}
	return marks[m.bmCursor], true
}

// submitSearch issues a new request unless one is already outstanding. The
// busy flag gates re-submission so two result lists never race.
func (m Model) submitSearch() (tea.Model, tea.Cmd) {
	if m.sess.Busy() {
		return m, nil
	}

	q := m.defaults
	q.Topic = m.input.Value()

	seq, ok := m.sess.BeginSearch(q)
	if !ok {
		return m, nil
	}

	m.input.Blur()
	m.mode = viewBrowse
	m.status = ""
	return m, tea.Batch(m.spin.Tick, searchCmd(m.gateway, seq, q, m.timeout))
}

func (m Model) setStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	m.statusID++
	id := m.statusID
	return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

func resultStatus(n int) string {
	switch n {
	case 0:
		return "No articles found"
	case 1:
		return "Loaded 1 article"
	default:
		return fmt.Sprintf("Loaded %d articles", n)
	}
}

func searchCmd(gateway newsapi.Searcher, seq uint64, q newsapi.Query, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		articles, err := gateway.Search(ctx, q)
		if err != nil {
			return searchFailedMsg{seq: seq, err: err}
		}
		return searchResultMsg{seq: seq, articles: articles}
	}
}

func shareCmd(a newsapi.Article, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		return shareResultMsg{err: copyFn(render.SharePayload(a))}
	}
}

func openCmd(url string, openFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		return openResultMsg{err: openFn(url)}
	}
}

func openInBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Run()
}
