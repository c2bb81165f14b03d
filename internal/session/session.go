// Package session owns the in-memory state of one search-and-browse
// session: the current query, the fetched result list, the viewing
// position, and the liked/bookmarked annotations. All state lives for the
// process lifetime only.
package session

import (
	"strings"

	"github.com/ryosukesatoh/newsdeck/internal/newsapi"
)

// User-facing error messages. Only the most recent one is retained.
const (
	MissingTopicMessage = "Please enter a search term"
	FetchFailedMessage  = "Could not fetch news. Please try again."
)

// Session is a plain state container; all mutation happens through its
// methods on a single logical thread of control.
type Session struct {
	query    newsapi.Query
	articles []newsapi.Article
	index    int

	liked         map[string]struct{}
	bookmarks     map[string]newsapi.Article
	bookmarkOrder []string

	busy   bool
	errMsg string
	seq    uint64
}

func New() *Session {
	return &Session{
		liked:     make(map[string]struct{}),
		bookmarks: make(map[string]newsapi.Article),
	}
}

// BeginSearch validates the query and marks the session busy. It returns the
// sequence number the eventual completion must present, or ok=false when the
// topic is empty, in which case the validation message is set and no request
// should be issued.
func (s *Session) BeginSearch(q newsapi.Query) (seq uint64, ok bool) {
	if strings.TrimSpace(q.Topic) == "" {
		s.errMsg = MissingTopicMessage
		return 0, false
	}
	s.seq++
	s.query = q
	s.busy = true
	s.errMsg = ""
	return s.seq, true
}

// Install replaces the result list and resets the index to 0. A completion
// whose sequence is not the latest issued one is discarded silently and the
// current results are left untouched.
func (s *Session) Install(seq uint64, articles []newsapi.Article) bool {
	if seq != s.seq {
		return false
	}
	s.busy = false
	s.errMsg = ""
	s.articles = articles
	s.index = 0
	return true
}

// Fail records the generic fetch failure for the latest request. Stale
// failures are discarded. The result list is left unchanged either way.
func (s *Session) Fail(seq uint64) bool {
	if seq != s.seq {
		return false
	}
	s.busy = false
	s.errMsg = FetchFailedMessage
	return true
}

func (s *Session) Query() newsapi.Query        { return s.query }
func (s *Session) Articles() []newsapi.Article { return s.articles }
func (s *Session) Len() int                    { return len(s.articles) }
func (s *Session) Index() int                  { return s.index }
func (s *Session) Busy() bool                  { return s.busy }
func (s *Session) ErrMessage() string          { return s.errMsg }

// Current returns the displayed article, or ok=false when the list is empty.
func (s *Session) Current() (newsapi.Article, bool) {
	if len(s.articles) == 0 {
		return newsapi.Article{}, false
	}
	return s.articles[s.index], true
}

// Step moves the index by delta and clamps it to [0, len-1]. Moving past
// either end is a no-op, never an error.
func (s *Session) Step(delta int) {
	if len(s.articles) == 0 {
		return
	}
	s.index += delta
	if s.index < 0 {
		s.index = 0
	}
	if s.index > len(s.articles)-1 {
		s.index = len(s.articles) - 1
	}
}

// ToggleLiked flips membership of id in the liked set and reports the new
// state.
func (s *Session) ToggleLiked(id string) bool {
	if _, ok := s.liked[id]; ok {
		delete(s.liked, id)
		return false
	}
	s.liked[id] = struct{}{}
	return true
}

func (s *Session) Liked(id string) bool {
	_, ok := s.liked[id]
	return ok
}

// ToggleBookmark flips membership of the article in the bookmark map, keyed
// by its id. The full article is stored so bookmarks stay viewable after the
// result list is replaced. Reports the new state.
func (s *Session) ToggleBookmark(a newsapi.Article) bool {
	if _, ok := s.bookmarks[a.ID]; ok {
		delete(s.bookmarks, a.ID)
		for i, id := range s.bookmarkOrder {
			if id == a.ID {
				s.bookmarkOrder = append(s.bookmarkOrder[:i], s.bookmarkOrder[i+1:]...)
				break
			}
		}
		return false
	}
	s.bookmarks[a.ID] = a
	s.bookmarkOrder = append(s.bookmarkOrder, a.ID)
	return true
}

func (s *Session) Bookmarked(id string) bool {
	_, ok := s.bookmarks[id]
	return ok
}

// Bookmarks is the pure projection backing the bookmarks view: the stored
// articles in the order they were bookmarked.
func (s *Session) Bookmarks() []newsapi.Article {
	out := make([]newsapi.Article, 0, len(s.bookmarkOrder))
	for _, id := range s.bookmarkOrder {
		out = append(out, s.bookmarks[id])
	}
	return out
}
