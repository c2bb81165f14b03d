package newsapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

const sampleResponse = `{
  "news": [
    {
      "title": "Climate summit opens",
      "summary": "Here is a summary of the article: World leaders met in Geneva.",
      "source": "Example Wire",
      "author": "Alice Reporter",
      "url": "http://example.com/climate"
    },
    {
      "title": "Second story",
      "summary": "Markets were calm.",
      "source": "Example Post",
      "author": "Bob Writer",
      "url": "http://example.com/markets"
    },
    {
      "title": "Duplicate link story",
      "summary": "A follow-up ran.",
      "source": "Example Post",
      "author": "Bob Writer",
      "url": "http://example.com/markets"
    }
  ]
}`

func newTestClient(ts *httptest.Server) *Client {
	return NewClient(ts.URL, 5*time.Second, NewSummaryCleaner(nil), zerolog.Nop())
}

func TestSearchNormalizesResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, sampleResponse)
	}))
	defer ts.Close()

	c := newTestClient(ts)

	articles, err := c.Search(context.Background(), Query{Topic: "climate", Language: "en", DateRange: "7d"})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	if len(articles) != 3 {
		t.Fatalf("Expected 3 articles, got %d", len(articles))
	}

	a := articles[0]
	if a.ID != "http://example.com/climate0" {
		t.Errorf("Expected id derived from url and index, got %q", a.ID)
	}
	if a.Title != "Climate summit opens" {
		t.Errorf("Unexpected title %q", a.Title)
	}
	if a.Source != "Example Wire" || a.Author != "Alice Reporter" {
		t.Errorf("Source/author not passed through: %q / %q", a.Source, a.Author)
	}
	if a.Summary != "World leaders met in Geneva." {
		t.Errorf("Expected cleaned summary, got %q", a.Summary)
	}
	if a.URL != "http://example.com/climate" {
		t.Errorf("Unexpected URL %q", a.URL)
	}
}

func TestSearchIDsUniqueForDuplicateURLs(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, sampleResponse)
	}))
	defer ts.Close()

	c := newTestClient(ts)

	articles, err := c.Search(context.Background(), Query{Topic: "markets"})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	seen := make(map[string]bool)
	for _, a := range articles {
		if seen[a.ID] {
			t.Errorf("Duplicate article id %q", a.ID)
		}
		seen[a.ID] = true
	}
	if articles[1].ID == articles[2].ID {
		t.Errorf("Articles sharing a URL must still get distinct ids")
	}
}

func TestSearchRequestShaping(t *testing.T) {
	var received searchRequest
	var path string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("Failed to decode request body: %v", err)
		}
		io.WriteString(w, `{"news": []}`)
	}))
	defer ts.Close()

	c := newTestClient(ts)

	_, err := c.Search(context.Background(), Query{Topic: "climate", Language: "en", DateRange: "24h"})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	if path != "/api/news" {
		t.Errorf("Expected POST to /api/news, got %q", path)
	}
	if received.Topic != "climate" {
		t.Errorf("Expected topic 'climate', got %q", received.Topic)
	}
	if received.DateRange != "1d" {
		t.Errorf("Expected 24h remapped to 1d, got %q", received.DateRange)
	}
	if received.Category != "" {
		t.Errorf("Expected unset category sent as empty string, got %q", received.Category)
	}
}

func TestSearchPassesDateRangeThrough(t *testing.T) {
	var received searchRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&received)
		io.WriteString(w, `{"news": []}`)
	}))
	defer ts.Close()

	c := newTestClient(ts)

	if _, err := c.Search(context.Background(), Query{Topic: "tech", DateRange: "30d"}); err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if received.DateRange != "30d" {
		t.Errorf("Expected 30d passed through, got %q", received.DateRange)
	}
}

func TestSearchEmptyTopic(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		io.WriteString(w, `{"news": []}`)
	}))
	defer ts.Close()

	c := newTestClient(ts)

	for _, topic := range []string{"", "   ", "\t\n"} {
		_, err := c.Search(context.Background(), Query{Topic: topic})
		if !errors.Is(err, ErrEmptyTopic) {
			t.Errorf("Topic %q: expected ErrEmptyTopic, got %v", topic, err)
		}
	}
	if called {
		t.Error("No network call may be issued for an empty topic")
	}
}

func TestSearchBadStatusCode(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := newTestClient(ts)

	_, err := c.Search(context.Background(), Query{Topic: "anything"})
	if err == nil {
		t.Fatal("Expected error for 500 status code")
	}
	if !strings.Contains(err.Error(), "unexpected status 500") {
		t.Errorf("Expected 'unexpected status 500' error, got: %v", err)
	}
}

func TestSearchInvalidJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "this is not json")
	}))
	defer ts.Close()

	c := newTestClient(ts)

	_, err := c.Search(context.Background(), Query{Topic: "anything"})
	if err == nil {
		t.Fatal("Expected error for invalid JSON")
	}
	if !strings.Contains(err.Error(), "failed to parse response") {
		t.Errorf("Expected parse error, got: %v", err)
	}
}

func TestSearchEmptyNewsList(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"news": []}`)
	}))
	defer ts.Close()

	c := newTestClient(ts)

	articles, err := c.Search(context.Background(), Query{Topic: "anything"})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(articles) != 0 {
		t.Errorf("Expected 0 articles, got %d", len(articles))
	}
}
