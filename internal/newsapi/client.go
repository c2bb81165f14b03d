package newsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Article is a single summarized news item as shown to the user.
type Article struct {
	ID      string
	Title   string
	Source  string
	Author  string
	Summary string
	URL     string
}

// Query holds the inputs for one search.
type Query struct {
	Topic     string
	Language  string
	Category  string
	DateRange string
}

// Searcher is the gateway interface consumed by the TUI and the watch runner.
type Searcher interface {
	Search(ctx context.Context, q Query) ([]Article, error)
}

// ErrEmptyTopic is returned when the search topic is empty after trimming.
// No request is sent in that case.
var ErrEmptyTopic = fmt.Errorf("newsapi: empty search topic")

// Client talks to the news summarization backend.
type Client struct {
	baseURL string
	cleaner *SummaryCleaner
	client  *http.Client
	logger  zerolog.Logger
}

func NewClient(baseURL string, timeout time.Duration, cleaner *SummaryCleaner, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		cleaner: cleaner,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Backend request/response types

type searchRequest struct {
	Topic     string `json:"topic"`
	Language  string `json:"language"`
	Category  string `json:"category"`
	DateRange string `json:"dateRange"`
}

type searchResponse struct {
	News []newsItem `json:"news"`
}

type newsItem struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Source  string `json:"source"`
	Author  string `json:"author"`
	URL     string `json:"url"`
}

// Search posts one query to the backend and returns the normalized article
// list in response order. The "24h" range is remapped to "1d" on the wire.
func (c *Client) Search(ctx context.Context, q Query) ([]Article, error) {
	if strings.TrimSpace(q.Topic) == "" {
		return nil, ErrEmptyTopic
	}

	dateRange := q.DateRange
	if dateRange == "24h" {
		dateRange = "1d"
	}

	reqBody := searchRequest{
		Topic:     q.Topic,
		Language:  q.Language,
		Category:  q.Category,
		DateRange: dateRange,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("newsapi: failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/news", bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("newsapi: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug().Str("topic", q.Topic).Str("date_range", dateRange).Msg("searching news")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsapi: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("newsapi: unexpected status %d", resp.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("newsapi: failed to parse response: %w", err)
	}

	articles := make([]Article, 0, len(sr.News))
	for i, item := range sr.News {
		articles = append(articles, Article{
			// The list index disambiguates duplicate URLs within one batch.
			ID:      item.URL + strconv.Itoa(i),
			Title:   item.Title,
			Source:  item.Source,
			Author:  item.Author,
			Summary: c.cleaner.Clean(item.Summary),
			URL:     item.URL,
		})
	}

	c.logger.Debug().Int("count", len(articles)).Msg("search completed")
	return articles, nil
}
