// Package render produces the plain-text representations of articles used
// by the headless modes and the share action.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/ryosukesatoh/newsdeck/internal/newsapi"
)

// SharePayload is the fixed two-line clipboard representation of an
// article: title, then URL.
func SharePayload(a newsapi.Article) string {
	return a.Title + "\n" + a.URL
}

// Batch writes a whole result list for a topic to w.
func Batch(w io.Writer, topic string, articles []newsapi.Article) {
	fmt.Fprintln(w, strings.Repeat("=", 72))
	fmt.Fprintf(w, "News: %s\n", topic)
	fmt.Fprintln(w, strings.Repeat("=", 72))

	if len(articles) == 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "No articles found.")
		return
	}

	for i, a := range articles {
		fmt.Fprintln(w)
		Article(w, i, len(articles), a)
	}
}

// Article writes one article with its position in the batch.
func Article(w io.Writer, i, n int, a newsapi.Article) {
	fmt.Fprintln(w, strings.Repeat("-", 72))
	fmt.Fprintf(w, "%d/%d. %s\n", i+1, n, a.Title)
	byline := a.Source
	if a.Author != "" {
		byline += " - " + a.Author
	}
	if byline != "" {
		fmt.Fprintf(w, "   %s\n", byline)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "   %s\n", a.Summary)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "   URL: %s\n", a.URL)
}
