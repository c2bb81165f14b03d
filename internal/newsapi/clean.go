package newsapi

import (
	"regexp"
	"strings"
)

// DefaultSummaryPrefixes covers the boilerplate lead-ins observed in backend
// responses. The list is configurable because its coverage is partial.
var DefaultSummaryPrefixes = []string{
	"here is",
	"here are",
	"here's",
	"sure",
	"certainly",
}

// SummaryCleaner strips a boilerplate lead-in phrase from the start of a
// summary, through the first sentence terminator, then trims whitespace.
type SummaryCleaner struct {
	pattern *regexp.Regexp
}

// NewSummaryCleaner builds a cleaner from a prefix allow-list. Matching is
// case-insensitive and anchored at the start of the summary. An empty list
// falls back to DefaultSummaryPrefixes.
func NewSummaryCleaner(prefixes []string) *SummaryCleaner {
	if len(prefixes) == 0 {
		prefixes = DefaultSummaryPrefixes
	}
	quoted := make([]string, len(prefixes))
	for i, p := range prefixes {
		quoted[i] = regexp.QuoteMeta(strings.TrimSpace(p))
	}
	pattern := regexp.MustCompile(`(?i)^\s*(?:` + strings.Join(quoted, "|") + `)\b[^.!?:]*[.!?:]\s*`)
	return &SummaryCleaner{pattern: pattern}
}

func (c *SummaryCleaner) Clean(summary string) string {
	return strings.TrimSpace(c.pattern.ReplaceAllString(summary, ""))
}
