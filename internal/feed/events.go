package feed

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

type Repo struct {
	Name string `json:"name"`
}

type Event struct {
	CreatedAt time.Time `json:"created_at"`
	Type      string    `json:"type"`
	Repo      Repo      `json:"repo"`
}

// ContribTypes are the event types shown in contribution mode.
var ContribTypes = []string{
	"PushEvent",
	"PullRequestEvent",
	"IssuesEvent",
	"IssueCommentEvent",
	"PullRequestReviewEvent",
	"PullRequestReviewCommentEvent",
	"CreateEvent",
	"ForkEvent",
	"WatchEvent",
}

// FilterByDays keeps events strictly newer than now minus days.
func FilterByDays(events []Event, days int, now time.Time) []Event {
	cutoff := now.Add(-time.Duration(days) * 24 * time.Hour)
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if e.CreatedAt.After(cutoff) {
			out = append(out, e)
		}
	}
	return out
}

func FilterContrib(events []Event) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		for _, t := range ContribTypes {
			if e.Type == t {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// Age renders how long ago t was, in whole days.
func Age(t, now time.Time) string {
	days := int(now.Sub(t) / (24 * time.Hour))
	switch days {
	case 0:
		return "today"
	case 1:
		return "1 day ago"
	}
	return fmt.Sprintf("%d days ago", days)
}

// TickerText builds the message and meta lines. Each event occupies a
// segment of equal rune width on both lines.
func TickerText(events []Event, now time.Time) (msg, meta string, ok bool) {
	if len(events) == 0 {
		return "", "", false
	}

	var mb, tb strings.Builder
	for _, e := range events {
		m := fmt.Sprintf("%s in %s", e.Type, e.Repo.Name)
		a := Age(e.CreatedAt, now)
		width := max(utf8.RuneCountInString(m), utf8.RuneCountInString(a)) + 4
		mb.WriteString(PadRight(m, width))
		tb.WriteString(PadRight(a, width))
	}
	return mb.String(), tb.String(), true
}

// PadRight pads s with spaces to n runes. Longer strings are returned as is.
func PadRight(s string, n int) string {
	l := utf8.RuneCountInString(s)
	if l >= n {
		return s
	}
	return s + strings.Repeat(" ", n-l)
}

// DailyCounts buckets events by age in days, oldest bucket first.
func DailyCounts(events []Event, days int, now time.Time) []float64 {
	if days <= 0 {
		return nil
	}
	counts := make([]float64, days)
	for _, e := range events {
		age := int(now.Sub(e.CreatedAt) / (24 * time.Hour))
		if age < 0 || age >= days {
			continue
		}
		counts[days-1-age]++
	}
	return counts
}
