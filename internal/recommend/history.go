// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package recommend

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Provenance records where a search query's text came from.
type Provenance string

const (
	// ProvenanceURL marks text taken from a search URL's q parameter.
	ProvenanceURL Provenance = "url"
	// ProvenanceTitle marks text taken from the page title.
	ProvenanceTitle Provenance = "title"
)

// RawTimestamp is a browser history timestamp in any supported encoding.
// In JSON it may be a string or a number.
type RawTimestamp string

// UnmarshalJSON accepts JSON strings, numbers and null.
func (r *RawTimestamp) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	switch {
	case s == "null":
		*r = ""
	case strings.HasPrefix(s, `"`):
		u, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("timestamp %s: %w", s, ErrMalformedInput)
		}
		*r = RawTimestamp(u)
	default:
		*r = RawTimestamp(s)
	}
	return nil
}

// HistoryEntry is one raw browser history record.
type HistoryEntry struct {
	URL       string       `json:"url"`
	Title     string       `json:"title"`
	Timestamp RawTimestamp `json:"timestamp"`
}

// SearchQuery is a normalized query extracted from browser history.
type SearchQuery struct {
	Text       string     `json:"query"`
	Timestamp  time.Time  `json:"timestamp"`
	Provenance Provenance `json:"provenance"`
	URL        string     `json:"url,omitempty"`
	Title      string     `json:"title,omitempty"`

	// TimestampDefaulted is set when the raw timestamp was missing or
	// unparsable and Timestamp holds the extraction time instead.
	TimestampDefaulted bool `json:"timestamp_defaulted,omitempty"`
}

var googleQueryPattern = regexp.MustCompile(`q=([^&]+)`)

// Layouts carrying a zone. The zone is discarded after parsing.
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
}

var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Epoch values above this are interpreted as milliseconds.
const epochMillisThreshold = 1e11

// HistoryExtractor turns raw browser history into search queries.
type HistoryExtractor struct {
	now func() time.Time
}

// NewHistoryExtractor creates an extractor. A nil clock selects time.Now.
func NewHistoryExtractor(now func() time.Time) *HistoryExtractor {
	if now == nil {
		now = time.Now
	}
	return &HistoryExtractor{now: now}
}

// Extract returns one SearchQuery per entry with usable text, in input
// order. The query is read from Google search URLs when present, else
// from a title that is not itself a URL. Entries with neither are dropped.
func (x *HistoryExtractor) Extract(entries []HistoryEntry) []SearchQuery {
	queries := make([]SearchQuery, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		text, provenance := queryText(e.URL, e.Title)
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		ts, err := ParseTimestamp(string(e.Timestamp))
		defaulted := err != nil
		if defaulted {
			ts = naive(x.now())
		}

		queries = append(queries, SearchQuery{
			Text:               text,
			Timestamp:          ts,
			Provenance:         provenance,
			URL:                e.URL,
			Title:              e.Title,
			TimestampDefaulted: defaulted,
		})
	}
	return queries
}

func queryText(rawURL, title string) (string, Provenance) {
	if strings.Contains(rawURL, "google.com") && strings.Contains(rawURL, "q=") {
		if m := googleQueryPattern.FindStringSubmatch(rawURL); m != nil {
			if q, err := url.QueryUnescape(m[1]); err == nil {
				return q, ProvenanceURL
			}
		}
	}
	if title != "" && !strings.HasPrefix(title, "http") {
		return title, ProvenanceTitle
	}
	return "", ""
}

// ParseTimestamp normalizes s to a timezone-naive wall clock time stored
// as UTC. Zone offsets are dropped, not applied. Unix seconds and
// milliseconds are accepted. Empty or unrecognized input returns an
// error wrapping ErrMalformedInput.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp: %w", ErrMalformedInput)
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		if math.Abs(f) > epochMillisThreshold {
			return time.UnixMilli(int64(f)).UTC(), nil
		}
		sec, frac := math.Modf(f)
		return time.Unix(int64(sec), int64(frac*1e9)).UTC(), nil
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return naive(t), nil
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("timestamp %q: %w", s, ErrMalformedInput)
}

// naive keeps t's wall clock and drops its zone.
func naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
