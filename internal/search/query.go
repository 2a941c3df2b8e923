package search

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var ErrInvalidQuery = errors.New("invalid search query")

type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

const dateLayout = "2006-01-02"

var (
	tagPattern       = regexp.MustCompile(`(?i)tag:(\S+)`)
	minAmountPattern = regexp.MustCompile(`(?i)amount>(\d+(?:\.\d+)?)`)
	maxAmountPattern = regexp.MustCompile(`(?i)amount<(\d+(?:\.\d+)?)`)
	sincePattern     = regexp.MustCompile(`(?i)since:(\d{4}-\d{2}-\d{2})`)
	untilPattern     = regexp.MustCompile(`(?i)until:(\d{4}-\d{2}-\d{2})`)
	directionPattern = regexp.MustCompile(`(?i)direction:(in|out)\b`)

	addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	hashPattern    = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
)

// Filters are the structured parts of a search query. Amount thresholds keep the
// decimal literal typed by the user; dates are UTC midnights.
type Filters struct {
	Address   string     `json:"address,omitempty"`
	TxHash    string     `json:"txHash,omitempty"`
	Tag       string     `json:"tag,omitempty"`
	MinAmount string     `json:"minAmount,omitempty"`
	MaxAmount string     `json:"maxAmount,omitempty"`
	Since     *time.Time `json:"since,omitempty"`
	Until     *time.Time `json:"until,omitempty"`
	Direction Direction  `json:"direction,omitempty"`
}

// Parse splits a raw query into filters and the residual free text. Each recognized
// token is taken once, at its first occurrence, and removed from the text.
func Parse(query string) (Filters, string, error) {
	var filters Filters
	rest := query

	take := func(pattern *regexp.Regexp) (string, bool) {
		m := pattern.FindStringSubmatch(rest)
		if m == nil {
			return "", false
		}
		rest = strings.Replace(rest, m[0], "", 1)
		return m[1], true
	}

	if v, ok := take(tagPattern); ok {
		filters.Tag = v
	}
	if v, ok := take(minAmountPattern); ok {
		filters.MinAmount = v
	}
	if v, ok := take(maxAmountPattern); ok {
		filters.MaxAmount = v
	}
	if v, ok := take(sincePattern); ok {
		day, err := parseDay(v)
		if err != nil {
			return Filters{}, "", err
		}
		filters.Since = &day
	}
	if v, ok := take(untilPattern); ok {
		day, err := parseDay(v)
		if err != nil {
			return Filters{}, "", err
		}
		filters.Until = &day
	}
	if v, ok := take(directionPattern); ok {
		filters.Direction = Direction(strings.ToLower(v))
	}

	rest = strings.TrimSpace(rest)

	switch {
	case addressPattern.MatchString(rest):
		filters.Address = strings.ToLower(rest)
		rest = ""
	case hashPattern.MatchString(rest):
		filters.TxHash = strings.ToLower(rest)
		rest = ""
	}

	return filters, rest, nil
}

func parseDay(value string) (time.Time, error) {
	day, err := time.ParseInLocation(dateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", ErrInvalidQuery, value)
	}
	return day, nil
}

// SinceUnix is the inclusive lower bound in unix seconds.
func (f Filters) SinceUnix() *int64 {
	if f.Since == nil {
		return nil
	}
	ts := f.Since.Unix()
	return &ts
}

// UntilUnix is the inclusive upper bound in unix seconds, the last second of the day.
func (f Filters) UntilUnix() *int64 {
	if f.Until == nil {
		return nil
	}
	ts := f.Until.Add(24*time.Hour - time.Second).Unix()
	return &ts
}

func IsAddress(value string) bool {
	return addressPattern.MatchString(value)
}

func IsTxHash(value string) bool {
	return hashPattern.MatchString(value)
}

// MatchTag reports whether any tag contains tag, ignoring case.
func MatchTag(tags []string, tag string) bool {
	tag = strings.ToLower(tag)
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), tag) {
			return true
		}
	}
	return false
}

// MatchText reports whether text occurs in the memo or in any tag, ignoring case.
func MatchText(memo string, tags []string, text string) bool {
	if strings.Contains(strings.ToLower(memo), strings.ToLower(text)) {
		return true
	}
	return MatchTag(tags, text)
}
