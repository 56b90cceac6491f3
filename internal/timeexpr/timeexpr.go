// Package timeexpr parses the time expressions members use to schedule a chain.
//
// Supported forms, tried in order (case-insensitive):
//
//	HH:MMtc at DD.MM.YYYY   absolute TC (UTC) time on a date
//	HH:MMtc                 next occurrence of a TC wall-clock time
//	<N>h | <N>m             relative to now
package timeexpr

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Error is a parse error kind
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidFormat Error = "invalid time format"
	ErrOutOfRange    Error = "time value out of range"
	ErrNotInFuture   Error = "time is not in the future"
)

// maxRelative bounds <N>h and <N>m expressions
const maxRelative = 365 * 24 * time.Hour

// Kind identifies which grammar rule matched
type Kind string

const (
	KindDate     Kind = "date"
	KindDaily    Kind = "daily"
	KindRelative Kind = "relative"
)

// Expression is a successfully parsed time expression
type Expression struct {
	// Kind is the rule that matched
	Kind Kind

	// Duration is the time from the parse instant until Target
	Duration time.Duration

	// Target is the absolute UTC instant the expression resolves to
	Target time.Time
}

// Seconds returns the duration in whole seconds
func (e *Expression) Seconds() int64 {
	return int64(e.Duration / time.Second)
}

type rule struct {
	kind    Kind
	pattern *regexp.Regexp
	parse   func(m []string, now time.Time) (*Expression, error)
}

var rules = []rule{
	{
		kind:    KindDate,
		pattern: regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*tc\s+at\s+(\d{1,2})\.(\d{1,2})\.(\d{4})$`),
		parse:   parseDate,
	},
	{
		kind:    KindDaily,
		pattern: regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*tc$`),
		parse:   parseDaily,
	},
	{
		kind:    KindRelative,
		pattern: regexp.MustCompile(`^(\d+)\s*([hm])$`),
		parse:   parseRelative,
	},
}

// Parse resolves input relative to now. The first rule whose pattern matches
// decides the outcome; a matching rule that fails validation is an error.
func Parse(input string, now time.Time) (*Expression, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	now = now.UTC()

	for _, r := range rules {
		m := r.pattern.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		expr, err := r.parse(m, now)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", input, err)
		}
		expr.Kind = r.kind
		return expr, nil
	}

	return nil, fmt.Errorf("%q: %w", input, ErrInvalidFormat)
}

func parseDate(m []string, now time.Time) (*Expression, error) {
	hour, minute, err := clockTime(m[1], m[2])
	if err != nil {
		return nil, err
	}
	day, _ := strconv.Atoi(m[3])
	month, _ := strconv.Atoi(m[4])
	year, _ := strconv.Atoi(m[5])

	target := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
	// time.Date normalizes 31.02 into March, so compare the fields back
	if target.Day() != day || int(target.Month()) != month || target.Year() != year {
		return nil, fmt.Errorf("%w: %02d.%02d.%04d is not a calendar date", ErrOutOfRange, day, month, year)
	}
	if !target.After(now) {
		return nil, ErrNotInFuture
	}

	return &Expression{Duration: target.Sub(now), Target: target}, nil
}

func parseDaily(m []string, now time.Time) (*Expression, error) {
	hour, minute, err := clockTime(m[1], m[2])
	if err != nil {
		return nil, err
	}

	target := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, time.UTC)
	if !target.After(now) {
		target = target.AddDate(0, 0, 1)
	}

	return &Expression{Duration: target.Sub(now), Target: target}, nil
}

func parseRelative(m []string, now time.Time) (*Expression, error) {
	amount, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil || amount <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrOutOfRange, m[1])
	}

	unit := time.Minute
	if m[2] == "h" {
		unit = time.Hour
	}
	if amount > int64(maxRelative/unit) {
		return nil, fmt.Errorf("%w: %s%s exceeds %s", ErrOutOfRange, m[1], m[2], maxRelative)
	}

	d := time.Duration(amount) * unit
	return &Expression{Duration: d, Target: now.Add(d)}, nil
}

func clockTime(h, mm string) (int, int, error) {
	hour, _ := strconv.Atoi(h)
	minute, _ := strconv.Atoi(mm)
	if hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("%w: hour %d", ErrOutOfRange, hour)
	}
	if minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: minute %d", ErrOutOfRange, minute)
	}
	return hour, minute, nil
}
