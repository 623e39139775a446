// Copyright (c) 2025 BVK Chaitanya

package timerange

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"
)

// Func computes a range relative to a reference time.
type Func func(at time.Time) (*Range, error)

var funcMap = map[string]Func{
	"today":                Today,
	"yesterday":            Yesterday,
	"this-week":            ThisWeek,
	"previous-week":        PreviousWeek,
	"this-month":           ThisMonth,
	"month-to-date":        MonthToDate,
	"previous-month":       PreviousMonth,
	"this-month-last-year": ThisMonthLastYear,
	"quarter-to-date":      QuarterToDate,
	"previous-quarter":     PreviousQuarter,
	"this-year":            ThisYear,
	"year-to-date":         YearToDate,
	"previous-year":        PreviousYear,
	"since":                Since,
}

// names holds the registered names in a stable, human friendly order.
var names = []string{
	"today",
	"yesterday",
	"last-7-days",
	"last-30-days",
	"this-week",
	"previous-week",
	"this-month",
	"month-to-date",
	"previous-month",
	"this-month-last-year",
	"quarter-to-date",
	"previous-quarter",
	"this-year",
	"year-to-date",
	"previous-year",
	"since",
}

var lastDaysRe = regexp.MustCompile(`^last-([0-9]+)-days$`)

// Names returns the well-known period names accepted by Lookup. Lookup also
// accepts any "last-N-days" name for a positive N.
func Names() []string {
	return append([]string(nil), names...)
}

// Lookup returns the range function for a period name.
func Lookup(name string) (Func, bool) {
	if f, ok := funcMap[name]; ok {
		return f, true
	}
	m := lastDaysRe.FindStringSubmatch(name)
	if m == nil {
		return nil, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return nil, false
	}
	return func(at time.Time) (*Range, error) {
		return LastNDays(at, n)
	}, true
}

// Named computes the range for a period name relative to the reference time.
func Named(name string, at time.Time) (*Range, error) {
	f, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown period name %q: %w", name, os.ErrNotExist)
	}
	return f(at)
}
