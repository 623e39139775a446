// Copyright (c) 2025 BVK Chaitanya

// Package quarter defines the four calendar quarters of a year.
package quarter

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Quarter is one of the four calendar quarters. The zero value is not a valid
// quarter.
type Quarter int

const (
	First Quarter = iota + 1
	Second
	Third
	Fourth
)

var months = [...][2]time.Month{
	First:  {time.January, time.March},
	Second: {time.April, time.June},
	Third:  {time.July, time.September},
	Fourth: {time.October, time.December},
}

// All returns the quarters in calendar order.
func All() []Quarter {
	return []Quarter{First, Second, Third, Fourth}
}

// Of returns the quarter containing the given month.
func Of(m time.Month) (Quarter, error) {
	if m < time.January || m > time.December {
		return 0, fmt.Errorf("month %d is out of range: %w", int(m), os.ErrInvalid)
	}
	return Quarter((int(m)-1)/3 + 1), nil
}

func (q Quarter) Valid() bool {
	return q >= First && q <= Fourth
}

// StartMonth returns the first month of the quarter. Returns zero for an
// invalid quarter.
func (q Quarter) StartMonth() time.Month {
	if !q.Valid() {
		return 0
	}
	return months[q][0]
}

// EndMonth returns the last month of the quarter. Returns zero for an invalid
// quarter.
func (q Quarter) EndMonth() time.Month {
	if !q.Valid() {
		return 0
	}
	return months[q][1]
}

// Previous returns the quarter before q. First wraps around to Fourth. Invalid
// quarters return the zero value.
func (q Quarter) Previous() Quarter {
	switch {
	case !q.Valid():
		return 0
	case q == First:
		return Fourth
	}
	return q - 1
}

// Next returns the quarter after q. Fourth wraps around to First. Invalid
// quarters return the zero value.
func (q Quarter) Next() Quarter {
	switch {
	case !q.Valid():
		return 0
	case q == Fourth:
		return First
	}
	return q + 1
}

func (q Quarter) String() string {
	if !q.Valid() {
		return fmt.Sprintf("Quarter(%d)", int(q))
	}
	return fmt.Sprintf("Q%d", int(q))
}

var names = map[string]Quarter{
	"1": First, "q1": First, "first": First,
	"2": Second, "q2": Second, "second": Second,
	"3": Third, "q3": Third, "third": Third,
	"4": Fourth, "q4": Fourth, "fourth": Fourth,
}

// Parse parses quarter names like "Q1", "2" or "third" (case-insensitive).
func Parse(s string) (Quarter, error) {
	q, ok := names[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("unknown quarter %q: %w", s, os.ErrInvalid)
	}
	return q, nil
}

func (q Quarter) MarshalText() ([]byte, error) {
	if !q.Valid() {
		return nil, fmt.Errorf("invalid quarter %d: %w", int(q), os.ErrInvalid)
	}
	return []byte(q.String()), nil
}

func (q *Quarter) UnmarshalText(data []byte) error {
	v, err := Parse(string(data))
	if err != nil {
		return err
	}
	*q = v
	return nil
}
