// Copyright (c) 2024 BVK Chaitanya

// Package timerange computes calendar time ranges (today, previous week,
// quarter to date, etc.) relative to a reference time.
//
// All ranges are inclusive at both ends. Day boundaries are 00:00:00.000 and
// 23:59:59.999 in the location of the reference time. A zero time.Time in a
// Range means the range is unbounded in that direction.
package timerange

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"math"
	"os"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
)

type Range struct {
	Begin, End time.Time
}

// New returns a range from begin to end. Either side can be zero for an
// unbounded range, but begin must not be after end when both are set.
func New(begin, end time.Time) (*Range, error) {
	if !begin.IsZero() && !end.IsZero() && begin.After(end) {
		return nil, fmt.Errorf("range begin %v is after end %v: %w", begin, end, os.ErrInvalid)
	}
	return &Range{Begin: begin, End: end}, nil
}

var unreachable = sync.OnceValue(func() time.Time {
	return time.UnixMilli(math.MaxInt64).UTC()
})

// Unreachable returns an instant so far in the future that it is never
// reached. The same value is returned for every call.
func Unreachable() time.Time {
	return unreachable()
}

func (r *Range) Equal(v *Range) bool {
	if r == nil || v == nil {
		return r == v
	}
	return r.Begin.Equal(v.Begin) && r.End.Equal(v.End)
}

// Hash returns a hash value consistent with Equal, so that equal ranges with
// different time locations hash the same.
func (r *Range) Hash() uint64 {
	var buf [26]byte
	put := func(b []byte, t time.Time) {
		if t.IsZero() {
			return
		}
		b[0] = 1
		binary.BigEndian.PutUint64(b[1:], uint64(t.Unix()))
		binary.BigEndian.PutUint32(b[9:], uint32(t.Nanosecond()))
	}
	put(buf[:13], r.Begin)
	put(buf[13:], r.End)
	return xxhash.Sum64(buf[:])
}

func (r *Range) IsZero() bool {
	return r.Begin.IsZero() && r.End.IsZero()
}

// IsWithin returns true if v is inside the range. Both ends are inclusive.
func (r *Range) IsWithin(v time.Time) bool {
	if r.IsZero() {
		return true
	}
	if !r.Begin.IsZero() && v.Before(r.Begin) {
		return false
	}
	if !r.End.IsZero() && v.After(r.End) {
		return false
	}
	return true
}

// Duration returns the time between the range end points. It fails for
// unbounded ranges.
func (r *Range) Duration() (time.Duration, error) {
	if r.Begin.IsZero() || r.End.IsZero() {
		return 0, fmt.Errorf("unbounded range has no duration: %w", os.ErrInvalid)
	}
	d := r.End.Sub(r.Begin)
	if d < 0 {
		d = -d
	}
	return d, nil
}

// Bounds returns the begin and end times of the range as a pair.
func (r *Range) Bounds() (time.Time, time.Time) {
	return r.Begin, r.End
}

func (r *Range) Clone() *Range {
	return &Range{
		Begin: r.Begin,
		End:   r.End,
	}
}

func (r *Range) String() string {
	format := func(t time.Time, unbounded string) string {
		if t.IsZero() {
			return unbounded
		}
		return t.Format(Layout)
	}
	return fmt.Sprintf("[%s, %s]", format(r.Begin, "-inf"), format(r.End, "+inf"))
}

func (r *Range) LogValue() slog.Value {
	return slog.StringValue(r.String())
}

// Layout is the time format used to print range end points.
const Layout = "2006-01-02T15:04:05.000Z07:00"

func minTime(a, b time.Time) time.Time {
	if a.IsZero() || b.IsZero() {
		return time.Time{}
	}
	if a.Before(b) {
		return a
	}
	return b
}

func maxTime(a, b time.Time) time.Time {
	if a.IsZero() || b.IsZero() {
		return time.Time{}
	}
	if a.After(b) {
		return a
	}
	return b
}

// Union returns the smallest range that covers both input ranges.
func Union(a, b *Range) *Range {
	if a.IsZero() {
		return b.Clone()
	}
	if b.IsZero() {
		return a.Clone()
	}
	return &Range{
		Begin: minTime(a.Begin, b.Begin),
		End:   maxTime(a.End, b.End),
	}
}
