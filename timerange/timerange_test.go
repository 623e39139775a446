// Copyright (c) 2025 BVK Chaitanya

package timerange

import (
	"errors"
	"math"
	"os"
	"sync"
	"testing"
	"time"
)

func TestUnreachable(t *testing.T) {
	want := time.UnixMilli(math.MaxInt64)
	if v := Unreachable(); !v.Equal(want) {
		t.Fatalf("want %v, got %v", want, v)
	}
	if Unreachable() != unreachable() {
		t.Fatalf("want the same instant from every call")
	}

	var wg sync.WaitGroup
	values := make([]time.Time, 16)
	for i := range values {
		wg.Add(1)
		go func() {
			defer wg.Done()
			values[i] = Unreachable()
		}()
	}
	wg.Wait()
	for _, v := range values {
		if v != Unreachable() {
			t.Fatalf("want identical unreachable values, got %v", v)
		}
	}
}

func TestNew(t *testing.T) {
	a := time.Date(2006, 1, 1, 0, 0, 0, 0, time.UTC)
	b := a.Add(time.Hour)
	if _, err := New(a, b); err != nil {
		t.Fatal(err)
	}
	if _, err := New(a, a); err != nil {
		t.Fatal(err)
	}
	if _, err := New(b, a); !errors.Is(err, os.ErrInvalid) {
		t.Fatalf("want os.ErrInvalid, got %v", err)
	}
	if _, err := New(time.Time{}, a); err != nil {
		t.Fatal(err)
	}
	if _, err := New(b, time.Time{}); err != nil {
		t.Fatal(err)
	}
}

func TestEqualHash(t *testing.T) {
	begin := time.Date(2006, 10, 1, 0, 0, 0, 0, testZone)
	end := time.Date(2006, 10, 31, 23, 59, 59, lastMilli, testZone)

	sameA := &Range{Begin: begin, End: end}
	sameB := &Range{Begin: begin, End: end}
	sameC := &Range{Begin: begin.UTC(), End: end.UTC()}
	different := &Range{Begin: begin, End: end.Add(time.Millisecond)}

	if !sameA.Equal(sameA) || sameA.Hash() != sameA.Hash() {
		t.Fatalf("not reflexive")
	}
	if !sameA.Equal(sameB) || !sameB.Equal(sameA) || sameA.Hash() != sameB.Hash() {
		t.Fatalf("not symmetric")
	}
	if sameA.Equal(different) || different.Equal(sameA) || sameA.Hash() == different.Hash() {
		t.Fatalf("different ranges compare equal")
	}
	if !sameB.Equal(sameC) || !sameC.Equal(sameA) || sameC.Hash() != sameA.Hash() {
		t.Fatalf("not transitive")
	}
	if sameA.Equal(nil) {
		t.Fatalf("range must not be equal to nil")
	}

	open := &Range{Begin: begin}
	if open.Hash() == (&Range{End: begin}).Hash() {
		t.Fatalf("begin-only and end-only ranges must hash differently")
	}
	if open.Equal(sameA) {
		t.Fatalf("open range must not be equal to a bounded range")
	}
}

func TestIsWithin(t *testing.T) {
	begin := time.Date(2006, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2006, 3, 31, 23, 59, 59, lastMilli, time.UTC)
	r := &Range{Begin: begin, End: end}

	if !r.IsWithin(begin) || !r.IsWithin(end) {
		t.Fatalf("end points must be within the range")
	}
	if r.IsWithin(begin.Add(-time.Millisecond)) || r.IsWithin(end.Add(time.Millisecond)) {
		t.Fatalf("times outside the end points must not be within the range")
	}

	if v := (&Range{Begin: begin}); !v.IsWithin(Unreachable()) || v.IsWithin(begin.Add(-1)) {
		t.Fatalf("unbounded end range is incorrect")
	}
	if v := (&Range{End: end}); !v.IsWithin(time.Unix(0, 0)) || v.IsWithin(end.Add(1)) {
		t.Fatalf("unbounded begin range is incorrect")
	}
	if v := new(Range); !v.IsWithin(begin) {
		t.Fatalf("zero range must include everything")
	}
}

func TestDuration(t *testing.T) {
	begin := time.Date(2006, 1, 1, 0, 0, 0, 0, time.UTC)
	r := &Range{Begin: begin, End: begin.Add(36 * time.Hour)}
	if d, err := r.Duration(); err != nil || d != 36*time.Hour {
		t.Fatalf("want 36h, got %v (%v)", d, err)
	}

	reversed := &Range{Begin: r.End, End: r.Begin}
	if d, err := reversed.Duration(); err != nil || d != 36*time.Hour {
		t.Fatalf("want 36h, got %v (%v)", d, err)
	}

	for _, v := range []*Range{{Begin: begin}, {End: begin}, {}} {
		if _, err := v.Duration(); !errors.Is(err, os.ErrInvalid) {
			t.Fatalf("want os.ErrInvalid for unbounded range %s, got %v", v, err)
		}
	}
}

func TestUnion(t *testing.T) {
	q1, _ := Named("this-year", time.Date(2006, 2, 1, 0, 0, 0, 0, time.UTC))
	q2, _ := Named("previous-year", time.Date(2006, 2, 1, 0, 0, 0, 0, time.UTC))

	u := Union(q1, q2)
	if !u.Begin.Equal(q2.Begin) || !u.End.Equal(q1.End) {
		t.Fatalf("unexpected union %s", u)
	}

	if v := Union(new(Range), q1); !v.Equal(q1) || v == q1 {
		t.Fatalf("union with a zero range must be a copy of the other")
	}
	if v := Union(q1, &Range{Begin: q1.Begin}); !v.End.IsZero() {
		t.Fatalf("union with an unbounded range must be unbounded, got %s", v)
	}
}

func TestString(t *testing.T) {
	begin := time.Date(2006, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2006, 3, 31, 23, 59, 59, lastMilli, time.UTC)
	r := &Range{Begin: begin, End: end}
	if s := r.String(); s != "[2006-01-01T00:00:00.000Z, 2006-03-31T23:59:59.999Z]" {
		t.Fatalf("unexpected string %q", s)
	}
	if s := (&Range{Begin: begin}).String(); s != "[2006-01-01T00:00:00.000Z, +inf]" {
		t.Fatalf("unexpected string %q", s)
	}
	b, e := r.Bounds()
	if !b.Equal(begin) || !e.Equal(end) {
		t.Fatalf("unexpected bounds %v %v", b, e)
	}
	if c := r.Clone(); c == r || !c.Equal(r) {
		t.Fatalf("clone must be an equal copy")
	}
	if v := r.LogValue(); v.String() != r.String() {
		t.Fatalf("unexpected log value %q", v.String())
	}
}
