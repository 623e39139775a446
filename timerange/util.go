// Copyright (c) 2025 BVK Chaitanya

package timerange

import (
	"fmt"
	"os"
	"time"

	"github.com/bvk/periods/quarter"
)

const lastMilli = int(time.Second - time.Millisecond)

func beginOfDay(y int, m time.Month, d int, zone *time.Location) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, zone)
}

func endOfDay(y int, m time.Month, d int, zone *time.Location) time.Time {
	return time.Date(y, m, d, 23, 59, 59, lastMilli, zone)
}

func checkRef(at time.Time) error {
	if at.IsZero() {
		return fmt.Errorf("reference time is not set: %w", os.ErrInvalid)
	}
	return nil
}

func daysIn(year int) int {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay()
}

// dayBefore returns the calendar day before the reference time by moving the
// day-of-year back by one without carrying into the year. When that lands on
// day 365, the year is moved back as well. This handles January 1st after a
// non-leap year, but January 1st of a leap year stays in the same year and
// December 31st of a leap year moves into the previous year.
func dayBefore(at time.Time) (int, time.Month, int) {
	year, yday := at.Year(), at.YearDay()-1
	if yday == 0 {
		yday = daysIn(year)
	}
	v := time.Date(year, time.January, yday, 0, 0, 0, 0, time.UTC)
	if yday == 365 {
		year--
	}
	return year, v.Month(), v.Day()
}

// Today returns the range for the calendar day of the reference time.
func Today(at time.Time) (*Range, error) {
	if err := checkRef(at); err != nil {
		return nil, err
	}
	y, m, d := at.Date()
	zone := at.Location()
	return &Range{
		Begin: beginOfDay(y, m, d, zone),
		End:   endOfDay(y, m, d, zone),
	}, nil
}

// Yesterday returns the range for the calendar day before the reference time.
func Yesterday(at time.Time) (*Range, error) {
	if err := checkRef(at); err != nil {
		return nil, err
	}
	y, m, d := dayBefore(at)
	zone := at.Location()
	return &Range{
		Begin: beginOfDay(y, m, d, zone),
		End:   endOfDay(y, m, d, zone),
	}, nil
}

// LastNDays returns the range for n days ending on the day before the
// reference time. The reference day itself is not included.
func LastNDays(at time.Time, n int) (*Range, error) {
	if err := checkRef(at); err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, fmt.Errorf("number of days %d must be positive: %w", n, os.ErrInvalid)
	}
	y, m, d := dayBefore(at)
	zone := at.Location()
	return &Range{
		Begin: beginOfDay(y, m, d-(n-1), zone),
		End:   endOfDay(y, m, d, zone),
	}, nil
}

// MonthToDate returns the range from the first day of the month up to the
// exact reference time.
func MonthToDate(at time.Time) (*Range, error) {
	if err := checkRef(at); err != nil {
		return nil, err
	}
	return &Range{
		Begin: beginOfDay(at.Year(), at.Month(), 1, at.Location()),
		End:   at,
	}, nil
}

// YearToDate returns the range from January 1st up to the exact reference
// time.
func YearToDate(at time.Time) (*Range, error) {
	if err := checkRef(at); err != nil {
		return nil, err
	}
	return &Range{
		Begin: beginOfDay(at.Year(), time.January, 1, at.Location()),
		End:   at,
	}, nil
}

// QuarterToDate returns the range from the first day of the quarter up to the
// exact reference time.
func QuarterToDate(at time.Time) (*Range, error) {
	if err := checkRef(at); err != nil {
		return nil, err
	}
	q, err := quarter.Of(at.Month())
	if err != nil {
		return nil, err
	}
	return &Range{
		Begin: beginOfDay(at.Year(), q.StartMonth(), 1, at.Location()),
		End:   at,
	}, nil
}

// Quarter returns the range for the given quarter of a year. Local time zone
// is used when zone is nil.
func Quarter(year int, q quarter.Quarter, zone *time.Location) (*Range, error) {
	if !q.Valid() {
		return nil, fmt.Errorf("invalid quarter %d: %w", int(q), os.ErrInvalid)
	}
	if zone == nil {
		zone = time.Local
	}
	// Day zero of the next month is the last day of the quarter's end month.
	return &Range{
		Begin: beginOfDay(year, q.StartMonth(), 1, zone),
		End:   endOfDay(year, q.EndMonth()+1, 0, zone),
	}, nil
}

// PreviousQuarter returns the full quarter before the one containing the
// reference time.
func PreviousQuarter(at time.Time) (*Range, error) {
	if err := checkRef(at); err != nil {
		return nil, err
	}
	q, err := quarter.Of(at.Month())
	if err != nil {
		return nil, err
	}
	year, prev := at.Year(), q.Previous()
	if prev == quarter.Fourth {
		year--
	}
	return Quarter(year, prev, at.Location())
}

// PreviousWeek returns the full Sunday to Saturday week before the week
// containing the reference time.
func PreviousWeek(at time.Time) (*Range, error) {
	if err := checkRef(at); err != nil {
		return nil, err
	}
	y, m, d := at.Date()
	sunday := d - int(at.Weekday()) - 7
	zone := at.Location()
	return &Range{
		Begin: beginOfDay(y, m, sunday, zone),
		End:   endOfDay(y, m, sunday+6, zone),
	}, nil
}

// PreviousMonth returns the full month before the month of the reference
// time. January goes back to December of the previous year.
func PreviousMonth(at time.Time) (*Range, error) {
	if err := checkRef(at); err != nil {
		return nil, err
	}
	y, m := at.Year(), at.Month()-1
	zone := at.Location()
	return &Range{
		Begin: beginOfDay(y, m, 1, zone),
		End:   endOfDay(y, m+1, 0, zone),
	}, nil
}

// PreviousYear returns the full year before the year of the reference time.
func PreviousYear(at time.Time) (*Range, error) {
	if err := checkRef(at); err != nil {
		return nil, err
	}
	y := at.Year() - 1
	zone := at.Location()
	return &Range{
		Begin: beginOfDay(y, time.January, 1, zone),
		End:   endOfDay(y, time.December, 31, zone),
	}, nil
}

// ThisMonthLastYear returns the full month of the reference time, but in the
// previous year.
func ThisMonthLastYear(at time.Time) (*Range, error) {
	if err := checkRef(at); err != nil {
		return nil, err
	}
	y, m := at.Year()-1, at.Month()
	zone := at.Location()
	return &Range{
		Begin: beginOfDay(y, m, 1, zone),
		End:   endOfDay(y, m+1, 0, zone),
	}, nil
}

// ThisWeek returns the full Sunday to Saturday week containing the reference
// time.
func ThisWeek(at time.Time) (*Range, error) {
	if err := checkRef(at); err != nil {
		return nil, err
	}
	y, m, d := at.Date()
	sunday := d - int(at.Weekday())
	zone := at.Location()
	return &Range{
		Begin: beginOfDay(y, m, sunday, zone),
		End:   endOfDay(y, m, sunday+6, zone),
	}, nil
}

// ThisMonth returns the full month containing the reference time.
func ThisMonth(at time.Time) (*Range, error) {
	if err := checkRef(at); err != nil {
		return nil, err
	}
	y, m := at.Year(), at.Month()
	zone := at.Location()
	return &Range{
		Begin: beginOfDay(y, m, 1, zone),
		End:   endOfDay(y, m+1, 0, zone),
	}, nil
}

// ThisYear returns the full year containing the reference time.
func ThisYear(at time.Time) (*Range, error) {
	if err := checkRef(at); err != nil {
		return nil, err
	}
	y := at.Year()
	zone := at.Location()
	return &Range{
		Begin: beginOfDay(y, time.January, 1, zone),
		End:   endOfDay(y, time.December, 31, zone),
	}, nil
}

// Since returns an open ended range starting at the reference time. The end
// is the Unreachable instant.
func Since(at time.Time) (*Range, error) {
	if err := checkRef(at); err != nil {
		return nil, err
	}
	return &Range{Begin: at, End: Unreachable()}, nil
}
