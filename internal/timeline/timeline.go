// Package timeline maps calendar time onto the horizontal axis of the
// chart and back. All functions are pure.
//
// Bar geometry is deliberately coarse: widths are computed from whole
// calendar-day counts, so a booking shorter than a day still occupies
// one day column. PixelToDate is the finer-grained inverse and yields
// fractional-day timestamps; the two conventions match the behavior
// the dashboard has always had.
package timeline

import (
	"time"

	"github.com/fleetdeck/fleetdeck/internal/constants"
	"github.com/fleetdeck/fleetdeck/internal/models"
)

// HeaderLabel describes one day column of the chart header
type HeaderLabel struct {
	Date      time.Time
	Label     string
	IsWeekend bool
}

// Placement is the horizontal geometry of a booking bar. Left and
// Width are in the same unit as the total width passed to Layout
// (terminal cells in practice).
type Placement struct {
	Visible bool
	Left    float64
	Width   float64
}

// RangeForView derives the visible window from an anchor date and view
// mode: the anchor's day, its ISO week (Monday through Sunday), or its
// calendar month.
func RangeForView(current time.Time, mode constants.ViewMode) models.DateRange {
	day := startOfDay(current)
	switch mode {
	case constants.ViewDay:
		return models.DateRange{Start: day, End: endOfDay(day)}
	case constants.ViewWeek:
		monday := day.AddDate(0, 0, -mondayOffset(day.Weekday()))
		return models.DateRange{Start: monday, End: endOfDay(monday.AddDate(0, 0, 6))}
	case constants.ViewMonth:
		first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		last := first.AddDate(0, 1, -1)
		return models.DateRange{Start: first, End: endOfDay(last)}
	default:
		return models.DateRange{Start: day, End: endOfDay(day.AddDate(0, 0, 6))}
	}
}

// HeaderLabels returns one entry per calendar day of the range,
// inclusive. Month view labels carry the day number only.
func HeaderLabels(r models.DateRange, mode constants.ViewMode) []HeaderLabel {
	format := constants.HeaderDayFormat
	if mode == constants.ViewMonth {
		format = constants.HeaderMonthDayFormat
	}

	var labels []HeaderLabel
	for d := startOfDay(r.Start); !d.After(r.End); d = d.AddDate(0, 0, 1) {
		labels = append(labels, HeaderLabel{
			Date:      d,
			Label:     d.Format(format),
			IsWeekend: d.Weekday() == time.Saturday || d.Weekday() == time.Sunday,
		})
	}
	return labels
}

// DaysIn returns the inclusive calendar-day count of the range
func DaysIn(r models.DateRange) int {
	return calendarDaysBetween(r.Start, r.End) + 1
}

// DayWidth returns the width of one day column
func DayWidth(r models.DateRange, totalWidth float64) float64 {
	return totalWidth / float64(DaysIn(r))
}

// Layout positions a booking interval within the range. A booking that
// does not intersect the range at all is not visible; otherwise it is
// clipped so that Left >= 0 and Left+Width <= totalWidth.
func Layout(start, end time.Time, r models.DateRange, totalWidth float64) Placement {
	if end.Before(r.Start) || start.After(r.End) {
		return Placement{Visible: false}
	}

	dayWidth := DayWidth(r, totalWidth)

	startDays := calendarDaysBetween(r.Start, start)
	if startDays < 0 {
		startDays = 0
	}

	durationDays := calendarDaysBetween(start, end) + 1
	clippedStart := start
	if clippedStart.Before(r.Start) {
		clippedStart = r.Start
	}
	if remaining := calendarDaysBetween(clippedStart, r.End) + 1; remaining < durationDays {
		durationDays = remaining
	}

	return Placement{
		Visible: true,
		Left:    float64(startDays) * dayWidth,
		Width:   float64(durationDays) * dayWidth,
	}
}

// PixelToDate converts a horizontal offset back into a timestamp.
// Fractional day offsets are kept, so a drop two thirds into a column
// lands mid-day rather than snapping to midnight.
func PixelToDate(offset float64, r models.DateRange, totalWidth float64) time.Time {
	dayOffset := offset / DayWidth(r, totalWidth)
	return r.Start.Add(time.Duration(dayOffset * 24 * float64(time.Hour)))
}

// DurationHours returns the absolute span between two timestamps in hours
func DurationHours(start, end time.Time) float64 {
	h := end.Sub(start).Hours()
	if h < 0 {
		return -h
	}
	return h
}

// calendarDaysBetween counts midnight boundaries between a and b,
// negative when b is before a
func calendarDaysBetween(a, b time.Time) int {
	da := startOfDay(a)
	db := startOfDay(b)
	return int(db.Sub(da).Hours() / 24)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

func mondayOffset(wd time.Weekday) int {
	if wd == time.Sunday {
		return 6
	}
	return int(wd) - 1
}
