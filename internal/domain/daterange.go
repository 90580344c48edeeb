package domain

import (
	"math"
	"time"
)

// DateLayout is the calendar-date format used everywhere: in the search
// form, the spreadsheet columns and the seed files.
const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Overlaps reports whether the half-open ranges [startA, endA) and
// [startB, endB) intersect. Touching endpoints do not count as an
// overlap, so one stay's checkout day can be the next stay's checkin.
func Overlaps(startA, endA, startB, endB time.Time) bool {
	return startA.Before(endB) && endA.After(startB)
}

// Nights returns the number of chargeable nights for a stay. A stay
// covering any fraction of a day rounds up to a full night.
func Nights(checkin, checkout time.Time) int {
	return int(math.Ceil(checkout.Sub(checkin).Hours() / 24))
}
