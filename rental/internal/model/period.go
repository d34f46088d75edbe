package model

import "time"

// DefaultRentalDays is the rental duration assumed when no end date is given.
const DefaultRentalDays = 4

// Period is a rental interval. A nil End means "default duration": the
// effective end is Start plus DefaultRentalDays. Both booking and cancellation
// reconstruct the effective interval through this type, never ad hoc.
type Period struct {
	Start time.Time
	End   *time.Time
}

func (p Period) EffectiveEnd() time.Time {
	if p.End != nil {
		return *p.End
	}
	return p.Start.AddDate(0, 0, DefaultRentalDays)
}

// Days is the whole-day length of the period. With no end date it is
// DefaultRentalDays regardless of the effective interval.
func (p Period) Days() int64 {
	if p.End == nil {
		return DefaultRentalDays
	}
	return int64(p.End.Sub(p.Start) / (24 * time.Hour))
}

// Overlaps reports whether two half-open effective intervals intersect.
// Boundaries are strict: a period ending exactly when another starts does
// not overlap it.
func (p Period) Overlaps(other Period) bool {
	return p.Start.Before(other.EffectiveEnd()) && other.Start.Before(p.EffectiveEnd())
}
