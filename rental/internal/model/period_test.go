package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rentacar/rental-service/rental/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestPeriod_EffectiveEnd(t *testing.T) {
	t.Parallel()

	fixed := model.Period{Start: date(2024, 1, 10), End: datePtr(2024, 1, 14)}
	require.Equal(t, date(2024, 1, 14), fixed.EffectiveEnd())

	open := model.Period{Start: date(2024, 3, 1)}
	require.Equal(t, date(2024, 3, 5), open.EffectiveEnd())
}

func TestPeriod_Days(t *testing.T) {
	t.Parallel()

	require.EqualValues(t, 4, model.Period{Start: date(2024, 3, 1)}.Days())
	require.EqualValues(t, 3, model.Period{Start: date(2024, 1, 10), End: datePtr(2024, 1, 13)}.Days())
	require.EqualValues(t, 0, model.Period{Start: date(2024, 1, 10), End: datePtr(2024, 1, 10)}.Days())
	require.EqualValues(t, -1, model.Period{Start: date(2024, 1, 10), End: datePtr(2024, 1, 9)}.Days())
}

// Boundaries are strict: touching intervals never overlap. This pins the
// half-open interval policy for the whole engine.
func TestPeriod_Overlaps(t *testing.T) {
	t.Parallel()

	existing := model.Period{Start: date(2024, 1, 10), End: datePtr(2024, 1, 14)}

	var tests = []struct {
		name    string
		period  model.Period
		overlap bool
	}{
		{"starts at existing end", model.Period{Start: date(2024, 1, 14), End: datePtr(2024, 1, 16)}, false},
		{"starts inside", model.Period{Start: date(2024, 1, 13), End: datePtr(2024, 1, 16)}, true},
		{"ends at existing start", model.Period{Start: date(2024, 1, 7), End: datePtr(2024, 1, 10)}, false},
		{"ends inside", model.Period{Start: date(2024, 1, 8), End: datePtr(2024, 1, 11)}, true},
		{"contains existing", model.Period{Start: date(2024, 1, 1), End: datePtr(2024, 1, 31)}, true},
		{"contained by existing", model.Period{Start: date(2024, 1, 11), End: datePtr(2024, 1, 12)}, true},
		{"fully before", model.Period{Start: date(2024, 1, 1), End: datePtr(2024, 1, 5)}, false},
		{"fully after", model.Period{Start: date(2024, 2, 1), End: datePtr(2024, 2, 5)}, false},
		{"open-ended lands inside", model.Period{Start: date(2024, 1, 12)}, true},
		{"open-ended ends at existing start", model.Period{Start: date(2024, 1, 6)}, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.overlap, tt.period.Overlaps(existing))
			require.Equal(t, tt.overlap, existing.Overlaps(tt.period))
		})
	}
}
