package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceRange_CoversWindowExactly(t *testing.T) {
	tests := []struct {
		name   string
		window Window
		period Period
		count  int
	}{
		{
			name:   "three whole days",
			window: mustWindow(t, "2025-06-10T00:00:00Z", "2025-06-13T00:00:00Z"),
			period: PeriodDay,
			count:  3,
		},
		{
			name:   "two and a half days, last slice truncated",
			window: mustWindow(t, "2025-06-10T00:00:00Z", "2025-06-12T12:00:00Z"),
			period: PeriodDay,
			count:  3,
		},
		{
			name:   "ninety minutes hourly",
			window: mustWindow(t, "2025-06-10T10:00:00Z", "2025-06-10T11:30:00Z"),
			period: PeriodHour,
			count:  2,
		},
		{
			name:   "sub-period window is a single slice",
			window: mustWindow(t, "2025-06-10T10:00:00Z", "2025-06-10T10:20:00Z"),
			period: PeriodHour,
			count:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slices, err := SliceRange(tt.window, tt.period)
			require.NoError(t, err)
			require.Len(t, slices, tt.count)

			// Конкатенация кусков в точности покрывает окно: без дыр и пересечений
			assert.True(t, slices[0].Start.Equal(tt.window.Start))
			assert.True(t, slices[len(slices)-1].End.Equal(tt.window.End))
			for i := 1; i < len(slices); i++ {
				assert.True(t, slices[i].Start.Equal(slices[i-1].End),
					"slice %d must start where slice %d ends", i, i-1)
			}

			// Каждый кусок не длиннее периода, кроме разве что последнего - он короче
			for i, s := range slices {
				assert.LessOrEqual(t, s.Duration(), tt.period.Duration(), "slice %d too long", i)
				require.NoError(t, s.Validate())
			}
		})
	}
}

func TestSliceRange_ZeroLengthWindow(t *testing.T) {
	at := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	w, err := NewWindow(at, at)
	require.NoError(t, err)

	// Окно нулевой длины дает ровно один кусок нулевой длины
	slices, err := SliceRange(w, PeriodDay)
	require.NoError(t, err)
	require.Len(t, slices, 1)
	assert.True(t, slices[0].IsEmpty())
	assert.True(t, slices[0].Start.Equal(at))
}

func TestSliceRange_InvalidRange(t *testing.T) {
	w := Window{
		Start: time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	}

	_, err := SliceRange(w, PeriodDay)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestPeriodCount(t *testing.T) {
	w := mustWindow(t, "2025-06-10T00:00:00Z", "2025-06-12T12:00:00Z")

	n, err := PeriodCount(w, PeriodDay)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	empty := mustWindow(t, "2025-06-10T00:00:00Z", "2025-06-10T00:00:00Z")
	n, err = PeriodCount(empty, PeriodDay)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("day")
	require.NoError(t, err)
	assert.Equal(t, PeriodDay, p)

	p, err = ParsePeriod("hour")
	require.NoError(t, err)
	assert.Equal(t, PeriodHour, p)

	_, err = ParsePeriod("fortnight")
	assert.ErrorIs(t, err, ErrUnknownPeriod)
}
