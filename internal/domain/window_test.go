package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustWindow(t *testing.T, start, end string) Window {
	t.Helper()

	s, err := time.Parse(time.RFC3339, start)
	require.NoError(t, err)
	e, err := time.Parse(time.RFC3339, end)
	require.NoError(t, err)

	w, err := NewWindow(s, e)
	require.NoError(t, err)
	return w
}

func TestNewWindow_InvalidRange(t *testing.T) {
	start := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)

	_, err := NewWindow(start, end)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestNewWindow_ZeroLengthAllowed(t *testing.T) {
	at := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	w, err := NewWindow(at, at)
	require.NoError(t, err)
	assert.True(t, w.IsEmpty())
	assert.Equal(t, time.Duration(0), w.Duration())
}

func TestWindow_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Window
		b    Window
		want bool
	}{
		{
			name: "partial overlap",
			a:    mustWindow(t, "2025-06-10T10:00:00Z", "2025-06-10T12:00:00Z"),
			b:    mustWindow(t, "2025-06-10T11:00:00Z", "2025-06-10T13:00:00Z"),
			want: true,
		},
		{
			name: "containment",
			a:    mustWindow(t, "2025-06-10T10:00:00Z", "2025-06-10T14:00:00Z"),
			b:    mustWindow(t, "2025-06-10T11:00:00Z", "2025-06-10T12:00:00Z"),
			want: true,
		},
		{
			name: "abutting windows do not overlap",
			a:    mustWindow(t, "2025-06-10T10:00:00Z", "2025-06-10T12:00:00Z"),
			b:    mustWindow(t, "2025-06-10T12:00:00Z", "2025-06-10T14:00:00Z"),
			want: false,
		},
		{
			name: "disjoint",
			a:    mustWindow(t, "2025-06-10T10:00:00Z", "2025-06-10T11:00:00Z"),
			b:    mustWindow(t, "2025-06-10T12:00:00Z", "2025-06-10T13:00:00Z"),
			want: false,
		},
		{
			name: "identical",
			a:    mustWindow(t, "2025-06-10T10:00:00Z", "2025-06-10T12:00:00Z"),
			b:    mustWindow(t, "2025-06-10T10:00:00Z", "2025-06-10T12:00:00Z"),
			want: true,
		},
		{
			name: "zero-length window overlaps nothing",
			a:    mustWindow(t, "2025-06-10T11:00:00Z", "2025-06-10T11:00:00Z"),
			b:    mustWindow(t, "2025-06-10T10:00:00Z", "2025-06-10T12:00:00Z"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Симметрия: overlaps(a, b) == overlaps(b, a)
			assert.Equal(t, tt.a.Overlaps(tt.b), tt.b.Overlaps(tt.a))
		})
	}
}

func TestWindow_Clamp(t *testing.T) {
	bounds := mustWindow(t, "2025-06-10T10:00:00Z", "2025-06-10T14:00:00Z")

	t.Run("window inside bounds unchanged", func(t *testing.T) {
		w := mustWindow(t, "2025-06-10T11:00:00Z", "2025-06-10T12:00:00Z")
		assert.Equal(t, w, w.Clamp(bounds))
	})

	t.Run("window wider than bounds truncated on both sides", func(t *testing.T) {
		w := mustWindow(t, "2025-06-10T08:00:00Z", "2025-06-10T16:00:00Z")
		assert.Equal(t, bounds, w.Clamp(bounds))
	})

	t.Run("disjoint window clamps to degenerate", func(t *testing.T) {
		w := mustWindow(t, "2025-06-10T16:00:00Z", "2025-06-10T18:00:00Z")
		clamped := w.Clamp(bounds)
		assert.True(t, clamped.IsEmpty())
		assert.Equal(t, clamped.Start, clamped.End)
		assert.False(t, clamped.End.Before(clamped.Start))
	})
}

func TestWindow_Contains(t *testing.T) {
	w := mustWindow(t, "2025-06-10T10:00:00Z", "2025-06-10T12:00:00Z")

	assert.True(t, w.Contains(w.Start))
	assert.True(t, w.Contains(w.Start.Add(time.Hour)))
	// Полуоткрытый интервал: конец не входит
	assert.False(t, w.Contains(w.End))
	assert.False(t, w.Contains(w.Start.Add(-time.Second)))
}
