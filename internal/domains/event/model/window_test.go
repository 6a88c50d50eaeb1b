package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"venue/internal/domains/event/model"
)

func TestNewWindow(t *testing.T) {
	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	end := start.Add(4 * time.Hour)
	before := start.Add(-time.Hour)
	duration := 2.5
	zero := 0.0

	tests := []struct {
		name     string
		end      *time.Time
		duration *float64
		wantEnd  time.Time
		wantErr  error
	}{
		{
			name:    "explicit end",
			end:     &end,
			wantEnd: end,
		},
		{
			name:     "explicit end wins over duration",
			end:      &end,
			duration: &duration,
			wantEnd:  end,
		},
		{
			name:     "derived from duration",
			duration: &duration,
			wantEnd:  start.Add(2*time.Hour + 30*time.Minute),
		},
		{
			name:    "end before start",
			end:     &before,
			wantErr: model.ErrWindowEndBeforeStart,
		},
		{
			name:    "end equal to start",
			end:     &start,
			wantErr: model.ErrWindowEndBeforeStart,
		},
		{
			name:    "no end and no duration",
			wantErr: model.ErrWindowUnbounded,
		},
		{
			name:     "zero duration",
			duration: &zero,
			wantErr:  model.ErrWindowUnbounded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window, err := model.NewWindow(start, tt.end, tt.duration)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, start, window.Start)
			assert.Equal(t, tt.wantEnd, window.End)
		})
	}
}

func TestWindow_Overlaps(t *testing.T) {
	at := func(hour int) time.Time {
		return time.Date(2026, 3, 14, hour, 0, 0, 0, time.UTC)
	}

	base := model.Window{Start: at(10), End: at(14)}

	tests := []struct {
		name  string
		other model.Window
		want  bool
	}{
		{
			name:  "fully inside",
			other: model.Window{Start: at(11), End: at(12)},
			want:  true,
		},
		{
			name:  "fully covering",
			other: model.Window{Start: at(8), End: at(16)},
			want:  true,
		},
		{
			name:  "overlapping the start",
			other: model.Window{Start: at(8), End: at(11)},
			want:  true,
		},
		{
			name:  "overlapping the end",
			other: model.Window{Start: at(13), End: at(16)},
			want:  true,
		},
		{
			name:  "touching the start",
			other: model.Window{Start: at(8), End: at(10)},
			want:  false,
		},
		{
			name:  "touching the end",
			other: model.Window{Start: at(14), End: at(16)},
			want:  false,
		},
		{
			name:  "entirely before",
			other: model.Window{Start: at(6), End: at(8)},
			want:  false,
		},
		{
			name:  "entirely after",
			other: model.Window{Start: at(16), End: at(18)},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestWindow_Hours(t *testing.T) {
	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	window := model.Window{Start: start, End: start.Add(90 * time.Minute)}

	assert.InDelta(t, 1.5, window.Hours(), 0.0001)
}
