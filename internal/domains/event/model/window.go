package model

import (
	"errors"
	"time"
)

var (
	ErrWindowEndBeforeStart = errors.New("window end must be after its start")
	ErrWindowUnbounded      = errors.New("window needs an end time or a positive duration")
)

// Window is the half-open interval [Start, End) during which a room or a
// variation is occupied.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewWindow builds a window from a start instant and either an explicit end
// or a duration in hours. An explicit end wins when both are present.
func NewWindow(start time.Time, end *time.Time, durationHours *float64) (Window, error) {
	if end != nil {
		if !end.After(start) {
			return Window{}, ErrWindowEndBeforeStart
		}

		return Window{Start: start, End: *end}, nil
	}

	if durationHours == nil || *durationHours <= 0 {
		return Window{}, ErrWindowUnbounded
	}

	return Window{
		Start: start,
		End:   start.Add(time.Duration(float64(time.Hour) * *durationHours)),
	}, nil
}

// Overlaps reports whether two half-open windows intersect. Touching
// endpoints do not conflict.
func (w Window) Overlaps(o Window) bool {
	return o.Start.Before(w.End) && o.End.After(w.Start)
}

// Hours is the window length in hours.
func (w Window) Hours() float64 {
	return w.End.Sub(w.Start).Hours()
}
