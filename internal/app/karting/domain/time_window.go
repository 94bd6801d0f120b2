package domain

import "time"

// TimeWindow is the reserved slot on the track.
type TimeWindow struct {
	Start   time.Time
	End     time.Time
	Minutes int64
}

// ResolveWindow derives the end of a reservation from its start and duration.
// Operating hours are not enforced.
func ResolveWindow(start *time.Time, minutes int64) (TimeWindow, error) {
	if start == nil || start.IsZero() {
		return TimeWindow{}, ErrMissingStartTime
	}
	return TimeWindow{
		Start:   *start,
		End:     start.Add(time.Duration(minutes) * time.Minute),
		Minutes: minutes,
	}, nil
}
