package workflow

import (
	"errors"
	"time"
)

const (
	asDefaultHour = 10
	asFirstHour   = 9
	asLastHour    = 21
	asMinuteStep  = 10
	asLastWeek    = 7
)

var (
	ErrASHopeInPast    = errors.New("AS hope datetime is in the past")
	ErrASHopeOutOfSlot = errors.New("AS hope time must be between 09:00 and 21:50 in 10 minute steps")
)

// DefaultASHopeAt is 10:00 on the last day of this month, moving to the
// last day of next month once inside the final week.
func DefaultASHopeAt(now time.Time) time.Time {
	end := endOfMonth(now)
	if end.Day()-now.Day() < asLastWeek {
		end = endOfMonth(time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, now.Location()))
	}
	return time.Date(end.Year(), end.Month(), end.Day(), asDefaultHour, 0, 0, 0, now.Location())
}

func ValidateASHopeAt(hope, now time.Time) error {
	if hope.Hour() < asFirstHour || hope.Hour() > asLastHour || hope.Minute()%asMinuteStep != 0 {
		return ErrASHopeOutOfSlot
	}
	if hope.Before(now) {
		return ErrASHopeInPast
	}
	return nil
}

func endOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location())
}
