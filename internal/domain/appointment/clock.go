package appointment

import (
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// ParseClock converte "HH:MM" em minutos desde a meia-noite.
func ParseClock(s string) (int, error) {
	if len(s) != len(ClockLayout) {
		return 0, ErrInvalidDateOrTime
	}
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, ErrInvalidDateOrTime
	}
	return t.Hour()*60 + t.Minute(), nil
}

func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseDate lê uma data ingênua do salão (sem fuso).
func ParseDate(s string) (time.Time, error) {
	if len(s) != len(DateLayout) {
		return time.Time{}, ErrInvalidDateOrTime
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDateOrTime
	}
	return d, nil
}

// Interval é semiaberto: [Start, End) em minutos do dia.
type Interval struct {
	Start int
	End   int
}

func NewInterval(start, durationMin int) Interval {
	return Interval{Start: start, End: start + durationMin}
}

// Overlaps: extremos que só se tocam não contam.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && o.Start < i.End
}

func (i Interval) Contains(o Interval) bool {
	return i.Start <= o.Start && o.End <= i.End
}

func (i Interval) Empty() bool {
	return i.End <= i.Start
}
