package appointment

import "github.com/Wisofer/GlowNic-sub000/internal/models"

// OpenWindow devolve o expediente do dia. Linhas inativas, ausentes,
// malformadas ou com início >= fim contam como dia fechado.
func OpenWindow(wh *models.WorkingHours) (Interval, bool) {
	if wh == nil || !wh.Active || wh.StartTime == "" || wh.EndTime == "" {
		return Interval{}, false
	}

	start, err := ParseClock(wh.StartTime)
	if err != nil {
		return Interval{}, false
	}
	end, err := ParseClock(wh.EndTime)
	if err != nil {
		return Interval{}, false
	}

	window := Interval{Start: start, End: end}
	if window.Empty() {
		return Interval{}, false
	}
	return window, true
}

// ValidateWindow é a checagem de escrita para expedientes e bloqueios.
func ValidateWindow(start, end string) (Interval, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Interval{}, err
	}
	window := Interval{Start: s, End: e}
	if window.Empty() {
		return Interval{}, ErrInvalidWorkingHours
	}
	return window, nil
}

// busyIntervals reúne bloqueios e agendamentos não cancelados do dia.
// Registros com horário ilegível são ignorados.
func busyIntervals(
	blocks []models.BlockedTime,
	appointments []models.Appointment,
	excludeID uint,
) (blocked []Interval, booked []Interval) {

	for _, b := range blocks {
		start, err := ParseClock(b.StartTime)
		if err != nil {
			continue
		}
		end, err := ParseClock(b.EndTime)
		if err != nil {
			continue
		}
		blocked = append(blocked, Interval{Start: start, End: end})
	}

	for i := range appointments {
		ap := &appointments[i]
		if Status(ap.Status) == StatusCancelled {
			continue
		}
		if excludeID != 0 && ap.ID == excludeID {
			continue
		}
		start, err := ParseClock(ap.Time)
		if err != nil {
			continue
		}
		booked = append(booked, NewInterval(start, DurationOf(ap)))
	}

	return blocked, booked
}

func overlapsAny(candidate Interval, busy []Interval) bool {
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return true
		}
	}
	return false
}
