package timezone

import "time"

const DefaultTimezone = "America/Managua"

// Clock abstrai o "agora" para que regras de data passada sejam testáveis.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock sempre devolve o mesmo instante.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time { return c.At }

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// NowIn devolve o relógio de parede do salão.
func NowIn(c Clock, tz string) time.Time {
	return c.Now().In(Location(tz))
}

// LocalDateTime interpreta data/hora ingênuas do salão como relógio de parede
// no fuso do salão.
func LocalDateTime(date time.Time, minuteOfDay int, tz string) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		minuteOfDay/60, minuteOfDay%60, 0, 0,
		Location(tz),
	)
}
