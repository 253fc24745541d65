package appointment

import "github.com/Wisofer/GlowNic-sub000/internal/models"

type AvailabilityInput struct {
	TenantID    uint
	Date        string
	ServiceIDs  []uint
	DurationMin int
}

type Slot struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
}

// BuildSlots gera a grade do dia: passo fixo de 30 minutos, cada candidato
// com a duração pedida, sempre inteiro dentro do expediente. Função pura;
// a grade é só indicativa, a validação real acontece na escrita.
func BuildSlots(
	wh *models.WorkingHours,
	blocks []models.BlockedTime,
	appointments []models.Appointment,
	durationMin int,
) []Slot {

	slots := []Slot{}

	window, ok := OpenWindow(wh)
	if !ok {
		return slots
	}

	duration := normalizeDuration(durationMin)
	blocked, booked := busyIntervals(blocks, appointments, 0)

	for start := window.Start; start+duration <= window.End; start += SlotStepMin {
		candidate := NewInterval(start, duration)

		slots = append(slots, Slot{
			Start:     FormatClock(candidate.Start),
			End:       FormatClock(candidate.End),
			Available: !overlapsAny(candidate, blocked) && !overlapsAny(candidate, booked),
		})
	}

	return slots
}
