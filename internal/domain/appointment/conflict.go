package appointment

import "github.com/Wisofer/GlowNic-sub000/internal/models"

// CheckBookable é o portão de escrita. Na ordem: expediente contém o
// intervalo, nenhum bloqueio sobrepõe, nenhum outro agendamento não
// cancelado sobrepõe. excludeID=0 não exclui nada.
func CheckBookable(
	wh *models.WorkingHours,
	blocks []models.BlockedTime,
	appointments []models.Appointment,
	startMin int,
	durationMin int,
	excludeID uint,
) error {

	candidate := NewInterval(startMin, normalizeDuration(durationMin))

	window, ok := OpenWindow(wh)
	if !ok || !window.Contains(candidate) {
		return ErrSlotUnavailable
	}

	blocked, booked := busyIntervals(blocks, appointments, excludeID)

	if overlapsAny(candidate, blocked) {
		return ErrSlotUnavailable
	}
	if overlapsAny(candidate, booked) {
		return ErrSlotUnavailable
	}

	return nil
}
