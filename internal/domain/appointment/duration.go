package appointment

import "github.com/Wisofer/GlowNic-sub000/internal/models"

const (
	DefaultDurationMin = 30
	SlotStepMin        = 30
)

// TotalDuration soma as durações; sem serviços (ou soma não positiva)
// vale o padrão de 30 minutos.
func TotalDuration(services []models.Service) int {
	total := 0
	for _, svc := range services {
		total += svc.DurationMin
	}
	if total <= 0 {
		return DefaultDurationMin
	}
	return total
}

func DurationOf(ap *models.Appointment) int {
	return TotalDuration(ServicesOf(ap))
}

func normalizeDuration(min int) int {
	if min <= 0 {
		return DefaultDurationMin
	}
	return min
}
