package appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	domain "github.com/Wisofer/GlowNic-sub000/internal/domain/appointment"
	"github.com/Wisofer/GlowNic-sub000/internal/models"
)

const IncomeCategory = "Serviços"

// RecordCompletionIncome garante uma receita por serviço efetivo do
// agendamento. Sem serviços (nem legado) nada é lançado. Devolve quantas
// linhas novas entraram no livro.
func RecordCompletionIncome(
	ctx context.Context,
	ledger domain.FinanceLedger,
	ap *models.Appointment,
	now time.Time,
) (int, error) {

	recorded := 0
	for _, svc := range domain.ServicesOf(ap) {
		inserted, err := ledger.RecordIncomeIfAbsent(ctx, domain.IncomeEntry{
			TenantID:      ap.SalonID,
			EmployeeID:    ap.EmployeeID,
			AppointmentID: ap.ID,
			ServiceID:     svc.ID,
			Amount:        svc.Price,
			Category:      IncomeCategory,
			Date:          now,
			Description:   incomeDescription(svc.Name, ap.ClientName),
		})
		if err != nil {
			return recorded, fmt.Errorf("record income for service %d: %w", svc.ID, err)
		}
		if inserted {
			recorded++
		}
	}
	return recorded, nil
}

func incomeDescription(service, client string) string {
	client = strings.TrimSpace(client)
	if client == "" {
		return service
	}
	return service + " - " + client
}
