package appointment

import "github.com/Wisofer/GlowNic-sub000/internal/models"

type SelectionKind int

const (
	SelectionNone SelectionKind = iota
	SelectionLegacy
	SelectionMultiple
)

// Selection representa os serviços pedidos numa reserva: um id legado,
// uma lista, ou nenhum.
type Selection struct {
	kind SelectionKind
	ids  []uint
}

// NewSelection prefere a lista; o id legado só vale quando a lista
// está vazia.
func NewSelection(legacyID *uint, ids []uint) Selection {
	if normalized := dedupe(ids); len(normalized) > 0 {
		return Selection{kind: SelectionMultiple, ids: normalized}
	}
	if legacyID != nil && *legacyID != 0 {
		return Selection{kind: SelectionLegacy, ids: []uint{*legacyID}}
	}
	return Selection{kind: SelectionNone}
}

func (s Selection) Kind() SelectionKind { return s.kind }

// IDs devolve a forma canônica: sem zeros, sem repetidos, na ordem pedida.
func (s Selection) IDs() []uint {
	out := make([]uint, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s Selection) IsEmpty() bool { return len(s.ids) == 0 }

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// ServicesOf devolve os serviços efetivos de um agendamento já hidratado.
// As linhas da associação mandam; o serviço principal só conta em
// registros antigos sem associação.
func ServicesOf(ap *models.Appointment) []models.Service {
	if ap == nil {
		return nil
	}
	if len(ap.Services) > 0 {
		out := make([]models.Service, 0, len(ap.Services))
		for _, as := range ap.Services {
			svc := as.Service
			if svc.ID == 0 {
				svc.ID = as.ServiceID
			}
			out = append(out, svc)
		}
		return out
	}
	if ap.PrimaryService != nil {
		return []models.Service{*ap.PrimaryService}
	}
	return nil
}

// OrderServices reordena os serviços carregados conforme a seleção e
// reporta se algum id não foi encontrado.
func OrderServices(sel Selection, found []models.Service) ([]models.Service, error) {
	byID := make(map[uint]models.Service, len(found))
	for _, svc := range found {
		byID[svc.ID] = svc
	}

	out := make([]models.Service, 0, len(sel.ids))
	for _, id := range sel.ids {
		svc, ok := byID[id]
		if !ok {
			return nil, ErrServiceNotFound
		}
		out = append(out, svc)
	}
	return out, nil
}
