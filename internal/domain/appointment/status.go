package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

type Action string

const (
	ActionConfirm  Action = "confirm"
	ActionComplete Action = "complete"
	ActionCancel   Action = "cancel"
)

type transitionKey struct {
	from   Status
	action Action
}

// transitions é a única fonte das mudanças de estado permitidas.
var transitions = map[transitionKey]Status{
	{StatusPending, ActionConfirm}:    StatusConfirmed,
	{StatusPending, ActionCancel}:     StatusCancelled,
	{StatusConfirmed, ActionComplete}: StatusCompleted,
	{StatusConfirmed, ActionCancel}:   StatusCancelled,
}

// ===============================
// Validations
// ===============================

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return st, nil
	}
	return "", ErrInvalidStatus
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ActionFor traduz o status pedido pelo cliente na ação correspondente.
// Não existe ação que leve de volta a pending.
func ActionFor(target Status) (Action, error) {
	switch target {
	case StatusConfirmed:
		return ActionConfirm, nil
	case StatusCompleted:
		return ActionComplete, nil
	case StatusCancelled:
		return ActionCancel, nil
	}
	return "", ErrInvalidTransition
}

// Accepts indica as ações em que um funcionário assume o atendimento.
func (a Action) Accepts() bool {
	return a == ActionConfirm || a == ActionComplete
}

func Next(current Status, action Action) (Status, error) {
	next, ok := transitions[transitionKey{current, action}]
	if !ok {
		return "", ErrInvalidTransition
	}
	return next, nil
}

// InitialStatus define o status de criação. Fluxos públicos sempre
// começam em pending; a equipe pode criar em qualquer status não terminal.
func InitialStatus(staff bool, requested Status) (Status, error) {
	if !staff || requested == "" {
		return StatusPending, nil
	}
	if requested.IsTerminal() {
		return "", ErrInvalidTransition
	}
	if _, err := ParseStatus(string(requested)); err != nil {
		return "", err
	}
	return requested, nil
}
