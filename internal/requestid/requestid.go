package requestid

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

// Header é o cabeçalho propagado entre cliente, API e logs.
const Header = "X-Request-ID"

func New() string {
	return uuid.NewString()
}

func With(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func From(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
