package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	AppointmentCreated       = "appointment.created"
	AppointmentUpdated       = "appointment.updated"
	AppointmentStatusChanged = "appointment.status_changed"
	AppointmentDeleted       = "appointment.deleted"
)

type Event struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	SalonID       uint      `json:"salon_id"`
	AppointmentID uint      `json:"appointment_id"`
	Status        string    `json:"status,omitempty"`
	Date          string    `json:"date,omitempty"`
	Time          string    `json:"time,omitempty"`
	RequestID     string    `json:"request_id,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// Publisher é chamado depois do commit. Falhas de entrega não desfazem a
// operação; só são registradas.
type Publisher interface {
	Publish(ctx context.Context, ev Event)
}

type Nop struct{}

func (Nop) Publish(context.Context, Event) {}

type RedisPublisher struct {
	client  *redis.Client
	channel string
	log     *slog.Logger
}

func NewRedisPublisher(client *redis.Client, channel string, log *slog.Logger) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel, log: log}
}

func (p *RedisPublisher) Publish(ctx context.Context, ev Event) {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		p.log.Error("event marshal failed", "type", ev.Type, "error", err)
		return
	}

	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		p.log.Warn("event publish failed",
			"type", ev.Type,
			"appointment_id", ev.AppointmentID,
			"error", err,
		)
	}
}

// NewFromConfig devolve Nop quando o redis não está configurado.
func NewFromConfig(client *redis.Client, channel string, log *slog.Logger) Publisher {
	if client == nil {
		return Nop{}
	}
	return NewRedisPublisher(client, channel, log)
}
