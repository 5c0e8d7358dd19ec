package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=../mocks/event_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hostel/config"
	"hostel/infras/kafka"
	"hostel/infras/otel"
	"hostel/internal/domains/guest/model"
	"hostel/shared"
	"hostel/shared/constant"
	"hostel/shared/timezone"
	"time"
)

type Type string

const (
	TypeCreated    Type = "guest.created"
	TypeCheckedIn  Type = "guest.checked_in"
	TypeCheckedOut Type = "guest.checked_out"
)

// Event is one guest lifecycle change as published on the guest events topic.
type Event struct {
	Type       Type      `json:"type"`
	GuestID    string    `json:"guest_id"`
	Name       string    `json:"name"`
	Room       string    `json:"room"`
	Bed        *string   `json:"bed,omitempty"`
	Status     string    `json:"status"`
	Staff      string    `json:"staff"`
	OccurredAt time.Time `json:"occurred_at"`
}

// New describes guest after a change of kind eventType made by the staff member in ctx.
func New(ctx context.Context, eventType Type, guest model.Guest) Event {
	return Event{
		Type:       eventType,
		GuestID:    guest.ID,
		Name:       guest.Name,
		Room:       guest.Room,
		Bed:        guest.Bed,
		Status:     string(guest.Status),
		Staff:      shared.StaffFromContext(ctx),
		OccurredAt: timezone.Now(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, events ...Event) error
}

type publisherImpl struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

func NewPublisher(cfg *config.Config, client kafka.Client, otl otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		topic:  cfg.Kafka.Topics.GuestEvents,
		otel:   otl,
	}
}

// Publish keys every message by guest id so one guest's events stay ordered.
func (p *publisherImpl) Publish(ctx context.Context, events ...Event) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".guest.Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if len(events) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(events))
	for _, evt := range events {
		messages = append(messages, kafka.Message{Key: evt.GuestID, Value: evt})
	}

	if err = p.client.SendMessages(ctx, p.topic, messages...); err != nil {
		return fmt.Errorf("failed to publish guest events: %w", err)
	}

	return nil
}
