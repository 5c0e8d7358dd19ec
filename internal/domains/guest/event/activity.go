package event

import (
	"context"
	"fmt"
	"hostel/infras/kafka"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// LogActivity is a kafka.Handler that writes each guest event to the activity log.
func LogActivity(_ context.Context, msg kafkaGo.Message) error {
	evt, err := kafka.Decode[Event](msg)
	if err != nil {
		return fmt.Errorf("failed to decode guest event: %w", err)
	}

	if evt.Type == "" || evt.GuestID == "" {
		return fmt.Errorf("guest event at offset %d is missing type or guest id", msg.Offset)
	}

	entry := log.Info().
		Str("type", string(evt.Type)).
		Str("guest_id", evt.GuestID).
		Str("name", evt.Name).
		Str("room", evt.Room).
		Str("status", evt.Status).
		Str("staff", evt.Staff).
		Time("occurred_at", evt.OccurredAt)

	if evt.Bed != nil {
		entry = entry.Str("bed", *evt.Bed)
	}

	entry.Msg("Guest activity")

	return nil
}
