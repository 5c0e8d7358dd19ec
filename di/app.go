package di

import (
	"context"
	"hostel/infras/kafka"
	"hostel/infras/otel"
	"hostel/infras/postgres"
	guestService "hostel/internal/domains/guest/service"
	"hostel/transport/http"

	"github.com/rs/zerolog/log"
)

// App is the assembled service plus the collaborators that need lifecycle handling.
type App struct {
	HTTP   *http.HTTP
	Guests guestService.Guest
	DB     *postgres.Connection
	Kafka  kafka.Client
	Otel   otel.Otel
}

// Close releases the broker, database and tracer in reverse start order.
func (a *App) Close(ctx context.Context) {
	if err := a.Kafka.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close kafka client")
	}

	if err := a.DB.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close database connections")
	}

	if err := a.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("failed to shut down tracer provider")
	}
}
