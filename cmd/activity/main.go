package main

import (
	"context"
	"hostel/config"
	"hostel/infras/kafka"
	"hostel/internal/domains/guest/event"
	"hostel/shared/logger"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := kafka.New(cfg)
	defer func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close kafka client")
		}
	}()

	log.Info().Str("topic", cfg.Kafka.Topics.GuestEvents).Msg("Consuming guest activity")

	if err := client.Consume(ctx, "", cfg.Kafka.Topics.GuestEvents, event.LogActivity); err != nil {
		log.Fatal().Err(err).Msg("Failed to consume guest activity")
	}
}
