package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Inventory=MockInventoryService

import (
	"context"
	"fmt"
	"hostel/infras/otel"
	"hostel/internal/domains/inventory/model"
	"hostel/internal/domains/inventory/repository"
	"hostel/shared/constant"
	"hostel/shared/failure"

	"github.com/rs/zerolog/log"
)

type Inventory interface {
	Rooms(ctx context.Context) []model.Room
	Room(ctx context.Context, id string) (model.Room, error)
	Snapshot() model.Inventory
	TotalBeds() int
}

type serviceImpl struct {
	inventory model.Inventory
	otel      otel.Otel
}

// New loads the inventory once. Rooms and beds are static for the life of the process.
func New(ctx context.Context, repo repository.Inventory, otl otel.Otel) (Inventory, error) {
	inv, err := repo.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load room inventory")

		return nil, fmt.Errorf("failed to load room inventory: %w", err)
	}

	log.Info().Int("rooms", len(inv.Rooms())).Int("beds", inv.TotalBeds()).Msg("Room inventory loaded")

	return &serviceImpl{
		inventory: inv,
		otel:      otl,
	}, nil
}

func (s *serviceImpl) Rooms(ctx context.Context) []model.Room {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.Rooms")
	defer scope.End()

	return s.inventory.Rooms()
}

func (s *serviceImpl) Room(ctx context.Context, id string) (model.Room, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.Room")
	defer scope.End()

	room, ok := s.inventory.Room(id)
	if !ok {
		return model.Room{}, failure.NotFound(fmt.Sprintf("room %q not found", id)) // nolint:wrapcheck
	}

	return room, nil
}

func (s *serviceImpl) Snapshot() model.Inventory {
	return s.inventory
}

func (s *serviceImpl) TotalBeds() int {
	return s.inventory.TotalBeds()
}
