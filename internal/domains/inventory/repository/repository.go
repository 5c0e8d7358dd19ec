package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"hostel/config"
	"hostel/infras/otel"
	"hostel/internal/domains/inventory/model"
	"hostel/shared/constant"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type document struct {
	Rooms []model.Room `yaml:"rooms"`
}

type Inventory interface {
	Load(ctx context.Context) (model.Inventory, error)
}

type fileRepository struct {
	path string
	otel otel.Otel
}

func NewRepository(cfg *config.Config, otl otel.Otel) Inventory {
	return &fileRepository{
		path: cfg.App.Inventory.File,
		otel: otl,
	}
}

// Load reads the inventory file on every call.
func (repo *fileRepository) Load(ctx context.Context) (inv model.Inventory, err error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inventory.Load")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("file", repo.path)

	file, err := os.Open(repo.path)
	if err != nil {
		log.Error().Err(err).Str("file", repo.path).Msg("failed to open inventory file")

		return model.Inventory{}, fmt.Errorf("failed to open inventory file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse decodes a YAML inventory document. Unknown keys are rejected.
func Parse(reader io.Reader) (model.Inventory, error) {
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)

	var doc document
	if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return model.Inventory{}, fmt.Errorf("failed to decode inventory: %w", err)
	}

	inv, err := model.NewInventory(doc.Rooms)
	if err != nil {
		return model.Inventory{}, fmt.Errorf("invalid inventory: %w", err)
	}

	return inv, nil
}
