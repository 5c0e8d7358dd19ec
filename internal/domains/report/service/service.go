package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"hostel/config"
	"hostel/infras/otel"
	"hostel/infras/s3"
	guestService "hostel/internal/domains/guest/service"
	"hostel/internal/domains/report/model/dto"
	"hostel/shared/constant"
	"hostel/shared/failure"
	"hostel/shared/timezone"
	"path"

	"github.com/rs/zerolog/log"
)

const occupancyReportPrefix = "occupancy-"

type Report interface {
	ExportOccupancy(ctx context.Context) (dto.ExportReportResponse, error)
	DeleteOccupancy(ctx context.Context, req dto.DeleteReportRequest) error
}

type serviceImpl struct {
	guests  guestService.Guest
	storage s3.S3
	cfg     *config.Config
	otel    otel.Otel
}

func New(guests guestService.Guest, storage s3.S3, cfg *config.Config, otel otel.Otel) Report {
	return &serviceImpl{
		guests:  guests,
		storage: storage,
		cfg:     cfg,
		otel:    otel,
	}
}

// ExportOccupancy uploads today's stats as JSON. A second export on the same day replaces the first.
func (s *serviceImpl) ExportOccupancy(ctx context.Context) (res dto.ExportReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.ExportOccupancy")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	stats, err := s.guests.Stats(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to compute occupancy stats")

		return res, fmt.Errorf("failed to compute occupancy stats: %w", err)
	}

	body, err := json.Marshal(stats)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode occupancy report")

		return res, fmt.Errorf("failed to encode occupancy report: %w", err)
	}

	fileName := occupancyReportPrefix + timezone.FormatDate(timezone.Today()) + ".json"

	url, err := s.storage.UploadBytes(ctx, s.cfg.App.Report.Directory, fileName, constant.ContentTypeJSON, body)
	if err != nil {
		log.Error().Err(err).Str("file", fileName).Msg("failed to upload occupancy report")

		return res, failure.BadGateway(err) // nolint:wrapcheck
	}

	res = dto.ExportReportResponse{
		URL:           url,
		Key:           path.Join(s.cfg.App.Report.Directory, fileName),
		OccupancyRate: stats.OccupancyRate,
		GeneratedAt:   stats.GeneratedAt,
	}

	scope.SetAttribute("report.key", res.Key)

	return res, nil
}

func (s *serviceImpl) DeleteOccupancy(ctx context.Context, req dto.DeleteReportRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.DeleteOccupancy")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := s.storage.ObjectKeyFromURL(req.URL)
	if key == constant.Empty || path.Dir(key) != path.Clean(s.cfg.App.Report.Directory) {
		return failure.BadRequestFromString("url does not point to an occupancy report") // nolint:wrapcheck
	}

	if err = s.storage.DeleteObject(ctx, key); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete occupancy report")

		return failure.BadGateway(err) // nolint:wrapcheck
	}

	return nil
}
