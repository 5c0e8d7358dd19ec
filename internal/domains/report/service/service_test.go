package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"hostel/config"
	otelMocks "hostel/infras/otel/mocks"
	s3Mocks "hostel/infras/s3/mocks"
	guestMocks "hostel/internal/domains/guest/mocks"
	guestDto "hostel/internal/domains/guest/model/dto"
	"hostel/internal/domains/report/model/dto"
	"hostel/internal/domains/report/service"
	"hostel/shared/failure"
	"hostel/shared/timezone"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Report.Directory = "reports"

	return cfg
}

func TestExportOccupancy(t *testing.T) {
	ctrl := gomock.NewController(t)
	guests := guestMocks.NewMockGuestService(ctrl)
	storage := s3Mocks.NewMockS3(ctrl)

	stats := guestDto.StatsResponse{OccupancyRate: 29, TotalBeds: 7, GeneratedAt: "2023-07-04T10:00:00Z"}
	fileName := "occupancy-" + timezone.FormatDate(timezone.Today()) + ".json"

	guests.EXPECT().Stats(gomock.Any()).Return(stats, nil)
	storage.EXPECT().UploadBytes(gomock.Any(), "reports", fileName, "application/json", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, _ string, data []byte) (string, error) {
			var decoded guestDto.StatsResponse
			assert.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, 29, decoded.OccupancyRate)

			return "https://cdn.example.com/reports/" + fileName, nil
		})

	svc := service.New(guests, storage, newConfig(), otelMocks.NewOtel())

	res, err := svc.ExportOccupancy(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/reports/"+fileName, res.URL)
	assert.Equal(t, "reports/"+fileName, res.Key)
	assert.Equal(t, 29, res.OccupancyRate)
	assert.Equal(t, stats.GeneratedAt, res.GeneratedAt)
}

func TestExportOccupancy_Failures(t *testing.T) {
	t.Run("stats unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		guests := guestMocks.NewMockGuestService(ctrl)

		guests.EXPECT().Stats(gomock.Any()).Return(guestDto.StatsResponse{}, failure.BadGateway(errors.New("db down")))

		svc := service.New(guests, s3Mocks.NewMockS3(ctrl), newConfig(), otelMocks.NewOtel())

		_, err := svc.ExportOccupancy(context.Background())
		assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
	})

	t.Run("upload failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		guests := guestMocks.NewMockGuestService(ctrl)
		storage := s3Mocks.NewMockS3(ctrl)

		guests.EXPECT().Stats(gomock.Any()).Return(guestDto.StatsResponse{}, nil)
		storage.EXPECT().UploadBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("access denied"))

		svc := service.New(guests, storage, newConfig(), otelMocks.NewOtel())

		_, err := svc.ExportOccupancy(context.Background())
		assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
	})
}

func TestDeleteOccupancy(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		key   string
		setup func(storage *s3Mocks.MockS3)
		code  int
	}{
		{
			name: "deletes report",
			url:  "https://cdn.example.com/reports/occupancy-2023-07-04.json",
			key:  "reports/occupancy-2023-07-04.json",
			setup: func(storage *s3Mocks.MockS3) {
				storage.EXPECT().DeleteObject(gomock.Any(), "reports/occupancy-2023-07-04.json").Return(nil)
			},
		},
		{
			name:  "foreign url",
			url:   "https://elsewhere.example.com/x.json",
			key:   "",
			setup: func(*s3Mocks.MockS3) {},
			code:  http.StatusBadRequest,
		},
		{
			name:  "outside report directory",
			url:   "https://cdn.example.com/avatars/x.json",
			key:   "avatars/x.json",
			setup: func(*s3Mocks.MockS3) {},
			code:  http.StatusBadRequest,
		},
		{
			name: "storage failure",
			url:  "https://cdn.example.com/reports/occupancy-2023-07-04.json",
			key:  "reports/occupancy-2023-07-04.json",
			setup: func(storage *s3Mocks.MockS3) {
				storage.EXPECT().DeleteObject(gomock.Any(), gomock.Any()).Return(errors.New("timeout"))
			},
			code: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			storage := s3Mocks.NewMockS3(ctrl)

			storage.EXPECT().ObjectKeyFromURL(tt.url).Return(tt.key)
			tt.setup(storage)

			svc := service.New(guestMocks.NewMockGuestService(ctrl), storage, newConfig(), otelMocks.NewOtel())

			err := svc.DeleteOccupancy(context.Background(), dto.DeleteReportRequest{URL: tt.url})
			if tt.code == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, tt.code, failure.GetCode(err))
		})
	}
}
