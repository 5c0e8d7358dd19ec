package report_test

import (
	"hostel/infras/otel/mocks"
	reportMocks "hostel/internal/domains/report/mocks"
	"hostel/internal/domains/report/model/dto"
	"hostel/internal/handlers/report"
	"hostel/shared/failure"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*chi.Mux, *reportMocks.MockReport) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := reportMocks.NewMockReport(ctrl)

	handler := report.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func TestExportOccupancy(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().ExportOccupancy(gomock.Any()).Return(dto.ExportReportResponse{
		URL:           "https://cdn.example.com/reports/occupancy-2023-07-03.json",
		Key:           "reports/occupancy-2023-07-03.json",
		OccupancyRate: 29,
	}, nil)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/reports/occupancy", nil))

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"key":"reports/occupancy-2023-07-03.json"`)
}

func TestDeleteOccupancy(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		mock   func(svc *reportMocks.MockReport)
		status int
	}{
		{
			name: "deleted",
			body: `{"url":"https://cdn.example.com/reports/occupancy-2023-07-03.json"}`,
			mock: func(svc *reportMocks.MockReport) {
				svc.EXPECT().DeleteOccupancy(gomock.Any(), dto.DeleteReportRequest{URL: "https://cdn.example.com/reports/occupancy-2023-07-03.json"}).Return(nil)
			},
			status: http.StatusOK,
		},
		{
			name:   "missing url",
			body:   `{}`,
			mock:   func(*reportMocks.MockReport) {},
			status: http.StatusUnprocessableEntity,
		},
		{
			name: "foreign object",
			body: `{"url":"https://cdn.example.com/avatars/me.png"}`,
			mock: func(svc *reportMocks.MockReport) {
				svc.EXPECT().DeleteOccupancy(gomock.Any(), gomock.Any()).Return(failure.BadRequestFromString("url does not point to an occupancy report"))
			},
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.mock(svc)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/reports/occupancy", strings.NewReader(tt.body)))

			assert.Equal(t, tt.status, recorder.Code)
		})
	}
}
