package report

import (
	"hostel/infras/otel"
	"hostel/internal/domains/report/model/dto"
	"hostel/internal/domains/report/service"
	"hostel/shared/constant"
	"hostel/shared/validator"
	"hostel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Post("/occupancy", handler.ExportOccupancy)
		routerGroup.Delete("/occupancy", handler.DeleteOccupancy)
	})
}

// ExportOccupancy uploads the current occupancy statistics as a JSON report.
// @Summary Export occupancy report
// @Tags Report
// @Produce json
// @Success 201 {object} response.Data[dto.ExportReportResponse] "Report location"
// @Failure 502 {object} response.Error "Storage unavailable"
// @Router /v1/reports/occupancy [post]
func (handler *Handler) ExportOccupancy(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportOccupancy")
	defer scope.End()

	res, err := handler.service.ExportOccupancy(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export occupancy report")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// DeleteOccupancy removes a previously exported report.
// @Summary Delete occupancy report
// @Tags Report
// @Accept json
// @Produce json
// @Param request body dto.DeleteReportRequest true "Report URL"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.ValidationError
// @Router /v1/reports/occupancy [delete]
func (handler *Handler) DeleteOccupancy(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteOccupancy")
	defer scope.End()

	req := dto.DeleteReportRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.DeleteOccupancy(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete occupancy report")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "report deleted")
}
