package room

import (
	"hostel/infras/otel"
	guestDto "hostel/internal/domains/guest/model/dto"
	guestService "hostel/internal/domains/guest/service"
	"hostel/internal/domains/inventory/model/dto"
	"hostel/internal/domains/inventory/service"
	"hostel/shared/constant"
	"hostel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Inventory
	guests  guestService.Guest
	otel    otel.Otel
}

func New(service service.Inventory, guests guestService.Guest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		guests:  guests,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/occupancy", handler.GetOccupancy)
		routerGroup.Get("/{id}", handler.GetRoomByID)
	})
}

// GetRooms lists the configured rooms and beds.
// @Summary List rooms
// @Tags Room
// @Produce json
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "Rooms"
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	res := dto.GetRoomsResponse{}
	res.FromModels(handler.service.Rooms(ctx))

	response.WithJSON(w, http.StatusOK, res)
}

// GetRoomByID retrieves one room.
// @Summary Get a room
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room"
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{id} [get]
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	room, err := handler.service.Room(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res := dto.RoomResponse{}
	res.FromModel(room)

	response.WithJSON(w, http.StatusOK, res)
}

// GetOccupancy maps every bed to its checked-in guest.
// @Summary Room occupancy
// @Tags Room
// @Produce json
// @Success 200 {object} response.Data[[]guestDto.RoomOccupancyResponse] "Occupancy by room"
// @Failure 502 {object} response.Error
// @Router /v1/rooms/occupancy [get]
func (handler *Handler) GetOccupancy(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOccupancy")
	defer scope.End()

	var (
		rooms []guestDto.RoomOccupancyResponse
		err   error
	)

	if rooms, err = handler.guests.Occupancy(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to compute room occupancy")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}
