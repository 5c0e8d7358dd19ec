package guest

import (
	"hostel/infras/otel"
	"hostel/internal/domains/guest/model/dto"
	"hostel/internal/domains/guest/service"
	"hostel/shared/constant"
	"hostel/shared/validator"
	"hostel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Guest
	otel    otel.Otel
}

func New(service service.Guest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/guests", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetGuests)
		routerGroup.Post("/", handler.CreateGuest)
		routerGroup.Get("/stats", handler.GetStats)
		routerGroup.Get("/{id}", handler.GetGuestByID)
		routerGroup.Post("/{id}/check-in", handler.CheckIn)
		routerGroup.Post("/{id}/check-out", handler.CheckOut)
	})

	router.Route("/guest-forms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.OpenForm)
		routerGroup.Get("/{id}", handler.GetForm)
		routerGroup.Patch("/{id}", handler.UpdateForm)
		routerGroup.Post("/{id}/submit", handler.SubmitForm)
		routerGroup.Delete("/{id}", handler.CloseForm)
	})
}

// GetGuests lists guests for one tab, optionally narrowed by a search query.
// @Summary List guests
// @Description List guests by tab (current, upcoming, history, all) and free-text search over name, country and email.
// @Tags Guest
// @Produce json
// @Param tab query string false "Tab: current, upcoming, history or all"
// @Param q query string false "Search query"
// @Param page query int false "Page number, starting at 1"
// @Param limit query int false "Guests per page"
// @Param sort_by query string false "Sort field: name, country, room, check_in, check_out, status or created_at"
// @Param sort_dir query string false "Sort direction: ASC or DESC"
// @Success 200 {object} response.Data[dto.GetGuestsResponse] "Guests"
// @Failure 400 {object} response.Error "Invalid paging or sorting parameter"
// @Failure 502 {object} response.Error "Guest store unavailable"
// @Router /v1/guests [get]
func (handler *Handler) GetGuests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuests")
	defer scope.End()

	req := dto.ListGuestsRequest{
		Tab:   r.URL.Query().Get(constant.RequestParamTab),
		Query: r.URL.Query().Get(constant.RequestParamQuery),
	}

	if err := req.FromRequest(r); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	guests, err := handler.service.List(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list guests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, guests)
}

// CreateGuest validates and stores a guest in one step.
// @Summary Create a guest
// @Tags Guest
// @Accept json
// @Produce json
// @Param X-Staff-ID header string false "Acting staff member"
// @Param request body dto.CreateGuestRequest true "Guest values"
// @Success 201 {object} response.Data[dto.GuestResponse] "Created guest"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.ValidationError
// @Failure 502 {object} response.Error
// @Router /v1/guests [post]
func (handler *Handler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGuest")
	defer scope.End()

	req := dto.CreateGuestRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	guest, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create guest")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest created " + guest.ID)

	response.WithJSON(w, http.StatusCreated, guest)
}

// GetStats returns the occupancy dashboard numbers.
// @Summary Occupancy statistics
// @Tags Guest
// @Produce json
// @Success 200 {object} response.Data[dto.StatsResponse] "Statistics"
// @Failure 502 {object} response.Error
// @Router /v1/guests/stats [get]
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	stats, err := handler.service.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to compute stats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, stats)
}

// GetGuestByID retrieves a guest by its ID.
// @Summary Get a guest
// @Tags Guest
// @Produce json
// @Param id path string true "Guest ID"
// @Success 200 {object} response.Data[dto.GuestResponse] "Guest"
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/guests/{id} [get]
func (handler *Handler) GetGuestByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuestByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	guest, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, guest)
}

// CheckIn moves a reserved guest to checked-in.
// @Summary Check a guest in
// @Tags Guest
// @Produce json
// @Param X-Staff-ID header string false "Acting staff member"
// @Param id path string true "Guest ID"
// @Success 200 {object} response.Data[dto.GuestResponse] "Checked-in guest"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Wrong status or bed occupied"
// @Failure 502 {object} response.Error
// @Router /v1/guests/{id}/check-in [post]
func (handler *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckIn")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	guest, err := handler.service.CheckIn(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("guest", id).Msg("failed to check guest in")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest checked in " + id)

	response.WithJSON(w, http.StatusOK, guest)
}

// CheckOut moves a checked-in guest to checked-out.
// @Summary Check a guest out
// @Tags Guest
// @Produce json
// @Param X-Staff-ID header string false "Acting staff member"
// @Param id path string true "Guest ID"
// @Success 200 {object} response.Data[dto.GuestResponse] "Checked-out guest"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/guests/{id}/check-out [post]
func (handler *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckOut")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	guest, err := handler.service.CheckOut(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("guest", id).Msg("failed to check guest out")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest checked out " + id)

	response.WithJSON(w, http.StatusOK, guest)
}

// OpenForm starts a server-side guest form.
// @Summary Open a guest form
// @Tags Guest form
// @Produce json
// @Success 201 {object} response.Data[dto.FormResponse] "Empty form"
// @Router /v1/guest-forms [post]
func (handler *Handler) OpenForm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".OpenForm")
	defer scope.End()

	response.WithJSON(w, http.StatusCreated, handler.service.OpenForm(ctx))
}

// GetForm returns the current state of a form.
// @Summary Get a guest form
// @Tags Guest form
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} response.Data[dto.FormResponse] "Form state"
// @Failure 404 {object} response.Error
// @Router /v1/guest-forms/{id} [get]
func (handler *Handler) GetForm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetForm")
	defer scope.End()

	form, err := handler.service.GetForm(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, form)
}

// UpdateForm patches the values of a form. Omitted fields keep their value.
// @Summary Update a guest form
// @Tags Guest form
// @Accept json
// @Produce json
// @Param id path string true "Form ID"
// @Param request body dto.UpdateFormRequest true "Changed values"
// @Success 200 {object} response.Data[dto.FormResponse] "Form state"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Submit in progress"
// @Router /v1/guest-forms/{id} [patch]
func (handler *Handler) UpdateForm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateForm")
	defer scope.End()

	req := dto.UpdateFormRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	form, err := handler.service.UpdateForm(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, form)
}

// SubmitForm validates the form and creates its guest. The form is closed on success.
// @Summary Submit a guest form
// @Tags Guest form
// @Produce json
// @Param X-Staff-ID header string false "Acting staff member"
// @Param id path string true "Form ID"
// @Success 201 {object} response.Data[dto.FormResponse] "Form with the created guest"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Submit in progress"
// @Failure 422 {object} response.ValidationError
// @Failure 502 {object} response.Error "Guest store unavailable, values kept"
// @Router /v1/guest-forms/{id}/submit [post]
func (handler *Handler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitForm")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	form, err := handler.service.SubmitForm(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("form", id).Msg("failed to submit guest form")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, form)
}

// CloseForm discards a form.
// @Summary Close a guest form
// @Tags Guest form
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/guest-forms/{id} [delete]
func (handler *Handler) CloseForm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CloseForm")
	defer scope.End()

	if err := handler.service.CloseForm(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Guest form closed")
}
