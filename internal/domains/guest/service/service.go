package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Guest=MockGuestService

import (
	"context"
	"errors"
	"fmt"
	"hostel/config"
	"hostel/infras/metrics"
	"hostel/infras/otel"
	"hostel/internal/domains/guest/event"
	"hostel/internal/domains/guest/form"
	"hostel/internal/domains/guest/model"
	"hostel/internal/domains/guest/model/dto"
	"hostel/internal/domains/guest/occupancy"
	"hostel/internal/domains/guest/repository"
	inventory "hostel/internal/domains/inventory/model"
	inventoryService "hostel/internal/domains/inventory/service"
	"hostel/shared"
	"hostel/shared/cache"
	"hostel/shared/constant"
	"hostel/shared/failure"
	"hostel/shared/timezone"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheListGuests = "guests:list"
)

type Guest interface {
	List(ctx context.Context, req dto.ListGuestsRequest) (dto.GetGuestsResponse, error)
	Get(ctx context.Context, id string) (dto.GuestResponse, error)
	Create(ctx context.Context, req dto.CreateGuestRequest) (dto.GuestResponse, error)
	CheckIn(ctx context.Context, id string) (dto.GuestResponse, error)
	CheckOut(ctx context.Context, id string) (dto.GuestResponse, error)
	Stats(ctx context.Context) (dto.StatsResponse, error)
	Occupancy(ctx context.Context) ([]dto.RoomOccupancyResponse, error)
	OpenForm(ctx context.Context) dto.FormResponse
	GetForm(ctx context.Context, id string) (dto.FormResponse, error)
	UpdateForm(ctx context.Context, id string, req dto.UpdateFormRequest) (dto.FormResponse, error)
	SubmitForm(ctx context.Context, id string) (dto.FormResponse, error)
	CloseForm(ctx context.Context, id string) error
	WatchForms(ctx context.Context)
}

type serviceImpl struct {
	repo      repository.Guest
	inventory inventory.Inventory
	publisher event.Publisher
	metrics   metrics.Metrics
	forms     *form.Registry
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Guest,
	rooms inventoryService.Inventory,
	publisher event.Publisher,
	mtr metrics.Metrics,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Guest {
	s := &serviceImpl{
		repo:      repo,
		inventory: rooms.Snapshot(),
		publisher: publisher,
		metrics:   mtr,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}

	s.forms = form.NewRegistry(s.newController)

	return s
}

func (s *serviceImpl) newController(id string) *form.Controller {
	return form.NewController(id, s.repo, s.inventory, form.WithOnSuccess(s.created))
}

func (s *serviceImpl) created(ctx context.Context, guest model.Guest) {
	s.metrics.IncSubmission(metrics.SubmissionCreated)
	s.changed(ctx, event.TypeCreated, guest)
}

// changed runs the side effects of a persisted mutation. None of them fail the mutation.
func (s *serviceImpl) changed(ctx context.Context, eventType event.Type, guest model.Guest) {
	c := context.WithoutCancel(ctx)

	shared.InvalidateCaches(c, s.cache, cacheListGuests)

	if err := s.publisher.Publish(c, event.New(c, eventType, guest)); err != nil {
		log.Error().Err(err).Str("guest", guest.ID).Str("event", string(eventType)).Msg("failed to publish guest event")
	}
}

// guests returns every stored guest, served from cache when possible.
func (s *serviceImpl) guests(ctx context.Context) (guests []model.Guest, err error) {
	if err = s.cache.Get(ctx, cacheListGuests, &guests); err == nil {
		log.Debug().Str("cacheKey", cacheListGuests).Msg("cache hit for guests")

		return guests, nil
	}

	guests, err = s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list guests")

		return nil, fmt.Errorf("failed to list guests: %w", err)
	}

	if err := s.cache.Save(ctx, cacheListGuests, guests, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save guests to cache")
	}

	return guests, nil
}

func (s *serviceImpl) List(ctx context.Context, req dto.ListGuestsRequest) (res dto.GetGuestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	guests, err := s.guests(ctx)
	if err != nil {
		return res, err
	}

	tab := occupancy.ParseTab(req.Tab)
	filtered := occupancy.FilterBySearch(occupancy.FilterByTab(guests, string(tab)), req.Query)

	if req.SortBy != "" {
		sorted, ok := occupancy.SortGuests(filtered, req.SortBy, req.SortDir)
		if !ok {
			return res, failure.BadRequestFromString(fmt.Sprintf("invalid sort_by parameter, must be one of %s", strings.Join(occupancy.SortFields, ", "))) // nolint:wrapcheck
		}

		filtered = sorted
	}

	res.FromModels(occupancy.Paginate(filtered, req.Page, req.Limit), len(filtered), tab, req.Query, occupancy.CountTabs(guests))
	res.Page = req.Page
	res.Limit = req.Limit

	return res, nil
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Guest, error) {
	guest, err := s.repo.Get(ctx, id)
	if repository.IsNotFound(err) {
		return model.Guest{}, failure.NotFound(fmt.Sprintf("guest %q not found", id)) // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("guest", id).Msg("failed to get guest")

		return model.Guest{}, fmt.Errorf("failed to get guest: %w", err)
	}

	return guest, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	guest, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(guest)

	return res, nil
}

// Create runs the values through a single-use form so direct creates follow the form rules.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGuestRequest) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	controller := s.newController(constant.Empty)

	if _, err = controller.SetValues(req); err != nil {
		return res, fmt.Errorf("failed to set guest values: %w", err)
	}

	guest, err := s.submit(ctx, controller)
	if err != nil {
		return res, err
	}

	res.FromModel(guest)

	return res, nil
}

func (s *serviceImpl) submit(ctx context.Context, controller *form.Controller) (model.Guest, error) {
	guest, err := controller.Submit(ctx)
	if err == nil {
		return guest, nil
	}

	var fields failure.ValidationErrors

	switch {
	case errors.As(err, &fields):
		s.metrics.IncSubmission(metrics.SubmissionInvalid)

		return model.Guest{}, err
	case errors.Is(err, form.ErrSubmitInProgress):
		s.metrics.IncSubmission(metrics.SubmissionInProgress)

		return model.Guest{}, failure.Conflict(err.Error()) // nolint:wrapcheck
	default:
		s.metrics.IncSubmission(metrics.SubmissionFailed)
		log.Error().Err(err).Msg("failed to create guest")

		return model.Guest{}, err
	}
}

func (s *serviceImpl) CheckIn(ctx context.Context, id string) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.CheckIn")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	guest, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	if !guest.Status.CanTransitionTo(model.StatusCheckedIn) {
		return res, failure.Conflict(fmt.Sprintf("guest %q is %s and cannot be checked in", id, guest.Status)) // nolint:wrapcheck
	}

	if guest.Bed != nil {
		occupant, err := s.repo.FindOccupant(ctx, guest.Room, *guest.Bed)
		if err != nil {
			log.Error().Err(err).Str("guest", id).Msg("failed to check bed occupant")

			return res, fmt.Errorf("failed to check bed occupant: %w", err)
		}

		if occupant != nil && occupant.ID != guest.ID {
			return res, failure.Conflict(fmt.Sprintf("bed %q in room %q is occupied by %s", *guest.Bed, guest.Room, occupant.Name)) // nolint:wrapcheck
		}
	}

	updated, err := s.transition(ctx, repository.StatusChange{ID: id, From: guest.Status, To: model.StatusCheckedIn})
	if err != nil {
		return res, err
	}

	s.changed(ctx, event.TypeCheckedIn, updated)
	res.FromModel(updated)

	return res, nil
}

// CheckOut records today as the check-out date when none was planned.
func (s *serviceImpl) CheckOut(ctx context.Context, id string) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.CheckOut")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	guest, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	if !guest.Status.CanTransitionTo(model.StatusCheckedOut) {
		return res, failure.Conflict(fmt.Sprintf("guest %q is %s and cannot be checked out", id, guest.Status)) // nolint:wrapcheck
	}

	change := repository.StatusChange{ID: id, From: guest.Status, To: model.StatusCheckedOut}

	if guest.CheckOut == nil {
		checkOut := timezone.Today()
		if !checkOut.After(guest.CheckIn) {
			checkOut = guest.CheckIn.AddDate(0, 0, 1)
		}

		change.CheckOut = &checkOut
	}

	updated, err := s.transition(ctx, change)
	if err != nil {
		return res, err
	}

	s.changed(ctx, event.TypeCheckedOut, updated)
	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) transition(ctx context.Context, change repository.StatusChange) (model.Guest, error) {
	updated, err := s.repo.UpdateStatus(ctx, change)
	if repository.IsConflict(err) {
		return model.Guest{}, failure.Conflict(err.Error()) // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("guest", change.ID).Str("status", string(change.To)).Msg("failed to update guest status")

		return model.Guest{}, fmt.Errorf("failed to update guest status: %w", err)
	}

	return updated, nil
}

func (s *serviceImpl) summarize(ctx context.Context) (occupancy.Summary, error) {
	guests, err := s.guests(ctx)
	if err != nil {
		return occupancy.Summary{}, err
	}

	summary := occupancy.Summarize(guests, s.inventory, s.cfg.App.Stats.TopCountries)

	s.metrics.SetOccupancyRate(summary.OccupancyRate)
	s.metrics.SetGuests(string(model.StatusCheckedIn), summary.Counts.Current)
	s.metrics.SetGuests(string(model.StatusReserved), summary.Counts.Upcoming)
	s.metrics.SetGuests(string(model.StatusCheckedOut), summary.Counts.History)

	return summary, nil
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Stats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	summary, err := s.summarize(ctx)
	if err != nil {
		return res, err
	}

	res.FromSummary(summary)
	res.GeneratedAt = timezone.Format(timezone.Now(), constant.DateFormat)

	return res, nil
}

func (s *serviceImpl) Occupancy(ctx context.Context) (res []dto.RoomOccupancyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Occupancy")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	guests, err := s.guests(ctx)
	if err != nil {
		return nil, err
	}

	rooms := occupancy.RoomOccupancy(guests, s.inventory)

	res = make([]dto.RoomOccupancyResponse, len(rooms))
	for i, room := range rooms {
		res[i].FromOccupancy(room)
	}

	return res, nil
}

func (s *serviceImpl) OpenForm(ctx context.Context) dto.FormResponse {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.OpenForm")
	defer scope.End()

	return s.forms.Open().State().ToResponse()
}

func (s *serviceImpl) controller(id string) (*form.Controller, error) {
	controller, ok := s.forms.Get(id)
	if !ok {
		return nil, failure.NotFound(fmt.Sprintf("guest form %q not found", id)) // nolint:wrapcheck
	}

	return controller, nil
}

func (s *serviceImpl) GetForm(ctx context.Context, id string) (res dto.FormResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.GetForm")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	controller, err := s.controller(id)
	if err != nil {
		return res, err
	}

	return controller.State().ToResponse(), nil
}

func (s *serviceImpl) UpdateForm(ctx context.Context, id string, req dto.UpdateFormRequest) (res dto.FormResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.UpdateForm")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	controller, err := s.controller(id)
	if err != nil {
		return res, err
	}

	state, err := controller.SetValues(req.Apply(controller.State().Values))
	if errors.Is(err, form.ErrSubmitInProgress) {
		return res, failure.Conflict(err.Error()) // nolint:wrapcheck
	}

	return state.ToResponse(), nil
}

// SubmitForm closes the form once its guest is created.
func (s *serviceImpl) SubmitForm(ctx context.Context, id string) (res dto.FormResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.SubmitForm")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	controller, err := s.controller(id)
	if err != nil {
		return res, err
	}

	if _, err = s.submit(ctx, controller); err != nil {
		return controller.State().ToResponse(), err
	}

	s.forms.Close(id)

	return controller.State().ToResponse(), nil
}

func (s *serviceImpl) CloseForm(ctx context.Context, id string) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.CloseForm")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !s.forms.Close(id) {
		return failure.NotFound(fmt.Sprintf("guest form %q not found", id)) // nolint:wrapcheck
	}

	return nil
}

// WatchForms expires idle forms until ctx is done.
func (s *serviceImpl) WatchForms(ctx context.Context) {
	s.forms.Run(ctx,
		time.Duration(s.cfg.App.Form.SweepSeconds)*time.Second,
		time.Duration(s.cfg.App.Form.IdleMinutes)*time.Minute,
	)
}
