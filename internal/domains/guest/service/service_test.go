package service_test

import (
	"context"
	"errors"
	"fmt"
	"hostel/config"
	"hostel/infras/metrics"
	otelMocks "hostel/infras/otel/mocks"
	"hostel/internal/domains/guest/mocks"
	"hostel/internal/domains/guest/model"
	"hostel/internal/domains/guest/model/dto"
	"hostel/internal/domains/guest/repository"
	"hostel/internal/domains/guest/service"
	inventoryMocks "hostel/internal/domains/inventory/mocks"
	inventory "hostel/internal/domains/inventory/model"
	"hostel/shared/cache"
	cacheMocks "hostel/shared/cache/mocks"
	gDto "hostel/shared/dto"
	"hostel/shared/failure"
	gRepo "hostel/shared/repository"
	"hostel/shared/timezone"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo      *mocks.MockGuest
	publisher *mocks.MockPublisher
	cache     *cacheMocks.MockRedisCache
	service   service.Guest
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	inv, err := inventory.NewInventory([]inventory.Room{
		{ID: "Dorm 101", Type: "Dorm", Capacity: 6, Beds: []string{"A", "B", "C", "D", "E", "F"}},
		{ID: "Private 201", Type: "Private", Capacity: 2, Beds: []string{"A"}},
	})
	assert.NoError(t, err)

	rooms := inventoryMocks.NewMockInventoryService(ctrl)
	rooms.EXPECT().Snapshot().Return(inv)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60
	cfg.App.Stats.TopCountries = 5
	cfg.App.Form.SweepSeconds = 60
	cfg.App.Form.IdleMinutes = 30

	f := fixture{
		repo:      mocks.NewMockGuest(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}
	f.service = service.New(f.repo, rooms, f.publisher, metrics.NewNoop(), cfg, f.cache, otelMocks.NewOtel())

	return f
}

func (f fixture) expectChange() {
	f.cache.EXPECT().Clear(gomock.Any(), "guests:list*").Return(nil)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
}

func (f fixture) expectCacheMiss(guests []model.Guest) {
	f.cache.EXPECT().Get(gomock.Any(), "guests:list", gomock.Any()).Return(fmt.Errorf("failed to get cache value: %w", cache.Nil))
	f.repo.EXPECT().List(gomock.Any()).Return(guests, nil)
	f.cache.EXPECT().Save(gomock.Any(), "guests:list", guests, 60).Return(nil)
}

func (f fixture) expectCacheHit(guests []model.Guest) {
	f.cache.EXPECT().Get(gomock.Any(), "guests:list", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*value.(*[]model.Guest) = guests

			return nil
		})
}

func ptr[T any](value T) *T {
	return &value
}

func date(value string) time.Time {
	parsed, _ := timezone.ParseDate(value)

	return parsed
}

func sampleGuests() []model.Guest {
	return []model.Guest{
		{ID: "1", Name: "John Smith", Country: ptr("USA"), Room: "Dorm 101", Bed: ptr("A"), CheckIn: date("2023-07-01"), CheckOut: ptr(date("2023-07-05")), Status: model.StatusCheckedIn},
		{ID: "2", Name: "Maria Garcia", Country: ptr("Spain"), Room: "Dorm 101", Bed: ptr("B"), CheckIn: date("2023-07-02"), CheckOut: ptr(date("2023-07-06")), Status: model.StatusReserved},
		{ID: "3", Name: "Raj Patel", Country: ptr("India"), Room: "Private 201", Bed: ptr("A"), CheckIn: date("2023-06-20"), CheckOut: ptr(date("2023-06-25")), Status: model.StatusCheckedOut},
		{ID: "4", Name: "Sophie Martin", Email: ptr("sophie@example.fr"), Country: ptr("Spain"), Room: "Dorm 101", Bed: ptr("C"), CheckIn: date("2023-07-03"), Status: model.StatusCheckedIn},
	}
}

func TestList(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.ListGuestsRequest
		expected []string
		tab      string
	}{
		{name: "current tab", req: dto.ListGuestsRequest{Tab: "current"}, expected: []string{"1", "4"}, tab: "current"},
		{name: "upcoming tab", req: dto.ListGuestsRequest{Tab: "upcoming"}, expected: []string{"2"}, tab: "upcoming"},
		{name: "history tab", req: dto.ListGuestsRequest{Tab: "history"}, expected: []string{"3"}, tab: "history"},
		{name: "unknown tab lists all", req: dto.ListGuestsRequest{Tab: "archived"}, expected: []string{"1", "2", "3", "4"}, tab: "all"},
		{name: "search within tab", req: dto.ListGuestsRequest{Tab: "current", Query: "SPAIN"}, expected: []string{"4"}, tab: "current"},
		{name: "search by email", req: dto.ListGuestsRequest{Query: "example.fr"}, expected: []string{"4"}, tab: "all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.expectCacheHit(sampleGuests())

			res, err := f.service.List(context.Background(), tt.req)
			assert.NoError(t, err)

			ids := make([]string, len(res.Guests))
			for i, guest := range res.Guests {
				ids[i] = guest.ID
			}

			assert.Equal(t, tt.expected, ids)
			assert.Equal(t, tt.tab, res.Tab)
			assert.Equal(t, len(tt.expected), res.Total)
			assert.Equal(t, dto.TabCountsResponse{Current: 2, Upcoming: 1, History: 1, All: 4}, res.Counts)
		})
	}
}

func TestList_SortAndPage(t *testing.T) {
	tests := []struct {
		name     string
		params   gDto.QueryParams
		expected []string
		page     int
	}{
		{name: "by name ascending", params: gDto.QueryParams{SortBy: "name", SortDir: gDto.SortDirAsc}, expected: []string{"1", "2", "3", "4"}},
		{name: "by check in descending", params: gDto.QueryParams{SortBy: "check_in", SortDir: gDto.SortDirDesc}, expected: []string{"4", "2", "1", "3"}},
		{name: "by country then id", params: gDto.QueryParams{SortBy: "country", SortDir: gDto.SortDirAsc}, expected: []string{"3", "2", "4", "1"}},
		{name: "second page", params: gDto.QueryParams{Page: 2, Limit: 3, SortBy: "name", SortDir: gDto.SortDirAsc}, expected: []string{"4"}, page: 2},
		{name: "page past the end", params: gDto.QueryParams{Page: 5, Limit: 3}, expected: []string{}, page: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.expectCacheHit(sampleGuests())

			res, err := f.service.List(context.Background(), dto.ListGuestsRequest{QueryParams: tt.params})
			assert.NoError(t, err)

			ids := make([]string, len(res.Guests))
			for i, guest := range res.Guests {
				ids[i] = guest.ID
			}

			assert.Equal(t, tt.expected, ids)
			assert.Equal(t, 4, res.Total)
			assert.Equal(t, tt.page, res.Page)
		})
	}
}

func TestList_UnknownSortField(t *testing.T) {
	f := newFixture(t)
	f.expectCacheHit(sampleGuests())

	_, err := f.service.List(context.Background(), dto.ListGuestsRequest{QueryParams: gDto.QueryParams{SortBy: "phone"}})
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestList_CacheMiss(t *testing.T) {
	f := newFixture(t)
	f.expectCacheMiss(sampleGuests())

	res, err := f.service.List(context.Background(), dto.ListGuestsRequest{})
	assert.NoError(t, err)
	assert.Equal(t, 4, res.Total)
	assert.Equal(t, "2023-07-01", res.Guests[0].CheckIn)
	assert.Equal(t, "2023-07-05", *res.Guests[0].CheckOut)
}

func TestList_RepositoryFailure(t *testing.T) {
	f := newFixture(t)
	f.cache.EXPECT().Get(gomock.Any(), "guests:list", gomock.Any()).Return(cache.Nil)
	f.repo.EXPECT().List(gomock.Any()).Return(nil, repository.NewError("list", errors.New("connection refused")))

	res, err := f.service.List(context.Background(), dto.ListGuestsRequest{})
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
	assert.Nil(t, res.Guests)
}

func TestGet(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Get(gomock.Any(), "1").Return(sampleGuests()[0], nil)
	f.repo.EXPECT().Get(gomock.Any(), "broken").Return(model.Guest{}, repository.NewError("get", errors.New("connection reset")))
	f.repo.EXPECT().Get(gomock.Any(), "missing").Return(model.Guest{}, repository.NewError("get", fmt.Errorf("get: %w", gRepo.ErrNotFound)))

	res, err := f.service.Get(context.Background(), "1")
	assert.NoError(t, err)
	assert.Equal(t, "John Smith", res.Name)

	_, err = f.service.Get(context.Background(), "broken")
	assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))

	_, err = f.service.Get(context.Background(), "missing")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	assert.EqualError(t, err, `guest "missing" not found`)
}

func TestCreate(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, guest model.Guest) (model.Guest, error) {
			guest.ID = "g-new"

			return guest, nil
		})
	f.expectChange()

	res, err := f.service.Create(context.Background(), dto.CreateGuestRequest{
		Name:    " Emma Wilson ",
		Country: "UK",
		Room:    "Dorm 101",
		Bed:     "-",
		CheckIn: "2023-07-10",
	})
	assert.NoError(t, err)
	assert.Equal(t, "g-new", res.ID)
	assert.Equal(t, "Emma Wilson", res.Name)
	assert.Nil(t, res.Bed)
	assert.Equal(t, "reserved", res.Status)
}

func TestCreate_Invalid(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Create(context.Background(), dto.CreateGuestRequest{Room: "Dorm 999", CheckIn: "2023-7-1"})

	var fields failure.ValidationErrors
	assert.ErrorAs(t, err, &fields)
	assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	assert.True(t, fields.Has("name"))
	assert.True(t, fields.Has("room"))
	assert.True(t, fields.Has("check_in"))
}

func TestCreate_StoreFailure(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(model.Guest{}, repository.NewError("create", errors.New("timeout")))

	_, err := f.service.Create(context.Background(), dto.CreateGuestRequest{Name: "Emma", Room: "Dorm 101", CheckIn: "2023-07-10"})
	assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
	assert.EqualError(t, err, "failed to create guest: timeout")
}

func TestCheckIn(t *testing.T) {
	reserved := sampleGuests()[1]

	tests := []struct {
		name  string
		setup func(f fixture)
		code  int
	}{
		{
			name: "free bed",
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), "2").Return(reserved, nil)
				f.repo.EXPECT().FindOccupant(gomock.Any(), "Dorm 101", "B").Return(nil, nil)
				f.repo.EXPECT().UpdateStatus(gomock.Any(), repository.StatusChange{ID: "2", From: model.StatusReserved, To: model.StatusCheckedIn}).
					DoAndReturn(func(_ context.Context, change repository.StatusChange) (model.Guest, error) {
						updated := reserved
						updated.Status = change.To

						return updated, nil
					})
				f.expectChange()
			},
		},
		{
			name: "bed held by another guest",
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), "2").Return(reserved, nil)
				f.repo.EXPECT().FindOccupant(gomock.Any(), "Dorm 101", "B").Return(&model.Guest{ID: "7", Name: "Liam Brown"}, nil)
			},
			code: http.StatusConflict,
		},
		{
			name: "not reserved",
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), "2").Return(sampleGuests()[2], nil)
			},
			code: http.StatusConflict,
		},
		{
			name: "status changed concurrently",
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), "2").Return(reserved, nil)
				f.repo.EXPECT().FindOccupant(gomock.Any(), "Dorm 101", "B").Return(nil, nil)
				f.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Return(model.Guest{}, repository.NewError("update", repository.ErrStaleStatus))
			},
			code: http.StatusConflict,
		},
		{
			name: "database down",
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), "2").Return(reserved, nil)
				f.repo.EXPECT().FindOccupant(gomock.Any(), "Dorm 101", "B").Return(nil, repository.NewError("find occupant", errors.New("timeout")))
			},
			code: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			res, err := f.service.CheckIn(context.Background(), "2")
			if tt.code == 0 {
				assert.NoError(t, err)
				assert.Equal(t, "checked-in", res.Status)

				return
			}

			assert.Equal(t, tt.code, failure.GetCode(err))
		})
	}
}

func TestCheckOut_RecordsToday(t *testing.T) {
	f := newFixture(t)
	guest := sampleGuests()[3]

	f.repo.EXPECT().Get(gomock.Any(), "4").Return(guest, nil)
	f.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, change repository.StatusChange) (model.Guest, error) {
			assert.Equal(t, model.StatusCheckedIn, change.From)
			assert.Equal(t, model.StatusCheckedOut, change.To)
			assert.Equal(t, timezone.Today(), *change.CheckOut)

			updated := guest
			updated.Status = change.To
			updated.CheckOut = change.CheckOut

			return updated, nil
		})
	f.cache.EXPECT().Clear(gomock.Any(), "guests:list*").Return(errors.New("redis down"))
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("no brokers"))

	res, err := f.service.CheckOut(context.Background(), "4")
	assert.NoError(t, err)
	assert.Equal(t, "checked-out", res.Status)
	assert.Equal(t, timezone.FormatDate(timezone.Today()), *res.CheckOut)
}

func TestCheckOut_KeepsPlannedDate(t *testing.T) {
	f := newFixture(t)
	guest := sampleGuests()[0]

	f.repo.EXPECT().Get(gomock.Any(), "1").Return(guest, nil)
	f.repo.EXPECT().UpdateStatus(gomock.Any(), repository.StatusChange{ID: "1", From: model.StatusCheckedIn, To: model.StatusCheckedOut}).
		Return(model.Guest{ID: "1", Status: model.StatusCheckedOut, CheckIn: guest.CheckIn, CheckOut: guest.CheckOut}, nil)
	f.expectChange()

	res, err := f.service.CheckOut(context.Background(), "1")
	assert.NoError(t, err)
	assert.Equal(t, "2023-07-05", *res.CheckOut)
}

func TestCheckOut_Reserved(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Get(gomock.Any(), "2").Return(sampleGuests()[1], nil)

	_, err := f.service.CheckOut(context.Background(), "2")
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestStats(t *testing.T) {
	f := newFixture(t)
	f.expectCacheHit(sampleGuests())

	res, err := f.service.Stats(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, 7, res.TotalBeds)
	assert.Equal(t, 29, res.OccupancyRate)
	assert.Equal(t, []dto.CountryCountResponse{
		{Country: "Spain", Count: 2},
		{Country: "India", Count: 1},
		{Country: "USA", Count: 1},
	}, res.Countries)
	assert.Equal(t, dto.StayStatsResponse{Average: 4.3, Min: 4, Max: 5}, res.Stay)
	assert.Equal(t, 4, res.Counts.All)
	assert.Len(t, res.Rooms, 2)
	assert.Equal(t, 2, res.Rooms[0].Occupied)
	assert.Equal(t, 33, res.Rooms[0].Rate)
	assert.NotEmpty(t, res.GeneratedAt)
}

func TestOccupancy(t *testing.T) {
	f := newFixture(t)
	f.expectCacheHit(sampleGuests())

	rooms, err := f.service.Occupancy(context.Background())
	assert.NoError(t, err)
	assert.Len(t, rooms, 2)

	dorm := rooms[0]
	assert.Equal(t, "Dorm 101", dorm.Room)
	assert.True(t, dorm.Beds[0].Occupied)
	assert.Equal(t, "John Smith", *dorm.Beds[0].GuestName)
	assert.False(t, dorm.Beds[1].Occupied)
	assert.Equal(t, 0, rooms[1].Occupied)
}

func TestForms(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	opened := f.service.OpenForm(ctx)
	assert.NotEmpty(t, opened.ID)
	assert.Empty(t, opened.Errors)

	res, err := f.service.UpdateForm(ctx, opened.ID, dto.UpdateFormRequest{Name: ptr("Emma Wilson"), Room: ptr("Dorm 101")})
	assert.NoError(t, err)
	assert.Equal(t, "Emma Wilson", res.Values.Name)

	res, err = f.service.SubmitForm(ctx, opened.ID)
	assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	assert.Equal(t, []dto.FieldErrorResponse{{Field: "check_in", Message: "check_in required"}}, res.Errors)
	assert.Equal(t, "Emma Wilson", res.Values.Name)

	res, err = f.service.UpdateForm(ctx, opened.ID, dto.UpdateFormRequest{CheckIn: ptr("2023-07-10")})
	assert.NoError(t, err)
	assert.Equal(t, "Emma Wilson", res.Values.Name)
	assert.Equal(t, "2023-07-10", res.Values.CheckIn)

	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, guest model.Guest) (model.Guest, error) {
			guest.ID = "g-form"

			return guest, nil
		})
	f.expectChange()

	res, err = f.service.SubmitForm(ctx, opened.ID)
	assert.NoError(t, err)
	assert.Equal(t, "g-form", res.Created.ID)
	assert.Empty(t, res.Values.Name)

	_, err = f.service.GetForm(ctx, opened.ID)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestForms_Unknown(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.UpdateForm(ctx, "nope", dto.UpdateFormRequest{})
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	_, err = f.service.SubmitForm(ctx, "nope")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	assert.Equal(t, http.StatusNotFound, failure.GetCode(f.service.CloseForm(ctx, "nope")))

	opened := f.service.OpenForm(ctx)
	assert.NoError(t, f.service.CloseForm(ctx, opened.ID))
}

func TestWatchForms(t *testing.T) {
	f := newFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f.service.WatchForms(ctx)
}
