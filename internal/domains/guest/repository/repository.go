package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"hostel/infras/otel"
	"hostel/infras/postgres"
	"hostel/internal/domains/guest/model"
	"hostel/shared"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	gModel "hostel/shared/model"
	gRepo "hostel/shared/repository"
	"hostel/shared/timezone"
	"time"

	"github.com/google/uuid"
)

// StatusChange moves one guest from From to To. CheckOut, when set, is stored alongside.
type StatusChange struct {
	ID       string
	From     model.Status
	To       model.Status
	CheckOut *time.Time
}

// statusUpdate is the column set written by UpdateStatus. A nil CheckOut keeps the stored date.
type statusUpdate struct {
	Status   model.Status `db:"status"`
	CheckOut *time.Time   `db:"check_out"`
}

// Fields renders the change as an update map stamped with staff.
func (c StatusChange) Fields(staff string) map[string]any {
	return shared.TransformFields(statusUpdate{Status: c.To, CheckOut: c.CheckOut}, staff)
}

type Guest interface {
	List(ctx context.Context) ([]model.Guest, error)
	Create(ctx context.Context, guest model.Guest) (model.Guest, error)
	Get(ctx context.Context, id string) (model.Guest, error)
	UpdateStatus(ctx context.Context, change StatusChange) (model.Guest, error)
	FindOccupant(ctx context.Context, room, bed string) (*model.Guest, error)
}

type repositoryImpl struct {
	base gRepo.Repository[model.Guest]
	otel otel.Otel
}

func New(db *postgres.Connection, otl otel.Otel) Guest {
	return &repositoryImpl{
		base: gRepo.NewRepository[model.Guest](model.EntityName, model.TableName, model.FieldID, db, otl),
		otel: otl,
	}
}

// List returns every guest, latest check-in first.
func (r *repositoryImpl) List(ctx context.Context) ([]model.Guest, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.List")
	defer scope.End()

	guests, err := r.base.GetAll(ctx, gDto.QueryParams{
		SortBy:  constant.DefaultValueSortBy,
		SortDir: constant.DefaultValueSortDir,
	}, gDto.FilterGroup{})
	if err != nil {
		return nil, NewError("list", err)
	}

	return guests, nil
}

// Create assigns the id and audit fields and persists guest.
func (r *repositoryImpl) Create(ctx context.Context, guest model.Guest) (model.Guest, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.Create")
	defer scope.End()

	guest.ID = uuid.NewString()
	guest.Metadata = gModel.NewMetadata(shared.StaffFromContext(ctx), timezone.Now())

	if err := r.base.Insert(ctx, guest); err != nil {
		return model.Guest{}, NewError("create", err)
	}

	return guest, nil
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (model.Guest, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.Get")
	defer scope.End()

	guest, err := r.base.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return model.Guest{}, NewError("get", err)
	}

	return guest, nil
}

// UpdateStatus only applies when the stored status still equals change.From.
func (r *repositoryImpl) UpdateStatus(ctx context.Context, change StatusChange) (model.Guest, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.UpdateStatus")
	defer scope.End()

	affected, err := r.base.Update(ctx, change.Fields(shared.StaffFromContext(ctx)), gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: change.ID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{
				ArgName:  "current_status",
				Field:    model.FieldStatus,
				Value:    change.From,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		return model.Guest{}, NewError("update", err)
	}

	if affected == 0 {
		exists, err := r.base.Exist(ctx, shared.FilterByID(change.ID, model.FieldID, model.TableName))
		if err != nil {
			return model.Guest{}, NewError("update", err)
		}

		if !exists {
			return model.Guest{}, NewError("update", gRepo.ErrNotFound)
		}

		return model.Guest{}, NewError("update", ErrStaleStatus)
	}

	return r.Get(ctx, change.ID)
}

// FindOccupant returns the checked-in guest holding room/bed, or nil when the bed is free.
func (r *repositoryImpl) FindOccupant(ctx context.Context, room, bed string) (*model.Guest, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.FindOccupant")
	defer scope.End()

	guest, err := r.base.Get(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldRoom, Value: room, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldBed, Value: bed, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Value: model.StatusCheckedIn, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	})
	if errors.Is(err, gRepo.ErrNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, NewError("find occupant", err)
	}

	return &guest, nil
}
