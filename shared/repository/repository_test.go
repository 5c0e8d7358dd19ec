package repository_test

import (
	"hostel/infras/otel/mocks"
	"hostel/shared/dto"
	"hostel/shared/model"
	"hostel/shared/repository"
	"testing"

	"github.com/stretchr/testify/assert"
)

type bed struct {
	ID   string `db:"id"`
	Room string `db:"room"`
	Note string
	model.Metadata
}

func newRepository() repository.Repository[bed] {
	return repository.NewRepository[bed]("bed", "beds", "id", nil, mocks.NewOtel())
}

func TestRepository_InsertQuery(t *testing.T) {
	repo := newRepository()

	assert.Equal(t,
		"INSERT INTO beds (id, room, created_at, modified_at, created_by, modified_by) VALUES (:id, :room, :created_at, :modified_at, :created_by, :modified_by)",
		repo.InsertQuery(),
	)
}

func TestRepository_SelectColumns(t *testing.T) {
	repo := newRepository()

	assert.Equal(t, "beds.id, beds.room, beds.created_at, beds.modified_at, beds.created_by, beds.modified_by", repo.SelectColumns())
	assert.Equal(t, "beds.room", repo.SelectColumns("room"))
}

func TestRepository_ExistQuery(t *testing.T) {
	repo := newRepository()

	where, _ := repo.BuildWhereClause(dto.FilterGroup{
		Filters: []any{dto.Filter{Field: "id", Value: "b-1", Operator: dto.FilterOperatorEq, Table: "beds"}},
	})

	assert.Equal(t, "SELECT EXISTS(SELECT 1 FROM beds WHERE (beds.id = :id))", repo.ExistQuery(where))
}

func TestRepository_BuildWhereClause(t *testing.T) {
	repo := newRepository()

	where, args := repo.BuildWhereClause(dto.FilterGroup{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = repo.BuildWhereClause(dto.FilterGroup{
		Filters: []any{dto.Filter{Field: "room", Value: "Dorm 101", Operator: dto.FilterOperatorEq}},
	})
	assert.Equal(t, " WHERE (room = :room)", where)
	assert.Equal(t, map[string]any{"room": "Dorm 101"}, args)
}
