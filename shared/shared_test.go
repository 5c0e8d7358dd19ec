package shared_test

import (
	"context"
	"errors"
	"hostel/shared"
	"hostel/shared/cache/mocks"
	"hostel/shared/constant"
	"hostel/shared/dto"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestTransformFields(t *testing.T) {
	type statusUpdate struct {
		Status string  `db:"status"`
		Bed    *string `db:"bed"`
		Note   string
	}

	fields := shared.TransformFields(statusUpdate{Status: "checked-in", Note: "ignored"}, "front-desk")

	assert.Equal(t, "checked-in", fields["status"])
	assert.NotContains(t, fields, "bed")
	assert.NotContains(t, fields, "Note")
	assert.Equal(t, "front-desk", fields[constant.FieldModifiedBy])
	assert.IsType(t, time.Time{}, fields[constant.FieldModifiedAt])
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("g-1", "id", "guests")

	where, args := group.GetWhereClause()

	assert.Equal(t, "(guests.id = :id)", where)
	assert.Equal(t, map[string]any{"id": "g-1"}, args)
	assert.Equal(t, dto.FilterOperatorEq, group.Filters[0].(dto.Filter).Operator)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "guests", shared.BuildCacheKey("guests"))
	assert.Equal(t, "guests:list:all", shared.BuildCacheKey("guests", "list", "all"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	query := url.Values{}
	query.Set("tab", "current")
	query.Set("q", "spa")

	assert.Equal(t, "guests", shared.BuildCacheKeyWithQuery("guests", nil))
	assert.Equal(t, "guests:q=spa:tab=current", shared.BuildCacheKeyWithQuery("guests", query))
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := mocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().Clear(gomock.Any(), "guests*").Return(nil)
	redisCache.EXPECT().Clear(gomock.Any(), "stats*").Return(errors.New("redis down"))

	shared.InvalidateCaches(context.Background(), redisCache, "guests", "stats")
}

func TestStaffFromContext(t *testing.T) {
	assert.Equal(t, constant.DefaultStaff, shared.StaffFromContext(context.Background()))

	ctx := context.WithValue(context.Background(), constant.ContextKeyStaffID, "night-shift")
	assert.Equal(t, "night-shift", shared.StaffFromContext(ctx))
}
