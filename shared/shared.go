package shared

import (
	"context"
	"fmt"
	"hostel/shared/cache"
	"hostel/shared/constant"
	"hostel/shared/dto"
	"hostel/shared/timezone"
	"net/url"
	"reflect"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

// TransformFields converts the non-zero db-tagged fields of a struct into an update map
// and stamps it with the modification audit fields.
func TransformFields(data any, staff string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = staff

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// StaffFromContext returns the staff member recorded by the request middleware.
func StaffFromContext(ctx context.Context) string {
	if staff, ok := ctx.Value(constant.ContextKeyStaffID).(string); ok && staff != "" {
		return staff
	}

	return constant.DefaultStaff
}

// BuildCacheKey joins a prefix and its parts with ':'.
func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return prefix + ":" + strings.Join(parts, ":")
}

// BuildCacheKeyWithQuery appends the query values to the key in a stable order.
func BuildCacheKeyWithQuery(prefix string, query url.Values) string {
	if len(query) == 0 {
		return prefix
	}

	keys := make([]string, 0, len(query))
	for key := range query {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", key, strings.Join(query[key], ",")))
	}

	return BuildCacheKey(prefix, parts...)
}

// InvalidateCaches clears every key under each prefix. Failures are logged only.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefixes ...string) {
	for _, prefix := range prefixes {
		if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
			log.Warn().Err(err).Str("prefix", prefix).Msg("failed to invalidate cache")
		}
	}
}
