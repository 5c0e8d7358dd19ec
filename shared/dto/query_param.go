package dto

import (
	"hostel/shared/constant"
	"hostel/shared/failure"
	"net/http"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams controls ordering and paging of repository reads. Zero Page and Limit
// read everything.
type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty,gte=0"`
	Limit   int    `json:"limit"    validate:"omitempty,gte=0"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest reads page, limit, sort_by and sort_dir from the query string.
// Paging stays off unless page or limit is given; the missing one then takes its default.
// A sort_by without sort_dir sorts in the default direction.
func (q *QueryParams) FromRequest(r *http.Request) error {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		pageInt, err := strconv.Atoi(page)
		if err != nil || pageInt < 1 {
			return failure.InvalidPageParam
		}

		q.Page = pageInt
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		limitInt, err := strconv.Atoi(limit)
		if err != nil || limitInt < 1 {
			return failure.InvalidLimitParam
		}

		q.Limit = limitInt
	}

	if q.Page > 0 && q.Limit == 0 {
		q.Limit = constant.DefaultValueLimit
	}

	if q.Limit > 0 && q.Page == 0 {
		q.Page = constant.DefaultValuePage
	}

	q.SortBy = strings.TrimSpace(queryParams.Get(constant.RequestParamSortBy))

	switch sortDir := strings.ToUpper(strings.TrimSpace(queryParams.Get(constant.RequestParamSortDir))); sortDir {
	case SortDirAsc, SortDirDesc:
		q.SortDir = sortDir
	case "":
		if q.SortBy != "" {
			q.SortDir = constant.DefaultValueSortDir
		}
	default:
		return failure.BadRequestFromString("invalid sort_dir parameter")
	}

	return nil
}
