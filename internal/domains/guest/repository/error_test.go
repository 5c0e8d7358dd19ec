package repository_test

import (
	"context"
	"errors"
	"fmt"
	"hostel/internal/domains/guest/repository"
	"hostel/shared/failure"
	gRepo "hostel/shared/repository"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestNewError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		kind    repository.ErrorKind
		code    int
		message string
	}{
		{
			name:    "not found",
			err:     fmt.Errorf("get: %w", gRepo.ErrNotFound),
			kind:    repository.KindNotFound,
			code:    http.StatusNotFound,
			message: "guest not found",
		},
		{
			name:    "unique violation",
			err:     fmt.Errorf("insert: %w", &pq.Error{Code: "23505", Constraint: "guests_checked_in_bed_key"}),
			kind:    repository.KindConflict,
			code:    http.StatusConflict,
			message: "bed is already held by a checked-in guest",
		},
		{
			name:    "stale status",
			err:     repository.ErrStaleStatus,
			kind:    repository.KindConflict,
			code:    http.StatusConflict,
			message: "guest status changed concurrently",
		},
		{
			name:    "check violation",
			err:     &pq.Error{Code: "23514", Message: "violates check constraint"},
			kind:    repository.KindConstraint,
			code:    http.StatusBadGateway,
			message: "failed to create guest: pq: violates check constraint",
		},
		{
			name:    "connection refused",
			err:     errors.New("dial tcp: connection refused"),
			kind:    repository.KindUnavailable,
			code:    http.StatusBadGateway,
			message: "failed to create guest: dial tcp: connection refused",
		},
		{
			name:    "deadline",
			err:     context.DeadlineExceeded,
			kind:    repository.KindUnavailable,
			code:    http.StatusBadGateway,
			message: "failed to create guest: context deadline exceeded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repoErr := repository.NewError("create", tt.err)

			assert.Equal(t, tt.kind, repoErr.Kind)
			assert.Equal(t, tt.code, failure.GetCode(fmt.Errorf("wrapped: %w", repoErr)))
			assert.EqualError(t, repoErr, tt.message)
			assert.ErrorIs(t, repoErr, tt.err)
		})
	}
}

func TestErrorPredicates(t *testing.T) {
	notFound := fmt.Errorf("svc: %w", repository.NewError("get", gRepo.ErrNotFound))
	conflict := repository.NewError("create", &pq.Error{Code: "23505"})

	assert.True(t, repository.IsNotFound(notFound))
	assert.False(t, repository.IsConflict(notFound))
	assert.True(t, repository.IsConflict(conflict))
	assert.False(t, repository.IsNotFound(errors.New("other")))
}
