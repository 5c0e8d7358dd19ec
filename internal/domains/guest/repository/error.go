package repository

import (
	"errors"
	"fmt"
	"hostel/shared/constant"
	gRepo "hostel/shared/repository"
	"net/http"

	"github.com/lib/pq"
)

type ErrorKind int

const (
	KindUnavailable ErrorKind = iota
	KindNotFound
	KindConflict
	KindConstraint
)

// ErrStaleStatus is reported when a status update finds the guest no longer in the expected state.
var ErrStaleStatus = errors.New("guest status changed concurrently")

// Error is every failure returned by the guest repository.
type Error struct {
	Op   string
	Kind ErrorKind
	Err  error
}

// NewError classifies err raised during op.
func NewError(op string, err error) *Error {
	repoErr := &Error{Op: op, Kind: KindUnavailable, Err: err}

	var pqErr *pq.Error

	switch {
	case errors.Is(err, gRepo.ErrNotFound):
		repoErr.Kind = KindNotFound
	case errors.Is(err, ErrStaleStatus):
		repoErr.Kind = KindConflict
	case errors.As(err, &pqErr):
		switch string(pqErr.Code) {
		case constant.PqErrorCodeUniqueViolation:
			repoErr.Kind = KindConflict
		case constant.PqErrorCodeCheckViolation, constant.PqErrorCodeFkViolation:
			repoErr.Kind = KindConstraint
		}
	}

	return repoErr
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return "guest not found"
	case KindConflict:
		if errors.Is(e.Err, ErrStaleStatus) {
			return ErrStaleStatus.Error()
		}

		return "bed is already held by a checked-in guest"
	default:
		return fmt.Sprintf("failed to %s guest: %v", e.Op, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}

func IsNotFound(err error) bool {
	var repoErr *Error

	return errors.As(err, &repoErr) && repoErr.Kind == KindNotFound
}

func IsConflict(err error) bool {
	var repoErr *Error

	return errors.As(err, &repoErr) && repoErr.Kind == KindConflict
}
