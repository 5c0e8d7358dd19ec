// Package form drives a guest intake form from raw values to a persisted guest.
package form

import (
	"context"
	"errors"
	"fmt"
	"hostel/internal/domains/guest/model"
	"hostel/internal/domains/guest/model/dto"
	"hostel/internal/domains/guest/validation"
	inventory "hostel/internal/domains/inventory/model"
	"hostel/shared/failure"
	"net/http"
	"sync"
)

// ErrSubmitInProgress rejects a submit while an earlier one on the same form is pending.
var ErrSubmitInProgress = errors.New("guest form is already being submitted")

// SubmissionError wraps a failed create. The form keeps its values so the caller can retry.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return e.Err.Error()
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// StatusCode keeps a more specific upstream status and falls back to 502.
func (e *SubmissionError) StatusCode() int {
	var coder failure.StatusCoder
	if errors.As(e.Err, &coder) {
		return coder.StatusCode()
	}

	return http.StatusBadGateway
}

// Store is the persistence the form needs.
type Store interface {
	Create(ctx context.Context, guest model.Guest) (model.Guest, error)
	FindOccupant(ctx context.Context, room, bed string) (*model.Guest, error)
}

// State is a snapshot of the form. Controllers replace it on every transition and never mutate
// a published value.
type State struct {
	ID          string
	Values      dto.CreateGuestRequest
	Errors      failure.ValidationErrors
	Submitting  bool
	SubmitError error
	Created     *model.Guest
}

type Option func(*Controller)

// WithOnChange registers the callback that receives every new State.
func WithOnChange(fn func(State)) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// WithOnSuccess registers the callback invoked with each created guest.
func WithOnSuccess(fn func(context.Context, model.Guest)) Option {
	return func(c *Controller) {
		c.onSuccess = fn
	}
}

type Controller struct {
	mu        sync.Mutex
	state     State
	store     Store
	inventory inventory.Inventory
	onChange  func(State)
	onSuccess func(context.Context, model.Guest)
}

func NewController(id string, store Store, inv inventory.Inventory, opts ...Option) *Controller {
	c := &Controller{
		state:     State{ID: id},
		store:     store,
		inventory: inv,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snapshot()
}

func (c *Controller) snapshot() State {
	state := c.state
	state.Errors = append(failure.ValidationErrors(nil), c.state.Errors...)

	return state
}

// transition replaces the state under the lock and returns the published copy.
func (c *Controller) transition(fn func(State) State) State {
	c.mu.Lock()
	c.state = fn(c.state)
	state := c.snapshot()
	c.mu.Unlock()

	if c.onChange != nil {
		c.onChange(state)
	}

	return state
}

// SetValues replaces the form values. It is ignored while a submit is pending.
func (c *Controller) SetValues(values dto.CreateGuestRequest) (State, error) {
	var rejected bool

	state := c.transition(func(s State) State {
		if s.Submitting {
			rejected = true

			return s
		}

		return State{ID: s.ID, Values: values}
	})

	if rejected {
		return state, ErrSubmitInProgress
	}

	return state, nil
}

// Reset clears values, errors and the last result.
func (c *Controller) Reset() State {
	return c.transition(func(s State) State {
		if s.Submitting {
			return s
		}

		return State{ID: s.ID}
	})
}

// begin reports done when the current values already produced a guest.
func (c *Controller) begin() (guest model.Guest, done bool, err error) {
	c.mu.Lock()

	if c.state.Submitting {
		c.mu.Unlock()

		return model.Guest{}, false, ErrSubmitInProgress
	}

	if c.state.Created != nil {
		created := *c.state.Created
		c.mu.Unlock()

		return created, true, nil
	}

	guest, errs := validation.Validate(c.state.Values, c.inventory)

	next := c.state
	next.Errors = errs
	next.SubmitError = nil
	next.Submitting = len(errs) == 0
	c.state = next
	state := c.snapshot()
	c.mu.Unlock()

	if c.onChange != nil {
		c.onChange(state)
	}

	if len(errs) > 0 {
		return model.Guest{}, false, errs
	}

	return guest, false, nil
}

// Submit validates the current values and creates the guest. Validation failures are returned
// as failure.ValidationErrors before any store call; store failures as *SubmissionError.
// Once a guest is created, Submit returns it again until the values change.
func (c *Controller) Submit(ctx context.Context) (model.Guest, error) {
	guest, done, err := c.begin()
	if err != nil {
		return model.Guest{}, err
	}

	if done {
		return guest, nil
	}

	if errs, err := c.checkBed(ctx, guest); err != nil || len(errs) > 0 {
		return model.Guest{}, c.fail(errs, err)
	}

	created, err := c.store.Create(ctx, guest)
	if err != nil {
		return model.Guest{}, c.fail(nil, err)
	}

	c.transition(func(s State) State {
		return State{ID: s.ID, Created: &created}
	})

	if c.onSuccess != nil {
		c.onSuccess(ctx, created)
	}

	return created, nil
}

// checkBed rejects a checked-in guest on a bed another checked-in guest already holds.
func (c *Controller) checkBed(ctx context.Context, guest model.Guest) (failure.ValidationErrors, error) {
	if guest.Status != model.StatusCheckedIn || guest.Bed == nil {
		return nil, nil
	}

	occupant, err := c.store.FindOccupant(ctx, guest.Room, *guest.Bed)
	if err != nil {
		return nil, err
	}

	if occupant == nil {
		return nil, nil
	}

	var errs failure.ValidationErrors
	errs.Add(model.FieldBed, fmt.Sprintf("bed %q in room %q is occupied by %s", *guest.Bed, guest.Room, occupant.Name))

	return errs, nil
}

// fail ends a pending submit, keeping the values.
func (c *Controller) fail(errs failure.ValidationErrors, cause error) error {
	var result error
	if cause != nil {
		result = &SubmissionError{Err: cause}
	} else {
		result = errs
	}

	c.transition(func(s State) State {
		s.Submitting = false
		s.Errors = errs

		if cause != nil {
			s.SubmitError = result
		}

		return s
	})

	return result
}
