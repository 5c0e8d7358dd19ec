// Package validation turns raw guest form values into a typed guest record.
package validation

import (
	"fmt"
	"hostel/internal/domains/guest/model"
	"hostel/internal/domains/guest/model/dto"
	inventory "hostel/internal/domains/inventory/model"
	"hostel/shared/failure"
	"hostel/shared/timezone"
	"hostel/shared/validator"
	"strings"
	"time"
)

const absentMarker = "-"

const invalidDateMessage = "%s must be a valid date (YYYY-MM-DD)"

// optional trims value and reports absence for empty input and the "-" placeholder.
func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" || value == absentMarker {
		return nil
	}

	return &value
}

// Validate checks every rule and reports all failures at once. The returned guest is only
// meaningful when the error list is empty; it never carries an id.
func Validate(input dto.CreateGuestRequest, inv inventory.Inventory) (model.Guest, failure.ValidationErrors) {
	var errs failure.ValidationErrors

	name := strings.TrimSpace(input.Name)
	if name == "" {
		errs.Add(model.FieldName, "name required")
	}

	room := strings.TrimSpace(input.Room)
	roomKnown := false

	switch {
	case room == "":
		errs.Add(model.FieldRoom, "room required")
	case !inv.HasRoom(room):
		errs.Add(model.FieldRoom, fmt.Sprintf("room %q not found", room))
	default:
		roomKnown = true
	}

	bed := optional(input.Bed)
	if bed != nil && roomKnown && !inv.HasBed(room, *bed) {
		errs.Add(model.FieldBed, fmt.Sprintf("bed %q does not belong to room %q", *bed, room))
	}

	var checkIn time.Time

	checkInValid := false

	switch value := strings.TrimSpace(input.CheckIn); {
	case value == "":
		errs.Add(model.FieldCheckIn, "check_in required")
	default:
		parsed, err := timezone.ParseDate(value)
		if err != nil {
			errs.Add(model.FieldCheckIn, fmt.Sprintf(invalidDateMessage, model.FieldCheckIn))
		} else {
			checkIn, checkInValid = parsed, true
		}
	}

	var checkOut *time.Time

	if value := optional(input.CheckOut); value != nil {
		parsed, err := timezone.ParseDate(*value)

		switch {
		case err != nil:
			errs.Add(model.FieldCheckOut, fmt.Sprintf(invalidDateMessage, model.FieldCheckOut))
		case checkInValid && !parsed.After(checkIn):
			errs.Add(model.FieldCheckOut, "check_out must be after check_in")
		default:
			checkOut = &parsed
		}
	}

	email := optional(input.Email)
	if email != nil && !validator.IsEmail(*email) {
		errs.Add(model.FieldEmail, "email must be a valid email address")
	}

	status := model.StatusReserved
	if value := strings.TrimSpace(input.Status); value != "" {
		status = model.Status(value)
		if !status.Valid() {
			errs.Add(model.FieldStatus, fmt.Sprintf("status must be one of %s, %s, %s",
				model.StatusReserved, model.StatusCheckedIn, model.StatusCheckedOut))
		}
	}

	if len(errs) > 0 {
		return model.Guest{}, errs
	}

	return model.Guest{
		Name:     name,
		Email:    email,
		Phone:    optional(input.Phone),
		Country:  optional(input.Country),
		Room:     room,
		Bed:      bed,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Status:   status,
	}, nil
}

// ToRequest renders a guest back into form values.
func ToRequest(guest model.Guest) dto.CreateGuestRequest {
	value := func(field *string) string {
		if field == nil {
			return ""
		}

		return *field
	}

	req := dto.CreateGuestRequest{
		Name:    guest.Name,
		Email:   value(guest.Email),
		Phone:   value(guest.Phone),
		Country: value(guest.Country),
		Room:    guest.Room,
		Bed:     value(guest.Bed),
		CheckIn: timezone.FormatDate(guest.CheckIn),
		Status:  string(guest.Status),
	}

	if guest.CheckOut != nil {
		req.CheckOut = timezone.FormatDate(*guest.CheckOut)
	}

	return req
}
