package validation_test

import (
	"hostel/internal/domains/guest/model"
	"hostel/internal/domains/guest/model/dto"
	"hostel/internal/domains/guest/validation"
	inventory "hostel/internal/domains/inventory/model"
	"hostel/shared/failure"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newInventory(t *testing.T) inventory.Inventory {
	t.Helper()

	inv, err := inventory.NewInventory([]inventory.Room{
		{ID: "Dorm 101", Type: "Dorm", Capacity: 6, Beds: []string{"A", "B", "C", "D", "E", "F"}},
		{ID: "Private 201", Type: "Private", Capacity: 2, Beds: []string{"A"}},
	})
	assert.NoError(t, err)

	return inv
}

func fields(errs failure.ValidationErrors) []string {
	result := make([]string, len(errs))
	for i, fieldErr := range errs {
		result[i] = fieldErr.Field
	}

	return result
}

func TestValidate_MissingName(t *testing.T) {
	_, errs := validation.Validate(dto.CreateGuestRequest{Name: "", Room: "Dorm 101", CheckIn: "2023-07-01"}, newInventory(t))

	assert.Equal(t, failure.ValidationErrors{{Field: "name", Message: "name required"}}, errs)
}

func TestValidate_RequiredFields(t *testing.T) {
	valid := dto.CreateGuestRequest{Name: "John Smith", Room: "Dorm 101", CheckIn: "2023-07-01"}

	tests := []struct {
		name  string
		patch func(*dto.CreateGuestRequest)
		field string
	}{
		{name: "name", patch: func(r *dto.CreateGuestRequest) { r.Name = "   " }, field: "name"},
		{name: "room", patch: func(r *dto.CreateGuestRequest) { r.Room = "" }, field: "room"},
		{name: "check_in", patch: func(r *dto.CreateGuestRequest) { r.CheckIn = "" }, field: "check_in"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.patch(&req)

			_, errs := validation.Validate(req, newInventory(t))
			assert.Equal(t, []string{tt.field}, fields(errs))
			assert.Equal(t, tt.field+" required", errs[0].Message)
		})
	}
}

func TestValidate_CollectsAllInOrder(t *testing.T) {
	guest, errs := validation.Validate(dto.CreateGuestRequest{
		Room:     "Dorm 101",
		Bed:      "Z",
		CheckIn:  "2023-07-05",
		CheckOut: "2023-07-01",
		Email:    "not-an-email",
		Status:   "cancelled",
	}, newInventory(t))

	assert.Equal(t, model.Guest{}, guest)
	assert.Equal(t, []string{"name", "bed", "check_out", "email", "status"}, fields(errs))
	assert.Equal(t, `bed "Z" does not belong to room "Dorm 101"`, errs[1].Message)
	assert.Equal(t, "check_out must be after check_in", errs[2].Message)
	assert.Equal(t, "email must be a valid email address", errs[3].Message)
	assert.Equal(t, "status must be one of reserved, checked-in, checked-out", errs[4].Message)
}

func TestValidate_Room(t *testing.T) {
	_, errs := validation.Validate(dto.CreateGuestRequest{Name: "John", Room: "Dorm 999", Bed: "A", CheckIn: "2023-07-01"}, newInventory(t))

	assert.Equal(t, failure.ValidationErrors{{Field: "room", Message: `room "Dorm 999" not found`}}, errs)
}

func TestValidate_Dates(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     []string
	}{
		{name: "no check out", checkIn: "2023-07-01", want: []string{}},
		{name: "check out after check in", checkIn: "2023-07-01", checkOut: "2023-07-02", want: []string{}},
		{name: "same day", checkIn: "2023-07-01", checkOut: "2023-07-01", want: []string{"check_out"}},
		{name: "check out before", checkIn: "2023-07-03", checkOut: "2023-07-01", want: []string{"check_out"}},
		{name: "invalid check in", checkIn: "2023-02-30", want: []string{"check_in"}},
		{name: "wrong layout", checkIn: "07/01/2023", want: []string{"check_in"}},
		{name: "invalid check out", checkIn: "2023-07-01", checkOut: "soon", want: []string{"check_out"}},
		{name: "invalid check in skips order", checkIn: "bad", checkOut: "2023-07-01", want: []string{"check_in"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := validation.Validate(dto.CreateGuestRequest{
				Name:     "John",
				Room:     "Dorm 101",
				CheckIn:  tt.checkIn,
				CheckOut: tt.checkOut,
			}, newInventory(t))

			assert.Equal(t, tt.want, fields(errs))
		})
	}

	_, errs := validation.Validate(dto.CreateGuestRequest{Name: "John", Room: "Dorm 101", CheckIn: "2023-13-01"}, newInventory(t))
	assert.EqualError(t, errs, "check_in must be a valid date (YYYY-MM-DD)")
}

func TestValidate_Normalizes(t *testing.T) {
	guest, errs := validation.Validate(dto.CreateGuestRequest{
		Name:     "  Maria Garcia ",
		Email:    " maria@example.com ",
		Phone:    "",
		Country:  "-",
		Room:     " Dorm 101",
		Bed:      "-",
		CheckIn:  "2023-07-02",
		CheckOut: "2023-07-06",
		Status:   " checked-in ",
	}, newInventory(t))

	assert.Empty(t, errs)
	assert.Equal(t, "Maria Garcia", guest.Name)
	assert.Equal(t, "maria@example.com", *guest.Email)
	assert.Nil(t, guest.Phone)
	assert.Nil(t, guest.Country)
	assert.Nil(t, guest.Bed)
	assert.Equal(t, "Dorm 101", guest.Room)
	assert.Equal(t, time.Date(2023, 7, 2, 0, 0, 0, 0, time.UTC), guest.CheckIn)
	assert.Equal(t, time.Date(2023, 7, 6, 0, 0, 0, 0, time.UTC), *guest.CheckOut)
	assert.Equal(t, model.StatusCheckedIn, guest.Status)
	assert.Empty(t, guest.ID)
}

func TestValidate_StatusIsCaseSensitive(t *testing.T) {
	tests := []struct {
		name   string
		status string
	}{
		{name: "upper case", status: "CHECKED-IN"},
		{name: "title case", status: "Reserved"},
		{name: "underscore", status: "checked_out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := validation.Validate(dto.CreateGuestRequest{
				Name: "John", Room: "Private 201", Bed: "A", CheckIn: "2023-07-01", Status: tt.status,
			}, newInventory(t))

			assert.True(t, errs.Has(model.FieldStatus))
		})
	}
}

func TestValidate_DefaultStatus(t *testing.T) {
	guest, errs := validation.Validate(dto.CreateGuestRequest{Name: "John", Room: "Private 201", Bed: "A", CheckIn: "2023-07-01"}, newInventory(t))

	assert.Empty(t, errs)
	assert.Equal(t, model.StatusReserved, guest.Status)
	assert.Equal(t, "A", *guest.Bed)
}

func TestToRequest(t *testing.T) {
	req := dto.CreateGuestRequest{
		Name:     "Sophie Chen",
		Email:    "sophie@example.com",
		Phone:    "+65 5555 0101",
		Country:  "Singapore",
		Room:     "Dorm 101",
		Bed:      "C",
		CheckIn:  "2023-07-02",
		CheckOut: "2023-07-06",
		Status:   "checked-in",
	}

	guest, errs := validation.Validate(req, newInventory(t))
	assert.Empty(t, errs)
	assert.Equal(t, req, validation.ToRequest(guest))
}
