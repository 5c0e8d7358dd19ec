package model_test

import (
	"hostel/internal/domains/guest/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from model.Status
		to   model.Status
		want bool
	}{
		{from: model.StatusReserved, to: model.StatusCheckedIn, want: true},
		{from: model.StatusCheckedIn, to: model.StatusCheckedOut, want: true},
		{from: model.StatusReserved, to: model.StatusCheckedOut, want: false},
		{from: model.StatusCheckedOut, to: model.StatusCheckedIn, want: false},
		{from: model.StatusCheckedIn, to: model.StatusReserved, want: false},
		{from: model.StatusCheckedIn, to: model.StatusCheckedIn, want: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatus_Valid(t *testing.T) {
	for _, status := range model.Statuses {
		assert.True(t, status.Valid())
	}

	assert.False(t, model.Status("cancelled").Valid())
	assert.False(t, model.Status("").Valid())
}

func TestGuest_HoldsBed(t *testing.T) {
	bed := "A"
	guest := model.Guest{Room: "Dorm 101", Bed: &bed, Status: model.StatusCheckedIn}

	assert.True(t, guest.HoldsBed("Dorm 101", "A"))
	assert.False(t, guest.HoldsBed("Dorm 101", "B"))
	assert.False(t, guest.HoldsBed("Dorm 102", "A"))

	guest.Status = model.StatusReserved
	assert.False(t, guest.HoldsBed("Dorm 101", "A"))

	guest.Status = model.StatusCheckedIn
	guest.Bed = nil
	assert.False(t, guest.HoldsBed("Dorm 101", "A"))
}
