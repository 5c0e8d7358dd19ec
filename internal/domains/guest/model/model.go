package model

import (
	"hostel/shared/model"
	"time"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID       = "id"
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldCountry  = "country"
	FieldRoom     = "room"
	FieldBed      = "bed"
	FieldCheckIn  = "check_in"
	FieldCheckOut = "check_out"
	FieldStatus   = "status"
)

type Status string

const (
	StatusReserved   Status = "reserved"
	StatusCheckedIn  Status = "checked-in"
	StatusCheckedOut Status = "checked-out"
)

// Statuses lists every recognized status in lifecycle order.
var Statuses = []Status{StatusReserved, StatusCheckedIn, StatusCheckedOut}

func (s Status) Valid() bool {
	switch s {
	case StatusReserved, StatusCheckedIn, StatusCheckedOut:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether staff may move a guest from s to next.
func (s Status) CanTransitionTo(next Status) bool {
	return (s == StatusReserved && next == StatusCheckedIn) ||
		(s == StatusCheckedIn && next == StatusCheckedOut)
}

// Guest is one stay. Optional fields are nil when absent. Dates are calendar dates at midnight UTC.
type Guest struct {
	ID       string     `db:"id"        json:"id"`
	Name     string     `db:"name"      json:"name"`
	Email    *string    `db:"email"     json:"email,omitempty"`
	Phone    *string    `db:"phone"     json:"phone,omitempty"`
	Country  *string    `db:"country"   json:"country,omitempty"`
	Room     string     `db:"room"      json:"room"`
	Bed      *string    `db:"bed"       json:"bed,omitempty"`
	CheckIn  time.Time  `db:"check_in"  json:"check_in"`
	CheckOut *time.Time `db:"check_out" json:"check_out,omitempty"`
	Status   Status     `db:"status"    json:"status"`
	model.Metadata
}

// HoldsBed reports whether the guest currently occupies room/bed.
func (g Guest) HoldsBed(room, bed string) bool {
	return g.Status == StatusCheckedIn && g.Room == room && g.Bed != nil && *g.Bed == bed
}

func (g Guest) CountryOrEmpty() string {
	if g.Country == nil {
		return ""
	}

	return *g.Country
}

func (g Guest) EmailOrEmpty() string {
	if g.Email == nil {
		return ""
	}

	return *g.Email
}
