package dto

import (
	"hostel/internal/domains/guest/model"
	"hostel/internal/domains/guest/occupancy"
	gDto "hostel/shared/dto"
	"hostel/shared/timezone"
)

// CreateGuestRequest carries raw form values. Every field is free text until validated.
type CreateGuestRequest struct {
	Name     string `json:"name"      validate:"max=100"`
	Email    string `json:"email"     validate:"max=254"`
	Phone    string `json:"phone"     validate:"max=32"`
	Country  string `json:"country"   validate:"max=64"`
	Room     string `json:"room"      validate:"max=64"`
	Bed      string `json:"bed"       validate:"max=16"`
	CheckIn  string `json:"check_in"  validate:"max=32"`
	CheckOut string `json:"check_out" validate:"max=32"`
	Status   string `json:"status"    validate:"max=16"`
}

// UpdateFormRequest patches an open form. Nil fields keep their current value.
type UpdateFormRequest struct {
	Name     *string `json:"name"      validate:"omitempty,max=100"`
	Email    *string `json:"email"     validate:"omitempty,max=254"`
	Phone    *string `json:"phone"     validate:"omitempty,max=32"`
	Country  *string `json:"country"   validate:"omitempty,max=64"`
	Room     *string `json:"room"      validate:"omitempty,max=64"`
	Bed      *string `json:"bed"       validate:"omitempty,max=16"`
	CheckIn  *string `json:"check_in"  validate:"omitempty,max=32"`
	CheckOut *string `json:"check_out" validate:"omitempty,max=32"`
	Status   *string `json:"status"    validate:"omitempty,max=16"`
}

func (u UpdateFormRequest) Apply(values CreateGuestRequest) CreateGuestRequest {
	patch := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	patch(&values.Name, u.Name)
	patch(&values.Email, u.Email)
	patch(&values.Phone, u.Phone)
	patch(&values.Country, u.Country)
	patch(&values.Room, u.Room)
	patch(&values.Bed, u.Bed)
	patch(&values.CheckIn, u.CheckIn)
	patch(&values.CheckOut, u.CheckOut)
	patch(&values.Status, u.Status)

	return values
}

type ListGuestsRequest struct {
	Tab   string
	Query string
	gDto.QueryParams
}

type GuestResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Country  *string `json:"country"`
	Room     string  `json:"room"`
	Bed      *string `json:"bed"`
	CheckIn  string  `json:"check_in"`
	CheckOut *string `json:"check_out"`
	Status   string  `json:"status"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(guest model.Guest) {
	r.ID = guest.ID
	r.Name = guest.Name
	r.Email = guest.Email
	r.Phone = guest.Phone
	r.Country = guest.Country
	r.Room = guest.Room
	r.Bed = guest.Bed
	r.CheckIn = timezone.FormatDate(guest.CheckIn)
	r.Status = string(guest.Status)
	r.CheckOut = nil

	if guest.CheckOut != nil {
		checkOut := timezone.FormatDate(*guest.CheckOut)
		r.CheckOut = &checkOut
	}

	r.Metadata.FromModel(guest.Metadata)
}

type TabCountsResponse struct {
	Current  int `json:"current"`
	Upcoming int `json:"upcoming"`
	History  int `json:"history"`
	All      int `json:"all"`
}

func (r *TabCountsResponse) FromCounts(counts occupancy.TabCounts) {
	r.Current = counts.Current
	r.Upcoming = counts.Upcoming
	r.History = counts.History
	r.All = counts.All
}

type GetGuestsResponse struct {
	Guests []GuestResponse   `json:"guests"`
	Tab    string            `json:"tab"`
	Query  string            `json:"query"`
	Total  int               `json:"total"`
	Page   int               `json:"page,omitempty"`
	Limit  int               `json:"limit,omitempty"`
	Counts TabCountsResponse `json:"counts"`
}

// FromModels maps one page of guests. Total counts every guest matching tab and query.
func (r *GetGuestsResponse) FromModels(guests []model.Guest, total int, tab occupancy.Tab, query string, counts occupancy.TabCounts) {
	r.Tab = string(tab)
	r.Query = query
	r.Total = total
	r.Counts.FromCounts(counts)

	r.Guests = make([]GuestResponse, len(guests))
	for i, guest := range guests {
		r.Guests[i].FromModel(guest)
	}
}

type CountryCountResponse struct {
	Country string `json:"country"`
	Count   int    `json:"count"`
}

type StayStatsResponse struct {
	Average float64 `json:"average"`
	Min     int     `json:"min"`
	Max     int     `json:"max"`
}

type BedResponse struct {
	Bed       string  `json:"bed"`
	Occupied  bool    `json:"occupied"`
	GuestID   *string `json:"guest_id"`
	GuestName *string `json:"guest_name"`
}

type RoomOccupancyResponse struct {
	Room     string        `json:"room"`
	Type     string        `json:"type"`
	Status   string        `json:"status"`
	Capacity int           `json:"capacity"`
	Occupied int           `json:"occupied"`
	Rate     int           `json:"rate"`
	Beds     []BedResponse `json:"beds"`
}

func (r *RoomOccupancyResponse) FromOccupancy(room occupancy.Room) {
	r.Room = room.Room
	r.Type = room.Type
	r.Status = room.Status
	r.Capacity = room.Capacity
	r.Occupied = room.Occupied
	r.Rate = room.Rate

	r.Beds = make([]BedResponse, len(room.Beds))
	for i, bed := range room.Beds {
		r.Beds[i] = BedResponse{Bed: bed.Bed}

		if bed.Occupant != nil {
			id, name := bed.Occupant.ID, bed.Occupant.Name
			r.Beds[i].Occupied = true
			r.Beds[i].GuestID = &id
			r.Beds[i].GuestName = &name
		}
	}
}

type StatsResponse struct {
	OccupancyRate int                     `json:"occupancy_rate"`
	TotalBeds     int                     `json:"total_beds"`
	Countries     []CountryCountResponse  `json:"countries"`
	Stay          StayStatsResponse       `json:"stay"`
	Counts        TabCountsResponse       `json:"counts"`
	Rooms         []RoomOccupancyResponse `json:"rooms"`
	GeneratedAt   string                  `json:"generated_at"`
}

func (r *StatsResponse) FromSummary(summary occupancy.Summary) {
	r.OccupancyRate = summary.OccupancyRate
	r.TotalBeds = summary.TotalBeds
	r.Stay = StayStatsResponse(summary.Stay)
	r.Counts.FromCounts(summary.Counts)

	r.Countries = make([]CountryCountResponse, len(summary.Countries))
	for i, country := range summary.Countries {
		r.Countries[i] = CountryCountResponse(country)
	}

	r.Rooms = make([]RoomOccupancyResponse, len(summary.Rooms))
	for i, room := range summary.Rooms {
		r.Rooms[i].FromOccupancy(room)
	}
}

type FormResponse struct {
	ID          string               `json:"id"`
	Values      CreateGuestRequest   `json:"values"`
	Errors      []FieldErrorResponse `json:"errors"`
	Submitting  bool                 `json:"submitting"`
	SubmitError *string              `json:"submit_error"`
	Created     *GuestResponse       `json:"created"`
}

type FieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
