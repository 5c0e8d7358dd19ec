package dto

import "hostel/internal/domains/inventory/model"

type RoomResponse struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Capacity int      `json:"capacity"`
	Status   string   `json:"status"`
	Beds     []string `json:"beds"`
}

func (r *RoomResponse) FromModel(room model.Room) {
	r.ID = room.ID
	r.Type = room.Type
	r.Capacity = room.Capacity
	r.Status = string(room.Status)
	r.Beds = append([]string{}, room.Beds...)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalBeds int            `json:"total_beds"`
}

func (r *GetRoomsResponse) FromModels(rooms []model.Room) {
	r.Rooms = make([]RoomResponse, len(rooms))
	r.TotalBeds = 0

	for i, room := range rooms {
		r.Rooms[i].FromModel(room)
		r.TotalBeds += len(room.Beds)
	}
}
