package model

import (
	"errors"
	"fmt"
	"slices"
)

type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusMaintenance RoomStatus = "maintenance"
	RoomStatusCleaning    RoomStatus = "cleaning"
)

// Room is one bookable room and the ordered identifiers of its beds.
type Room struct {
	ID       string     `yaml:"id"`
	Type     string     `yaml:"type"`
	Capacity int        `yaml:"capacity"`
	Status   RoomStatus `yaml:"status"`
	Beds     []string   `yaml:"beds"`
}

func (r Room) HasBed(bed string) bool {
	return slices.Contains(r.Beds, bed)
}

// Inventory is the read-only room and bed configuration of the hostel.
type Inventory struct {
	rooms []Room
	index map[string]int
}

// NewInventory checks the rooms for duplicate ids and beds and indexes them in the given order.
func NewInventory(rooms []Room) (Inventory, error) {
	inv := Inventory{
		rooms: make([]Room, 0, len(rooms)),
		index: make(map[string]int, len(rooms)),
	}

	for _, room := range rooms {
		if room.ID == "" {
			return Inventory{}, errors.New("room without id")
		}

		if _, ok := inv.index[room.ID]; ok {
			return Inventory{}, fmt.Errorf("duplicate room %q", room.ID)
		}

		seen := make(map[string]struct{}, len(room.Beds))
		for _, bed := range room.Beds {
			if _, ok := seen[bed]; ok || bed == "" {
				return Inventory{}, fmt.Errorf("room %q has an empty or duplicate bed %q", room.ID, bed)
			}

			seen[bed] = struct{}{}
		}

		if room.Capacity <= 0 {
			room.Capacity = len(room.Beds)
		}

		if room.Status == "" {
			room.Status = RoomStatusAvailable
		}

		room.Beds = slices.Clone(room.Beds)
		inv.index[room.ID] = len(inv.rooms)
		inv.rooms = append(inv.rooms, room)
	}

	return inv, nil
}

// Rooms returns a copy of the rooms in configuration order.
func (inv Inventory) Rooms() []Room {
	rooms := make([]Room, len(inv.rooms))
	for i, room := range inv.rooms {
		room.Beds = slices.Clone(room.Beds)
		rooms[i] = room
	}

	return rooms
}

func (inv Inventory) Room(id string) (Room, bool) {
	idx, ok := inv.index[id]
	if !ok {
		return Room{}, false
	}

	room := inv.rooms[idx]
	room.Beds = slices.Clone(room.Beds)

	return room, true
}

func (inv Inventory) HasRoom(id string) bool {
	_, ok := inv.index[id]

	return ok
}

func (inv Inventory) HasBed(room, bed string) bool {
	idx, ok := inv.index[room]

	return ok && inv.rooms[idx].HasBed(bed)
}

// TotalBeds is the number of beds across every room.
func (inv Inventory) TotalBeds() int {
	total := 0
	for _, room := range inv.rooms {
		total += len(room.Beds)
	}

	return total
}
