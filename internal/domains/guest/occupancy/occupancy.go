// Package occupancy derives summary figures from guest records and the room inventory.
// Every function is pure and ignores the order of its input.
package occupancy

import (
	"hostel/internal/domains/guest/model"
	inventory "hostel/internal/domains/inventory/model"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	"hostel/shared/timezone"
	"math"
	"slices"
	"strings"
	"time"
)

const UnknownCountry = "Unknown"

type Tab string

const (
	TabCurrent  Tab = "current"
	TabUpcoming Tab = "upcoming"
	TabHistory  Tab = "history"
	TabAll      Tab = "all"
)

// ParseTab maps unknown values to TabAll.
func ParseTab(value string) Tab {
	switch tab := Tab(strings.ToLower(strings.TrimSpace(value))); tab {
	case TabCurrent, TabUpcoming, TabHistory:
		return tab
	default:
		return TabAll
	}
}

func (t Tab) status() (model.Status, bool) {
	switch t {
	case TabCurrent:
		return model.StatusCheckedIn, true
	case TabUpcoming:
		return model.StatusReserved, true
	case TabHistory:
		return model.StatusCheckedOut, true
	default:
		return "", false
	}
}

func FilterByTab(guests []model.Guest, tab string) []model.Guest {
	status, ok := ParseTab(tab).status()
	if !ok {
		return slices.Clone(guests)
	}

	filtered := make([]model.Guest, 0, len(guests))
	for _, guest := range guests {
		if guest.Status == status {
			filtered = append(filtered, guest)
		}
	}

	return filtered
}

// FilterBySearch keeps guests whose name, country or email contains query, ignoring case.
func FilterBySearch(guests []model.Guest, query string) []model.Guest {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return slices.Clone(guests)
	}

	filtered := make([]model.Guest, 0, len(guests))
	for _, guest := range guests {
		if strings.Contains(strings.ToLower(guest.Name), needle) ||
			strings.Contains(strings.ToLower(guest.CountryOrEmpty()), needle) ||
			strings.Contains(strings.ToLower(guest.EmailOrEmpty()), needle) {
			filtered = append(filtered, guest)
		}
	}

	return filtered
}

func countStatus(guests []model.Guest, status model.Status) int {
	count := 0
	for _, guest := range guests {
		if guest.Status == status {
			count++
		}
	}

	return count
}

func percent(part, total int) int {
	if total <= 0 {
		return 0
	}

	return int(math.Round(100 * float64(part) / float64(total)))
}

// OccupancyRate is the rounded percentage of totalBeds held by checked-in guests.
func OccupancyRate(guests []model.Guest, totalBeds int) int {
	return percent(countStatus(guests, model.StatusCheckedIn), totalBeds)
}

type CountryCount struct {
	Country string
	Count   int
}

// CountryDistribution counts guests per country, most frequent first with ties by name.
// topN <= 0 returns every country.
func CountryDistribution(guests []model.Guest, topN int) []CountryCount {
	counts := map[string]int{}

	for _, guest := range guests {
		country := strings.TrimSpace(guest.CountryOrEmpty())
		if country == "" {
			country = UnknownCountry
		}

		counts[country]++
	}

	result := make([]CountryCount, 0, len(counts))
	for country, count := range counts {
		result = append(result, CountryCount{Country: country, Count: count})
	}

	slices.SortFunc(result, func(a, b CountryCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}

		return strings.Compare(a.Country, b.Country)
	})

	if topN > 0 && len(result) > topN {
		result = result[:topN]
	}

	return result
}

type StayStats struct {
	Average float64
	Min     int
	Max     int
}

// StayDurationStats aggregates whole-day stays of guests with a check-out after check-in.
func StayDurationStats(guests []model.Guest) StayStats {
	var stats StayStats

	total, count := 0, 0

	for _, guest := range guests {
		if guest.CheckOut == nil || guest.CheckIn.IsZero() || !guest.CheckOut.After(guest.CheckIn) {
			continue
		}

		days := timezone.DaysBetween(guest.CheckIn, *guest.CheckOut)
		if days <= 0 {
			continue
		}

		if count == 0 || days < stats.Min {
			stats.Min = days
		}

		if days > stats.Max {
			stats.Max = days
		}

		total += days
		count++
	}

	if count == 0 {
		return StayStats{}
	}

	stats.Average = math.Round(float64(total)/float64(count)*10) / 10

	return stats
}

type TabCounts struct {
	Current  int
	Upcoming int
	History  int
	All      int
}

func CountTabs(guests []model.Guest) TabCounts {
	return TabCounts{
		Current:  countStatus(guests, model.StatusCheckedIn),
		Upcoming: countStatus(guests, model.StatusReserved),
		History:  countStatus(guests, model.StatusCheckedOut),
		All:      len(guests),
	}
}

type Occupant struct {
	ID   string
	Name string
}

type Bed struct {
	Bed      string
	Occupant *Occupant
}

type Room struct {
	Room     string
	Type     string
	Status   string
	Capacity int
	Occupied int
	Rate     int
	Beds     []Bed
}

// RoomOccupancy reports checked-in guests per room in inventory order. When stale data puts
// two guests on one bed the guest with the smallest id is shown.
func RoomOccupancy(guests []model.Guest, inv inventory.Inventory) []Room {
	occupied := map[string]int{}
	holders := map[string]map[string]Occupant{}

	for _, guest := range guests {
		if guest.Status != model.StatusCheckedIn {
			continue
		}

		occupied[guest.Room]++

		if guest.Bed == nil {
			continue
		}

		beds, ok := holders[guest.Room]
		if !ok {
			beds = map[string]Occupant{}
			holders[guest.Room] = beds
		}

		if current, taken := beds[*guest.Bed]; !taken || guest.ID < current.ID {
			beds[*guest.Bed] = Occupant{ID: guest.ID, Name: guest.Name}
		}
	}

	rooms := inv.Rooms()
	result := make([]Room, len(rooms))

	for i, room := range rooms {
		result[i] = Room{
			Room:     room.ID,
			Type:     room.Type,
			Status:   string(room.Status),
			Capacity: room.Capacity,
			Occupied: occupied[room.ID],
			Rate:     percent(occupied[room.ID], room.Capacity),
			Beds:     make([]Bed, len(room.Beds)),
		}

		for j, bed := range room.Beds {
			result[i].Beds[j] = Bed{Bed: bed}

			if occupant, ok := holders[room.ID][bed]; ok {
				result[i].Beds[j].Occupant = &occupant
			}
		}
	}

	return result
}

// Summary bundles every figure shown on the dashboard.
type Summary struct {
	OccupancyRate int
	TotalBeds     int
	Countries     []CountryCount
	Stay          StayStats
	Counts        TabCounts
	Rooms         []Room
}

func Summarize(guests []model.Guest, inv inventory.Inventory, topCountries int) Summary {
	return Summary{
		OccupancyRate: OccupancyRate(guests, inv.TotalBeds()),
		TotalBeds:     inv.TotalBeds(),
		Countries:     CountryDistribution(guests, topCountries),
		Stay:          StayDurationStats(guests),
		Counts:        CountTabs(guests),
		Rooms:         RoomOccupancy(guests, inv),
	}
}

// SortFields are the guest fields SortGuests accepts.
var SortFields = []string{
	model.FieldName,
	model.FieldCountry,
	model.FieldRoom,
	model.FieldCheckIn,
	model.FieldCheckOut,
	model.FieldStatus,
	constant.FieldCreatedAt,
}

func compareBy(field string) (func(a, b model.Guest) int, bool) {
	switch field {
	case model.FieldName:
		return func(a, b model.Guest) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}, true
	case model.FieldCountry:
		return func(a, b model.Guest) int {
			return strings.Compare(strings.ToLower(a.CountryOrEmpty()), strings.ToLower(b.CountryOrEmpty()))
		}, true
	case model.FieldRoom:
		return func(a, b model.Guest) int { return strings.Compare(a.Room, b.Room) }, true
	case model.FieldCheckIn:
		return func(a, b model.Guest) int { return a.CheckIn.Compare(b.CheckIn) }, true
	case model.FieldCheckOut:
		return func(a, b model.Guest) int { return checkOutOrZero(a).Compare(checkOutOrZero(b)) }, true
	case model.FieldStatus:
		return func(a, b model.Guest) int { return strings.Compare(string(a.Status), string(b.Status)) }, true
	case constant.FieldCreatedAt:
		return func(a, b model.Guest) int { return a.CreatedAt.Compare(b.CreatedAt) }, true
	default:
		return nil, false
	}
}

func checkOutOrZero(guest model.Guest) time.Time {
	if guest.CheckOut == nil {
		return time.Time{}
	}

	return *guest.CheckOut
}

// SortGuests orders guests by field, descending when dir is DESC. Ties fall back to id.
// It reports false for a field outside SortFields.
func SortGuests(guests []model.Guest, field, dir string) ([]model.Guest, bool) {
	compare, ok := compareBy(field)
	if !ok {
		return nil, false
	}

	descending := strings.EqualFold(dir, gDto.SortDirDesc)

	sorted := slices.Clone(guests)
	slices.SortFunc(sorted, func(a, b model.Guest) int {
		result := compare(a, b)
		if descending {
			result = -result
		}

		if result == 0 {
			return strings.Compare(a.ID, b.ID)
		}

		return result
	})

	return sorted, true
}

// Paginate returns one page of guests. Page and limit below 1 return every guest.
func Paginate(guests []model.Guest, page, limit int) []model.Guest {
	if page < 1 || limit < 1 {
		return slices.Clone(guests)
	}

	start := (page - 1) * limit
	if start >= len(guests) {
		return []model.Guest{}
	}

	return slices.Clone(guests[start:min(start+limit, len(guests))])
}
