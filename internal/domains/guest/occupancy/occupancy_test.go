package occupancy_test

import (
	"hostel/internal/domains/guest/model"
	"hostel/internal/domains/guest/occupancy"
	inventory "hostel/internal/domains/inventory/model"
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](value T) *T {
	return &value
}

func date(value string) time.Time {
	parsed, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}

	return parsed
}

func guest(id, name string, status model.Status) model.Guest {
	return model.Guest{ID: id, Name: name, Room: "Dorm 101", Status: status, CheckIn: date("2023-07-01")}
}

func withCountry(g model.Guest, country string) model.Guest {
	g.Country = ptr(country)

	return g
}

func TestOccupancyRate(t *testing.T) {
	guests := []model.Guest{
		guest("1", "John Smith", model.StatusCheckedIn),
		guest("2", "Maria Garcia", model.StatusCheckedIn),
		guest("3", "Ahmed Hassan", model.StatusReserved),
	}

	assert.Equal(t, 20, occupancy.OccupancyRate(guests, 10))
	assert.Equal(t, 0, occupancy.OccupancyRate(guests, 0))
	assert.Equal(t, 0, occupancy.OccupancyRate(nil, 0))
	assert.Equal(t, 67, occupancy.OccupancyRate(guests, 3))
	assert.Equal(t, 0, occupancy.OccupancyRate(nil, 10))
}

func TestOccupancyRate_Monotonic(t *testing.T) {
	const totalBeds = 7

	var guests []model.Guest

	previous := occupancy.OccupancyRate(guests, totalBeds)
	for i := range 10 {
		guests = append(guests, guest(string(rune('a'+i)), "guest", model.StatusCheckedIn))

		rate := occupancy.OccupancyRate(guests, totalBeds)
		assert.GreaterOrEqual(t, rate, previous)

		previous = rate
	}
}

func TestFilterByTab(t *testing.T) {
	guests := []model.Guest{
		guest("1", "John Smith", model.StatusCheckedIn),
		guest("2", "Maria Garcia", model.StatusReserved),
		guest("3", "Ahmed Hassan", model.StatusCheckedOut),
		guest("4", "Emma Wilson", model.StatusCheckedIn),
	}

	tests := []struct {
		tab  string
		want []string
	}{
		{tab: "current", want: []string{"1", "4"}},
		{tab: "upcoming", want: []string{"2"}},
		{tab: "history", want: []string{"3"}},
		{tab: " History ", want: []string{"3"}},
		{tab: "all", want: []string{"1", "2", "3", "4"}},
		{tab: "archived", want: []string{"1", "2", "3", "4"}},
		{tab: "", want: []string{"1", "2", "3", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.tab, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(occupancy.FilterByTab(guests, tt.tab)))
		})
	}
}

func TestFilterBySearch(t *testing.T) {
	guests := []model.Guest{
		withCountry(guest("1", "John Smith", model.StatusCheckedIn), "USA"),
		withCountry(guest("2", "Maria Garcia", model.StatusReserved), "Spain"),
		guest("3", "Sophie Chen", model.StatusCheckedOut),
	}
	guests[2].Email = ptr("sophie@spa.example")

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty", query: "", want: []string{"1", "2", "3"}},
		{name: "by name ignoring case", query: "JOHN", want: []string{"1"}},
		{name: "by country or email", query: "spa", want: []string{"2", "3"}},
		{name: "no match", query: "tokyo", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(occupancy.FilterBySearch(guests, tt.query)))
		})
	}
}

func TestCountryDistribution(t *testing.T) {
	guests := []model.Guest{
		withCountry(guest("1", "a", model.StatusCheckedIn), "Spain"),
		withCountry(guest("2", "b", model.StatusCheckedIn), "Spain"),
		withCountry(guest("3", "c", model.StatusCheckedIn), "Germany"),
	}

	assert.Equal(t, []occupancy.CountryCount{{Country: "Spain", Count: 2}, {Country: "Germany", Count: 1}},
		occupancy.CountryDistribution(guests, 2))

	guests = append(guests,
		withCountry(guest("4", "d", model.StatusReserved), "Australia"),
		withCountry(guest("5", "e", model.StatusReserved), ""),
		guest("6", "f", model.StatusReserved),
	)

	assert.Equal(t, []occupancy.CountryCount{
		{Country: "Spain", Count: 2},
		{Country: "Unknown", Count: 2},
		{Country: "Australia", Count: 1},
		{Country: "Germany", Count: 1},
	}, occupancy.CountryDistribution(guests, 0))
}

func TestCountryDistribution_OrderIndependent(t *testing.T) {
	countries := []string{"Spain", "Germany", "USA", "Spain", "India", "USA", "Germany", "Spain", "", "Japan"}

	guests := make([]model.Guest, len(countries))
	for i, country := range countries {
		guests[i] = withCountry(guest(string(rune('a'+i)), "g", model.StatusCheckedIn), country)
	}

	want := occupancy.CountryDistribution(guests, 3)

	rng := rand.New(rand.NewPCG(1, 2))
	for range 20 {
		shuffled := slices.Clone(guests)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		assert.Equal(t, want, occupancy.CountryDistribution(shuffled, 3))
	}
}

func TestStayDurationStats(t *testing.T) {
	stay := func(checkIn, checkOut string) model.Guest {
		g := guest("x", "g", model.StatusCheckedOut)
		g.CheckIn = date(checkIn)
		g.CheckOut = ptr(date(checkOut))

		return g
	}

	guests := []model.Guest{
		stay("2023-07-01", "2023-07-05"),
		stay("2023-07-02", "2023-07-04"),
		stay("2023-06-30", "2023-07-07"),
		stay("2023-07-05", "2023-07-05"),
		stay("2023-07-05", "2023-07-01"),
		guest("y", "no checkout", model.StatusCheckedIn),
	}

	assert.Equal(t, occupancy.StayStats{Average: 4.3, Min: 2, Max: 7}, occupancy.StayDurationStats(guests))
	assert.Equal(t, occupancy.StayStats{}, occupancy.StayDurationStats(nil))
	assert.Equal(t, occupancy.StayStats{}, occupancy.StayDurationStats(guests[3:]))
}

func TestCountTabs(t *testing.T) {
	guests := []model.Guest{
		guest("1", "a", model.StatusCheckedIn),
		guest("2", "b", model.StatusCheckedIn),
		guest("3", "c", model.StatusReserved),
		guest("4", "d", model.StatusCheckedOut),
	}

	assert.Equal(t, occupancy.TabCounts{Current: 2, Upcoming: 1, History: 1, All: 4}, occupancy.CountTabs(guests))
}

func TestRoomOccupancy(t *testing.T) {
	inv, err := inventory.NewInventory([]inventory.Room{
		{ID: "Dorm 101", Type: "Dorm", Capacity: 6, Beds: []string{"A", "B", "C", "D", "E", "F"}},
		{ID: "Private 202", Type: "Private", Capacity: 2, Status: inventory.RoomStatusMaintenance, Beds: []string{"A"}},
	})
	assert.NoError(t, err)

	onBed := func(id, name, bed string, status model.Status) model.Guest {
		g := guest(id, name, status)
		g.Bed = ptr(bed)

		return g
	}

	guests := []model.Guest{
		onBed("g-2", "Maria Garcia", "B", model.StatusCheckedIn),
		onBed("g-3", "Stale Record", "B", model.StatusCheckedIn),
		onBed("g-1", "John Smith", "A", model.StatusCheckedIn),
		onBed("g-4", "Ahmed Hassan", "C", model.StatusReserved),
		guest("g-5", "No Bed", model.StatusCheckedIn),
	}

	rooms := occupancy.RoomOccupancy(guests, inv)
	assert.Len(t, rooms, 2)

	dorm := rooms[0]
	assert.Equal(t, "Dorm 101", dorm.Room)
	assert.Equal(t, 4, dorm.Occupied)
	assert.Equal(t, 67, dorm.Rate)
	assert.Equal(t, &occupancy.Occupant{ID: "g-1", Name: "John Smith"}, dorm.Beds[0].Occupant)
	assert.Equal(t, &occupancy.Occupant{ID: "g-2", Name: "Maria Garcia"}, dorm.Beds[1].Occupant)
	assert.Nil(t, dorm.Beds[2].Occupant)

	private := rooms[1]
	assert.Equal(t, "maintenance", private.Status)
	assert.Zero(t, private.Occupied)
	assert.Zero(t, private.Rate)

	slices.Reverse(guests)
	assert.Equal(t, rooms, occupancy.RoomOccupancy(guests, inv))
}

func TestSummarize(t *testing.T) {
	inv, err := inventory.NewInventory([]inventory.Room{
		{ID: "Dorm 101", Capacity: 10, Beds: []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}},
	})
	assert.NoError(t, err)

	summary := occupancy.Summarize([]model.Guest{
		withCountry(guest("1", "a", model.StatusCheckedIn), "Spain"),
		withCountry(guest("2", "b", model.StatusCheckedIn), "Spain"),
		withCountry(guest("3", "c", model.StatusReserved), "Germany"),
	}, inv, 1)

	assert.Equal(t, 20, summary.OccupancyRate)
	assert.Equal(t, 10, summary.TotalBeds)
	assert.Equal(t, []occupancy.CountryCount{{Country: "Spain", Count: 2}}, summary.Countries)
	assert.Equal(t, 3, summary.Counts.All)
	assert.Len(t, summary.Rooms, 1)
}

func ids(guests []model.Guest) []string {
	result := make([]string, len(guests))
	for i, g := range guests {
		result[i] = g.ID
	}

	return result
}

func TestSortGuests(t *testing.T) {
	guests := []model.Guest{
		{ID: "b", Name: "anna", Room: "Dorm 101", CheckIn: date("2023-07-02"), CheckOut: ptr(date("2023-07-04"))},
		{ID: "a", Name: "Anna", Room: "Dorm 102", CheckIn: date("2023-07-01")},
		{ID: "c", Name: "Ben", Room: "Dorm 101", CheckIn: date("2023-07-03"), CheckOut: ptr(date("2023-07-05"))},
	}

	tests := []struct {
		field    string
		dir      string
		expected []string
	}{
		{field: "name", dir: "ASC", expected: []string{"a", "b", "c"}},
		{field: "name", dir: "DESC", expected: []string{"c", "a", "b"}},
		{field: "room", dir: "ASC", expected: []string{"b", "c", "a"}},
		{field: "check_in", dir: "DESC", expected: []string{"c", "b", "a"}},
		{field: "check_out", dir: "ASC", expected: []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.field+" "+tt.dir, func(t *testing.T) {
			shuffled := slices.Clone(guests)
			rand.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

			sorted, ok := occupancy.SortGuests(shuffled, tt.field, tt.dir)
			assert.True(t, ok)

			ids := make([]string, len(sorted))
			for i, guest := range sorted {
				ids[i] = guest.ID
			}

			assert.Equal(t, tt.expected, ids)
		})
	}

	_, ok := occupancy.SortGuests(guests, "phone", "ASC")
	assert.False(t, ok)
}

func TestPaginate(t *testing.T) {
	guests := []model.Guest{guest("1", "A", model.StatusReserved), guest("2", "B", model.StatusReserved), guest("3", "C", model.StatusReserved)}

	assert.Len(t, occupancy.Paginate(guests, 0, 0), 3)
	assert.Equal(t, []model.Guest{guests[2]}, occupancy.Paginate(guests, 2, 2))
	assert.Equal(t, guests[:2], occupancy.Paginate(guests, 1, 2))
	assert.Empty(t, occupancy.Paginate(guests, 3, 2))
}
