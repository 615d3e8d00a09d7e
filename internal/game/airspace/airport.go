package airspace

import (
	"fmt"
	"sort"
	"strings"

	"airport-control/pkg/types"
)

// DefaultCapacity is used when an airport is built without a positive capacity.
const DefaultCapacity = 20

type Weather int

const (
	SUNNY Weather = iota
	STORMY
)

var WeatherStringMap = map[Weather]string{
	SUNNY:  "SUNNY",
	STORMY: "STORMY",
}

func (w Weather) String() string {
	if s, ok := WeatherStringMap[w]; ok {
		return s
	}
	return fmt.Sprintf("Weather(%d)", int(w))
}

func ParseWeather(s string) (Weather, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SUNNY":
		return SUNNY, nil
	case "STORMY":
		return STORMY, nil
	}
	return SUNNY, fmt.Errorf("unknown weather %q", s)
}

// Airport is a passive holder of weather and parked aircraft. Landing and
// take-off rules live with the aircraft, which checks them before calling
// Register or Deregister.
type Airport struct {
	ID       types.AirportID
	Name     string
	Position types.Vec2
	Weather  Weather
	Capacity int

	planes map[types.AircraftID]struct{}
}

func NewAirport(id types.AirportID, name string, pos types.Vec2, capacity int) *Airport {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Airport{
		ID:       id,
		Name:     name,
		Position: pos,
		Weather:  SUNNY,
		Capacity: capacity,
		planes:   make(map[types.AircraftID]struct{}, capacity),
	}
}

func (a *Airport) SetWeather(w Weather) {
	a.Weather = w
}

func (a *Airport) Sunny() { a.SetWeather(SUNNY) }

func (a *Airport) Stormy() { a.SetWeather(STORMY) }

func (a *Airport) IsStormy() bool {
	return a.Weather == STORMY
}

// Register parks id and reports whether it was added. Already parked
// aircraft and a full airport leave the set unchanged.
func (a *Airport) Register(id types.AircraftID) bool {
	if _, ok := a.planes[id]; ok {
		return false
	}
	if a.IsFull() {
		return false
	}
	a.planes[id] = struct{}{}
	return true
}

func (a *Airport) Deregister(id types.AircraftID) {
	delete(a.planes, id)
}

func (a *Airport) IsFull() bool {
	return len(a.planes) >= a.Capacity
}

func (a *Airport) Holds(id types.AircraftID) bool {
	_, ok := a.planes[id]
	return ok
}

func (a *Airport) Len() int {
	return len(a.planes)
}

// Parked returns the parked aircraft sorted by callsign.
func (a *Airport) Parked() []types.AircraftID {
	ids := make([]types.AircraftID, 0, len(a.planes))
	for id := range a.planes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (a *Airport) String() string {
	if a.Name == "" {
		return string(a.ID)
	}
	return fmt.Sprintf("%s (%s)", a.ID, a.Name)
}
