package airspace

import (
	"errors"
	"fmt"
	"sort"

	"airport-control/pkg/types"
)

type Airspace struct {
	Airports map[types.AirportID]*Airport
}

func NewAirspace() *Airspace {
	return &Airspace{
		Airports: make(map[types.AirportID]*Airport),
	}
}

func (as *Airspace) AddAirport(id types.AirportID, name string, pos types.Vec2, capacity int) (*Airport, error) {
	if id == "" {
		return nil, errors.New("airport id is empty")
	}
	if _, exists := as.Airports[id]; exists {
		return nil, fmt.Errorf("airport %s already exists", id)
	}
	airport := NewAirport(id, name, pos, capacity)
	as.Airports[id] = airport
	return airport, nil
}

func (as *Airspace) Airport(id types.AirportID) (*Airport, bool) {
	ap, ok := as.Airports[id]
	return ap, ok
}

// IDs returns airport IDs in a stable order for iteration and drawing.
func (as *Airspace) IDs() []types.AirportID {
	ids := make([]types.AirportID, 0, len(as.Airports))
	for id := range as.Airports {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
