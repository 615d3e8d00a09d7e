package aircraft

import (
	"airport-control/internal/game/airspace"
	"airport-control/pkg/types"
)

type AircraftState int

const (
	AIRBORNE AircraftState = iota
	LANDED
)

var StateStringMap = map[AircraftState]string{
	AIRBORNE: "AIRBORNE",
	LANDED:   "LANDED",
}

func (s AircraftState) String() string {
	return StateStringMap[s]
}

type Aircraft struct {
	ID    types.AircraftID
	State AircraftState

	// Location is the airport the aircraft is parked at; nil while airborne.
	Location *airspace.Airport
}

func NewAircraft(id types.AircraftID) *Aircraft {
	return &Aircraft{
		ID:    id,
		State: AIRBORNE,
	}
}

func (ac *Aircraft) IsAirborne() bool {
	return ac.State == AIRBORNE
}

// Land parks the aircraft at ap. Checks run in a fixed order (already
// landed, weather, capacity, callsign already parked) and nothing is
// mutated when one fails.
func (ac *Aircraft) Land(ap *airspace.Airport) error {
	if ap == nil {
		return ac.refuse(OpLand, nil, ErrNoAirport)
	}
	if ac.State == LANDED {
		return ac.refuse(OpLand, ap, ErrAlreadyLanded)
	}
	if ap.IsStormy() {
		return ac.refuse(OpLand, ap, ErrStormyWeather)
	}
	if ap.IsFull() {
		return ac.refuse(OpLand, ap, ErrAirportFull)
	}
	if ap.Holds(ac.ID) || !ap.Register(ac.ID) {
		return ac.refuse(OpLand, ap, ErrDuplicateCallsign)
	}

	ac.State = LANDED
	ac.Location = ap
	return nil
}

// TakeOff releases the aircraft from ap. Checks run in a fixed order
// (already airborne, weather, location) and nothing is mutated when one fails.
func (ac *Aircraft) TakeOff(ap *airspace.Airport) error {
	if ap == nil {
		return ac.refuse(OpTakeOff, nil, ErrNoAirport)
	}
	if ac.State == AIRBORNE {
		return ac.refuse(OpTakeOff, ap, ErrAlreadyAirborne)
	}
	if ap.IsStormy() {
		return ac.refuse(OpTakeOff, ap, ErrStormyWeather)
	}
	if ac.Location != ap {
		return ac.refuse(OpTakeOff, ap, ErrWrongAirport)
	}

	ac.State = AIRBORNE
	ac.Location = nil
	ap.Deregister(ac.ID)
	return nil
}

func (ac *Aircraft) refuse(op Op, ap *airspace.Airport, err error) *OpError {
	e := &OpError{Op: op, Aircraft: ac.ID, Err: err}
	if ap != nil {
		e.Airport = ap.ID
		e.Capacity = ap.Capacity
		e.airportName = ap.String()
	}
	return e
}
