package aircraft

import (
	"errors"
	"fmt"

	"airport-control/pkg/types"
)

var (
	ErrAlreadyLanded   = errors.New("plane has already landed")
	ErrAlreadyAirborne = errors.New("plane is already airborne")
	ErrStormyWeather   = errors.New("stormy weather")
	ErrAirportFull     = errors.New("airport is full")
	ErrWrongAirport    = errors.New("plane is not at airport")
	ErrNoAirport       = errors.New("no airport given")

	// ErrDuplicateCallsign refuses a landing when a different aircraft with
	// the same callsign is already parked at the airport.
	ErrDuplicateCallsign = errors.New("callsign already parked")
)

type Op string

const (
	OpLand    Op = "land"
	OpTakeOff Op = "take off"
)

// OpError describes a refused land or take-off. Err is one of the sentinel
// errors above; Airport and Capacity are set when an airport was involved.
type OpError struct {
	Op       Op
	Aircraft types.AircraftID
	Airport  types.AirportID
	Capacity int
	Err      error

	airportName string
}

func (e *OpError) Error() string {
	switch e.Err {
	case ErrStormyWeather:
		return fmt.Sprintf("cannot %s due to stormy weather", e.Op)
	case ErrAirportFull:
		return fmt.Sprintf("cannot land as %s is full", e.airportName)
	case ErrWrongAirport:
		return fmt.Sprintf("plane is not in %s", e.airportName)
	case ErrDuplicateCallsign:
		return fmt.Sprintf("cannot land as %s is already parked at %s", e.Aircraft, e.airportName)
	}
	return e.Err.Error()
}

func (e *OpError) Unwrap() error { return e.Err }
