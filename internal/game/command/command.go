// Package command parses and executes controller instructions such as
// "LAND BAW001 LHR" or "WX CDG STORMY".
package command

import (
	"errors"
	"fmt"
	"strings"

	"airport-control/internal/game/airspace"
	"airport-control/internal/game/simulation"
	"airport-control/pkg/types"
)

type Kind int

const (
	LAND Kind = iota
	TAKE_OFF
	WEATHER
	SPAWN
)

var KindStringMap = map[Kind]string{
	LAND:     "LAND",
	TAKE_OFF: "TAKEOFF",
	WEATHER:  "WX",
	SPAWN:    "SPAWN",
}

var ErrSyntax = errors.New("invalid command")

type Command struct {
	Kind     Kind
	Aircraft types.AircraftID
	Airport  types.AirportID
	Weather  airspace.Weather
}

func (c Command) String() string {
	switch c.Kind {
	case LAND, TAKE_OFF:
		return fmt.Sprintf("%s %s %s", KindStringMap[c.Kind], c.Aircraft, c.Airport)
	case WEATHER:
		return fmt.Sprintf("%s %s %s", KindStringMap[c.Kind], c.Airport, c.Weather)
	}
	return KindStringMap[c.Kind]
}

// Parse reads one command line. For LAND and TAKEOFF the callsign may be
// omitted, in which case selected is used.
//
//	LAND|L [<callsign>] <airport>
//	TAKEOFF|TO|T [<callsign>] <airport>
//	WX|WEATHER <airport> SUNNY|STORMY
//	SPAWN
func Parse(line string, selected types.AircraftID) (Command, error) {
	parts := strings.Fields(strings.ToUpper(line))
	if len(parts) == 0 {
		return Command{}, fmt.Errorf("%w: empty", ErrSyntax)
	}

	switch parts[0] {
	case "L", "LAND":
		return parseMovement(LAND, parts[1:], selected)
	case "T", "TO", "TAKEOFF":
		return parseMovement(TAKE_OFF, parts[1:], selected)
	case "WX", "WEATHER":
		if len(parts) != 3 {
			return Command{}, fmt.Errorf("%w: expected WX <airport> SUNNY|STORMY", ErrSyntax)
		}
		w, err := airspace.ParseWeather(parts[2])
		if err != nil {
			return Command{}, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		return Command{Kind: WEATHER, Airport: types.AirportID(parts[1]), Weather: w}, nil
	case "SPAWN":
		if len(parts) != 1 {
			return Command{}, fmt.Errorf("%w: SPAWN takes no arguments", ErrSyntax)
		}
		return Command{Kind: SPAWN}, nil
	}
	return Command{}, fmt.Errorf("%w: unknown command type %s", ErrSyntax, parts[0])
}

func parseMovement(kind Kind, args []string, selected types.AircraftID) (Command, error) {
	cmd := Command{Kind: kind}
	switch len(args) {
	case 1:
		if selected == "" {
			return Command{}, fmt.Errorf("%w: no aircraft selected", ErrSyntax)
		}
		cmd.Aircraft = selected
		cmd.Airport = types.AirportID(args[0])
	case 2:
		cmd.Aircraft = types.AircraftID(args[0])
		cmd.Airport = types.AirportID(args[1])
	default:
		return Command{}, fmt.Errorf("%w: expected %s [<callsign>] <airport>", ErrSyntax, KindStringMap[kind])
	}
	return cmd, nil
}

func Execute(sim *simulation.Simulation, cmd Command) error {
	switch cmd.Kind {
	case LAND:
		return sim.IssueLand(cmd.Aircraft, cmd.Airport)
	case TAKE_OFF:
		return sim.IssueTakeOff(cmd.Aircraft, cmd.Airport)
	case WEATHER:
		return sim.SetWeather(cmd.Airport, cmd.Weather)
	case SPAWN:
		_, err := sim.SpawnAircraft()
		return err
	}
	return fmt.Errorf("%w: unknown kind %d", ErrSyntax, cmd.Kind)
}
