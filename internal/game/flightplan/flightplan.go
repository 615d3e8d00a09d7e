// Package flightplan runs scripted controller sessions described in YAML:
//
//	name: storm over heathrow
//	aircraft: [BAW001]
//	weather: {LHR: stormy}
//	steps:
//	  - {action: land, aircraft: BAW001, airport: LHR, expect: stormy_weather}
//	  - {action: weather, airport: LHR, weather: sunny}
//	  - {action: land, aircraft: BAW001, airport: LHR}
package flightplan

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/labstack/gommon/log"
	"gopkg.in/yaml.v3"

	"airport-control/internal/game/aircraft"
	"airport-control/internal/game/airspace"
	"airport-control/internal/game/command"
	"airport-control/internal/game/simulation"
	"airport-control/pkg/types"
)

var expectations = map[string]error{
	"":                   nil,
	"ok":                 nil,
	"already_landed":     aircraft.ErrAlreadyLanded,
	"already_airborne":   aircraft.ErrAlreadyAirborne,
	"stormy_weather":     aircraft.ErrStormyWeather,
	"airport_full":       aircraft.ErrAirportFull,
	"wrong_airport":      aircraft.ErrWrongAirport,
	"duplicate_callsign": aircraft.ErrDuplicateCallsign,
	"unknown_aircraft":   simulation.ErrUnknownAircraft,
	"unknown_airport":    simulation.ErrUnknownAirport,
	"airspace_full":      simulation.ErrAirspaceFull,
}

type Step struct {
	Action   string `yaml:"action"`
	Aircraft string `yaml:"aircraft,omitempty"`
	Airport  string `yaml:"airport,omitempty"`
	Weather  string `yaml:"weather,omitempty"`
	Expect   string `yaml:"expect,omitempty"`
}

// Command converts the step into a controller command.
func (s Step) Command() (command.Command, error) {
	switch strings.ToLower(s.Action) {
	case "land":
		return command.Parse(fmt.Sprintf("LAND %s %s", s.Aircraft, s.Airport), "")
	case "take_off", "takeoff":
		return command.Parse(fmt.Sprintf("TAKEOFF %s %s", s.Aircraft, s.Airport), "")
	case "weather":
		return command.Parse(fmt.Sprintf("WX %s %s", s.Airport, s.Weather), "")
	case "spawn":
		return command.Command{Kind: command.SPAWN}, nil
	}
	return command.Command{}, fmt.Errorf("unknown action %q", s.Action)
}

type FlightPlan struct {
	Name     string            `yaml:"name"`
	Aircraft []string          `yaml:"aircraft"`
	Weather  map[string]string `yaml:"weather"`
	Steps    []Step            `yaml:"steps"`
}

func Load(r io.Reader) (*FlightPlan, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var fp FlightPlan
	if err := dec.Decode(&fp); err != nil {
		return nil, fmt.Errorf("decode flight plan: %w", err)
	}
	if err := fp.Validate(); err != nil {
		return nil, err
	}
	return &fp, nil
}

func (fp *FlightPlan) Validate() error {
	var errs []error
	for id, w := range fp.Weather {
		if _, err := airspace.ParseWeather(w); err != nil {
			errs = append(errs, fmt.Errorf("weather %s: %w", id, err))
		}
	}
	for i, step := range fp.Steps {
		if _, err := step.Command(); err != nil {
			errs = append(errs, fmt.Errorf("step %d: %w", i+1, err))
		}
		if _, ok := expectations[strings.ToLower(step.Expect)]; !ok {
			errs = append(errs, fmt.Errorf("step %d: unknown expectation %q", i+1, step.Expect))
		}
	}
	return errors.Join(errs...)
}

type StepResult struct {
	Step    Step
	Err     error
	Matched bool
}

type Report struct {
	Name    string
	Results []StepResult
}

func (r Report) Failures() int {
	n := 0
	for _, res := range r.Results {
		if !res.Matched {
			n++
		}
	}
	return n
}

func (r Report) Passed() bool { return r.Failures() == 0 }

// Run registers the plan's aircraft, applies its weather presets and executes
// every step against sim. Step outcomes that differ from their expectation are
// recorded in the report rather than stopping the run; the returned error is
// reserved for plans that cannot be set up.
func (fp *FlightPlan) Run(sim *simulation.Simulation) (Report, error) {
	report := Report{Name: fp.Name}

	for _, id := range fp.Aircraft {
		if _, err := sim.AddAircraft(types.AircraftID(strings.ToUpper(id))); err != nil {
			return report, fmt.Errorf("flight plan %q: %w", fp.Name, err)
		}
	}
	for id, w := range fp.Weather {
		weather, err := airspace.ParseWeather(w)
		if err != nil {
			return report, fmt.Errorf("flight plan %q: %w", fp.Name, err)
		}
		if err := sim.SetWeather(types.AirportID(strings.ToUpper(id)), weather); err != nil {
			return report, fmt.Errorf("flight plan %q: %w", fp.Name, err)
		}
	}

	for i, step := range fp.Steps {
		cmd, err := step.Command()
		if err != nil {
			return report, fmt.Errorf("flight plan %q step %d: %w", fp.Name, i+1, err)
		}
		want, ok := expectations[strings.ToLower(step.Expect)]
		if !ok {
			return report, fmt.Errorf("flight plan %q step %d: unknown expectation %q", fp.Name, i+1, step.Expect)
		}

		err = command.Execute(sim, cmd)
		res := StepResult{Step: step, Err: err}
		if want == nil {
			res.Matched = err == nil
		} else {
			res.Matched = errors.Is(err, want)
		}
		if !res.Matched {
			log.Errorf("step %d (%s): got %v, expected %q", i+1, cmd, err, step.Expect)
		} else {
			log.Debugf("step %d (%s): ok", i+1, cmd)
		}
		report.Results = append(report.Results, res)
	}
	return report, nil
}
