package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/labstack/gommon/log"

	"airport-control/internal/config"
	"airport-control/internal/game/flightplan"
	"airport-control/internal/game/simulation"
)

// scenario replays a flight plan without a window. The config file comes from
// ATC_CONFIG and the plan from ATC_FLIGHTPLAN (or flight_plan in the config),
// or the first argument.
func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	cfg, err := config.Load(os.Getenv("ATC_CONFIG"))
	if err != nil {
		return err
	}
	cfg.ApplyLogging()

	path := cfg.FlightPlan
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return errors.New("no flight plan given, set ATC_FLIGHTPLAN or pass a path")
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open flight plan: %w", err)
	}
	defer f.Close()

	fp, err := flightplan.Load(f)
	if err != nil {
		return err
	}

	sim, err := simulation.NewFromConfig(cfg)
	if err != nil {
		return err
	}

	report, err := fp.Run(sim)
	if err != nil {
		return err
	}
	for i, res := range report.Results {
		status := "ok"
		if !res.Matched {
			status = "MISMATCH"
		}
		outcome := "cleared"
		if res.Err != nil {
			outcome = res.Err.Error()
		}
		log.Infof("%2d %-8s %-8s %-8s %-4s -> %s [%s]", i+1, res.Step.Action, res.Step.Aircraft, res.Step.Airport, res.Step.Weather, outcome, status)
	}
	log.Infof("%s: %d steps, %d landings, %d take-offs, %d refused", report.Name, len(report.Results), sim.Landings, sim.TakeOffs, sim.Refusals)

	if !report.Passed() {
		return fmt.Errorf("%s: %d of %d steps did not match", report.Name, report.Failures(), len(report.Results))
	}
	return nil
}
