package simulation

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/labstack/gommon/log"

	"airport-control/internal/config"
	"airport-control/internal/game/aircraft"
	"airport-control/internal/game/airspace"
	"airport-control/pkg/types"
)

var (
	ErrUnknownAircraft = errors.New("aircraft not found")
	ErrUnknownAirport  = errors.New("airport not found")
	ErrDuplicateID     = errors.New("aircraft already exists")
	ErrAirspaceFull    = errors.New("maximum number of aircraft reached")
)

type Simulation struct {
	Aircrafts       map[types.AircraftID]*aircraft.Aircraft
	Airspace        *airspace.Airspace
	Forecaster      Forecaster
	TickRate        float64
	GameTimeSeconds float64

	Landings        int
	TakeOffs        int
	Refusals        int
	RadioLog        []RadioMessage
	maxRadioLogSize int

	spawnInterval    float64
	forecastInterval float64
	sinceSpawn       float64
	sinceForecast    float64
	nextAircraftID   int
	maxAircraft      int
	rng              *rand.Rand
}

func NewSimulation(cfg config.SimulationConfig, as *airspace.Airspace) *Simulation {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	if as == nil {
		as = airspace.NewAirspace()
	}

	return &Simulation{
		Aircrafts:  make(map[types.AircraftID]*aircraft.Aircraft),
		Airspace:   as,
		Forecaster: NewRandomForecaster(cfg.StormChance, rng),
		TickRate:   cfg.TickRate,

		maxRadioLogSize:  50,
		spawnInterval:    cfg.SpawnInterval,
		forecastInterval: cfg.ForecastInterval,
		nextAircraftID:   100,
		maxAircraft:      cfg.MaxAircraft,
		rng:              rng,
	}
}

// NewFromConfig builds the airspace declared in cfg and a simulation over it.
func NewFromConfig(cfg config.Config) (*Simulation, error) {
	as := airspace.NewAirspace()
	for _, apCfg := range cfg.Airports {
		ap, err := as.AddAirport(
			types.AirportID(strings.ToUpper(apCfg.ID)),
			apCfg.Name,
			types.NewVec2(apCfg.X, apCfg.Y),
			apCfg.Capacity,
		)
		if err != nil {
			return nil, err
		}
		if apCfg.Weather != "" {
			w, err := airspace.ParseWeather(apCfg.Weather)
			if err != nil {
				return nil, fmt.Errorf("airport %s: %w", ap.ID, err)
			}
			ap.SetWeather(w)
		}
		log.Debugf("Airport %s ready, capacity %d, %s", ap, ap.Capacity, ap.Weather)
	}
	return NewSimulation(cfg.Simulation, as), nil
}

func (s *Simulation) Update(dt float64) {
	s.GameTimeSeconds += dt

	if s.forecastInterval > 0 && s.Forecaster != nil {
		s.sinceForecast += dt
		if s.sinceForecast >= s.forecastInterval {
			s.sinceForecast = 0
			s.Forecast()
		}
	}

	// max_aircraft = 0 turns automatic spawning off; SpawnAircraft is then uncapped.
	if s.spawnInterval > 0 && len(s.Aircrafts) < s.maxAircraft {
		s.sinceSpawn += dt
		if s.sinceSpawn >= s.spawnInterval {
			s.sinceSpawn = 0
			if _, err := s.SpawnAircraft(); err != nil {
				log.Warnf("spawn: %v", err)
			}
		}
	}
}

// Forecast asks the forecaster for every airport's weather and applies changes.
func (s *Simulation) Forecast() {
	for _, id := range s.Airspace.IDs() {
		ap := s.Airspace.Airports[id]
		w := s.Forecaster.Forecast(ap)
		if w == ap.Weather {
			continue
		}
		ap.SetWeather(w)
		s.AddRadioMessage(atisCallsign(id), fmt.Sprintf("%s weather now %s.", id, w), w == airspace.STORMY)
		log.Infof("WEATHER: %s now %s", ap, w)
	}
}

func (s *Simulation) SetWeather(airportID types.AirportID, w airspace.Weather) error {
	ap, ok := s.Airspace.Airport(airportID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAirport, airportID)
	}
	ap.SetWeather(w)
	log.Infof("WEATHER: %s set to %s", ap, w)
	return nil
}

func (s *Simulation) AddAircraft(id types.AircraftID) (*aircraft.Aircraft, error) {
	if id == "" {
		return nil, errors.New("aircraft id is empty")
	}
	if _, exists := s.Aircrafts[id]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	ac := aircraft.NewAircraft(id)
	s.Aircrafts[id] = ac
	return ac, nil
}

func (s *Simulation) SpawnAircraft() (*aircraft.Aircraft, error) {
	if s.maxAircraft > 0 && len(s.Aircrafts) >= s.maxAircraft {
		return nil, ErrAirspaceFull
	}

	var acID types.AircraftID
	for {
		acID = types.AircraftID(fmt.Sprintf("%s%03d", s.randomAirlinePrefix(), s.nextAircraftID))
		s.nextAircraftID++
		if _, taken := s.Aircrafts[acID]; !taken {
			break
		}
	}

	ac, err := s.AddAircraft(acID)
	if err != nil {
		return nil, err
	}
	s.AddRadioMessage(ac.ID, "Inbound, requesting instructions.", false)
	log.Infof("Spawned aircraft %s", ac.ID)
	return ac, nil
}

func (s *Simulation) randomAirlinePrefix() string {
	prefixes := []string{"AAL", "SWA", "DAL", "UAL", "JBU", "ASA", "FFT", "AI", "JAL"}
	return prefixes[s.rng.Intn(len(prefixes))]
}

func (s *Simulation) lookup(aircraftID types.AircraftID, airportID types.AirportID) (*aircraft.Aircraft, *airspace.Airport, error) {
	ac, ok := s.Aircrafts[aircraftID]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownAircraft, aircraftID)
	}
	ap, ok := s.Airspace.Airport(airportID)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownAirport, airportID)
	}
	return ac, ap, nil
}

// IssueLand clears an aircraft to land. A refusal is logged, recorded on the
// radio log and returned as the aircraft's *aircraft.OpError.
func (s *Simulation) IssueLand(aircraftID types.AircraftID, airportID types.AirportID) error {
	ac, ap, err := s.lookup(aircraftID, airportID)
	if err != nil {
		return err
	}
	if err := ac.Land(ap); err != nil {
		s.refused(ac.ID, err)
		return err
	}
	s.Landings++
	s.AddRadioMessage(ac.ID, fmt.Sprintf("Landed at %s.", ap.ID), false)
	log.Infof("LANDED: %s at %s (%d/%d)", ac.ID, ap, ap.Len(), ap.Capacity)
	return nil
}

func (s *Simulation) IssueTakeOff(aircraftID types.AircraftID, airportID types.AirportID) error {
	ac, ap, err := s.lookup(aircraftID, airportID)
	if err != nil {
		return err
	}
	if err := ac.TakeOff(ap); err != nil {
		s.refused(ac.ID, err)
		return err
	}
	s.TakeOffs++
	s.AddRadioMessage(ac.ID, fmt.Sprintf("Airborne out of %s.", ap.ID), false)
	log.Infof("TAKE OFF: %s from %s (%d/%d)", ac.ID, ap, ap.Len(), ap.Capacity)
	return nil
}

func (s *Simulation) refused(id types.AircraftID, err error) {
	s.Refusals++
	s.AddRadioMessage(id, "Unable, "+err.Error()+".", true)
	log.Warnf("REFUSED: %s: %v", id, err)
}

// Airborne returns airborne aircraft sorted by callsign.
func (s *Simulation) Airborne() []*aircraft.Aircraft {
	return s.filter(func(ac *aircraft.Aircraft) bool { return ac.IsAirborne() })
}

// Landed returns landed aircraft sorted by callsign.
func (s *Simulation) Landed() []*aircraft.Aircraft {
	return s.filter(func(ac *aircraft.Aircraft) bool { return !ac.IsAirborne() })
}

func (s *Simulation) filter(keep func(*aircraft.Aircraft) bool) []*aircraft.Aircraft {
	out := make([]*aircraft.Aircraft, 0, len(s.Aircrafts))
	for _, ac := range s.Aircrafts {
		if keep(ac) {
			out = append(out, ac)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
