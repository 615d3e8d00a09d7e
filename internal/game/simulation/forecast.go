package simulation

import (
	"math/rand"

	"airport-control/internal/game/airspace"
)

type Forecaster interface {
	Forecast(ap *airspace.Airport) airspace.Weather
}

// ForecastFunc adapts a plain function to a Forecaster.
type ForecastFunc func(ap *airspace.Airport) airspace.Weather

func (f ForecastFunc) Forecast(ap *airspace.Airport) airspace.Weather { return f(ap) }

// RandomForecaster reports STORMY with probability StormChance.
type RandomForecaster struct {
	StormChance float64
	rng         *rand.Rand
}

func NewRandomForecaster(stormChance float64, rng *rand.Rand) *RandomForecaster {
	return &RandomForecaster{StormChance: stormChance, rng: rng}
}

func (f *RandomForecaster) Forecast(*airspace.Airport) airspace.Weather {
	if f.StormChance > 0 && f.rng.Float64() < f.StormChance {
		return airspace.STORMY
	}
	return airspace.SUNNY
}
