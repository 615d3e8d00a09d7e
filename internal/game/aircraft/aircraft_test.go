package aircraft

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"airport-control/internal/game/airspace"
	"airport-control/pkg/types"
)

func newAirport(id string, capacity int) *airspace.Airport {
	return airspace.NewAirport(types.AirportID(id), "", types.Vec2{}, capacity)
}

func TestNewAircraftIsAirborne(t *testing.T) {
	ac := NewAircraft("BAW001")
	require.True(t, ac.IsAirborne())
	require.Equal(t, AIRBORNE, ac.State)
	require.Nil(t, ac.Location)
}

func TestLandSunny(t *testing.T) {
	ap := newAirport("LHR", 0)
	ac := NewAircraft("BAW001")

	require.NoError(t, ac.Land(ap))
	require.False(t, ac.IsAirborne())
	require.Same(t, ap, ac.Location)
	require.True(t, ap.Holds(ac.ID))
	require.Equal(t, 1, ap.Len())
}

func TestLandTwice(t *testing.T) {
	ap := newAirport("LHR", 0)
	ac := NewAircraft("BAW001")
	require.NoError(t, ac.Land(ap))

	err := ac.Land(ap)
	require.ErrorIs(t, err, ErrAlreadyLanded)
	require.EqualError(t, err, "plane has already landed")
	require.Equal(t, 1, ap.Len())
}

func TestLandStormy(t *testing.T) {
	ap := newAirport("LHR", 0)
	ap.Stormy()
	ac := NewAircraft("BAW001")

	err := ac.Land(ap)
	require.ErrorIs(t, err, ErrStormyWeather)
	require.EqualError(t, err, "cannot land due to stormy weather")
	require.True(t, ac.IsAirborne())
	require.Nil(t, ac.Location)
	require.Zero(t, ap.Len())
}

func TestLandFull(t *testing.T) {
	ap := airspace.NewAirport("LHR", "Heathrow", types.Vec2{}, 3)
	for i := 0; i < ap.Capacity; i++ {
		require.NoError(t, NewAircraft(types.AircraftID(fmt.Sprintf("AAL%03d", i))).Land(ap))
	}
	ac := NewAircraft("BAW001")

	err := ac.Land(ap)
	require.ErrorIs(t, err, ErrAirportFull)
	require.EqualError(t, err, "cannot land as LHR (Heathrow) is full")
	require.True(t, ac.IsAirborne())
	require.Equal(t, 3, ap.Len())

	var opErr *OpError
	require.True(t, errors.As(err, &opErr))
	require.Equal(t, OpLand, opErr.Op)
	require.Equal(t, types.AirportID("LHR"), opErr.Airport)
	require.Equal(t, 3, opErr.Capacity)
	require.Equal(t, types.AircraftID("BAW001"), opErr.Aircraft)
}

func TestLandCheckOrder(t *testing.T) {
	tests := []struct {
		name   string
		landed bool
		stormy bool
		full   bool
		want   error
	}{
		{name: "landed beats stormy and full", landed: true, stormy: true, full: true, want: ErrAlreadyLanded},
		{name: "stormy beats full", stormy: true, full: true, want: ErrStormyWeather},
		{name: "full", full: true, want: ErrAirportFull},
		{name: "clear", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ap := newAirport("LHR", 1)
			ac := NewAircraft("BAW001")
			if tt.landed {
				require.NoError(t, ac.Land(newAirport("CDG", 1)))
			}
			if tt.full {
				require.NoError(t, NewAircraft("AAL100").Land(ap))
			}
			if tt.stormy {
				ap.Stormy()
			}

			err := ac.Land(ap)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTakeOffSunny(t *testing.T) {
	ap := newAirport("LHR", 0)
	ac := NewAircraft("BAW001")
	require.NoError(t, ac.Land(ap))

	require.NoError(t, ac.TakeOff(ap))
	require.True(t, ac.IsAirborne())
	require.Nil(t, ac.Location)
	require.False(t, ap.Holds(ac.ID))
}

func TestTakeOffTwice(t *testing.T) {
	ap := newAirport("LHR", 0)
	ac := NewAircraft("BAW001")
	require.NoError(t, ac.Land(ap))
	require.NoError(t, ac.TakeOff(ap))

	err := ac.TakeOff(ap)
	require.ErrorIs(t, err, ErrAlreadyAirborne)
	require.EqualError(t, err, "plane is already airborne")
}

func TestTakeOffWrongAirport(t *testing.T) {
	ap := newAirport("LHR", 0)
	other := newAirport("CDG", 0)
	ac := NewAircraft("BAW001")
	require.NoError(t, ac.Land(ap))

	err := ac.TakeOff(other)
	require.ErrorIs(t, err, ErrWrongAirport)
	require.EqualError(t, err, "plane is not in CDG")
	require.False(t, ac.IsAirborne())
	require.Same(t, ap, ac.Location)
	require.True(t, ap.Holds(ac.ID))
}

func TestTakeOffStormy(t *testing.T) {
	ap := newAirport("LHR", 0)
	ac := NewAircraft("BAW001")
	require.NoError(t, ac.Land(ap))
	ap.Stormy()

	err := ac.TakeOff(ap)
	require.ErrorIs(t, err, ErrStormyWeather)
	require.EqualError(t, err, "cannot take off due to stormy weather")
	require.False(t, ac.IsAirborne())
	require.True(t, ap.Holds(ac.ID))
}

func TestTakeOffStormyBeforeWrongAirport(t *testing.T) {
	ap := newAirport("LHR", 0)
	other := newAirport("CDG", 0)
	other.Stormy()
	ac := NewAircraft("BAW001")
	require.NoError(t, ac.Land(ap))

	require.ErrorIs(t, ac.TakeOff(other), ErrStormyWeather)
}

func TestNilAirport(t *testing.T) {
	ac := NewAircraft("BAW001")
	require.ErrorIs(t, ac.Land(nil), ErrNoAirport)
	require.ErrorIs(t, ac.TakeOff(nil), ErrNoAirport)
	require.True(t, ac.IsAirborne())
}

func TestCapacityOneScenario(t *testing.T) {
	ap := newAirport("LHR", 1)
	a := NewAircraft("AAL100")
	b := NewAircraft("DAL200")

	require.NoError(t, a.Land(ap))
	require.ErrorIs(t, b.Land(ap), ErrAirportFull)

	require.False(t, a.IsAirborne())
	require.True(t, b.IsAirborne())
	require.Nil(t, b.Location)
	require.Equal(t, []types.AircraftID{"AAL100"}, ap.Parked())
}

func TestLandDuplicateCallsign(t *testing.T) {
	ap := newAirport("LHR", 2)
	a := NewAircraft("BAW001")
	b := NewAircraft("BAW001")

	require.NoError(t, a.Land(ap))
	err := b.Land(ap)
	require.ErrorIs(t, err, ErrDuplicateCallsign)
	require.EqualError(t, err, "cannot land as BAW001 is already parked at LHR")
	require.True(t, b.IsAirborne())
	require.Nil(t, b.Location)
	require.Equal(t, 1, ap.Len())

	require.NoError(t, a.TakeOff(ap))
	require.Zero(t, ap.Len())
	require.True(t, b.IsAirborne())

	// Once the callsign is free the second aircraft parks and is tracked.
	require.NoError(t, b.Land(ap))
	require.Same(t, ap, b.Location)
	require.True(t, ap.Holds(b.ID))
	require.Equal(t, 1, ap.Len())
}

func TestLandAgainAfterTakeOff(t *testing.T) {
	ap := newAirport("LHR", 1)
	other := newAirport("CDG", 1)
	ac := NewAircraft("BAW001")

	require.NoError(t, ac.Land(ap))
	require.NoError(t, ac.TakeOff(ap))
	require.NoError(t, ac.Land(other))
	require.Same(t, other, ac.Location)
	require.Zero(t, ap.Len())
	require.True(t, other.Holds(ac.ID))
}
