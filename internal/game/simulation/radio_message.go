package simulation

import (
	"time"

	"github.com/google/uuid"

	"airport-control/pkg/types"
)

type RadioMessage struct {
	ID        uuid.UUID
	Timestamp time.Time
	Callsign  types.AircraftID
	Message   string
	IsUrgent  bool
}

func atisCallsign(id types.AirportID) types.AircraftID {
	return types.AircraftID(string(id) + " ATIS")
}

func (s *Simulation) AddRadioMessage(callsign types.AircraftID, message string, isUrgent bool) {
	msg := RadioMessage{
		ID:        uuid.New(),
		Timestamp: time.Now(),
		Callsign:  callsign,
		Message:   message,
		IsUrgent:  isUrgent,
	}
	s.RadioLog = append(s.RadioLog, msg)

	if len(s.RadioLog) > s.maxRadioLogSize {
		s.RadioLog = s.RadioLog[len(s.RadioLog)-s.maxRadioLogSize:]
	}
}

// LastMessages returns up to n of the most recent radio messages, oldest first.
func (s *Simulation) LastMessages(n int) []RadioMessage {
	if n <= 0 || len(s.RadioLog) == 0 {
		return nil
	}
	if n > len(s.RadioLog) {
		n = len(s.RadioLog)
	}
	return s.RadioLog[len(s.RadioLog)-n:]
}
