// Package sim is the in-memory device state store used when no physical
// hardware is attached.
package sim

import (
	"fmt"
	"sync"

	"zari/internal/domain"
)

// Store maps "{device}:{location}" keys to simulated hardware state: bool for
// lights and fans, "open"/"closed" for the garage door, an integer setpoint
// for the thermostat. Keys are created once and only ever overwritten.
type Store struct {
	mu    sync.RWMutex
	state map[string]any
}

// NewStore returns a store holding the fixed default home state.
func NewStore() *Store {
	return &Store{
		state: map[string]any{
			"light:living room": false,
			"light:kitchen":     false,
			"fan:kitchen":       false,
			"garage:door":       "closed",
			"thermostat:home":   72,
		},
	}
}

// Apply mutates the store according to the intent and returns the full state
// snapshot. Unmapped device/action combinations are a deliberate no-op, not
// an error; the snapshot is returned either way. Applying the same intent
// twice leaves the same state.
func (s *Store) Apply(in domain.Intent) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	location := in.Location
	if location == "" {
		location = "home"
	}

	switch {
	case (in.Device == domain.DeviceLight || in.Device == domain.DeviceFan) &&
		(in.Action == domain.ActionOn || in.Action == domain.ActionOff):
		s.state[fmt.Sprintf("%s:%s", in.Device, location)] = in.Action == domain.ActionOn

	case in.Device == domain.DeviceThermostat && in.Value != nil:
		// Location is ignored for the thermostat, there is only one.
		s.state["thermostat:home"] = *in.Value

	case in.Device == domain.DeviceGarage &&
		(in.Action == domain.ActionOpen || in.Action == domain.ActionClose):
		state := "closed"
		if in.Action == domain.ActionOpen {
			state = "open"
		}
		s.state["garage:door"] = state
	}

	return s.snapshotLocked()
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() map[string]any {
	out := make(map[string]any, len(s.state))
	for k, v := range s.state {
		out[k] = v
	}
	return out
}
