// Package protocol implements the newline-terminated ASCII line format the
// bridge writes to the hardware channel, e.g. "LIGHT:living_room:ON\n".
package protocol

import (
	"fmt"
	"strconv"
	"strings"

	"zari/internal/domain"
)

// Encode renders an Intent as one wire line. It is total: an intent that maps
// to no firmware command becomes an "UNKNOWN:" diagnostic line rather than
// being dropped, so malformed intents stay observable on the wire.
func Encode(in domain.Intent) string {
	location := in.Location
	if location == "" {
		location = "home"
	}
	location = strings.ReplaceAll(location, " ", "_")

	switch {
	case in.Device == domain.DeviceLight || in.Device == domain.DeviceFan:
		state := "OFF"
		if in.Action == domain.ActionOn {
			state = "ON"
		}
		return fmt.Sprintf("%s:%s:%s\n", strings.ToUpper(string(in.Device)), location, state)

	case in.Device == domain.DeviceThermostat && in.Value != nil:
		return fmt.Sprintf("THERMOSTAT:%s:%d\n", location, *in.Value)

	case in.Device == domain.DeviceGarage:
		state := "CLOSE"
		if in.Action == domain.ActionOpen {
			state = "OPEN"
		}
		return fmt.Sprintf("GARAGE:%s:%s\n", location, state)
	}

	var value string
	if in.Value != nil {
		value = strconv.Itoa(*in.Value)
	}
	return fmt.Sprintf("UNKNOWN:%s:%s:%s:%s\n", in.Device, in.Action, location, value)
}

// Decode reverses Encode for the command lines (not the UNKNOWN diagnostic
// form). Used by tests and inspection tooling; the bridge itself only
// encodes.
func Decode(line string) (domain.Intent, error) {
	s := strings.TrimSuffix(strings.TrimSpace(line), "\n")
	if s == "" {
		return domain.Intent{}, fmt.Errorf("empty line")
	}

	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return domain.Intent{}, fmt.Errorf("want 3 fields, got %d: %q", len(parts), s)
	}

	location := strings.ReplaceAll(parts[1], "_", " ")
	in := domain.Intent{Kind: domain.IntentDeviceControl, Location: location}

	switch parts[0] {
	case "LIGHT", "FAN":
		in.Device = domain.DeviceClass(strings.ToLower(parts[0]))
		switch parts[2] {
		case "ON":
			in.Action = domain.ActionOn
		case "OFF":
			in.Action = domain.ActionOff
		default:
			return domain.Intent{}, fmt.Errorf("bad state %q in %q", parts[2], s)
		}

	case "THERMOSTAT":
		in.Device = domain.DeviceThermostat
		in.Action = domain.ActionSet
		v, err := strconv.Atoi(parts[2])
		if err != nil {
			return domain.Intent{}, fmt.Errorf("bad setpoint %q in %q: %w", parts[2], s, err)
		}
		in.Value = domain.Int(v)

	case "GARAGE":
		in.Device = domain.DeviceGarage
		switch parts[2] {
		case "OPEN":
			in.Action = domain.ActionOpen
		case "CLOSE":
			in.Action = domain.ActionClose
		default:
			return domain.Intent{}, fmt.Errorf("bad state %q in %q", parts[2], s)
		}

	default:
		return domain.Intent{}, fmt.Errorf("unrecognized device token %q in %q", parts[0], s)
	}

	return in, nil
}
