package domain

import "fmt"

// Summary renders a short human-readable description of the intent, used for
// operator notifications and logs.
func (in Intent) Summary() string {
	device := "device"
	if in.Device != "" {
		device = string(in.Device)
	}
	action := "action"
	if in.Action != "" {
		action = string(in.Action)
	}
	location := in.Location
	if location == "" {
		location = "home"
	}

	switch {
	case in.Device == DeviceThermostat && in.Value != nil:
		return fmt.Sprintf("%s → %d° at %s", title(device), *in.Value, location)
	case in.Device == DeviceGarage && (in.Action == ActionOpen || in.Action == ActionClose):
		return fmt.Sprintf("%s → %s at %s", title(device), upper(action), location)
	case (in.Device == DeviceLight || in.Device == DeviceFan) && (in.Action == ActionOn || in.Action == ActionOff):
		return fmt.Sprintf("%s (%s) → %s", title(device), location, upper(action))
	}
	return fmt.Sprintf("%s → %s (%s)", title(device), action, location)
}

func title(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}

func upper(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'a' && b[i] <= 'z' {
			b[i] -= 'a' - 'A'
		}
	}
	return string(b)
}
