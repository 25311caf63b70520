package domain

// IntentKind says whether a transcript resolved to a controllable device.
type IntentKind string

const (
	IntentDeviceControl IntentKind = "device_control"
	IntentUnknown       IntentKind = "unknown"
	IntentNone          IntentKind = "none"
)

type DeviceClass string

const (
	DeviceLight      DeviceClass = "light"
	DeviceFan        DeviceClass = "fan"
	DeviceThermostat DeviceClass = "thermostat"
	DeviceGarage     DeviceClass = "garage"
)

type Action string

const (
	ActionOn    Action = "on"
	ActionOff   Action = "off"
	ActionOpen  Action = "open"
	ActionClose Action = "close"
	ActionSet   Action = "set"
)

// Intent is the parser's output and the bridge's inbound JSON shape.
// Device and Action use the empty string as "absent"; Value uses nil so a
// thermostat setpoint of 0 stays representable.
type Intent struct {
	Kind     IntentKind  `json:"intent"`
	Device   DeviceClass `json:"device,omitempty"`
	Action   Action      `json:"action,omitempty"`
	Location string      `json:"location,omitempty"`
	Value    *int        `json:"value,omitempty"`
	Raw      string      `json:"raw,omitempty"`
}

// Int returns a pointer to v, for building Intent values inline.
func Int(v int) *int {
	return &v
}
