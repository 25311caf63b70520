package nlu

import "zari/internal/domain"

// Rewrite collapses a multi-word or inflected phrase to a single vocabulary
// token before matching. Applied in slice order; longer phrases come first so
// a shorter rewrite never corrupts one that contains it.
type Rewrite struct {
	Phrase string
	Token  string
}

type DeviceEntry struct {
	Word   string
	Device domain.DeviceClass
}

type ActionEntry struct {
	Word   string
	Action domain.Action
}

// LocationEntry maps a spoken room name (English, Spanish, or alias) to the
// canonical English name used as the internal key.
type LocationEntry struct {
	Word      string
	Canonical string
}

// Lexicon is the parser's complete vocabulary. Tables are ordered slices and
// the first matching entry wins, so entry order is part of the parsing
// contract: reordering a table changes observable behavior.
type Lexicon struct {
	Rewrites  []Rewrite
	Devices   []DeviceEntry
	Actions   []ActionEntry
	Locations []LocationEntry
}

// DefaultLexicon returns the built-in English/Spanish vocabulary.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		Rewrites: []Rewrite{
			{"turn on", "on"},
			{"turn off", "off"},
			{"switch on", "on"},
			{"switch off", "off"},
			// Spanish infinitives before their shorter imperative
			// forms: rewrites are plain substring replacements, so a
			// shorter phrase applied first would corrupt the longer.
			{"encender", "on"},
			{"enciende", "on"},
			{"prender", "on"},
			{"prende", "on"},
			{"apagar", "off"},
			{"apaga", "off"},
			{"abrir", "open"},
			{"abre", "open"},
			{"cerrar", "close"},
			{"cierra", "close"},
			{"ajustar", "set"},
			{"ajusta", "set"},
			{"poner", "set"},
		},
		Devices: []DeviceEntry{
			// English
			{"lights", domain.DeviceLight},
			{"light", domain.DeviceLight},
			{"lamp", domain.DeviceLight},
			{"fan", domain.DeviceFan},
			{"thermostat", domain.DeviceThermostat},
			{"ac", domain.DeviceThermostat},
			{"air", domain.DeviceThermostat},
			{"garage", domain.DeviceGarage},
			{"garage door", domain.DeviceGarage},
			{"door", domain.DeviceGarage},
			// Spanish
			{"luces", domain.DeviceLight},
			{"luz", domain.DeviceLight},
			{"ventilador", domain.DeviceFan},
			{"termostato", domain.DeviceThermostat},
			{"aire", domain.DeviceThermostat},
			{"garaje", domain.DeviceGarage},
			{"puerta del garaje", domain.DeviceGarage},
			{"puerta", domain.DeviceGarage},
		},
		Actions: []ActionEntry{
			// English
			{"on", domain.ActionOn},
			{"off", domain.ActionOff},
			{"open", domain.ActionOpen},
			{"close", domain.ActionClose},
			{"set", domain.ActionSet},
			{"up", domain.ActionOpen},
			{"down", domain.ActionClose},
			{"start", domain.ActionOn},
			{"stop", domain.ActionOff},
			{"turn on", domain.ActionOn},
			{"turn off", domain.ActionOff},
			{"switch on", domain.ActionOn},
			{"switch off", domain.ActionOff},
			// Spanish
			{"encender", domain.ActionOn},
			{"prender", domain.ActionOn},
			{"apagar", domain.ActionOff},
			{"abrir", domain.ActionOpen},
			{"cerrar", domain.ActionClose},
			{"subir", domain.ActionOpen},
			{"bajar", domain.ActionClose},
			{"ajustar", domain.ActionSet},
			{"poner", domain.ActionSet},
		},
		Locations: []LocationEntry{
			// English canonical names
			{"living room", "living room"},
			{"kitchen", "kitchen"},
			{"bedroom", "bedroom"},
			{"garage", "garage"},
			{"office", "office"},
			{"hallway", "hallway"},
			{"bathroom", "bathroom"},
			// Spanish
			{"sala", "living room"},
			{"cocina", "kitchen"},
			{"dormitorio", "bedroom"},
			{"garaje", "garage"},
			{"oficina", "office"},
			{"pasillo", "hallway"},
			{"baño", "bathroom"},
			{"bano", "bathroom"},
			// Aliases
			{"livingroom", "living room"},
			{"living-room", "living room"},
		},
	}
}
