package nlu

import (
	"regexp"
	"strconv"
	"strings"

	"zari/internal/domain"
)

var numberRe = regexp.MustCompile(`-?\d+(\.\d+)?`)

// Parser turns a raw transcript into a structured Intent. It is pure and
// deterministic: same transcript in, same Intent out, no side effects, and it
// never fails — unparseable input degrades to IntentUnknown or IntentNone.
type Parser struct {
	lex       *Lexicon
	devices   []devicePattern
	actions   []actionPattern
	locations []locationPattern
}

type devicePattern struct {
	re     *regexp.Regexp
	device domain.DeviceClass
}

type actionPattern struct {
	re     *regexp.Regexp
	action domain.Action
}

type locationPattern struct {
	re        *regexp.Regexp
	canonical string
}

// NewParser compiles the lexicon's whole-word patterns once up front.
// Pattern order follows table order; matching is first-entry-wins.
func NewParser(lex *Lexicon) *Parser {
	p := &Parser{lex: lex}
	for _, e := range lex.Devices {
		p.devices = append(p.devices, devicePattern{wholeWord(e.Word), e.Device})
	}
	for _, e := range lex.Actions {
		p.actions = append(p.actions, actionPattern{wholeWord(e.Word), e.Action})
	}
	for _, e := range lex.Locations {
		p.locations = append(p.locations, locationPattern{wholeWord(e.Word), e.Canonical})
	}
	return p
}

// wholeWord matches w bounded by word boundaries; spaces inside a multi-word
// phrase are literal, not boundary-sensitive.
func wholeWord(w string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(w) + `\b`)
}

// Parse interprets a transcript. The returned Intent carries the original
// transcript in Raw for diagnostics; it is never parsed a second time.
func (p *Parser) Parse(transcript string) domain.Intent {
	t := strings.ToLower(strings.TrimSpace(transcript))
	if t == "" {
		return domain.Intent{Kind: domain.IntentNone, Raw: transcript}
	}

	for _, r := range p.lex.Rewrites {
		t = strings.ReplaceAll(t, r.Phrase, r.Token)
	}

	var device domain.DeviceClass
	for _, d := range p.devices {
		if d.re.MatchString(t) {
			device = d.device
			break
		}
	}

	var action domain.Action
	for _, a := range p.actions {
		if a.re.MatchString(t) {
			action = a.action
			break
		}
	}

	var location string
	for _, l := range p.locations {
		if l.re.MatchString(t) {
			location = l.canonical
			break
		}
	}
	// "open the garage" names the device, not the room of the same name.
	if device == domain.DeviceGarage && location == "garage" {
		location = ""
	}

	// Numeric payload only makes sense for a thermostat setpoint or an
	// explicit "set" on a known device. Fractions truncate toward zero.
	var value *int
	if device == domain.DeviceThermostat || (action == domain.ActionSet && device != "") {
		if m := numberRe.FindString(t); m != "" {
			if f, err := strconv.ParseFloat(m, 64); err == nil {
				value = domain.Int(int(f))
			}
		}
	}

	if device == "" {
		switch action {
		case domain.ActionOn, domain.ActionOff:
			device = domain.DeviceLight
		case domain.ActionOpen, domain.ActionClose:
			device = domain.DeviceGarage
		}
	}
	if device == domain.DeviceLight && location == "" {
		location = "living room"
	}
	if device == domain.DeviceThermostat && action == "" {
		action = domain.ActionSet
	}

	kind := domain.IntentUnknown
	if device != "" {
		kind = domain.IntentDeviceControl
	}

	return domain.Intent{
		Kind:     kind,
		Device:   device,
		Action:   action,
		Location: location,
		Value:    value,
		Raw:      transcript,
	}
}
