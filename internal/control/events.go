package control

import "strings"

// Event is a discrete operator command.
type Event int

const (
	Hotter Event = iota
	Colder
	Faster
	Slower
	MoreSteps
	LessSteps
	ToggleInfo
	ManualWolff
	SwitchAlgorithm
	Quit
)

var eventNames = [...]string{
	Hotter:          "hotter",
	Colder:          "colder",
	Faster:          "faster",
	Slower:          "slower",
	MoreSteps:       "more-steps",
	LessSteps:       "less-steps",
	ToggleInfo:      "toggle-info",
	ManualWolff:     "manual-wolff",
	SwitchAlgorithm: "switch-algorithm",
	Quit:            "quit",
}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[e]
}

// Commands lists the recognized keys in legend order.
const Commands = "hcfsmliwaq"

// KeyEvent maps a single case-sensitive key to its event. ok is false for
// unrecognized keys, which callers ignore.
func KeyEvent(key rune) (ev Event, ok bool) {
	switch key {
	case 'h':
		return Hotter, true
	case 'c':
		return Colder, true
	case 'f':
		return Faster, true
	case 's':
		return Slower, true
	case 'm':
		return MoreSteps, true
	case 'l':
		return LessSteps, true
	case 'i':
		return ToggleInfo, true
	case 'w':
		return ManualWolff, true
	case 'a':
		return SwitchAlgorithm, true
	case 'q':
		return Quit, true
	}
	return 0, false
}

// Algorithm selects the updater run on each generation.
type Algorithm int

const (
	Metropolis Algorithm = iota
	Wolff
)

func (a Algorithm) String() string {
	switch a {
	case Metropolis:
		return "Metropolis"
	case Wolff:
		return "Wolff"
	}
	return "unknown"
}

// ParseAlgorithm accepts "metropolis" or "wolff" in any case.
func ParseAlgorithm(s string) (Algorithm, bool) {
	switch strings.ToLower(s) {
	case "metropolis":
		return Metropolis, true
	case "wolff":
		return Wolff, true
	}
	return 0, false
}
