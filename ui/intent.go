package ui

// Intent is a frontend-independent player input.
type Intent int

const (
	IntentNone Intent = iota
	IntentUp
	IntentDown
	IntentLeft
	IntentRight
	IntentPause
	IntentConfirm
	// IntentBack leaves the current screen; from the menu it quits.
	IntentBack
	// IntentQuit exits from anywhere (window closed, Ctrl-C).
	IntentQuit
)

func (i Intent) String() string {
	switch i {
	case IntentUp:
		return "up"
	case IntentDown:
		return "down"
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	case IntentPause:
		return "pause"
	case IntentConfirm:
		return "confirm"
	case IntentBack:
		return "back"
	case IntentQuit:
		return "quit"
	}
	return "none"
}
