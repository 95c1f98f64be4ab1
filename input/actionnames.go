package input

// actionRegistry maps canonical action names used in keymap files
var actionRegistry = map[string]Action{
	// Unbind sentinel
	"none": ActionNone,

	"up":        ActionUp,
	"down":      ActionDown,
	"best_of_3": ActionBestOf3,
	"best_of_5": ActionBestOf5,
	"best_of_7": ActionBestOf7,
	"exit":      ActionExit,
	"quit":      ActionQuit,
	"mute":      ActionToggleMute,
}

// defaultBindings lists the built-in keys per action name
// Rune keys are single characters; special keys use tcell key names
var defaultBindings = map[string][]string{
	"up":        {"w", "Up"},
	"down":      {"s", "Down"},
	"best_of_3": {"3"},
	"best_of_5": {"5"},
	"best_of_7": {"7"},
	"exit":      {"Esc"},
	"quit":      {"Ctrl-C", "Ctrl-Q"},
	"mute":      {"m"},
}
