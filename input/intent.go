package input

// Action is a semantic binding target for a key
type Action uint8

const (
	ActionNone Action = iota

	// Held direction actions, sampled once per frame
	ActionUp
	ActionDown

	// Discrete actions, delivered once as Commands
	ActionBestOf3
	ActionBestOf5
	ActionBestOf7
	ActionExit       // ESC: leave from a menu
	ActionQuit       // Ctrl+C, Ctrl+Q: leave from anywhere
	ActionToggleMute // m
)

// Command is a discrete key-down event consumed by the game once
type Command uint8

const (
	CommandBestOf3 Command = iota + 1
	CommandBestOf5
	CommandBestOf7
	CommandExit
	CommandQuit
	CommandToggleMute
)

// BestOf returns the match length selected by the command, or 0
func (c Command) BestOf() int {
	switch c {
	case CommandBestOf3:
		return 3
	case CommandBestOf5:
		return 5
	case CommandBestOf7:
		return 7
	default:
		return 0
	}
}

// command maps a discrete action to its command; held actions have none
func (a Action) command() (Command, bool) {
	switch a {
	case ActionBestOf3:
		return CommandBestOf3, true
	case ActionBestOf5:
		return CommandBestOf5, true
	case ActionBestOf7:
		return CommandBestOf7, true
	case ActionExit:
		return CommandExit, true
	case ActionQuit:
		return CommandQuit, true
	case ActionToggleMute:
		return CommandToggleMute, true
	default:
		return 0, false
	}
}

// Snapshot is one frame of input
type Snapshot struct {
	Up, Down bool
	Commands []Command
}

// Has reports whether the snapshot carries the command
func (s Snapshot) Has(c Command) bool {
	for _, cmd := range s.Commands {
		if cmd == c {
			return true
		}
	}
	return false
}
