package core

// MatchMode is the top-level state of the game
type MatchMode uint8

const (
	ModeMainMenu MatchMode = iota
	ModePlaying
	ModeGameOverBanner
	ModeMatchOver
	ModeTerminated
)

func (m MatchMode) String() string {
	switch m {
	case ModeMainMenu:
		return "main_menu"
	case ModePlaying:
		return "playing"
	case ModeGameOverBanner:
		return "game_over_banner"
	case ModeMatchOver:
		return "match_over"
	case ModeTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Side identifies one of the two paddles
type Side uint8

const (
	SideNone Side = iota
	SidePlayer
	SideAI
)

// Label is the display name used in banners and logs
func (s Side) Label() string {
	switch s {
	case SidePlayer:
		return "Player"
	case SideAI:
		return "AI"
	default:
		return ""
	}
}
