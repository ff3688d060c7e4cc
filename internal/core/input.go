package core

// Action represents a semantic player action, abstracted from physical keys.
type Action int

const (
	ActionNone   Action = iota
	ActionPress         // Space, Enter - the game button
	ActionScores        // S, Tab - toggle the scoreboard
	ActionBack          // B, Escape - leave the scoreboard
	ActionQuit          // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPress:
		return "Press"
	case ActionScores:
		return "Scores"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
