// Package tui provides the terminal user interface for tracker.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal  Mode = iota // Default navigation mode
	ModeDraft               // New-task input mode
	ModeSearch              // Live search input mode
	ModeConfirm             // Delete confirmation dialog
	ModeHelp                // Help overlay mode
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeDraft:
		return "draft"
	case ModeSearch:
		return "search"
	case ModeConfirm:
		return "confirm"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeDraft, ModeSearch:
		return true
	case ModeNormal, ModeConfirm, ModeHelp:
		return false
	}
	return false
}
