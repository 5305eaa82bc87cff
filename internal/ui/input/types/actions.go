package types

// UpdateQueryAction carries the query text after an edit
type UpdateQueryAction struct {
	Text string
}

func (a UpdateQueryAction) Type() string { return "update_query" }

// NavigateAction moves the cursor over the visible rows
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// ConfirmAction descends into the selected directory, opens the selected
// file, or, with no rows, resolves the raw query as a subpath. DirOnly
// restricts it to descending.
type ConfirmAction struct {
	DirOnly bool
}

func (a ConfirmAction) Type() string { return "confirm" }

// AscendAction moves the session to the parent directory
type AscendAction struct{}

func (a AscendAction) Type() string { return "ascend" }

// RefreshAction restarts enumeration for the current directory
type RefreshAction struct{}

func (a RefreshAction) Type() string { return "refresh" }

// ChangeModeAction switches the input mode
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// QuitAction ends the session
type QuitAction struct {
	Force bool // true for Ctrl+C
}

func (a QuitAction) Type() string { return "quit" }
