package state

// SessionState contains all mutable session data. It is owned by the UI
// model and only ever touched from the bubbletea update loop.
type SessionState struct {
	// Navigation
	Dir        string // current directory, absolute
	Query      string // current fuzzy query
	Generation int    // bumped on every directory change

	// Cursor and viewport
	Cursor         int // index into the visible (matched) rows
	ViewportOffset int
	ViewportHeight int

	// Enumeration progress
	Enumerating bool

	// Transient UI state
	StatusMessage string
	ShowHelp      bool
}

// NewSessionState creates session state rooted at dir
func NewSessionState(dir string) *SessionState {
	return &SessionState{
		Dir:            dir,
		Generation:     1,
		ViewportHeight: 20, // until the first WindowSizeMsg
	}
}

// ChangeDir moves the session to dir: the generation advances so output
// from the previous enumeration run is discarded on arrival, and query,
// cursor and progress reset. Returns the new generation.
func (s *SessionState) ChangeDir(dir string) int {
	s.Dir = dir
	s.Query = ""
	s.Generation++
	s.Cursor = 0
	s.ViewportOffset = 0
	s.Enumerating = true
	s.StatusMessage = ""
	return s.Generation
}

// IsCurrent reports whether generation matches the session's; stale
// enumeration output fails this check.
func (s *SessionState) IsCurrent(generation int) bool {
	return generation == s.Generation
}
