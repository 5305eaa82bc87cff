package domain

// Entry represents one candidate path in the current directory listing
type Entry struct {
	Path      string // as emitted by the enumerator, relative to the session directory
	Score     int
	Positions []int // rune offsets into Path matched by the current query
	Matched   bool  // whether Path aligns with the current query at all
}

// IsDir reports whether the entry names a directory. Both the external
// enumerator and the walker fallback emit directories with a trailing
// separator.
func (e Entry) IsDir() bool {
	n := len(e.Path)
	return n > 0 && (e.Path[n-1] == '/' || e.Path[n-1] == '\\')
}
