package views

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func testState(rows []Row) ViewState {
	return ViewState{
		Width:        80,
		Height:       10,
		Dir:          "/home/user",
		PromptLine:   "> qu",
		Rows:         rows,
		MatchedCount: len(rows),
		TotalCount:   len(rows),
	}
}

func TestRenderContainsPromptRowsAndStatus(t *testing.T) {
	r := NewRenderer()

	out := r.Render(testState([]Row{
		{Path: "apple.txt", Positions: []int{0, 1}, Selected: true},
		{Path: "sub/", IsDir: true},
	}))

	assert.Contains(t, out, "> qu")
	assert.Contains(t, out, "apple.txt")
	assert.Contains(t, out, "sub/")
	assert.Contains(t, out, "/home/user")
	assert.Contains(t, out, "2/2")
}

func TestHighlightPreservesText(t *testing.T) {
	r := NewRenderer()

	// Highlighting splits the string into styled spans; stripped of
	// styling the text must survive untouched.
	out := r.highlight("internal/fuzzy/fuzzy.go", []int{0, 9, 15}, r.styles.File)
	stripped := ansiRe.ReplaceAllString(out, "")
	assert.Equal(t, "internal/fuzzy/fuzzy.go", stripped)
}

func TestRenderHelpOverlay(t *testing.T) {
	r := NewRenderer()
	st := testState(nil)
	st.ShowHelp = true

	out := r.Render(st)
	assert.Contains(t, out, "burrow keys")
	assert.Contains(t, out, "backspace")
}

func TestStatusShowsErrorMessage(t *testing.T) {
	r := NewRenderer()
	st := testState(nil)
	st.StatusMessage = "listing /x failed"

	assert.Contains(t, r.Render(st), "listing /x failed")
}
