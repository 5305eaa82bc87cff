package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Row is one visible listing line
type Row struct {
	Path      string
	Positions []int // rune offsets to highlight
	IsDir     bool
	Score     int
	Selected  bool
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Dir           string
	PromptLine    string
	Rows          []Row
	MatchedCount  int
	TotalCount    int
	Enumerating   bool
	Spinner       string
	StatusMessage string
	ShowScores    bool
	ShowHelp      bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view: prompt on top, listing below it,
// status line at the bottom.
func (r *Renderer) Render(state ViewState) string {
	if state.ShowHelp {
		return r.renderHelp(state)
	}

	content := &strings.Builder{}

	content.WriteString(r.styles.Prompt.Render(state.PromptLine))
	content.WriteString("\n")

	listHeight := state.Height - 2 // prompt and status lines
	if listHeight < 1 {
		listHeight = 1
	}
	for i := 0; i < listHeight; i++ {
		if i < len(state.Rows) {
			content.WriteString(r.renderRow(state.Rows[i], state.ShowScores, state.Width))
		}
		content.WriteString("\n")
	}

	content.WriteString(r.renderStatus(state))
	return content.String()
}

// renderRow renders one listing line with its match highlights
func (r *Renderer) renderRow(row Row, showScore bool, width int) string {
	base := r.styles.File
	if row.IsDir {
		base = r.styles.Dir
	}

	line := r.highlight(row.Path, row.Positions, base)

	if showScore && row.Score > 0 {
		line += r.styles.Score.Render(fmt.Sprintf(" %d", row.Score))
	}

	if row.Selected {
		return r.styles.Marker.Render("▌ ") + r.styles.Selection.Render(line)
	}
	return "  " + line
}

// highlight renders text with the runes at positions emphasized.
// Positions are ascending rune offsets; anything out of range is
// ignored.
func (r *Renderer) highlight(text string, positions []int, base lipgloss.Style) string {
	if len(positions) == 0 {
		return base.Render(text)
	}

	var out strings.Builder
	var plain []rune
	next := 0
	flush := func() {
		if len(plain) > 0 {
			out.WriteString(base.Render(string(plain)))
			plain = plain[:0]
		}
	}

	for i, ch := range []rune(text) {
		if next < len(positions) && positions[next] == i {
			flush()
			out.WriteString(r.styles.Highlight.Render(string(ch)))
			next++
			continue
		}
		plain = append(plain, ch)
	}
	flush()
	return out.String()
}

// renderStatus renders the bottom status line: directory, match counts
// and enumeration progress.
func (r *Renderer) renderStatus(state ViewState) string {
	parts := []string{
		r.styles.Title.Render("burrow"),
		r.styles.Status.Render(state.Dir),
		r.styles.Status.Render(fmt.Sprintf("%d/%d", state.MatchedCount, state.TotalCount)),
	}

	if state.Enumerating {
		parts = append(parts, r.styles.Dim.Render(state.Spinner+" listing"))
	}
	if state.StatusMessage != "" {
		parts = append(parts, r.styles.Error.Render(state.StatusMessage))
	}
	parts = append(parts, r.styles.Dim.Render("ctrl+g help"))

	return strings.Join(parts, "  ")
}

// renderHelp renders the key binding overlay
func (r *Renderer) renderHelp(state ViewState) string {
	k := r.styles.HelpKey
	lines := []string{
		r.styles.Title.Render("burrow keys"),
		"",
		k.Render("type") + "        filter the listing",
		k.Render("enter") + "       enter directory / open file",
		k.Render("right") + "       enter selected directory",
		k.Render("left") + "        go to parent directory",
		k.Render("backspace") + "   erase; on empty query, go to parent",
		k.Render("up/down") + "     move selection (also ctrl+p/ctrl+n)",
		k.Render("ctrl+r") + "      relist current directory",
		k.Render("ctrl+g") + "      toggle this help",
		k.Render("esc") + "         quit",
		"",
		r.styles.Dim.Render("press any key to close"),
	}
	return r.styles.HelpBox.Render(strings.Join(lines, "\n"))
}
