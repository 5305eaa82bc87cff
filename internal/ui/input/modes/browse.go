package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"burrow/internal/ui/input/types"
)

// BrowseMode is the steady state: printable keys edit the query, arrows
// move the cursor, enter confirms. Keys it does not consume fall through
// to the shared text input.
type BrowseMode struct{}

// NewBrowseMode creates the browse mode handler
func NewBrowseMode() *BrowseMode {
	return &BrowseMode{}
}

func (m *BrowseMode) Name() string {
	return "browse"
}

func (m *BrowseMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *BrowseMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *BrowseMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return []types.Action{types.QuitAction{Force: msg.Type == tea.KeyCtrlC}}, true

	case tea.KeyEnter:
		return []types.Action{types.ConfirmAction{}}, true

	case tea.KeyUp, tea.KeyCtrlP:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown, tea.KeyCtrlN:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyLeft:
		return []types.Action{types.AscendAction{}}, true

	case tea.KeyRight:
		return []types.Action{types.ConfirmAction{DirOnly: true}}, true

	case tea.KeyBackspace:
		// Erasing past an empty query climbs out of the directory; a
		// non-empty query is edited by the text input instead.
		if ctx.QueryEmpty() {
			return []types.Action{types.AscendAction{}}, true
		}
		return nil, false

	case tea.KeyCtrlR:
		return []types.Action{types.RefreshAction{}}, true

	case tea.KeyCtrlG:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeHelp}}, true
	}

	// Everything else, runes included, goes to the text input.
	return nil, false
}
