package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"burrow/internal/ui/input/types"
)

// HelpMode shows the key binding overlay; any key closes it except
// Ctrl+C, which still quits.
type HelpMode struct{}

// NewHelpMode creates the help mode handler
func NewHelpMode() *HelpMode {
	return &HelpMode{}
}

func (m *HelpMode) Name() string {
	return "help"
}

func (m *HelpMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *HelpMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *HelpMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}
	return []types.Action{types.ChangeModeAction{Mode: types.ModeBrowse}}, true
}
