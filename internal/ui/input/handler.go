package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"burrow/internal/ui/input/modes"
	"burrow/internal/ui/input/types"
)

// Handler routes key events to the active mode and owns the shared query
// text input. Keys a mode does not consume are fed to the text input
// while browsing, so typing always edits the query.
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model
}

// New creates the input handler with the query prompt focused
func New() *Handler {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()

	h := &Handler{
		currentMode: types.ModeBrowse,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeBrowse] = modes.NewBrowseMode()
	h.modes[types.ModeHelp] = modes.NewHelpMode()

	return h
}

// HandleKey processes one key event and returns the actions to apply
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			if exiting := h.modes[h.currentMode]; exiting != nil {
				allActions = append(allActions, exiting.Exit(ctx)...)
			}
			h.currentMode = changeMode.Mode
			if entering := h.modes[h.currentMode]; entering != nil {
				allActions = append(allActions, entering.Enter(ctx)...)
			}
			allActions = append(allActions, changeMode)
		} else {
			allActions = append(allActions, action)
		}
	}

	// Unconsumed keys edit the query while browsing.
	if !consumed && h.currentMode == types.ModeBrowse {
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		allActions = append(allActions, types.UpdateQueryAction{Text: h.textInput.Value()})
	}

	return allActions, cmd
}

// Query returns the current query text
func (h *Handler) Query() string {
	return h.textInput.Value()
}

// ResetQuery clears the query prompt, used on directory change
func (h *Handler) ResetQuery() {
	h.textInput.Reset()
}

// PromptView renders the query prompt line
func (h *Handler) PromptView() string {
	return h.textInput.View()
}

// Update forwards non-key messages (cursor blink) to the text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}
