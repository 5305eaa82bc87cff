package viewmodels

import (
	"burrow/internal/config"
	"burrow/internal/ui/entries"
	"burrow/internal/ui/state"
	"burrow/internal/ui/views"
)

// ViewModel transforms session state into view-ready data
type ViewModel struct {
	state  *state.SessionState
	store  *entries.Store
	config *config.Config
	width  int
	height int
}

// NewViewModel creates a new view model
func NewViewModel(st *state.SessionState, store *entries.Store, cfg *config.Config) *ViewModel {
	return &ViewModel{
		state:  st,
		store:  store,
		config: cfg,
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// ListHeight returns how many listing rows fit between the prompt and
// the status line
func (vm *ViewModel) ListHeight() int {
	h := vm.height - 2
	if h < 1 {
		h = 1
	}
	return h
}

// BuildViewState creates a ViewState for rendering. Only the rows inside
// the viewport window are materialized.
func (vm *ViewModel) BuildViewState(prompt, spinner string) views.ViewState {
	listHeight := vm.ListHeight()
	offset := vm.state.ViewportOffset

	ranked := vm.store.Snapshot(offset + listHeight)
	if offset > len(ranked) {
		offset = len(ranked)
	}
	window := ranked[offset:]

	rows := make([]views.Row, len(window))
	for i, e := range window {
		rows[i] = views.Row{
			Path:      e.Path,
			Positions: e.Positions,
			IsDir:     e.IsDir(),
			Score:     e.Score,
			Selected:  offset+i == vm.state.Cursor,
		}
	}

	return views.ViewState{
		Width:         vm.width,
		Height:        vm.height,
		Dir:           vm.state.Dir,
		PromptLine:    prompt,
		Rows:          rows,
		MatchedCount:  vm.store.MatchedLen(),
		TotalCount:    vm.store.Len(),
		Enumerating:   vm.state.Enumerating,
		Spinner:       spinner,
		StatusMessage: vm.state.StatusMessage,
		ShowScores:    vm.config.UI.ShowScores,
		ShowHelp:      vm.state.ShowHelp,
	}
}
