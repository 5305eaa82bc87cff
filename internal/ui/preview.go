package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// PreviewOps opens files in the ov pager, handing the terminal over and
// taking it back around the pager session.
type PreviewOps struct {
	program *tea.Program
}

// NewPreviewOps creates a new preview operations instance
func NewPreviewOps() *PreviewOps {
	return &PreviewOps{}
}

// SetProgram sets the program reference for terminal management
func (p *PreviewOps) SetProgram(program *tea.Program) {
	p.program = program
}

// Show displays the file at path in the pager. Blocks until the pager
// exits; run it from a tea.Cmd, never from the update loop.
func (p *PreviewOps) Show(path string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Give ov a moment to fully exit before redrawing over it.
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.Open(path)
	if err != nil {
		return err
	}

	cfg := oviewer.NewConfig()
	cfg.IsWriteOnExit = false
	cfg.IsWriteOriginal = false
	root.SetConfig(cfg)

	return root.Run()
}
