package ui

import (
	"burrow/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// previewDoneMsg contains the result of a file preview session
type previewDoneMsg struct {
	path string
	err  error
}
