package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventEnumRequested     EventType = "EnumRequested"
	EventEnumStarted       EventType = "EnumStarted"
	EventEntriesFoundBatch EventType = "EntriesFoundBatch"
	EventEnumCompleted     EventType = "EnumCompleted"
	EventError             EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// EnumRequestedEvent is emitted to request enumeration of a directory.
// Generation is the session generation active when the request was made;
// everything the resulting run produces carries the same tag.
type EnumRequestedEvent struct {
	Generation int
	Dir        string
}

func (e EnumRequestedEvent) Type() EventType { return EventEnumRequested }

// EnumStartedEvent is emitted when an enumeration run begins
type EnumStartedEvent struct {
	Generation int
	Dir        string
}

func (e EnumStartedEvent) Type() EventType { return EventEnumStarted }

// EntriesFoundBatchEvent carries a batch of discovered paths for one
// enumeration run. Paths are relative to the run's directory.
type EntriesFoundBatchEvent struct {
	Generation int
	Paths      []string
}

func (e EntriesFoundBatchEvent) Type() EventType { return EventEntriesFoundBatch }

// EnumCompletedEvent is emitted when an enumeration run finishes,
// successfully or not. Found counts the paths emitted before completion.
type EnumCompletedEvent struct {
	Generation int
	Found      int
}

func (e EnumCompletedEvent) Type() EventType { return EventEnumCompleted }

// ErrorEvent is emitted when a recoverable error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
