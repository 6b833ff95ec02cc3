package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventScanStarted     EventType = "ScanStarted"
	EventEntryDiscovered EventType = "EntryDiscovered"
	EventScanCompleted   EventType = "ScanCompleted"
	EventError           EventType = "Error"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ScanStartedEvent is emitted when discovery begins walking its roots
type ScanStartedEvent struct {
	Roots []string
}

func (e ScanStartedEvent) Type() EventType { return EventScanStarted }

// EntryDiscoveredEvent is emitted for every file found
type EntryDiscoveredEvent struct {
	Entry Entry
}

func (e EntryDiscoveredEvent) Type() EventType { return EventEntryDiscovered }

// ScanCompletedEvent is emitted when discovery finished or was cancelled
type ScanCompletedEvent struct {
	EntriesFound int
	Cancelled    bool
}

func (e ScanCompletedEvent) Type() EventType { return EventScanCompleted }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted after configuration was read
type ConfigLoadedEvent struct {
	Path  string
	Roots []string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted after configuration was written
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
