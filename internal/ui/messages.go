package ui

import (
	"time"

	"spotlight/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg drives smooth scrolling of the result list
type tickMsg time.Time

// flushMsg applies entries discovered since the last refresh
type flushMsg struct{}

// previewMsg carries the beginning of a file for the preview pane
type previewMsg struct {
	path      string
	body      string
	truncated bool
	err       error
}

// pagerMsg is sent when the pager exits
type pagerMsg struct {
	path string
	err  error
}
