package selection

// Direction represents a single-step movement through the results
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// ScrollBehavior controls how a scroll-into-view request moves the viewport
type ScrollBehavior int

const (
	BehaviorSmooth ScrollBehavior = iota
	BehaviorInstant
)

// ScrollBlock controls where the element lands after scrolling
type ScrollBlock int

const (
	// BlockNearest scrolls the minimal amount; nothing moves if the element
	// is already fully visible.
	BlockNearest ScrollBlock = iota
	BlockStart
	BlockEnd
)

// ScrollOptions is passed to Element.ScrollIntoView
type ScrollOptions struct {
	Behavior ScrollBehavior
	Block    ScrollBlock
}

// Element is one rendered result on a Surface.
type Element interface {
	SetSelected(selected bool)
	ScrollIntoView(opts ScrollOptions)
}

// Surface is the visual container whose elements mirror the results 1:1.
//
// The controller never caches Elements; it asks for them on every sync so the
// owner is free to replace them between calls.
type Surface interface {
	Elements() []Element
	// ContainsFocus reports whether keyboard focus lies inside the surface's
	// owning container.
	ContainsFocus() bool
}

// Observer is notified after navigation changed the selected index
type Observer[T any] func(entry Entry[T], index int)

// InputEvent is a key signal offered to the controller. String returns the
// key name in bubbletea notation ("down", "ctrl+n", "home", ...).
type InputEvent interface {
	String() string
	PreventDefault()
	StopPropagation()
}
