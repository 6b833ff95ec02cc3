package selection

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
)

// Controller tracks which result is selected, moves the selection on
// directional input and keeps a Surface in sync with it.
//
// A Controller is not safe for concurrent use; drive it from the UI loop.
type Controller[T any] struct {
	surface  Surface
	observer Observer[T]
	keys     KeyMap

	results  []T
	selected int
}

// NewController creates a controller for the given surface. observer may be
// nil.
func NewController[T any](surface Surface, observer Observer[T]) *Controller[T] {
	return &Controller[T]{
		surface:  surface,
		observer: observer,
		keys:     DefaultKeyMap(),
	}
}

// SetKeyMap replaces the recognized directional bindings
func (c *Controller[T]) SetKeyMap(keys KeyMap) {
	c.keys = keys
}

// KeyMap returns the recognized directional bindings
func (c *Controller[T]) KeyMap() KeyMap {
	return c.keys
}

// ReplaceResults stores a new result set and resets the selection to the
// first entry. The observer is never notified: a refresh is not navigation.
func (c *Controller[T]) ReplaceResults(results []T) {
	c.results = slices.Clone(results)
	c.selected = 0
	c.syncVisualSelection()
}

// MoveSelection moves one step in the given direction, clamped to the
// results.
func (c *Controller[T]) MoveSelection(direction Direction) {
	switch direction {
	case DirectionDown:
		c.moveTo(c.selected + 1)
	case DirectionUp:
		c.moveTo(c.selected - 1)
	}
}

// MoveToFirst selects the first result
func (c *Controller[T]) MoveToFirst() {
	c.moveTo(0)
}

// MoveToLast selects the last result
func (c *Controller[T]) MoveToLast() {
	c.moveTo(c.lastIndex())
}

// SelectedEntry returns the selected result, or None when there is none.
func (c *Controller[T]) SelectedEntry() Entry[T] {
	return c.entryAt(c.selected)
}

// Index returns the selected index
func (c *Controller[T]) Index() int {
	return c.selected
}

// Len returns the number of results
func (c *Controller[T]) Len() int {
	return len(c.results)
}

// Results returns a copy of the current results
func (c *Controller[T]) Results() []T {
	return slices.Clone(c.results)
}

// HandleInput translates a directional key signal into navigation. It
// returns true when the event was consumed; in that case the event's default
// action and propagation have been suppressed.
//
// Unless bypassFocusCheck is set, events are ignored while focus is outside
// the surface's container.
func (c *Controller[T]) HandleInput(ev InputEvent, bypassFocusCheck bool) bool {
	if !bypassFocusCheck && !c.surface.ContainsFocus() {
		return false
	}

	switch {
	case key.Matches(ev, c.keys.Down):
		c.MoveSelection(DirectionDown)
	case key.Matches(ev, c.keys.Up):
		c.MoveSelection(DirectionUp)
	case key.Matches(ev, c.keys.First):
		c.MoveToFirst()
	case key.Matches(ev, c.keys.Last):
		c.MoveToLast()
	default:
		return false
	}

	ev.PreventDefault()
	ev.StopPropagation()
	return true
}

// moveTo clamps index, syncs the surface and notifies the observer if the
// index changed.
func (c *Controller[T]) moveTo(index int) {
	old := c.selected
	c.selected = c.clampIndex(index)
	c.syncVisualSelection()

	if old != c.selected && c.observer != nil {
		c.observer(c.SelectedEntry(), c.selected)
	}
}

// clampIndex applies the upper bound first and the floor last, so an empty
// result set always lands on 0.
func (c *Controller[T]) clampIndex(index int) int {
	return max(min(index, c.lastIndex()), 0)
}

func (c *Controller[T]) lastIndex() int {
	return max(0, len(c.results)-1)
}

func (c *Controller[T]) entryAt(index int) Entry[T] {
	if index < 0 || index >= len(c.results) {
		return None[T]()
	}
	return Some(c.results[index])
}

// syncVisualSelection marks exactly the element at the selected index and
// brings it into view. It recomputes every element on each call.
func (c *Controller[T]) syncVisualSelection() {
	elements := c.surface.Elements()
	for i, el := range elements {
		el.SetSelected(i == c.selected)
	}

	if c.selected < len(elements) {
		elements[c.selected].ScrollIntoView(ScrollOptions{
			Behavior: BehaviorSmooth,
			Block:    BlockNearest,
		})
	}
}
