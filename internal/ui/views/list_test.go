package views

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spotlight/internal/domain"
	"spotlight/internal/selection"
)

func results(n int) []domain.Result {
	out := make([]domain.Result, n)
	for i := range out {
		out[i] = domain.Result{Entry: domain.Entry{RelPath: fmt.Sprintf("file-%02d.txt", i)}}
	}
	return out
}

func newList(n, height int) *ResultList {
	l := NewResultList(NewStyles(), height)
	l.SetRows(results(n))
	return l
}

var instant = selection.ScrollOptions{Behavior: selection.BehaviorInstant, Block: selection.BlockNearest}

func TestScrollNearestNoopWhenVisible(t *testing.T) {
	l := newList(20, 5)

	for i := range 5 {
		l.Row(i).ScrollIntoView(instant)
		assert.Equal(t, 0, l.Offset())
	}
}

func TestScrollNearestMinimalMove(t *testing.T) {
	l := newList(20, 5)

	l.Row(7).ScrollIntoView(instant)
	assert.Equal(t, 3, l.Offset(), "row 7 becomes the last visible row")

	l.Row(5).ScrollIntoView(instant)
	assert.Equal(t, 3, l.Offset(), "already visible")

	l.Row(1).ScrollIntoView(instant)
	assert.Equal(t, 1, l.Offset(), "row 1 becomes the first visible row")

	l.Row(19).ScrollIntoView(instant)
	assert.Equal(t, 15, l.Offset())
}

func TestScrollBlockStartAndEnd(t *testing.T) {
	l := newList(20, 5)

	l.Row(10).ScrollIntoView(selection.ScrollOptions{Behavior: selection.BehaviorInstant, Block: selection.BlockStart})
	assert.Equal(t, 10, l.Offset())

	l.Row(10).ScrollIntoView(selection.ScrollOptions{Behavior: selection.BehaviorInstant, Block: selection.BlockEnd})
	assert.Equal(t, 6, l.Offset())

	l.Row(18).ScrollIntoView(selection.ScrollOptions{Behavior: selection.BehaviorInstant, Block: selection.BlockStart})
	assert.Equal(t, 15, l.Offset(), "clamped so the viewport stays full")
}

func TestSmoothScrollAnimates(t *testing.T) {
	l := newList(100, 5)

	l.Row(50).ScrollIntoView(selection.ScrollOptions{Behavior: selection.BehaviorSmooth})
	assert.Equal(t, 0, l.Offset())
	require.True(t, l.Animating())

	steps := 0
	last := l.Offset()
	for l.Step() {
		assert.Greater(t, l.Offset(), last)
		last = l.Offset()
		steps++
		require.Less(t, steps, 20)
	}
	assert.Equal(t, 46, l.Offset())
	assert.False(t, l.Animating())

	l.Row(0).ScrollIntoView(selection.ScrollOptions{Behavior: selection.BehaviorSmooth})
	for l.Step() {
	}
	assert.Equal(t, 0, l.Offset())
}

func TestSmoothScrollDisabledJumps(t *testing.T) {
	l := newList(100, 5)
	l.SetSmoothScroll(false)

	l.Row(50).ScrollIntoView(selection.ScrollOptions{Behavior: selection.BehaviorSmooth})
	assert.Equal(t, 46, l.Offset())
	assert.False(t, l.Animating())
}

func TestSetRowsResetsViewport(t *testing.T) {
	l := newList(20, 5)
	l.Row(19).ScrollIntoView(instant)
	l.Row(19).SetSelected(true)

	l.SetRows(results(3))
	assert.Equal(t, 0, l.Offset())
	assert.Equal(t, 3, l.Len())
	for i := range 3 {
		assert.False(t, l.Row(i).Selected())
	}
	assert.Nil(t, l.Row(3))
}

func TestSetHeightClampsOffset(t *testing.T) {
	l := newList(10, 3)
	l.Row(9).ScrollIntoView(instant)
	require.Equal(t, 7, l.Offset())

	l.SetHeight(8)
	assert.Equal(t, 2, l.Offset())
	assert.Equal(t, 8, l.Height())

	l.SetHeight(0)
	assert.Equal(t, 1, l.Height())
}

func TestFocus(t *testing.T) {
	l := newList(1, 1)
	assert.False(t, l.ContainsFocus())
	l.Focus()
	assert.True(t, l.ContainsFocus())
	l.Blur()
	assert.False(t, l.ContainsFocus())
}

func TestViewShowsVisibleRowsAndIndicators(t *testing.T) {
	l := newList(10, 3)
	l.Row(5).SetSelected(true)
	l.Row(5).ScrollIntoView(instant)

	lines := strings.Split(ansi.Strip(l.View(40)), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "↑ 3 more", lines[0])
	assert.Contains(t, lines[1], "file-03.txt")
	assert.Contains(t, lines[3], "▌ file-05.txt")
	assert.Equal(t, "↓ 4 more", lines[4])
}

func TestViewEmpty(t *testing.T) {
	l := newList(0, 3)

	lines := strings.Split(ansi.Strip(l.View(40)), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "No results", lines[1])
}

func TestViewTruncatesToWidth(t *testing.T) {
	l := NewResultList(NewStyles(), 1)
	l.SetRows([]domain.Result{{Entry: domain.Entry{RelPath: strings.Repeat("x", 80)}}})

	line := strings.Split(l.View(20), "\n")[1]
	assert.LessOrEqual(t, ansi.StringWidth(line), 20)
	assert.True(t, strings.HasSuffix(ansi.Strip(line), "…"))
}

func TestHighlightKeepsText(t *testing.T) {
	s := NewStyles()
	out := highlight("héllo/wörld", []int{0, 1, 7}, s.Row, s.Match)
	assert.Equal(t, "héllo/wörld", ansi.Strip(out))
	assert.Equal(t, "plain", ansi.Strip(highlight("plain", nil, s.Row, s.Match)))
}

func TestControllerDrivesResultList(t *testing.T) {
	l := NewResultList(NewStyles(), 3)
	l.SetSmoothScroll(false)
	c := selection.NewController[domain.Result](l, nil)

	rs := results(10)
	l.SetRows(rs)
	c.ReplaceResults(rs)

	for range 6 {
		c.MoveSelection(selection.DirectionDown)
	}
	assert.Equal(t, 6, c.Index())
	assert.Equal(t, 4, l.Offset())
	for i := range l.Len() {
		assert.Equal(t, i == 6, l.Row(i).Selected())
	}

	c.MoveToFirst()
	assert.Equal(t, 0, l.Offset())
}
