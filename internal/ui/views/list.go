package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"spotlight/internal/domain"
	"spotlight/internal/selection"
)

const (
	selectedMarker = "▌ "
	plainMarker    = "  "
)

// Row is one rendered result
type Row struct {
	Result   domain.Result
	list     *ResultList
	index    int
	selected bool
}

// SetSelected implements selection.Element
func (r *Row) SetSelected(selected bool) {
	r.selected = selected
}

// Selected reports whether the row carries the selected marker
func (r *Row) Selected() bool {
	return r.selected
}

// ScrollIntoView implements selection.Element
func (r *Row) ScrollIntoView(opts selection.ScrollOptions) {
	r.list.scrollTo(r.index, opts)
}

// ResultList renders results in a fixed-height viewport. It implements
// selection.Surface.
type ResultList struct {
	styles  *Styles
	rows    []*Row
	height  int
	offset  int // first visible row
	target  int // offset a smooth scroll is heading to
	focused bool
	smooth  bool
}

var _ selection.Surface = (*ResultList)(nil)

// NewResultList creates a list showing height rows at a time
func NewResultList(styles *Styles, height int) *ResultList {
	return &ResultList{
		styles: styles,
		height: max(1, height),
		smooth: true,
	}
}

// SetRows replaces every rendered row. Selection markers start cleared.
func (l *ResultList) SetRows(results []domain.Result) {
	l.rows = make([]*Row, len(results))
	for i, r := range results {
		l.rows[i] = &Row{Result: r, list: l, index: i}
	}
	l.offset = 0
	l.target = 0
}

// Elements implements selection.Surface
func (l *ResultList) Elements() []selection.Element {
	out := make([]selection.Element, len(l.rows))
	for i, r := range l.rows {
		out[i] = r
	}
	return out
}

// ContainsFocus implements selection.Surface
func (l *ResultList) ContainsFocus() bool {
	return l.focused
}

// Focus marks the list's container as focused
func (l *ResultList) Focus() {
	l.focused = true
}

// Blur removes focus from the list's container
func (l *ResultList) Blur() {
	l.focused = false
}

// SetSmoothScroll toggles animated scrolling. When off, every scroll request
// jumps.
func (l *ResultList) SetSmoothScroll(smooth bool) {
	l.smooth = smooth
	if !smooth {
		l.offset = l.target
	}
}

// SetHeight changes how many rows are visible
func (l *ResultList) SetHeight(height int) {
	l.height = max(1, height)
	l.target = l.clampOffset(l.target)
	l.offset = l.clampOffset(l.offset)
}

// Height returns the number of visible rows
func (l *ResultList) Height() int {
	return l.height
}

// Len returns the number of rows
func (l *ResultList) Len() int {
	return len(l.rows)
}

// Row returns the row at index, or nil
func (l *ResultList) Row(index int) *Row {
	if index < 0 || index >= len(l.rows) {
		return nil
	}
	return l.rows[index]
}

// Offset returns the index of the first visible row
func (l *ResultList) Offset() int {
	return l.offset
}

// Animating reports whether a smooth scroll is still in progress
func (l *ResultList) Animating() bool {
	return l.offset != l.target
}

// Step advances a smooth scroll by half the remaining distance, at least
// one row. It returns whether more steps are needed.
func (l *ResultList) Step() bool {
	d := l.target - l.offset
	switch {
	case d > 0:
		l.offset += max(1, d/2)
	case d < 0:
		l.offset -= max(1, -d/2)
	}
	return l.Animating()
}

// scrollTo moves the viewport so row index becomes visible. Visibility is
// judged against where the viewport is heading, so requests made during an
// animation compose.
func (l *ResultList) scrollTo(index int, opts selection.ScrollOptions) {
	target := l.target
	switch opts.Block {
	case selection.BlockStart:
		target = index
	case selection.BlockEnd:
		target = index - l.height + 1
	default:
		if index < target {
			target = index
		} else if index >= target+l.height {
			target = index - l.height + 1
		}
	}
	l.target = l.clampOffset(target)

	if opts.Behavior == selection.BehaviorInstant || !l.smooth {
		l.offset = l.target
	}
}

func (l *ResultList) clampOffset(offset int) int {
	maxOffset := max(0, len(l.rows)-l.height)
	return max(0, min(offset, maxOffset))
}

// View renders the visible rows at the given width. The output always has
// height+2 lines: a scroll indicator line above and below the rows.
func (l *ResultList) View(width int) string {
	lines := make([]string, 0, l.height+2)

	if l.offset > 0 {
		lines = append(lines, l.styles.Scroll.Render(fmt.Sprintf("↑ %d more", l.offset)))
	} else {
		lines = append(lines, "")
	}

	end := min(l.offset+l.height, len(l.rows))
	for i := l.offset; i < end; i++ {
		lines = append(lines, l.renderRow(l.rows[i], width))
	}
	if len(l.rows) == 0 {
		lines = append(lines, l.styles.Dim.Render("No results"))
	}
	for len(lines) < l.height+1 {
		lines = append(lines, "")
	}

	if below := len(l.rows) - end; below > 0 {
		lines = append(lines, l.styles.Scroll.Render(fmt.Sprintf("↓ %d more", below)))
	} else {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func (l *ResultList) renderRow(r *Row, width int) string {
	base, match, marker := l.styles.Row, l.styles.Match, plainMarker
	if r.selected {
		base, match = l.styles.SelectedRow, l.styles.SelectedMatch
		marker = l.styles.Marker.Render(selectedMarker)
	}

	line := marker + highlight(r.Result.Entry.RelPath, r.Result.MatchedIndexes, base, match)
	if width > 0 {
		line = ansi.Truncate(line, width, "…")
		if r.selected {
			if pad := width - ansi.StringWidth(line); pad > 0 {
				line += base.Render(strings.Repeat(" ", pad))
			}
		}
	}
	return line
}
