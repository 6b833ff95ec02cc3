package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// highlight renders s with the runes at matched byte offsets in match style and
// the rest in base style. Consecutive runes sharing a style are rendered
// together.
func highlight(s string, matched []int, base, match lipgloss.Style) string {
	if len(matched) == 0 {
		return base.Render(s)
	}

	hit := make(map[int]struct{}, len(matched))
	for _, i := range matched {
		hit[i] = struct{}{}
	}

	var b strings.Builder
	var seg []rune
	segMatched := false
	flush := func() {
		if len(seg) == 0 {
			return
		}
		if segMatched {
			b.WriteString(match.Render(string(seg)))
		} else {
			b.WriteString(base.Render(string(seg)))
		}
		seg = seg[:0]
	}

	for i, r := range s {
		_, isHit := hit[i]
		if isHit != segMatched {
			flush()
			segMatched = isHit
		}
		seg = append(seg, r)
	}
	flush()

	return b.String()
}
