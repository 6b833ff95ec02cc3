package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"spotlight/internal/domain"
)

// PreviewRenderer formats the preview pane content for an entry
type PreviewRenderer struct {
	styles *Styles
	now    func() time.Time
}

// NewPreviewRenderer creates a new preview renderer
func NewPreviewRenderer(styles *Styles) *PreviewRenderer {
	return &PreviewRenderer{
		styles: styles,
		now:    time.Now,
	}
}

// Header renders the entry's path and metadata
func (p *PreviewRenderer) Header(e domain.Entry) string {
	meta := []string{
		humanize.IBytes(uint64(max(0, e.Size))),
		"modified " + humanize.RelTime(e.ModTime, p.now(), "ago", "from now"),
		e.Mode.String(),
	}
	if e.IsExecutable() {
		meta = append(meta, "executable")
	}
	return p.styles.PreviewTitle.Render(e.RelPath) + "\n" + p.styles.Dim.Render(strings.Join(meta, " · "))
}

// Render renders the header followed by body. truncated adds a trailing
// note that only the beginning of the file is shown.
func (p *PreviewRenderer) Render(e domain.Entry, body string, truncated bool) string {
	var b strings.Builder
	b.WriteString(p.Header(e))
	b.WriteString("\n\n")
	b.WriteString(body)
	if truncated {
		b.WriteString("\n")
		b.WriteString(p.styles.Dim.Render(fmt.Sprintf("… (%s shown)", humanize.IBytes(uint64(len(body))))))
	}
	return b.String()
}

// Empty renders the placeholder shown before anything was previewed
func (p *PreviewRenderer) Empty(hint string) string {
	return p.styles.Dim.Render(hint)
}
