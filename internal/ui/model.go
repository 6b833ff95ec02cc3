package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"spotlight/internal/config"
	"spotlight/internal/domain"
	"spotlight/internal/eventbus"
	"spotlight/internal/ranking"
	"spotlight/internal/selection"
	"spotlight/internal/ui/views"
)

const (
	tickInterval  = 16 * time.Millisecond
	flushInterval = 100 * time.Millisecond

	// picker chrome: title, blank, input, help
	pickerChrome = 4
	// preview box borders
	previewChrome = 2
	minPreview    = 3
)

// Scanner discovers entries in the background. The model uses it to rescan.
type Scanner interface {
	StartScan(ctx context.Context, roots []string) error
	Progress() domain.ScanProgress
}

// focusArea is the pane receiving keys that the selection controller leaves
type focusArea int

const (
	focusPicker focusArea = iota
	focusPreview
)

// Model represents the UI state
type Model struct {
	config *config.Config
	index  *ranking.Index
	styles *views.Styles
	keys   KeyMap

	input     textinput.Model
	list      *views.ResultList
	selector  *selection.Controller[domain.Result]
	preview   viewport.Model
	previewer *views.PreviewRenderer
	help      help.Model

	scanner Scanner
	scanCtx context.Context

	focus        focusArea
	previewPath  string    // entry the preview pane shows or is loading
	pendingCmds  []tea.Cmd // queued by the selection observer
	query        string    // query the current results were ranked for
	stale        bool      // entries were discovered after the last refresh
	flushPending bool
	ticking      bool

	scanning bool
	found    int
	lastErr  string

	width  int
	height int
}

// NewModel creates a new UI model
func NewModel(cfg *config.Config, index *ranking.Index) *Model {
	styles := views.NewStyles()

	m := &Model{
		config:    cfg,
		index:     index,
		styles:    styles,
		keys:      KeyMapFromConfig(cfg.Keys),
		list:      views.NewResultList(styles, cfg.UI.ListHeight),
		previewer: views.NewPreviewRenderer(styles),
		help:      help.New(),
		preview:   viewport.New(cfg.UI.Width, minPreview),
	}

	m.input = textinput.New()
	m.input.Prompt = "› "
	m.input.PromptStyle = styles.Prompt
	m.input.Placeholder = "Type to search"
	m.input.Focus()

	m.list.SetSmoothScroll(cfg.UI.SmoothScroll)
	m.list.Focus()

	m.selector = selection.NewController(m.list, m.onSelectionChanged)
	m.selector.SetKeyMap(m.keys.Nav)

	m.preview.SetContent(m.previewer.Empty("Move through the results to preview them"))
	m.layout()
	m.refresh()

	return m
}

// SetScanner lets the rescan binding restart discovery with ctx
func (m *Model) SetScanner(ctx context.Context, scanner Scanner) {
	m.scanCtx = ctx
	m.scanner = scanner
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case flushMsg:
		m.flushPending = false
		m.flush()
		return m, m.startTicking()

	case tickMsg:
		m.ticking = false
		m.list.Step()
		return m, m.startTicking()

	case previewMsg:
		m.applyPreview(msg)
		return m, nil

	case pagerMsg:
		if msg.err != nil {
			log.Printf("Pager failed for %s: %v", msg.path, msg.err)
			m.lastErr = fmt.Sprintf("pager: %v", msg.err)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey offers the key to the selection controller first, then to the
// global bindings, then to the focused pane.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ev := &keyEvent{msg: msg}
	if m.selector.HandleInput(ev, false) {
		return m, tea.Batch(m.takePendingCmds(), m.startTicking())
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.Focus):
		m.toggleFocus()
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		switch {
		case m.focus == focusPreview:
			m.toggleFocus()
		case m.input.Value() != "":
			m.input.SetValue("")
			m.refresh()
		default:
			return m, tea.Quit
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Rescan):
		return m, m.rescan()

	case key.Matches(msg, m.keys.Open):
		if r, ok := m.selector.SelectedEntry().Get(); ok {
			log.Printf("Opening %s in pager", r.Entry.Path)
			return m, openInPager(r.Entry.Path)
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusPreview:
		m.preview, cmd = m.preview.Update(msg)
	default:
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != m.query {
			m.refresh()
		}
	}
	return m, cmd
}

func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.ScanStartedEvent:
		m.scanning = true
		m.found = 0
	case eventbus.EntryDiscoveredEvent:
		if m.index.Add(e.Entry) > 0 {
			m.found++
			m.stale = true
		}
		return m.scheduleFlush()
	case eventbus.ScanCompletedEvent:
		m.scanning = false
		log.Printf("Scan completed: %d entries (cancelled: %v)", e.EntriesFound, e.Cancelled)
		return m.scheduleFlush()
	case eventbus.ConfigLoadedEvent:
		log.Printf("Config loaded from %s (roots: %v)", e.Path, e.Roots)
	case eventbus.ErrorEvent:
		m.lastErr = e.Message
		if e.Err != nil {
			m.lastErr = fmt.Sprintf("%s: %v", e.Message, e.Err)
		}
	}
	return nil
}

// rescan forgets every entry and scans the last roots again. The scan is
// started from a command because publishing may block until this loop
// consumes earlier events.
func (m *Model) rescan() tea.Cmd {
	if m.scanner == nil {
		return nil
	}
	progress := m.scanner.Progress()
	if progress.IsScanning {
		m.lastErr = "scan already in progress"
		return nil
	}
	if len(progress.Roots) == 0 {
		return nil
	}

	log.Printf("Rescanning %v", progress.Roots)
	m.lastErr = ""
	m.index.Reset()
	m.refresh()

	ctx, scanner, roots := m.scanCtx, m.scanner, progress.Roots
	return func() tea.Msg {
		if err := scanner.StartScan(ctx, roots); err != nil {
			return EventMsg{Event: eventbus.ErrorEvent{Message: "Failed to start scan", Err: err}}
		}
		return nil
	}
}

// scheduleFlush coalesces discovered entries into one refresh per interval
func (m *Model) scheduleFlush() tea.Cmd {
	if m.flushPending {
		return nil
	}
	m.flushPending = true
	return tea.Tick(flushInterval, func(time.Time) tea.Msg { return flushMsg{} })
}

// flush applies newly discovered entries unless the user has navigated away
// from the first result; a refresh would throw that position away.
func (m *Model) flush() {
	if !m.stale || m.selector.Index() != 0 {
		return
	}
	m.refresh()
}

// refresh re-ranks the current query and replaces the results. This is a
// passive refresh: the selection resets and the preview is left alone.
func (m *Model) refresh() {
	m.query = m.input.Value()
	results := m.index.Query(m.query, m.config.UI.MaxResults)
	m.list.SetRows(results)
	m.selector.ReplaceResults(results)
	m.stale = false
}

// onSelectionChanged is the selection observer. It only fires on navigation.
func (m *Model) onSelectionChanged(entry selection.Entry[domain.Result], index int) {
	r, ok := entry.Get()
	if !ok {
		m.previewPath = ""
		m.preview.SetContent(m.previewer.Empty("No result selected"))
		return
	}
	if !m.config.UI.ShowPreview || r.Entry.Path == m.previewPath {
		return
	}
	m.previewPath = r.Entry.Path
	m.pendingCmds = append(m.pendingCmds, loadPreview(r.Entry.Path, m.config.UI.PreviewBytes))
}

func (m *Model) takePendingCmds() tea.Cmd {
	cmds := m.pendingCmds
	m.pendingCmds = nil
	return tea.Batch(cmds...)
}

// applyPreview shows a loaded preview if it is still the one wanted
func (m *Model) applyPreview(msg previewMsg) {
	if msg.path != m.previewPath {
		return
	}
	r, ok := m.selector.SelectedEntry().Get()
	if !ok || r.Entry.Path != msg.path {
		// nothing shows msg.path now; navigating back must load it again
		m.previewPath = ""
		return
	}

	var content string
	switch {
	case errors.Is(msg.err, errBinary):
		content = m.previewer.Render(r.Entry, m.styles.Dim.Render("binary file"), false)
	case msg.err != nil:
		log.Printf("Preview failed: %v", msg.err)
		content = m.previewer.Render(r.Entry, m.styles.StatusError.Render(msg.err.Error()), false)
	default:
		content = m.previewer.Render(r.Entry, msg.body, msg.truncated)
	}
	m.preview.SetContent(content)
	m.preview.GotoTop()
}

func (m *Model) toggleFocus() {
	if m.focus == focusPicker && m.showPreview() {
		m.focus = focusPreview
		m.list.Blur()
		m.input.Blur()
		return
	}
	m.focus = focusPicker
	m.list.Focus()
	m.input.Focus()
}

// startTicking keeps the animation loop running while the list scrolls
func (m *Model) startTicking() tea.Cmd {
	if m.ticking || !m.list.Animating() {
		return nil
	}
	m.ticking = true
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) boxWidth() int {
	w := m.config.UI.Width
	if m.width > 0 {
		w = min(w, m.width-2)
	}
	return views.BoxWidth(m.styles, w)
}

func (m *Model) showPreview() bool {
	return m.config.UI.ShowPreview && m.previewHeight() >= minPreview
}

func (m *Model) previewHeight() int {
	if m.height == 0 {
		return m.config.UI.ListHeight
	}
	used := pickerChrome + m.list.Height() + 2 + m.styles.Box.GetVerticalFrameSize() + previewChrome
	if m.help.ShowAll {
		used += 3
	}
	return m.height - used
}

// layout fits the list and preview into the terminal
func (m *Model) layout() {
	listHeight := m.config.UI.ListHeight
	if m.height > 0 {
		// keep room for the picker chrome and list indicators
		listHeight = min(listHeight, m.height-pickerChrome-2-m.styles.Box.GetVerticalFrameSize())
	}
	m.list.SetHeight(listHeight)

	width := m.boxWidth()
	m.input.Width = max(1, width-lipgloss.Width(m.input.Prompt)-1)
	m.help.Width = width
	m.preview.Width = max(1, width-m.styles.PreviewBox.GetHorizontalFrameSize())
	m.preview.Height = max(minPreview, m.previewHeight())

	if m.focus == focusPreview && !m.showPreview() {
		m.toggleFocus()
	}
}

// View implements tea.Model
func (m *Model) View() string {
	width := m.boxWidth()

	sections := []string{
		m.renderHeader(width),
		"",
		m.input.View(),
		m.list.View(width),
		m.help.View(m.keys),
	}
	box := m.styles.Box.Render(strings.Join(sections, "\n"))

	if m.showPreview() {
		previewStyle := m.styles.PreviewBox.Width(width)
		if m.focus == focusPreview {
			previewStyle = previewStyle.BorderForeground(lipgloss.Color("99"))
		}
		box = lipgloss.JoinVertical(lipgloss.Left, box, previewStyle.Render(m.preview.View()))
	}

	return views.RenderOverlay(box, m.width, m.height)
}

func (m *Model) renderHeader(width int) string {
	title := m.styles.Title.Render("spotlight")
	status := m.renderStatus()
	gap := max(1, width-lipgloss.Width(title)-lipgloss.Width(status))
	return title + strings.Repeat(" ", gap) + status
}

func (m *Model) renderStatus() string {
	var parts []string
	if m.lastErr != "" {
		parts = append(parts, m.styles.StatusError.Render(m.lastErr))
	}
	if m.scanning {
		parts = append(parts, m.styles.StatusScan.Render(fmt.Sprintf("scanning… %d files", m.found)))
	}
	if m.stale {
		parts = append(parts, m.styles.StatusScan.Render(m.keys.Refresh.Help().Key+" for new files"))
	}
	if n := m.selector.Len(); n > 0 {
		parts = append(parts, m.styles.Status.Render(fmt.Sprintf("%d/%d", m.selector.Index()+1, n)))
	} else {
		parts = append(parts, m.styles.Status.Render("0/0"))
	}
	return strings.Join(parts, "  ")
}
