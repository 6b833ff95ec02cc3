package ui

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

// errBinary is reported for files that should not be shown as text
var errBinary = errors.New("binary file")

// readPreview reads up to limit bytes of the file at path. truncated is set
// when the file is longer.
func readPreview(path string, limit int) (body string, truncated bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", false, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	buf, err := io.ReadAll(io.LimitReader(f, int64(limit)+1))
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(buf) > limit {
		buf = buf[:limit]
		truncated = true
	}

	if bytes.IndexByte(buf, 0) >= 0 {
		return "", truncated, errBinary
	}
	// A limit may cut a multi-byte rune, leaving up to UTFMax-1 bytes of it.
	valid := buf
	for truncated && len(valid) > 0 && !utf8.Valid(valid) && len(buf)-len(valid) < utf8.UTFMax-1 {
		valid = valid[:len(valid)-1]
	}
	if !utf8.Valid(valid) {
		return "", truncated, errBinary
	}

	return string(bytes.ReplaceAll(valid, []byte("\t"), []byte("    "))), truncated, nil
}

// loadPreview reads a preview in the background
func loadPreview(path string, limit int) tea.Cmd {
	return func() tea.Msg {
		body, truncated, err := readPreview(path, limit)
		return previewMsg{path: path, body: body, truncated: truncated, err: err}
	}
}
