package domain

import (
	"io/fs"
	"time"
)

// Entry is a file found by discovery
type Entry struct {
	Path    string // absolute path
	RelPath string // path relative to the scanned root, used for matching
	Name    string
	Size    int64
	Mode    fs.FileMode
	ModTime time.Time
}

// IsExecutable reports whether any execute bit is set
func (e Entry) IsExecutable() bool {
	return e.Mode&0o111 != 0
}

// Result is an entry ranked against a query
type Result struct {
	Entry          Entry
	Score          int
	MatchedIndexes []int // byte offsets into Entry.RelPath
}

// ScanProgress represents the current scanning state
type ScanProgress struct {
	IsScanning   bool
	EntriesFound int
	Roots        []string
}
