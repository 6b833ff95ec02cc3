// Package ranking keeps the discovered entries and ranks them against a
// query with fuzzy matching.
package ranking

import (
	"slices"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"

	"spotlight/internal/domain"
)

// Index is an in-memory, path-ordered collection of entries. It is safe for
// concurrent use.
type Index struct {
	mu      sync.RWMutex
	entries []domain.Entry
	paths   map[string]struct{}
}

// NewIndex creates an empty index
func NewIndex() *Index {
	return &Index{
		paths: make(map[string]struct{}),
	}
}

// Add inserts entries, ignoring paths that are already indexed. It returns
// how many were new.
func (idx *Index) Add(entries ...domain.Entry) int {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	added := 0
	for _, e := range entries {
		if _, ok := idx.paths[e.Path]; ok {
			continue
		}
		idx.paths[e.Path] = struct{}{}
		pos, _ := slices.BinarySearchFunc(idx.entries, e, compareEntries)
		idx.entries = slices.Insert(idx.entries, pos, e)
		added++
	}
	return added
}

// Reset removes every entry
func (idx *Index) Reset() {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.entries = nil
	idx.paths = make(map[string]struct{})
}

// Len returns the number of indexed entries
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.entries)
}

// Query ranks the entries against q. An empty query returns entries in path
// order. limit <= 0 means no limit.
func (idx *Index) Query(q string, limit int) []domain.Result {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	q = strings.TrimSpace(q)
	if q == "" {
		n := len(idx.entries)
		if limit > 0 {
			n = min(n, limit)
		}
		results := make([]domain.Result, n)
		for i := range n {
			results[i] = domain.Result{Entry: idx.entries[i]}
		}
		return results
	}

	matches := fuzzy.FindFrom(q, entrySource(idx.entries))
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	results := make([]domain.Result, len(matches))
	for i, m := range matches {
		results[i] = domain.Result{
			Entry:          idx.entries[m.Index],
			Score:          m.Score,
			MatchedIndexes: m.MatchedIndexes,
		}
	}
	return results
}

func compareEntries(a, b domain.Entry) int {
	if c := strings.Compare(a.RelPath, b.RelPath); c != 0 {
		return c
	}
	return strings.Compare(a.Path, b.Path)
}

// entrySource adapts entries to fuzzy.Source, matching on the relative path
type entrySource []domain.Entry

func (s entrySource) String(i int) string { return s[i].RelPath }

func (s entrySource) Len() int { return len(s) }
