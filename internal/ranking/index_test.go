package ranking

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spotlight/internal/domain"
)

func entry(rel string) domain.Entry {
	return domain.Entry{Path: "/root/" + rel, RelPath: rel}
}

func relPaths(results []domain.Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Entry.RelPath
	}
	return out
}

func TestAddKeepsPathOrderAndDeduplicates(t *testing.T) {
	idx := NewIndex()

	assert.Equal(t, 3, idx.Add(entry("b.go"), entry("a.go"), entry("c/d.go")))
	assert.Equal(t, 0, idx.Add(entry("a.go")))
	assert.Equal(t, 3, idx.Len())

	assert.Equal(t, []string{"a.go", "b.go", "c/d.go"}, relPaths(idx.Query("", 0)))
}

func TestQueryEmptyHonorsLimit(t *testing.T) {
	idx := NewIndex()
	idx.Add(entry("a"), entry("b"), entry("c"))

	assert.Equal(t, []string{"a", "b"}, relPaths(idx.Query("  ", 2)))
}

func TestQueryRanksFuzzyMatches(t *testing.T) {
	idx := NewIndex()
	idx.Add(
		entry("internal/selection/controller.go"),
		entry("internal/ui/model.go"),
		entry("README.md"),
		entry("cmd/spotlight/main.go"),
	)

	results := idx.Query("ctrl", 0)
	require.NotEmpty(t, results)
	assert.Equal(t, "internal/selection/controller.go", results[0].Entry.RelPath)
	assert.NotEmpty(t, results[0].MatchedIndexes)

	assert.Empty(t, idx.Query("zzzz", 0))
}

func TestQueryLimit(t *testing.T) {
	idx := NewIndex()
	idx.Add(entry("main.go"), entry("model.go"), entry("menu.go"))

	assert.Len(t, idx.Query("m", 2), 2)
	assert.Len(t, idx.Query("m", 0), 3)
}

func TestReset(t *testing.T) {
	idx := NewIndex()
	idx.Add(entry("a"))
	idx.Reset()

	assert.Equal(t, 0, idx.Len())
	assert.Equal(t, 1, idx.Add(entry("a")))
}

func TestConcurrentAddAndQuery(t *testing.T) {
	idx := NewIndex()
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			idx.Add(entry(string(rune('a' + i))))
			idx.Query("a", 0)
		}()
	}
	wg.Wait()

	assert.Equal(t, 8, idx.Len())
}
