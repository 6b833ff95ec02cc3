package discovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"spotlight/internal/domain"
	"spotlight/internal/eventbus"
)

// ErrScanInProgress is returned by StartScan while a previous scan runs
var ErrScanInProgress = errors.New("scan already in progress")

// DefaultIgnore lists directory names that are never descended into
var DefaultIgnore = []string{
	".git", "node_modules", "vendor", "dist", "build", "target",
	"__pycache__", ".cache", ".venv", "venv",
}

// Options controls what a scan visits
type Options struct {
	MaxDepth   int      // directories deeper than this are skipped; <= 0 means unlimited
	Ignore     []string // directory names to skip
	ShowHidden bool     // include dot files and dot directories
}

// DefaultOptions returns the options used when none are configured
func DefaultOptions() Options {
	return Options{
		MaxDepth: 8,
		Ignore:   slices.Clone(DefaultIgnore),
	}
}

// DiscoveryService finds files in the filesystem and publishes them on the bus
type DiscoveryService interface {
	StartScan(ctx context.Context, roots []string) error
	StopScan()
	Progress() domain.ScanProgress
}

// discoveryService is the concrete implementation
type discoveryService struct {
	bus  eventbus.EventBus
	opts Options

	mu         sync.Mutex
	progress   domain.ScanProgress
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// NewDiscoveryService creates a new discovery service
func NewDiscoveryService(bus eventbus.EventBus, opts Options) DiscoveryService {
	return &discoveryService{
		bus:  bus,
		opts: opts,
	}
}

// StartScan starts scanning the roots in the background
func (ds *discoveryService) StartScan(ctx context.Context, roots []string) error {
	ds.mu.Lock()
	if ds.progress.IsScanning {
		ds.mu.Unlock()
		return ErrScanInProgress
	}
	scanCtx, cancel := context.WithCancel(ctx)
	ds.cancelFunc = cancel
	ds.progress = domain.ScanProgress{IsScanning: true, Roots: slices.Clone(roots)}
	ds.mu.Unlock()

	ds.bus.Publish(eventbus.ScanStartedEvent{Roots: roots})

	ds.wg.Add(1)
	go func() {
		defer ds.wg.Done()
		defer cancel()

		found := 0
		for _, root := range roots {
			if scanCtx.Err() != nil {
				break
			}
			found += ds.scanRoot(scanCtx, root)
		}

		ds.mu.Lock()
		ds.progress.IsScanning = false
		ds.cancelFunc = nil
		ds.mu.Unlock()

		ds.bus.Publish(eventbus.ScanCompletedEvent{
			EntriesFound: found,
			Cancelled:    scanCtx.Err() != nil,
		})
	}()

	return nil
}

// StopScan stops any ongoing scan and waits for it to finish
func (ds *discoveryService) StopScan() {
	ds.mu.Lock()
	if ds.cancelFunc != nil {
		ds.cancelFunc()
	}
	ds.mu.Unlock()

	ds.wg.Wait()
}

// Progress returns a snapshot of the scan state
func (ds *discoveryService) Progress() domain.ScanProgress {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	p := ds.progress
	p.Roots = slices.Clone(p.Roots)
	return p
}

func (ds *discoveryService) scanRoot(ctx context.Context, root string) int {
	found, err := Walk(ctx, root, ds.opts, func(e domain.Entry) {
		ds.mu.Lock()
		ds.progress.EntriesFound++
		ds.mu.Unlock()
		ds.bus.Publish(eventbus.EntryDiscoveredEvent{Entry: e})
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("Error scanning directory %s: %v", root, err)
		ds.bus.Publish(eventbus.ErrorEvent{
			Message: fmt.Sprintf("Failed to scan %s", root),
			Err:     err,
		})
	}
	return found
}

// Walk visits every regular file under root that opts allows and returns how
// many were visited. Unreadable paths are logged and skipped.
func Walk(ctx context.Context, root string, opts Options, visit func(domain.Entry)) (int, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve %s: %w", root, err)
	}

	found := 0
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			if path == absRoot {
				return err
			}
			log.Printf("Error walking path %s: %v", path, err)
			return nil
		}

		relPath, _ := filepath.Rel(absRoot, path)
		name := d.Name()

		if d.IsDir() {
			if path == absRoot {
				return nil
			}
			if skipDir(name, opts) {
				return filepath.SkipDir
			}
			if opts.MaxDepth > 0 && strings.Count(relPath, string(filepath.Separator)) >= opts.MaxDepth {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}
		if !opts.ShowHidden && strings.HasPrefix(name, ".") {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			log.Printf("Error reading file info %s: %v", path, err)
			return nil
		}

		visit(domain.Entry{
			Path:    path,
			RelPath: filepath.ToSlash(relPath),
			Name:    name,
			Size:    info.Size(),
			Mode:    info.Mode(),
			ModTime: info.ModTime(),
		})
		found++
		return nil
	})

	return found, err
}

func skipDir(name string, opts Options) bool {
	if !opts.ShowHidden && strings.HasPrefix(name, ".") {
		return true
	}
	return slices.Contains(opts.Ignore, name)
}
