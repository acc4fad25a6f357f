// Package watch imports Datastream files dropped into an inbox directory.
package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/barnettben/Datastream/pkg/datastream"
	"github.com/barnettben/Datastream/pkg/storage"
)

const (
	defaultDebounce = 500 * time.Millisecond
	queueSize       = 64
)

// Archive receives successfully parsed documents
type Archive interface {
	Put(source string, doc *datastream.Document) (storage.Entry, error)
}

// Config configures an Inbox
type Config struct {
	Inbox     string
	Processed string        // Imported files are moved here
	Failed    string        // Files that could not be imported are moved here
	Strict    bool          // Parse in strict mode
	Debounce  time.Duration // Quiet period after the last write before a file is imported
}

// Stats counts the watcher's activity
type Stats struct {
	Imported  int
	Failed    int
	LastPath  string
	LastError string
}

// Inbox watches a directory and imports every file that settles in it
type Inbox struct {
	cfg     Config
	archive Archive
	log     *zap.Logger

	mu    sync.Mutex
	stats Stats
}

// New creates an Inbox. log may be nil.
func New(cfg Config, archive Archive, log *zap.Logger) *Inbox {
	if cfg.Debounce <= 0 {
		cfg.Debounce = defaultDebounce
	}
	if cfg.Processed == "" {
		cfg.Processed = filepath.Join(cfg.Inbox, "processed")
	}
	if cfg.Failed == "" {
		cfg.Failed = filepath.Join(cfg.Inbox, "failed")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Inbox{cfg: cfg, archive: archive, log: log}
}

// Stats returns a snapshot of the watcher's counters
func (in *Inbox) Stats() Stats {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.stats
}

// Run watches the inbox until ctx is cancelled. Files already present when
// it starts are imported too.
func (in *Inbox) Run(ctx context.Context) error {
	for _, dir := range []string{in.cfg.Inbox, in.cfg.Processed, in.cfg.Failed} {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(in.cfg.Inbox); err != nil {
		return fmt.Errorf("failed to watch %s: %w", in.cfg.Inbox, err)
	}
	in.log.Info("Watching inbox", zap.String("inbox", in.cfg.Inbox))

	queue := make(chan string, queueSize)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return in.watch(gctx, watcher, queue)
	})
	g.Go(func() error {
		return in.work(gctx, queue)
	})

	err = g.Wait()
	in.log.Info("Inbox watcher stopped", zap.String("inbox", in.cfg.Inbox))
	return err
}

// watch turns filesystem events into settled paths on queue
func (in *Inbox) watch(ctx context.Context, watcher *fsnotify.Watcher, queue chan<- string) error {
	pending := make(map[string]time.Time)

	existing, err := os.ReadDir(in.cfg.Inbox)
	if err != nil {
		return fmt.Errorf("failed to read inbox: %w", err)
	}
	for _, e := range existing {
		if !e.IsDir() {
			pending[filepath.Join(in.cfg.Inbox, e.Name())] = time.Time{}
		}
	}

	tick := in.cfg.Debounce / 4
	if tick < 10*time.Millisecond {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			in.handleEvent(event, pending)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			in.log.Warn("Watcher error", zap.Error(err))

		case now := <-ticker.C:
			for path, last := range pending {
				if now.Sub(last) < in.cfg.Debounce {
					continue
				}
				delete(pending, path)
				select {
				case queue <- path:
				case <-ctx.Done():
					return nil
				}
			}
		}
	}
}

func (in *Inbox) handleEvent(event fsnotify.Event, pending map[string]time.Time) {
	if ignored(event.Name) {
		return
	}
	switch {
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		pending[event.Name] = time.Now()
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		delete(pending, event.Name)
	}
}

// ignored reports whether name is a hidden or partial file
func ignored(name string) bool {
	base := filepath.Base(name)
	return strings.HasPrefix(base, ".") || strings.HasSuffix(base, ".part") || strings.HasSuffix(base, ".tmp")
}

func (in *Inbox) work(ctx context.Context, queue <-chan string) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case path := <-queue:
			info, err := os.Stat(path)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			if _, err := in.Import(ctx, path); err != nil && ctx.Err() != nil {
				return nil
			}
		}
	}
}

// Import parses the file at path, stores it and moves it to the processed
// directory. A file that fails is moved to the failed directory instead.
// Cancelling ctx leaves the file where it is.
func (in *Inbox) Import(ctx context.Context, path string) (storage.Entry, error) {
	log := in.log.With(zap.String("path", path))

	entry, err := in.importFile(ctx, path)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return storage.Entry{}, err
		}
		in.record(path, err)
		log.Warn("Import failed", zap.Error(err))
		if _, moveErr := moveInto(path, in.cfg.Failed); moveErr != nil {
			log.Error("Failed to move file", zap.Error(moveErr))
		}
		return storage.Entry{}, err
	}

	in.record(path, nil)
	dest, err := moveInto(path, in.cfg.Processed)
	if err != nil {
		log.Error("Failed to move file", zap.Error(err))
		return entry, err
	}
	log.Info("Imported datastream",
		zap.String("id", entry.ID),
		zap.String("moved_to", dest),
		zap.Int("animals", entry.Summary.Animals),
	)
	return entry, nil
}

func (in *Inbox) importFile(ctx context.Context, path string) (storage.Entry, error) {
	doc, err := datastream.ParseFile(ctx, path, datastream.Options{Strict: in.cfg.Strict, Logger: in.log})
	if err != nil {
		return storage.Entry{}, err
	}
	entry, err := in.archive.Put(filepath.Base(path), doc)
	if err != nil {
		return storage.Entry{}, fmt.Errorf("failed to store %s: %w", path, err)
	}
	return entry, nil
}

func (in *Inbox) record(path string, err error) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.stats.LastPath = path
	if err != nil {
		in.stats.Failed++
		in.stats.LastError = err.Error()
		return
	}
	in.stats.Imported++
	in.stats.LastError = ""
}

// moveInto moves path into dir, keeping its name unless that is taken
func moveInto(path, dir string) (string, error) {
	base := filepath.Base(path)
	dest := filepath.Join(dir, base)
	if _, err := os.Stat(dest); err == nil {
		ext := filepath.Ext(base)
		dest = filepath.Join(dir, fmt.Sprintf("%s-%d%s", strings.TrimSuffix(base, ext), time.Now().UnixNano(), ext))
	}
	if err := os.Rename(path, dest); err != nil {
		return "", fmt.Errorf("failed to move %s to %s: %w", path, dir, err)
	}
	return dest, nil
}
