package internal

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const DefaultDebounce = 500 * time.Millisecond

// SourceWatcher calls onChange after any of the watched files is written, created or
// renamed into place. Bursts of events within the debounce window produce one call.
type SourceWatcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]bool
	debounce time.Duration
	onChange func() error
	log      *StdLog
}

// NewSourceWatcher watches the parent directories of files, which keeps working when
// editors replace a file instead of writing it in place.
func NewSourceWatcher(files []string, debounce time.Duration, onChange func() error, stdLog *StdLog) (*SourceWatcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	sw := &SourceWatcher{
		watcher:  fsWatcher,
		files:    map[string]bool{},
		debounce: debounce,
		onChange: onChange,
		log:      stdLog,
	}
	dirs := map[string]bool{}
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			fsWatcher.Close()
			return nil, fmt.Errorf("failed to resolve %s: %w", file, err)
		}
		sw.files[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := fsWatcher.Add(dir); err != nil {
			fsWatcher.Close()
			return nil, fmt.Errorf("failed to watch folder %s: %w", dir, err)
		}
		dirs[dir] = true
		stdLog.Info("Watching folder: %s", dir)
	}
	return sw, nil
}

// Run blocks until ctx is done or the watcher fails. Errors from onChange are logged and
// do not stop watching.
func (sw *SourceWatcher) Run(ctx context.Context) error {
	defer sw.watcher.Close()

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return nil
			}
			if !sw.relevant(event) {
				continue
			}
			sw.log.Debug("Source changed: %s (%s)", event.Name, event.Op)
			if timer == nil {
				timer = time.NewTimer(sw.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(sw.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			if err := sw.onChange(); err != nil {
				sw.log.Error("regeneration failed: %v", err)
			}
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return nil
			}
			sw.log.Error("Watcher error: %v", err)
		}
	}
}

func (sw *SourceWatcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return sw.files[abs]
}
