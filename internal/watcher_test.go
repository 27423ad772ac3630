package internal

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestSourceWatcherDebouncesChanges(t *testing.T) {
	dir := t.TempDir()
	logo := filepath.Join(dir, "logo.png")
	other := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(logo, []byte("v1"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	var calls int32
	changed := make(chan struct{}, 10)
	sw, err := NewSourceWatcher([]string{logo}, 100*time.Millisecond, func() error {
		atomic.AddInt32(&calls, 1)
		changed <- struct{}{}
		return errors.New("broken source")
	}, discardLog())
	if err != nil {
		t.Fatalf("NewSourceWatcher failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sw.Run(ctx) }()

	if err := os.WriteFile(other, []byte("ignored"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(logo, []byte("v2"), 0o644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
	}

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatalf("expected a regeneration after the source changed")
	}

	// a failing regeneration keeps the watcher alive
	if err := os.WriteFile(logo, []byte("v3"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatalf("expected a second regeneration")
	}

	time.Sleep(300 * time.Millisecond)
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Fatalf("expected 2 debounced regenerations, got %d", got)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("expected Run to stop after cancel")
	}
}

func TestNewSourceWatcherMissingDir(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent", "logo.png")
	if _, err := NewSourceWatcher([]string{missing}, DefaultDebounce, func() error { return nil }, discardLog()); err == nil {
		t.Fatalf("expected error for a missing source directory")
	}
}
