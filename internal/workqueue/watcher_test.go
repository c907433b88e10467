package workqueue

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherDeliversOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.json")
	if err := os.WriteFile(path, []byte(`{"epics": []}`), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Run(ctx)
	}()

	// Give the watch loop a moment to start before writing.
	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(path, []byte(`{"epics": [{"id": "e1", "name": "E", "status": "pending"}]}`), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case snap := <-w.Snapshots():
		if len(snap.Epics) != 1 {
			t.Errorf("got %d epics, want 1", len(snap.Epics))
		}
	case err := <-w.Errors():
		t.Fatalf("unexpected watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for snapshot delivery")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatcherReportsBadSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.json")
	if err := os.WriteFile(path, []byte(`{"epics": []}`), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(path, []byte(`{"epics": [`), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Errors():
		// Reload failure surfaced; previous snapshot stays current.
	case snap := <-w.Snapshots():
		t.Fatalf("expected error for truncated file, got snapshot %+v", snap)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watcher error")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.json")
	if err := os.WriteFile(path, []byte(`{"epics": []}`), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "other.json"), []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case snap := <-w.Snapshots():
		t.Fatalf("sibling file write should not deliver a snapshot, got %+v", snap)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestNewWatcherMissingDir(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "missing", "snapshot.json"), 0); err == nil {
		t.Error("NewWatcher() expected error for missing directory")
	}
}
