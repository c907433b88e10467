package workqueue

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce collapses the burst of events most editors emit for a
// single save into one reload.
const defaultDebounce = 100 * time.Millisecond

// Watcher follows a snapshot file on disk and delivers a fresh *Snapshot on
// Snapshots() every time the file settles after a change. Snapshots that fail
// to load (e.g. a half-written file) are reported on Errors() and skipped;
// the previous snapshot stays current.
type Watcher struct {
	path     string
	debounce time.Duration

	fw        *fsnotify.Watcher
	snapshots chan *Snapshot
	errs      chan error
}

// NewWatcher creates a watcher for the snapshot file at path. A debounce of
// zero selects the default. Call Run to start delivery.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// Watch the directory rather than the file: editors that save via
	// rename replace the inode and would silently drop a file watch.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	return &Watcher{
		path:      path,
		debounce:  debounce,
		fw:        fw,
		snapshots: make(chan *Snapshot, 1),
		errs:      make(chan error, 1),
	}, nil
}

// Snapshots returns the channel on which reloaded snapshots are delivered.
func (w *Watcher) Snapshots() <-chan *Snapshot { return w.snapshots }

// Errors returns the channel on which reload failures are reported.
func (w *Watcher) Errors() <-chan error { return w.errs }

// Run processes filesystem events until ctx is canceled. It always closes
// the underlying watcher before returning.
func (w *Watcher) Run(ctx context.Context) {
	defer w.fw.Close()

	debounceTimer := time.NewTimer(0)
	<-debounceTimer.C // drain initial timer
	defer debounceTimer.Stop()

	pending := false
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = true
			debounceTimer.Reset(w.debounce)

		case <-debounceTimer.C:
			if !pending {
				continue
			}
			pending = false
			snap, err := Load(w.path)
			if err != nil {
				w.report(err)
				continue
			}
			w.deliver(snap)

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.report(err)
		}
	}
}

// deliver replaces any undelivered snapshot with the newer one.
func (w *Watcher) deliver(snap *Snapshot) {
	for {
		select {
		case w.snapshots <- snap:
			return
		default:
			select {
			case <-w.snapshots:
			default:
			}
		}
	}
}

func (w *Watcher) report(err error) {
	select {
	case w.errs <- err:
	default:
	}
}
