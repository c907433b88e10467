package workqueue

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Provider supplies work-queue snapshots to the dashboard.
// Implementations must treat returned snapshots as immutable.
type Provider interface {
	Snapshot() (*Snapshot, error)
}

// FileProvider reads snapshots from a JSON file on disk.
type FileProvider struct {
	Path string
}

// NewFileProvider returns a provider that reads from path on every call.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{Path: path}
}

// Snapshot loads the current contents of the snapshot file.
func (p *FileProvider) Snapshot() (*Snapshot, error) {
	return Load(p.Path)
}

// Load reads a snapshot from a JSON file.
func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()
	snap, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", path, err)
	}
	return snap, nil
}

// Decode parses a snapshot from JSON. An empty epics list is a valid,
// renderable snapshot, not an error.
func Decode(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	dec := json.NewDecoder(r)
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}
