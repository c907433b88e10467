package workqueue

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleSnapshot = `{
  "epics": [
    {
      "id": "epic-auth",
      "name": "User Authentication",
      "description": "OAuth providers",
      "status": "in_progress",
      "features": [
        {
          "id": "feat-google",
          "name": "Google OAuth",
          "priority": 0,
          "status": "in_progress",
          "tasks": [
            {"id": "t1", "description": "Token exchange", "status": "completed", "retry_budget": 3, "retries_used": 1},
            {"id": "t2", "description": "Refresh flow", "status": "in_progress", "retry_budget": 3, "retries_used": 0}
          ]
        },
        {
          "id": "feat-github",
          "name": "GitHub OAuth",
          "priority": 1,
          "status": "pending",
          "tasks": [
            {"id": "t3", "description": "App registration", "status": "pending", "retry_budget": 2, "retries_used": 0}
          ]
        }
      ]
    }
  ]
}`

func TestDecode(t *testing.T) {
	snap, err := Decode(strings.NewReader(sampleSnapshot))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	if len(snap.Epics) != 1 {
		t.Fatalf("got %d epics, want 1", len(snap.Epics))
	}
	epic := snap.Epics[0]
	if epic.ID != "epic-auth" || epic.Name != "User Authentication" {
		t.Errorf("unexpected epic: %+v", epic)
	}
	if epic.Status != StatusInProgress {
		t.Errorf("epic status = %q, want %q", epic.Status, StatusInProgress)
	}
	if len(epic.Features) != 2 {
		t.Fatalf("got %d features, want 2", len(epic.Features))
	}

	google := epic.Features[0]
	if google.Priority != 0 {
		t.Errorf("google priority = %d, want 0", google.Priority)
	}
	if len(google.Tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(google.Tasks))
	}
	if got := google.Tasks[0]; got.RetryBudget != 3 || got.RetriesUsed != 1 {
		t.Errorf("task retry counters = %d/%d, want 1/3", got.RetriesUsed, got.RetryBudget)
	}
}

func TestDecodeEmptyEpics(t *testing.T) {
	snap, err := Decode(strings.NewReader(`{"epics": []}`))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if !snap.Empty() {
		t.Error("expected empty snapshot")
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"truncated json", `{"epics": [`},
		{"not json", `epics: []`},
		{"wrong epics type", `{"epics": "nope"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(tt.input)); err == nil {
				t.Error("Decode() expected error, got nil")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.json")
	if err := os.WriteFile(path, []byte(sampleSnapshot), 0644); err != nil {
		t.Fatal(err)
	}

	snap, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	epics, features, tasks := snap.Counts()
	if epics != 1 || features != 2 || tasks != 3 {
		t.Errorf("Counts() = (%d, %d, %d), want (1, 2, 3)", epics, features, tasks)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestFileProvider(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.json")
	if err := os.WriteFile(path, []byte(`{"epics": []}`), 0644); err != nil {
		t.Fatal(err)
	}

	p := NewFileProvider(path)
	snap, err := p.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error: %v", err)
	}
	if !snap.Empty() {
		t.Error("expected empty snapshot")
	}

	// Provider re-reads on each call, so a rewrite is visible.
	if err := os.WriteFile(path, []byte(`{"epics": [{"id": "e1", "name": "E", "status": "pending"}]}`), 0644); err != nil {
		t.Fatal(err)
	}
	snap, err = p.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() after rewrite error: %v", err)
	}
	if len(snap.Epics) != 1 {
		t.Errorf("got %d epics after rewrite, want 1", len(snap.Epics))
	}
}
