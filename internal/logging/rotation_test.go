package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestRotatingWriterBasicWrite(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	rw, err := NewRotatingWriter(logPath, RotationConfig{MaxSizeMB: 1, MaxBackups: 1})
	if err != nil {
		t.Fatalf("NewRotatingWriter() error = %v", err)
	}
	defer rw.Close()

	data := []byte("hello\n")
	n, err := rw.Write(data)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n != len(data) {
		t.Errorf("Write() = %d bytes, want %d", n, len(data))
	}
	if rw.CurrentSize() != int64(len(data)) {
		t.Errorf("CurrentSize() = %d, want %d", rw.CurrentSize(), len(data))
	}

	got, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("log file contents = %q, want %q", got, data)
	}
}

func TestRotatingWriterCreatesParentDirs(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "dir", "test.log")

	rw, err := NewRotatingWriter(logPath, DefaultRotationConfig())
	if err != nil {
		t.Fatalf("NewRotatingWriter() error = %v", err)
	}
	rw.Close()

	if _, err := os.Stat(logPath); err != nil {
		t.Errorf("log file was not created: %v", err)
	}
}

func TestRotatingWriterRotates(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "test.log")

	rw, err := NewRotatingWriter(logPath, RotationConfig{MaxSizeMB: 1, MaxBackups: 2})
	if err != nil {
		t.Fatalf("NewRotatingWriter() error = %v", err)
	}
	defer rw.Close()

	// Force rotation by shrinking the limit below the pending write.
	rw.maxSizeB = 8
	if _, err := rw.Write([]byte("first entry\n")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if _, err := rw.Write([]byte("second entry\n")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if _, err := os.Stat(logPath + ".1"); err != nil {
		t.Errorf("expected backup file after rotation: %v", err)
	}

	got, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if string(got) != "second entry\n" {
		t.Errorf("current log = %q, want %q", got, "second entry\n")
	}
}

func TestRotatingWriterDropsOldestBackup(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "test.log")

	rw, err := NewRotatingWriter(logPath, RotationConfig{MaxSizeMB: 1, MaxBackups: 1})
	if err != nil {
		t.Fatalf("NewRotatingWriter() error = %v", err)
	}
	defer rw.Close()

	rw.maxSizeB = 4
	for _, entry := range []string{"aaaaa\n", "bbbbb\n", "ccccc\n"} {
		if _, err := rw.Write([]byte(entry)); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
	}

	if _, err := os.Stat(logPath + ".1"); err != nil {
		t.Errorf("expected .1 backup: %v", err)
	}
	if _, err := os.Stat(logPath + ".2"); err == nil {
		t.Error(".2 backup should not exist with MaxBackups=1")
	}
}

func TestRotatingWriterClosedWrite(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	rw, err := NewRotatingWriter(logPath, DefaultRotationConfig())
	if err != nil {
		t.Fatalf("NewRotatingWriter() error = %v", err)
	}
	if err := rw.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if _, err := rw.Write([]byte("x")); err == nil {
		t.Error("Write() after Close() should fail")
	}

	// Closing twice is fine.
	if err := rw.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}
