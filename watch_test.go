package tdc

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfigWatcherReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "camera.yaml")
	if err := os.WriteFile(path, []byte("camera_speed: 1000\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewConfigWatcher(path)
	if err != nil {
		t.Fatalf("NewConfigWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("camera_speed: 1234\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Configs:
		if cfg.CameraSpeed != 1234 {
			t.Errorf("CameraSpeed = %v, want 1234", cfg.CameraSpeed)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestConfigWatcherReportsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "camera.yaml")
	if err := os.WriteFile(path, []byte("camera_speed: 1000\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewConfigWatcher(path)
	if err != nil {
		t.Fatalf("NewConfigWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("camera_active_border: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case err := <-w.Errors:
		if err == nil {
			t.Error("nil error")
		}
	case cfg := <-w.Configs:
		t.Fatalf("invalid config published: %+v", cfg)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for error")
	}
}

func TestConfigWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "camera.yaml")
	if err := os.WriteFile(path, []byte("camera_speed: 1000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := NewConfigWatcher(path)
	if err != nil {
		t.Fatalf("NewConfigWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case cfg := <-w.Configs:
		t.Fatalf("reloaded for an unrelated file: %+v", cfg)
	case <-time.After(3 * configDebounce):
	}
}

func TestConfigWatcherCloseIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "camera.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := NewConfigWatcher(path)
	if err != nil {
		t.Fatalf("NewConfigWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if _, ok := <-w.Configs; ok {
		t.Error("Configs not closed")
	}
}

func TestNewConfigWatcherMissingDir(t *testing.T) {
	if _, err := NewConfigWatcher(filepath.Join(t.TempDir(), "nope", "camera.yaml")); err == nil {
		t.Error("expected error for a missing directory")
	}
}
