package tdc

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig invalid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"zoom range", func(c *Config) { c.MinZoomLevel = 2 }, ErrInvalidZoomRange},
		{"offset range", func(c *Config) { c.MinCameraOffset = 30000 }, ErrInvalidCameraOffset},
		{"border", func(c *Config) { c.CameraActiveBorder = 0 }, ErrInvalidBorder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseConfigKeepsDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
camera_speed: 2500
fixed_camera_angle:
  pitch: -45
  yaw: 30
max_zoom_level: 0.9
`))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.CameraSpeed != 2500 {
		t.Errorf("CameraSpeed = %v, want 2500", cfg.CameraSpeed)
	}
	if cfg.FixedCameraAngle != (Rotator{Pitch: -45, Yaw: 30}) {
		t.Errorf("FixedCameraAngle = %+v", cfg.FixedCameraAngle)
	}
	if cfg.MaxZoomLevel != 0.9 {
		t.Errorf("MaxZoomLevel = %v, want 0.9", cfg.MaxZoomLevel)
	}
	def := DefaultConfig()
	if cfg.CameraActiveBorder != def.CameraActiveBorder || cfg.PinchScale != def.PinchScale ||
		cfg.MinDistanceToMoveCharacter != def.MinDistanceToMoveCharacter {
		t.Errorf("missing keys lost their defaults: %+v", cfg)
	}
}

func TestParseConfigErrors(t *testing.T) {
	if _, err := ParseConfig([]byte("camera_speed: [1, 2")); err == nil ||
		!strings.Contains(err.Error(), "unmarshal config") {
		t.Errorf("malformed YAML: err = %v", err)
	}
	_, err := ParseConfig([]byte("min_zoom_level: 5\n"))
	if !errors.Is(err, ErrInvalidZoomRange) {
		t.Errorf("invalid range: err = %v, want ErrInvalidZoomRange", err)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "camera.yaml")
	if err := os.WriteFile(path, []byte("should_clamp_camera: false\nminimap_bounds_limit: 0.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ShouldClampCamera || cfg.MiniMapBoundsLimit != 0.5 {
		t.Errorf("cfg = %+v", cfg)
	}

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: err = %v, want ErrNotExist", err)
	}
	if err != nil && !strings.Contains(err.Error(), "missing.yaml") {
		t.Errorf("error does not name the file: %v", err)
	}
}

func TestNewCameraFromLoadedConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte("default_zoom_level: 0.7\n"))
	if err != nil {
		t.Fatal(err)
	}
	cam := NewCamera(cfg)
	if cam.ZoomLevel() != 0.7 {
		t.Errorf("ZoomLevel = %v, want 0.7", cam.ZoomLevel())
	}
}
