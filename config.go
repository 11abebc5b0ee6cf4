package tdc

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidZoomRange is returned when MinZoomLevel exceeds MaxZoomLevel.
	ErrInvalidZoomRange = errors.New("tdc: min zoom level greater than max zoom level")
	// ErrInvalidCameraOffset is returned when MinCameraOffset exceeds MaxCameraOffset.
	ErrInvalidCameraOffset = errors.New("tdc: min camera offset greater than max camera offset")
	// ErrInvalidBorder is returned when CameraActiveBorder is zero.
	ErrInvalidBorder = errors.New("tdc: camera active border must be positive")
)

// Config holds the tunables of the top-down camera.
type Config struct {
	// MinCameraOffset and MaxCameraOffset bound the camera's distance from
	// its focal point; zoom interpolates between them.
	MinCameraOffset float64 `yaml:"min_camera_offset"`
	MaxCameraOffset float64 `yaml:"max_camera_offset"`
	// FixedCameraAngle is the angle the camera looks down on the map.
	FixedCameraAngle Rotator `yaml:"fixed_camera_angle"`
	// CameraSpeed scales edge-scroll speed.
	CameraSpeed float64 `yaml:"camera_speed"`
	// CameraActiveBorder is the size in pixels of the screen edge band
	// that triggers scrolling.
	CameraActiveBorder uint32 `yaml:"camera_active_border"`

	MinZoomLevel     float64 `yaml:"min_zoom_level"`
	MaxZoomLevel     float64 `yaml:"max_zoom_level"`
	DefaultZoomLevel float64 `yaml:"default_zoom_level"`

	// MiniMapBoundsLimit is the fraction of the world bounds the camera
	// centre may occupy.
	MiniMapBoundsLimit float64 `yaml:"minimap_bounds_limit"`
	// ShouldClampCamera clamps the camera to its movement bounds.
	ShouldClampCamera bool `yaml:"should_clamp_camera"`

	// PinchScale converts pinch spread change in pixels to zoom.
	PinchScale float64 `yaml:"pinch_scale"`
	// MinDistanceToMoveCharacter is the shortest click-to-move the
	// controller will issue.
	MinDistanceToMoveCharacter float64 `yaml:"min_distance_to_move_character"`
}

// DefaultConfig returns the stock strategy-camera settings.
func DefaultConfig() Config {
	return Config{
		MinCameraOffset:            0,
		MaxCameraOffset:            20000,
		FixedCameraAngle:           Rotator{Pitch: -60},
		CameraSpeed:                4000,
		CameraActiveBorder:         20,
		MinZoomLevel:               0.4,
		MaxZoomLevel:               1.0,
		DefaultZoomLevel:           0.4,
		MiniMapBoundsLimit:         0.8,
		ShouldClampCamera:          true,
		PinchScale:                 0.002,
		MinDistanceToMoveCharacter: 20,
	}
}

// Validate reports the first inconsistency in c.
func (c Config) Validate() error {
	if c.MinZoomLevel > c.MaxZoomLevel {
		return ErrInvalidZoomRange
	}
	if c.MinCameraOffset > c.MaxCameraOffset {
		return ErrInvalidCameraOffset
	}
	if c.CameraActiveBorder == 0 {
		return ErrInvalidBorder
	}
	return nil
}

// ParseConfig decodes YAML over DefaultConfig, so missing keys keep their
// defaults, and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("tdc: unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("tdc: load config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("tdc: load config %s: %w", path, err)
	}
	return cfg, nil
}
