package globe

import (
	"errors"
	"fmt"

	"github.com/san-kum/termglobe/internal/texture"
)

// Configuration errors returned by Config.Build.
var (
	// ErrMissingTexture indicates a Globe was configured without a texture.
	ErrMissingTexture = errors.New("globe: no texture configured")

	// ErrInvalidConfig indicates a parameter outside its valid range.
	ErrInvalidConfig = errors.New("globe: invalid configuration")
)

// Config collects everything needed to build a Globe. Zero-valued fields
// fall back to documented defaults; Texture is the one required field.
type Config struct {
	// Texture is required.
	Texture *texture.Texture

	// Radius is the sphere radius in globe-radius units. Default 1.
	Radius float64

	// Angle is the initial longitude rotation offset in radians.
	Angle float64

	// DisplayNight blends the night texture on the dark side. Requires the
	// texture to carry a night grid and a palette.
	DisplayNight bool

	// CameraDistance is the camera's orbital radius. Default 2.
	CameraDistance float64

	// CameraAlpha and CameraBeta are the camera's azimuth and elevation.
	CameraAlpha float64
	CameraBeta  float64
}

// Build validates the configuration and constructs a Globe. All failures
// are configuration-time; the returned Globe's Render is total.
func (cfg Config) Build() (*Globe, error) {
	if cfg.Texture == nil {
		return nil, ErrMissingTexture
	}
	if cfg.Radius < 0 {
		return nil, fmt.Errorf("%w: negative radius %v", ErrInvalidConfig, cfg.Radius)
	}
	if cfg.CameraDistance < 0 {
		return nil, fmt.Errorf("%w: negative camera distance %v", ErrInvalidConfig, cfg.CameraDistance)
	}
	if cfg.DisplayNight {
		if cfg.Texture.Night == nil {
			return nil, fmt.Errorf("%w: night display enabled without a night texture", ErrInvalidConfig)
		}
		if len(cfg.Texture.Palette) == 0 {
			return nil, fmt.Errorf("%w: night display enabled without a palette", ErrInvalidConfig)
		}
	}

	radius := cfg.Radius
	if radius == 0 {
		radius = 1
	}
	dist := cfg.CameraDistance
	if dist == 0 {
		dist = 2
	}

	return &Globe{
		Camera:       NewCamera(dist, cfg.CameraAlpha, cfg.CameraBeta),
		Radius:       radius,
		Angle:        cfg.Angle,
		Texture:      cfg.Texture,
		DisplayNight: cfg.DisplayNight,
	}, nil
}
