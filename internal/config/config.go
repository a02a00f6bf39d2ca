package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/termglobe/internal/texture"
)

const (
	DefaultRefreshRate = 60
	DefaultCamZoom     = 1.7
	DefaultFocusSpeed  = 1.0
	DefaultTemplate    = "earth"
)

// Config holds a scene description: which texture to show and how the
// driver animates the camera around it. CLI flags override file values.
type Config struct {
	Template      string         `yaml:"template"`
	TexturePath   string         `yaml:"texture"`
	NightPath     string         `yaml:"texture_night"`
	Palette       string         `yaml:"palette"`
	Night         bool           `yaml:"night"`
	Radius        float64        `yaml:"radius"`
	RefreshRate   int            `yaml:"refresh_rate"`
	GlobeRotation float64        `yaml:"globe_rotation"`
	CamRotation   float64        `yaml:"cam_rotation"`
	CamZoom       float64        `yaml:"cam_zoom"`
	FocusSpeed    float64        `yaml:"focus_speed"`
	Location      LocationConfig `yaml:"location"`
}

// LocationConfig is a normalized coordinate pair: X in [0,2) spans
// longitude, Y in [0,1] pole to pole.
type LocationConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func DefaultConfig() *Config {
	return &Config{
		Template:    DefaultTemplate,
		RefreshRate: DefaultRefreshRate,
		CamZoom:     DefaultCamZoom,
		FocusSpeed:  DefaultFocusSpeed,
		Location:    LocationConfig{X: 0.4, Y: 0.6},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// BuildTexture resolves the configured texture: explicit files win over the
// template. A custom palette string applies to custom textures only; the
// built-in templates carry their own.
func (c *Config) BuildTexture() (*texture.Texture, error) {
	if c.TexturePath != "" {
		palette := texture.EarthPalette
		if c.Palette != "" {
			palette = []rune(c.Palette)
		}
		return texture.LoadFiles(c.TexturePath, c.NightPath, palette)
	}
	return texture.Template(c.Template)
}
