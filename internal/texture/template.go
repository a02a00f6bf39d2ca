package texture

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed assets/earth.txt
var earthDay string

//go:embed assets/earth_night.txt
var earthNight string

// EarthPalette orders characters from darkest to brightest. It doubles as
// the alphabet of the embedded Earth textures.
var EarthPalette = []rune{
	' ', '.', ':', ';', '\'', ',', 'w', 'i', 'o', 'g', 'O', 'L', 'X', 'H', 'W', 'Y', 'V', '@',
}

// Template returns a built-in texture by name.
func Template(name string) (*Texture, error) {
	switch strings.ToLower(name) {
	case "earth":
		return FromStrings(earthDay, earthNight, EarthPalette)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
}
