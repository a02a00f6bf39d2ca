package texture

import (
	"os"
	"strings"
)

// Texture holds the equirectangular character grids mapped onto a globe.
// Day is required. Night, when present, must match Day's dimensions. Palette
// orders characters from darkest to brightest and doubles as the alphabet
// used for night-side blending; its ordering is a caller contract.
type Texture struct {
	Day     [][]rune
	Night   [][]rune
	Palette []rune
}

// New validates and assembles a texture from pre-parsed grids.
func New(day, night [][]rune, palette []rune) (*Texture, error) {
	if len(day) == 0 || len(day[0]) == 0 {
		return nil, ErrEmptyTexture
	}
	if night != nil {
		if len(night) != len(day) || len(night[0]) != len(day[0]) {
			return nil, ErrDimensionMismatch
		}
	}
	return &Texture{Day: day, Night: night, Palette: palette}, nil
}

// Parse reads a plain-text texture, one line per row. Characters are stored
// in reverse column order so that increasing longitude walks eastward across
// the source image. Rows are not padded; ragged input yields undefined
// sampling for the short rows.
func Parse(src string) [][]rune {
	lines := strings.Split(strings.TrimRight(src, "\n"), "\n")
	grid := make([][]rune, 0, len(lines))
	for _, line := range lines {
		row := []rune(line)
		for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
		grid = append(grid, row)
	}
	return grid
}

// FromStrings builds a texture from raw day/night sources. night may be
// empty.
func FromStrings(day, night string, palette []rune) (*Texture, error) {
	if day == "" {
		return nil, ErrEmptyTexture
	}
	var nightGrid [][]rune
	if night != "" {
		nightGrid = Parse(night)
	}
	return New(Parse(day), nightGrid, palette)
}

// LoadFiles builds a texture from files on disk. nightPath may be empty.
func LoadFiles(dayPath, nightPath string, palette []rune) (*Texture, error) {
	day, err := os.ReadFile(dayPath)
	if err != nil {
		return nil, err
	}
	var night []byte
	if nightPath != "" {
		if night, err = os.ReadFile(nightPath); err != nil {
			return nil, err
		}
	}
	return FromStrings(string(day), string(night), palette)
}

// Size returns (width, height) of the day grid.
func (t *Texture) Size() (int, int) {
	return len(t.Day[0]), len(t.Day)
}

// PaletteIndex returns the position of ch in the palette, or 0 when the
// character is not present.
func (t *Texture) PaletteIndex(ch rune) int {
	for i, p := range t.Palette {
		if p == ch {
			return i
		}
	}
	return 0
}
