package globe

import (
	"math"

	"github.com/san-kum/termglobe/internal/canvas"
	"github.com/san-kum/termglobe/internal/geom"
	"github.com/san-kum/termglobe/internal/texture"
)

// light sits far along +Y, effectively a directional source driving the
// terminator.
var light = geom.Vec3{Y: 999999}

// Globe aggregates everything Render reads: camera, sphere radius, current
// longitude rotation, texture and the night-side toggle. Drivers mutate
// Camera and Angle between frames; Render itself never mutates the Globe.
type Globe struct {
	Camera       *Camera
	Radius       float64
	Angle        float64
	Texture      *texture.Texture
	DisplayNight bool
}

// Render ray-traces the globe onto c. Cells whose ray misses the sphere are
// left untouched, so callers clear the canvas between frames. Rendering the
// same state twice produces byte-identical output.
func (g *Globe) Render(c *canvas.Canvas) {
	_, h := c.Size()
	g.renderRows(c, 0, h)
}

func (g *Globe) renderRows(c *canvas.Canvas, y0, y1 int) {
	w, h := c.Size()
	// integer division first, matching the cell-to-pixel convention
	halfW := float64(w / c.CharPix.X / 2)
	halfH := float64(h / c.CharPix.Y / 2)
	if halfW == 0 || halfH == 0 {
		// canvas smaller than a single cell; nothing to draw
		return
	}
	for y := y0; y < y1; y++ {
		for x := 0; x < w; x++ {
			if ch, ok := g.shade(x, y, halfW, halfH); ok {
				c.Set(x, y, ch)
			}
		}
	}
}

// shade traces the ray for one cell and reports whether it hit the sphere.
func (g *Globe) shade(x, y int, halfW, halfH float64) (rune, bool) {
	o := g.Camera.Position

	// view-space ray direction; the horizontal sign is inverted to match
	// the globe's handedness
	u := geom.Vec3{
		X: -((float64(x) - halfW) + 0.5) / halfW,
		Y: ((float64(y) - halfH) + 0.5) / halfH,
		Z: -1,
	}
	u = g.Camera.Matrix.TransformDirection(u).Normalize()

	dotUO := u.Dot(o)
	discriminant := dotUO*dotUO - o.Dot(o) + g.Radius*g.Radius
	if discriminant < 0 {
		return 0, false
	}
	distance := -math.Sqrt(discriminant) - dotUO

	p := o.Add(u.Scale(distance))
	n := p.Normalize()

	l := p.Sub(light).Normalize()
	// the 5x / +0.5 stretch widens the visible terminator band
	luminance := clamp(5*n.Dot(l)+0.5, 0, 1)

	phi := -p.Z/g.Radius/2 + 0.5
	theta := math.Atan2(p.Y, p.X)/(2*math.Pi) + 0.5 + g.Angle/(2*math.Pi)
	theta -= math.Floor(theta)

	tw, th := g.Texture.Size()
	tx := clampInt(int(theta*float64(tw)), 0, tw-1)
	ty := clampInt(int(phi*float64(th)), 0, th-1)

	day := g.Texture.Day[ty][tx]
	if g.DisplayNight && g.Texture.Night != nil && len(g.Texture.Palette) > 0 {
		di := g.Texture.PaletteIndex(day)
		ni := g.Texture.PaletteIndex(g.Texture.Night[ty][tx])
		blend := math.Round((1-luminance)*float64(ni) + luminance*float64(di))
		idx := clampInt(int(blend), 0, len(g.Texture.Palette)-1)
		return g.Texture.Palette[idx], true
	}
	return day, true
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
