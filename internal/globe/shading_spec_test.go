package globe_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/termglobe/internal/canvas"
	"github.com/san-kum/termglobe/internal/globe"
	"github.com/san-kum/termglobe/internal/texture"
)

var _ = Describe("Config.Build", func() {
	var tex *texture.Texture

	BeforeEach(func() {
		var err error
		tex, err = texture.FromStrings("bbbb\nbbbb", "aaaa\naaaa", []rune{'a', 'b'})
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects a missing texture", func() {
		_, err := globe.Config{}.Build()
		Expect(err).To(MatchError(globe.ErrMissingTexture))
	})

	It("rejects negative radii", func() {
		_, err := globe.Config{Texture: tex, Radius: -1}.Build()
		Expect(err).To(MatchError(globe.ErrInvalidConfig))
	})

	It("rejects night display without a night texture", func() {
		dayOnly, err := texture.FromStrings("bbbb", "", []rune{'b'})
		Expect(err).NotTo(HaveOccurred())
		_, err = globe.Config{Texture: dayOnly, DisplayNight: true}.Build()
		Expect(err).To(MatchError(globe.ErrInvalidConfig))
	})

	It("applies documented defaults", func() {
		g, err := globe.Config{Texture: tex}.Build()
		Expect(err).NotTo(HaveOccurred())
		Expect(g.Radius).To(Equal(1.0))
		Expect(g.Camera.Position.Length()).To(BeNumerically("~", 2.0, 1e-12))
	})
})

var _ = Describe("night-side blending", func() {
	// day texture all 'b' (bright end of the palette), night all 'a'
	// (dark end); with the camera on the x axis the luminance term splits
	// the visible disc along the y axis: +Y surface points get luminance 0
	// (night), -Y points luminance 1 (day)
	newScene := func() (*globe.Globe, *canvas.Canvas) {
		tex, err := texture.FromStrings("bbbb\nbbbb", "aaaa\naaaa", []rune{'a', 'b'})
		Expect(err).NotTo(HaveOccurred())
		g, err := globe.Config{Texture: tex, DisplayNight: true}.Build()
		Expect(err).NotTo(HaveOccurred())
		return g, canvas.NewWithCharPix(16, 16, canvas.CharPix{X: 1, Y: 1})
	}

	It("draws the night character on the dark side", func() {
		g, c := newScene()
		g.Render(c)
		// column 5 of the center row maps to a +Y surface point via the
		// inverted horizontal axis
		Expect(string(c.Grid[8][5])).To(Equal("a"))
	})

	It("draws the day character on the lit side", func() {
		g, c := newScene()
		g.Render(c)
		Expect(string(c.Grid[8][10])).To(Equal("b"))
	})

	It("leaves the background untouched", func() {
		g, c := newScene()
		g.Render(c)
		Expect(string(c.Grid[0][0])).To(Equal(" "))
	})

	It("falls back to plain day sampling when night display is off", func() {
		g, c := newScene()
		g.DisplayNight = false
		g.Render(c)
		for _, row := range c.Grid {
			Expect(string(row)).NotTo(ContainSubstring("a"))
		}
	})
})
