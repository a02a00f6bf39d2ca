package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/termglobe/internal/canvas"
	"github.com/san-kum/termglobe/internal/config"
	"github.com/san-kum/termglobe/internal/globe"
	"github.com/san-kum/termglobe/internal/orbit"
	"github.com/san-kum/termglobe/internal/tui"
)

var (
	configFile    string
	template      string
	texturePath   string
	nightPath     string
	palette       string
	night         bool
	refreshRate   int
	globeRotation float64
	camRotation   float64
	camZoom       float64
	focusSpeed    float64
	location      string
	// render flags
	renderRows  int
	renderAngle float64
	// bench flags
	benchFrames int
	benchRows   int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "termglobe",
		Short: "render an ASCII globe in your terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, g, err := buildScene(cmd)
			if err != nil {
				return err
			}
			return tui.RunInteractive(cfg, g)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "scene config file (yaml)")
	pf.StringVarP(&template, "template", "t", config.DefaultTemplate, "built-in globe template")
	pf.StringVar(&texturePath, "texture", "", "custom texture file")
	pf.StringVar(&nightPath, "texture-night", "", "custom night side texture file")
	pf.StringVar(&palette, "palette", "", "custom palette, darkest to brightest")
	pf.BoolVarP(&night, "night", "n", false, "display the night side of the globe")
	pf.IntVarP(&refreshRate, "refresh-rate", "r", config.DefaultRefreshRate, "refresh rate in frames per second")
	pf.Float64VarP(&globeRotation, "globe-rotation", "g", 0, "starting globe rotation speed")
	pf.Float64VarP(&camRotation, "cam-rotation", "c", 0, "starting camera rotation speed")
	pf.Float64VarP(&camZoom, "cam-zoom", "z", config.DefaultCamZoom, "starting camera zoom")
	pf.Float64VarP(&focusSpeed, "focus-speed", "f", config.DefaultFocusSpeed, "target focusing animation speed")
	pf.StringVarP(&location, "location", "l", "0.4,0.6", "starting location coordinates")

	screensaverCmd := &cobra.Command{
		Use:   "screensaver",
		Short: "screensaver mode (input disabled, any key exits)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, g, err := buildScene(cmd)
			if err != nil {
				return err
			}
			return tui.RunScreensaver(cfg, g)
		},
	}

	pipeCmd := &cobra.Command{
		Use:   "pipe",
		Short: "read coordinates from stdin and step through them",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, g, err := buildScene(cmd)
			if err != nil {
				return err
			}
			locs, err := readLocations(cmd.InOrStdin())
			if err != nil {
				return err
			}
			return tui.RunPlaylist(cfg, g, locs)
		},
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render a single frame to stdout",
		RunE:  renderFrame,
	}
	renderCmd.Flags().IntVar(&renderRows, "rows", 24, "frame height in character rows")
	renderCmd.Flags().Float64Var(&renderAngle, "angle", 0, "globe rotation angle in radians")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the render pipeline",
		RunE:  benchRender,
	}
	benchCmd.Flags().IntVar(&benchFrames, "frames", 120, "frames to render")
	benchCmd.Flags().IntVar(&benchRows, "rows", 48, "frame height in character rows")

	rootCmd.AddCommand(screensaverCmd, pipeCmd, renderCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildScene merges the config file with flag overrides and constructs the
// globe. Flags win over file values only when explicitly set.
func buildScene(cmd *cobra.Command) (*config.Config, *globe.Globe, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("template") {
		cfg.Template = template
	}
	if flags.Changed("texture") {
		cfg.TexturePath = texturePath
	}
	if flags.Changed("texture-night") {
		cfg.NightPath = nightPath
	}
	if flags.Changed("palette") {
		cfg.Palette = palette
	}
	if flags.Changed("night") {
		cfg.Night = night
	}
	if flags.Changed("refresh-rate") {
		cfg.RefreshRate = refreshRate
	}
	if flags.Changed("globe-rotation") {
		cfg.GlobeRotation = globeRotation
	}
	if flags.Changed("cam-rotation") {
		cfg.CamRotation = camRotation
	}
	if flags.Changed("cam-zoom") {
		cfg.CamZoom = camZoom
	}
	if flags.Changed("focus-speed") {
		cfg.FocusSpeed = focusSpeed
	}
	if flags.Changed("location") {
		loc, err := parseLocation(location)
		if err != nil {
			return nil, nil, err
		}
		cfg.Location = loc
	}

	tex, err := cfg.BuildTexture()
	if err != nil {
		return nil, nil, err
	}
	g, err := globe.Config{
		Texture:        tex,
		Radius:         cfg.Radius,
		DisplayNight:   cfg.Night,
		CameraDistance: cfg.CamZoom,
	}.Build()
	if err != nil {
		return nil, nil, err
	}
	return cfg, g, nil
}

func parseLocation(s string) (config.LocationConfig, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return config.LocationConfig{}, fmt.Errorf("location format is \"x,y\", got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return config.LocationConfig{}, fmt.Errorf("parsing location: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return config.LocationConfig{}, fmt.Errorf("parsing location: %w", err)
	}
	return config.LocationConfig{X: x, Y: y}, nil
}

// readLocations parses a semicolon-separated coordinate list.
func readLocations(r io.Reader) ([]orbit.Location, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var locs []orbit.Location
	for _, entry := range strings.Split(string(data), ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		loc, err := parseLocation(entry)
		if err != nil {
			return nil, err
		}
		locs = append(locs, orbit.Location(loc))
	}
	if len(locs) == 0 {
		return nil, fmt.Errorf("no coordinates on stdin, format: \"0.4,0.6;0.1,0.5\"")
	}
	return locs, nil
}

func renderFrame(cmd *cobra.Command, args []string) error {
	cfg, g, err := buildScene(cmd)
	if err != nil {
		return err
	}
	alpha, beta := orbit.Focus(orbit.Location(cfg.Location), 0)
	g.Camera.Update(cfg.CamZoom, alpha, beta)
	g.Angle = renderAngle

	side := renderRows * canvas.DefaultCharPix.Y
	c := canvas.New(side, side)
	g.Render(c)
	fmt.Fprint(cmd.OutOrStdout(), c.String())
	return nil
}

func benchRender(cmd *cobra.Command, args []string) error {
	_, g, err := buildScene(cmd)
	if err != nil {
		return err
	}
	side := benchRows * canvas.DefaultCharPix.Y
	c := canvas.New(side, side)

	series := make([]float64, 0, benchFrames)
	var total time.Duration
	minFrame := time.Duration(1<<63 - 1)
	var maxFrame time.Duration

	for i := 0; i < benchFrames; i++ {
		g.Angle += 0.01
		c.Clear()

		start := time.Now()
		g.RenderParallel(c, 0)
		elapsed := time.Since(start)

		series = append(series, float64(elapsed.Microseconds())/1000)
		total += elapsed
		if elapsed < minFrame {
			minFrame = elapsed
		}
		if elapsed > maxFrame {
			maxFrame = elapsed
		}
	}

	fmt.Printf("rendered %d frames at %dx%d cells\n\n", benchFrames, side/canvas.DefaultCharPix.X, benchRows)
	fmt.Println(asciigraph.Plot(series,
		asciigraph.Height(10),
		asciigraph.Caption("frame time (ms)")))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MIN\tMEAN\tMAX\tFPS")
	mean := total / time.Duration(benchFrames)
	fmt.Fprintf(w, "%v\t%v\t%v\t%.1f\n",
		minFrame.Round(time.Microsecond),
		mean.Round(time.Microsecond),
		maxFrame.Round(time.Microsecond),
		float64(time.Second)/float64(mean))
	return w.Flush()
}
