package globe

import (
	"runtime"
	"sync"

	"github.com/san-kum/termglobe/internal/canvas"
)

// RenderParallel fans canvas rows out across workers goroutines. Each cell
// writes a distinct canvas slot, so no locking is needed and the output is
// byte-identical to Render. workers <= 0 uses one goroutine per CPU.
func (g *Globe) RenderParallel(c *canvas.Canvas, workers int) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	_, h := c.Size()
	if workers > h {
		workers = h
	}
	if workers <= 1 {
		g.Render(c)
		return
	}

	chunk := (h + workers - 1) / workers
	var wg sync.WaitGroup
	for y0 := 0; y0 < h; y0 += chunk {
		y1 := min(y0+chunk, h)
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			g.renderRows(c, y0, y1)
		}(y0, y1)
	}
	wg.Wait()
}
