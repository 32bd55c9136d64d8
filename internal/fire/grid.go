package fire

// Source picks injection columns. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Grid is a row-major heat buffer. The slice carries width+1 trailing
// cells past width*height.
type Grid struct {
	width, height int
	cells         []int
}

func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]int, width*height+width+1),
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }
func (g *Grid) Len() int    { return len(g.cells) }

// At returns the heat at (x, y), or 0 outside the grid.
func (g *Grid) At(x, y int) int {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return 0
	}
	return g.cells[x+y*g.width]
}

// Set writes the heat at (x, y); out-of-grid writes are dropped.
func (g *Grid) Set(x, y, v int) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return
	}
	g.cells[x+y*g.width] = v
}

// Cells returns a copy of the visible width*height cells.
func (g *Grid) Cells() []int {
	out := make([]int, g.width*g.height)
	copy(out, g.cells)
	return out
}

// Inject overwrites count random bottom-row cells with heat.
func (g *Grid) Inject(src Source, count, heat int) {
	if g.width == 0 || g.height == 0 {
		return
	}
	bottom := g.width * (g.height - 1)
	for i := 0; i < count; i++ {
		idx := src.Intn(g.width) + bottom
		if idx >= 0 && idx < len(g.cells) {
			g.cells[idx] = heat
		}
	}
}

// Diffuse replaces the buffer with one computed entirely from the old one:
// each cell becomes the mean of its left, right, below and below-right
// neighbors minus cooling, floored at smoke.
func (g *Grid) Diffuse(cooling, smoke int) {
	next := make([]int, len(g.cells))
	for y := g.height - 1; y >= 0; y-- {
		for x := 0; x < g.width; x++ {
			avg := (g.At(x-1, y) + g.At(x+1, y) + g.At(x, y+1) + g.At(x+1, y+1)) / 4
			next[x+y*g.width] = max(avg-cooling, smoke)
		}
	}
	g.cells = next
}

// Step runs one injection followed by one diffusion.
func (g *Grid) Step(src Source, p Params) {
	g.Inject(src, NumInjections(g.width, p.Events), HeatBase(p.Events))
	g.Diffuse(Cooling(p.Speed, p.Events), p.Smoke)
}
