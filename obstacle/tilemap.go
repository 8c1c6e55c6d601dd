package obstacle

// Cell is the kind of terrain occupying one tile of a Grid.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellSolid      // Blocks from every direction.
	CellCloud      // One-way: only solid to a floor probe from above.
)

// Grid is a tile-based obstacle.Map, the demo/procedural implementation
// used by cmd/platformdemo and by the actor package's own tests.
type Grid struct {
	cells      [][]Cell
	cellSize   float32
	width      int
	height     int
	onlyLayers map[string]bool // if non-nil, only these layers collide
}

// NewGrid allocates an empty grid of width x height tiles.
func NewGrid(width, height int, cellSize float32) *Grid {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}
	return &Grid{
		cells:    cells,
		cellSize: cellSize,
		width:    width,
		height:   height,
	}
}

// SetCell sets the tile at grid coordinates (gx, gy), a no-op out of bounds.
func (g *Grid) SetCell(gx, gy int, c Cell) {
	if gx < 0 || gx >= g.width || gy < 0 || gy >= g.height {
		return
	}
	g.cells[gy][gx] = c
}

// Cell returns the tile at grid coordinates (gx, gy), CellEmpty out of bounds.
func (g *Grid) Cell(gx, gy int) Cell {
	if gx < 0 || gx >= g.width || gy < 0 || gy >= g.height {
		return CellEmpty
	}
	return g.cells[gy][gx]
}

// CellSize returns the tile edge length in world units.
func (g *Grid) CellSize() float32 { return g.cellSize }

// WidthTiles returns the grid width in tiles.
func (g *Grid) WidthTiles() int { return g.width }

// HeightTiles returns the grid height in tiles.
func (g *Grid) HeightTiles() int { return g.height }

// RestrictLayers limits collision to the given actor layers; an actor
// probing with any other layer tag passes through every tile. Passing no
// layers removes the restriction (the default: everything collides).
func (g *Grid) RestrictLayers(layers ...string) {
	if len(layers) == 0 {
		g.onlyLayers = nil
		return
	}
	g.onlyLayers = make(map[string]bool, len(layers))
	for _, l := range layers {
		g.onlyLayers[l] = true
	}
}

func (g *Grid) layerAllowed(layer string) bool {
	if g.onlyLayers == nil {
		return true
	}
	return g.onlyLayers[layer]
}

func (g *Grid) worldToGrid(x, y float32) (int, int) {
	return int(x / g.cellSize), int(y / g.cellSize)
}

func (g *Grid) blocks(gx, gy int, dir Direction) bool {
	c := g.Cell(gx, gy)
	switch c {
	case CellEmpty:
		return false
	case CellSolid:
		return true
	case CellCloud:
		return dir == DirFloor
	default:
		return false
	}
}

// PointCollision implements obstacle.Map.
func (g *Grid) PointCollision(x, y float32, dir Direction, layer string) bool {
	if !g.layerAllowed(layer) {
		return false
	}
	gx, gy := g.worldToGrid(x, y)
	return g.blocks(gx, gy, dir)
}

// GroundPosition implements obstacle.Map by marching one tile at a time
// along dir from (x, y) until a blocking cell is found or maxDistance is
// exceeded.
func (g *Grid) GroundPosition(x, y float32, dir Direction, maxDistance float32, layer string) (float32, bool) {
	r := g.Probe(x, y, dir, maxDistance, layer)
	return r.GroundPos, r.Hit
}

// Probe implements obstacle.Map.
func (g *Grid) Probe(x, y float32, dir Direction, maxDistance float32, layer string) ProbeResult {
	if !g.layerAllowed(layer) {
		return ProbeResult{}
	}

	step := g.cellSize
	steps := int(maxDistance / step)

	dx, dy := 0, 0
	switch dir {
	case DirFloor:
		dy = 1
	case DirCeiling:
		dy = -1
	case DirLeftWall:
		dx = -1
	case DirRightWall:
		dx = 1
	}

	gx, gy := g.worldToGrid(x, y)
	for i := 0; i <= steps; i++ {
		cx, cy := gx+dx*i, gy+dy*i
		if !g.blocks(cx, cy, dir) {
			continue
		}
		solid := g.Cell(cx, cy) == CellSolid
		switch dir {
		case DirFloor:
			return ProbeResult{Hit: true, Solid: solid, GroundPos: float32(cy) * g.cellSize}
		case DirCeiling:
			return ProbeResult{Hit: true, Solid: solid, GroundPos: float32(cy+1) * g.cellSize}
		case DirLeftWall:
			return ProbeResult{Hit: true, Solid: solid, GroundPos: float32(cx+1) * g.cellSize}
		case DirRightWall:
			return ProbeResult{Hit: true, Solid: solid, GroundPos: float32(cx) * g.cellSize}
		}
	}
	return ProbeResult{}
}
