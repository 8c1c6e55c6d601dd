package obstacle

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// GenerateOptions controls procedural tilemap generation.
type GenerateOptions struct {
	WidthTiles, HeightTiles int
	CellSize                float32
	Seed                    int64

	// FloorNoiseScale controls how quickly floor height undulates; lower
	// is smoother.
	FloorNoiseScale float64
	// FloorMinRatio/FloorMaxRatio bound the floor height as a fraction of
	// HeightTiles.
	FloorMinRatio, FloorMaxRatio float64

	// PlatformThreshold in [-1,1]; higher values produce fewer, smaller
	// floating cloud platforms.
	PlatformThreshold float64
}

// DefaultGenerateOptions returns reasonable defaults for a demo level.
func DefaultGenerateOptions(seed int64) GenerateOptions {
	return GenerateOptions{
		WidthTiles:        400,
		HeightTiles:       60,
		CellSize:          16,
		Seed:              seed,
		FloorNoiseScale:   0.04,
		FloorMinRatio:     0.55,
		FloorMaxRatio:     0.80,
		PlatformThreshold: 0.62,
	}
}

// Generate builds a side-scrolling tilemap: an undulating solid floor
// carved with opensimplex noise (the same noise-threshold-carving idiom
// the teacher uses for sea floor and floating islands), plus a scatter of
// one-way cloud platforms above it.
func Generate(opts GenerateOptions) *Grid {
	g := NewGrid(opts.WidthTiles, opts.HeightTiles, opts.CellSize)
	noise := opensimplex.New(opts.Seed)

	floorTop := make([]int, opts.WidthTiles)
	for x := 0; x < opts.WidthTiles; x++ {
		n := noise.Eval2(float64(x)*opts.FloorNoiseScale, 0)
		ratio := opts.FloorMinRatio + (n+1)/2*(opts.FloorMaxRatio-opts.FloorMinRatio)
		top := int(float64(opts.HeightTiles) * ratio)
		if top < 1 {
			top = 1
		}
		if top >= opts.HeightTiles {
			top = opts.HeightTiles - 1
		}
		floorTop[x] = top

		for y := top; y < opts.HeightTiles; y++ {
			g.SetCell(x, y, CellSolid)
		}
	}

	const platformScale = 0.09
	for x := 0; x < opts.WidthTiles; x++ {
		for y := 4; y < floorTop[x]-3; y++ {
			n := noise.Eval2(float64(x)*platformScale+500, float64(y)*platformScale+500)
			if n > opts.PlatformThreshold {
				g.SetCell(x, y, CellCloud)
			}
		}
	}

	return g
}
