// Package clipmap implements the geometry clipmap level hierarchy: a stack
// of nested, fixed-size square grids that follow the viewer. Each level is
// twice as coarse as the one below it, and re-centering snaps a level to
// its own grid spacing so vertices never move between frames in which the
// viewer stays inside one grid cell.
//
// The package is CPU-only. GPU upload and drawing live in the scene
// package; this one owns the data model, the tile layout tables and the
// re-centering algorithm.
package clipmap

// Compile-time configuration. TextureSize is odd so the grid has a
// well-defined center, and BlockSize divides it per N = 4m - 1.
const (
	// LevelCount is the number of LOD levels (index 0 is finest).
	LevelCount = 8

	// TextureSize is the per-level texture and grid extent N.
	TextureSize = 255

	// BlockSize is the ring block stride m = (N+1)/4.
	BlockSize = (TextureSize + 1) / 4

	// BaseSpacing is the world-space distance between adjacent grid
	// vertices at the finest level.
	BaseSpacing = 5.0
)

// Clipmap owns the level records and the shared tile geometry. It is the
// single owner: renderers borrow levels and tiles per draw call but never
// hold mutable references.
type Clipmap struct {
	Levels   []Level
	Geometry Geometry
}

// New builds the shared tile geometry and allocates LevelCount levels
// with Scale = 2^index, zero world offset and Active set.
func New() *Clipmap {
	cm := &Clipmap{
		Levels:   make([]Level, LevelCount),
		Geometry: BuildGeometry(),
	}
	for i := range cm.Levels {
		cm.Levels[i] = Level{
			Scale:  float32(uint32(1) << i),
			Active: true,
		}
	}
	return cm
}

// GridSpacing returns the world-space grid spacing of level i.
func (c *Clipmap) GridSpacing(i int) float32 {
	return BaseSpacing * c.Levels[i].Scale
}
