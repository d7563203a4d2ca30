package clipmap

// TileMesh is one static tile of the level grid: a (SizeX+1)×(SizeZ+1)
// regular grid of 2D vertices in integer grid space, triangulated with
// two triangles per quad. Height is applied later in the vertex stage, so
// the same tiles are shared read-only by every level.
type TileMesh struct {
	// Origin is the tile's start position in grid space.
	Origin [2]int

	// SizeX, SizeZ are the tile extents in grid cells.
	SizeX, SizeZ int

	// Vertices holds x,z pairs, row-major from Origin.
	Vertices []float32

	// Indices triangulates the grid, two triangles per quad.
	Indices []uint32
}

// IndexCount returns the number of indices to draw, 6·SizeX·SizeZ.
func (t *TileMesh) IndexCount() int32 {
	return int32(len(t.Indices))
}

// VertexCount returns the number of grid vertices, (SizeX+1)·(SizeZ+1).
func (t *TileMesh) VertexCount() int {
	return len(t.Vertices) / 2
}

// Geometry holds the three disjoint tile collections a level is drawn
// from. Built once at startup, never resized.
type Geometry struct {
	// Blocks are the 12 ring blocks around the empty center.
	Blocks []TileMesh

	// FixupStrips are the 4 thin tiles seaming the ring's block seams.
	FixupStrips []TileMesh

	// InteriorTrims are the 4 tiles bordering the empty center, blending
	// a level's edge into the next finer level beneath it.
	InteriorTrims []TileMesh
}

// BuildTileMesh produces the vertex grid and index list for one tile.
// Deterministic and pure: same four integers, same mesh.
func BuildTileMesh(startX, startZ, sizeX, sizeZ int) TileMesh {
	tile := TileMesh{
		Origin:   [2]int{startX, startZ},
		SizeX:    sizeX,
		SizeZ:    sizeZ,
		Vertices: make([]float32, 0, 2*(sizeX+1)*(sizeZ+1)),
		Indices:  make([]uint32, 0, 6*sizeX*sizeZ),
	}

	for z := 0; z <= sizeZ; z++ {
		for x := 0; x <= sizeX; x++ {
			tile.Vertices = append(tile.Vertices, float32(startX+x), float32(startZ+z))
		}
	}

	// Two triangles per quad: (tl, bl, tr) then (tr, bl, br).
	for z := 0; z < sizeZ; z++ {
		for x := 0; x < sizeX; x++ {
			tl := uint32(z*(sizeX+1) + x)
			tr := tl + 1
			bl := uint32((z+1)*(sizeX+1) + x)
			br := bl + 1

			tile.Indices = append(tile.Indices, tl, bl, tr, tr, bl, br)
		}
	}

	return tile
}

// BuildGeometry lays out the 12+4+4 tiles of one level from BlockSize.
// The positions are exact integer arithmetic over m; all levels share the
// resulting meshes and differ only in the scale/offset uniforms at draw
// time.
func BuildGeometry() Geometry {
	m := BlockSize

	// 12 (m-1)×(m-1) blocks at the outer positions of a 4×4 cell grid;
	// the 2×2 center stays empty for the next finer level.
	blockOrigins := [12][2]int{
		{0, 0}, {m, 0}, {2 * m, 0}, {3 * m, 0},
		{0, m}, {3 * m, m},
		{0, 2 * m}, {3 * m, 2 * m},
		{0, 3 * m}, {m, 3 * m}, {2 * m, 3 * m}, {3 * m, 3 * m},
	}

	// 4 width-3 strips spanning the block seams in the top and bottom
	// rows (y=0 and y=3m).
	stripOrigins := [4][2]int{
		{m - 1, 0}, {2 * m, 0},
		{m - 1, 3 * m}, {2 * m, 3 * m},
	}

	// 4 (m-2)×(m-2) interior trims adjoining the empty center.
	trimOrigins := [4][2]int{
		{m, m}, {2*m - 2, m},
		{m, 2*m - 2}, {2*m - 2, 2*m - 2},
	}

	g := Geometry{
		Blocks:        make([]TileMesh, 0, len(blockOrigins)),
		FixupStrips:   make([]TileMesh, 0, len(stripOrigins)),
		InteriorTrims: make([]TileMesh, 0, len(trimOrigins)),
	}

	for _, o := range blockOrigins {
		g.Blocks = append(g.Blocks, BuildTileMesh(o[0], o[1], m-1, m-1))
	}
	for _, o := range stripOrigins {
		g.FixupStrips = append(g.FixupStrips, BuildTileMesh(o[0], o[1], 3, m-1))
	}
	for _, o := range trimOrigins {
		g.InteriorTrims = append(g.InteriorTrims, BuildTileMesh(o[0], o[1], m-2, m-2))
	}

	return g
}
