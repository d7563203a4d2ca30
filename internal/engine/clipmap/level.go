package clipmap

import "github.com/vastheim/clipterra/pkg/math"

// Level is one LOD ring of the clipmap. Scale is immutable after
// creation; WorldOffset is the only field that moves during a run, and it
// is always an exact integer multiple of the level's grid spacing.
type Level struct {
	// Scale is the world-units-per-grid-cell multiplier, 2^index.
	Scale float32

	// WorldOffset is the world-space position of the level's grid
	// origin, snapped to the level's grid spacing.
	WorldOffset math.Vec2

	// Active marks the level as participating in rendering. Reserved
	// for future selective LOD; always true after New.
	Active bool

	// TextureOffset is the toroidal read offset into the level's
	// elevation/normal textures, in texels. It is advanced on every
	// re-center but does not yet drive partial texture updates.
	TextureOffset [2]int

	// UpdateCount counts WorldOffset changes, for diagnostics.
	UpdateCount int
}
