package clipmap

import (
	gomath "math"

	"github.com/vastheim/clipterra/pkg/math"
)

// Recenter snaps every level's world offset to the viewer's position,
// called once per frame before any level is drawn.
//
// A level's offset is quantized to its own grid spacing with a floor, so
// frames in which the viewer stays inside one grid cell produce an
// identical offset and no update. Coarser levels have proportionally
// larger spacing and therefore re-center less often; that is what bounds
// per-frame work. Levels are independent of each other and may be
// processed in any order.
func (c *Clipmap) Recenter(viewer math.Vec2) {
	for i := range c.Levels {
		lvl := &c.Levels[i]

		spacing := BaseSpacing * lvl.Scale
		grid := viewer.Div(spacing).Floor()
		newOffset := grid.Scale(spacing)

		if newOffset == lvl.WorldOffset {
			continue
		}

		// One texel per crossed grid cell; the textures wrap, so the
		// read offset advances toroidally. Tracked for the future
		// border-only texture update pass; nothing consumes it yet.
		dx := int(gomath.Round(float64((newOffset.X - lvl.WorldOffset.X) / spacing)))
		dz := int(gomath.Round(float64((newOffset.Y - lvl.WorldOffset.Y) / spacing)))
		lvl.TextureOffset[0] = wrapTexel(lvl.TextureOffset[0] + dx)
		lvl.TextureOffset[1] = wrapTexel(lvl.TextureOffset[1] + dz)

		lvl.WorldOffset = newOffset
		lvl.UpdateCount++
	}
}

func wrapTexel(v int) int {
	v %= TextureSize
	if v < 0 {
		v += TextureSize
	}
	return v
}
