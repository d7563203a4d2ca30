// Package scene renders the clipmap level stack with OpenGL.
package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/vastheim/clipterra/internal/engine/clipmap"
	"github.com/vastheim/clipterra/internal/engine/scene/shaders"
	"github.com/vastheim/clipterra/internal/engine/shader"
	"github.com/vastheim/clipterra/internal/logger"
	"github.com/vastheim/clipterra/pkg/math"
)

// tileBuffers holds the GPU buffers of one static tile. destroy zeroes
// the handles after deleting them, so a second destroy is a no-op.
type tileBuffers struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

func (t *tileBuffers) destroy() {
	if t.vao != 0 {
		gl.DeleteVertexArrays(1, &t.vao)
		t.vao = 0
	}
	if t.vbo != 0 {
		gl.DeleteBuffers(1, &t.vbo)
		t.vbo = 0
	}
	if t.ebo != 0 {
		gl.DeleteBuffers(1, &t.ebo)
		t.ebo = 0
	}
}

// levelTextures holds one level's elevation (R32F) and normal (RGBA8)
// textures, both N×N with REPEAT wrap for toroidal addressing.
type levelTextures struct {
	elevation uint32
	normal    uint32
}

func (lt *levelTextures) destroy() {
	if lt.elevation != 0 {
		gl.DeleteTextures(1, &lt.elevation)
		lt.elevation = 0
	}
	if lt.normal != 0 {
		gl.DeleteTextures(1, &lt.normal)
		lt.normal = 0
	}
}

// ClipmapRenderer draws the clipmap level stack. It borrows levels and
// tile meshes from the Clipmap per draw call; the GPU resources created
// here (program, tile buffers, level textures) are its own.
type ClipmapRenderer struct {
	cm *clipmap.Clipmap

	program uint32

	// Uniform locations
	locModel       int32
	locView        int32
	locProjection  int32
	locLevelScale  int32
	locLevelOffset int32
	locLevelIndex  int32
	locElevation   int32
	locNormalMap   int32

	blocks []tileBuffers
	strips []tileBuffers
	trims  []tileBuffers

	levels []levelTextures
}

// NewClipmapRenderer compiles the terrain program, uploads the 20 shared
// tiles and allocates the per-level textures. Any GL allocation failure
// is fatal: the partially built renderer is released and the error
// propagates so startup can abort.
func NewClipmapRenderer(cm *clipmap.Clipmap) (*ClipmapRenderer, error) {
	r := &ClipmapRenderer{cm: cm}

	program, err := shader.CompileProgram(shaders.TerrainVertexShader, shaders.TerrainFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}
	r.program = program

	r.locModel = shader.GetUniform(program, "model")
	r.locView = shader.GetUniform(program, "view")
	r.locProjection = shader.GetUniform(program, "projection")
	r.locLevelScale = shader.GetUniform(program, "levelScale")
	r.locLevelOffset = shader.GetUniform(program, "levelOffset")
	r.locLevelIndex = shader.GetUniform(program, "levelIndex")
	r.locElevation = shader.GetUniform(program, "elevationMap")
	r.locNormalMap = shader.GetUniform(program, "normalMap")

	if err := r.uploadGeometry(); err != nil {
		r.Close()
		return nil, err
	}
	if err := r.createLevelTextures(); err != nil {
		r.Close()
		return nil, err
	}

	logger.Info("clipmap renderer ready",
		zap.Int("levels", len(r.levels)),
		zap.Int("tiles", len(r.blocks)+len(r.strips)+len(r.trims)),
	)

	return r, nil
}

// uploadGeometry creates VAO/VBO/EBO triples for every shared tile.
func (r *ClipmapRenderer) uploadGeometry() error {
	upload := func(tiles []clipmap.TileMesh, dst *[]tileBuffers) error {
		for i := range tiles {
			buf, err := uploadTile(&tiles[i])
			if err != nil {
				return err
			}
			*dst = append(*dst, buf)
		}
		return nil
	}

	g := &r.cm.Geometry
	if err := upload(g.Blocks, &r.blocks); err != nil {
		return fmt.Errorf("uploading blocks: %w", err)
	}
	if err := upload(g.FixupStrips, &r.strips); err != nil {
		return fmt.Errorf("uploading fixup strips: %w", err)
	}
	if err := upload(g.InteriorTrims, &r.trims); err != nil {
		return fmt.Errorf("uploading interior trims: %w", err)
	}
	return nil
}

func uploadTile(tile *clipmap.TileMesh) (tileBuffers, error) {
	var buf tileBuffers
	buf.indexCount = tile.IndexCount()

	gl.GenVertexArrays(1, &buf.vao)
	gl.GenBuffers(1, &buf.vbo)
	gl.GenBuffers(1, &buf.ebo)
	if buf.vao == 0 || buf.vbo == 0 || buf.ebo == 0 {
		buf.destroy()
		return tileBuffers{}, fmt.Errorf("allocating tile buffers for origin %v", tile.Origin)
	}

	gl.BindVertexArray(buf.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, buf.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(tile.Vertices)*4, gl.Ptr(tile.Vertices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(tile.Indices)*4, gl.Ptr(tile.Indices), gl.STATIC_DRAW)

	// Attribute 0: vec2 grid position.
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)

	return buf, nil
}

// createLevelTextures allocates the two opaque N×N textures per level.
// Their content is produced elsewhere; the renderer only owns storage.
func (r *ClipmapRenderer) createLevelTextures() error {
	const n = clipmap.TextureSize

	for i := range r.cm.Levels {
		var lt levelTextures

		gl.GenTextures(1, &lt.elevation)
		gl.BindTexture(gl.TEXTURE_2D, lt.elevation)
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R32F, n, n, 0, gl.RED, gl.FLOAT, nil)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
		// Toroidal addressing: re-centering only ever needs to touch
		// the newly exposed border.
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)

		gl.GenTextures(1, &lt.normal)
		gl.BindTexture(gl.TEXTURE_2D, lt.normal)
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, n, n, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)

		if lt.elevation == 0 || lt.normal == 0 {
			lt.destroy()
			return fmt.Errorf("allocating textures for level %d", i)
		}

		r.levels = append(r.levels, lt)
	}

	return nil
}

// RenderLevel draws one level: blocks, then fix-up strips, then interior
// trims, all from the shared buffers with this level's uniforms. Out of
// range indices and inactive levels are a no-op, not an error. Draw
// state is left pointing at the last tile; callers issuing further draws
// must rebind.
func (r *ClipmapRenderer) RenderLevel(index int, model, view, projection math.Mat4) {
	if index < 0 || index >= len(r.cm.Levels) || !r.cm.Levels[index].Active {
		return
	}
	lvl := &r.cm.Levels[index]

	gl.UseProgram(r.program)

	gl.UniformMatrix4fv(r.locModel, 1, false, &model[0])
	gl.UniformMatrix4fv(r.locView, 1, false, &view[0])
	gl.UniformMatrix4fv(r.locProjection, 1, false, &projection[0])

	renderScale := float32(clipmap.BaseSpacing) * lvl.Scale
	gl.Uniform1f(r.locLevelScale, renderScale)
	gl.Uniform2f(r.locLevelOffset, lvl.WorldOffset.X, lvl.WorldOffset.Y)
	gl.Uniform1i(r.locLevelIndex, int32(index))

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.levels[index].elevation)
	gl.Uniform1i(r.locElevation, 0)

	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, r.levels[index].normal)
	gl.Uniform1i(r.locNormalMap, 1)

	drawTiles(r.blocks)
	drawTiles(r.strips)
	drawTiles(r.trims)
}

func drawTiles(tiles []tileBuffers) {
	for i := range tiles {
		gl.BindVertexArray(tiles[i].vao)
		gl.DrawElements(gl.TRIANGLES, tiles[i].indexCount, gl.UNSIGNED_INT, nil)
	}
}

// Close releases every GPU resource exactly once; calling it again is a
// no-op because the handle wrappers zero themselves after deletion.
func (r *ClipmapRenderer) Close() {
	for i := range r.blocks {
		r.blocks[i].destroy()
	}
	for i := range r.strips {
		r.strips[i].destroy()
	}
	for i := range r.trims {
		r.trims[i].destroy()
	}
	for i := range r.levels {
		r.levels[i].destroy()
	}

	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}
