// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// TerrainVertexShader is the clipmap terrain vertex shader.
//
//go:embed terrain.vert
var TerrainVertexShader string

// TerrainFragmentShader is the clipmap terrain fragment shader.
//
//go:embed terrain.frag
var TerrainFragmentShader string
