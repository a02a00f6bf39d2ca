// Package globe implements the ASCII globe rendering core.
//
// The package ray-traces a textured unit sphere into a character canvas:
//
//   - [Camera]: orbital scalars (radius, azimuth, elevation) mapped to a
//     world position and an orthonormal 4x4 transform with exact inverse
//   - [Globe]: camera + texture + rotation angle, rendered per-cell by
//     [Globe.Render] or row-parallel by [Globe.RenderParallel]
//   - [Config]: explicit configuration value validated by [Config.Build]
//
// # Pipeline
//
// For every canvas cell a view ray is generated, rotated into world space,
// intersected with the sphere, lit by a fixed directional light, and mapped
// through equirectangular coordinates into the texture. Night-side cells
// blend day and night characters along the palette luminance ramp.
//
// # Thread Safety
//
// Render never mutates the Globe. Cells are independent: each reads only
// immutable state and writes exactly one canvas slot, which is what makes
// RenderParallel possible without locks.
package globe
