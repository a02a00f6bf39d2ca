package globe

import (
	"math"

	"github.com/san-kum/termglobe/internal/geom"
)

// Camera orbits the globe origin, parameterized by distance and two angles.
// All derived fields are replaced together by Update; the camera keeps no
// history between calls, so repeated updates cannot accumulate drift.
type Camera struct {
	Position geom.Vec3
	Matrix   geom.Mat4
	Inverse  geom.Mat4
}

// NewCamera returns a camera at distance r, azimuth alpha (xy plane),
// elevation beta (toward the z axis).
func NewCamera(r, alpha, beta float64) *Camera {
	c := &Camera{}
	c.Update(r, alpha, beta)
	return c
}

// Update recomputes position, orientation and its exact inverse from the
// orbital scalars. The basis rows are the normalized partial derivatives of
// the orbital position with respect to alpha and beta, so the camera always
// faces the origin. r == 0 collapses the basis: the matrix turns singular
// and Inverse fills with Inf/NaN; no panic occurs.
func (c *Camera) Update(r, alpha, beta float64) {
	sinA, cosA := math.Sincos(alpha)
	sinB, cosB := math.Sincos(beta)

	x := r * cosA * cosB
	y := r * sinA * cosB
	z := r * sinB

	var m geom.Mat4
	m[0], m[1], m[2] = -sinA, cosA, 0
	m[4], m[5], m[6] = cosA*sinB, sinA*sinB, -cosB
	m[8], m[9], m[10] = cosA*cosB, sinA*cosB, sinB
	m[12], m[13], m[14] = x, y, z
	m[15] = 1

	c.Position = geom.Vec3{X: x, Y: y, Z: z}
	c.Matrix = m
	c.Inverse = m.Inverse()
}
