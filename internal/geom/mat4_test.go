package geom

import (
	"math"
	"testing"
)

func matApproxEqual(a, b Mat4, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func TestIdentityInverse(t *testing.T) {
	id := Identity()
	if !matApproxEqual(id.Inverse(), id, 1e-12) {
		t.Errorf("identity inverse != identity: %v", id.Inverse())
	}
}

func TestInverseRoundTrip(t *testing.T) {
	// rotation about z by 0.7 plus a translation
	s, c := math.Sin(0.7), math.Cos(0.7)
	m := Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		3, -2, 5, 1,
	}
	if !matApproxEqual(m.Mul(m.Inverse()), Identity(), 1e-12) {
		t.Errorf("m * m^-1 != identity: %v", m.Mul(m.Inverse()))
	}
	if !matApproxEqual(m.Inverse().Mul(m), Identity(), 1e-12) {
		t.Errorf("m^-1 * m != identity: %v", m.Inverse().Mul(m))
	}
}

func TestSingularInverseDoesNotPanic(t *testing.T) {
	var zero Mat4
	inv := zero.Inverse()
	for i, v := range inv {
		if !math.IsNaN(v) && !math.IsInf(v, 0) && v != 0 {
			t.Errorf("element %d of singular inverse is finite nonzero: %v", i, v)
		}
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	m := Identity()
	m[12], m[13], m[14] = 10, 20, 30

	d := m.TransformDirection(Vec3{X: 1, Y: 2, Z: 3})
	if d != (Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("direction picked up translation: %v", d)
	}

	p := m.TransformPoint(Vec3{X: 1, Y: 2, Z: 3})
	if p != (Vec3{X: 11, Y: 22, Z: 33}) {
		t.Errorf("point transform wrong: %v", p)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{X: 3, Y: 4}.Normalize()
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("normalized length %v", v.Length())
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("normalizing zero vector should return zero")
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{X: 1}
	y := Vec3{Y: 1}
	if x.Cross(y) != (Vec3{Z: 1}) {
		t.Errorf("x cross y = %v", x.Cross(y))
	}
}
