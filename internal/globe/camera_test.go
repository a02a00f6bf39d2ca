package globe

import (
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/termglobe/internal/geom"
)

func TestCameraInverseProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	id := geom.Identity()

	for i := 0; i < 1000; i++ {
		r := 0.1 + rng.Float64()*99.9
		alpha := -math.Pi + rng.Float64()*2*math.Pi
		beta := -math.Pi + rng.Float64()*2*math.Pi

		cam := NewCamera(r, alpha, beta)
		prod := cam.Matrix.Mul(cam.Inverse)
		for j := range prod {
			if math.Abs(prod[j]-id[j]) > 1e-4 {
				t.Fatalf("sample %d (r=%v a=%v b=%v): matrix*inverse[%d] = %v, want %v",
					i, r, alpha, beta, j, prod[j], id[j])
			}
		}
	}
}

func TestCameraPosition(t *testing.T) {
	tests := []struct {
		name    string
		r, a, b float64
		want    geom.Vec3
	}{
		{"front", 2, 0, 0, geom.Vec3{X: 2}},
		{"quarter", 2, math.Pi / 2, 0, geom.Vec3{Y: 2}},
		{"pole", 2, 0, math.Pi / 2, geom.Vec3{Z: 2}},
	}
	for _, tt := range tests {
		cam := NewCamera(tt.r, tt.a, tt.b)
		if cam.Position.Sub(tt.want).Length() > 1e-12 {
			t.Errorf("%s: position = %v, want %v", tt.name, cam.Position, tt.want)
		}
	}
}

func TestCameraOrthonormalBasis(t *testing.T) {
	cam := NewCamera(3, 0.8, -0.4)
	m := cam.Matrix

	rows := []geom.Vec3{
		{X: m[0], Y: m[1], Z: m[2]},
		{X: m[4], Y: m[5], Z: m[6]},
		{X: m[8], Y: m[9], Z: m[10]},
	}
	for i, r := range rows {
		if math.Abs(r.Length()-1) > 1e-12 {
			t.Errorf("basis row %d has length %v", i, r.Length())
		}
		for j := i + 1; j < 3; j++ {
			if d := math.Abs(r.Dot(rows[j])); d > 1e-12 {
				t.Errorf("rows %d,%d not orthogonal: dot = %v", i, j, d)
			}
		}
	}
}

func TestCameraDegenerateRadius(t *testing.T) {
	// r == 0 collapses the basis; the contract is no panic, NaN/Inf allowed
	cam := NewCamera(0, 0.3, 0.7)
	if cam.Position.Length() != 0 {
		t.Errorf("position = %v, want origin", cam.Position)
	}
	_ = cam.Inverse
}

func TestCameraUpdateReplacesAllFields(t *testing.T) {
	cam := NewCamera(2, 0, 0)
	before := *cam
	cam.Update(3, 1, 0.5)
	if cam.Position == before.Position {
		t.Error("position not updated")
	}
	if cam.Matrix == before.Matrix {
		t.Error("matrix not updated")
	}
	if cam.Inverse == before.Inverse {
		t.Error("inverse not updated")
	}

	// updating back must reproduce the original exactly: no history
	cam.Update(2, 0, 0)
	if *cam != before {
		t.Error("camera accumulates state across updates")
	}
}
