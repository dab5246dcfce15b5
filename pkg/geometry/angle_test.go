package geometry

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	ferrors "github.com/formsight/formsight-server/pkg/errors"
)

func TestAngle(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c r2.Vec
		want    float64
	}{
		{
			name: "right angle",
			a:    r2.Vec{X: 1, Y: 0},
			b:    r2.Vec{X: 0, Y: 0},
			c:    r2.Vec{X: 0, Y: 1},
			want: 90,
		},
		{
			name: "collinear extension",
			a:    r2.Vec{X: -1, Y: 0},
			b:    r2.Vec{X: 0, Y: 0},
			c:    r2.Vec{X: 1, Y: 0},
			want: 180,
		},
		{
			name: "zero separation",
			a:    r2.Vec{X: 1, Y: 1},
			b:    r2.Vec{X: 0, Y: 0},
			c:    r2.Vec{X: 2, Y: 2},
			want: 0,
		},
		{
			name: "45 degrees",
			a:    r2.Vec{X: 1, Y: 0},
			b:    r2.Vec{X: 0, Y: 0},
			c:    r2.Vec{X: 1, Y: 1},
			want: 45,
		},
		{
			name: "obtuse",
			a:    r2.Vec{X: 1, Y: 0},
			b:    r2.Vec{X: 0, Y: 0},
			c:    r2.Vec{X: -1, Y: 1},
			want: 135,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Angle(tt.a, tt.b, tt.c)
			if err != nil {
				t.Fatalf("Angle() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Angle() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAngle_SymmetricInOperands(t *testing.T) {
	a := r2.Vec{X: 0.3, Y: 0.7}
	b := r2.Vec{X: 0.5, Y: 0.5}
	c := r2.Vec{X: 0.9, Y: 0.6}

	fwd, err := Angle(a, b, c)
	if err != nil {
		t.Fatalf("Angle(a,b,c) error = %v", err)
	}
	rev, err := Angle(c, b, a)
	if err != nil {
		t.Fatalf("Angle(c,b,a) error = %v", err)
	}
	if math.Abs(fwd-rev) > 1e-9 {
		t.Errorf("Angle is not symmetric: %v vs %v", fwd, rev)
	}
}

func TestAngle_Range(t *testing.T) {
	// No input may ever escape [0,180].
	points := []r2.Vec{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1},
		{X: 0.25, Y: 0.75}, {X: 0.9, Y: 0.1}, {X: 0.5, Y: 0.5},
	}
	for _, a := range points {
		for _, b := range points {
			for _, c := range points {
				got, err := Angle(a, b, c)
				if err != nil {
					continue // degenerate combinations are covered below
				}
				if got < 0 || got > 180 {
					t.Fatalf("Angle(%v, %v, %v) = %v, outside [0,180]", a, b, c, got)
				}
			}
		}
	}
}

func TestAngle_Degenerate(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c r2.Vec
	}{
		{
			name: "first point coincides with vertex",
			a:    r2.Vec{X: 0.5, Y: 0.5},
			b:    r2.Vec{X: 0.5, Y: 0.5},
			c:    r2.Vec{X: 1, Y: 1},
		},
		{
			name: "third point coincides with vertex",
			a:    r2.Vec{X: 1, Y: 1},
			b:    r2.Vec{X: 0.5, Y: 0.5},
			c:    r2.Vec{X: 0.5, Y: 0.5},
		},
		{
			name: "all coincident",
			a:    r2.Vec{X: 0.5, Y: 0.5},
			b:    r2.Vec{X: 0.5, Y: 0.5},
			c:    r2.Vec{X: 0.5, Y: 0.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Angle(tt.a, tt.b, tt.c)
			if !errors.Is(err, ferrors.ErrDegenerateGeometry) {
				t.Errorf("Angle() error = %v, want ErrDegenerateGeometry", err)
			}
		})
	}
}
