package optics

import (
	"errors"
	"math"
	"testing"
)

func TestBuildAxis(t *testing.T) {
	L := 1e-2
	M := 8
	ax, err := BuildAxis(L, M)
	if err != nil {
		t.Fatalf("BuildAxis() error = %v", err)
	}
	if len(ax) != M {
		t.Fatalf("axis length = %d, want %d", len(ax), M)
	}
	if ax[0] != -L/2 {
		t.Errorf("first sample = %g, want %g", ax[0], -L/2)
	}
	dx := L / float64(M)
	wantLast := L/2 - dx
	if math.Abs(ax[M-1]-wantLast) > 1e-15 {
		t.Errorf("last sample = %g, want %g (endpoint must be excluded)", ax[M-1], wantLast)
	}
	for i := 1; i < M; i++ {
		if math.Abs((ax[i]-ax[i-1])-dx) > 1e-15 {
			t.Errorf("spacing at %d = %g, want %g", i, ax[i]-ax[i-1], dx)
		}
	}
}

func TestBuildAxisSinglePoint(t *testing.T) {
	ax, err := BuildAxis(2.0, 1)
	if err != nil {
		t.Fatalf("BuildAxis() error = %v", err)
	}
	if len(ax) != 1 || ax[0] != -1.0 {
		t.Errorf("single-point axis = %v, want [-1]", ax)
	}
}

func TestBuildAxisRejectsBadInputs(t *testing.T) {
	if _, err := BuildAxis(0, 8); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("BuildAxis(0, 8) error = %v, want ErrInvalidDimension", err)
	}
	if _, err := BuildAxis(1.0, 0); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("BuildAxis(1, 0) error = %v, want ErrInvalidDimension", err)
	}
	if _, err := BuildAxis(-1.0, 8); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("BuildAxis(-1, 8) error = %v, want ErrInvalidDimension", err)
	}
}

func TestBuildFrequencyAxis(t *testing.T) {
	L := 1e-2
	M := 8
	f, err := BuildFrequencyAxis(L, M)
	if err != nil {
		t.Fatalf("BuildFrequencyAxis() error = %v", err)
	}
	dx := L / float64(M)
	if math.Abs(f[0]-(-1/(2*dx))) > 1e-9 {
		t.Errorf("first frequency = %g, want %g", f[0], -1/(2*dx))
	}
	df := 1 / L
	for i := 1; i < M; i++ {
		if math.Abs((f[i]-f[i-1])-df) > 1e-9 {
			t.Errorf("frequency spacing at %d = %g, want %g", i, f[i]-f[i-1], df)
		}
	}
	if math.Abs(f[M-1]-(1/(2*dx)-df)) > 1e-9 {
		t.Errorf("last frequency = %g, want %g", f[M-1], 1/(2*dx)-df)
	}
}

func TestMeshgrid(t *testing.T) {
	xs := []float64{1, 2, 3}
	ys := []float64{10, 20}
	X, Y := Meshgrid(xs, ys)
	if len(X) != 2 || len(X[0]) != 3 {
		t.Fatalf("X shape = %dx%d, want 2x3", len(X), len(X[0]))
	}
	for i := range ys {
		for j := range xs {
			if X[i][j] != xs[j] {
				t.Errorf("X[%d][%d] = %g, want %g", i, j, X[i][j], xs[j])
			}
			if Y[i][j] != ys[i] {
				t.Errorf("Y[%d][%d] = %g, want %g", i, j, Y[i][j], ys[i])
			}
		}
	}
}
