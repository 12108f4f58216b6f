package geometry

import (
	"math"
	"testing"
)

// floatEquals is a helper for testing scalar float values with epsilon.
func floatEquals(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

func TestNewVector(t *testing.T) {
	v := NewVector(1, 2)
	if v.X != 1 || v.Y != 2 {
		t.Errorf("NewVector(1, 2) = %v; want (1, 2)", v)
	}
}

func TestNewVectorPolar(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		theta  float64
		want   Vector2D
	}{
		{"Zero radius", 0, 0, Vector2D{0, 0}},
		{"Zero angle (X-axis)", 10, 0, Vector2D{10, 0}},
		{"90 degrees (Y-axis)", 10, math.Pi / 2, Vector2D{0, 10}},
		{"180 degrees (Negative X)", 10, math.Pi, Vector2D{-10, 0}},
		{"45 degrees", math.Sqrt(2), math.Pi / 4, Vector2D{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewVectorPolar(tt.radius, tt.theta)
			if !got.Eq(tt.want) {
				t.Errorf("NewVectorPolar(%v, %v) = %v; want %v", tt.radius, tt.theta, got, tt.want)
			}
		})
	}
}

func TestVector_String(t *testing.T) {
	v := Vector2D{1.234, 5.678}
	want := "(1.23, 5.68)"
	if got := v.String(); got != want {
		t.Errorf("Vector2D.String() = %q; want %q", got, want)
	}
}

func TestVector_Arithmetic(t *testing.T) {
	v1 := Vector2D{1, 2}
	v2 := Vector2D{3, 4}

	t.Run("Add", func(t *testing.T) {
		want := Vector2D{4, 6}
		if got := v1.Add(v2); !got.Eq(want) {
			t.Errorf("%v.Add(%v) = %v; want %v", v1, v2, got, want)
		}
	})

	t.Run("Sub", func(t *testing.T) {
		want := Vector2D{-2, -2}
		if got := v1.Sub(v2); !got.Eq(want) {
			t.Errorf("%v.Sub(%v) = %v; want %v", v1, v2, got, want)
		}
	})

	t.Run("Mul", func(t *testing.T) {
		want := Vector2D{2, 4}
		if got := v1.Mul(2); !got.Eq(want) {
			t.Errorf("%v.Mul(2) = %v; want %v", v1, got, want)
		}
	})

	t.Run("Dot", func(t *testing.T) {
		if got := v1.Dot(v2); got != 11 {
			t.Errorf("%v.Dot(%v) = %v; want 11", v1, v2, got)
		}
	})
}

func TestMean(t *testing.T) {
	t.Run("Average", func(t *testing.T) {
		got, ok := Mean(Vector2D{6, -3}, 3)
		if !ok {
			t.Fatal("Mean(.., 3) reported no value")
		}
		if !got.Eq(Vector2D{2, -1}) {
			t.Errorf("Mean = %v; want (2, -1)", got)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		got, ok := Mean(Vector2D{6, -3}, 0)
		if ok {
			t.Errorf("Mean(.., 0) = %v, true; want no value", got)
		}
	})
}

func TestVector_Magnitude(t *testing.T) {
	v := Vector2D{3, 4} // 3-4-5 triangle

	t.Run("Len", func(t *testing.T) {
		if got := v.Len(); got != 5 {
			t.Errorf("Len = %v; want 5", got)
		}
	})

	t.Run("LenSqr", func(t *testing.T) {
		if got := v.LenSqr(); got != 25 {
			t.Errorf("LenSqr = %v; want 25", got)
		}
	})

	t.Run("Normalize", func(t *testing.T) {
		got := v.Normalize()
		want := Vector2D{0.6, 0.8}
		if !got.Eq(want) {
			t.Errorf("Normalize = %v; want %v", got, want)
		}
		if !floatEquals(got.Len(), 1.0) {
			t.Errorf("Normalize length = %v; want 1", got.Len())
		}
	})

	t.Run("NormalizeZero", func(t *testing.T) {
		got := Zero.Normalize()
		if !got.Eq(Zero) {
			t.Errorf("Normalize(0,0) = %v; want (0,0)", got)
		}
	})

	t.Run("UnitZero", func(t *testing.T) {
		got, ok := Zero.Unit()
		if ok {
			t.Errorf("Unit(0,0) = %v, true; want no direction", got)
		}
		if !got.IsFinite() {
			t.Errorf("Unit(0,0) returned non finite %v", got)
		}
	})

	t.Run("IsZero", func(t *testing.T) {
		if !(Vector2D{Epsilon / 10, 0}).IsZero() {
			t.Error("tiny vector should be zero")
		}
		if v.IsZero() {
			t.Error("(3,4) should not be zero")
		}
	})
}

func TestVector_ClampLen(t *testing.T) {
	tests := []struct {
		name    string
		v       Vector2D
		max     float64
		wantLen float64
	}{
		{"Longer is rescaled", Vector2D{3, 4}, 2, 2},
		{"Shorter is untouched", Vector2D{0.3, 0.4}, 2, 0.5},
		{"Exactly max", Vector2D{0, 2}, 2, 2},
		{"Zero stays zero", Vector2D{0, 0}, 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.ClampLen(tt.max)
			if !floatEquals(got.Len(), tt.wantLen) {
				t.Errorf("%v.ClampLen(%v) len = %v; want %v", tt.v, tt.max, got.Len(), tt.wantLen)
			}
			// direction preserved
			if tt.wantLen > 0 && !got.Normalize().Eq(tt.v.Normalize()) {
				t.Errorf("%v.ClampLen(%v) = %v changed direction", tt.v, tt.max, got)
			}
		})
	}
}

func TestVector_Distance(t *testing.T) {
	v1 := Vector2D{1, 1}
	v2 := Vector2D{4, 5} // dx=3, dy=4, dist=5

	if got := v1.DistanceTo(v2); got != 5 {
		t.Errorf("DistanceTo = %v; want 5", got)
	}

	if got := v1.DistanceSquaredTo(v2); got != 25 {
		t.Errorf("DistanceSquaredTo = %v; want 25", got)
	}
}

func TestVector_Angles(t *testing.T) {
	tests := []struct {
		v       Vector2D
		want    float64
		wantDeg float64
	}{
		{Vector2D{1, 0}, 0, 0},
		{Vector2D{0, 1}, math.Pi / 2, 90},
		{Vector2D{-1, 0}, math.Pi, 180}, // math.Atan2 returns Pi for (-1, 0)
		{Vector2D{0, -1}, -math.Pi / 2, -90},
		{Vector2D{1, 1}, math.Pi / 4, 45},
	}
	for _, tt := range tests {
		if got := tt.v.Angle(); !floatEquals(got, tt.want) {
			t.Errorf("%v.Angle() = %v; want %v", tt.v, got, tt.want)
		}
		if got := tt.v.HeadingDegrees(); !floatEquals(got, tt.wantDeg) {
			t.Errorf("%v.HeadingDegrees() = %v; want %v", tt.v, got, tt.wantDeg)
		}
	}
}

func TestVector_Lerp(t *testing.T) {
	v1 := Vector2D{0, 0}
	v2 := Vector2D{10, 10}
	if got := v1.Lerp(v2, 0.5); !got.Eq(Vector2D{5, 5}) {
		t.Errorf("Lerp(0.5) = %v; want (5, 5)", got)
	}
	if got := v1.Lerp(v2, 0); !got.Eq(v1) {
		t.Errorf("Lerp(0) = %v; want %v", got, v1)
	}
	if got := v1.Lerp(v2, 1); !got.Eq(v2) {
		t.Errorf("Lerp(1) = %v; want %v", got, v2)
	}
}

func TestVector_Wrap(t *testing.T) {
	const w, h = 100.0, 50.0
	tests := []struct {
		name string
		in   Vector2D
		want Vector2D
	}{
		{"Inside", Vector2D{10, 20}, Vector2D{10, 20}},
		{"Past right edge", Vector2D{100.5, 20}, Vector2D{0.5, 20}},
		{"Past left edge", Vector2D{-0.5, 20}, Vector2D{99.5, 20}},
		{"Past bottom edge", Vector2D{10, 51}, Vector2D{10, 1}},
		{"Past top edge", Vector2D{10, -1}, Vector2D{10, 49}},
		{"Exactly on edge", Vector2D{100, 50}, Vector2D{0, 0}},
		{"Several widths away", Vector2D{-250, 175}, Vector2D{50, 25}},
		{"Negative tiny", Vector2D{-1e-17, 0}, Vector2D{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Wrap(w, h)
			if !got.Eq(tt.want) {
				t.Errorf("%v.Wrap(%v, %v) = %v; want %v", tt.in, w, h, got, tt.want)
			}
			if got.X < 0 || got.X >= w || got.Y < 0 || got.Y >= h {
				t.Errorf("%v.Wrap(%v, %v) = %v is out of bounds", tt.in, w, h, got)
			}
		})
	}
}

func TestVector_Eq(t *testing.T) {
	v := Vector2D{1, 2}

	// Exact match
	if !v.Eq(Vector2D{1, 2}) {
		t.Error("Eq exact match failed")
	}

	// Epsilon match
	vClose := Vector2D{1 + Epsilon/2, 2 - Epsilon/2}
	if !v.Eq(vClose) {
		t.Error("Eq epsilon match failed")
	}

	// No match
	vDiff := Vector2D{1.1, 2}
	if v.Eq(vDiff) {
		t.Error("Eq mismatch failed")
	}
}

func TestVector_IsFinite(t *testing.T) {
	if !(Vector2D{1, 2}).IsFinite() {
		t.Error("(1,2) should be finite")
	}
	if (Vector2D{math.NaN(), 0}).IsFinite() {
		t.Error("NaN component should not be finite")
	}
	if (Vector2D{0, math.Inf(-1)}).IsFinite() {
		t.Error("Inf component should not be finite")
	}
}
