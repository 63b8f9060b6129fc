package core

import "testing"

func TestBoxContainsStrict(t *testing.T) {
	b := Box{X: 10, Y: 10, W: 20, H: 15}

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 15, 15, true},
		{"left edge (exclusive)", 10, 15, false},
		{"right edge (exclusive)", 30, 15, false},
		{"top edge (exclusive)", 15, 10, false},
		{"bottom edge (exclusive)", 15, 25, false},
		{"just inside corner", 10.01, 10.01, true},
		{"outside left", 5, 15, false},
		{"outside below", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := b.ContainsStrict(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("ContainsStrict(%v, %v) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestBoxCells(t *testing.T) {
	tests := []struct {
		name     string
		box      Box
		expected Rect
	}{
		{"aligned", Box{X: 20, Y: 40, W: 30, H: 20}, NewRect(2, 2, 3, 1)},
		{"partial cells round out", Box{X: 25, Y: 50, W: 10, H: 10}, NewRect(2, 2, 2, 1)},
		{"tiny box keeps one cell", Box{X: 0, Y: 0, W: 1, H: 1}, NewRect(0, 0, 1, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.box.Cells(); got != tc.expected {
				t.Errorf("Cells() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{3.0, 0.0, -1.0, 0.0}, // inverted range resolves to min
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
}

func TestMetricsForScreen(t *testing.T) {
	m := MetricsForScreen(80, 24, 800)

	if m.Width != 800 || m.Height != 480 {
		t.Errorf("MetricsForScreen(80, 24) = %vx%v, expected 800x480", m.Width, m.Height)
	}
	if m.Scale != 1 {
		t.Errorf("Scale = %v, expected 1", m.Scale)
	}

	half := MetricsForScreen(40, 12, 800)
	if half.Scale != 0.5 {
		t.Errorf("Scale = %v, expected 0.5", half.Scale)
	}
}

func TestNewMetricsDegenerate(t *testing.T) {
	m := NewMetrics(0, -5, 800)
	if m.Width < 1 || m.Height < 1 {
		t.Errorf("degenerate metrics should clamp to 1px, got %vx%v", m.Width, m.Height)
	}
	if m.Scale <= 0 {
		t.Errorf("Scale should stay positive, got %v", m.Scale)
	}
}
