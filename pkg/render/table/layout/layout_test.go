package layout

import (
	"testing"

	"github.com/matzehuels/ptable/pkg/element"
)

func TestPositionsDistinct(t *testing.T) {
	elements := element.Default().All()
	pos := Positions(elements, 1, 1)

	if len(pos) != element.Count {
		t.Fatalf("Positions() returned %d cells, want %d", len(pos), element.Count)
	}

	seen := make(map[Point]int)
	for z, p := range pos {
		if other, dup := seen[p]; dup {
			t.Errorf("Z=%d and Z=%d share position %v", z, other, p)
		}
		seen[p] = z
	}
}

func TestPositionsScale(t *testing.T) {
	elements := element.Default().All()

	tests := []struct {
		name         string
		cellW, cellH float64
		z            int
		want         Point
	}{
		{"hydrogen unit", 1, 1, 1, Point{1, -1}},
		{"iron unit", 1, 1, 26, Point{8, -4}},
		{"iron scaled", 2, 0.5, 26, Point{16, -2}},
		{"lanthanum", 1, 1, 57, Point{3, -8}},
		{"lawrencium", 1, 1, 103, Point{17, -9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Positions(elements, tt.cellW, tt.cellH)[tt.z]
			if got != tt.want {
				t.Errorf("Positions()[%d] = %v, want %v", tt.z, got, tt.want)
			}
		})
	}
}

func TestTextOffset(t *testing.T) {
	tests := []struct {
		name    string
		rounded bool
		want    Point
	}{
		{"plain", false, Point{1, 0.5}},
		{"rounded", true, Point{0.8, 0.4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TextOffset(2, 1, tt.rounded)
			if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) {
				t.Errorf("TextOffset() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	pos := Positions(element.Default().All(), 1, 1)
	got := Bounds(pos, 1, 1)
	want := Rect{Min: Point{1, -9}, Max: Point{19, 0}}
	if got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	if got.Width() != 18 || got.Height() != 9 {
		t.Errorf("size = %vx%v, want 18x9", got.Width(), got.Height())
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{Min: Point{0, 0}, Max: Point{1, 1}}
	b := Rect{Min: Point{-1, 0.5}, Max: Point{0.5, 3}}

	if got := (Rect{}).Union(a); got != a {
		t.Errorf("empty.Union(a) = %v, want %v", got, a)
	}
	want := Rect{Min: Point{-1, 0}, Max: Point{1, 3}}
	if got := a.Union(b); got != want {
		t.Errorf("a.Union(b) = %v, want %v", got, want)
	}
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
