package kdtree

import (
	"testing"

	"github.com/waldhavran/kdtrace/geom"
)

func mustTriangle(t *testing.T, a, b, c geom.Vec3) geom.Triangle {
	t.Helper()
	n := [3]geom.Vec3{geom.XYZ(0, 0, 1), geom.XYZ(0, 0, 1), geom.XYZ(0, 0, 1)}
	tri, err := geom.NewTriangle([3]geom.Vec3{a, b, c}, n, [3]float32{}, [3]float32{})
	if err != nil {
		t.Fatalf("unexpected error building triangle: %v", err)
	}
	return tri
}

func gridTriangles(t *testing.T, n int) []geom.Triangle {
	t.Helper()
	tris := make([]geom.Triangle, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x, y := float32(i)*2, float32(j)*2
			tris = append(tris, mustTriangle(t,
				geom.XYZ(x, y, 0),
				geom.XYZ(x+1, y, 0),
				geom.XYZ(x, y+1, 0),
			))
		}
	}
	return tris
}

func TestBuildMedianEmpty(t *testing.T) {
	tree := BuildMedian(nil, 4)
	if !tree.IsEmpty() {
		t.Fatalf("expected empty tree for empty input")
	}
	if tree.Height() != 0 {
		t.Fatalf("expected height 0 for empty tree, got %d", tree.Height())
	}
}

func collectLeafTriangles(t *testing.T, tree *Tree) []geom.Triangle {
	t.Helper()
	if tree.IsEmpty() {
		return nil
	}
	if tree.IsLeaf() {
		return tree.Triangles()
	}
	var out []geom.Triangle
	out = append(out, collectLeafTriangles(t, tree.Left())...)
	out = append(out, collectLeafTriangles(t, tree.Right())...)
	return out
}

func TestBuildMedianLeafCoverage(t *testing.T) {
	tris := gridTriangles(t, 5)
	tree := BuildMedian(tris, 2)

	got := collectLeafTriangles(t, tree)
	if len(got) != len(tris) {
		t.Fatalf("expected leaves to cover all %d triangles, got %d", len(tris), len(got))
	}
}

func TestBuildMedianDeterministic(t *testing.T) {
	tris := gridTriangles(t, 4)
	a := BuildMedian(tris, 2)
	b := BuildMedian(tris, 2)

	if a.Height() != b.Height() {
		t.Fatalf("expected deterministic build, got heights %d and %d", a.Height(), b.Height())
	}
}

func TestBuildMedianHeightBound(t *testing.T) {
	tris := gridTriangles(t, 6)
	tree := BuildMedian(tris, 2)
	if tree.Height() > len(tris) {
		t.Fatalf("tree height %d exceeds triangle count %d", tree.Height(), len(tris))
	}
}

func TestNearestPicksCloser(t *testing.T) {
	near := mustTriangle(t, geom.XYZ(-1, -1, 1), geom.XYZ(1, -1, 1), geom.XYZ(0, 1, 1))
	far := mustTriangle(t, geom.XYZ(-1, -1, 2), geom.XYZ(1, -1, 2), geom.XYZ(0, 1, 2))

	tree := BuildMedian([]geom.Triangle{near, far}, 4)

	ray := geom.Ray{Origin: geom.XYZ(0, -0.3, 0), Direction: geom.XYZ(0, 0, 1)}
	h, ok := tree.Nearest(ray)
	if !ok {
		t.Fatalf("expected a hit")
	}
	if !approxEq32(h.R, 1, 1e-4) {
		t.Fatalf("expected nearest hit at r=1, got %v", h.R)
	}
}

func TestNearestMiss(t *testing.T) {
	tris := gridTriangles(t, 3)
	tree := BuildMedian(tris, 2)

	ray := geom.Ray{Origin: geom.XYZ(100, 100, -10), Direction: geom.XYZ(0, 0, 1)}
	if _, ok := tree.Nearest(ray); ok {
		t.Fatalf("expected no hit far from all triangles")
	}
}

func approxEq32(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
