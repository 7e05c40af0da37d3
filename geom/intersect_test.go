package geom

import "testing"

func TestSegmentPlaneMidpoint(t *testing.T) {
	tVal, ok := SegmentPlane(XYZ(0, 0, 0), XYZ(2, 0, 0), XYZ(1, 0, 0), XYZ(1, 0, 0))
	if !ok {
		t.Fatalf("expected intersection")
	}
	if !approxEq(tVal, 0.5, 1e-5) {
		t.Fatalf("expected t=0.5, got %v", tVal)
	}
}

func TestSegmentPlaneParallel(t *testing.T) {
	_, ok := SegmentPlane(XYZ(0, 0, 0), XYZ(2, 0, 0), XYZ(0, 1, 0), XYZ(0, 1, 0))
	if ok {
		t.Fatalf("expected no intersection for a segment parallel to the plane")
	}
}

func TestRayBoxIntersection(t *testing.T) {
	box := Box{Min: XYZ(-1, -1, -1), Max: XYZ(1, 1, 1)}

	hits := []Ray{
		{Origin: XYZ(0, 0, 0), Direction: XYZ(1, 1, 1)},
		{Origin: XYZ(10, 0, 0), Direction: XYZ(-1, 0, 0)},
		{Origin: XYZ(0, 10, 0), Direction: XYZ(0, -1, 0)},
		{Origin: XYZ(0, 0, 10), Direction: XYZ(0, 0, -1)},
	}
	for i, r := range hits {
		if !RayBox(r, box) {
			t.Fatalf("case %d: expected hit for ray %+v against box %+v", i, r, box)
		}
	}

	misses := []struct {
		ray Ray
		box Box
	}{
		{Ray{Origin: XYZ(0, 0, 0), Direction: XYZ(1, 0, 0)}, Box{XYZ(-1, -1, 1), XYZ(1, 1, 1)}},
		{Ray{Origin: XYZ(-2, -2, -2), Direction: XYZ(-1, 0, 0)}, Box{XYZ(-1, -1, 1), XYZ(1, 1, 1)}},
		{Ray{Origin: XYZ(-1, 0, 0), Direction: XYZ(-1, 0, 0)}, Box{XYZ(0, 0, 0), XYZ(1, 1, 1)}},
	}
	for i, c := range misses {
		if RayBox(c.ray, c.box) {
			t.Fatalf("case %d: expected miss for ray %+v against box %+v", i, c.ray, c.box)
		}
	}
}

func TestPlaneBox(t *testing.T) {
	box := Box{Min: XYZ(-10, -10, -10), Max: XYZ(10, 10, 10)}

	if !PlaneBox(Plane{Axis: X, Coord: 1}, box) {
		t.Fatalf("expected plane x=1 to intersect box")
	}
	if PlaneBox(Plane{Axis: X, Coord: 20}, box) {
		t.Fatalf("expected plane x=20 not to intersect box")
	}
}

func TestRayTriangleHit(t *testing.T) {
	tri := testTriangle(XYZ(-1, -1, 0), XYZ(1, -1, 0), XYZ(0, 1, 0))
	ray := Ray{Origin: XYZ(0, 0, -5), Direction: XYZ(0, 0, 1)}

	r, s, tt, hit := RayTriangle(ray, tri)
	if !hit {
		t.Fatalf("expected hit")
	}
	if !approxEq(r, 5, 1e-4) {
		t.Fatalf("expected r=5, got %v", r)
	}
	if s < 0 || tt < 0 || s+tt > 1 {
		t.Fatalf("invalid barycentric coords s=%v t=%v", s, tt)
	}
}

func TestRayTriangleMiss(t *testing.T) {
	tri := testTriangle(XYZ(-1, -1, 0), XYZ(1, -1, 0), XYZ(0, 1, 0))
	ray := Ray{Origin: XYZ(5, 5, -5), Direction: XYZ(0, 0, 1)}

	_, _, _, hit := RayTriangle(ray, tri)
	if hit {
		t.Fatalf("expected miss")
	}
}

func TestTriangleBoxSimple(t *testing.T) {
	box := Box{Min: XYZ(-10, -10, -10), Max: XYZ(10, 10, 10)}

	inside := testTriangle(XYZ(0, 0, 0), XYZ(1, 0, 0), XYZ(1, 1, 0))
	if !TriangleBox(inside, box) {
		t.Fatalf("expected triangle inside box to overlap")
	}

	onFace := testTriangle(XYZ(-10, -10, 10), XYZ(10, -10, 10), XYZ(10, 10, 10))
	if !TriangleBox(onFace, box) {
		t.Fatalf("expected triangle on box face to overlap")
	}

	separated := testTriangle(XYZ(-20, -20, 0), XYZ(-15, -20, 0), XYZ(-15, -15, 0))
	if TriangleBox(separated, box) {
		t.Fatalf("expected separated triangle not to overlap")
	}
}
