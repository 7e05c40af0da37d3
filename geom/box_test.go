package geom

import "testing"

func TestBoxUnion(t *testing.T) {
	a := Box{Min: XYZ(-1, 0, 0), Max: XYZ(1, 1, 1)}
	b := Box{Min: XYZ(0, -2, 0), Max: XYZ(2, 2, 2)}

	u := a.Union(b)
	if u.Min != (Vec3{-1, -2, 0}) || u.Max != (Vec3{2, 2, 2}) {
		t.Fatalf("Union: got min=%v max=%v", u.Min, u.Max)
	}
}

func TestBoxSurfaceArea(t *testing.T) {
	b := Box{Min: XYZ(0, 0, 0), Max: XYZ(1, 2, 3)}
	// 2*(1*2 + 2*3 + 3*1) = 2*(2+6+3) = 22
	if got := b.SurfaceArea(); got != 22 {
		t.Fatalf("SurfaceArea: got %v, want 22", got)
	}
}

func TestBoxIsPlanar(t *testing.T) {
	b := Box{Min: XYZ(0, 0, 5), Max: XYZ(1, 1, 5)}
	if !b.IsPlanar(Z) {
		t.Fatalf("expected box planar on Z")
	}
	if b.IsPlanar(X) {
		t.Fatalf("expected box not planar on X")
	}
}

func TestBoxLongestAxis(t *testing.T) {
	cases := []struct {
		box  Box
		want Axis
	}{
		{Box{XYZ(0, 0, 0), XYZ(10, 1, 1)}, X},
		{Box{XYZ(0, 0, 0), XYZ(1, 10, 1)}, Y},
		{Box{XYZ(0, 0, 0), XYZ(1, 1, 10)}, Z},
		{Box{XYZ(0, 0, 0), XYZ(1, 1, 1)}, X}, // ties: X over Y over Z
	}
	for _, c := range cases {
		if got := c.box.LongestAxis(); got != c.want {
			t.Fatalf("LongestAxis(%v): got %v, want %v", c.box, got, c.want)
		}
	}
}

func TestBoxSplit(t *testing.T) {
	b := Box{Min: XYZ(0, 0, 0), Max: XYZ(10, 10, 10)}
	left, right := b.Split(Plane{Axis: X, Coord: 4})

	if left.Min != (Vec3{0, 0, 0}) || left.Max != (Vec3{4, 10, 10}) {
		t.Fatalf("left split: got min=%v max=%v", left.Min, left.Max)
	}
	if right.Min != (Vec3{4, 0, 0}) || right.Max != (Vec3{10, 10, 10}) {
		t.Fatalf("right split: got min=%v max=%v", right.Min, right.Max)
	}
}

func TestBoxContains(t *testing.T) {
	b := Box{Min: XYZ(-1, -1, -1), Max: XYZ(1, 1, 1)}
	if !b.Contains(XYZ(0, 0, 0)) {
		t.Fatalf("expected origin inside box")
	}
	if b.Contains(XYZ(2, 0, 0)) {
		t.Fatalf("expected (2,0,0) outside box")
	}
}
