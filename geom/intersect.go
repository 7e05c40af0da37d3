package geom

// RayBox reports whether ray hits box, using the slab method: for each
// axis the ray's parametric interval [tnear, tfar] is intersected with
// that axis's slab. A zero direction component treats the slab as
// +/-infinity when the origin lies inside it on that axis, empty
// otherwise. The box is hit iff the final tnear <= tfar and tfar >= 0.
func RayBox(ray Ray, box Box) bool {
	tnear := float32(negInf)
	tfar := float32(posInf)

	for a := X; a <= Z; a++ {
		o := ray.Origin[a]
		d := ray.Direction[a]

		if d == 0 {
			if o < box.Min[a] || o > box.Max[a] {
				return false
			}
			continue
		}

		t1 := (box.Min[a] - o) / d
		t2 := (box.Max[a] - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tnear {
			tnear = t1
		}
		if t2 < tfar {
			tfar = t2
		}
		if tnear > tfar {
			return false
		}
	}

	return tfar >= 0
}

const (
	posInf = float32(3.402823466e+38)
	negInf = -posInf
)

// RayTriangleEpsilon bounds how close to parallel a ray/triangle pair can
// be before it is treated as a miss.
const RayTriangleEpsilon = 1e-7

// RayTriangle implements the Moller-Trumbore ray/triangle intersection
// test. It returns the parametric distance r along the ray (valid only
// when hit is true, and always > 0) and the barycentric coordinates
// (s, t) of the hit point, satisfying s >= 0, t >= 0, s+t <= 1. Parallel
// rays (including the degenerate case of a ray lying in the triangle's
// plane) report no hit.
func RayTriangle(ray Ray, tri Triangle) (r, s, t float32, hit bool) {
	pvec := ray.Direction.Cross(tri.V)
	det := tri.U.Dot(pvec)
	if det > -RayTriangleEpsilon && det < RayTriangleEpsilon {
		return 0, 0, 0, false
	}
	invDet := 1.0 / det

	tvec := ray.Origin.Sub(tri.Vertices[0])
	s = tvec.Dot(pvec) * invDet
	if s < 0 || s > 1 {
		return 0, 0, 0, false
	}

	qvec := tvec.Cross(tri.U)
	t = ray.Direction.Dot(qvec) * invDet
	if t < 0 || s+t > 1 {
		return 0, 0, 0, false
	}

	r = tri.V.Dot(qvec) * invDet
	if r <= 0 {
		return 0, 0, 0, false
	}

	return r, s, t, true
}

// SegmentPlane intersects the segment [p0, p1] with the plane through
// point planeOrigin with the given unit normal, i.e. the set of points x
// satisfying dot(x-planeOrigin, normal) == 0. It returns the parametric
// position t in [0, 1] along the segment, and whether the segment
// actually crosses the plane (a segment parallel to the plane reports no
// intersection, including one lying in the plane).
func SegmentPlane(p0, p1, planeOrigin, normal Vec3) (t float32, ok bool) {
	dir := p1.Sub(p0)
	denom := normal.Dot(dir)
	if denom > -RayTriangleEpsilon && denom < RayTriangleEpsilon {
		return 0, false
	}
	t = normal.Dot(planeOrigin.Sub(p0)) / denom
	if t < 0 || t > 1 {
		return 0, false
	}
	return t, true
}

// PlaneBox reports whether the affine plane x[axis] == coord passes
// through box (i.e. coord lies within the box's extent on that axis).
func PlaneBox(p Plane, box Box) bool {
	return p.Coord >= box.Min[p.Axis] && p.Coord <= box.Max[p.Axis]
}

// TriangleBox reports whether triangle and box overlap, using the
// separating axis theorem: the triangle's own face normal, the three box
// face normals, and the nine cross products of triangle edges with box
// axes.
func TriangleBox(tri Triangle, box Box) bool {
	for a := X; a <= Z; a++ {
		if tri.BBox.Max[a] < box.Min[a] || tri.BBox.Min[a] > box.Max[a] {
			return false
		}
	}

	center := box.Center()
	half := box.Size().Mul(0.5)

	v0 := tri.Vertices[0].Sub(center)
	v1 := tri.Vertices[1].Sub(center)
	v2 := tri.Vertices[2].Sub(center)

	e0 := v1.Sub(v0)
	e1 := v2.Sub(v1)
	e2 := v0.Sub(v2)

	if !testSeparatingAxis(tri.Normal, v0, v1, v2, half) {
		return false
	}

	boxAxes := [3]Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for _, axis := range boxAxes {
		if !testSeparatingAxis(axis, v0, v1, v2, half) {
			return false
		}
	}

	edges := [3]Vec3{e0, e1, e2}
	for _, boxAxis := range boxAxes {
		for _, edge := range edges {
			axis := boxAxis.Cross(edge)
			if axis.Len() < lengthEpsilon {
				continue
			}
			if !testSeparatingAxis(axis, v0, v1, v2, half) {
				return false
			}
		}
	}

	return true
}

func testSeparatingAxis(axis Vec3, v0, v1, v2, half Vec3) bool {
	p0 := v0.Dot(axis)
	p1 := v1.Dot(axis)
	p2 := v2.Dot(axis)

	triMin := fmin(fmin(p0, p1), p2)
	triMax := fmax(fmax(p0, p1), p2)

	r := abs32(half[0]*axis[0]) + abs32(half[1]*axis[1]) + abs32(half[2]*axis[2])

	return !(triMax < -r || triMin > r)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
