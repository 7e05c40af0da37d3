// Package clip computes the axis-aligned bounding box of the polygon
// obtained by clipping a triangle against a box, via Sutherland-Hodgman
// clipping against the box's six half-spaces.
package clip

import "github.com/waldhavran/kdtrace/geom"

// halfSpace is one of a box's six bounding planes, oriented so that
// "inside" points satisfy side*v[axis] <= side*coord.
type halfSpace struct {
	axis  geom.Axis
	coord float32
	side  float32 // +1 for a "max" plane, -1 for a "min" plane
}

func boxHalfSpaces(box geom.Box) [6]halfSpace {
	return [6]halfSpace{
		{geom.X, box.Min[geom.X], -1},
		{geom.X, box.Max[geom.X], 1},
		{geom.Y, box.Min[geom.Y], -1},
		{geom.Y, box.Max[geom.Y], 1},
		{geom.Z, box.Min[geom.Z], -1},
		{geom.Z, box.Max[geom.Z], 1},
	}
}

func (h halfSpace) inside(v geom.Vec3) bool {
	return h.side*v[h.axis] <= h.side*h.coord
}

// intersect returns the point where segment a->b crosses h's boundary
// plane.
func (h halfSpace) intersect(a, b geom.Vec3) geom.Vec3 {
	da := h.side*a[h.axis] - h.side*h.coord
	db := h.side*b[h.axis] - h.side*h.coord
	t := da / (da - db)
	return a.Add(b.Sub(a).Mul(t))
}

// TriangleBox returns the axis-aligned bounding box of the polygon
// T ∩ box, where T is the triangle's surface. The returned box is
// contained in box and contains the true intersection; if the clipped
// region collapses to a single edge or point the returned box is planar
// on at least one axis (see geom.Box.IsPlanar). If the triangle does not
// intersect box at all, ok is false and the returned box's value is
// unspecified.
func TriangleBox(tri geom.Triangle, box geom.Box) (clipped geom.Box, ok bool) {
	polygon := []geom.Vec3{tri.Vertices[0], tri.Vertices[1], tri.Vertices[2]}

	for _, h := range boxHalfSpaces(box) {
		if len(polygon) == 0 {
			break
		}
		polygon = clipPolygon(polygon, h)
	}

	if len(polygon) == 0 {
		return geom.Box{}, false
	}

	out := geom.Box{Min: polygon[0], Max: polygon[0]}
	for _, v := range polygon[1:] {
		out.Min = geom.MinVec3(out.Min, v)
		out.Max = geom.MaxVec3(out.Max, v)
	}

	// Clamp against the original box: floating-point round-trip through
	// the half-space intersections can push a vertex a hair outside.
	out.Min = geom.MaxVec3(out.Min, box.Min)
	out.Max = geom.MinVec3(out.Max, box.Max)

	return out, true
}

func clipPolygon(polygon []geom.Vec3, h halfSpace) []geom.Vec3 {
	out := make([]geom.Vec3, 0, len(polygon)+1)
	n := len(polygon)
	for i := 0; i < n; i++ {
		curr := polygon[i]
		prev := polygon[(i-1+n)%n]

		currIn := h.inside(curr)
		prevIn := h.inside(prev)

		if currIn != prevIn {
			out = append(out, h.intersect(prev, curr))
		}
		if currIn {
			out = append(out, curr)
		}
	}
	return out
}
