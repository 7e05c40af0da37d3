package geom

// Triangle is an immutable mesh triangle: three vertices, three per-vertex
// normals and two resolved material colours (ambient, diffuse). The edge
// vectors, face normal, midpoint and bounding box are derived once at
// construction time since triangles are read very frequently by the tree
// builders and the traversal hot path.
type Triangle struct {
	Vertices [3]Vec3 // vertices, in the order supplied to NewTriangle
	Normals  [3]Vec3 // per-vertex normals, expected unit length

	Ambient [3]float32
	Diffuse [3]float32

	// U, V are the edge vectors v1-v0 and v2-v0.
	U, V Vec3
	// Normal is the unit face normal normalize(U x V).
	Normal Vec3
	// Midpoint is the arithmetic mean of the three vertices.
	Midpoint Vec3
	// BBox is the triangle's axis-aligned bounding box.
	BBox Box
}

// NewTriangle constructs a Triangle and derives its edge vectors, face
// normal, midpoint and bounding box. It returns ErrDegenerateTriangle if
// the vertices are colinear (cross(u, v) has zero length, so no normal
// can be derived).
func NewTriangle(v [3]Vec3, n [3]Vec3, ambient, diffuse [3]float32) (Triangle, error) {
	u := v[1].Sub(v[0])
	w := v[2].Sub(v[0])
	cross := u.Cross(w)
	if cross.Len() < lengthEpsilon {
		return Triangle{}, ErrDegenerateTriangle
	}

	bbox := Box{Min: v[0], Max: v[0]}
	bbox.Min = MinVec3(bbox.Min, v[1])
	bbox.Min = MinVec3(bbox.Min, v[2])
	bbox.Max = MaxVec3(bbox.Max, v[1])
	bbox.Max = MaxVec3(bbox.Max, v[2])

	return Triangle{
		Vertices: v,
		Normals:  n,
		Ambient:  ambient,
		Diffuse:  diffuse,
		U:        u,
		V:        w,
		Normal:   cross.Normalize(),
		Midpoint: v[0].Add(v[1]).Add(v[2]).Mul(1.0 / 3.0),
		BBox:     bbox,
	}, nil
}

// InterpolateNormal returns the per-vertex normals interpolated with
// barycentric weights (1-s-t, s, t) and renormalised to unit length. When
// all three vertex normals are equal this returns that normal unchanged
// (the "trivial interpolation" property), independent of (s, t).
func (t Triangle) InterpolateNormal(s, tt float32) Vec3 {
	r := 1 - s - tt
	n := t.Normals[0].Mul(r).Add(t.Normals[1].Mul(s)).Add(t.Normals[2].Mul(tt))
	return n.Normalize()
}

// PointAt returns the point on the triangle at barycentric coordinates
// (s, t): Vertices[0] + s*U + t*V (the implicit third coordinate is 1-s-t).
func (t Triangle) PointAt(s, tt float32) Vec3 {
	return t.Vertices[0].Add(t.U.Mul(s)).Add(t.V.Mul(tt))
}
