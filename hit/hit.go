// Package hit defines the result shape returned by nearest-hit queries,
// replacing the out-parameter-plus-pointer-as-optional pattern of the
// original implementation with a plain (value, ok) pair.
package hit

import "github.com/waldhavran/kdtrace/geom"

// Nearest linearly scans triangles and returns the hit with the smallest
// positive R, or ok=false if ray hits none of them. Shared by both the
// simple and SAH tree leaf traversal so the two builders agree on what
// "nearest" means.
func Nearest(ray geom.Ray, triangles []geom.Triangle) (Hit, bool) {
	var best Hit
	found := false

	for _, tri := range triangles {
		r, s, t, ok := geom.RayTriangle(ray, tri)
		if !ok {
			continue
		}
		if !found || r < best.R {
			best = Hit{Triangle: tri, R: r, S: s, T: t}
			found = true
		}
	}

	return best, found
}

// Hit is a single ray/triangle intersection: the triangle that was hit,
// the parametric distance R along the ray (always > 0), and the
// barycentric coordinates (S, T) of the hit point on the triangle.
type Hit struct {
	Triangle geom.Triangle
	R        float32
	S, T     float32
}

// Closer reports whether h is a closer hit than o, for use when merging
// hit results from two subtrees.
func (h Hit) Closer(o Hit) bool {
	return h.R < o.R
}
