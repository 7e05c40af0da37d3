package geom

import "errors"

var (
	// ErrDegenerateTriangle is returned by NewTriangle when the supplied
	// vertices are colinear (the edges' cross product has zero length,
	// so no face normal can be derived). Callers are expected to filter
	// such triangles upstream; the tree never encounters them.
	ErrDegenerateTriangle = errors.New("geom: degenerate triangle (colinear vertices)")
)
