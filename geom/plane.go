package geom

// Plane denotes the affine hyperplane x[Axis] == Coord.
type Plane struct {
	Axis  Axis
	Coord float32
}
