package geom

import "math"

// Box is an axis-aligned bounding box satisfying Min[a] <= Max[a] for
// every axis.
type Box struct {
	Min, Max Vec3
}

// EmptyBox returns a box with inverted extents suitable as the identity
// element for repeated Union calls.
func EmptyBox() Box {
	inf := float32(math.MaxFloat32)
	return Box{
		Min: Vec3{inf, inf, inf},
		Max: Vec3{-inf, -inf, -inf},
	}
}

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	return Box{
		Min: MinVec3(b.Min, o.Min),
		Max: MaxVec3(b.Max, o.Max),
	}
}

// Size returns the per-axis extents (Max - Min).
func (b Box) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box.
func (b Box) Center() Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// SurfaceArea returns 2*(dx*dy + dy*dz + dz*dx) where d_ is the box's
// extent along that axis. A degenerate (planar or lower) box has zero or
// positive surface area depending on how many axes collapse.
func (b Box) SurfaceArea() float32 {
	d := b.Size()
	return 2 * (d[0]*d[1] + d[1]*d[2] + d[2]*d[0])
}

// IsPlanar reports whether the box has zero extent along axis a. This is
// an exact floating-point comparison by design: the kd-tree's SAH event
// classification relies on clipped boxes being exactly planar when a
// triangle lies flush against a box face.
func (b Box) IsPlanar(a Axis) bool {
	return b.Min[a] == b.Max[a]
}

// LongestAxis returns the axis with the largest extent. Ties are broken
// X over Y over Z.
func (b Box) LongestAxis() Axis {
	d := b.Size()
	axis := X
	longest := d[X]
	if d[Y] > longest {
		axis = Y
		longest = d[Y]
	}
	if d[Z] > longest {
		axis = Z
	}
	return axis
}

// Split divides b at the given plane, which must lie within b along the
// plane's axis. It returns the left (towards Min) and right (towards Max)
// sub-boxes.
func (b Box) Split(p Plane) (left, right Box) {
	lmax := b.Max
	lmax[p.Axis] = p.Coord
	rmin := b.Min
	rmin[p.Axis] = p.Coord
	return Box{Min: b.Min, Max: lmax}, Box{Min: rmin, Max: b.Max}
}

// Contains reports whether v lies within the closed box.
func (b Box) Contains(v Vec3) bool {
	for a := X; a <= Z; a++ {
		if v[a] < b.Min[a] || v[a] > b.Max[a] {
			return false
		}
	}
	return true
}
