// Package sah implements the Surface Area Heuristic kd-tree builder
// described by Wald & Havran, "On Building Fast kd-Trees for Ray
// Tracing, and on Doing That in O(N log N)": an event-sweep over each
// axis independently selects the globally cost-minimal split plane.
package sah

import "github.com/waldhavran/kdtrace/geom"

// Cost model constants, Wald & Havran §5.2, Table 1.
const (
	costTraversal       = 15.0
	costIntersect       = 20.0
	emptySideBonus      = 0.8
	fullOccupancyLambda = 1.0
)

// lambda returns the empty-side bonus: splits that leave one side empty
// are rewarded since an empty child prunes a ray without testing any
// triangle.
func lambda(nl, nr int) float32 {
	if nl == 0 || nr == 0 {
		return emptySideBonus
	}
	return fullOccupancyLambda
}

// cost evaluates the SAH cost of a candidate split: al, ar are the
// left/right child surface-area ratios (SA(child)/SA(parent)); nl, nr
// are the triangle counts routed to each child.
func cost(al, ar float32, nl, nr int) float32 {
	return lambda(nl, nr) * (costTraversal + costIntersect*(al*float32(nl)+ar*float32(nr)))
}

// Side tags which child a set of planar triangles is routed to.
type Side uint8

const (
	Left Side = iota
	Right
)

// surfaceAreaHeuristic evaluates splitting box at plane, given the
// triangle counts to its left (nl), right (nr) and lying exactly on it
// (np). It returns both candidate costs (planars routed left or right)
// and picks the cheaper, tagging which side that was.
func surfaceAreaHeuristic(plane geom.Plane, box geom.Box, nl, nr, np int) (float32, Side) {
	lbox, rbox := box.Split(plane)
	area := box.SurfaceArea()
	al := lbox.SurfaceArea() / area
	ar := rbox.SurfaceArea() / area

	leftCost := cost(al, ar, nl+np, nr)
	rightCost := cost(al, ar, nl, nr+np)

	if leftCost < rightCost {
		return leftCost, Left
	}
	return rightCost, Right
}
