package sah

import (
	"math"

	"github.com/waldhavran/kdtrace/clip"
	"github.com/waldhavran/kdtrace/geom"
)

// findPlane sweeps all three axes and returns the globally cost-minimal
// split plane for box given triangles, along with the side planar
// triangles on that plane should be routed to. ok is false when no
// candidate yields a cost below math.MaxFloat32: no triangle overlaps box
// (no axis produces any event), or box has zero surface area so every
// cost is NaN.
func findPlane(triangles []geom.Triangle, box geom.Box) (bestCost float32, bestPlane geom.Plane, bestSide Side, ok bool) {
	bestCost = float32(math.MaxFloat32)

	for axis := geom.X; axis <= geom.Z; axis++ {
		events := buildEvents(triangles, axis, box, clip.TriangleBox)
		if len(events) == 0 {
			continue
		}

		nl, np, nr := 0, 0, len(triangles)

		for i := 0; i < len(events); {
			p := events[i].coord

			nEnding, nPlanar, nStarting := 0, 0, 0
			for i < len(events) && coordEqual(events[i].coord, p) && events[i].kind == eventEnding {
				nEnding++
				i++
			}
			for i < len(events) && coordEqual(events[i].coord, p) && events[i].kind == eventPlanar {
				nPlanar++
				i++
			}
			for i < len(events) && coordEqual(events[i].coord, p) && events[i].kind == eventStarting {
				nStarting++
				i++
			}

			np = nPlanar
			nr -= nPlanar + nEnding

			plane := geom.Plane{Axis: axis, Coord: p}
			candidateCost, side := surfaceAreaHeuristic(plane, box, nl, nr, np)

			if candidateCost < bestCost {
				bestCost = candidateCost
				bestPlane = plane
				bestSide = side
				ok = true
			}

			nl += nStarting + nPlanar
			np = 0
		}
	}

	return bestCost, bestPlane, bestSide, ok
}
