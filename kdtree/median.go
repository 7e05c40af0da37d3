package kdtree

import (
	"time"

	"github.com/waldhavran/kdtrace/geom"
	"github.com/waldhavran/kdtrace/internal/log"
)

// maxBisections bounds how many times the spatial-median splitter will
// bisect the search range while looking for a split point that produces
// two non-empty partitions. It exists to guarantee termination when all
// triangle midpoints coincide along the chosen axis (spec.md §4.3, §9).
const maxBisections = 64

// minBisectionRange is the search-range width below which the splitter
// gives up and forces a leaf rather than continuing to bisect.
const minBisectionRange = 1e-6

var medianLogger = log.New("kdtree")

// BuildMedian builds a tree from triangles using the spatial-median
// splitter: the longest axis of each node's bounding box is bisected at
// its midpoint; while one side comes up empty, the search range shrinks
// to the half holding every triangle and is bisected again, until both
// sides are non-empty or the search range
// collapses (in which case the node becomes a leaf). leafCapacity is the
// maximum number of triangles a leaf may hold.
//
// An empty triangles slice produces the empty tree; this is not an
// error (spec.md §7).
func BuildMedian(triangles []geom.Triangle, leafCapacity int) *Tree {
	if len(triangles) == 0 {
		return &Tree{}
	}

	start := time.Now()
	root := buildMedianNode(triangles, leafCapacity)
	medianLogger.Debugf("median build: %d triangles, height %d, %s",
		len(triangles), (&Tree{root: root}).Height(), time.Since(start))

	return &Tree{root: root}
}

func buildMedianNode(triangles []geom.Triangle, leafCapacity int) *Node {
	box := geom.EmptyBox()
	for _, tri := range triangles {
		box = box.Union(tri.BBox)
	}

	axis := box.LongestAxis()

	if len(triangles) <= leafCapacity {
		return &Node{BBox: box, SplitAxis: axis, Triangles: triangles}
	}

	left, right, ok := splitAtSpatialMedian(triangles, axis, box)
	if !ok {
		return &Node{BBox: box, SplitAxis: axis, Triangles: triangles}
	}

	return &Node{
		BBox:      box,
		SplitAxis: axis,
		Left:      buildMedianNode(left, leafCapacity),
		Right:     buildMedianNode(right, leafCapacity),
	}
}

// splitAtSpatialMedian partitions triangles into a left (midpoint[axis] <
// mid) and right (>=) set by bisecting the box's extent on axis, each
// time keeping only the half that holds every triangle when the other
// side comes up empty, until both sides are non-empty. ok is
// false if the range collapsed before that happened (e.g. every triangle
// has the same midpoint along axis).
func splitAtSpatialMedian(triangles []geom.Triangle, axis geom.Axis, box geom.Box) (left, right []geom.Triangle, ok bool) {
	min, max := box.Min[axis], box.Max[axis]
	var mid float32
	haveMid := false

	for iter := 0; iter < maxBisections; iter++ {
		if haveMid {
			if len(left) > 0 {
				max = mid
			} else if len(right) > 0 {
				min = mid
			}
		}

		if max-min < minBisectionRange {
			return nil, nil, false
		}

		mid = (min + max) / 2
		haveMid = true

		left = left[:0]
		right = right[:0]
		for _, tri := range triangles {
			if tri.Midpoint[axis] < mid {
				left = append(left, tri)
			} else {
				right = append(right, tri)
			}
		}

		if len(left) > 0 && len(right) > 0 {
			return left, right, true
		}
	}

	return nil, nil, false
}
