package sah

import (
	"sort"

	"github.com/waldhavran/kdtrace/geom"
)

// eventKind classifies a triangle's boundary crossing on one axis.
// Numeric values match spec.md's sort order: ENDING < PLANAR < STARTING.
type eventKind uint8

const (
	eventEnding eventKind = iota
	eventPlanar
	eventStarting
)

type event struct {
	triangle int // index into the node's triangle slice
	coord    float32
	kind     eventKind
}

// coordEpsilon is the tolerance used to decide two event coordinates
// denote "the same point" on the sweep, per spec.md §4.4.
const coordEpsilon = 1e-5

func coordEqual(a, b float32) bool {
	d := a - b
	return d > -coordEpsilon && d < coordEpsilon
}

// buildEvents produces axis's event list from each triangle's box
// clipped against the node's bounding box: a PLANAR event if the clipped
// box is planar on axis, otherwise a STARTING event at its min and an
// ENDING event at its max.
func buildEvents(triangles []geom.Triangle, axis geom.Axis, box geom.Box, clipBox func(geom.Triangle, geom.Box) (geom.Box, bool)) []event {
	events := make([]event, 0, len(triangles)*2)

	for i, tri := range triangles {
		clipped, ok := clipBox(tri, box)
		if !ok {
			continue
		}
		if clipped.IsPlanar(axis) {
			events = append(events, event{i, clipped.Min[axis], eventPlanar})
			continue
		}
		events = append(events, event{i, clipped.Min[axis], eventStarting})
		events = append(events, event{i, clipped.Max[axis], eventEnding})
	}

	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if !coordEqual(a.coord, b.coord) {
			return a.coord < b.coord
		}
		return a.kind < b.kind
	})

	return events
}
