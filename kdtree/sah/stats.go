package sah

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
)

// Stats summarises a tree's shape. Exists for tests and debugging, never
// on the query path.
type Stats struct {
	Nodes       int
	Leaves      int
	MaxDepth    int
	TotalTris   int
	MaxLeafTris int
}

// CollectStats walks the whole tree and summarises its shape.
func CollectStats(t *Tree) Stats {
	var s Stats
	if t.IsEmpty() {
		return s
	}
	collect(t.root, 0, &s)
	return s
}

func collect(n *Node, depth int, s *Stats) {
	s.Nodes++
	if depth > s.MaxDepth {
		s.MaxDepth = depth
	}
	if n.isLeaf() {
		s.Leaves++
		s.TotalTris += len(n.Triangles)
		if len(n.Triangles) > s.MaxLeafTris {
			s.MaxLeafTris = len(n.Triangles)
		}
		return
	}
	collect(n.Left, depth+1, s)
	collect(n.Right, depth+1, s)
}

func (s Stats) String() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Nodes", fmt.Sprintf("%d", s.Nodes)})
	table.Append([]string{"Leaves", fmt.Sprintf("%d", s.Leaves)})
	table.Append([]string{"Max depth", fmt.Sprintf("%d", s.MaxDepth)})
	table.Append([]string{"Triangles", fmt.Sprintf("%d", s.TotalTris)})
	table.Append([]string{"Largest leaf", fmt.Sprintf("%d", s.MaxLeafTris)})
	table.Render()
	return buf.String()
}
