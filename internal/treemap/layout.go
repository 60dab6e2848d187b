package treemap

import (
	"math"

	"github.com/lumipallolabs/fsview/internal/model"
)

// Layout assigns every reachable node a rectangle proportional to its size
// within an height×width cell viewport, caching the result on the nodes.
// With drawFrames set, each directory reserves one row (and, except for the
// root, one column) of border cells before dividing the rest among its
// children. All previously cached geometry is cleared first, so nodes the
// pass cannot fit end up with none. The pass is deterministic: the same
// tree, viewport and flag always produce identical rectangles.
func Layout(root *model.Node, height, width int, drawFrames bool) {
	if root == nil {
		return
	}
	clearGeom(root)
	if height <= 0 || width <= 0 {
		return
	}
	root.Geom = &model.Rect{Row: 0, Col: 0, Height: height, Width: width}
	layoutChildren(root, drawFrames)
}

func clearGeom(n *model.Node) {
	n.Geom = nil
	for _, c := range n.Children {
		clearGeom(c)
	}
}

// strip is a run of consecutive size-sorted siblings sharing one row band.
type strip struct {
	start, end  int // child index range [start, end)
	exactHeight float64
}

func layoutChildren(n *model.Node, drawFrames bool) {
	geom := *n.Geom

	frameRows, frameCols := 0, 0
	if drawFrames {
		frameRows = 1
		if n.Kind == model.KindDir {
			frameCols = 1
		}
	}
	innerH := geom.Height - frameRows
	innerW := geom.Width - frameCols
	if n.Size == 0 || innerH <= 0 || innerW <= 0 || len(n.Children) == 0 {
		return
	}

	scale := float64(innerW) * float64(innerH) / float64(n.Size)
	strips := groupStrips(n.Children, scale, innerW)

	exact := make([]float64, len(strips))
	for i, s := range strips {
		exact[i] = s.exactHeight
	}
	heights := RoundExact(exact, innerH)

	rowOff := frameRows
	for si, s := range strips {
		if heights[si] == 0 {
			continue
		}
		members := n.Children[s.start:s.end]
		widths := make([]float64, len(members))
		for j, c := range members {
			widths[j] = float64(c.Size) * scale / s.exactHeight
		}
		cols := RoundExact(widths, innerW)

		colOff := frameCols
		for j, c := range members {
			if cols[j] == 0 {
				continue
			}
			c.Geom = &model.Rect{
				Row:    geom.Row + rowOff,
				Col:    geom.Col + colOff,
				Height: heights[si],
				Width:  cols[j],
			}
			if c.IsDir() {
				layoutChildren(c, drawFrames)
			}
			colOff += cols[j]
		}
		rowOff += heights[si]
	}
}

// groupStrips walks children in descending-size order, greedily extending
// the current strip while doing so improves the fit between the strip's
// implied height and the width each member would get. The decision is
// local; a closed strip is never reopened.
func groupStrips(children []*model.Node, scale float64, innerW int) []strip {
	w := float64(innerW)
	var strips []strip

	cur := strip{start: 0, end: 1}
	diff := math.Inf(1)
	sum := 0.0
	for i, c := range children {
		area := scale * float64(c.Size)
		newSum := sum + area
		count := float64(i + 1 - cur.start)
		newDiff := math.Abs(newSum/w - w/count)
		if newDiff > diff {
			cur.exactHeight = sum / w
			strips = append(strips, cur)
			cur = strip{start: i, end: i + 1}
			sum = area
			diff = math.Abs(sum/w - w)
		} else {
			sum = newSum
			diff = newDiff
			cur.end = i + 1
		}
	}
	cur.exactHeight = sum / w
	return append(strips, cur)
}
