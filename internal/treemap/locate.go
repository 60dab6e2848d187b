package treemap

import "github.com/lumipallolabs/fsview/internal/model"

// Locate returns the chain of nodes, root first, whose cached geometry
// contains the cell (row, col), descending as deep as the cached rectangles
// allow. It returns nil when the point lies outside the root's drawn area.
// Only geometry from the most recent Layout pass is consulted; nothing is
// recomputed, so results are stable between passes.
func Locate(root *model.Node, row, col int) []*model.Node {
	if root == nil || root.Geom == nil || !root.Geom.Contains(row, col) {
		return nil
	}
	chain := []*model.Node{root}
	node := root
descend:
	for {
		for _, c := range node.Children {
			if c.Geom != nil && c.Geom.Contains(row, col) {
				chain = append(chain, c)
				node = c
				continue descend
			}
		}
		return chain
	}
}
