package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lumipallolabs/fsview/internal/model"
)

// grid is the character cell buffer the treemap is drawn into.
type grid struct {
	w, h   int
	runes  [][]rune
	styles [][]lipgloss.Style
}

func newGrid(w, h int) *grid {
	g := &grid{
		w:      w,
		h:      h,
		runes:  make([][]rune, h),
		styles: make([][]lipgloss.Style, h),
	}
	for row := range g.runes {
		g.runes[row] = make([]rune, w)
		g.styles[row] = make([]lipgloss.Style, w)
		for col := range g.runes[row] {
			g.runes[row][col] = ' '
			g.styles[row][col] = lipgloss.NewStyle()
		}
	}
	return g
}

func (g *grid) set(row, col int, ch rune, st lipgloss.Style) {
	if row < 0 || row >= g.h || col < 0 || col >= g.w {
		return
	}
	g.runes[row][col] = ch
	g.styles[row][col] = st
}

func (g *grid) fill(r model.Rect, st lipgloss.Style) {
	for row := r.Row; row < r.Row+r.Height; row++ {
		for col := r.Col; col < r.Col+r.Width; col++ {
			g.set(row, col, ' ', st)
		}
	}
}

func (g *grid) writeString(row, col int, s string, st lipgloss.Style) {
	for i, ch := range []rune(s) {
		g.set(row, col+i, ch, st)
	}
}

// renderTree draws the laid-out hierarchy into a width×height cell buffer
// and returns the styled lines. The cell at (cursorRow, cursorCol) renders
// reversed; pass -1 to omit the cursor.
func renderTree(root *model.Node, width, height int, drawFrames bool, cursorRow, cursorCol int) string {
	g := newGrid(width, height)
	if root != nil && root.Geom != nil {
		g.fill(*root.Geom, pairStyle(0))
		g.drawNode(root, 0, drawFrames)
	}
	if cursorRow >= 0 && cursorRow < height && cursorCol >= 0 && cursorCol < width {
		g.styles[cursorRow][cursorCol] = g.styles[cursorRow][cursorCol].Reverse(true)
	}
	return g.String()
}

// drawNode labels n's already-filled rectangle, then fills and draws every
// laid-out child with the next palette color. The counter threads through
// the whole traversal so nested blocks continue the cycle.
func (g *grid) drawNode(n *model.Node, color int, drawFrames bool) int {
	if n.Kind == model.KindFile {
		g.labelFile(n, pairStyle(color))
		return color
	}
	if drawFrames {
		g.labelDir(n, pairStyle(color))
	}
	for _, c := range n.Children {
		if c.Geom == nil {
			continue
		}
		color++
		if color > 7 {
			color = 1
		}
		g.fill(*c.Geom, pairStyle(color))
		color = g.drawNode(c, color, drawFrames)
	}
	return color
}

// labelFile writes the name wrapped across the block, plus the size label
// in the bottom-right corner when both fit.
func (g *grid) labelFile(n *model.Node, st lipgloss.Style) {
	r := *n.Geom
	area := r.Area()
	name := []rune(n.Name)
	if len(name) > area {
		return
	}
	for i, ch := range name {
		g.set(r.Row+i/r.Width, r.Col+i%r.Width, ch, st)
	}
	size := n.SizeLabel()
	if len(size)+len(name) < area && len(size) <= r.Width {
		g.writeString(r.Row+r.Height-1, r.Col+r.Width-len(size), size, st)
	}
}

// labelDir writes the display name along the frame row with the size label
// right-aligned, falling back to the left column for tall narrow blocks.
func (g *grid) labelDir(n *model.Node, st lipgloss.Style) {
	r := *n.Geom
	name := []rune(n.DisplayName())
	size := n.SizeLabel()
	switch {
	case len(name) <= r.Width:
		g.writeString(r.Row, r.Col, string(name), st)
		if r.Width > len(name)+len(size) {
			g.writeString(r.Row, r.Col+r.Width-len(size), size, st)
		}
	case len(name) <= r.Height:
		for i, ch := range name {
			g.set(r.Row+i, r.Col, ch, st)
		}
	case r.Width >= r.Height:
		g.writeString(r.Row, r.Col, string(name[:r.Width]), st)
	default:
		for i := 0; i < r.Height; i++ {
			g.set(r.Row+i, r.Col, name[i], st)
		}
	}
}

// String renders the buffer as h lines of styled cells.
func (g *grid) String() string {
	var b strings.Builder
	for row := 0; row < g.h; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < g.w; col++ {
			b.WriteString(g.styles[row][col].Render(string(g.runes[row][col])))
		}
	}
	return b.String()
}
