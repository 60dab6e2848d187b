package ui

import (
	"strings"

	"github.com/lumipallolabs/fsview/internal/model"
)

// statusLine renders the bottom bar: the selected chain with everything up
// to index bright and the deeper components dimmed, plus the indexed node's
// size right-aligned. Long paths are truncated from the left.
func statusLine(chain []*model.Node, index, width int) string {
	if width <= 0 || len(chain) == 0 {
		return ""
	}
	if index < 0 {
		index = 0
	}
	if index >= len(chain) {
		index = len(chain) - 1
	}

	size := chain[index].SizeLabel()
	if width <= len(size)+1 {
		return StatusSizeStyle.Render(size)
	}
	avail := width - len(size) - 1

	var bright, dim strings.Builder
	for i, n := range chain {
		if i <= index {
			bright.WriteString(n.DisplayName())
		} else {
			dim.WriteString(n.DisplayName())
		}
	}

	b := []rune(bright.String())
	d := []rune(dim.String())
	if len(b) > avail {
		if avail > 3 {
			b = append([]rune("..."), b[len(b)-(avail-3):]...)
		} else {
			b = b[len(b)-avail:]
		}
		d = nil
	}
	if rem := avail - len(b); len(d) > rem {
		if rem > 3 {
			d = append(d[:rem-3], []rune("...")...)
		} else {
			d = nil
		}
	}

	pad := width - len(b) - len(d) - len(size)
	if pad < 1 {
		pad = 1
	}
	return StatusStyle.Render(string(b)) +
		StatusDimStyle.Render(string(d)) +
		strings.Repeat(" ", pad) +
		StatusSizeStyle.Render(size)
}
