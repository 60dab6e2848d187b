package model

import (
	"fmt"
	"path/filepath"
	"sort"
)

// Kind discriminates the node variants.
type Kind uint8

const (
	KindFile Kind = iota
	KindDir
	KindRoot
)

// Node is one entry in the scanned hierarchy: a file, a directory, or the
// scan root. Directory sizes are accumulated incrementally by AddChild and
// never recomputed top-down. Geom is the rectangle assigned by the most
// recent layout pass; it stays nil until then and becomes nil again for
// nodes the pass could not fit.
type Node struct {
	Name     string
	Size     int64 // bytes (sum of children for directories)
	Kind     Kind
	Parent   *Node
	Children []*Node // Dir/Root only
	RootPath string  // Root only: absolute physical path of the scan root
	Geom     *Rect
}

// NewFile creates a leaf node with a fixed size.
func NewFile(name string, size int64) *Node {
	return &Node{Name: name, Size: size, Kind: KindFile}
}

// NewDir creates an empty directory node.
func NewDir(name string) *Node {
	return &Node{Name: name, Kind: KindDir}
}

// NewRoot creates the root node for the given absolute scan path.
func NewRoot(absPath string) *Node {
	return &Node{Name: ".", Kind: KindRoot, RootPath: absPath}
}

// IsDir reports whether the node can hold children.
func (n *Node) IsDir() bool {
	return n.Kind != KindFile
}

// AddChild attaches c to n and adds its size to n's total.
func (n *Node) AddChild(c *Node) {
	c.Parent = n
	n.Children = append(n.Children, c)
	n.Size += c.Size
}

// SortChildren orders children by descending size. The sort is stable so
// equal-sized siblings keep their insertion order.
func (n *Node) SortChildren() {
	sort.SliceStable(n.Children, func(i, j int) bool {
		return n.Children[i].Size > n.Children[j].Size
	})
}

// DisplayName returns the label drawn for the node: directories carry a
// trailing separator, the root shows its absolute path.
func (n *Node) DisplayName() string {
	switch n.Kind {
	case KindRoot:
		return n.RootPath + string(filepath.Separator)
	case KindDir:
		return n.Name + string(filepath.Separator)
	default:
		return n.Name
	}
}

// Path returns the physical path of the node, built from the root's
// absolute path and the chain of names above n.
func (n *Node) Path() string {
	if n.Kind == KindRoot {
		return n.RootPath
	}
	if n.Parent == nil {
		return n.Name
	}
	return filepath.Join(n.Parent.Path(), n.Name)
}

// SizeLabel formats the size with binary units, one decimal below 10.
func (n *Node) SizeLabel() string {
	return FormatSize(n.Size)
}

// FormatSize formats a byte count with binary units, one decimal below 10.
func FormatSize(bytes int64) string {
	s := float64(bytes)
	units := "BKMGTPE"
	i := 0
	for s > 1024 && i < len(units)-1 {
		s /= 1024
		i++
	}
	if s < 10 && i > 0 {
		return fmt.Sprintf("%.1f%c", s, units[i])
	}
	return fmt.Sprintf("%.0f%c", s, units[i])
}
