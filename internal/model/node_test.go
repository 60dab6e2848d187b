package model

import "testing"

func TestAddChildAccumulatesSize(t *testing.T) {
	dir := NewDir("folder")
	dir.AddChild(NewFile("file1.txt", 100))
	dir.AddChild(NewFile("file2.txt", 200))

	if dir.Size != 300 {
		t.Errorf("expected 300, got %d", dir.Size)
	}
	for _, c := range dir.Children {
		if c.Parent != dir {
			t.Errorf("child %s has wrong parent", c.Name)
		}
	}

	root := NewRoot("/tmp/scan")
	root.AddChild(dir)
	root.AddChild(NewFile("file3.txt", 50))
	if root.Size != 350 {
		t.Errorf("expected 350, got %d", root.Size)
	}
}

func TestSortChildrenDescending(t *testing.T) {
	dir := NewDir("folder")
	dir.AddChild(NewFile("small", 100))
	dir.AddChild(NewFile("large", 1000))
	dir.AddChild(NewFile("medium", 500))
	dir.SortChildren()

	order := []string{"large", "medium", "small"}
	for i, want := range order {
		if dir.Children[i].Name != want {
			t.Errorf("position %d: expected %s, got %s", i, want, dir.Children[i].Name)
		}
	}
}

func TestSortChildrenStableOnTies(t *testing.T) {
	dir := NewDir("folder")
	dir.AddChild(NewFile("first", 100))
	dir.AddChild(NewFile("second", 100))
	dir.AddChild(NewFile("third", 100))
	dir.SortChildren()

	order := []string{"first", "second", "third"}
	for i, want := range order {
		if dir.Children[i].Name != want {
			t.Errorf("position %d: expected %s, got %s (ties must keep insertion order)", i, want, dir.Children[i].Name)
		}
	}
}

func TestDisplayName(t *testing.T) {
	if got := NewFile("a.txt", 1).DisplayName(); got != "a.txt" {
		t.Errorf("file: got %q", got)
	}
	if got := NewDir("src").DisplayName(); got != "src/" {
		t.Errorf("dir: got %q", got)
	}
	if got := NewRoot("/home/user").DisplayName(); got != "/home/user/" {
		t.Errorf("root: got %q", got)
	}
}

func TestPath(t *testing.T) {
	root := NewRoot("/scan")
	dir := NewDir("sub")
	file := NewFile("f.txt", 1)
	dir.AddChild(file)
	root.AddChild(dir)

	if got := file.Path(); got != "/scan/sub/f.txt" {
		t.Errorf("got %q", got)
	}
	if got := root.Path(); got != "/scan" {
		t.Errorf("got %q", got)
	}
}

func TestSizeLabel(t *testing.T) {
	cases := []struct {
		size int64
		want string
	}{
		{0, "0B"},
		{512, "512B"},
		{1023, "1023B"},
		{1536, "1.5K"},
		{10 * 1024, "10K"},
		{3 * 1024 * 1024, "3.0M"},
		{5 * 1024 * 1024 * 1024, "5.0G"},
	}
	for _, c := range cases {
		n := NewFile("x", c.size)
		if got := n.SizeLabel(); got != c.want {
			t.Errorf("SizeLabel(%d): expected %s, got %s", c.size, c.want, got)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{Row: 2, Col: 3, Height: 4, Width: 5}

	if !r.Contains(2, 3) {
		t.Error("top-left corner should be inside")
	}
	if !r.Contains(5, 7) {
		t.Error("bottom-right interior cell should be inside")
	}
	if r.Contains(6, 3) {
		t.Error("row past the extent should be outside")
	}
	if r.Contains(2, 8) {
		t.Error("col past the extent should be outside")
	}
	if r.Contains(1, 3) || r.Contains(2, 2) {
		t.Error("cells before the origin should be outside")
	}
}

func TestRectOverlapsWithin(t *testing.T) {
	a := Rect{Row: 0, Col: 0, Height: 4, Width: 4}
	b := Rect{Row: 0, Col: 4, Height: 4, Width: 4}
	if a.Overlaps(b) {
		t.Error("adjacent rects must not overlap")
	}
	c := Rect{Row: 1, Col: 1, Height: 2, Width: 2}
	if !c.Within(a) || !a.Overlaps(c) {
		t.Error("nested rect must be within and overlapping")
	}
}
