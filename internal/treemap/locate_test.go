package treemap

import (
	"testing"

	"github.com/lumipallolabs/fsview/internal/model"
)

func locateFixture() *model.Node {
	root := model.NewRoot("/scan")
	sub := model.NewDir("sub")
	sub.AddChild(model.NewFile("x", 600))
	sub.AddChild(model.NewFile("y", 400))
	sub.SortChildren()
	root.AddChild(sub)
	root.AddChild(model.NewFile("top", 1000))
	root.SortChildren()
	Layout(root, 20, 40, false)
	return root
}

func TestLocateDescendsToDeepest(t *testing.T) {
	root := locateFixture()
	sub := root.Children[0]
	x := sub.Children[0]

	// A point strictly inside x must yield root -> sub -> x.
	row := x.Geom.Row + x.Geom.Height/2
	col := x.Geom.Col + x.Geom.Width/2
	chain := Locate(root, row, col)
	if len(chain) != 3 {
		t.Fatalf("expected chain of 3, got %d", len(chain))
	}
	if chain[0] != root || chain[1] != sub || chain[2] != x {
		t.Errorf("wrong chain: %s -> %s -> %s", chain[0].Name, chain[1].Name, chain[2].Name)
	}
}

func TestLocateFile(t *testing.T) {
	root := locateFixture()
	top := root.Children[1]

	chain := Locate(root, top.Geom.Row, top.Geom.Col)
	if len(chain) != 2 || chain[1] != top {
		t.Fatalf("expected [root top], got %d nodes", len(chain))
	}
}

func TestLocateOutsideRoot(t *testing.T) {
	root := locateFixture()
	if chain := Locate(root, 20, 0); chain != nil {
		t.Errorf("point below the grid should give an empty chain, got %d nodes", len(chain))
	}
	if chain := Locate(root, 0, 40); chain != nil {
		t.Errorf("point right of the grid should give an empty chain, got %d nodes", len(chain))
	}
	if chain := Locate(root, -1, 0); chain != nil {
		t.Error("negative coordinates should give an empty chain")
	}
}

func TestLocateFrameCellStopsAtDirectory(t *testing.T) {
	root := model.NewRoot("/scan")
	sub := model.NewDir("sub")
	sub.AddChild(model.NewFile("x", 100))
	root.AddChild(sub)
	Layout(root, 10, 12, true)

	// Row 0 is the root's frame row: inside root, in no child.
	chain := Locate(root, 0, 5)
	if len(chain) != 1 || chain[0] != root {
		t.Fatalf("expected [root], got %d nodes", len(chain))
	}

	// sub's frame row contains sub but not its child.
	chain = Locate(root, sub.Geom.Row, sub.Geom.Col+2)
	if len(chain) != 2 || chain[1] != sub {
		t.Fatalf("expected [root sub], got %d nodes", len(chain))
	}
}

func TestLocateDiscardedChildFallsBackToParent(t *testing.T) {
	root := model.NewRoot("/scan")
	root.AddChild(model.NewFile("big", 99))
	root.AddChild(model.NewFile("tiny", 1))
	root.SortChildren()
	Layout(root, 4, 4, false)

	// tiny was discarded; every cell belongs to big.
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			chain := Locate(root, row, col)
			if len(chain) != 2 || chain[1].Name != "big" {
				t.Fatalf("cell (%d,%d): expected [root big], got %d nodes", row, col, len(chain))
			}
		}
	}
}

func TestLocateZeroSizeRoot(t *testing.T) {
	root := model.NewRoot("/scan")
	root.AddChild(model.NewFile("empty", 0))
	Layout(root, 5, 5, false)

	chain := Locate(root, 2, 2)
	if len(chain) != 1 || chain[0] != root {
		t.Fatalf("expected bare [root], got %d nodes", len(chain))
	}
}

func TestLocateStableBetweenPasses(t *testing.T) {
	root := locateFixture()
	first := Locate(root, 3, 3)

	Layout(root, 20, 40, false)
	second := Locate(root, 3, 3)

	if len(first) != len(second) {
		t.Fatalf("chain length changed between identical passes: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("chain node %d changed between identical passes", i)
		}
	}
}
