package scanner

import (
	"errors"
	"strings"
	"testing"

	"github.com/lumipallolabs/fsview/internal/model"
)

func buildFrom(t *testing.T, stream string, blockSize int64) (*model.Node, error) {
	t.Helper()
	b := newBuilder("/scan", blockSize, nil)
	return b.consume(strings.NewReader(stream))
}

// checkSums verifies that every directory's size equals the sum of its
// children, all the way down.
func checkSums(t *testing.T, n *model.Node) {
	t.Helper()
	if !n.IsDir() {
		return
	}
	var sum int64
	for _, c := range n.Children {
		sum += c.Size
		checkSums(t, c)
	}
	if n.Size != sum {
		t.Errorf("%s: size %d, children sum to %d", n.Name, n.Size, sum)
	}
}

// checkOrder verifies non-increasing child sizes everywhere.
func checkOrder(t *testing.T, n *model.Node) {
	t.Helper()
	for i := 1; i < len(n.Children); i++ {
		if n.Children[i-1].Size < n.Children[i].Size {
			t.Errorf("%s: children out of order at %d: %d < %d",
				n.Name, i, n.Children[i-1].Size, n.Children[i].Size)
		}
	}
	for _, c := range n.Children {
		checkOrder(t, c)
	}
}

const sampleStream = "100\t./a/f1\n" +
	"50\t./a/f2\n" +
	"154\t./a\n" +
	"30\t./b.txt\n" +
	"200\t.\n"

func TestBuildHierarchy(t *testing.T) {
	root, err := buildFrom(t, sampleStream, 1)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if root.Kind != model.KindRoot || root.RootPath != "/scan" {
		t.Errorf("bad root: kind=%d path=%q", root.Kind, root.RootPath)
	}
	// Directory sizes come from children only; the du totals for "./a"
	// and "." (which include block overhead) are ignored.
	if root.Size != 180 {
		t.Errorf("root size %d, expected 180", root.Size)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(root.Children))
	}

	a := root.Children[0]
	if a.Name != "a" || a.Kind != model.KindDir || a.Size != 150 {
		t.Errorf("first child: %s kind=%d size=%d, expected a dir of 150", a.Name, a.Kind, a.Size)
	}
	if len(a.Children) != 2 || a.Children[0].Name != "f1" || a.Children[1].Name != "f2" {
		t.Errorf("a's children wrong: %+v", a.Children)
	}
	if b := root.Children[1]; b.Name != "b.txt" || b.Kind != model.KindFile || b.Size != 30 {
		t.Errorf("second child: %s kind=%d size=%d", b.Name, b.Kind, b.Size)
	}

	checkSums(t, root)
	checkOrder(t, root)
}

func TestBuildDeepTransitions(t *testing.T) {
	stream := "5\t./x/y/z/f\n" +
		"7\t./x/y/z\n" +
		"2\t./x/q\n" +
		"9\t./x\n" +
		"11\t.\n"
	root, err := buildFrom(t, stream, 1)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	x := root.Children[0]
	if x.Name != "x" || x.Size != 7 {
		t.Fatalf("x: name=%s size=%d, expected x/7", x.Name, x.Size)
	}
	if len(x.Children) != 2 {
		t.Fatalf("x should have 2 children, got %d", len(x.Children))
	}
	y := x.Children[0]
	if y.Name != "y" || y.Size != 5 || y.Children[0].Name != "z" {
		t.Errorf("y subtree wrong: %s/%d", y.Name, y.Size)
	}
	if q := x.Children[1]; q.Name != "q" || q.Size != 2 {
		t.Errorf("q wrong: %s/%d", q.Name, q.Size)
	}
	checkSums(t, root)
	checkOrder(t, root)
}

func TestBuildBlockSize(t *testing.T) {
	root, err := buildFrom(t, "3\t./f\n6\t.\n", 512)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if root.Size != 3*512 {
		t.Errorf("root size %d, expected %d", root.Size, 3*512)
	}
}

func TestBuildZeroSizes(t *testing.T) {
	stream := "0\t./empty/none\n" +
		"0\t./empty\n" +
		"10\t./f\n" +
		"10\t.\n"
	root, err := buildFrom(t, stream, 1)
	if err != nil {
		t.Fatalf("zero sizes must be tolerated: %v", err)
	}
	if root.Size != 10 || len(root.Children) != 2 {
		t.Errorf("root: size=%d children=%d", root.Size, len(root.Children))
	}
	checkOrder(t, root)
}

func TestBuildRootOnly(t *testing.T) {
	root, err := buildFrom(t, "4096\t.\n", 1)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if root.Size != 0 || len(root.Children) != 0 {
		t.Errorf("bare root should be empty, got size=%d children=%d", root.Size, len(root.Children))
	}
}

func TestBuildEmptyStream(t *testing.T) {
	_, err := buildFrom(t, "", 1)
	if !errors.Is(err, ErrEmptyScan) {
		t.Errorf("expected ErrEmptyScan, got %v", err)
	}
}

func TestBuildRebuildIdentical(t *testing.T) {
	first, err := buildFrom(t, sampleStream, 1)
	if err != nil {
		t.Fatal(err)
	}
	second, err := buildFrom(t, sampleStream, 1)
	if err != nil {
		t.Fatal(err)
	}

	var compare func(a, b *model.Node)
	compare = func(a, b *model.Node) {
		if a.Name != b.Name || a.Size != b.Size || a.Kind != b.Kind || len(a.Children) != len(b.Children) {
			t.Fatalf("trees differ at %s/%s", a.Name, b.Name)
		}
		for i := range a.Children {
			compare(a.Children[i], b.Children[i])
		}
	}
	compare(first, second)
}

func TestBuildParseErrors(t *testing.T) {
	cases := []struct {
		name   string
		stream string
	}{
		{"missing tab", "100 ./a\n"},
		{"non-numeric size", "abc\t./a\n"},
		{"negative size", "-5\t./a\n"},
		{"absolute path", "100\t/etc/passwd\n"},
		{"empty line", "\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := buildFrom(t, c.stream, 1)
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %v", err)
			}
			if pe.Line != 1 {
				t.Errorf("line %d, expected 1", pe.Line)
			}
		})
	}
}

func TestBuildAbortsOnMidStreamError(t *testing.T) {
	stream := "100\t./a/f1\nbogus line\n50\t./a/f2\n"
	root, err := buildFrom(t, stream, 1)
	if err == nil {
		t.Fatal("expected an error")
	}
	if root != nil {
		t.Error("no partial hierarchy should be returned on error")
	}
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Line != 2 {
		t.Errorf("expected *ParseError at line 2, got %v", err)
	}
}
