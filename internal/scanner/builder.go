package scanner

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lumipallolabs/fsview/internal/model"
)

// ParseError reports a malformed size/path record. The whole build is
// aborted; nothing of the partial hierarchy is kept.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("record %d: %s: %q", e.Line, e.Reason, e.Text)
}

// builder materializes the hierarchy from an ordered du-style record
// stream: "<size>\t<path>", sizes in blockSize units, paths /-separated and
// relative to the scan root ("." for the root itself), emitted bottom-up in
// depth-first order. Directories are created the first time a component is
// seen and closed (attached to their parent, children sorted) as soon as
// the stream advances past their prefix, so sizes accumulate strictly
// upward and each directory is sorted exactly once.
type builder struct {
	root      *model.Node
	open      []*model.Node // open[0] is the root, open[i] the dir at depth i
	last      []string
	blockSize int64

	records  int64
	bytes    int64
	progress chan<- Progress
	lineNum  int
}

func newBuilder(absRoot string, blockSize int64, progress chan<- Progress) *builder {
	if blockSize < 1 {
		blockSize = 1
	}
	root := model.NewRoot(absRoot)
	return &builder{
		root:      root,
		open:      []*model.Node{root},
		last:      []string{"."},
		blockSize: blockSize,
		progress:  progress,
	}
}

// consume reads records until EOF and returns the finished hierarchy.
func (b *builder) consume(r io.Reader) (*model.Node, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if err := b.add(sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	return b.finish()
}

func (b *builder) add(line string) error {
	b.lineNum++

	tab := strings.IndexByte(line, '\t')
	if tab < 0 {
		return &ParseError{Line: b.lineNum, Text: line, Reason: "missing size/path separator"}
	}
	size, err := strconv.ParseInt(line[:tab], 10, 64)
	if err != nil || size < 0 {
		return &ParseError{Line: b.lineNum, Text: line, Reason: "size is not a non-negative integer"}
	}

	pathStr := strings.TrimSpace(line[tab+1:])
	comps := strings.Split(pathStr, "/")
	if len(comps) > 1 && comps[len(comps)-1] == "" {
		comps = comps[:len(comps)-1] // "./dir/" style trailing separator
	}
	if len(comps) == 0 || comps[0] != "." {
		return &ParseError{Line: b.lineNum, Text: line, Reason: "path is not relative to the scan root"}
	}

	b.insert(size*b.blockSize, comps)
	b.records++
	if b.progress != nil && b.records%256 == 0 {
		select {
		case b.progress <- Progress{Files: b.records, Bytes: b.bytes}:
		default:
		}
	}
	return nil
}

// insert compares the record's path with the previous one: shared prefix
// keeps directories open, a shorter or divergent prefix closes everything
// deeper, and a terminating component attaches a file leaf. Records whose
// path is a prefix of the previous one (directory totals, the root's own
// line) contribute nothing; directory sizes come only from their children.
func (b *builder) insert(size int64, path []string) {
	n, m := len(path), len(b.last)
	for i := 0; i < n || i < m; i++ {
		if i >= n {
			b.closeTo(i)
			break
		}
		if i >= m || b.last[i] != path[i] {
			b.closeTo(i)
			for j := i; j < n-1; j++ {
				b.open = append(b.open, model.NewDir(path[j]))
			}
			if n > 1 {
				b.open[len(b.open)-1].AddChild(model.NewFile(path[n-1], size))
				b.bytes += size
			}
			break
		}
	}
	b.last = path
}

// closeTo attaches and sorts every open directory deeper than depth, from
// the bottom up.
func (b *builder) closeTo(depth int) {
	for j := len(b.open) - 2; j >= depth-1 && j >= 0; j-- {
		b.open[j].AddChild(b.open[j+1])
		b.open[j+1].SortChildren()
	}
	if depth < 1 {
		depth = 1
	}
	if depth < len(b.open) {
		b.open = b.open[:depth]
	}
}

func (b *builder) finish() (*model.Node, error) {
	if b.records == 0 {
		return nil, ErrEmptyScan
	}
	b.closeTo(1)
	b.root.SortChildren()
	return b.root, nil
}
