package scanner

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"

	"github.com/lumipallolabs/fsview/internal/model"
)

// Walker scans the filesystem directly with a parallel walk. It produces
// the same hierarchy shape as the du pipeline; entries are sorted by path
// before attachment so repeated scans of an unchanged tree are identical.
type Walker struct {
	workers    int
	progressCh chan Progress
	files      atomic.Int64
	bytes      atomic.Int64
}

// NewWalker creates a parallel filesystem walker.
func NewWalker(workers int) *Walker {
	if workers < 1 {
		workers = 8
	}
	return &Walker{
		workers:    workers,
		progressCh: make(chan Progress, 16),
	}
}

// Progress returns the progress channel.
func (w *Walker) Progress() <-chan Progress {
	return w.progressCh
}

type walkEntry struct {
	path  string
	name  string
	size  int64
	isDir bool
}

// Scan walks root with fastwalk and builds the hierarchy.
func (w *Walker) Scan(ctx context.Context, root string) (*model.Node, error) {
	defer close(w.progressCh)

	absRoot, err := resolveRoot(root)
	if err != nil {
		return nil, err
	}

	entryChan := make(chan walkEntry, 4096)
	var entries []walkEntry
	var collectWg sync.WaitGroup
	collectWg.Add(1)
	go func() {
		defer collectWg.Done()
		for e := range entryChan {
			entries = append(entries, e)
		}
	}()

	conf := &fastwalk.Config{
		Follow:     false,
		NumWorkers: w.workers,
	}
	walkErr := fastwalk.Walk(conf, absRoot, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err != nil {
			return nil // unreadable entries are skipped, as du does
		}
		if path == absRoot {
			return nil
		}

		var size int64
		if !d.IsDir() {
			info, err := d.Info()
			if err != nil {
				return nil
			}
			size = fileSize(info)
			files := w.files.Add(1)
			total := w.bytes.Add(size)
			if files%512 == 0 {
				select {
				case w.progressCh <- Progress{Files: files, Bytes: total}:
				default:
				}
			}
		}
		entryChan <- walkEntry{path: path, name: d.Name(), size: size, isDir: d.IsDir()}
		return nil
	})

	close(entryChan)
	collectWg.Wait()

	if walkErr != nil {
		return nil, walkErr
	}
	return buildFromEntries(absRoot, entries), nil
}

// buildFromEntries assembles the tree bottom-up so directory sizes
// accumulate through AddChild exactly as the record builder does.
func buildFromEntries(rootPath string, entries []walkEntry) *model.Node {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].path < entries[j].path
	})

	children := make(map[string][]walkEntry, len(entries)/8+1)
	for _, e := range entries {
		parent := filepath.Dir(e.path)
		children[parent] = append(children[parent], e)
	}

	root := model.NewRoot(rootPath)
	var fill func(dir *model.Node, path string)
	fill = func(dir *model.Node, path string) {
		for _, e := range children[path] {
			if e.isDir {
				d := model.NewDir(e.name)
				fill(d, e.path)
				dir.AddChild(d)
			} else {
				dir.AddChild(model.NewFile(e.name, e.size))
			}
		}
		dir.SortChildren()
	}
	fill(root, rootPath)
	return root
}
