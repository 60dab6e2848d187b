// Package scanner acquires per-file sizes and builds the node hierarchy.
//
// Two producers exist: DuScanner shells out to du(1) and parses its record
// stream, Walker walks the filesystem directly. Both yield the same tree
// shape; ReaderScanner builds from an externally supplied record stream
// (stdin mode).
package scanner

import (
	"context"
	"errors"

	"github.com/lumipallolabs/fsview/internal/model"
)

// ErrEmptyScan is returned when the scan root does not exist or the record
// stream yields no records at all.
var ErrEmptyScan = errors.New("scan produced no records")

// Progress reports scanning progress.
type Progress struct {
	Files int64
	Bytes int64
}

// Scanner builds a node hierarchy for a scan root.
type Scanner interface {
	// Scan scans root and returns the finished hierarchy. The returned
	// tree is fully sorted; every directory size equals the sum of its
	// children.
	Scan(ctx context.Context, root string) (*model.Node, error)

	// Progress returns a channel receiving progress updates. It is
	// closed when Scan returns.
	Progress() <-chan Progress
}
