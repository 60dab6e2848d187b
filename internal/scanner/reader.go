package scanner

import (
	"context"
	"io"

	"github.com/lumipallolabs/fsview/internal/model"
)

// ReaderScanner builds the hierarchy from an already-produced record stream
// such as piped du output. The root argument to Scan still names the
// directory the records describe; it is only used for display.
type ReaderScanner struct {
	r          io.Reader
	blockSize  int64
	progressCh chan Progress
}

// NewReaderScanner wraps r, interpreting sizes as blockSize-byte units.
func NewReaderScanner(r io.Reader, blockSize int64) *ReaderScanner {
	return &ReaderScanner{
		r:          r,
		blockSize:  blockSize,
		progressCh: make(chan Progress, 16),
	}
}

// Progress returns the progress channel.
func (s *ReaderScanner) Progress() <-chan Progress {
	return s.progressCh
}

// Scan consumes the stream to EOF and returns the hierarchy.
func (s *ReaderScanner) Scan(ctx context.Context, root string) (*model.Node, error) {
	defer close(s.progressCh)
	absRoot, err := resolveRoot(root)
	if err != nil {
		return nil, err
	}
	b := newBuilder(absRoot, s.blockSize, s.progressCh)
	return b.consume(s.r)
}
