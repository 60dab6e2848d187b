package scanner

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/lumipallolabs/fsview/internal/logging"
	"github.com/lumipallolabs/fsview/internal/model"
)

// DuScanner produces the record stream by running du(1) with its working
// directory set to the scan root, so paths come back relative without any
// process-wide chdir.
type DuScanner struct {
	command    []string
	blockSize  int64
	progressCh chan Progress
}

// NewDuScanner creates a du-backed scanner. With a nil command the platform
// default is used: "du -a -B1" with 1-byte blocks, except on Darwin where
// gdu is preferred and the built-in du falls back to 512-byte blocks.
func NewDuScanner(command []string, blockSize int64) *DuScanner {
	if len(command) == 0 {
		command, blockSize = duCommand()
	}
	if blockSize < 1 {
		blockSize = 1
	}
	return &DuScanner{
		command:    command,
		blockSize:  blockSize,
		progressCh: make(chan Progress, 16),
	}
}

func duCommand() ([]string, int64) {
	if runtime.GOOS == "darwin" {
		if _, err := exec.LookPath("gdu"); err == nil {
			return []string{"gdu", "-a", "-B1"}, 1
		}
		// The BSD du has no -B; its units are 512-byte blocks.
		return []string{"du", "-a"}, 512
	}
	return []string{"du", "-a", "-B1"}, 1
}

// Progress returns the progress channel.
func (d *DuScanner) Progress() <-chan Progress {
	return d.progressCh
}

// Scan runs du under root and builds the hierarchy from its output.
func (d *DuScanner) Scan(ctx context.Context, root string) (*model.Node, error) {
	defer close(d.progressCh)

	absRoot, err := resolveRoot(root)
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, d.command[0], d.command[1:]...)
	cmd.Dir = absRoot
	cmd.Stderr = io.Discard
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("du pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", d.command[0], err)
	}

	b := newBuilder(absRoot, d.blockSize, d.progressCh)
	tree, buildErr := b.consume(stdout)
	waitErr := cmd.Wait()

	if buildErr != nil {
		return nil, buildErr
	}
	if waitErr != nil {
		// du exits non-zero on unreadable entries but its output is
		// still complete for everything it could read.
		logging.Debug.Warn("du exited with error", "err", waitErr)
	}
	return tree, nil
}

// resolveRoot turns root into an absolute physical directory path.
func resolveRoot(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory: %w", abs, ErrEmptyScan)
	}
	return abs, nil
}
