package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gabriel-vasile/mimetype"

	"github.com/lumipallolabs/fsview/internal/config"
	"github.com/lumipallolabs/fsview/internal/logging"
	"github.com/lumipallolabs/fsview/internal/model"
	"github.com/lumipallolabs/fsview/internal/scanner"
	"github.com/lumipallolabs/fsview/internal/treemap"
)

// scanStartMsg triggers the actual scan start (after the UI has rendered)
type scanStartMsg struct{}

// scanDoneMsg is sent when a scan finishes
type scanDoneMsg struct {
	root *model.Node
	err  error
}

// scanProgressMsg is sent during scanning
type scanProgressMsg struct {
	progress scanner.Progress
}

// spinnerTickMsg triggers spinner animation
type spinnerTickMsg struct{}

// fileInfoMsg carries the result of a file type probe
type fileInfoMsg struct {
	notice string
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerTickInterval = 80 * time.Millisecond

// App is the main application model. The screen splits into a one-row
// header, the treemap area, and a one-row status bar showing the path
// chain under the cursor.
type App struct {
	header Header
	keys   KeyMap

	cfg        config.Config
	rootDir    string
	newScanner func() scanner.Scanner
	scanner    scanner.Scanner

	root         *model.Node
	err          error
	scanning     bool
	spinnerFrame int
	progress     scanner.Progress

	drawFrames bool
	width      int
	height     int

	// Cursor and selection, in treemap-local coordinates.
	cursorRow int
	cursorCol int
	chain     []*model.Node
	pathIndex int
	notice    string
}

// NewApp creates a new application instance. newScanner is called once per
// scan so a rescan always starts from a fresh producer.
func NewApp(rootDir string, cfg config.Config, newScanner func() scanner.Scanner) App {
	return App{
		header:     NewHeader(rootDir),
		keys:       DefaultKeyMap(),
		cfg:        cfg,
		rootDir:    rootDir,
		newScanner: newScanner,
		drawFrames: cfg.DrawFrames,
		scanning:   true,
	}
}

// Init implements tea.Model
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("FSVIEW"),
		func() tea.Msg { return scanStartMsg{} },
	)
}

// treemapHeight is the number of rows between the header and status bar.
func (a App) treemapHeight() int {
	return a.height - 2
}

// startScan runs the scanner and returns its result as a message.
func (a App) startScan() tea.Cmd {
	s := a.scanner
	root := a.rootDir
	return func() tea.Msg {
		logging.Debug.Printf("starting scan of %s", root)
		node, err := s.Scan(context.Background(), root)
		logging.Debug.Printf("scan finished (err=%v)", err)
		return scanDoneMsg{root: node, err: err}
	}
}

// listenProgress waits for the next progress update from the scanner.
func (a App) listenProgress() tea.Cmd {
	s := a.scanner
	return func() tea.Msg {
		p, ok := <-s.Progress()
		if !ok {
			return nil
		}
		return scanProgressMsg{progress: p}
	}
}

// relayout recomputes block geometry for the current window size.
func (a *App) relayout() {
	if a.root == nil || a.width < 1 || a.treemapHeight() < 1 {
		return
	}
	treemap.Layout(a.root, a.treemapHeight(), a.width, a.drawFrames)
}

// relocate refreshes the selection chain from the cursor position.
func (a *App) relocate() {
	a.notice = ""
	a.chain = treemap.Locate(a.root, a.cursorRow, a.cursorCol)
	a.pathIndex = len(a.chain) - 1
}

// Update implements tea.Model
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.header.SetWidth(msg.Width)
		a.clampCursor()
		a.relayout()
		a.relocate()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			row := msg.Y - 1
			if row >= 0 && row < a.treemapHeight() && msg.X >= 0 && msg.X < a.width {
				a.cursorRow = row
				a.cursorCol = msg.X
				a.relocate()
			}
		}
		return a, nil

	case scanStartMsg:
		a.scanner = a.newScanner()
		a.header.SetScanning(true, "")
		spinnerCmd := tea.Tick(spinnerTickInterval, func(time.Time) tea.Msg {
			return spinnerTickMsg{}
		})
		return a, tea.Batch(a.startScan(), a.listenProgress(), spinnerCmd)

	case scanProgressMsg:
		a.progress = msg.progress
		a.header.SetScanning(true, fmt.Sprintf(
			"%d files, %s", msg.progress.Files, model.FormatSize(msg.progress.Bytes)))
		return a, a.listenProgress()

	case scanDoneMsg:
		a.scanning = false
		a.header.SetScanning(false, "")
		if msg.err != nil {
			a.err = msg.err
			a.root = nil
			a.chain = nil
			logging.Debug.Printf("scan failed: %v", msg.err)
			return a, nil
		}
		a.err = nil
		a.root = msg.root
		total, free := model.DiskSpace(a.rootDir)
		a.header.SetDiskSpace(total, free)
		a.relayout()
		a.relocate()
		return a, nil

	case spinnerTickMsg:
		if a.scanning {
			a.spinnerFrame = (a.spinnerFrame + 1) % len(spinnerFrames)
			return a, tea.Tick(spinnerTickInterval, func(time.Time) tea.Msg {
				return spinnerTickMsg{}
			})
		}
		return a, nil

	case fileInfoMsg:
		a.notice = msg.notice
		return a, nil
	}

	return a, nil
}

// handleKey handles keyboard input
func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Up):
		a.moveCursor(-1, 0)
		return a, nil

	case key.Matches(msg, a.keys.Down):
		a.moveCursor(1, 0)
		return a, nil

	case key.Matches(msg, a.keys.Left):
		a.moveCursor(0, -1)
		return a, nil

	case key.Matches(msg, a.keys.Right):
		a.moveCursor(0, 1)
		return a, nil

	case key.Matches(msg, a.keys.PathUp):
		if a.pathIndex > 0 {
			a.pathIndex--
		}
		return a, nil

	case key.Matches(msg, a.keys.PathDown):
		if a.pathIndex < len(a.chain)-1 {
			a.pathIndex++
		}
		return a, nil

	case key.Matches(msg, a.keys.Parent):
		// Jump to the enclosing directory block. Chain index len-2 is the
		// deepest ancestor above the block under the cursor; skipping it
		// when the chain is just root+child keeps the cursor in place.
		if len(a.chain) > 2 {
			a.jumpTo(a.chain[len(a.chain)-2])
		}
		return a, nil

	case key.Matches(msg, a.keys.Enter):
		if len(a.chain) > 0 {
			a.jumpTo(a.chain[a.pathIndex])
		}
		return a, nil

	case key.Matches(msg, a.keys.Sibling):
		a.jumpToNextSibling()
		return a, nil

	case key.Matches(msg, a.keys.Rescan):
		if a.scanning {
			return a, nil
		}
		a.scanning = true
		a.root = nil
		a.chain = nil
		a.err = nil
		a.notice = ""
		return a, func() tea.Msg { return scanStartMsg{} }

	case key.Matches(msg, a.keys.Frames):
		a.drawFrames = !a.drawFrames
		a.relayout()
		a.relocate()
		return a, nil

	case key.Matches(msg, a.keys.Info):
		if len(a.chain) > 0 {
			if n := a.chain[len(a.chain)-1]; n.Kind == model.KindFile {
				return a, fileInfoCmd(n)
			}
		}
		return a, nil
	}

	return a, nil
}

func (a *App) clampCursor() {
	if a.cursorRow >= a.treemapHeight() {
		a.cursorRow = a.treemapHeight() - 1
	}
	if a.cursorRow < 0 {
		a.cursorRow = 0
	}
	if a.cursorCol >= a.width {
		a.cursorCol = a.width - 1
	}
	if a.cursorCol < 0 {
		a.cursorCol = 0
	}
}

func (a *App) moveCursor(dr, dc int) {
	a.cursorRow += dr
	a.cursorCol += dc
	a.clampCursor()
	a.relocate()
}

// jumpTo moves the cursor to the top-left cell of n's block.
func (a *App) jumpTo(n *model.Node) {
	if n == nil || n.Geom == nil {
		return
	}
	a.cursorRow = n.Geom.Row
	a.cursorCol = n.Geom.Col
	a.clampCursor()
	a.relocate()
}

// jumpToNextSibling cycles the cursor through the laid-out siblings of the
// block under the cursor. Siblings too small to receive geometry are
// skipped.
func (a *App) jumpToNextSibling() {
	if len(a.chain) == 0 {
		return
	}
	n := a.chain[len(a.chain)-1]
	if n.Parent == nil {
		return
	}
	sibs := n.Parent.Children
	at := -1
	for i, s := range sibs {
		if s == n {
			at = i
			break
		}
	}
	if at < 0 {
		return
	}
	for step := 1; step < len(sibs); step++ {
		s := sibs[(at+step)%len(sibs)]
		if s.Geom != nil {
			a.jumpTo(s)
			return
		}
	}
}

// fileInfoCmd probes the file's content type.
func fileInfoCmd(n *model.Node) tea.Cmd {
	path := n.Path()
	name := n.Name
	label := n.SizeLabel()
	return func() tea.Msg {
		mt, err := mimetype.DetectFile(path)
		if err != nil {
			return fileInfoMsg{notice: fmt.Sprintf("%s: %v", name, err)}
		}
		return fileInfoMsg{notice: fmt.Sprintf("%s: %s, %s", name, mt.String(), label)}
	}
}

// View implements tea.Model
func (a App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Scanning..."
	}

	sections := []string{a.header.View()}

	th := a.treemapHeight()
	if th < 1 {
		th = 1
	}

	if a.scanning || a.root == nil {
		line := ""
		if a.scanning {
			line = ScanStyle.Render(fmt.Sprintf(
				"%s Scanning %s", spinnerFrames[a.spinnerFrame], a.rootDir))
			if a.progress.Files > 0 {
				line += HeaderHintStyle.Render(fmt.Sprintf(
					"  %d files, %s", a.progress.Files, model.FormatSize(a.progress.Bytes)))
			}
		} else if a.err == nil {
			line = HeaderHintStyle.Render("Nothing to show")
		}
		sections = append(sections, lipgloss.Place(
			a.width, th, lipgloss.Center, lipgloss.Center, line))
	} else {
		sections = append(sections, renderTree(
			a.root, a.width, th, a.drawFrames, a.cursorRow, a.cursorCol))
	}

	switch {
	case a.err != nil:
		sections = append(sections, ErrorStyle.Render(fmt.Sprintf("Error: %v", a.err)))
	case a.notice != "":
		sections = append(sections, StatusStyle.Render(a.notice))
	default:
		sections = append(sections, statusLine(a.chain, a.pathIndex, a.width))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
