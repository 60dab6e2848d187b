package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lumipallolabs/fsview/internal/model"
)

// Header displays the scanned root and filesystem stats on the top row.
type Header struct {
	rootPath     string
	width        int
	scanning     bool
	scanProgress string
	diskTotal    int64
	diskFree     int64
}

// NewHeader creates a new header component.
func NewHeader(rootPath string) Header {
	return Header{rootPath: rootPath}
}

// SetScanning sets the scanning state.
func (h *Header) SetScanning(scanning bool, progress string) {
	h.scanning = scanning
	h.scanProgress = progress
}

// SetDiskSpace sets the filesystem totals shown on the right.
func (h *Header) SetDiskSpace(total, free int64) {
	h.diskTotal = total
	h.diskFree = free
}

// SetRootPath updates the displayed root directory.
func (h *Header) SetRootPath(path string) {
	h.rootPath = path
}

// SetWidth sets the header width.
func (h *Header) SetWidth(w int) {
	h.width = w
}

// View renders the header.
func (h Header) View() string {
	appName := AppNameStyle.Render("FSVIEW")
	sep := lipgloss.NewStyle().Foreground(ColorMuted).Render(" │ ")

	path := HeaderPathStyle.Render(h.rootPath)

	var stats string
	if h.scanning && h.scanProgress != "" {
		stats = ScanStyle.Render(h.scanProgress)
	} else if h.diskTotal > 0 {
		stats = HeaderHintStyle.Render(fmt.Sprintf(
			"%s free of %s",
			model.FormatSize(h.diskFree),
			model.FormatSize(h.diskTotal),
		))
	}

	appNameWidth := lipgloss.Width(appName)
	sepWidth := lipgloss.Width(sep)
	pathWidth := lipgloss.Width(path)
	statsWidth := lipgloss.Width(stats)

	// HeaderStyle pads one cell on each side.
	inner := h.width - 2
	totalContent := appNameWidth + sepWidth + pathWidth + statsWidth + 2

	// For narrow terminals, progressively hide elements
	if inner < totalContent && statsWidth > 0 {
		stats = ""
		statsWidth = 0
		totalContent = appNameWidth + sepWidth + pathWidth
	}
	if inner < totalContent {
		keep := inner - appNameWidth - sepWidth
		if keep > 3 {
			r := []rune(h.rootPath)
			if len(r) > keep {
				path = HeaderPathStyle.Render("..." + string(r[len(r)-(keep-3):]))
			}
		} else {
			path = ""
		}
		totalContent = appNameWidth + sepWidth + lipgloss.Width(path)
	}

	gap := inner - totalContent + statsWidth
	if statsWidth > 0 {
		gap = inner - appNameWidth - sepWidth - lipgloss.Width(path) - statsWidth
	}
	if gap < 1 {
		gap = 1
	}

	line := appName + sep + path
	if stats != "" {
		line += strings.Repeat(" ", gap) + stats
	}

	return HeaderStyle.MaxHeight(1).Render(line)
}
