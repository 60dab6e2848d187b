package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"strconv"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lumipallolabs/fsview/internal/config"
	"github.com/lumipallolabs/fsview/internal/logging"
	"github.com/lumipallolabs/fsview/internal/scanner"
	"github.com/lumipallolabs/fsview/internal/ui"
)

func main() {
	// Enable CPU profiling if CPUPROFILE env var is set
	if cpuProfile := os.Getenv("CPUPROFILE"); cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", cpuProfile)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		frames   bool
		noFrames bool
		stdin    bool
		native   bool
	)

	root := &cobra.Command{
		Use:          "fsview [directory]",
		Short:        "fsview shows directory sizes as a treemap",
		Long:         "fsview renders the files under a directory as a treemap of nested blocks sized by disk usage.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.Path())
			if err != nil {
				return err
			}
			if frames {
				cfg.DrawFrames = true
			}
			if noFrames {
				cfg.DrawFrames = false
			}
			if native {
				cfg.NativeScan = true
			}

			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			newScanner := scannerFactory(cfg, stdin)
			logging.Debug.Printf("starting up (dir=%s stdin=%v native=%v)", dir, stdin, cfg.NativeScan)

			p := tea.NewProgram(
				ui.NewApp(dir, cfg, newScanner),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithContext(cmd.Context()),
			)
			_, err = p.Run()
			return err
		},
	}

	root.Flags().BoolVarP(&frames, "frames", "f", false, "draw directory frames")
	root.Flags().BoolVarP(&noFrames, "no-frames", "n", false, "do not draw directory frames")
	root.Flags().BoolVarP(&stdin, "stdin", "i", false, "read du output from standard input")
	root.Flags().BoolVar(&native, "native", false, "walk the filesystem directly instead of running du")
	root.MarkFlagsMutuallyExclusive("frames", "no-frames")

	return root.ExecuteContext(ctx)
}

// scannerFactory picks the size producer. Stdin mode parses a du stream
// from standard input; native mode (always on Windows, where du is not
// available) walks the filesystem directly.
func scannerFactory(cfg config.Config, stdin bool) func() scanner.Scanner {
	switch {
	case stdin:
		blockSize := cfg.BlockSize
		if env := os.Getenv("BLOCKSIZE"); env != "" {
			if n, err := strconv.ParseInt(env, 10, 64); err == nil && n > 0 {
				blockSize = n
			}
		}
		return func() scanner.Scanner {
			return scanner.NewReaderScanner(os.Stdin, blockSize)
		}
	case cfg.NativeScan || runtime.GOOS == "windows":
		return func() scanner.Scanner {
			return scanner.NewWalker(runtime.NumCPU())
		}
	default:
		return func() scanner.Scanner {
			return scanner.NewDuScanner(cfg.DuCommand, cfg.BlockSize)
		}
	}
}
