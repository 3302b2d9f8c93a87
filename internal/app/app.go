// Package app implements the command-line flow shared by the chart programs: read the experiment
// log given as the only argument, extract its results, render the charts and display them.
package app

import (
	"context"
	"flag"
	"fmt"
	"github.com/janpfeifer/depthplot/internal/charts"
	"github.com/janpfeifer/depthplot/internal/results"
	"github.com/janpfeifer/depthplot/internal/ui/cli"
	"github.com/janpfeifer/depthplot/internal/ui/spinning"
	"github.com/janpfeifer/depthplot/internal/ui/window"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"io"
	"k8s.io/klog/v2"
	"os"
	"strings"
	"time"
)

// UsageMessage is printed when the program is not given exactly one results file.
const UsageMessage = "Veuillez saisir le nom de fichiers qui contient les resultas"

// Display modes.
const (
	DisplayTerminal = "terminal"
	DisplayWindow   = "window"
	DisplayNone     = "none"
)

var (
	flagCharts = flag.String("charts", "", "Comma-separated list of charts to render. "+
		"Valid charts: "+strings.Join(charts.Names(), ", ")+". Defaults to the program's chart.")
	flagOutputDir = flag.String("out_dir", ".", "Directory where the chart images are written.")
	flagDisplay   = flag.String("display", DisplayTerminal,
		"How to display the results once rendered: terminal, window (requires building with -tags gtk) or none.")
	flagColor = flag.Bool("color", true, "Use colors when displaying results in the terminal.")
)

// Config of one run.
type Config struct {
	// Renderers to use, each writes its own file.
	Renderers []charts.Renderer

	// OutputDir where the images are written.
	OutputDir string

	// Display is one of DisplayTerminal, DisplayWindow or DisplayNone.
	Display string

	// Color enables colors in the terminal display.
	Color bool

	// Stdout is where the terminal display and messages go.
	Stdout io.Writer
}

// Validate checks the configuration.
func (cfg *Config) Validate() error {
	if len(cfg.Renderers) == 0 {
		return errors.New("no chart to render")
	}
	switch cfg.Display {
	case DisplayTerminal, DisplayWindow, DisplayNone:
	default:
		return errors.Errorf("invalid display %q, valid values are %q, %q or %q",
			cfg.Display, DisplayTerminal, DisplayWindow, DisplayNone)
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	return nil
}

// checkArgs returns the results file from the positional arguments. If there isn't exactly one
// argument, it prints the usage message to w and returns false.
func checkArgs(args []string, w io.Writer) (string, bool) {
	if len(args) != 1 {
		_, _ = fmt.Fprintln(w, UsageMessage)
		return "", false
	}
	return args[0], true
}

// Main is the entry point of the programs: defaultCharts is the chart selection used when the
// flag -charts is not given.
//
// It exits the program with a non-zero status on failure.
func Main(defaultCharts string) {
	klog.InitFlags(nil)
	flag.Parse()

	filePath, ok := checkArgs(flag.Args(), os.Stdout)
	if !ok {
		os.Exit(1)
	}

	// Capture Control+C
	ctx, cancel := context.WithCancel(context.Background())
	spinning.SafeInterrupt(cancel, 3*time.Second)
	defer cancel()

	selection := *flagCharts
	if selection == "" {
		selection = defaultCharts
	}
	cfg := &Config{
		Renderers: must.M1(charts.ParseSelection(selection)),
		OutputDir: *flagOutputDir,
		Display:   *flagDisplay,
		Color:     *flagColor,
		Stdout:    os.Stdout,
	}
	must.M(cfg.Validate())
	if _, err := Run(ctx, cfg, filePath); err != nil {
		klog.Exitf("Failed: %v", err)
	}
}

// Run reads the results from filePath, renders the configured charts and displays them.
// It returns the paths of the images written.
func Run(ctx context.Context, cfg *Config, filePath string) ([]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rs, err := results.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	klog.V(1).Infof("%s: %d depths, %d players", filePath, rs.Len(), len(rs.Players()))

	names := make([]string, len(cfg.Renderers))
	for ii, r := range cfg.Renderers {
		names[ii] = r.Filename()
	}
	s := spinning.New(ctx, os.Stderr, fmt.Sprintf("Rendering %s", strings.Join(names, ", ")))
	paths, err := Render(ctx, rs, cfg.Renderers, cfg.OutputDir)
	s.Done()
	if err != nil {
		return nil, err
	}
	for _, outputPath := range paths {
		_, _ = fmt.Fprintf(cfg.Stdout, "Chart saved to %s\n", outputPath)
	}
	display(cfg, rs, paths)
	return paths, nil
}

// Render the results with each renderer in parallel. The paths are returned in the same order
// as the renderers.
func Render(ctx context.Context, rs *results.ResultSet, renderers []charts.Renderer, outputDir string) ([]string, error) {
	paths := make([]string, len(renderers))
	g, gCtx := errgroup.WithContext(ctx)
	for ii, r := range renderers {
		g.Go(func() error {
			outputPath, err := r.Render(gCtx, rs, outputDir)
			if err != nil {
				return errors.WithMessagef(err, "chart %q", r.Name())
			}
			paths[ii] = outputPath
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// display the results according to cfg.Display. Failing to display is not an error: the charts
// are already saved.
func display(cfg *Config, rs *results.ResultSet, paths []string) {
	switch cfg.Display {
	case DisplayNone:
		return
	case DisplayWindow:
		err := window.Show(charts.Title, paths...)
		if err == nil {
			return
		}
		klog.Warningf("Falling back to terminal display: %v", err)
	}
	cli.New(cfg.Stdout, cfg.Color).PrintResults(charts.Title, rs)
}
