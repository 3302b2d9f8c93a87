// Package charts renders a results.ResultSet as a chart image.
//
// Each kind of chart is a Renderer that registers itself under a name ("bar", "line"), so
// the front-ends can select them from a configuration string like "bar,line".
package charts

import (
	"context"
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/depthplot/internal/generics"
	"github.com/janpfeifer/depthplot/internal/parameters"
	"github.com/janpfeifer/depthplot/internal/results"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"k8s.io/klog/v2"
	"path/filepath"
	"slices"
	"strings"
)

// Renderer draws a ResultSet to an image file.
type Renderer interface {
	// Name under which the renderer is registered.
	Name() string

	// Filename of the image written, without directory.
	Filename() string

	// Render the results to Filename() in outputDir, and return the path of the file written.
	// The ResultSet is only read.
	Render(ctx context.Context, rs *results.ResultSet, outputDir string) (string, error)
}

// Factory creates a new Renderer.
type Factory func() Renderer

var (
	// Registered renderers.
	nameToFactory = make(map[string]Factory)

	// ErrNoResults is returned when rendering a ResultSet without any depth.
	ErrNoResults = errors.New("no results to plot")
)

// Register a renderer factory, so it can be selected by name. It panics if name is already taken.
func Register(name string, factory Factory) {
	if _, found := nameToFactory[name]; found {
		exceptions.Panicf("charts: renderer %q registered twice", name)
	}
	nameToFactory[name] = factory
}

// Names of the registered renderers, sorted.
func Names() []string {
	return slices.Collect(generics.SortedKeys(nameToFactory))
}

// New creates the renderer registered under name.
func New(name string) (Renderer, error) {
	factory, found := nameToFactory[name]
	if !found {
		return nil, errors.Errorf("unknown chart %q, valid charts are: %s", name, strings.Join(Names(), ", "))
	}
	return factory(), nil
}

// ParseSelection creates the renderers selected by a comma-separated configuration string, e.g. "bar,line".
// The renderers are returned sorted by name.
func ParseSelection(config string) ([]Renderer, error) {
	params := parameters.NewFromConfigString(config)
	if len(params) == 0 {
		return nil, errors.Errorf("no chart selected in %q, valid charts are: %s", config, strings.Join(Names(), ", "))
	}
	var renderers []Renderer
	for name, value := range generics.SortedKeysAndValues(params) {
		if value != "" {
			return nil, errors.Errorf("chart %q doesn't take a value (%q) in %q", name, value, config)
		}
		r, err := New(name)
		if err != nil {
			return nil, err
		}
		renderers = append(renderers, r)
	}
	return renderers, nil
}

// Labels of the charts. They are the same for every kind of chart.
const (
	Title  = "Résultats des expérimentations par profondeur pour robot1 sos et robot2 maxn avec robot 3 et 4 Random"
	XLabel = "Profondeur"
	YLabel = "Nombre de victoires"
)

// Width and Height of the images.
const (
	Width  = 10 * vg.Inch
	Height = 6 * vg.Inch
)

// newPlot creates a plot with the common labels, legend and grid.
func newPlot() *plot.Plot {
	p := plot.New()
	p.Title.Text = Title
	p.X.Label.Text = XLabel
	p.Y.Label.Text = YLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return p
}

// series returns the depths sorted, and for each player (sorted by name) their wins at each depth.
// Missing players at a depth count as 0 wins.
func series(rs *results.ResultSet) (depths []results.Depth, players []string, wins [][]results.WinCount) {
	depths = rs.Depths()
	players = rs.Players()
	wins = generics.SliceMap(players, func(player string) []results.WinCount {
		return generics.SliceMap(depths, func(depth results.Depth) results.WinCount {
			return rs.WinsOrZero(depth, player)
		})
	})
	return
}

// renderPlot builds the plot with build and saves it to filename in outputDir.
//
// Errors thrown with exceptions.Panicf while building the plot are returned as errors.
func renderPlot(ctx context.Context, rs *results.ResultSet, outputDir, filename string, build func(p *plot.Plot)) (string, error) {
	if rs.Len() == 0 {
		return "", ErrNoResults
	}
	p := newPlot()
	err := exceptions.TryCatch[error](func() { build(p) })
	if err != nil {
		return "", errors.WithMessagef(err, "failed to build chart %s", filename)
	}
	if err := ctx.Err(); err != nil {
		return "", errors.Wrapf(err, "chart %s not saved", filename)
	}
	outputPath := filepath.Join(outputDir, filename)
	if err := p.Save(Width, Height, outputPath); err != nil {
		return "", errors.Wrapf(err, "failed to save chart to %q", outputPath)
	}
	klog.V(1).Infof("chart saved to %s", outputPath)
	return outputPath, nil
}
