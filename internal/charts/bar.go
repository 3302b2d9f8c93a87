package charts

import (
	"context"
	"fmt"
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/depthplot/internal/generics"
	"github.com/janpfeifer/depthplot/internal/results"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const (
	// BarName is the name under which BarChart is registered.
	BarName = "bar"

	// BarFilename is the image written by BarChart.
	BarFilename = "histogramme.png"

	// barGroupWidth is the width taken by the bars of all players at one depth.
	barGroupWidth = vg.Length(72)
)

func init() {
	Register(BarName, func() Renderer { return BarChart{} })
}

// BarChart renders one group of bars per depth, with one bar per player.
type BarChart struct{}

// Name implements Renderer.
func (BarChart) Name() string { return BarName }

// Filename implements Renderer.
func (BarChart) Filename() string { return BarFilename }

// Render implements Renderer.
func (b BarChart) Render(ctx context.Context, rs *results.ResultSet, outputDir string) (string, error) {
	return renderPlot(ctx, rs, outputDir, b.Filename(), func(p *plot.Plot) {
		depths, players, wins := series(rs)
		barWidth := barGroupWidth / vg.Length(len(players)+1)
		for playerIdx, player := range players {
			values := make(plotter.Values, len(depths))
			for depthIdx, count := range wins[playerIdx] {
				values[depthIdx] = float64(count)
			}
			bars, err := plotter.NewBarChart(values, barWidth)
			if err != nil {
				exceptions.Panicf("bar chart for player %q: %+v", player, err)
			}
			bars.LineStyle.Width = vg.Length(0)
			bars.Color = plotutil.Color(playerIdx)
			// Center the group of bars around the depth tick.
			bars.Offset = barWidth * vg.Length(2*playerIdx-len(players)+1) / 2
			p.Add(bars)
			p.Legend.Add(player, bars)
		}
		p.NominalX(generics.SliceMap(depths, func(depth results.Depth) string {
			return fmt.Sprintf("%d", depth)
		})...)
	})
}
