package charts

import (
	"context"
	"fmt"
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/depthplot/internal/parameters"
	"github.com/janpfeifer/depthplot/internal/results"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	// LineName is the name under which LineChart is registered.
	LineName = "line"

	// LineFilename is the image written by LineChart.
	LineFilename = "resultats_exp.png"

	// playerStrategies used in the experiments, shown in the legend of the line chart.
	playerStrategies = "robot1=sos,robot2=paranoid"

	// defaultStrategy of the players not listed in playerStrategies.
	defaultStrategy = "random"
)

func init() {
	Register(LineName, func() Renderer { return LineChart{} })
}

// LineChart renders one line per player, with their wins over the depths.
type LineChart struct{}

// Name implements Renderer.
func (LineChart) Name() string { return LineName }

// Filename implements Renderer.
func (LineChart) Filename() string { return LineFilename }

// LegendLabel returns the player name followed by the strategy it played with, e.g. "robot1 (sos)".
func LegendLabel(player string) string {
	strategy, err := parameters.GetParamOr(parameters.NewFromConfigString(playerStrategies), player, defaultStrategy)
	if err != nil {
		exceptions.Panicf("invalid strategy for %q in %q: %+v", player, playerStrategies, err)
	}
	return fmt.Sprintf("%s (%s)", player, strategy)
}

// Render implements Renderer.
func (l LineChart) Render(ctx context.Context, rs *results.ResultSet, outputDir string) (string, error) {
	return renderPlot(ctx, rs, outputDir, l.Filename(), func(p *plot.Plot) {
		depths, players, wins := series(rs)
		for playerIdx, player := range players {
			xys := make(plotter.XYs, len(depths))
			for depthIdx, depth := range depths {
				xys[depthIdx].X = float64(depth)
				xys[depthIdx].Y = float64(wins[playerIdx][depthIdx])
			}
			line, points, err := plotter.NewLinePoints(xys)
			if err != nil {
				exceptions.Panicf("line chart for player %q: %+v", player, err)
			}
			line.Color = plotutil.Color(playerIdx)
			points.Color = plotutil.Color(playerIdx)
			points.Shape = draw.CircleGlyph{}
			points.Radius = vg.Points(3)
			p.Add(line, points)
			p.Legend.Add(LegendLabel(player), line, points)
		}
		p.X.Tick.Marker = depthTicks(depths)
	})
}

// depthTicks places one labeled tick at each depth.
func depthTicks(depths []results.Depth) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(depths))
	for ii, depth := range depths {
		ticks[ii] = plot.Tick{Value: float64(depth), Label: fmt.Sprintf("%d", depth)}
	}
	return ticks
}
