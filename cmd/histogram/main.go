// histogram renders the wins per depth of an experiment log as a grouped bar chart, saved to
// histogramme.png.
//
//	histogram [flags] <results file>
package main

import (
	"github.com/janpfeifer/depthplot/internal/app"
	"github.com/janpfeifer/depthplot/internal/charts"
)

func main() {
	app.Main(charts.BarName)
}
