// linechart renders the wins per depth of an experiment log as one line per player, saved to
// resultats_exp.png.
//
//	linechart [flags] <results file>
package main

import (
	"github.com/janpfeifer/depthplot/internal/app"
	"github.com/janpfeifer/depthplot/internal/charts"
)

func main() {
	app.Main(charts.LineName)
}
