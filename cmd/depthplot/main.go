// depthplot renders the wins per depth of an experiment log with every chart selected
// by -charts (by default all of them), in parallel.
//
//	depthplot [-charts=bar,line] [flags] <results file>
package main

import (
	"github.com/janpfeifer/depthplot/internal/app"
	"github.com/janpfeifer/depthplot/internal/charts"
	"strings"
)

func main() {
	app.Main(strings.Join(charts.Names(), ","))
}
