package charts

import (
	"bytes"
	"context"
	"github.com/janpfeifer/depthplot/internal/generics"
	"github.com/janpfeifer/depthplot/internal/results"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

func experimentResults() *results.ResultSet {
	return results.FromMap(map[results.Depth]map[string]results.WinCount{
		1: {"robot1": 3, "robot2": 5, "robot3": 1, "robot4": 1},
		2: {"robot1": 6, "robot2": 3, "robot3": 0, "robot4": 1},
		4: {"robot1": 8, "robot2": 2},
	})
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{BarName, LineName}, Names())

	r, err := New("bar")
	require.NoError(t, err)
	assert.Equal(t, BarFilename, r.Filename())

	r, err = New("line")
	require.NoError(t, err)
	assert.Equal(t, LineFilename, r.Filename())

	_, err = New("pie")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bar, line")

	assert.Panics(t, func() { Register(BarName, func() Renderer { return BarChart{} }) })
}

func TestParseSelection(t *testing.T) {
	renderers, err := ParseSelection("line, bar,line")
	require.NoError(t, err)
	assert.Equal(t, []string{"bar", "line"}, generics.SliceMap(renderers, Renderer.Name))

	_, err = ParseSelection(" , ")
	assert.Error(t, err)
	_, err = ParseSelection("bar,scatter")
	assert.Error(t, err)
	_, err = ParseSelection("bar=3")
	assert.Error(t, err)
}

func TestLegendLabel(t *testing.T) {
	assert.Equal(t, "robot1 (sos)", LegendLabel("robot1"))
	assert.Equal(t, "robot2 (paranoid)", LegendLabel("robot2"))
	assert.Equal(t, "robot3 (random)", LegendLabel("robot3"))
}

func TestSeries(t *testing.T) {
	depths, players, wins := series(experimentResults())
	assert.Equal(t, []results.Depth{1, 2, 4}, depths)
	assert.Equal(t, []string{"robot1", "robot2", "robot3", "robot4"}, players)
	assert.Equal(t, [][]results.WinCount{{3, 6, 8}, {5, 3, 2}, {1, 0, 0}, {1, 1, 0}}, wins)
}

func TestRender(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			r, err := New(name)
			require.NoError(t, err)
			dir := t.TempDir()
			outputPath, err := r.Render(context.Background(), experimentResults(), dir)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, r.Filename()), outputPath)
			contents, err := os.ReadFile(outputPath)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(contents, pngSignature), "%s is not a PNG file", outputPath)
		})
	}
}

func TestRenderSingleDepthWithoutPlayers(t *testing.T) {
	rs := results.FromMap(map[results.Depth]map[string]results.WinCount{3: {}})
	for _, name := range Names() {
		r, err := New(name)
		require.NoError(t, err)
		_, err = r.Render(context.Background(), rs, t.TempDir())
		assert.NoError(t, err, "chart %s", name)
	}
}

func TestRenderFailures(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			r, err := New(name)
			require.NoError(t, err)

			dir := t.TempDir()
			_, err = r.Render(context.Background(), results.FromMap(nil), dir)
			assert.ErrorIs(t, err, ErrNoResults)

			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err = r.Render(ctx, experimentResults(), dir)
			assert.ErrorIs(t, err, context.Canceled)
			assert.NoFileExists(t, filepath.Join(dir, r.Filename()))

			_, err = r.Render(context.Background(), experimentResults(), filepath.Join(dir, "missing", "dir"))
			assert.Error(t, err)
		})
	}
}
