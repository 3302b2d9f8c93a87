package parameters

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNewFromConfigString(t *testing.T) {
	assert.Equal(t, Params{"bar": "", "line": ""}, NewFromConfigString("bar, line"))
	assert.Equal(t, Params{"robot1": "sos", "robot2": "para=noid"}, NewFromConfigString("robot1=sos,,robot2 = para=noid,"))
	assert.Empty(t, NewFromConfigString(""))
}

func TestGetParamOr(t *testing.T) {
	params := NewFromConfigString("width=12,ratio=0.5,color,grid=false,label=sos,empty=")

	width, err := GetParamOr(params, "width", 80)
	require.NoError(t, err)
	assert.Equal(t, 12, width)

	ratio, err := GetParamOr(params, "ratio", 1.0)
	require.NoError(t, err)
	assert.Equal(t, 0.5, ratio)

	color, err := GetParamOr(params, "color", false)
	require.NoError(t, err)
	assert.True(t, color)

	grid, err := GetParamOr(params, "grid", true)
	require.NoError(t, err)
	assert.False(t, grid)

	label, err := GetParamOr(params, "label", "random")
	require.NoError(t, err)
	assert.Equal(t, "sos", label)

	empty, err := GetParamOr(params, "empty", "random")
	require.NoError(t, err)
	assert.Equal(t, "random", empty)

	missing, err := GetParamOr(params, "missing", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, missing)

	_, err = GetParamOr(params, "label", 0)
	assert.Error(t, err)
	_, err = GetParamOr(params, "label", false)
	assert.Error(t, err)
}

func TestPopParamOr(t *testing.T) {
	params := NewFromConfigString("bar,line=3")
	bar, err := PopParamOr(params, "bar", false)
	require.NoError(t, err)
	assert.True(t, bar)
	assert.NotContains(t, params, "bar")

	_, err = PopParamOr(params, "line", false)
	assert.Error(t, err)
	assert.Contains(t, params, "line")
}
