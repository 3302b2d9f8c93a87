package results

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestResultSetAccessors(t *testing.T) {
	rs := FromMap(map[Depth]map[string]WinCount{
		3: {"robot2": 4, "robot1": 7},
		1: {"robot1": 2, "robot4": 11},
		2: nil,
	})
	assert.Equal(t, 3, rs.Len())
	assert.Equal(t, []Depth{1, 2, 3}, rs.Depths())
	assert.Equal(t, []string{"robot1", "robot2", "robot4"}, rs.Players())
	assert.Equal(t, []string{"robot1", "robot4"}, rs.PlayersAt(1))
	assert.Empty(t, rs.PlayersAt(2))
	assert.True(t, rs.HasDepth(2))
	assert.False(t, rs.HasDepth(5))

	count, found := rs.Wins(3, "robot1")
	assert.True(t, found)
	assert.Equal(t, WinCount(7), count)
	_, found = rs.Wins(3, "robot4")
	assert.False(t, found)
	assert.Equal(t, WinCount(0), rs.WinsOrZero(3, "robot4"))
	assert.Equal(t, WinCount(11), rs.MaxWins())

	assert.Equal(t, `{1: {"robot1": 2, "robot4": 11}, 2: {}, 3: {"robot1": 7, "robot2": 4}}`, rs.String())
}

func TestResultSetIsImmutable(t *testing.T) {
	source := map[Depth]map[string]WinCount{1: {"robot1": 2}}
	rs := FromMap(source)
	source[1]["robot1"] = 100
	assert.Equal(t, WinCount(2), rs.WinsOrZero(1, "robot1"))

	copied := rs.Map()
	copied[1]["robot1"] = 50
	copied[2] = map[string]WinCount{"robot2": 1}
	assert.Equal(t, WinCount(2), rs.WinsOrZero(1, "robot1"))
	assert.False(t, rs.HasDepth(2))
}

func TestResultSetEqual(t *testing.T) {
	a := FromMap(map[Depth]map[string]WinCount{1: {"robot1": 2}, 2: {}})
	b := FromMap(map[Depth]map[string]WinCount{2: {}, 1: {"robot1": 2}})
	c := FromMap(map[Depth]map[string]WinCount{1: {"robot1": 3}, 2: {}})
	d := FromMap(map[Depth]map[string]WinCount{1: {"robot1": 2}})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))

	var empty *ResultSet
	assert.True(t, empty.Equal(FromMap(nil)))
	assert.Equal(t, 0, empty.Len())
	assert.Nil(t, empty.Depths())
}
