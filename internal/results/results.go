// Package results holds the outcome of a depth experiment: for each search depth, how many
// matches each player won.
//
// A ResultSet is built once by Extract (or one of its variants) from the log printed by the
// experiment, and it is read-only afterwards.
package results

import (
	"fmt"
	"github.com/janpfeifer/depthplot/internal/generics"
	"maps"
	"slices"
	"strings"
)

// Depth of the search used by the players in one experimental configuration.
type Depth int

// WinCount is the number of matches won by a player.
type WinCount int

// ResultSet maps each Depth to the WinCount of each player at that depth.
//
// It is immutable: use the accessors to read it, or Map to get a private copy.
type ResultSet struct {
	byDepth map[Depth]map[string]WinCount
}

// newResultSet returns an empty ResultSet, to be filled by the extractor.
func newResultSet() *ResultSet {
	return &ResultSet{byDepth: make(map[Depth]map[string]WinCount)}
}

// FromMap builds a ResultSet from a plain map. The map is copied.
func FromMap(m map[Depth]map[string]WinCount) *ResultSet {
	rs := newResultSet()
	for depth, wins := range m {
		rs.byDepth[depth] = maps.Clone(wins)
		if rs.byDepth[depth] == nil {
			rs.byDepth[depth] = make(map[string]WinCount)
		}
	}
	return rs
}

// Len returns the number of depths.
func (rs *ResultSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.byDepth)
}

// Depths returns the depths in increasing order.
func (rs *ResultSet) Depths() []Depth {
	if rs == nil {
		return nil
	}
	return slices.Collect(generics.SortedKeys(rs.byDepth))
}

// HasDepth returns whether a section for depth was seen, even if it holds no players.
func (rs *ResultSet) HasDepth(depth Depth) bool {
	if rs == nil {
		return false
	}
	_, found := rs.byDepth[depth]
	return found
}

// PlayersAt returns the players recorded at depth, sorted by name.
func (rs *ResultSet) PlayersAt(depth Depth) []string {
	if rs == nil {
		return nil
	}
	return slices.Collect(generics.SortedKeys(rs.byDepth[depth]))
}

// Players returns every player seen at any depth, sorted by name.
func (rs *ResultSet) Players() []string {
	if rs == nil {
		return nil
	}
	all := generics.MakeSet[string]()
	for _, wins := range rs.byDepth {
		all.Insert(slices.Collect(maps.Keys(wins))...)
	}
	return slices.Collect(generics.SortedKeys(all))
}

// Wins returns the number of wins of player at depth, and whether it was recorded at all.
func (rs *ResultSet) Wins(depth Depth, player string) (WinCount, bool) {
	if rs == nil {
		return 0, false
	}
	count, found := rs.byDepth[depth][player]
	return count, found
}

// WinsOrZero is like Wins, but a missing player counts as 0 wins.
func (rs *ResultSet) WinsOrZero(depth Depth, player string) WinCount {
	count, _ := rs.Wins(depth, player)
	return count
}

// MaxWins returns the largest WinCount over all depths and players, or 0 if there are none.
func (rs *ResultSet) MaxWins() WinCount {
	var maxWins WinCount
	if rs == nil {
		return maxWins
	}
	for _, wins := range rs.byDepth {
		for _, count := range wins {
			maxWins = max(maxWins, count)
		}
	}
	return maxWins
}

// Map returns a deep copy of the results as a plain map.
func (rs *ResultSet) Map() map[Depth]map[string]WinCount {
	m := make(map[Depth]map[string]WinCount, rs.Len())
	if rs == nil {
		return m
	}
	for depth, wins := range rs.byDepth {
		m[depth] = maps.Clone(wins)
	}
	return m
}

// Equal returns whether both result sets hold the same depths, players and counts.
func (rs *ResultSet) Equal(other *ResultSet) bool {
	if rs.Len() != other.Len() {
		return false
	}
	if rs.Len() == 0 {
		return true
	}
	return maps.EqualFunc(rs.byDepth, other.byDepth, func(a, b map[string]WinCount) bool {
		return maps.Equal(a, b)
	})
}

// String implements fmt.Stringer, listing depths and players in sorted order.
func (rs *ResultSet) String() string {
	var parts []string
	for _, depth := range rs.Depths() {
		var players []string
		for player, count := range generics.SortedKeysAndValues(rs.byDepth[depth]) {
			players = append(players, fmt.Sprintf("%q: %d", player, count))
		}
		parts = append(parts, fmt.Sprintf("%d: {%s}", depth, strings.Join(players, ", ")))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
