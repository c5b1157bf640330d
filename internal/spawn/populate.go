package spawn

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/delvegame/delve/internal/data"
	"github.com/delvegame/delve/internal/mapgen"
	"github.com/delvegame/delve/internal/world"
)

// FromDepthTable reads a {value, minDepth} table: the result is the value of
// the deepest row whose minDepth the given depth has reached.
func FromDepthTable(table [][2]int, depth int) int {
	v := 0
	for _, row := range table {
		if depth >= row[1] {
			v = row[0]
		}
	}
	return v
}

// pickWeighted selects one id from the rows active at this depth,
// proportionally to weight. Empty string when nothing qualifies.
func pickWeighted(rng *rand.Rand, rows []data.WeightedRef, depth int) string {
	total := 0
	for _, r := range rows {
		if depth >= r.MinDepth {
			total += r.Weight
		}
	}
	if total == 0 {
		return ""
	}
	roll := rng.Intn(total)
	for _, r := range rows {
		if depth < r.MinDepth {
			continue
		}
		roll -= r.Weight
		if roll < 0 {
			return r.ID
		}
	}
	return ""
}

// Spawn count tables, value by minimum depth.
var (
	creatureCounts = [][2]int{{4, 1}, {6, 3}, {8, 5}}
	itemCounts     = [][2]int{{2, 1}, {3, 4}}
	trapCounts     = [][2]int{{1, 1}, {2, 3}, {3, 5}}
)

// Populate fills a carved level with the theme's creatures, items and traps.
// Spawns never land on the player or on an occupied cell; a full map is not
// an error, placement just stops.
func (f *Factory) Populate(s *world.State, theme *data.ThemeTemplate, depth int) {
	free := func(x, y int) bool {
		if p, ok := s.PlayerPos(); ok && p.X == x && p.Y == y {
			return false
		}
		_, blocked := s.BlockerAt(x, y)
		return !blocked
	}

	for i := 0; i < FromDepthTable(creatureCounts, depth); i++ {
		id := pickWeighted(s.Rng, theme.Creatures, depth)
		if id == "" {
			break
		}
		x, y, err := mapgen.FindRandomFloorTile(s.Map, s.Rng, free)
		if err != nil {
			f.log.Warn("creature placement stopped", zap.Int("depth", depth), zap.Error(err))
			break
		}
		if _, err := f.Creature(s, id, x, y); err != nil {
			f.log.Warn("creature spawn failed", zap.String("template", id), zap.Error(err))
		}
	}

	for i := 0; i < FromDepthTable(itemCounts, depth); i++ {
		id := pickWeighted(s.Rng, theme.Items, depth)
		if id == "" {
			break
		}
		x, y, err := mapgen.FindRandomFloorTile(s.Map, s.Rng, free)
		if err != nil {
			break
		}
		if _, err := f.Item(s, id, x, y); err != nil {
			f.log.Warn("item spawn failed", zap.String("template", id), zap.Error(err))
		}
	}

	for i := 0; i < FromDepthTable(trapCounts, depth); i++ {
		id := pickWeighted(s.Rng, theme.Traps, depth)
		if id == "" {
			break
		}
		// Traps may share cells with items but not with creatures.
		x, y, err := mapgen.FindRandomFloorTile(s.Map, s.Rng, free)
		if err != nil {
			break
		}
		if _, err := f.Trap(s, id, x, y); err != nil {
			f.log.Warn("trap spawn failed", zap.String("template", id), zap.Error(err))
		}
	}
}
