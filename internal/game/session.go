package game

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/delvegame/delve/internal/component"
	"github.com/delvegame/delve/internal/config"
	"github.com/delvegame/delve/internal/core/ecs"
	"github.com/delvegame/delve/internal/core/event"
	coresys "github.com/delvegame/delve/internal/core/system"
	"github.com/delvegame/delve/internal/data"
	"github.com/delvegame/delve/internal/mapgen"
	"github.com/delvegame/delve/internal/scripting"
	"github.com/delvegame/delve/internal/spawn"
	"github.com/delvegame/delve/internal/system"
	"github.com/delvegame/delve/internal/world"
)

// Frontend is what the session drives each frame: it supplies the input
// gathered since the last frame and draws the world after the tick.
type Frontend interface {
	PollInput() world.InputState
	Render(s *world.State)
}

// Door density per depth.
var doorCounts = [][2]int{{3, 1}, {4, 3}, {6, 5}}

// Session owns the frame loop and the stack of generated levels. Depth 0 is
// the hub; positive depths are dungeon floors built from the theme table.
// Visited floors are cached and revisited intact, with the player's state
// carried across as a snapshot.
type Session struct {
	cfg     *config.Config
	factory *spawn.Factory
	themes  *data.ThemeTable
	runner  *coresys.Runner
	bus     *event.Bus
	cache   *world.DepthCache
	msgs    *world.MessageLog
	rng     *rand.Rand
	log     *zap.Logger

	state    *world.State
	maxDepth int
	kills    int
	dead     bool
}

func NewSession(cfg *config.Config, factory *spawn.Factory, themes *data.ThemeTable,
	engine *scripting.Engine, log *zap.Logger) *Session {

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	runner := coresys.NewRunner()
	system.RegisterAll(runner, engine, factory)

	sess := &Session{
		cfg:     cfg,
		factory: factory,
		themes:  themes,
		runner:  runner,
		bus:     event.NewBus(),
		cache:   world.NewDepthCache(),
		msgs:    world.NewMessageLog(),
		rng:     rand.New(rand.NewSource(seed)),
		log:     log,
	}
	sess.subscribe()
	sess.state = sess.buildHub()
	sess.msgs.Append("Welcome to the Delve. The stairs down await.")
	log.Info("session ready",
		zap.Int64("seed", seed),
		zap.Int("grid_width", cfg.Game.GridWidth),
		zap.Int("grid_height", cfg.Game.GridHeight))
	return sess
}

// subscribe attaches the session's handlers for notifications gameplay
// systems publish. The bus delivers them a frame after emission, so these
// run before the next tick touches the state.
func (sess *Session) subscribe() {
	event.Subscribe(sess.bus, func(ev event.EntityDied) {
		sess.kills++
		sess.log.Info("creature slain",
			zap.String("name", ev.Name),
			zap.Int("depth", sess.state.Depth),
			zap.Int("x", ev.X),
			zap.Int("y", ev.Y))
	})
	event.Subscribe(sess.bus, func(event.PlayerDied) {
		sess.dead = true
		sess.log.Info("player died",
			zap.Int("depth", sess.state.Depth),
			zap.Int("turn", sess.state.Turn))
	})
	event.Subscribe(sess.bus, func(ev event.PlayerLeveled) {
		sess.log.Info("player leveled", zap.Int("level", ev.Level))
	})
	event.Subscribe(sess.bus, func(ev event.DepthChanged) {
		sess.log.Info("depth change", zap.Int("from", ev.From), zap.Int("to", ev.To))
	})
}

// State exposes the current level, mainly for the frontend and tests.
func (sess *Session) State() *world.State { return sess.state }

// Events is the session-wide bus; every level shares it.
func (sess *Session) Events() *event.Bus { return sess.bus }

// Run drives frames at the configured rate until the player quits or dies.
func (sess *Session) Run(fe Frontend) error {
	ticker := time.NewTicker(sess.cfg.Game.FrameInterval())
	defer ticker.Stop()

	for range ticker.C {
		sess.bus.SwapBuffers()
		sess.bus.DispatchAll()

		s := sess.state
		s.Input = fe.PollInput()
		sess.runner.Tick(s)

		if s.DepthChangeRequested {
			s.DepthChangeRequested = false
			if err := sess.switchDepth(s.NextDepth); err != nil {
				return err
			}
		}
		fe.Render(sess.state)
		if sess.state.Terminated {
			break
		}
	}
	// The final frame's emissions are still in the back buffer.
	sess.bus.SwapBuffers()
	sess.bus.DispatchAll()
	sess.log.Info("session over",
		zap.Int("turns", sess.state.Turn),
		zap.Int("max_depth", sess.maxDepth),
		zap.Int("kills", sess.kills),
		zap.Bool("player_died", sess.dead))
	return nil
}

// switchDepth parks the current level in the cache and activates the target
// one, generating it on first visit. The player's condition and pack travel
// as a snapshot; the entity itself belongs to each level.
func (sess *Session) switchDepth(to int) error {
	if to < 0 {
		return fmt.Errorf("depth %d out of range", to)
	}
	from := sess.state.Depth
	snap := world.ExtractPlayer(sess.state)
	// The snapshot rebuilds carried items in the target level; drop the
	// originals so revisiting this one cannot duplicate them.
	if inv, ok := sess.state.Stores.Inventory.Get(sess.state.Player); ok {
		for _, id := range inv.Items {
			sess.state.ECS.Destroy(id)
		}
		inv.Items = inv.Items[:0]
	}
	sess.cache.Put(from, sess.state)

	descending := to > from
	next, ok := sess.cache.Get(to)
	if !ok {
		if to == 0 {
			next = sess.buildHub()
		} else {
			var err error
			next, err = sess.buildFloor(to)
			if err != nil {
				return fmt.Errorf("generate depth %d: %w", to, err)
			}
		}
		sess.cache.Put(to, next)
	}
	sess.placeArrival(next, descending)
	world.ApplyPlayer(next, snap)
	// Cached floors carry the view from the previous visit; the player may
	// now stand elsewhere.
	next.FOVStale = true
	sess.state = next

	if to > sess.maxDepth {
		sess.maxDepth = to
		sess.msgs.Appendf("Depth %d. Deeper than you have ever been.", to)
	}
	if xp, ok := next.Stores.Experience.Get(next.Player); ok && xp.MaxDepth < sess.maxDepth {
		xp.MaxDepth = sess.maxDepth
	}
	event.Emit(sess.bus, event.DepthChanged{From: from, To: to})
	return nil
}

// placeArrival drops the player on the staircase matching the direction of
// travel: stairs up when coming down, stairs down when coming up.
func (sess *Session) placeArrival(s *world.State, descending bool) {
	x, y, found := -1, -1, false
	mark := func(id ecs.EntityID) {
		if p, ok := s.Stores.Position.Get(id); ok && !found {
			x, y, found = p.X, p.Y, true
		}
	}
	if descending {
		s.Stores.StairsUp.EachID(mark)
	} else {
		s.Stores.StairsDown.EachID(mark)
	}
	if found {
		s.Stores.Position.Set(s.Player, &component.Position{X: x, Y: y})
	}
}

// newLevelState builds an empty State sharing the session's bus, message log
// and settings.
func (sess *Session) newLevelState(depth int) *world.State {
	s := world.NewState(sess.cfg.Game.GridWidth, sess.cfg.Game.GridHeight, sess.rng, sess.log)
	s.Events = sess.bus
	s.Log = sess.msgs
	s.FOVRadius = sess.cfg.Game.FOVRadius
	s.Depth = depth
	return s
}

// buildHub carves the surface camp: one walled chamber holding the
// innkeeper, the merchant and the stairs down.
func (sess *Session) buildHub() *world.State {
	s := sess.newLevelState(0)
	g := s.Map
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			g.Set(x, y, world.TileWall)
		}
	}
	cx, cy := g.W/2, g.H/2
	for y := cy - 4; y <= cy+4; y++ {
		for x := cx - 7; x <= cx+7; x++ {
			g.Set(x, y, world.TileFloor)
		}
	}

	sess.factory.Player(s, cx, cy)
	sess.factory.Innkeeper(s, cx-5, cy-2)
	sess.factory.Merchant(s, cx+5, cy-2)
	sess.factory.StairsDown(s, cx, cy+3)
	return s
}

// buildFloor generates a dungeon level from its theme: room-and-corridor or
// cave layout, doors on corridor chokepoints, stairs both ways, then the
// theme's creatures, items and traps.
func (sess *Session) buildFloor(depth int) (*world.State, error) {
	theme := sess.themes.ForDepth(depth)
	if theme == nil {
		return nil, fmt.Errorf("no theme for depth %d", depth)
	}
	s := sess.newLevelState(depth)

	var startX, startY int
	switch theme.MapStyle {
	case "caves":
		mapgen.GenerateCaves(s.Map, sess.rng)
		x, y, err := mapgen.FindRandomFloorTile(s.Map, sess.rng, func(int, int) bool { return true })
		if err != nil {
			return nil, err
		}
		startX, startY = x, y
	default:
		rooms := mapgen.GenerateRooms(s.Map, sess.rng, 12, 5, 10)
		if len(rooms) == 0 {
			return nil, fmt.Errorf("room generation produced no rooms")
		}
		startX, startY = rooms[0].CenterX(), rooms[0].CenterY()
		sess.placeDoors(s, depth)
	}

	sess.factory.Player(s, startX, startY)
	sess.factory.StairsUp(s, startX, startY)

	dx, dy, err := mapgen.FindRandomFloorTile(s.Map, sess.rng, func(x, y int) bool {
		return x != startX || y != startY
	})
	if err != nil {
		return nil, err
	}
	sess.factory.StairsDown(s, dx, dy)

	sess.factory.Populate(s, theme, depth)
	sess.log.Info("floor generated",
		zap.Int("depth", depth),
		zap.String("theme", theme.ID),
		zap.Int("floor_tiles", mapgen.FloorCount(s.Map)))
	return s, nil
}

// placeDoors turns a sample of corridor chokepoints into closed doors.
func (sess *Session) placeDoors(s *world.State, depth int) {
	candidates := mapgen.DoorCandidates(s.Map)
	sess.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	n := spawn.FromDepthTable(doorCounts, depth)
	if n > len(candidates) {
		n = len(candidates)
	}
	for _, c := range candidates[:n] {
		sess.factory.Door(s, c[0], c[1])
	}
}
