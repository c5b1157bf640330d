package system

import (
	"github.com/delvegame/delve/internal/component"
	"github.com/delvegame/delve/internal/core/ecs"
	coresys "github.com/delvegame/delve/internal/core/system"
	"github.com/delvegame/delve/internal/world"
)

// TargetingSystem is the aim-and-confirm mode. Every frame it rebuilds the
// preview line from the player to the mouse cell; left click inside range
// commits the aimed action, right click or escape cancels.
type TargetingSystem struct{}

func NewTargetingSystem() *TargetingSystem { return &TargetingSystem{} }

func (sys *TargetingSystem) Phase() coresys.Phase { return coresys.PhaseModal }

func (sys *TargetingSystem) Update(s *world.State) {
	clearIndicators(s)
	tgt, ok := s.Stores.Targeting.Get(s.Player)
	if !ok {
		return
	}

	pos, ok := s.PlayerPos()
	if !ok {
		s.Stores.Targeting.Remove(s.Player)
		return
	}
	mx, my := s.Input.MouseX, s.Input.MouseY
	valid := sys.validTarget(s, tgt, pos, mx, my)
	sys.drawPreview(s, tgt, pos, mx, my, valid)

	for _, ev := range s.Input.Events {
		switch {
		case ev.Kind == world.EventKey && ev.Key == world.KeyCancel:
			s.Stores.Targeting.Remove(s.Player)
			clearIndicators(s)
			return
		case ev.Kind == world.EventMouseDown && ev.Button == world.MouseRight:
			s.Stores.Targeting.Remove(s.Player)
			clearIndicators(s)
			return
		case ev.Kind == world.EventMouseDown && ev.Button == world.MouseLeft:
			cv := sys.validTarget(s, tgt, pos, ev.X, ev.Y)
			if !cv {
				s.Log.Append("Out of range.")
				continue
			}
			sys.commit(s, tgt, ev.X, ev.Y)
			return
		}
	}
}

// validTarget: inside range and currently visible.
func (sys *TargetingSystem) validTarget(s *world.State, tgt *component.Targeting, from component.Position, x, y int) bool {
	if world.DistSq(from.X, from.Y, x, y) > tgt.Range*tgt.Range {
		return false
	}
	return s.Visibility.IsVisible(x, y)
}

// commit resolves a confirmed click. Shoot and cast need a creature under
// the cursor; a miss logs and leaves targeting mode active with no turn
// spent, so the player can aim again.
func (sys *TargetingSystem) commit(s *world.State, tgt *component.Targeting, x, y int) {
	st := s.Stores
	switch tgt.Purpose {
	case component.TargetThrow:
		st.WantsToThrow.Set(s.Player, &component.WantsToThrow{
			Item: tgt.Item, TargetX: x, TargetY: y,
		})
	case component.TargetShoot:
		target, ok := s.HostileAt(x, y)
		if !ok {
			s.Log.Append("Nothing to shoot there.")
			return
		}
		st.WantsToShoot.Set(s.Player, &component.WantsToShoot{Target: target})
	case component.TargetCast:
		target, ok := s.HostileAt(x, y)
		if !ok {
			s.Log.Append("No target there.")
			return
		}
		st.WantsToCastSpell.Set(s.Player, &component.WantsToCastSpell{Target: target})
	}
	st.Targeting.Remove(s.Player)
	clearIndicators(s)
	s.PlayerActed = true
}

// drawPreview lays indicator entities along the aim line, clipped to the
// targeting range and colored by validity. Thrown area items also preview
// the blast disc around the aimed cell. Indicators live one frame; the next
// Update clears them.
func (sys *TargetingSystem) drawPreview(s *world.State, tgt *component.Targeting, from component.Position, x, y int, valid bool) {
	if !s.Map.InBounds(x, y) {
		return
	}
	color := "green"
	if !valid {
		color = "red"
	}
	r2 := tgt.Range * tgt.Range
	path := world.Line(from.X, from.Y, x, y)
	for _, p := range path[1:] {
		if world.DistSq(from.X, from.Y, p.X, p.Y) > r2 {
			break
		}
		sys.indicator(s, p.X, p.Y, '*', color)
	}
	if tgt.Purpose != component.TargetThrow || !valid {
		return
	}
	aoe, ok := s.Stores.AreaOfEffect.Get(tgt.Item)
	if !ok {
		return
	}
	br2 := aoe.Radius * aoe.Radius
	for by := y - aoe.Radius; by <= y+aoe.Radius; by++ {
		for bx := x - aoe.Radius; bx <= x+aoe.Radius; bx++ {
			if !s.Map.InBounds(bx, by) || world.DistSq(x, y, bx, by) > br2 {
				continue
			}
			sys.indicator(s, bx, by, '▒', "orange")
		}
	}
}

func (sys *TargetingSystem) indicator(s *world.State, x, y int, glyph rune, color string) {
	id := s.ECS.Create()
	s.Stores.TargetIndicator.Set(id, &component.TargetIndicator{Color: color})
	s.Stores.Position.Set(id, &component.Position{X: x, Y: y})
	s.Stores.Renderable.Set(id, &component.Renderable{Glyph: glyph, Color: color, Visible: true})
}

func clearIndicators(s *world.State) {
	var stale []ecs.EntityID
	s.Stores.TargetIndicator.EachID(func(id ecs.EntityID) {
		stale = append(stale, id)
	})
	for _, id := range stale {
		s.ECS.Destroy(id)
	}
}
