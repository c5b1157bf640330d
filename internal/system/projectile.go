package system

import (
	"github.com/delvegame/delve/internal/component"
	"github.com/delvegame/delve/internal/core/ecs"
	coresys "github.com/delvegame/delve/internal/core/system"
	"github.com/delvegame/delve/internal/world"
)

// ProjectileSystem advances every projectile one cell per frame along its
// precomputed path and applies the payload on arrival. It runs in the
// kinematics phase, outside the turn gate, so flights animate in real time
// while player input is held off.
type ProjectileSystem struct{}

func NewProjectileSystem() *ProjectileSystem { return &ProjectileSystem{} }

func (sys *ProjectileSystem) Phase() coresys.Phase { return coresys.PhaseKinematics }

func (sys *ProjectileSystem) Update(s *world.State) {
	st := s.Stores
	var flying []ecs.EntityID
	st.Projectile.EachID(func(id ecs.EntityID) {
		flying = append(flying, id)
	})
	for _, id := range flying {
		proj, ok := st.Projectile.Get(id)
		if !ok {
			continue
		}
		if len(proj.Path) == 0 {
			sys.impact(s, id)
			continue
		}
		next := proj.Path[0]
		proj.Path = proj.Path[1:]
		st.Position.Set(id, &component.Position{X: next.X, Y: next.Y})

		// A body in the way stops the flight short of the aimed cell.
		if _, blocked := s.BlockerAt(next.X, next.Y); blocked || len(proj.Path) == 0 {
			sys.impact(s, id)
		}
	}
}

// impact applies the projectile's payload at its current cell. Single-target
// payloads hit whoever stands there; area payloads hit everything with
// health inside the radius, walls notwithstanding.
func (sys *ProjectileSystem) impact(s *world.State, id ecs.EntityID) {
	st := s.Stores
	pos, ok := st.Position.Get(id)
	if !ok {
		sys.land(s, id)
		return
	}
	x, y := pos.X, pos.Y
	source := ecs.EntityID(0)
	if proj, ok := st.Projectile.Get(id); ok {
		source = proj.Source
	}

	dmg := 0
	if d, ok := st.InflictsDamage.Get(id); ok {
		dmg = d.Damage
	}
	poison, _ := st.InflictsPoison.Get(id)

	if aoe, ok := st.AreaOfEffect.Get(id); ok {
		r2 := aoe.Radius * aoe.Radius
		var victims []ecs.EntityID
		st.Health.EachID(func(v ecs.EntityID) {
			p, ok := st.Position.Get(v)
			if !ok || v == id || v == source {
				return
			}
			if world.DistSq(x, y, p.X, p.Y) <= r2 {
				victims = append(victims, v)
			}
		})
		for _, v := range victims {
			applyDamage(s, v, dmg)
			s.Log.Appendf("%s is engulfed, taking %d damage.", s.DisplayName(v), dmg)
			if poison != nil {
				st.Poisoned.Set(v, &component.Poisoned{Damage: poison.Damage, Duration: poison.Duration})
			}
		}
		if len(victims) == 0 {
			s.Log.Append("The blast hits nothing.")
		}
	} else if victim, ok := s.HostileAt(x, y); ok || sys.playerAt(s, x, y) {
		if !ok {
			victim = s.Player
		}
		dealt := dmg - effectiveDefense(s, victim)
		if dealt < 0 {
			dealt = 0
		}
		applyDamage(s, victim, dealt)
		if dealt == 0 {
			s.Log.Appendf("%s is hit but takes no damage.", s.DisplayName(victim))
		} else {
			s.Log.Appendf("%s is hit for %d damage.", s.DisplayName(victim), dealt)
		}
		if poison != nil {
			st.Poisoned.Set(victim, &component.Poisoned{Damage: poison.Damage, Duration: poison.Duration})
			s.Log.Appendf("%s is poisoned!", s.DisplayName(victim))
		}
	}

	sys.land(s, id)
}

// land retires the projectile: thrown durable items stay on the floor,
// everything else vanishes.
func (sys *ProjectileSystem) land(s *world.State, id ecs.EntityID) {
	st := s.Stores
	st.Projectile.Remove(id)
	if st.Item.Has(id) && !st.Consumable.Has(id) {
		return
	}
	s.ECS.Destroy(id)
}

func (sys *ProjectileSystem) playerAt(s *world.State, x, y int) bool {
	p, ok := s.PlayerPos()
	return ok && p.X == x && p.Y == y
}
