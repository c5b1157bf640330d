package system

import (
	"github.com/delvegame/delve/internal/component"
	"github.com/delvegame/delve/internal/core/ecs"
	coresys "github.com/delvegame/delve/internal/core/system"
	"github.com/delvegame/delve/internal/world"
)

// ShootingSystem resolves shoot intents: one round of matching ammunition
// leaves the inventory and flies at the target. Damage is the ammunition's
// listed damage plus half the shooter's base power, ignoring equipment.
type ShootingSystem struct{}

func NewShootingSystem() *ShootingSystem { return &ShootingSystem{} }

func (sys *ShootingSystem) Phase() coresys.Phase { return coresys.PhaseTurn }

func (sys *ShootingSystem) Update(s *world.State) {
	st := s.Stores
	var shooters []ecs.EntityID
	st.WantsToShoot.EachID(func(id ecs.EntityID) {
		shooters = append(shooters, id)
	})
	for _, shooter := range shooters {
		intent, _ := st.WantsToShoot.Get(shooter)
		st.WantsToShoot.Remove(shooter)
		sys.shoot(s, shooter, intent.Target)
	}
}

func (sys *ShootingSystem) shoot(s *world.State, shooter, target ecs.EntityID) {
	st := s.Stores
	if !s.ECS.Alive(target) {
		return
	}
	eq, ok := st.Equipment.Get(shooter)
	if !ok {
		return
	}
	weapon, ok := eq.Slots[component.SlotWeapon]
	if !ok {
		return
	}
	req, ok := st.RequiresAmmo.Get(weapon)
	if !ok {
		return
	}
	round, ok := findAmmo(s, shooter, req.Type)
	if !ok {
		s.Log.Appendf("%s is out of %ss.", s.DisplayName(shooter), req.Type)
		return
	}

	dmg := basePower(s, shooter) / 2
	if d, ok := st.InflictsDamage.Get(round); ok {
		dmg += d.Damage
	}

	from, ok := st.Position.Get(shooter)
	if !ok {
		return
	}
	to, ok := st.Position.Get(target)
	if !ok {
		return
	}

	removeFromInventory(s, shooter, round)
	s.ECS.Destroy(round)

	path := flightPath(s, from.X, from.Y, to.X, to.Y)
	spawnBolt(s, shooter, path, '-', "white", dmg)
	s.Log.Appendf("%s fires at %s.", s.DisplayName(shooter), s.DisplayName(target))
}
