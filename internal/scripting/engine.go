package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM for tunable game formulas.
// Single-goroutine access only (game loop). A nil *Engine is valid and
// answers every calculation with the built-in defaults.
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads all scripts from the given directory.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}

	for _, sub := range []string{"effects", "character"} {
		p := filepath.Join(scriptsDir, sub)
		if err := e.loadDir(p); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load %s scripts: %w", sub, err)
		}
	}

	return e, nil
}

// Close releases the VM.
func (e *Engine) Close() {
	if e != nil && e.vm != nil {
		e.vm.Close()
	}
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// HealContext holds pre-packed data for a healing-item calculation.
type HealContext struct {
	Amount    int // item's listed healing
	CurrentHP int
	MaxHP     int
	Level     int
}

// HealResult is returned by the Lua calc_heal function.
type HealResult struct {
	Healed int // actual HP restored, never past max
}

func defaultHeal(ctx HealContext) HealResult {
	healed := ctx.Amount
	if room := ctx.MaxHP - ctx.CurrentHP; healed > room {
		healed = room
	}
	if healed < 0 {
		healed = 0
	}
	return HealResult{Healed: healed}
}

// CalcHeal calls the Lua calc_heal function, falling back to the built-in
// formula when no script defines it.
func (e *Engine) CalcHeal(ctx HealContext) HealResult {
	if e == nil {
		return defaultHeal(ctx)
	}
	fn := e.vm.GetGlobal("calc_heal")
	if fn == lua.LNil {
		return defaultHeal(ctx)
	}

	t := e.vm.NewTable()
	t.RawSetString("amount", lua.LNumber(ctx.Amount))
	t.RawSetString("current_hp", lua.LNumber(ctx.CurrentHP))
	t.RawSetString("max_hp", lua.LNumber(ctx.MaxHP))
	t.RawSetString("level", lua.LNumber(ctx.Level))

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, t); err != nil {
		e.log.Error("lua calc_heal error", zap.Error(err))
		return defaultHeal(ctx)
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		e.log.Error("lua calc_heal returned non-table")
		return defaultHeal(ctx)
	}

	healed := int(lua.LVAsNumber(rt.RawGetString("healed")))
	if room := ctx.MaxHP - ctx.CurrentHP; healed > room {
		healed = room
	}
	if healed < 0 {
		healed = 0
	}
	return HealResult{Healed: healed}
}

// LevelUpContext holds the player's state at the moment of leveling.
type LevelUpContext struct {
	Level       int // level being left
	NextLevelXP int // threshold just crossed
	MaxHP       int
	MaxMana     int
}

// LevelUpResult is the growth granted by one level.
type LevelUpResult struct {
	HPGain      int
	ManaGain    int
	PowerGain   int
	DefenseGain int
	NextLevelXP int
}

func defaultLevelUp(ctx LevelUpContext) LevelUpResult {
	return LevelUpResult{
		HPGain:      10,
		ManaGain:    5,
		PowerGain:   1,
		DefenseGain: 1,
		NextLevelXP: ctx.NextLevelXP * 3 / 2,
	}
}

// CalcLevelUp calls the Lua calc_level_up function, falling back to the
// built-in growth table when no script defines it.
func (e *Engine) CalcLevelUp(ctx LevelUpContext) LevelUpResult {
	if e == nil {
		return defaultLevelUp(ctx)
	}
	fn := e.vm.GetGlobal("calc_level_up")
	if fn == lua.LNil {
		return defaultLevelUp(ctx)
	}

	t := e.vm.NewTable()
	t.RawSetString("level", lua.LNumber(ctx.Level))
	t.RawSetString("next_level_xp", lua.LNumber(ctx.NextLevelXP))
	t.RawSetString("max_hp", lua.LNumber(ctx.MaxHP))
	t.RawSetString("max_mana", lua.LNumber(ctx.MaxMana))

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, t); err != nil {
		e.log.Error("lua calc_level_up error", zap.Error(err))
		return defaultLevelUp(ctx)
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		e.log.Error("lua calc_level_up returned non-table")
		return defaultLevelUp(ctx)
	}

	out := LevelUpResult{
		HPGain:      int(lua.LVAsNumber(rt.RawGetString("hp_gain"))),
		ManaGain:    int(lua.LVAsNumber(rt.RawGetString("mana_gain"))),
		PowerGain:   int(lua.LVAsNumber(rt.RawGetString("power_gain"))),
		DefenseGain: int(lua.LVAsNumber(rt.RawGetString("defense_gain"))),
		NextLevelXP: int(lua.LVAsNumber(rt.RawGetString("next_level_xp"))),
	}
	if out.NextLevelXP <= ctx.NextLevelXP {
		// A script must always raise the bar or progression stalls.
		out.NextLevelXP = defaultLevelUp(ctx).NextLevelXP
	}
	return out
}
