package game

import (
	"github.com/lixenwraith/void-swarm/entity"
	"github.com/lixenwraith/void-swarm/parameter"
	"github.com/lixenwraith/void-swarm/system"
	"github.com/lixenwraith/void-swarm/upgrade"
)

// PlayerView is the player state a frontend draws and reports
type PlayerView struct {
	X          float64 `msgpack:"x"`
	Y          float64 `msgpack:"y"`
	Radius     float64 `msgpack:"r"`
	HP         float64 `msgpack:"hp"`
	MaxHP      float64 `msgpack:"mhp"`
	Level      int     `msgpack:"lvl"`
	XP         int     `msgpack:"xp"`
	XPToNext   int     `msgpack:"xpn"`
	Damage     float64 `msgpack:"dmg"`
	Delay      float64 `msgpack:"delay"`
	Speed      float64 `msgpack:"spd"`
	Shield     bool    `msgpack:"sh"`
	ShieldR    float64 `msgpack:"shr"`
	Invuln     bool    `msgpack:"inv"`
	Slowed     bool    `msgpack:"slow"`
	Repulsion  float64 `msgpack:"rep"` // field radius, 0 without the upgrade
	PickupR    float64 `msgpack:"pr"`
	Projectile int     `msgpack:"proj"`
}

// PowerupView is an active buff with its progress ring
type PowerupView struct {
	Kind      string  `msgpack:"k"`
	Remaining float64 `msgpack:"rem"`
	Max       float64 `msgpack:"max"`
}

// EnemyView is one enemy
type EnemyView struct {
	Kind     uint8   `msgpack:"k"`
	X        float64 `msgpack:"x"`
	Y        float64 `msgpack:"y"`
	Radius   float64 `msgpack:"r"`
	Rotation float64 `msgpack:"rot"`
	HPRatio  float64 `msgpack:"hp"`
	Color    uint32  `msgpack:"c"`
}

// BulletView is one projectile
type BulletView struct {
	X      float64 `msgpack:"x"`
	Y      float64 `msgpack:"y"`
	Radius float64 `msgpack:"r"`
	Crit   bool    `msgpack:"crit"`
}

// OrbView is one ion orb
type OrbView struct {
	X      float64 `msgpack:"x"`
	Y      float64 `msgpack:"y"`
	Radius float64 `msgpack:"r"`
}

// PickupView is one collectible
type PickupView struct {
	X       float64 `msgpack:"x"`
	Y       float64 `msgpack:"y"`
	Radius  float64 `msgpack:"r"`
	Tier    int     `msgpack:"t"`
	Powerup string  `msgpack:"p,omitempty"`
}

// ParticleView is one cosmetic particle
type ParticleView struct {
	X     float64 `msgpack:"x"`
	Y     float64 `msgpack:"y"`
	Life  float64 `msgpack:"l"`
	Color uint32  `msgpack:"c"`
}

// WallView is one intact wall
type WallView struct {
	X            float64 `msgpack:"x"`
	Y            float64 `msgpack:"y"`
	W            float64 `msgpack:"w"`
	H            float64 `msgpack:"h"`
	Kind         string  `msgpack:"k"`
	Destructible bool    `msgpack:"d,omitempty"`
	HPRatio      float64 `msgpack:"hp,omitempty"`
}

// HazardView is one hazard zone
type HazardView struct {
	X    float64 `msgpack:"x"`
	Y    float64 `msgpack:"y"`
	W    float64 `msgpack:"w"`
	H    float64 `msgpack:"h"`
	Kind string  `msgpack:"k"`
}

// OptionView is one offered upgrade with its next-level label
type OptionView struct {
	ID      string `msgpack:"id"`
	Name    string `msgpack:"n"`
	Desc    string `msgpack:"d"`
	Stat    string `msgpack:"s"`
	Current string `msgpack:"cur"` // cumulative label at the current count
	Level   int    `msgpack:"lvl"` // count after selection
	Evolves bool   `msgpack:"evo"`
}

// CameraView is the viewport rectangle in world units
type CameraView struct {
	X      float64 `msgpack:"x"`
	Y      float64 `msgpack:"y"`
	Width  float64 `msgpack:"w"`
	Height float64 `msgpack:"h"`
}

// Snapshot is a read-only value copy of one frame for rendering
// Nothing in it aliases engine memory
type Snapshot struct {
	Tick       uint64  `msgpack:"tick"`
	State      string  `msgpack:"state"`
	Mode       string  `msgpack:"mode"`
	MapName    string  `msgpack:"map"`
	MapWidth   float64 `msgpack:"mw"`
	MapHeight  float64 `msgpack:"mh"`
	GameTime   int     `msgpack:"time"`
	Kills      int     `msgpack:"kills"`
	Difficulty float64 `msgpack:"diff"`
	Alpha      float64 `msgpack:"alpha"`

	Player    PlayerView     `msgpack:"player"`
	Powerups  []PowerupView  `msgpack:"pw"`
	Enemies   []EnemyView    `msgpack:"e"`
	Bullets   []BulletView   `msgpack:"b"`
	Orbs      []OrbView      `msgpack:"o"`
	Pickups   []PickupView   `msgpack:"pk"`
	Particles []ParticleView `msgpack:"pt"`
	Walls     []WallView     `msgpack:"w"`
	Hazards   []HazardView   `msgpack:"hz"`
	Camera    CameraView     `msgpack:"cam"`

	Options       []OptionView `msgpack:"opt,omitempty"`
	FreeRerolls   int          `msgpack:"fr"`
	RerollPoints  int          `msgpack:"rp"`
	RerollCost    int          `msgpack:"rc"`
	RerollAllowed bool         `msgpack:"ra"`
}

// Snapshot copies the current frame; pass a previous snapshot to reuse its slices
func (e *Engine) Snapshot(reuse *Snapshot) Snapshot {
	var s Snapshot
	if reuse != nil {
		s = Snapshot{
			Powerups:  reuse.Powerups[:0],
			Enemies:   reuse.Enemies[:0],
			Bullets:   reuse.Bullets[:0],
			Orbs:      reuse.Orbs[:0],
			Pickups:   reuse.Pickups[:0],
			Particles: reuse.Particles[:0],
			Walls:     reuse.Walls[:0],
			Hazards:   reuse.Hazards[:0],
			Options:   reuse.Options[:0],
		}
	}

	w := e.world
	p := w.Player
	m := w.Map

	s.Tick = e.clock.Frames()
	s.State = e.state.String()
	s.Mode = e.opts.Mode.String()
	s.MapName = m.Name
	s.MapWidth, s.MapHeight = m.Width, m.Height
	s.GameTime = e.clock.GameTime()
	s.Kills = e.score.Kills
	s.Difficulty = e.difficulty.Difficulty
	s.Alpha = e.clock.Alpha()

	s.Player = PlayerView{
		X: p.X, Y: p.Y, Radius: p.Radius,
		HP: p.HP, MaxHP: p.MaxHP,
		Level: p.Level, XP: p.XP, XPToNext: p.XPToNext,
		Damage: p.Damage, Delay: p.AttackSpeed, Speed: p.Speed,
		Shield: p.HasShield(), Invuln: p.IsInvulnerable(), Slowed: p.SlowMultiplier < 1,
		PickupR: p.PickupRange, Projectile: p.ProjectileCount,
	}
	if s.Player.Shield {
		s.Player.ShieldR = p.Radius * parameter.ShieldRadiusScale
	}
	if p.RepulsionLevel > 0 {
		s.Player.Repulsion = system.RepulsionRange(p)
	}

	for k := entity.PowerupKind(0); k < entity.PowerupCount; k++ {
		if p.Powerups[k] > 0 {
			s.Powerups = append(s.Powerups, PowerupView{Kind: k.String(), Remaining: p.Powerups[k], Max: p.ActiveMaxDurations[k]})
		}
	}

	for _, h := range e.enemies.Live() {
		en, ok := w.Enemies.Get(h)
		if !ok || !en.Alive() {
			continue
		}
		s.Enemies = append(s.Enemies, EnemyView{
			Kind: uint8(en.Kind), X: en.X, Y: en.Y, Radius: en.Radius, Rotation: en.Rotation,
			HPRatio: en.HP / en.MaxHP, Color: en.Color,
		})
	}

	for _, b := range e.bullets.Active() {
		s.Bullets = append(s.Bullets, BulletView{X: b.X, Y: b.Y, Radius: b.Radius, Crit: b.Crit})
	}

	orbs := e.weapons.IonOrbs
	for i, n := 0, system.OrbCount(p); i < n; i++ {
		x, y := orbs.Position(p, i)
		s.Orbs = append(s.Orbs, OrbView{X: x, Y: y, Radius: system.OrbSize(p)})
	}

	for _, pk := range e.pickups.Active() {
		v := PickupView{X: pk.X, Y: pk.Y, Radius: pk.Radius, Tier: pk.Tier}
		if pk.Kind == entity.PickupPowerup {
			v.Powerup = pk.Powerup.String()
		}
		s.Pickups = append(s.Pickups, v)
	}

	for _, pt := range e.particles.Active() {
		s.Particles = append(s.Particles, ParticleView{X: pt.X, Y: pt.Y, Life: pt.Life, Color: pt.Color})
	}

	for i := range m.Walls {
		wl := &m.Walls[i]
		if wl.Destroyed {
			continue
		}
		v := WallView{X: wl.X, Y: wl.Y, W: wl.W, H: wl.H, Kind: wl.Kind, Destructible: wl.Destructible}
		if wl.Destructible && wl.MaxHP > 0 {
			v.HPRatio = wl.HP / wl.MaxHP
		}
		s.Walls = append(s.Walls, v)
	}
	for i := range m.Hazards {
		hz := &m.Hazards[i]
		s.Hazards = append(s.Hazards, HazardView{X: hz.X, Y: hz.Y, W: hz.W, H: hz.H, Kind: hz.Kind.String()})
	}

	s.Camera = CameraView{X: e.camera.X, Y: e.camera.Y, Width: e.camera.Width, Height: e.camera.Height}

	for _, d := range e.offered {
		next := e.progress.Count(d.ID) + 1
		s.Options = append(s.Options, optionView(d, next))
	}
	s.FreeRerolls = e.rerolls.Free
	s.RerollPoints = e.rerolls.Points
	s.RerollCost = e.rerolls.Cost()
	s.RerollAllowed = e.rerolls.CanReroll()
	return s
}

func optionView(d *upgrade.Descriptor, next int) OptionView {
	v := OptionView{ID: string(d.ID), Name: d.Name, Desc: d.Desc, Stat: d.Stat, Current: d.CurrentStat(next - 1), Level: next}
	if d.Evolves(next) {
		v.Evolves = true
		v.Name, v.Desc = d.EvoName, d.EvoDesc
	}
	return v
}
