package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/void-swarm/entity"
	"github.com/lixenwraith/void-swarm/event"
	"github.com/lixenwraith/void-swarm/parameter"
)

func newWeaponContext(px, py float64) (*WeaponContext, *EnemyManager, *event.EventQueue) {
	w, q := newWorld(px, py)
	cam := NewCamera(800, 600)
	cam.Snap(px, py, w.Map.Width, w.Map.Height)
	m := NewEnemyManager(w, NewDifficultyManager(parameter.ModeMedium))
	m.SpawnDisabled = true
	return &WeaponContext{World: w, Camera: cam, Bullets: NewBulletManager()}, m, q
}

// TestFanOffset verifies the alternating spread sequence
func TestFanOffset(t *testing.T) {
	want := []float64{0, 1, -1, 2, -2, 3, -3}
	for i, v := range want {
		if got := FanOffset(i); got != v {
			t.Errorf("FanOffset(%d): expected %v, got %v", i, v, got)
		}
	}
}

// TestMainGunFiresVolley verifies projectile count, heading and cooldown
func TestMainGunFiresVolley(t *testing.T) {
	ctx, m, q := newWeaponContext(500, 500)
	m.SpawnAt(entity.EnemyBasic, 600, 500, 1)
	p := ctx.World.Player
	p.ProjectileCount = 3

	gun := &MainGun{}
	gun.Update(ctx, 1)

	bullets := ctx.Bullets.Active()
	if len(bullets) != 3 {
		t.Fatalf("Expected 3 bullets, got %d", len(bullets))
	}
	if math.Abs(bullets[0].VX-p.BulletSpeed) > 1e-9 || math.Abs(bullets[0].VY) > 1e-9 {
		t.Errorf("Expected first bullet straight at target, got (%v,%v)", bullets[0].VX, bullets[0].VY)
	}
	if bullets[1].VY <= 0 || bullets[2].VY >= 0 {
		t.Errorf("Expected fan on both sides, got %v and %v", bullets[1].VY, bullets[2].VY)
	}
	if gun.Cooldown != p.AttackSpeed {
		t.Errorf("Expected cooldown %v, got %v", p.AttackSpeed, gun.Cooldown)
	}
	if countType(q.Drain(nil), event.EventSoundRequest) != 1 {
		t.Error("Expected one shoot cue per volley")
	}

	gun.Update(ctx, 1)
	if len(ctx.Bullets.Active()) != 3 {
		t.Error("Expected no fire during cooldown")
	}
}

// TestMainGunTargeting verifies range and visibility filters
func TestMainGunTargeting(t *testing.T) {
	ctx, m, _ := newWeaponContext(500, 500)
	m.SpawnAt(entity.EnemyBasic, 500, 950, 1) // in range, below the viewport
	if NearestTarget(ctx.World, ctx.Camera) != nil {
		t.Error("Expected off-screen enemy to be ignored")
	}

	near := m.SpawnAt(entity.EnemyBasic, 560, 500, 1)
	m.SpawnAt(entity.EnemyBasic, 300, 500, 1)
	target := NearestTarget(ctx.World, ctx.Camera)
	if target == nil || target.Handle != near {
		t.Fatalf("Expected nearest enemy, got %v", target)
	}

	target.TakeHit(1e6)
	if got := NearestTarget(ctx.World, ctx.Camera); got == nil || got.Handle == near {
		t.Error("Expected dead enemy to be skipped")
	}
}

// TestIonOrbGeometry verifies count, size and orbit helpers
func TestIonOrbGeometry(t *testing.T) {
	p := entity.NewPlayer(0, 0, parameter.ModeMedium)
	if OrbCount(p) != 0 {
		t.Errorf("Expected no orbs before upgrade, got %d", OrbCount(p))
	}
	p.IonOrbsLevel = 1
	p.ProjectileCount = 3
	if OrbCount(p) != 4 {
		t.Errorf("Expected 4 orbs, got %d", OrbCount(p))
	}
	if OrbSize(p) != 19.5 {
		t.Errorf("Expected orb size 19.5, got %v", OrbSize(p))
	}
	if OrbitRadius(p) != 170.5 {
		t.Errorf("Expected orbit radius 170.5, got %v", OrbitRadius(p))
	}

	o := &IonOrbs{}
	x, y := o.Position(p, 1)
	if math.Abs(x) > 1e-9 || math.Abs(y-170.5) > 1e-9 {
		t.Errorf("Expected second of four orbs at quarter turn, got (%v,%v)", x, y)
	}
}

// TestIonOrbsDamageOnEvenFrames verifies the damage throttle
func TestIonOrbsDamageOnEvenFrames(t *testing.T) {
	ctx, m, _ := newWeaponContext(500, 500)
	w := ctx.World
	p := w.Player
	p.IonOrbsLevel = 1

	o := &IonOrbs{}
	// Just outside the first orb at its post-advance angle
	a := parameter.OrbAngularSpeed
	r := OrbitRadius(p) + 10
	h := m.SpawnAt(entity.EnemyTank, p.X+math.Cos(a)*r, p.Y+math.Sin(a)*r, 0)
	e, _ := w.Enemies.Get(h)
	hp := e.HP

	w.Frame = 1
	o.Angle = -a
	o.Update(ctx, 1)
	if e.HP != hp {
		t.Fatalf("Expected no damage on odd frame, got %v", hp-e.HP)
	}

	w.Frame = 2
	o.Angle = 0
	o.Update(ctx, 1)
	if e.HP >= hp {
		t.Error("Expected orb damage on even frame")
	}
	if e.PushX <= 0 {
		t.Errorf("Expected outward knockback, got %v", e.PushX)
	}
}

// TestRepulsionHelpers verifies range, tick rate and damage formulas
func TestRepulsionHelpers(t *testing.T) {
	p := entity.NewPlayer(0, 0, parameter.ModeMedium)
	p.RepulsionLevel = 1
	if r := RepulsionRange(p); r != 130 {
		t.Errorf("Expected range 130, got %v", r)
	}
	p.RepulsionLevel = 20
	if r := RepulsionRange(p); r != 270 {
		t.Errorf("Expected capped range 270, got %v", r)
	}

	if rate := RepulsionTickRate(0); rate != 15 {
		t.Errorf("Expected 15 ticks, got %d", rate)
	}
	if rate := RepulsionTickRate(1); rate != 14 {
		t.Errorf("Expected 14 ticks, got %d", rate)
	}
	if rate := RepulsionTickRate(100); rate != parameter.RepulsionMinTickRate {
		t.Errorf("Expected floor %d, got %d", parameter.RepulsionMinTickRate, rate)
	}

	p.RepulsionLevel = 1
	// floor(25*0.5 + floor(300*0.05)) = 27
	if dmg := RepulsionDamage(p); dmg != 27 {
		t.Errorf("Expected 27 damage, got %v", dmg)
	}
}

// TestRepulsionFieldBurn verifies push every tick and damage on the tick interval
func TestRepulsionFieldBurn(t *testing.T) {
	ctx, m, _ := newWeaponContext(500, 500)
	w := ctx.World
	w.Player.RepulsionLevel = 1
	h := m.SpawnAt(entity.EnemyTank, 600, 500, 0)
	e, _ := w.Enemies.Get(h)
	hp := e.HP

	field := &RepulsionField{}
	w.Frame = 1
	field.Update(ctx, 1)
	if e.HP != hp {
		t.Error("Expected no burn off interval")
	}
	if e.PushX <= 0 {
		t.Errorf("Expected outward push, got %v", e.PushX)
	}

	w.Frame = 14
	field.Update(ctx, 1)
	if e.HP != hp-27 {
		t.Errorf("Expected hp %v, got %v", hp-27, e.HP)
	}
}

// TestWeaponManagerSkipsDeadPlayer verifies weapons stop after game over
func TestWeaponManagerSkipsDeadPlayer(t *testing.T) {
	ctx, m, _ := newWeaponContext(500, 500)
	m.SpawnAt(entity.EnemyBasic, 600, 500, 1)
	ctx.World.Player.Dead = true

	wm := NewWeaponManager()
	wm.Update(ctx, 1)
	if len(ctx.Bullets.Active()) != 0 {
		t.Error("Expected no fire from a dead player")
	}
}

// TestBulletManagerRecycles verifies pooled reuse after expiry
func TestBulletManagerRecycles(t *testing.T) {
	w, _ := newWorld(500, 500)
	bm := NewBulletManager()
	bm.Spawn(100, 100, 1, 0, 10, 1, 5, false)
	for i := 0; i < parameter.BulletLifeTicks; i++ {
		bm.Update(w, 1)
	}
	if len(bm.Active()) != 0 {
		t.Fatalf("Expected bullet expired, got %d", len(bm.Active()))
	}
	bm.Spawn(100, 100, 1, 0, 10, 1, 5, false)
	if bm.pool.Created() != 1 {
		t.Errorf("Expected pooled reuse, created %d", bm.pool.Created())
	}
}
