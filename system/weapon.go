package system

import (
	"github.com/lixenwraith/void-swarm/entity"
)

// WeaponContext is the per-tick view weapons read from
type WeaponContext struct {
	World   *entity.World
	Camera  *Camera
	Bullets *BulletManager
}

// Weapon is a behavior reading the player's stats each tick
// Weapons never share cooldowns or accumulators
type Weapon interface {
	Update(ctx *WeaponContext, delta float64)
	Reset()
}

// WeaponManager drives the concurrent weapon behaviors in a fixed order
type WeaponManager struct {
	MainGun   *MainGun
	IonOrbs   *IonOrbs
	Repulsion *RepulsionField

	weapons []Weapon
}

// NewWeaponManager creates the three built-in weapons
func NewWeaponManager() *WeaponManager {
	wm := &WeaponManager{
		MainGun:   &MainGun{},
		IonOrbs:   &IonOrbs{},
		Repulsion: &RepulsionField{},
	}
	wm.weapons = []Weapon{wm.MainGun, wm.IonOrbs, wm.Repulsion}
	return wm
}

// Update ticks every weapon
func (wm *WeaponManager) Update(ctx *WeaponContext, delta float64) {
	if ctx.World.Player.Dead {
		return
	}
	for _, w := range wm.weapons {
		w.Update(ctx, delta)
	}
}

// Reset clears every weapon's accumulators for a new run
func (wm *WeaponManager) Reset() {
	for _, w := range wm.weapons {
		w.Reset()
	}
}
