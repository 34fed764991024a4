// Package upgrade holds the immutable upgrade table and the per-run resolver that applies it
package upgrade

import (
	"errors"

	"github.com/lixenwraith/void-swarm/entity"
)

// ID names an upgrade
type ID string

const (
	Multishot  ID = "multishot"
	Haste      ID = "haste"
	Damage     ID = "damage"
	Speed      ID = "speed"
	Pierce     ID = "pierce"
	MaxHP      ID = "maxhp"
	Regen      ID = "regen"
	BulletSize ID = "size"
	Repulsion  ID = "repulsion"
	IonOrbs    ID = "ion_orbs"
	CritChance ID = "critChance"
	CritDamage ID = "critDamage"
)

// Sentinel errors
var (
	ErrUnknownUpgrade = errors.New("unknown upgrade")
	ErrUpgradeMaxed   = errors.New("upgrade at max level")
	ErrNoReroll       = errors.New("no reroll available")
)

// Category groups upgrades for display
type Category uint8

const (
	CategoryStat Category = iota
	CategoryWeapon
)

// Effect selects how the resolver finalizes an application
type Effect uint8

const (
	// EffectField mutates player fields directly
	EffectField Effect = iota
	// EffectModifier mutates player modifiers and requires recalculation
	EffectModifier
)

// Evolution selects when evoApply replaces apply
type Evolution uint8

const (
	// EvolveEvery fires on every positive multiple of the evolution interval
	EvolveEvery Evolution = iota
	// EvolveOnce fires only when the count first reaches the interval
	EvolveOnce
)

// Descriptor is an immutable upgrade definition shared by all runs
type Descriptor struct {
	ID       ID
	Name     string
	Desc     string
	Stat     string
	EvoName  string
	EvoDesc  string
	MaxLevel int
	Category Category
	Effect   Effect
	Evolve   Evolution

	// ScalesWith lists the upgrades a weapon benefits from
	ScalesWith []ID

	apply    func(p *entity.Player)
	evoApply func(p *entity.Player)
	label    func(count int) string
}

// CurrentStat returns the cumulative bonus label for a count
func (d *Descriptor) CurrentStat(count int) string {
	if d.label == nil {
		return ""
	}
	return d.label(count)
}

// Evolves reports whether the post-increment count triggers the evolution effect
func (d *Descriptor) Evolves(count int) bool {
	if d.evoApply == nil || count <= 0 {
		return false
	}
	if d.Evolve == EvolveOnce {
		return count == evolutionInterval
	}
	return count%evolutionInterval == 0
}

// IsMaxed reports whether a count has reached the level cap
func (d *Descriptor) IsMaxed(count int) bool {
	return count >= d.MaxLevel
}

// All returns the descriptors in menu order
func All() []*Descriptor {
	return table
}

// Get returns a descriptor by id
func Get(id ID) (*Descriptor, bool) {
	d, ok := byID[id]
	return d, ok
}
