package upgrade

import (
	"fmt"
	"math"

	"github.com/lixenwraith/void-swarm/entity"
	"github.com/lixenwraith/void-swarm/parameter"
)

const evolutionInterval = parameter.EvolutionInterval

// evoBonus counts cumulative levels including the extra levels granted by evolutions
func evoBonus(c, extra int) int {
	return c + c/evolutionInterval*extra
}

var table = []*Descriptor{
	{
		ID: Multishot, Name: "MULTISHOT", Desc: "Adds an additional projectile.", Stat: "+1 Projectile",
		EvoName: "MULTISHOT II", EvoDesc: "EVOLUTION: +2 Projectiles instantly.",
		MaxLevel: 15,
		apply:    func(p *entity.Player) { p.ProjectileCount++ },
		evoApply: func(p *entity.Player) { p.ProjectileCount += 2 },
		label:    func(c int) string { return fmt.Sprintf("+%d Proj", evoBonus(c, 1)) },
	},
	{
		ID: Haste, Name: "ATTACK SPEED", Desc: "Increases firing rate.", Stat: "+30% Attack Speed",
		EvoName: "BURST MODE", EvoDesc: "EVOLUTION: Massive Attack Speed Boost.",
		MaxLevel: 15, Effect: EffectModifier,
		apply:    func(p *entity.Player) { p.Modifiers.AttackSpeed += 0.30 },
		evoApply: func(p *entity.Player) { p.Modifiers.AttackSpeed += 0.6 },
		label:    func(c int) string { return fmt.Sprintf("+%d%% Speed", evoBonus(c, 1)*30) },
	},
	{
		ID: Damage, Name: "DAMAGE", Desc: "Increases projectile damage.", Stat: "+25% Damage",
		EvoName: "POWER SURGE", EvoDesc: "EVOLUTION: +50% Damage.",
		MaxLevel: 15, Effect: EffectModifier,
		apply:    func(p *entity.Player) { p.Modifiers.Damage += 0.25 },
		evoApply: func(p *entity.Player) { p.Modifiers.Damage += 0.5 },
		label:    func(c int) string { return fmt.Sprintf("+%d%% Dmg", evoBonus(c, 1)*25) },
	},
	{
		ID: Speed, Name: "MOVE SPEED", Desc: "Increases movement speed.", Stat: "+15% Move Speed",
		EvoName: "HYPERTHREADING", EvoDesc: "EVOLUTION: Massive Speed + Max HP.",
		MaxLevel: 10,
		apply:    func(p *entity.Player) { p.Speed *= 1.15 },
		evoApply: func(p *entity.Player) {
			p.Speed *= 1.4
			p.MaxHP += 50
			p.HP += 50
		},
		label: func(c int) string {
			evos := c / evolutionInterval
			mult := math.Pow(1.15, float64(c-evos)) * math.Pow(1.4, float64(evos))
			return fmt.Sprintf("+%d%% Speed", int(math.Round((mult-1)*100)))
		},
	},
	{
		ID: Pierce, Name: "PIERCE", Desc: "Projectiles pass through enemies.", Stat: "+1 Pierce",
		EvoName: "SPECTRAL PIERCE", EvoDesc: "EVOLUTION: +3 Pierce & Velocity.",
		MaxLevel: 8,
		apply:    func(p *entity.Player) { p.Pierce++ },
		evoApply: func(p *entity.Player) {
			p.Pierce += 3
			p.BulletSpeed += 5
		},
		label: func(c int) string { return fmt.Sprintf("+%d Pierce", evoBonus(c, 2)) },
	},
	{
		ID: MaxHP, Name: "MAX HP", Desc: "Increases maximum health.", Stat: "+150 Max HP",
		EvoName: "IRON CORE", EvoDesc: "EVOLUTION: +75 Max HP & 50% Heal.",
		MaxLevel: 15,
		apply: func(p *entity.Player) {
			p.MaxHP += 150
			p.HP += 150
		},
		evoApply: func(p *entity.Player) {
			p.MaxHP += 75
			p.HP = math.Min(p.MaxHP, p.HP+p.MaxHP*0.5)
		},
		label: func(c int) string { return fmt.Sprintf("+%d HP", c*150-c/evolutionInterval*75) },
	},
	{
		ID: Regen, Name: "REGEN", Desc: "Repairs health over time.", Stat: "+5 HP / Sec",
		EvoName: "RAPID REPAIR", EvoDesc: "EVOLUTION: +5 Regeneration/sec.",
		MaxLevel: 10,
		apply:    func(p *entity.Player) { p.Regen += 5 },
		evoApply: func(p *entity.Player) { p.Regen += 5 },
		label:    func(c int) string { return fmt.Sprintf("+%d HP/s", c*5) },
	},
	{
		ID: BulletSize, Name: "BULLET SIZE", Desc: "Increases projectile size.", Stat: "+1 Bullet Size",
		EvoName: "MEGA ROUNDS", EvoDesc: "EVOLUTION: +2 Bullet Size.",
		MaxLevel: 5,
		apply:    func(p *entity.Player) { p.BulletSize++ },
		evoApply: func(p *entity.Player) { p.BulletSize += 2 },
		label:    func(c int) string { return fmt.Sprintf("+%d Size", evoBonus(c, 1)) },
	},
	{
		ID: Repulsion, Name: "REPULSION FIELD", Desc: "Pushes enemies. DMG scales with MAX HP. Rate scales with REGEN.",
		Stat: "+Range/Force/Dmg", EvoName: "NOVA WAVE", EvoDesc: "EVOLUTION: Massive Radius & Double damage.",
		MaxLevel: 10, Category: CategoryWeapon, Evolve: EvolveOnce,
		ScalesWith: []ID{Damage, MaxHP, Regen, BulletSize, CritChance, CritDamage},
		apply:      func(p *entity.Player) { p.RepulsionLevel++ },
		evoApply:   func(p *entity.Player) { p.RepulsionLevel += 5 },
		label:      func(c int) string { return fmt.Sprintf("Level %d", evoBonus(c, 4)) },
	},
	{
		ID: IonOrbs, Name: "ION ORBS", Desc: "Orbiting plasma. Scales with COUNT, SIZE, SPEED.", Stat: "+1 Orb / Speed",
		EvoName: "ELECTRON CLOUD", EvoDesc: "EVOLUTION: Double Orbs & High Speed.",
		MaxLevel: 10, Category: CategoryWeapon,
		ScalesWith: []ID{Multishot, BulletSize, Speed, Damage},
		apply:      func(p *entity.Player) { p.IonOrbsLevel++ },
		evoApply:   func(p *entity.Player) { p.IonOrbsLevel += 5 },
		label:      func(c int) string { return fmt.Sprintf("Level %d", c) },
	},
	{
		ID: CritChance, Name: "CRIT CHANCE", Desc: "Increases critical hit probability.", Stat: "+25% Crit Chance",
		EvoName: "CERTAIN DOOM", EvoDesc: "MAX LEVEL: +25% Crit Chance.",
		MaxLevel: 3,
		apply:    addCritChance,
		evoApply: addCritChance,
		label:    func(c int) string { return fmt.Sprintf("+%d%% Chance", c*25) },
	},
	{
		ID: CritDamage, Name: "CRIT DAMAGE", Desc: "Increases critical hit damage.", Stat: "+15% Crit Dmg",
		EvoName: "FATAL ERROR", EvoDesc: "EVOLUTION: +30% Crit Dmg.",
		MaxLevel: 10,
		apply:    func(p *entity.Player) { p.CritMultiplier += 0.15 },
		evoApply: func(p *entity.Player) { p.CritMultiplier += 0.30 },
		label:    func(c int) string { return fmt.Sprintf("+%d%% Dmg", evoBonus(c, 1)*15) },
	},
}

func addCritChance(p *entity.Player) {
	p.CritChance = math.Min(1, p.CritChance+0.25)
}

var byID = func() map[ID]*Descriptor {
	m := make(map[ID]*Descriptor, len(table))
	for _, d := range table {
		m[d.ID] = d
	}
	return m
}()
