package system

import (
	"math"

	"github.com/lixenwraith/void-swarm/engine"
	"github.com/lixenwraith/void-swarm/entity"
	"github.com/lixenwraith/void-swarm/event"
	"github.com/lixenwraith/void-swarm/parameter"
)

// EnemyManager owns the enemy population: spawning, per-tick updates and death sweeps
type EnemyManager struct {
	world      *entity.World
	difficulty *DifficultyManager
	live       []engine.Handle
	kinds      []entity.EnemyKind
	gameTime   float64

	// SpawnDisabled stops the spawn scheduler; existing enemies still update
	SpawnDisabled bool
}

// NewEnemyManager creates a manager bound to the shared world context
func NewEnemyManager(w *entity.World, d *DifficultyManager) *EnemyManager {
	return &EnemyManager{
		world:      w,
		difficulty: d,
		live:       make([]engine.Handle, 0, 256),
		kinds:      make([]entity.EnemyKind, 0, entity.EnemyKindCount),
	}
}

// Update runs spawn logic, updates every live enemy, sweeps the dead and rebuilds the hash
func (m *EnemyManager) Update(delta, gameTime float64, playerLevel int) {
	m.gameTime = gameTime
	w := m.world

	m.sweep()
	w.RebuildHash(m.live)

	if !m.SpawnDisabled {
		m.spawnLogic(playerLevel)
	}

	for _, h := range m.live {
		if e, ok := w.Enemies.Get(h); ok && e.Alive() {
			e.Update(w, delta)
		}
	}

	m.sweep()
	w.RebuildHash(m.live)
}

// Sweep releases dead enemies outside the regular update
func (m *EnemyManager) Sweep() {
	m.sweep()
	m.world.RebuildHash(m.live)
}

// sweep emits a death event for each enemy at hp <= 0, then returns it to the arena
func (m *EnemyManager) sweep() {
	w := m.world
	kept := m.live[:0]
	for _, h := range m.live {
		e, ok := w.Enemies.Get(h)
		if !ok {
			continue
		}
		if e.Alive() {
			kept = append(kept, h)
			continue
		}
		w.Events.Emit(event.EventEnemyDied, event.EnemyDiedPayload{
			X:              e.X,
			Y:              e.Y,
			Kind:           uint8(e.Kind),
			XP:             e.XP,
			KilledByShield: e.KilledByShield,
		})
		w.Enemies.Release(h)
	}
	m.live = kept
}

// SpawnChance returns the per-tick spawn probability
func SpawnChance(gameTime, difficulty, spawnMult float64) float64 {
	ramp := math.Min(1, parameter.SpawnRampStart+(gameTime/parameter.SpawnRampSeconds)*(1-parameter.SpawnRampStart))
	return math.Min(parameter.SpawnMaxChance, parameter.SpawnBaseChance*spawnMult*math.Max(1, difficulty)*ramp)
}

// PopulationCap returns the soft population ceiling for a game time
func PopulationCap(gameTime float64) float64 {
	return parameter.PopulationBase + gameTime*parameter.PopulationPerSecond
}

func (m *EnemyManager) spawnLogic(playerLevel int) {
	rng := m.world.RNG
	chance := SpawnChance(m.gameTime, m.difficulty.Difficulty, m.difficulty.Settings().SpawnMult)
	if float64(len(m.live)) >= PopulationCap(m.gameTime) || rng.Float64() >= chance {
		return
	}

	m.kinds = append(m.kinds[:0], entity.EnemyBasic)
	if m.gameTime > parameter.SwarmUnlockSeconds {
		m.kinds = append(m.kinds, entity.EnemySwarm)
	}
	if m.gameTime > parameter.TankUnlockSeconds {
		m.kinds = append(m.kinds, entity.EnemyTank)
	}
	kind := m.kinds[rng.Intn(len(m.kinds))]

	// Re-roll crowded edge points
	x, y := m.edgePoint()
	for retry := 0; retry < parameter.SpawnRetries; retry++ {
		if m.world.Hash.CountNear(x, y, parameter.SpawnCrowdRadius) < parameter.SpawnCrowdLimit {
			break
		}
		x, y = m.edgePoint()
	}

	m.SpawnAt(kind, x, y, playerLevel)
}

// edgePoint picks a random point just outside one of the four world edges
func (m *EnemyManager) edgePoint() (float64, float64) {
	rng := m.world.RNG
	width, height := m.world.Map.Width, m.world.Map.Height
	buf := parameter.EnemySpawnBuffer
	switch rng.Intn(4) {
	case 0:
		return rng.Float64() * width, -buf
	case 1:
		return width + buf, rng.Float64() * height
	case 2:
		return rng.Float64() * width, height + buf
	default:
		return -buf, rng.Float64() * height
	}
}

// SpawnAt creates an enemy with stats scaled by the current difficulty and player level
func (m *EnemyManager) SpawnAt(kind entity.EnemyKind, x, y float64, playerLevel int) engine.Handle {
	w := m.world
	st := kind.Stats()
	speed := st.Speed
	if st.SpeedJitter > 0 {
		speed += w.RNG.Float64() * st.SpeedJitter
	}

	h, e := w.Enemies.Alloc()
	e.Spawn(h, kind, x, y, speed,
		m.difficulty.HP(st.HP, playerLevel),
		m.difficulty.XP(st.XP),
		m.difficulty.Damage(st.Damage),
	)
	m.live = append(m.live, h)
	w.Hash.Add(h, e.X, e.Y, e.Radius)
	return h
}

// Live returns the live enemy handles; the slice is owned by the manager
func (m *EnemyManager) Live() []engine.Handle {
	return m.live
}

// Count returns the live population
func (m *EnemyManager) Count() int {
	return len(m.live)
}

// Clear releases every enemy without death events
func (m *EnemyManager) Clear() {
	for _, h := range m.live {
		m.world.Enemies.Release(h)
	}
	m.live = m.live[:0]
	m.world.Hash.Clear()
}
