package upgrade

import (
	"errors"
	"testing"

	"github.com/lixenwraith/void-swarm/entity"
	"github.com/lixenwraith/void-swarm/parameter"
	"github.com/lixenwraith/void-swarm/vmath"
)

func newPlayer() *entity.Player {
	return entity.NewPlayer(0, 0, parameter.ModeMedium)
}

// TestEvolutionThreshold verifies evoApply fires exactly on the 5th and 10th selection
func TestEvolutionThreshold(t *testing.T) {
	p := newPlayer()
	pr := NewProgress()

	var evolved []int
	for i := 1; i <= 10; i++ {
		res, err := pr.Apply(p, Multishot)
		if err != nil {
			t.Fatalf("Apply %d: %v", i, err)
		}
		if res.Evolved {
			evolved = append(evolved, res.Count)
		}
	}
	if len(evolved) != 2 || evolved[0] != 5 || evolved[1] != 10 {
		t.Errorf("Expected evolutions at 5 and 10, got %v", evolved)
	}
	// 1 base + 8 normal + 2 evolutions of 2
	if p.ProjectileCount != 13 {
		t.Errorf("Expected 13 projectiles, got %d", p.ProjectileCount)
	}
}

// TestRepulsionEvolvesOnce verifies the one-time evolution at count 5
func TestRepulsionEvolvesOnce(t *testing.T) {
	p := newPlayer()
	pr := NewProgress()

	evolutions := 0
	for i := 1; i <= 10; i++ {
		res, err := pr.Apply(p, Repulsion)
		if err != nil {
			t.Fatalf("Apply %d: %v", i, err)
		}
		if res.Evolved {
			evolutions++
			if res.Count != 5 {
				t.Errorf("Expected evolution at 5, got %d", res.Count)
			}
		}
	}
	if evolutions != 1 {
		t.Errorf("Expected exactly one evolution, got %d", evolutions)
	}
	// 9 normal levels + 5 from the evolution
	if p.RepulsionLevel != 14 {
		t.Errorf("Expected repulsion level 14, got %d", p.RepulsionLevel)
	}
}

// TestModifierUpgradeRecalculates verifies modifier upgrades update derived stats atomically
func TestModifierUpgradeRecalculates(t *testing.T) {
	p := newPlayer()
	pr := NewProgress()

	if _, err := pr.Apply(p, Damage); err != nil {
		t.Fatal(err)
	}
	if p.Damage != 31 {
		t.Errorf("Expected damage 31 after upgrade, got %v", p.Damage)
	}

	if _, err := pr.Apply(p, Haste); err != nil {
		t.Fatal(err)
	}
	want := parameter.PlayerAttackDelay / 1.3
	if d := p.AttackSpeed - want; d > 1e-9 || d < -1e-9 {
		t.Errorf("Expected delay %v, got %v", want, p.AttackSpeed)
	}
}

// TestMaxedAndUnknown verifies error paths leave state untouched
func TestMaxedAndUnknown(t *testing.T) {
	p := newPlayer()
	pr := NewProgress()

	for i := 0; i < 3; i++ {
		if _, err := pr.Apply(p, CritChance); err != nil {
			t.Fatal(err)
		}
	}
	if p.CritChance != 0.75 {
		t.Errorf("Expected crit chance 0.75, got %v", p.CritChance)
	}
	if _, err := pr.Apply(p, CritChance); !errors.Is(err, ErrUpgradeMaxed) {
		t.Errorf("Expected ErrUpgradeMaxed, got %v", err)
	}
	if pr.Count(CritChance) != 3 {
		t.Errorf("Expected count to stay 3, got %d", pr.Count(CritChance))
	}
	if _, err := pr.Apply(p, ID("laser")); !errors.Is(err, ErrUnknownUpgrade) {
		t.Errorf("Expected ErrUnknownUpgrade, got %v", err)
	}
}

// TestProgressIsPerRun verifies a new progress starts from zero
func TestProgressIsPerRun(t *testing.T) {
	first := NewProgress()
	first.Apply(newPlayer(), Pierce)
	second := NewProgress()
	if second.Count(Pierce) != 0 {
		t.Errorf("Expected fresh progress, got %d", second.Count(Pierce))
	}
}

// TestCurrentStatLabels verifies labels account for evolutions
func TestCurrentStatLabels(t *testing.T) {
	cases := []struct {
		id    ID
		count int
		want  string
	}{
		{Multishot, 5, "+6 Proj"},
		{Speed, 5, "+145% Speed"},
		{Repulsion, 5, "Level 9"},
		{MaxHP, 5, "+675 HP"},
		{Pierce, 5, "+7 Pierce"},
		{CritChance, 2, "+50% Chance"},
	}
	for _, tc := range cases {
		d, ok := Get(tc.id)
		if !ok {
			t.Fatalf("Missing %s", tc.id)
		}
		if got := d.CurrentStat(tc.count); got != tc.want {
			t.Errorf("%s(%d): expected %q, got %q", tc.id, tc.count, tc.want, got)
		}
	}
}

// TestRollOptions verifies distinct non-maxed choices
func TestRollOptions(t *testing.T) {
	p := newPlayer()
	pr := NewProgress()
	rng := vmath.NewFastRand(9)

	for i := 0; i < 50; i++ {
		opts := pr.RollOptions(rng, parameter.UpgradeChoices)
		if len(opts) != 3 {
			t.Fatalf("Expected 3 options, got %d", len(opts))
		}
		seen := map[ID]bool{}
		for _, o := range opts {
			if seen[o.ID] {
				t.Fatalf("Duplicate option %s", o.ID)
			}
			seen[o.ID] = true
		}
	}

	// Max everything except size
	for _, d := range All() {
		if d.ID == BulletSize {
			continue
		}
		for !pr.IsMaxed(d.ID) {
			pr.Apply(p, d.ID)
		}
	}
	opts := pr.RollOptions(rng, 3)
	if len(opts) != 1 || opts[0].ID != BulletSize {
		t.Errorf("Expected only size to remain, got %d options", len(opts))
	}
}

// TestRerollEconomy verifies free rerolls then escalating paid cost
func TestRerollEconomy(t *testing.T) {
	r := NewRerolls()
	for i := 0; i < 3; i++ {
		if err := r.Spend(); err != nil {
			t.Fatalf("Free reroll %d: %v", i, err)
		}
	}
	if err := r.Spend(); !errors.Is(err, ErrNoReroll) {
		t.Errorf("Expected ErrNoReroll, got %v", err)
	}

	r.AddPoints(200)
	if err := r.Spend(); err != nil {
		t.Fatalf("Paid reroll: %v", err)
	}
	if r.Points != 125 || r.Cost() != 150 {
		t.Errorf("Expected 125 points and next cost 150, got %d and %d", r.Points, r.Cost())
	}
	if r.CanReroll() {
		t.Error("Expected unaffordable second paid reroll")
	}
}
