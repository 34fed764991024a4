package upgrade

import (
	"fmt"

	"github.com/lixenwraith/void-swarm/entity"
	"github.com/lixenwraith/void-swarm/parameter"
	"github.com/lixenwraith/void-swarm/vmath"
)

// Result reports a resolved application
type Result struct {
	ID      ID
	Count   int
	Evolved bool
}

// Progress is the per-run upgrade state; a new run starts from a fresh Progress
type Progress struct {
	counts map[ID]int
}

// NewProgress creates empty run progress
func NewProgress() *Progress {
	return &Progress{counts: make(map[ID]int, len(table))}
}

// Count returns how many times an upgrade was taken this run
func (pr *Progress) Count(id ID) int {
	return pr.counts[id]
}

// Counts returns a copy of all non-zero counts
func (pr *Progress) Counts() map[ID]int {
	out := make(map[ID]int, len(pr.counts))
	for id, c := range pr.counts {
		if c > 0 {
			out[id] = c
		}
	}
	return out
}

// IsMaxed reports whether an upgrade can no longer be offered
func (pr *Progress) IsMaxed(id ID) bool {
	d, ok := byID[id]
	if !ok {
		return true
	}
	return d.IsMaxed(pr.counts[id])
}

// Apply increments an upgrade and runs its effect
// Evolution replaces the normal effect on threshold counts; modifier effects recalculate before returning
func (pr *Progress) Apply(p *entity.Player, id ID) (Result, error) {
	d, ok := byID[id]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownUpgrade, id)
	}
	count := pr.counts[id]
	if d.IsMaxed(count) {
		return Result{}, fmt.Errorf("%w: %s at %d", ErrUpgradeMaxed, id, count)
	}

	count++
	pr.counts[id] = count

	res := Result{ID: id, Count: count, Evolved: d.Evolves(count)}
	if res.Evolved {
		d.evoApply(p)
	} else {
		d.apply(p)
	}
	if d.Effect == EffectModifier {
		p.RecalculateStats()
	}
	return res, nil
}

// RollOptions draws up to n distinct non-maxed upgrades
func (pr *Progress) RollOptions(rng *vmath.FastRand, n int) []*Descriptor {
	pool := make([]*Descriptor, 0, len(table))
	for _, d := range table {
		if !d.IsMaxed(pr.counts[d.ID]) {
			pool = append(pool, d)
		}
	}
	// Partial Fisher-Yates
	if n > len(pool) {
		n = len(pool)
	}
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

// Rerolls tracks the per-run reroll economy
type Rerolls struct {
	Free   int
	Points int
	Paid   int
}

// NewRerolls starts a run with the free allowance
func NewRerolls() Rerolls {
	return Rerolls{Free: parameter.FreeRerolls}
}

// Cost returns the point price of the next paid reroll
func (r *Rerolls) Cost() int {
	return parameter.RerollCostStep * (r.Paid + 1)
}

// CanReroll reports whether a free or affordable paid reroll exists
func (r *Rerolls) CanReroll() bool {
	return r.Free > 0 || r.Points >= r.Cost()
}

// Spend consumes a free reroll first, then points
func (r *Rerolls) Spend() error {
	if r.Free > 0 {
		r.Free--
		return nil
	}
	cost := r.Cost()
	if r.Points < cost {
		return fmt.Errorf("%w: need %d points, have %d", ErrNoReroll, cost, r.Points)
	}
	r.Points -= cost
	r.Paid++
	return nil
}

// AddPoints credits reroll points
func (r *Rerolls) AddPoints(n int) {
	if n > 0 {
		r.Points += n
	}
}
