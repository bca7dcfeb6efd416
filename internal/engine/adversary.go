package engine

// Rand is the random source the engine draws from.
// *math/rand.Rand satisfies it; tests substitute scripted sources.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Adversary is a roaming hostile entity.
type Adversary struct {
	Slot int // Spawn slot; stable identity for presentation
	Pos  Pos
	Dir  Dir
	Home Pos
}

// sendHome puts the adversary back on its spawn cell heading out.
func (a *Adversary) sendHome(exit Dir) {
	a.Pos = a.Home
	a.Dir = exit
}

// Controller steers adversaries. Each tick it may pick a new open heading at
// random, then moves the adversary one resolver step.
type Controller struct {
	rng            Rand
	redirectChance float64
}

// NewController creates a controller that redirects with the given per-tick chance.
func NewController(rng Rand, redirectChance float64) *Controller {
	return &Controller{
		rng:            rng,
		redirectChance: redirectChance,
	}
}

// Steer runs one tick of the adversary policy for a.
//
// With probability redirectChance the adversary adopts a uniformly chosen
// direction among those the resolver would actually move it in. Otherwise, or
// when boxed in, it keeps its heading, even if that heading is blocked and
// leaves it standing still. It then advances exactly once.
func (c *Controller) Steer(g *Grid, a *Adversary) {
	if c.rng.Float64() < c.redirectChance {
		var open [len(Directions)]Dir
		n := 0
		for _, d := range Directions {
			if CanStep(g, a.Pos, d) {
				open[n] = d
				n++
			}
		}
		if n > 0 {
			a.Dir = open[c.rng.Intn(n)]
		}
	}
	a.Pos = Resolve(g, a.Pos, a.Dir)
}
