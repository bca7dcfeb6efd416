package engine

import "fmt"

// EventKind identifies something that happened during a tick.
type EventKind uint8

const (
	EventPellet          EventKind = iota // Player ate a pellet
	EventPowerPickup                      // Player picked up a power item
	EventPowerExpired                     // Power mode ran out
	EventItemSpawned                      // A power item appeared
	EventProjectileFired                  // A projectile left the player
	EventAdversaryHit                     // A projectile sent an adversary home
	EventLevelCleared                     // Last pellet eaten, next level generated
	EventLifeLost                         // An adversary caught the player
	EventGameOver                         // No lives left
)

func (k EventKind) String() string {
	switch k {
	case EventPellet:
		return "pellet"
	case EventPowerPickup:
		return "power-pickup"
	case EventPowerExpired:
		return "power-expired"
	case EventItemSpawned:
		return "item-spawned"
	case EventProjectileFired:
		return "projectile-fired"
	case EventAdversaryHit:
		return "adversary-hit"
	case EventLevelCleared:
		return "level-cleared"
	case EventLifeLost:
		return "life-lost"
	case EventGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Event records one occurrence within a tick. Fields not relevant to the
// kind are zero.
type Event struct {
	Kind   EventKind
	Pos    Pos
	Slot   int // Adversary slot for EventAdversaryHit
	Points int // Score awarded by this event
}

func (e Event) String() string {
	switch e.Kind {
	case EventAdversaryHit:
		return fmt.Sprintf("%v slot=%d at %v +%d", e.Kind, e.Slot, e.Pos, e.Points)
	case EventPellet:
		return fmt.Sprintf("%v at %v +%d", e.Kind, e.Pos, e.Points)
	default:
		return fmt.Sprintf("%v at %v", e.Kind, e.Pos)
	}
}

// TickResult lists what happened during one tick, in order.
// Events are informational only; the session state is the source of truth.
type TickResult struct {
	Tick   uint64
	Events []Event
}

// Has reports whether an event of the given kind occurred.
func (r TickResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func (r *TickResult) add(e Event) {
	r.Events = append(r.Events, e)
}
