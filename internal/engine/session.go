package engine

import (
	"errors"
	"fmt"
	"time"
)

// Lifecycle is the session's top-level state.
type Lifecycle uint8

const (
	LifecycleIdle Lifecycle = iota
	LifecyclePlaying
	LifecycleGameOver
)

func (l Lifecycle) String() string {
	switch l {
	case LifecycleIdle:
		return "idle"
	case LifecyclePlaying:
		return "playing"
	case LifecycleGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// ErrInvalidTransition is returned by Start and Restart when called from a
// lifecycle state that does not allow them.
var ErrInvalidTransition = errors.New("engine: invalid lifecycle transition")

// Player is the steered entity.
type Player struct {
	Pos    Pos
	Dir    Dir // Current movement direction
	Facing Dir // Last accepted non-zero direction; aims projectiles
}

// Session owns the whole mutable world: grid, player, adversaries,
// projectiles, score, lives, level and lifecycle. It has a single writer (the
// tick driver and command surface) and must not be read during a Tick.
type Session struct {
	layout   *Layout
	settings Settings
	rng      Rand
	ctrl     *Controller

	state            Lifecycle
	tick             uint64
	score            int
	lives            int
	level            int
	pelletsRemaining int

	grid        *Grid
	player      Player
	adversaries []Adversary
	projectiles []Projectile

	powered        bool
	powerRemaining time.Duration
	fireTimer      time.Duration
	itemTimer      time.Duration
}

// NewSession creates an Idle session. The world is populated immediately so
// it can be displayed before Start.
func NewSession(layout *Layout, settings Settings, rng Rand) (*Session, error) {
	if layout == nil {
		return nil, errors.New("engine: nil layout")
	}
	if rng == nil {
		return nil, errors.New("engine: nil random source")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		layout:   layout,
		settings: settings,
		rng:      rng,
		ctrl:     NewController(rng, settings.RedirectChance),
		state:    LifecycleIdle,
	}
	s.reset()
	return s, nil
}

// Start begins play from Idle or GameOver with a full reset.
func (s *Session) Start() error {
	if s.state == LifecyclePlaying {
		return fmt.Errorf("%w: start while %v", ErrInvalidTransition, s.state)
	}
	s.reset()
	s.state = LifecyclePlaying
	return nil
}

// Restart begins a new game after GameOver with a full reset.
func (s *Session) Restart() error {
	if s.state != LifecycleGameOver {
		return fmt.Errorf("%w: restart while %v", ErrInvalidTransition, s.state)
	}
	s.reset()
	s.state = LifecyclePlaying
	return nil
}

// reset regenerates the maze and puts every counter and entity back to its
// starting value.
func (s *Session) reset() {
	s.tick = 0
	s.score = 0
	s.lives = s.settings.Lives
	s.level = 1

	s.grid = s.layout.Grid()
	s.pelletsRemaining = s.grid.CountPellets()

	s.player = Player{Pos: s.layout.PlayerSpawn}
	s.adversaries = make([]Adversary, len(s.layout.AdversarySpawns))
	for i, home := range s.layout.AdversarySpawns {
		s.adversaries[i] = Adversary{Slot: i, Home: home}
	}
	s.resetAdversaries()
	s.projectiles = nil

	s.powered = false
	s.powerRemaining = 0
	s.fireTimer = 0
	s.itemTimer = 0
}

func (s *Session) resetAdversaries() {
	for i := range s.adversaries {
		s.adversaries[i].sendHome(s.settings.ExitDir)
	}
}

// SetDesiredDirection steers the player. The command is accepted only while
// playing and only if it would actually move the player from its current
// cell; it then becomes both the movement direction and the facing.
// Otherwise it is ignored.
func (s *Session) SetDesiredDirection(d Dir) {
	if s.state != LifecyclePlaying || d == DirNone {
		return
	}
	if CanStep(s.grid, s.player.Pos, d) {
		s.player.Dir = d
		s.player.Facing = d
	}
}

// Tick advances the simulation by one step covering dt of elapsed time.
// Outside Playing it changes nothing.
func (s *Session) Tick(dt time.Duration) TickResult {
	if s.state != LifecyclePlaying {
		return TickResult{Tick: s.tick}
	}
	if dt < 0 {
		dt = 0
	}

	s.tick++
	res := TickResult{Tick: s.tick}

	pickedUp := s.movePlayer(&res)

	for i := range s.adversaries {
		s.ctrl.Steer(s.grid, &s.adversaries[i])
	}

	// Power time is counted from the end of the pickup tick.
	if !pickedUp {
		s.decayPower(&res, dt)
	}
	s.tickItemSpawn(&res, dt)
	s.tickFireCadence(&res, dt)
	s.advanceProjectiles(&res)

	s.checkCaught(&res)
	return res
}

// movePlayer advances the player and applies what it lands on.
// It reports whether a power item was picked up.
func (s *Session) movePlayer(res *TickResult) bool {
	s.player.Pos = Resolve(s.grid, s.player.Pos, s.player.Dir)

	switch s.grid.At(s.player.Pos) {
	case TilePellet:
		s.grid.ConsumePellet(s.player.Pos)
		s.score += s.settings.PelletPoints
		s.pelletsRemaining--
		res.add(Event{Kind: EventPellet, Pos: s.player.Pos, Points: s.settings.PelletPoints})
		if s.pelletsRemaining == 0 {
			s.advanceLevel(res)
		}
	case TilePowerItem:
		s.pickUpPowerItem(res)
		return true
	}
	return false
}

// advanceLevel generates the next maze. Score, lives, the player and power
// mode carry over; adversaries go home and projectiles are discarded.
func (s *Session) advanceLevel(res *TickResult) {
	s.level++
	s.grid = s.layout.Grid()
	s.pelletsRemaining = s.grid.CountPellets()
	s.resetAdversaries()
	s.projectiles = nil
	res.add(Event{Kind: EventLevelCleared, Pos: s.player.Pos})
}

// checkCaught costs a life if any adversary shares the player's cell.
func (s *Session) checkCaught(res *TickResult) {
	for _, a := range s.adversaries {
		if a.Pos == s.player.Pos {
			s.loseLife(res)
			return
		}
	}
}

func (s *Session) loseLife(res *TickResult) {
	s.lives--
	res.add(Event{Kind: EventLifeLost, Pos: s.player.Pos})

	if s.lives <= 0 {
		s.state = LifecycleGameOver
		res.add(Event{Kind: EventGameOver, Pos: s.player.Pos})
		return
	}

	s.player = Player{Pos: s.layout.PlayerSpawn}
	s.resetAdversaries()
	s.powered = false
	s.powerRemaining = 0
	s.fireTimer = 0
	s.projectiles = nil
}

// State returns the lifecycle state.
func (s *Session) State() Lifecycle {
	return s.state
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Lives returns the remaining lives.
func (s *Session) Lives() int {
	return s.lives
}

// Level returns the current level, starting at 1.
func (s *Session) Level() int {
	return s.level
}

// PelletsRemaining returns the pellets left in the current maze.
func (s *Session) PelletsRemaining() int {
	return s.pelletsRemaining
}

// Settings returns the rules the session was created with.
func (s *Session) Settings() Settings {
	return s.settings
}

// Player returns the player's position, heading and facing.
func (s *Session) Player() Player {
	return s.player
}
