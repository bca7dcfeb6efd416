// Package mazeblast adapts the maze engine to the arcade platform: it maps
// frame input to session commands, drives ticks from the frame clock, and
// draws the maze.
package mazeblast

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/mazeblast/internal/config"
	"github.com/vovakirdan/mazeblast/internal/core"
	"github.com/vovakirdan/mazeblast/internal/engine"
	"github.com/vovakirdan/mazeblast/internal/registry"
)

// hudHeight is the number of screen rows above the maze.
const hudHeight = 2

// Package-level overrides set by the CLI before games are created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath makes every maze load its configuration from path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset selects the preset applied on the next Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Game runs one maze session.
type Game struct {
	mazeID string
	title  string

	cfg     config.MazeConfig
	session *engine.Session
	clock   *engine.ManualClock
	driver  *engine.Driver
	frame   time.Duration // Logical time per platform frame

	wantDir engine.Dir // Buffered turn, retried until the maze allows it
	paused  bool

	screenW int
	screenH int
}

// New creates the classic maze.
func New() *Game {
	return &Game{mazeID: config.MazeClassic, title: "Mazeblast"}
}

// NewArena creates the arena maze.
func NewArena() *Game {
	return &Game{mazeID: config.MazeArena, title: "Mazeblast Arena"}
}

func init() {
	registry.Register(config.MazeClassic, func() registry.Game {
		return New()
	})
	registry.Register(config.MazeArena, func() registry.Game {
		return NewArena()
	})
}

// Load reads and validates the configuration for a maze id, applying the
// selected config path and difficulty preset.
func Load(mazeID string) (config.MazeConfig, error) {
	cfg, err := config.LoadMaze(mazeID, configPath)
	if err != nil {
		return config.MazeConfig{}, err
	}
	config.ApplyMazePreset(&cfg, difficultyPreset)
	if err := cfg.Validate(); err != nil {
		return config.MazeConfig{}, fmt.Errorf("maze %s: %w", mazeID, err)
	}
	return cfg, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.mazeID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset loads the maze and creates an idle session.
func (g *Game) Reset(rc core.RuntimeConfig) error {
	cfg, err := Load(g.mazeID)
	if err != nil {
		return err
	}
	return g.reset(cfg, rc)
}

// reset builds a session from an already loaded configuration.
func (g *Game) reset(cfg config.MazeConfig, rc core.RuntimeConfig) error {
	settings, err := cfg.Settings()
	if err != nil {
		return err
	}
	layout, err := cfg.ParseLayout()
	if err != nil {
		return err
	}

	session, err := engine.NewSession(layout, settings, rand.New(rand.NewSource(rc.Seed)))
	if err != nil {
		return fmt.Errorf("maze %s: %w", g.mazeID, err)
	}

	tickRate := rc.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}

	g.cfg = cfg
	if cfg.Name != "" {
		g.title = cfg.Name
	}
	g.session = session
	g.frame = time.Second / time.Duration(tickRate)
	g.clock = engine.NewManualClock(time.Unix(0, 0))
	g.driver = engine.NewDriver(g.clock, cfg.Timing.StepInterval, cfg.Timing.MaxDelta)
	g.wantDir = engine.DirNone
	g.paused = false
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	return nil
}

// Resize records the new screen size. The session is kept.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
}

// tooSmall reports whether the maze and HUD do not fit on screen.
func (g *Game) tooSmall() bool {
	if g.session == nil {
		return true
	}
	layoutW, layoutH := len([]rune(g.cfg.Layout[0])), len(g.cfg.Layout)
	return g.screenW < layoutW || g.screenH < layoutH+hudHeight
}

// Step handles one platform frame: lifecycle commands, steering, and
// advancing the frame clock so the driver can tick the session.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{}
	}

	switch g.session.State() {
	case engine.LifecycleIdle:
		if in.Has(core.ActionConfirm) {
			g.begin(g.session.Start)
		}
		return core.StepResult{State: g.State()}

	case engine.LifecycleGameOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.begin(g.session.Restart)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		if !g.paused {
			g.driver.Resync()
		}
	}
	if g.paused || g.tooSmall() {
		return core.StepResult{State: g.State()}
	}

	g.steer(in)

	g.clock.Advance(g.frame)
	res, ticked := g.driver.Advance(g.session)

	result := core.StepResult{State: g.State()}
	if !ticked {
		return result
	}
	for _, e := range res.Events {
		if e.Kind == engine.EventLifeLost {
			g.wantDir = engine.DirNone
		}
		result.Events = append(result.Events, e.String())
	}
	return result
}

// begin starts or restarts play and drops stale input and clock time.
func (g *Game) begin(transition func() error) {
	if err := transition(); err != nil {
		return
	}
	g.wantDir = engine.DirNone
	g.paused = false
	g.driver.Resync()
}

// steer buffers the latest direction key and keeps offering it to the
// session until the maze lets the player turn.
func (g *Game) steer(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.wantDir = engine.DirUp
	case in.Has(core.ActionDown):
		g.wantDir = engine.DirDown
	case in.Has(core.ActionLeft):
		g.wantDir = engine.DirLeft
	case in.Has(core.ActionRight):
		g.wantDir = engine.DirRight
	}

	if g.wantDir == engine.DirNone {
		return
	}
	g.session.SetDesiredDirection(g.wantDir)
	if g.session.Player().Dir == g.wantDir {
		g.wantDir = engine.DirNone
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	st := g.session.State()
	return core.GameState{
		Score:    g.session.Score(),
		Level:    g.session.Level(),
		Lives:    g.session.Lives(),
		Started:  st != engine.LifecycleIdle,
		GameOver: st == engine.LifecycleGameOver,
		Paused:   g.paused,
	}
}

// Snapshot returns a copy of the session for determinism checks.
func (g *Game) Snapshot() engine.Snapshot {
	return g.session.Snapshot()
}
