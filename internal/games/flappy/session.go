package flappy

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Phase is the session's lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// TickResult describes what happened during one call to Tick.
type TickResult struct {
	Advanced bool // false when the session was not running
	Spawned  bool
	Passed   int
	Hit      Hit
}

// Snapshot is a read-only copy of the session state for renderers.
type Snapshot struct {
	Phase     Phase
	Field     Field
	Avatar    Avatar
	Obstacles []Obstacle
	Score     int
	Best      int // best score of this session, not persisted
	Ticks     int64
	Run       int // number of runs started, 0 before the first
	LastHit   Hit
}

// Session owns the world state and runs the Idle -> Running <-> Paused ->
// GameOver state machine. It is not safe for concurrent use: a frontend
// must call commands and Tick from a single goroutine.
type Session struct {
	cfg        config.FlappyConfig
	seed       int64
	phase      Phase
	world      World
	spawner    *Spawner
	clock      Clock
	difficulty *config.DifficultyManager
	best       int
	runs       int
	lastHit    Hit
	logger     *log.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithClock overrides the spawn timer's time source.
func WithClock(c Clock) Option {
	return func(s *Session) {
		s.clock = c
	}
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// NewSession validates cfg and returns an idle session.
// Obstacle placement is derived from seed, so two sessions with the same
// seed, config and inputs play out identically.
func NewSession(cfg config.FlappyConfig, seed int64, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}

	s := &Session{
		cfg:        cfg,
		seed:       seed,
		phase:      PhaseIdle,
		spawner:    NewSpawner(seed, cfg.Obstacles),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.clock == nil {
		if cfg.Spawn.Unit == config.SpawnUnitMillis {
			s.clock = NewWallClock()
		} else {
			s.clock = TickClock{}
		}
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	s.resetWorld()
	return s, nil
}

// Config returns the configuration the session was built with, including
// any field size applied since.
func (s *Session) Config() config.FlappyConfig {
	return s.cfg
}

// Phase returns the current lifecycle state.
func (s *Session) Phase() Phase {
	return s.phase
}

// Start begins a new run from Idle or GameOver. The world is reset and the
// spawn timer is already due, so the first pipe appears on the first tick.
func (s *Session) Start() {
	if s.phase != PhaseIdle && s.phase != PhaseGameOver {
		return
	}

	s.runs++
	s.spawner.Reseed(s.seed + int64(s.runs-1))
	s.resetWorld()
	s.lastHit = HitNone
	s.logger.Debug("run started",
		"run", s.runs,
		"difficulty", s.difficulty.IsEnabled(),
		"level", s.difficulty.Level(0, 0),
	)
	s.setPhase(PhaseRunning)
}

// Stop abandons a running or paused run. The session moves to GameOver
// with no collision recorded, so Start is accepted again.
func (s *Session) Stop() {
	if s.phase != PhaseRunning && s.phase != PhasePaused {
		return
	}
	s.lastHit = HitNone
	s.setPhase(PhaseGameOver)
}

// Pause freezes a running session.
func (s *Session) Pause() {
	if s.phase == PhaseRunning {
		s.setPhase(PhasePaused)
	}
}

// Resume continues a paused session from exactly where it stopped.
func (s *Session) Resume() {
	if s.phase == PhasePaused {
		s.setPhase(PhaseRunning)
	}
}

// TogglePause pauses a running session or resumes a paused one.
func (s *Session) TogglePause() {
	switch s.phase {
	case PhaseRunning:
		s.Pause()
	case PhasePaused:
		s.Resume()
	}
}

// Flap kicks the avatar upward. Ignored unless running.
func (s *Session) Flap() {
	if s.phase == PhaseRunning {
		flap(&s.world.Avatar, s.cfg.Physics)
	}
}

// Tick advances a running session by one step: physics, spawn, move, then
// collision and scoring. A terminal collision ends the run. In any other
// phase Tick does nothing.
func (s *Session) Tick() TickResult {
	if s.phase != PhaseRunning {
		return TickResult{}
	}

	w := &s.world
	w.Ticks++
	res := TickResult{Advanced: true}

	stepAvatar(&w.Avatar, s.cfg.Physics)

	now := s.clock.Now(w.Ticks)
	interval := s.difficulty.Interval(s.cfg.Spawn.Interval, w.Score, w.Ticks)
	if s.spawner.Due(now, w.LastSpawn, interval) {
		w.Obstacles = append(w.Obstacles, s.spawner.Spawn(w.Field))
		w.LastSpawn = now
		res.Spawned = true
	}

	speed := s.difficulty.Speed(s.cfg.Physics.PipeSpeed, w.Score, w.Ticks)
	w.Obstacles = moveObstacles(w.Obstacles, speed)

	v := evaluate(w.Avatar, w.Obstacles, w.Field.Height)
	w.Score += v.Passed
	res.Passed = v.Passed
	res.Hit = v.Hit

	if w.Score > s.best {
		s.best = w.Score
	}
	if v.Terminal() {
		s.lastHit = v.Hit
		s.setPhase(PhaseGameOver)
	}

	return res
}

// Step applies the commands collected since the previous tick and then
// ticks once. Commands are applied in a fixed order: start, pause changes,
// flap.
func (s *Session) Step(in core.InputFrame) TickResult {
	if in.Has(core.ActionStart) {
		s.Start()
	}
	if in.Has(core.ActionTogglePause) {
		s.TogglePause()
	}
	if in.Has(core.ActionPause) {
		s.Pause()
	}
	if in.Has(core.ActionResume) {
		s.Resume()
	}
	if in.Has(core.ActionFlap) {
		s.Flap()
	}
	return s.Tick()
}

// SetField changes the play field size. The new size must still fit the
// pipe gap, the spawn margins and the avatar; otherwise the old field is
// kept and an error returned. Pipes already on screen keep their gaps.
func (s *Session) SetField(width, height float64) error {
	if err := s.cfg.CheckField(width, height); err != nil {
		return fmt.Errorf("flappy: resize rejected: %w", err)
	}

	s.cfg.Field = config.FlappyField{Width: width, Height: height}
	s.world.Field = Field{Width: width, Height: height}
	s.logger.Debug("field resized", "width", width, "height", height)
	return nil
}

// Snapshot returns a deep copy of the current state.
func (s *Session) Snapshot() Snapshot {
	obs := make([]Obstacle, len(s.world.Obstacles))
	copy(obs, s.world.Obstacles)

	return Snapshot{
		Phase:     s.phase,
		Field:     s.world.Field,
		Avatar:    s.world.Avatar,
		Obstacles: obs,
		Score:     s.world.Score,
		Best:      s.best,
		Ticks:     s.world.Ticks,
		Run:       s.runs,
		LastHit:   s.lastHit,
	}
}

func (s *Session) resetWorld() {
	field := Field{Width: s.cfg.Field.Width, Height: s.cfg.Field.Height}
	s.world = World{
		Field:     field,
		Avatar:    newAvatar(s.cfg.Player),
		Obstacles: s.world.Obstacles[:0],
		LastSpawn: s.clock.Now(0) - s.cfg.Spawn.Interval - 1,
	}
}

func (s *Session) setPhase(p Phase) {
	from := s.phase
	s.phase = p
	s.logger.Debug("phase changed",
		"from", from,
		"to", p,
		"run", s.runs,
		"score", s.world.Score,
		"ticks", s.world.Ticks,
	)
	if p == PhaseGameOver {
		s.logger.Info("run ended", "run", s.runs, "score", s.world.Score, "best", s.best, "hit", s.lastHit)
	}
}
