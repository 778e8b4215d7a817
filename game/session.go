package game

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"torus-snake/game/entity"
	"torus-snake/game/types"
)

// Mode selects who feeds directions into the session.
type Mode int

const (
	ModeHuman Mode = iota
	ModeAgent
)

func (m Mode) String() string {
	if m == ModeAgent {
		return "agent"
	}
	return "human"
}

const (
	// InitialLength is the starting snake length, matching the classic
	// three-segment opening.
	InitialLength = 3

	// maxSpawnAttempts bounds the random apple resampling loop before the
	// spawner falls back to enumerating free cells. Keeps a near-full grid
	// from spinning.
	maxSpawnAttempts = 64
)

// InputFrame is the per-frame snapshot handed in by the input collaborator.
type InputFrame struct {
	Direction    types.Direction
	HasDirection bool
	Quit         bool
	ToggleMode   bool // edge-triggered: fires once per press
}

// Session owns one snake, one apple and the tick state machine. It advances
// on a fixed interval: Tick calls arriving before the interval has elapsed
// are no-ops, which decouples the simulation rate from the frame rate.
type Session struct {
	Grid  types.Grid
	Snake *entity.Snake

	apple    types.Point
	score    int
	over     bool
	mode     Mode
	lastTick time.Time
	interval time.Duration

	rng   *rand.Rand
	stats *Stats
	round *RoundRecord
	steps int
}

// NewSession creates a session on the given grid. The tick interval gates
// how often Tick actually advances the snake.
func NewSession(grid types.Grid, interval time.Duration, mode Mode) *Session {
	if grid.Width < 2 || grid.Height < 2 {
		panic("game: grid too small for a session")
	}
	s := &Session{
		Grid:     grid,
		mode:     mode,
		interval: interval,
		rng:      rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		stats:    NewStats(),
	}
	s.start()
	return s
}

// start lays out a fresh round: new snake in the grid center heading right,
// score zero, a freshly sampled apple.
func (s *Session) start() {
	// Close the round being abandoned, if any; a round that ended in a
	// collision is already closed.
	if s.round != nil && s.round.EndTime.IsZero() {
		s.stats.EndRound(s.round, s.score, s.steps)
	}

	center := types.Point{X: s.Grid.Width / 2, Y: s.Grid.Height / 2}
	s.Snake = entity.NewSnake(center, InitialLength, types.Right, s.Grid)
	s.score = 0
	s.steps = 0
	s.over = false
	s.lastTick = time.Now()
	s.apple = s.spawnApple()
	s.round = s.stats.BeginRound(s.mode)
}

// Reset abandons the current round and starts a new one. Exposed as an
// explicit command so callers other than the mode toggle can start over.
func (s *Session) Reset() {
	s.start()
}

// ToggleMode switches between human and agent control. Toggling performs a
// full session reset (fresh snake, score zero). That coupling is preserved
// observable behavior, kept behind this explicit command.
func (s *Session) ToggleMode() {
	if s.mode == ModeHuman {
		s.mode = ModeAgent
	} else {
		s.mode = ModeHuman
	}
	s.Reset()
}

// HandleInput applies one input snapshot. Direction requests only reach the
// snake in human mode; the agent owns the snake otherwise. Quit is the
// caller's concern.
func (s *Session) HandleInput(in InputFrame) {
	if in.ToggleMode {
		s.ToggleMode()
		return
	}
	if s.mode == ModeHuman && in.HasDirection {
		s.Snake.SetDirection(in.Direction)
	}
}

// SetAgentDirection feeds the agent's decision into the snake. Ignored in
// human mode.
func (s *Session) SetAgentDirection(d types.Direction) {
	if s.mode == ModeAgent {
		s.Snake.SetDirection(d)
	}
}

// Tick advances the state machine once per elapsed interval. On a live tick
// the pending direction is committed, the head advances, self-collision ends
// the round, and an apple collision grows the snake by one and respawns the
// apple; otherwise the tail shrinks and the length stays unchanged.
func (s *Session) Tick(now time.Time) {
	if s.over {
		return
	}
	if now.Sub(s.lastTick) < s.interval {
		return
	}
	s.lastTick = now
	s.steps++

	newHead := s.Snake.Advance(s.Grid)

	// Self-collision: the new head landing on any other body cell ends
	// the round. The head is not shrunk back; the overlap is the terminal
	// state the renderer shows.
	body := s.Snake.Body()
	for _, cell := range body[1:] {
		if cell == newHead {
			s.over = true
			s.stats.EndRound(s.round, s.score, s.steps)
			fmt.Printf("game over, final score %d\n", s.score)
			return
		}
	}

	if newHead == s.apple {
		s.score++
		s.apple = s.spawnApple()
		fmt.Printf("score %d\n", s.score)
	} else {
		s.Snake.Shrink()
	}
}

// spawnApple picks an unoccupied cell, uniform-random with retry. After
// maxSpawnAttempts misses it enumerates the free cells and samples among
// them, so the loop terminates even when the snake covers almost everything.
// A grid with no free cell is a contract violation.
func (s *Session) spawnApple() types.Point {
	for i := 0; i < maxSpawnAttempts; i++ {
		p := types.Point{
			X: s.rng.Intn(s.Grid.Width),
			Y: s.rng.Intn(s.Grid.Height),
		}
		if !s.Snake.Contains(p) {
			return p
		}
	}

	free := make([]types.Point, 0, s.Grid.Cells()-s.Snake.Len())
	for y := 0; y < s.Grid.Height; y++ {
		for x := 0; x < s.Grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if !s.Snake.Contains(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		panic("game: no free cell left for the apple")
	}
	return free[s.rng.Intn(len(free))]
}

// Apple returns the current apple cell.
func (s *Session) Apple() types.Point {
	return s.apple
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Over reports whether the round has ended.
func (s *Session) Over() bool {
	return s.over
}

// Mode returns the active control mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Stats returns the per-process session statistics.
func (s *Session) Stats() *Stats {
	return s.stats
}
