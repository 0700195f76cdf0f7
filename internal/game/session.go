package game

import (
	"math/rand"
	"time"

	"github.com/horsecatdog/gazool/internal/core"
)

// State identifies where the game's state machine is. Every screen has
// an Enter state, which draws and unconditionally moves on, and an
// Input state, which consumes at most one buffered key per tick.
type State int

const (
	StateTitleEnter State = iota
	StateTitleInput
	StateInstructionsEnter
	StateInstructionsInput
	StateDifficultyEnter
	StateDifficultyInput
	StateGameStart
	StateGameEnter
	StateGameInput
	StateShiftingBlocks
	StateDoneShiftingBlocks
	StateVictory
	StateDefeat
	StateGameOverInput
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateTitleEnter:
		return "title_enter"
	case StateTitleInput:
		return "title_input"
	case StateInstructionsEnter:
		return "instructions_enter"
	case StateInstructionsInput:
		return "instructions_input"
	case StateDifficultyEnter:
		return "difficulty_enter"
	case StateDifficultyInput:
		return "difficulty_input"
	case StateGameStart:
		return "game_start"
	case StateGameEnter:
		return "game_enter"
	case StateGameInput:
		return "game_input"
	case StateShiftingBlocks:
		return "shifting_blocks"
	case StateDoneShiftingBlocks:
		return "done_shifting_blocks"
	case StateVictory:
		return "victory"
	case StateDefeat:
		return "defeat"
	case StateGameOverInput:
		return "game_over_input"
	default:
		return "unknown"
	}
}

// winningTiles maps difficulty-screen digit keys to win targets.
var winningTiles = map[core.Key]int{
	core.Key('1'): 8,
	core.Key('2'): 16,
	core.Key('3'): 32,
	core.Key('4'): 64,
	core.Key('5'): 128,
	core.Key('6'): 256,
	core.Key('7'): 512,
	core.Key('8'): 1024,
	core.Key('9'): 2048,
	core.Key('0'): 4096,
}

// Session owns one run of the program: the tile grid, the animation
// pool, the background snapshot, scores, and the console everything is
// painted into. A single goroutine drives it by calling Step once per
// tick; nothing else may mutate it.
type Session struct {
	cfg     core.RuntimeConfig
	rng     *rand.Rand
	console *core.Console
	keys    *core.KeyBuffer

	state       State
	grid        Grid
	background  Grid
	pool        AnimationPool
	score       int
	highScore   int
	tick        uint64
	gameTimer   uint64
	winningTile int
	quit        bool
}

// NewSession creates a session painting into the given console. A zero
// seed falls back to the clock.
func NewSession(cfg core.RuntimeConfig, console *core.Console) *Session {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if cfg.AnimStep <= 0 {
		cfg.AnimStep = 1
	}
	if cfg.AnimThrottle <= 0 {
		cfg.AnimThrottle = 1
	}
	return &Session{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(seed)),
		console: console,
		keys:    core.NewKeyBuffer(),
		state:   StateTitleEnter,
	}
}

// Keys returns the buffer the platform pushes key presses into.
func (s *Session) Keys() *core.KeyBuffer {
	return s.keys
}

// State returns the current state-machine state.
func (s *Session) State() State {
	return s.state
}

// Score returns the current game's score.
func (s *Session) Score() int {
	return s.score
}

// HighScore returns the best score seen this session.
func (s *Session) HighScore() int {
	return s.highScore
}

// SetHighScore seeds the high score, typically from stored history.
// Lower values than the current high score are ignored.
func (s *Session) SetHighScore(score int) {
	if score > s.highScore {
		s.highScore = score
	}
}

// WinningTile returns the selected win target (0 before one is picked).
func (s *Session) WinningTile() int {
	return s.winningTile
}

// QuitRequested reports whether the player quit from the title screen.
func (s *Session) QuitRequested() bool {
	return s.quit
}

// addScore applies a merge score delta, raising the high score when
// passed.
func (s *Session) addScore(delta int) {
	s.score += delta
	if s.score > s.highScore {
		s.highScore = s.score
	}
}

// pollKey reads at most one buffered key, non-blocking.
func (s *Session) pollKey() core.Key {
	k, ok := s.keys.Poll()
	if !ok {
		return core.KeyNone
	}
	return k
}

// shiftDirection maps a move key to its direction. The second result
// is false for non-move keys.
func shiftDirection(k core.Key) (Direction, bool) {
	switch k {
	case core.KeyUp, core.Key('w'), core.Key('W'):
		return DirUp, true
	case core.KeyDown, core.Key('s'), core.Key('S'):
		return DirDown, true
	case core.KeyLeft, core.Key('a'), core.Key('A'):
		return DirLeft, true
	case core.KeyRight, core.Key('d'), core.Key('D'):
		return DirRight, true
	}
	return 0, false
}

// Step advances the state machine by one tick: inspect the state,
// maybe consume one key, maybe shift or animate, paint the console.
func (s *Session) Step() {
	s.tick++

	switch s.state {
	case StateTitleEnter:
		s.drawTitle()
		s.state = StateTitleInput

	case StateTitleInput:
		switch s.pollKey() {
		case core.Key('n'), core.Key('N'):
			s.state = StateDifficultyEnter
		case core.Key('i'), core.Key('I'):
			s.state = StateInstructionsEnter
		case core.Key('q'), core.Key('Q'):
			s.quit = true
		}

	case StateInstructionsEnter:
		drawBackground(s.console, instructionScreen)
		s.state = StateInstructionsInput

	case StateInstructionsInput:
		switch s.pollKey() {
		case core.Key('q'), core.Key('Q'):
			s.state = StateTitleEnter
		}

	case StateDifficultyEnter:
		drawBackground(s.console, difficultyScreen)
		s.state = StateDifficultyInput

	case StateDifficultyInput:
		if target, ok := winningTiles[s.pollKey()]; ok {
			s.winningTile = target
			s.state = StateGameStart
		}

	case StateGameStart:
		s.startGame()
		// Fall straight through into the board draw, no tick boundary.
		s.stepGameEnter()

	case StateGameEnter:
		s.stepGameEnter()

	case StateGameInput:
		s.gameTimer++
		key := s.pollKey()
		if dir, ok := shiftDirection(key); ok {
			changed, delta := Shift(&s.grid, dir, &s.pool, &s.background)
			if changed {
				s.addScore(delta)
				s.pool.remap(func(row, col int) (int, int) {
					return consoleRow(row), consoleCol(col)
				})
				s.state = StateShiftingBlocks
			}
			break
		}
		switch key {
		case core.Key('q'), core.Key('Q'):
			s.state = StateTitleEnter
		}

	case StateShiftingBlocks:
		s.gameTimer++
		if s.gameTimer%uint64(s.cfg.AnimThrottle) == 0 {
			s.drawAnimationFrame()
			if !s.pool.Step(s.cfg.AnimStep) {
				s.state = StateDoneShiftingBlocks
			}
		}

	case StateDoneShiftingBlocks:
		s.gameTimer++
		s.pool.Reset()
		AddRandomTile(&s.grid, s.rng, s.cfg.FourProb)
		switch {
		case IsWon(&s.grid, s.winningTile):
			s.state = StateVictory
		case IsLost(&s.grid):
			s.state = StateDefeat
		default:
			s.state = StateGameEnter
		}

	case StateVictory:
		s.drawBanner(victoryMessage)
		s.state = StateGameOverInput

	case StateDefeat:
		s.drawBanner(defeatMessage)
		s.state = StateGameOverInput

	case StateGameOverInput:
		switch s.pollKey() {
		case core.Key('q'), core.Key('Q'):
			s.state = StateTitleEnter
		}
	}
}

// startGame resets the per-game state and spawns the two opening tiles.
func (s *Session) startGame() {
	s.gameTimer = 0
	s.score = 0
	s.grid = Grid{}
	s.background = Grid{}
	s.pool.Reset()
	AddRandomTile(&s.grid, s.rng, s.cfg.FourProb)
	AddRandomTile(&s.grid, s.rng, s.cfg.FourProb)
}

// stepGameEnter draws the settled board and hands control to input.
func (s *Session) stepGameEnter() {
	s.gameTimer++
	s.drawBoard()
	s.state = StateGameInput
}
