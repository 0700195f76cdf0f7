package game

// Snapshot captures the observable session state for determinism
// checks and tests.
type Snapshot struct {
	Tick      uint64
	State     State
	Score     int
	HighScore int
	Target    int
	Grid      Grid
	MaxTile   int
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:      s.tick,
		State:     s.state,
		Score:     s.score,
		HighScore: s.highScore,
		Target:    s.winningTile,
		Grid:      s.grid,
		MaxTile:   MaxTile(&s.grid),
	}
}
