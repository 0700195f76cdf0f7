package game

import (
	"math/rand"
	"testing"
)

func TestShiftLeftRows(t *testing.T) {
	tests := []struct {
		name     string
		input    [GridSize]int
		expected [GridSize]int
		score    int
		changed  bool
	}{
		{
			name:     "simple merge",
			input:    [4]int{2, 2, 0, 0},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
			changed:  true,
		},
		{
			name:     "merge then slide",
			input:    [4]int{2, 2, 4, 0},
			expected: [4]int{4, 4, 0, 0},
			score:    4,
			changed:  true,
		},
		{
			name:     "double merge",
			input:    [4]int{2, 2, 2, 2},
			expected: [4]int{4, 4, 0, 0},
			score:    8,
			changed:  true,
		},
		{
			name:     "merge destination not reused",
			input:    [4]int{4, 4, 4, 4},
			expected: [4]int{8, 8, 0, 0},
			score:    16,
			changed:  true,
		},
		{
			name:     "no merge possible",
			input:    [4]int{2, 4, 8, 16},
			expected: [4]int{2, 4, 8, 16},
			score:    0,
			changed:  false,
		},
		{
			name:     "slide into empty prefix",
			input:    [4]int{0, 0, 2, 4},
			expected: [4]int{2, 4, 0, 0},
			score:    0,
			changed:  true,
		},
		{
			name:     "slide across gap",
			input:    [4]int{2, 0, 0, 4},
			expected: [4]int{2, 4, 0, 0},
			score:    0,
			changed:  true,
		},
		{
			name:     "gap merge",
			input:    [4]int{2, 0, 0, 2},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
			changed:  true,
		},
		{
			name:     "already settled",
			input:    [4]int{4, 2, 0, 0},
			expected: [4]int{4, 2, 0, 0},
			score:    0,
			changed:  false,
		},
		{
			name:     "empty row",
			input:    [4]int{0, 0, 0, 0},
			expected: [4]int{0, 0, 0, 0},
			score:    0,
			changed:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var pool AnimationPool
			var background Grid
			g := Grid{tt.input}

			changed, score := shiftLeft(&g, &pool, &background)

			if g[0] != tt.expected {
				t.Errorf("shiftLeft(%v) = %v, want %v", tt.input, g[0], tt.expected)
			}
			if score != tt.score {
				t.Errorf("shiftLeft(%v) score = %d, want %d", tt.input, score, tt.score)
			}
			if changed != tt.changed {
				t.Errorf("shiftLeft(%v) changed = %v, want %v", tt.input, changed, tt.changed)
			}
		})
	}
}

func TestShiftLeftAnimations(t *testing.T) {
	// [2, 2, 4, 0]: one merge animation col1 -> col0 (2 becomes 4) and
	// one slide animation col2 -> col1 (4 stays 4).
	var pool AnimationPool
	var background Grid
	g := Grid{{2, 2, 4, 0}}

	changed, score := shiftLeft(&g, &pool, &background)

	if !changed || score != 4 {
		t.Fatalf("shiftLeft changed=%v score=%d, want true, 4", changed, score)
	}
	if g[0] != [4]int{4, 4, 0, 0} {
		t.Fatalf("shifted row = %v, want [4 4 0 0]", g[0])
	}

	blocks := pool.Blocks()
	if pool.ActiveCount() != 2 {
		t.Fatalf("animation count = %d, want 2", pool.ActiveCount())
	}

	merge := blocks[0]
	if merge.CurCol != 1 || merge.DestCol != 0 || merge.MovingValue != 2 || merge.IdleValue != 4 {
		t.Errorf("merge animation = %+v, want col1->col0 value 2->4", merge)
	}
	slide := blocks[1]
	if slide.CurCol != 2 || slide.DestCol != 1 || slide.MovingValue != 4 || slide.IdleValue != 4 {
		t.Errorf("slide animation = %+v, want col2->col1 value 4->4", slide)
	}
}

func TestShiftLeftBackgroundSnapshot(t *testing.T) {
	// The background is the pre-shift grid with every moved source
	// cell zeroed: only the unmoved prefix survives.
	var pool AnimationPool
	var background Grid
	g := Grid{
		{2, 2, 4, 0},
		{8, 0, 0, 0},
	}

	shiftLeft(&g, &pool, &background)

	expected := Grid{
		{2, 0, 0, 0},
		{8, 0, 0, 0},
	}
	if background != expected {
		t.Errorf("background = %v, want %v", background, expected)
	}
}

func TestShiftLeftIdempotent(t *testing.T) {
	grids := []Grid{
		{{2, 2, 4, 0}, {0, 4, 0, 4}, {2, 0, 2, 2}, {16, 8, 4, 2}},
		{{2, 0, 0, 2}, {4, 4, 4, 4}, {0, 0, 0, 2}, {0, 0, 0, 0}},
	}

	for _, g := range grids {
		var pool AnimationPool
		var background Grid
		shiftLeft(&g, &pool, &background)

		pool.Reset()
		changed, score := shiftLeft(&g, &pool, &background)
		if changed || score != 0 {
			t.Errorf("second shiftLeft on %v reported changed=%v score=%d", g, changed, score)
		}
	}
}

func TestShiftConservesTileSum(t *testing.T) {
	g := Grid{
		{2, 2, 4, 4},
		{8, 0, 8, 2},
		{0, 2, 0, 2},
		{16, 16, 16, 16},
	}

	for _, dir := range []Direction{DirLeft, DirRight, DirUp, DirDown} {
		work := g
		var pool AnimationPool
		var background Grid
		before := Sum(&work)

		_, score := Shift(&work, dir, &pool, &background)

		if after := Sum(&work); after != before {
			t.Errorf("dir %d: tile sum %d -> %d, merging must conserve the sum", dir, before, after)
		}
		if score < 0 {
			t.Errorf("dir %d: negative score delta %d", dir, score)
		}
	}
}

func TestShiftDirectionsMatchTransformedShiftLeft(t *testing.T) {
	// Each direction must equal: transform the grid into shift-left
	// orientation, shift left, transform back.
	g := Grid{
		{2, 2, 4, 0},
		{0, 4, 0, 4},
		{2, 0, 2, 2},
		{16, 8, 4, 2},
	}

	type transform struct {
		dir     Direction
		forward func(*Grid)
		back    func(*Grid)
	}
	transforms := []transform{
		{DirRight, (*Grid).reverseRows, (*Grid).reverseRows},
		{DirDown, (*Grid).rotRight, (*Grid).rotLeft},
		{DirUp, (*Grid).rotLeft, (*Grid).rotRight},
	}

	for _, tr := range transforms {
		direct := g
		var pool AnimationPool
		var background Grid
		_, directScore := Shift(&direct, tr.dir, &pool, &background)

		manual := g
		tr.forward(&manual)
		var pool2 AnimationPool
		var background2 Grid
		_, manualScore := shiftLeft(&manual, &pool2, &background2)
		tr.back(&manual)

		if direct != manual {
			t.Errorf("dir %d: Shift = %v, transformed shiftLeft = %v", tr.dir, direct, manual)
		}
		if directScore != manualScore {
			t.Errorf("dir %d: score %d vs %d", tr.dir, directScore, manualScore)
		}
	}
}

func TestShiftRightAnimationMirroring(t *testing.T) {
	// [0, 4, 2, 2] shifted right merges the 2s into col3 and slides
	// the 4 into col2; animation columns must be mirrored back.
	g := Grid{{0, 4, 2, 2}}
	var pool AnimationPool
	var background Grid

	changed, score := Shift(&g, DirRight, &pool, &background)

	if !changed || score != 4 {
		t.Fatalf("Shift right changed=%v score=%d, want true, 4", changed, score)
	}
	if g[0] != [4]int{0, 0, 4, 4} {
		t.Fatalf("shifted row = %v, want [0 0 4 4]", g[0])
	}

	foundMerge := false
	for _, b := range pool.Blocks() {
		if b.State != BlockMoving {
			continue
		}
		if b.MovingValue == 2 && b.IdleValue == 4 {
			foundMerge = true
			if b.CurCol != 2 || b.DestCol != 3 {
				t.Errorf("merge animation cols = %d->%d, want 2->3", b.CurCol, b.DestCol)
			}
		}
	}
	if !foundMerge {
		t.Error("expected a mirrored merge animation")
	}
}

func TestShiftUpDownAnimationRotation(t *testing.T) {
	// A single tile at (3, 1) shifted up slides to (0, 1).
	g := Grid{}
	g[3][1] = 2
	var pool AnimationPool
	var background Grid

	changed, _ := Shift(&g, DirUp, &pool, &background)
	if !changed {
		t.Fatal("Shift up should move the tile")
	}
	if g[0][1] != 2 || g[3][1] != 0 {
		t.Fatalf("grid after up shift = %v", g)
	}

	b := pool.Blocks()[0]
	if b.CurRow != 3 || b.CurCol != 1 || b.DestRow != 0 || b.DestCol != 1 {
		t.Errorf("up animation = (%d,%d)->(%d,%d), want (3,1)->(0,1)", b.CurRow, b.CurCol, b.DestRow, b.DestCol)
	}

	// Same tile shifted down from (0, 2) lands at (3, 2).
	g = Grid{}
	g[0][2] = 4
	pool.Reset()

	changed, _ = Shift(&g, DirDown, &pool, &background)
	if !changed {
		t.Fatal("Shift down should move the tile")
	}
	if g[3][2] != 4 {
		t.Fatalf("grid after down shift = %v", g)
	}

	b = pool.Blocks()[0]
	if b.CurRow != 0 || b.CurCol != 2 || b.DestRow != 3 || b.DestCol != 2 {
		t.Errorf("down animation = (%d,%d)->(%d,%d), want (0,2)->(3,2)", b.CurRow, b.CurCol, b.DestRow, b.DestCol)
	}
}

func TestNoOpShiftKeepsBackgroundOrientation(t *testing.T) {
	// A shift that moves nothing must still hand back the background
	// snapshot in board orientation, not in shift-left orientation.
	tests := []struct {
		name string
		grid Grid
		dir  Direction
	}{
		{
			name: "settled right",
			grid: Grid{{0, 0, 2, 4}, {0, 0, 0, 8}},
			dir:  DirRight,
		},
		{
			name: "settled up",
			grid: Grid{{2, 0, 16, 0}, {4, 0, 0, 0}},
			dir:  DirUp,
		},
		{
			name: "settled down",
			grid: Grid{{0, 0, 0, 0}, {0, 0, 0, 0}, {2, 0, 0, 0}, {4, 0, 8, 0}},
			dir:  DirDown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.grid
			var pool AnimationPool
			var background Grid

			changed, score := Shift(&g, tt.dir, &pool, &background)

			if changed || score != 0 {
				t.Fatalf("shift reported changed=%v score=%d on a settled grid", changed, score)
			}
			if g != tt.grid {
				t.Errorf("no-op shift changed the grid: %v", g)
			}
			if background != tt.grid {
				t.Errorf("background = %v, want board orientation %v", background, tt.grid)
			}
		})
	}
}

func TestRotationRoundTrips(t *testing.T) {
	g := Grid{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}

	work := g
	work.rotLeft()
	work.rotRight()
	if work != g {
		t.Error("rotLeft then rotRight should restore the grid")
	}

	work.reverseRows()
	work.reverseRows()
	if work != g {
		t.Error("double reverseRows should restore the grid")
	}

	work.rotRight()
	expected := Grid{
		{13, 9, 5, 1},
		{14, 10, 6, 2},
		{15, 11, 7, 3},
		{16, 12, 8, 4},
	}
	if work != expected {
		t.Errorf("rotRight = %v, want %v", work, expected)
	}
}

func TestAddRandomTile(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := Grid{}

	AddRandomTile(&g, rng, 0.5)
	if EmptyCount(&g) != GridSize*GridSize-1 {
		t.Errorf("empty count = %d, want %d", EmptyCount(&g), GridSize*GridSize-1)
	}

	max := MaxTile(&g)
	if max != 2 && max != 4 {
		t.Errorf("spawned tile value = %d, want 2 or 4", max)
	}
}

func TestAddRandomTileFullGridNoOp(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	before := g

	AddRandomTile(&g, rng, 0.5)

	if g != before {
		t.Error("AddRandomTile on a full grid must not change it")
	}
	if EmptyCount(&g) != 0 {
		t.Errorf("empty count = %d, want 0", EmptyCount(&g))
	}
}

func TestIsWon(t *testing.T) {
	g := Grid{}
	g[2][3] = 128

	if !IsWon(&g, 128) {
		t.Error("IsWon should find the target tile")
	}
	if IsWon(&g, 256) {
		t.Error("IsWon should not report a missing target")
	}
}

func TestIsLost(t *testing.T) {
	// Full grid of strictly alternating distinct powers of two: no
	// empty cell, no equal neighbors.
	lost := Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	if !IsLost(&lost) {
		t.Error("alternating full grid should be lost")
	}

	withEmpty := lost
	withEmpty[1][1] = 0
	if IsLost(&withEmpty) {
		t.Error("grid with an empty cell is not lost")
	}

	withMerge := lost
	withMerge[0][1] = 2
	if IsLost(&withMerge) {
		t.Error("grid with an adjacent equal pair is not lost")
	}
}
