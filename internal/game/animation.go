package game

import "github.com/horsecatdog/gazool/internal/core"

// BlockState is the lifecycle of one pooled animation slot.
type BlockState int

const (
	// BlockDead marks a free slot.
	BlockDead BlockState = iota
	// BlockMoving marks a block in flight toward its destination.
	BlockMoving
	// BlockIdle marks a block that arrived and waits to be folded into
	// the permanent grid.
	BlockIdle
)

// MaxAnimations bounds how many blocks can be in flight after one
// shift. A 4x4 shift can move at most 12 tiles, so the cap is a soft
// safety net, not a correctness limit.
const MaxAnimations = 16

// AnimatedBlock describes one tile sliding from a source cell to a
// destination cell over several ticks. It exists purely for rendering;
// the grid itself updates instantly when a shift is applied.
type AnimatedBlock struct {
	State BlockState

	CurRow, CurCol   int
	DestRow, DestCol int

	// MovingValue is shown while the block travels; IdleValue once it
	// arrives (they differ when the block is the source of a merge).
	MovingValue int
	IdleValue   int
}

// AnimationPool is a fixed-capacity set of animation slots. The zero
// value is ready to use: every slot starts Dead.
type AnimationPool struct {
	blocks [MaxAnimations]AnimatedBlock
}

// Add records a new moving block in the first Dead slot. A full pool
// drops the descriptor silently; the shift itself already happened and
// losing a visual is better than failing it.
func (p *AnimationPool) Add(startRow, startCol, endRow, endCol, startVal, endVal int) {
	for i := range p.blocks {
		if p.blocks[i].State != BlockDead {
			continue
		}
		p.blocks[i] = AnimatedBlock{
			State:       BlockMoving,
			CurRow:      startRow,
			CurCol:      startCol,
			DestRow:     endRow,
			DestCol:     endCol,
			MovingValue: startVal,
			IdleValue:   endVal,
		}
		return
	}
}

// remap rewrites the coordinates of every moving block. The shift
// wrappers use it to undo the reflection or rotation that put the grid
// into shift-left orientation.
func (p *AnimationPool) remap(f func(row, col int) (int, int)) {
	for i := range p.blocks {
		b := &p.blocks[i]
		if b.State != BlockMoving {
			continue
		}
		b.CurRow, b.CurCol = f(b.CurRow, b.CurCol)
		b.DestRow, b.DestCol = f(b.DestRow, b.DestCol)
	}
}

// Step advances every moving block toward its destination, each axis by
// at most stepSize. A block whose both axes reach their destination
// flips to Idle. Returns whether any block is still moving afterwards.
func (p *AnimationPool) Step(stepSize int) bool {
	stillMoving := false
	for i := range p.blocks {
		b := &p.blocks[i]
		if b.State != BlockMoving {
			continue
		}

		if d := b.DestRow - b.CurRow; d != 0 {
			step := core.Min(core.Abs(d), stepSize)
			if d < 0 {
				step = -step
			}
			b.CurRow += step
		}
		if d := b.DestCol - b.CurCol; d != 0 {
			step := core.Min(core.Abs(d), stepSize)
			if d < 0 {
				step = -step
			}
			b.CurCol += step
		}

		if b.CurRow == b.DestRow && b.CurCol == b.DestCol {
			b.State = BlockIdle
		} else {
			stillMoving = true
		}
	}
	return stillMoving
}

// Reset kills every slot, making the whole pool reusable.
func (p *AnimationPool) Reset() {
	for i := range p.blocks {
		p.blocks[i].State = BlockDead
	}
}

// Blocks exposes the slots for rendering and tests.
func (p *AnimationPool) Blocks() *[MaxAnimations]AnimatedBlock {
	return &p.blocks
}

// ActiveCount returns how many slots are not Dead.
func (p *AnimationPool) ActiveCount() int {
	count := 0
	for i := range p.blocks {
		if p.blocks[i].State != BlockDead {
			count++
		}
	}
	return count
}
