package core

// Key is a single buffered input event. Printable keys are their byte
// value (Key('w'), Key('1')); special keys use negative codes so they
// can never collide with characters.
type Key int

// Special key codes.
const (
	KeyNone Key = -(iota + 1)
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// keyBufferCap bounds how many unconsumed key presses are remembered
// between ticks. Overflow drops the newest key; the game reads one key
// per tick and stale mashing is worthless.
const keyBufferCap = 8

// KeyBuffer is a bounded FIFO of pending key presses. The platform
// pushes keys as they arrive; the game polls one per tick. Poll is
// non-blocking: an empty buffer reports no input rather than waiting.
type KeyBuffer struct {
	keys []Key
}

// NewKeyBuffer creates an empty key buffer.
func NewKeyBuffer() *KeyBuffer {
	return &KeyBuffer{keys: make([]Key, 0, keyBufferCap)}
}

// Push appends a key, dropping it silently when the buffer is full.
func (b *KeyBuffer) Push(k Key) {
	if k == KeyNone || len(b.keys) >= keyBufferCap {
		return
	}
	b.keys = append(b.keys, k)
}

// Poll removes and returns the oldest pending key. The second result
// is false when no key is pending.
func (b *KeyBuffer) Poll() (Key, bool) {
	if len(b.keys) == 0 {
		return KeyNone, false
	}
	k := b.keys[0]
	b.keys = b.keys[1:]
	return k, true
}

// Clear discards all pending keys.
func (b *KeyBuffer) Clear() {
	b.keys = b.keys[:0]
}

// Len returns the number of pending keys.
func (b *KeyBuffer) Len() int {
	return len(b.keys)
}
