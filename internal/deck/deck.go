package deck

import (
	"math/bits"

	"github.com/lox/holdem-equity/internal/randutil"
)

// Card64 is a bitset over the packed 64-card identifier space, one bit per
// card. Only 52 of the positions name real cards; the rank-13..15 columns
// are never set. It serves as the "already dealt" mask during simulation.
type Card64 uint64

// Add sets the card's bit.
func (m *Card64) Add(c Card) {
	*m |= 1 << c
}

// Contains reports whether the card's bit is set.
func (m Card64) Contains(c Card) bool {
	return m&(1<<c) != 0
}

// Count returns the number of cards in the set.
func (m Card64) Count() int {
	return bits.OnesCount64(uint64(m))
}

// Remaining returns how many of the 52 real cards are not in the set.
func (m Card64) Remaining() int {
	return 52 - m.Count()
}

// Draw selects a card uniformly at random from the real cards not present
// in mask. It draws a 6-bit identifier and rejects sentinels and already
// dealt cards; with at most 23 cards missing per simulation the remaining
// deck density stays above half, so the expected number of attempts per
// draw is small.
func Draw(mask Card64, rng *randutil.Rand) Card {
	for {
		c := Card(rng.Uint64() & 0x3f)
		if !c.Valid() || mask.Contains(c) {
			continue
		}
		return c
	}
}
