// Package evaluator implements a high-performance Texas Hold'em hand
// evaluator over bit-packed state.
//
// A hand is accumulated into two 64-bit words, each viewed as four 16-bit
// rows indexed by rank:
//
//   - values encodes multiplicity by column: a rank seen m times lights the
//     bottom m rows of its column, so row 0 is "at least once", row 1 "at
//     least twice", and so on up to quads in row 3.
//   - colors has one row per suit with a bit per rank, and is consulted only
//     for flush detection. Its layout makes a suit row directly reusable as
//     a rank bitmap.
//
// Scoring collapses the accumulated words into a single 64-bit key whose
// numeric ordering agrees with poker hand rank for every 7-card combination
// (see score.go and masks.go). All of it is branch-light bit arithmetic on
// stack-resident words: no allocation, no table larger than the 4096-entry
// score-mask array, millions of evaluations per second per core.
package evaluator

import (
	"math/bits"

	"github.com/lox/holdem-equity/internal/deck"
)

const (
	row0 uint64 = 0xffff
	// rankBits masks the 13 real rank columns of a row
	rankBits uint64 = 0x1fff
)

// Hand is the evaluator's working state for one player's cards. The zero
// value is an empty hand. Hands are cheap to copy; the simulator clones a
// spot's pre-assigned hands into per-iteration scratch copies.
type Hand struct {
	values uint64
	colors uint64
	score  uint64
	flags  Flags
}

// Add merges one card into the hand. It refuses sentinel identifiers and
// cards already present in the hand or in the caller's dealt mask, returning
// false without mutating anything. On success it sets the card's bit in
// colors and promotes the rank's multiplicity column in values.
func (h *Hand) Add(c deck.Card, dealt deck.Card64) bool {
	if c&0x0f >= 13 {
		return false
	}
	bit := uint64(1) << c
	if (h.colors|uint64(dealt))&bit != 0 {
		return false
	}
	h.colors |= bit
	n := uint64(1) << (c & 0x0f)
	for h.values&n != 0 {
		n <<= 16
	}
	h.values |= n
	return true
}

// Merge folds another hand's cards into h. The common case, merging hole
// cards with a board that shares no ranks, is a two-OR fast path; otherwise
// each of the other hand's cards is re-added so multiplicity columns stay
// contiguous.
func (h *Hand) Merge(o *Hand) {
	if h.values&o.values == 0 {
		h.values |= o.values
		h.colors |= o.colors
		return
	}
	for m := o.colors; m != 0; m &= m - 1 {
		h.Add(deck.Card(bits.TrailingZeros64(m)), 0)
	}
}

// Count returns the number of cards in the hand.
func (h *Hand) Count() int {
	return bits.OnesCount64(h.colors)
}

// Cards returns the hand's cards as a dealt mask.
func (h *Hand) Cards() deck.Card64 {
	return deck.Card64(h.colors)
}

// Flags returns the combinations detected by the last Score call.
func (h *Hand) Flags() Flags {
	return h.flags
}
