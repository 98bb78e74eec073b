package evaluator

// The score-mask table replaces the finalizer's priority chain with one
// lookup. It is indexed by the positions of the top two bits of values,
// where the second position is taken after clearing the whole rank column
// of the first. That pair of positions is enough to classify the hand:
//
//	(row3 r, *)      quads of r, one kicker
//	(row2 r, row2 q) two sets, full house r over q
//	(row2 r, row1 q) set plus pair, full house r over q
//	(row2 r, row0 *) lone set, two kickers
//	(row1 r, row1 q) two pair, one kicker
//	(row1 r, row0 *) one pair, three kickers
//	(row0 *, row0 *) no groups, five kickers
//
// A column is contiguous from row 0 up, so any pair in the hand owns a
// row-1 bit that outranks every row-0 bit; the classification above is
// therefore exact. Combinations the layout cannot produce are never looked
// up; their entries are whatever the first position's row selects. Two pair
// ORs in a dedicated score bit above the row-1 rank bits, so any two pair
// outranks any one pair. The table is pure data built once at package
// initialisation and read-only thereafter.

type scoreMask struct {
	and   uint64
	or    uint64
	kick  uint8
	flags Flags
}

var scoreMasks = buildScoreMasks()

func buildScoreMasks() [4096]scoreMask {
	var t [4096]scoreMask
	for a := 0; a < 64; a++ {
		for b := 0; b < 64; b++ {
			t[a<<6|b] = makeMask(a, b)
		}
	}
	return t
}

func makeMask(a, b int) scoreMask {
	ra, la := uint(a&0x0f), a>>4
	rb, lb := uint(b&0x0f), b>>4
	switch la {
	case 3:
		return scoreMask{
			and:   1<<uint(a) | rankBits&^(1<<ra),
			kick:  1,
			flags: FlagQuads,
		}
	case 2:
		switch lb {
		case 2:
			// the lower set donates its pair to the full house
			return scoreMask{
				and:   1<<uint(a) | 1<<(16+rb),
				or:    scoreFullHouse,
				flags: FlagTrips | FlagPair | FlagFullHouse,
			}
		case 1:
			return scoreMask{
				and:   1<<uint(a) | 1<<uint(b),
				or:    scoreFullHouse,
				flags: FlagTrips | FlagPair | FlagFullHouse,
			}
		default:
			return scoreMask{
				and:   1<<uint(a) | rankBits&^(1<<ra),
				kick:  2,
				flags: FlagTrips,
			}
		}
	case 1:
		if lb == 1 {
			// a third pair loses its row-1 bit here but keeps its row-0
			// bit, so its top card stays eligible as the kicker
			return scoreMask{
				and:   1<<uint(a) | 1<<uint(b) | rankBits&^(1<<ra)&^(1<<rb),
				or:    scoreTwoPair,
				kick:  1,
				flags: FlagPair | FlagTwoPair,
			}
		}
		return scoreMask{
			and:   1<<uint(a) | rankBits&^(1<<ra),
			kick:  3,
			flags: FlagPair,
		}
	default:
		return scoreMask{and: rankBits, kick: 5}
	}
}
