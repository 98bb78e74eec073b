package simulator

import (
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-equity/internal/deck"
	"github.com/lox/holdem-equity/internal/randutil"
)

// TieUnit is the integer pot quantum: 2520 is the least common multiple of
// 1..9, so a k-way split of one pot is exact for every seat count.
const TieUnit = 2520

// Result tallies one player's outcomes. A sole win adds one to Wins; a
// k-way tie adds TieUnit/k to TieUnits of each tied player.
type Result struct {
	Wins     uint64
	TieUnits uint64
}

// Equity returns the player's pot share over the given number of games.
func (r Result) Equity(games uint64) float64 {
	if games == 0 {
		return 0
	}
	return (float64(r.Wins) + float64(r.TieUnits)/TieUnit) / float64(games)
}

// WinRate returns the fraction of games the player won outright.
func (r Result) WinRate(games uint64) float64 {
	if games == 0 {
		return 0
	}
	return float64(r.Wins) / float64(games)
}

// TieRate returns the fraction of games the player tied.
func (r Result) TieRate(games uint64) float64 {
	if games == 0 {
		return 0
	}
	return float64(r.TieUnits) / TieUnit / float64(games)
}

// Run splits games across threads of independent simulation and reduces the
// per-thread tallies elementwise. Worker i seeds its generator from its own
// index, never the clock, so a (spot, games, threads) triple reproduces
// bit-identical tallies on every run and platform. The second return value
// is the number of games actually played, which is per-thread work times
// thread count.
func Run(spot *Spot, games, threads int) ([]Result, uint64, error) {
	if spot == nil || !spot.ready {
		return nil, 0, errors.New("spot is not ready")
	}
	if games < 1 {
		games = 1
	}
	if threads < 1 {
		threads = runtime.NumCPU()
	}
	perThread := games / threads
	if games < threads {
		perThread = 1
	}

	perWorker := make([][]Result, threads)
	var g errgroup.Group
	for i := 0; i < threads; i++ {
		g.Go(func() error {
			rng := randutil.New(uint64(i))
			local := make([]Result, spot.NumPlayers)
			var scores [MaxPlayers]uint64
			for n := 0; n < perThread; n++ {
				spot.simulate(rng, &scores, local)
			}
			perWorker[i] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	out := make([]Result, spot.NumPlayers)
	for _, local := range perWorker {
		for p := range out {
			out[p].Wins += local[p].Wins
			out[p].TieUnits += local[p].TieUnits
		}
	}
	return out, uint64(perThread) * uint64(threads), nil
}

// simulate plays out one game: complete the board, complete each hole,
// score every seat and award the pot. All scratch state lives on the
// caller's stack; the hot loop allocates nothing.
func (s *Spot) simulate(rng *randutil.Rand, scores *[MaxPlayers]uint64, results []Result) {
	dealt := s.allMask
	board := s.common
	hands := s.holes

	for _, sl := range s.plan {
		c := deck.Draw(dealt, rng)
		var ok bool
		if sl == boardSlot {
			ok = board.Add(c, dealt)
		} else {
			ok = hands[sl].Add(c, dealt)
		}
		if !ok {
			// Draw only yields cards outside the dealt mask, so a failed
			// Add means the deal bookkeeping is corrupt
			panic("simulate: drew a card already dealt")
		}
		dealt.Add(c)
	}

	best := uint64(0)
	winner := 0
	k := 0
	for p := 0; p < s.NumPlayers; p++ {
		hands[p].Merge(&board)
		sc := hands[p].Score()
		scores[p] = sc
		switch {
		case sc > best:
			best, winner, k = sc, p, 1
		case sc == best:
			k++
		}
	}

	if k == 1 {
		results[winner].Wins++
		return
	}
	share := uint64(TieUnit / k)
	for p := 0; p < s.NumPlayers; p++ {
		if scores[p] == best {
			results[p].TieUnits += share
		}
	}
}
