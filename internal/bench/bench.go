// Package bench runs the built-in benchmark spot list and condenses the
// outcome into a signature that pins scoring and draw behavior end to end.
package bench

import (
	"fmt"
	"time"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"

	"github.com/lox/holdem-equity/internal/simulator"
)

// DefaultGames is the per-spot game count of a full benchmark run.
const DefaultGames = 1_500_000

// DefaultSpots is the built-in benchmark list, covering seat counts from
// heads-up to full ring, fully known boards, partially known holes and
// fully random spots.
var DefaultSpots = []string{
	"2P 3d",
	"3P KhKs - Ac Ad 7c Ts Qs",
	"4P AcTc TdTh - 5h 6h 9c",
	"5P 2c3d KsTc AhTd - 4d 5d 9c 9d",
	"6P Ac Ad KsKd 3c - 2c 2h 7c 7h 8c",
	"7P Ad Kc QhJh 3s4s - 2c 2h 7c 5h 8c",
	"8P - Ac Ah 3d 7h 8c",
	"9P",
	"4P AhAd AcTh 7c6s 2h3h - 2c 3c 4c",
	"4P AhAd AcTh 7c6s 2h3h",
}

// SpotResult holds one spot's tallies and timing.
type SpotResult struct {
	Spot    string
	Results []simulator.Result
	Games   uint64
	Elapsed time.Duration
}

// Report aggregates a benchmark run.
type Report struct {
	Spots      []SpotResult
	Signature  uint64
	TotalGames uint64
	Elapsed    time.Duration
}

// Rate returns games simulated per second over the whole run.
func (r *Report) Rate() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.TotalGames) / r.Elapsed.Seconds()
}

// Run simulates every spot at the given game count and folds each player's
// tally into the signature, one update per (spot, player) in list order.
// The clock is injectable so tests can fake elapsed time; pass
// quartz.NewReal() in production.
func Run(spots []string, games, threads int, clock quartz.Clock, logger zerolog.Logger) (*Report, error) {
	if clock == nil {
		clock = quartz.NewReal()
	}
	report := &Report{}
	var sig signature
	start := clock.Now()

	for _, text := range spots {
		spot, err := simulator.ParseSpot(text)
		if err != nil {
			return nil, fmt.Errorf("bench spot %q: %w", text, err)
		}
		t0 := clock.Now()
		results, played, err := simulator.Run(spot, games, threads)
		if err != nil {
			return nil, fmt.Errorf("bench spot %q: %w", text, err)
		}
		elapsed := clock.Now().Sub(t0)

		for _, r := range results {
			sig.update(r.Wins + r.TieUnits)
		}
		report.Spots = append(report.Spots, SpotResult{
			Spot:    text,
			Results: results,
			Games:   played,
			Elapsed: elapsed,
		})
		report.TotalGames += played
		logger.Debug().
			Str("spot", text).
			Uint64("games", played).
			Dur("elapsed", elapsed).
			Msg("bench spot complete")
	}

	report.Elapsed = clock.Now().Sub(start)
	report.Signature = sig.sum()
	return report, nil
}

// signature is a 64-bit mix hash over per-player tallies.
type signature struct {
	h uint64
}

func (s *signature) update(v uint64) {
	s.h = (s.h + v*2654435789) ^ (s.h >> 23)
}

func (s *signature) sum() uint64 {
	return s.h ^ s.h<<37
}
