package simulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSpot(t *testing.T, input string, games, threads int) ([]Result, uint64) {
	t.Helper()
	spot, err := ParseSpot(input)
	require.NoError(t, err)
	results, played, err := Run(spot, games, threads)
	require.NoError(t, err)
	return results, played
}

func TestRunTieAccounting(t *testing.T) {
	// every simulated game hands out exactly one pot: the per-player sum
	// of wins*TieUnit + tie units must equal games*TieUnit
	for _, input := range []string{
		"2P 3d",
		"9P",
		"4P AhAd AcTh 7c6s 2h3h - 2c 3c 4c",
		"3P KhKs - Ac Ad 7c Ts Qs",
	} {
		results, played := runSpot(t, input, 20_000, 4)
		var total uint64
		for _, r := range results {
			total += r.Wins*TieUnit + r.TieUnits
		}
		assert.Equal(t, played*TieUnit, total, "spot %q", input)
	}
}

func TestRunDeterministic(t *testing.T) {
	a, playedA := runSpot(t, "4P AcTc TdTh - 5h 6h 9c", 50_000, 4)
	b, playedB := runSpot(t, "4P AcTc TdTh - 5h 6h 9c", 50_000, 4)
	assert.Equal(t, playedA, playedB)
	assert.Equal(t, a, b, "same spot, games and threads must reproduce bit-identical tallies")
}

func TestRunThreadCountChangesSplitNotValidity(t *testing.T) {
	results, played := runSpot(t, "2P AhAd", 999, 4)
	// 999 games over 4 threads rounds down to 249 each
	assert.Equal(t, uint64(996), played)
	var total uint64
	for _, r := range results {
		total += r.Wins*TieUnit + r.TieUnits
	}
	assert.Equal(t, played*TieUnit, total)
}

func TestRunFewerGamesThanThreads(t *testing.T) {
	_, played := runSpot(t, "2P", 2, 8)
	// each thread runs at least one game
	assert.Equal(t, uint64(8), played)
}

func TestRunRejectsUnreadySpot(t *testing.T) {
	_, _, err := Run(nil, 100, 1)
	assert.Error(t, err)

	_, _, err = Run(&Spot{NumPlayers: 2}, 100, 1)
	assert.Error(t, err)
}

// Reference equities, estimated tolerances wide enough for Monte Carlo
// noise at this sample size.
func TestRunKnownEquities(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		equity []float64
	}{
		{
			name:   "AK offsuit vs sevens",
			input:  "2P AcKd 7h7s",
			equity: []float64{0.446, 0.554},
		},
		{
			name:   "one known card",
			input:  "2P 3d",
			equity: []float64{0.425, 0.575},
		},
		{
			name:   "kings on a determined board",
			input:  "3P KhKs - 8c 4d 7c Ts Qs",
			equity: []float64{0.704, 0.148, 0.148},
		},
		{
			name:   "three singletons on a flop",
			input:  "3P Ac Td 7h - 5h 6h 9c",
			equity: []float64{0.313, 0.216, 0.471},
		},
	}

	const games = 400_000
	const tolerance = 0.01

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, played := runSpot(t, tt.input, games, 4)
			require.Len(t, results, len(tt.equity))
			for p, want := range tt.equity {
				got := results[p].Equity(played)
				assert.InDelta(t, want, got, tolerance, "player %d", p+1)
			}
		})
	}
}

func TestResultRates(t *testing.T) {
	r := Result{Wins: 25, TieUnits: 25 * TieUnit}
	assert.InDelta(t, 0.5, r.Equity(100), 1e-9)
	assert.InDelta(t, 0.25, r.WinRate(100), 1e-9)
	assert.InDelta(t, 0.25, r.TieRate(100), 1e-9)
	assert.Zero(t, r.Equity(0))
}

func BenchmarkSimulate(b *testing.B) {
	spot, err := ParseSpot("4P AcTc TdTh - 5h 6h 9c")
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	// one worker, so the benchmark measures the iteration loop itself
	for i := 0; i < b.N; i++ {
		if _, _, err := Run(spot, 1000, 1); err != nil {
			b.Fatal(err)
		}
	}
}
