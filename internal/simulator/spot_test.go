package simulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-equity/internal/deck"
)

func TestParseSpot(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		players int
		missing int
		holes   []int // given hole cards per seat
	}{
		{
			name:    "fully unknown full ring",
			input:   "9P",
			players: 9,
			missing: 23,
			holes:   []int{0, 0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name:    "one known card heads-up",
			input:   "2P 3d",
			players: 2,
			missing: 8,
			holes:   []int{1, 0},
		},
		{
			name:    "fully determined board",
			input:   "3P KhKs - Ac Ad 7c Ts Qs",
			players: 3,
			missing: 4,
			holes:   []int{2, 0, 0},
		},
		{
			name:    "partial holes and flop",
			input:   "4P AcTc TdTh - 5h 6h 9c",
			players: 4,
			missing: 6,
			holes:   []int{2, 2, 0, 0},
		},
		{
			name:    "board only",
			input:   "8P - Ac Ah 3d 7h 8c",
			players: 8,
			missing: 16,
			holes:   []int{0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name:    "single hole cards and unknowns",
			input:   "7P Ad Kc QhJh 3s4s - 2c 2h 7c 5h 8c",
			players: 7,
			missing: 8,
			holes:   []int{1, 1, 2, 2, 0, 0, 0},
		},
		{
			name:    "unknown markers in holes",
			input:   "3P --Ah -- - 2c 3c 4c",
			players: 3,
			missing: 7,
			holes:   []int{1, 0, 0},
		},
		{
			name:    "unknown marker on board",
			input:   "2P AhAd - 2c -- 4c",
			players: 2,
			missing: 5,
			holes:   []int{2, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spot, err := ParseSpot(tt.input)
			require.NoError(t, err)
			assert.True(t, spot.Ready())
			assert.Equal(t, tt.players, spot.NumPlayers)
			assert.Equal(t, tt.missing, spot.Missing())
			for p, want := range tt.holes {
				assert.Equal(t, want, spot.HoleCards(p), "player %d", p+1)
			}
			assert.Len(t, spot.plan, tt.missing)
		})
	}
}

func TestParseSpotErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", deck.ErrMalformedToken},
		{"bad header", "four", deck.ErrMalformedToken},
		{"one player", "1P", ErrBadPlayerCount},
		{"zero players", "0P", ErrBadPlayerCount},
		{"too many hole tokens", "2P AhAd KcKd QhQd", ErrBadPlayerCount},
		{"bad card", "2P AhXx", deck.ErrMalformedToken},
		{"odd hole token", "2P AhK", deck.ErrMalformedToken},
		{"board of one", "2P - Ac", ErrBadBoardSize},
		{"board of two", "2P - Ac Ad", ErrBadBoardSize},
		{"board of six", "2P - Ac Ad 2c 3c 4c 5c", ErrBadBoardSize},
		{"duplicate across holes", "2P AhAd AhKc", ErrDuplicateCard},
		{"duplicate within hole", "2P AhAh", ErrDuplicateCard},
		{"duplicate on board", "2P AhAd - Ah 2c 3c", ErrDuplicateCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spot, err := ParseSpot(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, spot)
		})
	}
}

func TestParseSpotBoardFirst(t *testing.T) {
	// the fill plan completes the board before any hole
	spot, err := ParseSpot("3P AhAd - 2c 3c 4c")
	require.NoError(t, err)
	require.Len(t, spot.plan, 6)
	assert.Equal(t, []fillSlot{boardSlot, boardSlot, 1, 1, 2, 2}, spot.plan)
}

func TestParseSpotString(t *testing.T) {
	spot, err := ParseSpot("  4P AcTc   TdTh - 5h 6h 9c ")
	require.NoError(t, err)
	assert.Equal(t, "4P AcTc TdTh - 5h 6h 9c", spot.String())
}

func TestDefaultBenchSpotsParse(t *testing.T) {
	spots := []string{
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
	for _, s := range spots {
		_, err := ParseSpot(s)
		assert.NoError(t, err, "spot %q", s)
	}
}
