// Package simulator completes partially specified Hold'em spots by Monte
// Carlo simulation and tallies per-player outcomes.
package simulator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox/holdem-equity/internal/deck"
	"github.com/lox/holdem-equity/internal/evaluator"
)

// MaxPlayers is the largest seat count a spot can hold.
const MaxPlayers = 9

// Spot parse and validation errors. Card token errors wrap
// deck.ErrMalformedToken.
var (
	ErrBadPlayerCount = errors.New("player count must be between 2 and 9")
	ErrBadBoardSize   = errors.New("board must have 0, 3, 4 or 5 cards")
	ErrDuplicateCard  = errors.New("duplicate card")
	ErrOverflow       = errors.New("spot requires more cards than the deck holds")
)

// fillSlot identifies where one random draw lands: a player's hole (the
// player index) or the shared board.
type fillSlot uint8

const boardSlot fillSlot = 0xff

// Spot is a fully parsed scenario: a seat count, any pre-assigned hole and
// board cards, and a fixed plan for filling the remaining slots. Once built
// a Spot is read-only; simulation works on per-iteration copies of its
// hands.
type Spot struct {
	NumPlayers int

	holes   [MaxPlayers]evaluator.Hand
	holeCnt [MaxPlayers]int
	common  evaluator.Hand
	allMask deck.Card64
	missing int
	plan    []fillSlot
	ready   bool
	text    string
}

// ParseSpot parses a spot string of the form
//
//	NP [hole1] [hole2] ... [holeN] [- b1 b2 b3 b4 b5]
//
// where N is the seat count, each hole token gives zero, one or two cards
// ("AhAd", "Ah", "--"), a lone "-" introduces the board, and any card may
// be "--" to mean unknown. Omitted trailing players are fully unknown.
func ParseSpot(input string) (*Spot, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty spot", deck.ErrMalformedToken)
	}

	head := fields[0]
	if len(head) != 2 || (head[1] != 'P' && head[1] != 'p') {
		return nil, fmt.Errorf("%w: bad spot header %q", deck.ErrMalformedToken, head)
	}
	if head[0] < '2' || head[0] > '9' {
		return nil, fmt.Errorf("%w: %q", ErrBadPlayerCount, head)
	}

	s := &Spot{
		NumPlayers: int(head[0] - '0'),
		text:       strings.Join(fields, " "),
	}

	playerToks := fields[1:]
	var boardToks []string
	for i, tok := range playerToks {
		if tok == "-" {
			boardToks = playerToks[i+1:]
			playerToks = playerToks[:i]
			break
		}
	}

	if len(playerToks) > s.NumPlayers {
		return nil, fmt.Errorf("%w: hole cards for %d players in a %d-handed spot",
			ErrBadPlayerCount, len(playerToks), s.NumPlayers)
	}
	for p, tok := range playerToks {
		if len(tok) != 2 && len(tok) != 4 {
			return nil, fmt.Errorf("%w: hole token %q", deck.ErrMalformedToken, tok)
		}
		for off := 0; off < len(tok); off += 2 {
			c, err := deck.ParseCard(tok[off : off+2])
			if err != nil {
				return nil, err
			}
			if c == deck.NoCard {
				continue
			}
			if err := s.place(&s.holes[p], c); err != nil {
				return nil, err
			}
			s.holeCnt[p]++
		}
	}

	if n := len(boardToks); n != 0 && (n < 3 || n > 5) {
		return nil, fmt.Errorf("%w: got %d", ErrBadBoardSize, n)
	}
	boardCnt := 0
	for _, tok := range boardToks {
		c, err := deck.ParseCard(tok)
		if err != nil {
			return nil, err
		}
		if c == deck.NoCard {
			continue
		}
		if err := s.place(&s.common, c); err != nil {
			return nil, err
		}
		boardCnt++
	}

	given := 0
	for p := 0; p < s.NumPlayers; p++ {
		given += s.holeCnt[p]
	}
	s.missing = 2*s.NumPlayers - given + 5 - boardCnt
	if s.missing < 0 || s.missing > s.allMask.Remaining() {
		return nil, fmt.Errorf("%w: %d missing, %d remaining",
			ErrOverflow, s.missing, s.allMask.Remaining())
	}

	// the fill plan completes the board before any hole, in seat order
	s.plan = make([]fillSlot, 0, s.missing)
	for i := 0; i < 5-boardCnt; i++ {
		s.plan = append(s.plan, boardSlot)
	}
	for p := 0; p < s.NumPlayers; p++ {
		for i := s.holeCnt[p]; i < 2; i++ {
			s.plan = append(s.plan, fillSlot(p))
		}
	}

	s.ready = true
	return s, nil
}

func (s *Spot) place(h *evaluator.Hand, c deck.Card) error {
	if !h.Add(c, s.allMask) {
		return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
	}
	s.allMask.Add(c)
	return nil
}

// Ready reports whether the spot parsed and validated cleanly.
func (s *Spot) Ready() bool {
	return s.ready
}

// Missing returns the number of random draws each simulation needs.
func (s *Spot) Missing() int {
	return s.missing
}

// HoleCards returns how many cards player p was dealt up front.
func (s *Spot) HoleCards(p int) int {
	return s.holeCnt[p]
}

// String returns the spot in its parse grammar.
func (s *Spot) String() string {
	return s.text
}
