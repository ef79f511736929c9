// robot.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file implements the SCRABBLE(tm)-playing robot: the composite-score
// ranker that picks among GenerateCandidates' output. It is a part of the
// Go 'scrabblecore' package.
//
// Ranking constants and the rack-leave/premium-usage heuristics are
// grounded in AIStrategy.java/OptimizedStrategy.java; EasyRobot supplements
// that with a uniformly-random choice among legal moves, mirroring
// AIStrategy/EasyStrategy.java.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package scrabblecore

import (
	"context"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Ranking constants for the composite score. See spec Section 4.5.
const (
	RackLeaveWeight     = 0.15
	PremiumSquareWeight = 0.15
	BonusAllTiles       = 10.0
	BonusMultiWord      = 5.0
)

// EmptyRackBonus is added to a player's score if, after a commit refills
// their rack, both the rack and the bag are empty.
const EmptyRackBonus = 50

// Robot picks a move for the current position. Implementations never
// return an error; a robot that cannot find or resolve a move falls back
// to an exchange or a pass.
type Robot interface {
	GenerateMove(ctx context.Context, board *Board, dict *Gaddag, rack *Rack, bag *Bag, rng *rand.Rand) Move
}

// StrategicRobot ranks candidates by composite score - base tile score
// plus a strategic adjustment for rack leave and premium-square usage,
// with bonuses for using the whole rack or forming multiple words - then
// picks uniformly among the top few, per spec Section 4.5.
type StrategicRobot struct{}

// rankedCandidate pairs a Candidate with its composite score.
type rankedCandidate struct {
	candidate *Candidate
	composite float64
}

// GenerateMove implements Robot for StrategicRobot.
func (StrategicRobot) GenerateMove(ctx context.Context, board *Board, dict *Gaddag, rack *Rack, bag *Bag, rng *rand.Rand) Move {
	if rack.IsEmpty() {
		return &PassMove{}
	}
	candidates, err := GenerateCandidates(ctx, board, dict, rack)
	if err != nil || len(candidates) == 0 {
		return fallbackMove(rack, bag)
	}
	ranked := make([]rankedCandidate, len(candidates))
	for i, c := range candidates {
		ranked[i] = rankedCandidate{candidate: c, composite: compositeScore(board, rack, c)}
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].composite > ranked[j].composite })
	k := len(ranked)
	if k > 3 {
		k = 3
	}
	return ranked[rng.Intn(k)].candidate.Move
}

// compositeScore computes base + strategic per spec Section 4.5, using
// gonum's floats.Dot to combine the two weighted terms.
func compositeScore(board *Board, rack *Rack, c *Candidate) float64 {
	leave := rackLeaveValue(remainingLetters(rack, c.Move.Tiles))
	premium := premiumUsageValue(board, c)
	strategic := floats.Dot([]float64{leave, premium}, []float64{RackLeaveWeight, PremiumSquareWeight})
	if len(c.Move.Tiles) == RackSize {
		strategic += BonusAllTiles
	}
	if len(c.Result.CrossWords) > 0 {
		strategic += BonusMultiWord
	}
	return float64(c.Score) + strategic
}

// remainingLetters returns the rack's letters minus those a candidate
// move consumes: the "rack leave" the move would result in.
func remainingLetters(rack *Rack, used []*Tile) []rune {
	counts := make(map[rune]int, len(rack.Letters))
	for letter, n := range rack.Letters {
		counts[letter] = n
	}
	for _, t := range used {
		if t.IsBlank {
			counts[BlankLetter]--
		} else {
			counts[t.Letter]--
		}
	}
	var left []rune
	for letter, n := range counts {
		for i := 0; i < n; i++ {
			left = append(left, letter)
		}
	}
	return left
}

var vowelLetters = map[rune]bool{'A': true, 'E': true, 'I': true, 'O': true, 'U': true}
var hardLetters = map[rune]bool{'J': true, 'Q': true, 'X': true, 'Z': true}

// rackLeaveValue scores the quality of the tiles a move would leave
// behind, per spec Section 4.5.
func rackLeaveValue(leave []rune) float64 {
	if len(leave) == 0 {
		return 0
	}
	var value float64
	numVowels := 0
	counts := make(map[rune]int)
	for _, letter := range leave {
		if vowelLetters[letter] {
			numVowels++
		}
		counts[letter]++
	}
	ratio := float64(numVowels) / float64(len(leave))
	if ratio >= 0.3 && ratio <= 0.6 {
		value += 5
	}
	value -= 10 * absFloat(ratio-0.4)
	value += 8 * float64(counts[BlankLetter])
	value += 3 * float64(counts['S'])
	for letter, n := range counts {
		if letter == BlankLetter {
			continue
		}
		if n > 2 {
			value -= 3 * float64(n-2)
		}
		if hardLetters[letter] && n > 1 {
			value -= 5 * float64(n-1)
		}
	}
	return value
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// premiumUsageValue sums the value of still-unconsumed premium squares a
// candidate's new tiles land on, per spec Section 4.5.
func premiumUsageValue(board *Board, c *Candidate) float64 {
	var value float64
	for coord, tile := range c.Result.NewPositions {
		sq := board.Sq(coord.Row, coord.Col)
		if sq.PremiumConsumed {
			continue
		}
		switch {
		case sq.WordMultiplier == 3:
			value += 15
		case (coord.Row == CenterRow && coord.Col == CenterCol) || sq.WordMultiplier == 2:
			value += 8
		case sq.LetterMultiplier == 3:
			value += 3 * minFloat(8, float64(tile.Value))
		case sq.LetterMultiplier == 2:
			value += 1.5 * minFloat(8, float64(tile.Value))
		}
	}
	return value
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// tileValuationHeuristic scores a single tile for the exchange fallback:
// higher means more worth keeping, so the fallback exchanges the lowest
// scorers. Blanks are highly prized; a lone Q without a U is penalized.
func tileValuationHeuristic(tile *Tile, hasU bool) float64 {
	if tile.IsBlank {
		return 20
	}
	value := float64(tile.Value)
	if tile.Letter == 'Q' && !hasU {
		value -= 10
	}
	return value
}

// fallbackMove implements spec Section 4.5's fallback: exchange the two
// weakest tiles if the bag allows it, otherwise pass.
func fallbackMove(rack *Rack, bag *Bag) Move {
	if !bag.ExchangeAllowed() {
		return &PassMove{}
	}
	tiles := make([]*Tile, 0, RackSize)
	for _, t := range rack.Slots {
		if t != nil {
			tiles = append(tiles, t)
		}
	}
	if len(tiles) == 0 {
		return &PassMove{}
	}
	hasU := rack.Letters['U'] > 0
	sort.Slice(tiles, func(i, j int) bool {
		return tileValuationHeuristic(tiles[i], hasU) < tileValuationHeuristic(tiles[j], hasU)
	})
	n := 2
	if n > len(tiles) {
		n = len(tiles)
	}
	letters := make([]rune, n)
	for i := 0; i < n; i++ {
		letters[i] = tiles[i].Letter
	}
	return &ExchangeMove{Letters: letters}
}

// EasyRobot picks uniformly at random among every legal candidate move,
// falling back the same way StrategicRobot does when there is none.
type EasyRobot struct{}

// GenerateMove implements Robot for EasyRobot.
func (EasyRobot) GenerateMove(ctx context.Context, board *Board, dict *Gaddag, rack *Rack, bag *Bag, rng *rand.Rand) Move {
	if rack.IsEmpty() {
		return &PassMove{}
	}
	candidates, err := GenerateCandidates(ctx, board, dict, rack)
	if err != nil || len(candidates) == 0 {
		return fallbackMove(rack, bag)
	}
	return candidates[rng.Intn(len(candidates))].Move
}
