// score.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file implements the ScoreCalculator: applying letter and word
// premium multipliers to a validated PlaceMove's main word and
// cross-words, each premium consumed at most once over the squares it
// ever touches, plus the all-tiles-used bingo bonus.

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

// BingoBonus is the extra points awarded for playing every tile on the
// rack (RackSize tiles) in a single move.
const BingoBonus = 50

// ScorePlace computes the point value of a validated PlaceMove. result
// must come from a successful ValidatePlace call against the same board.
// Scoring is read-only: it does not mark any square's premium consumed -
// that happens at commit time (see Game.Commit), since an
// unvalidated or abandoned move must never burn a premium square.
func ScorePlace(board *Board, move *PlaceMove, result *ValidationResult) int {
	// usedWordMultiplier tracks, for this move only, which new-tile
	// squares have already contributed their word multiplier to some
	// word's total. A square new to this move can be part of both the
	// main word and a cross-word it forms; its word multiplier (DW/TW)
	// counts once for the whole move, while its letter multiplier still
	// counts in each word it appears in.
	usedWordMultiplier := make(map[Coordinate]bool)
	score := scoreWord(board, result.MainWord, result.NewPositions, usedWordMultiplier)
	for _, cross := range result.CrossWords {
		score += scoreWord(board, cross, result.NewPositions, usedWordMultiplier)
	}
	if len(move.Tiles) == RackSize {
		score += BingoBonus
	}
	return score
}

// scoreWord sums letter values along word's run, applying each covered
// square's letter multiplier every time the square appears, and applies
// the product of word multipliers across squares in newPositions -
// except a square already recorded in usedWordMultiplier, whose word
// multiplier was already credited to another word formed by this same
// move (pre-existing squares never contribute a word multiplier at all,
// since their premium - if any - was already consumed when their tile
// was first placed).
func scoreWord(board *Board, word FormedWord, newPositions map[Coordinate]*Tile, usedWordMultiplier map[Coordinate]bool) int {
	rowDelta, colDelta := 0, 1
	if !word.Horizontal {
		rowDelta, colDelta = 1, 0
	}
	runes := []rune(word.Word)
	total := 0
	wordMultiplier := 1
	row, col := word.Row, word.Col
	for _, letter := range runes {
		coord := Coordinate{row, col}
		var value int
		if tile, isNew := newPositions[coord]; isNew {
			sq := board.Sq(row, col)
			value = tile.Value * sq.EffectiveLetterMultiplier()
			if !usedWordMultiplier[coord] {
				wordMultiplier *= sq.EffectiveWordMultiplier()
				usedWordMultiplier[coord] = true
			}
		} else {
			// Pre-existing tile: its letter value counts, but its
			// square's premium (if any) was already spent.
			existing := board.TileAt(row, col)
			value = tileValueFor(existing, letter)
		}
		total += value
		row += rowDelta
		col += colDelta
	}
	return total * wordMultiplier
}

// tileValueFor returns the point value of a pre-existing board tile,
// falling back to the standard English score table keyed by the square's
// displayed letter for the rare case the tile pointer itself is nil
// (which should not happen for a square that board.TileAt reports as
// occupied, but keeps this function total).
func tileValueFor(tile *Tile, letter rune) int {
	if tile != nil {
		return tile.Value
	}
	return EnglishTileSet.Scores[letter]
}
