// tile.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file implements the Letter/Tile data model: the classic English
// SCRABBLE(tm) letter distribution and the Tile type that carries a
// letter, its point value, and blank-tile bookkeeping.

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

// BlankLetter is the rune used to denote a blank tile, both in a Rack's
// letter map and as a Tile.Letter value before it is assigned a meaning.
const BlankLetter = '?'

// Tile is a single physical tile: a letter (or BlankLetter), its nominal
// point value, and - for blanks - the meaning assigned to it at placement
// time. Two tiles are equal iff Letter, Value and IsBlank all match; in
// practice tiles are compared and removed by pointer identity within a
// Rack, with value-based matching as the documented fallback (see
// Rack.RemoveTile).
type Tile struct {
	Letter   rune
	Meaning  rune // Displayed letter once placed; equals Letter for non-blanks
	Value    int  // Nominal point value; always 0 for a blank, even once assigned
	IsBlank  bool
	PlayedBy int // Which player played the tile (set once placed on the board)
}

// AssignMeaning fixes the displayed letter of a blank tile. It is a no-op
// for non-blank tiles, whose Meaning always equals Letter.
func (tile *Tile) AssignMeaning(letter rune) {
	if tile == nil {
		return
	}
	if tile.IsBlank {
		tile.Meaning = letter
		return
	}
	tile.Meaning = tile.Letter
}

// String represents a Tile as its displayed letter, or "." for a nil Tile.
func (tile *Tile) String() string {
	if tile == nil {
		return "."
	}
	if tile.Meaning == 0 {
		return string(tile.Letter)
	}
	return string(tile.Meaning)
}

// TileSet is the static prototype a fresh Bag is copied from: a full set
// of 100 Tile values plus the scoring table used to look up point values
// for letters that are not yet tied to a concrete Tile (e.g. the tiles
// move generation builds in movegen.go).
type TileSet struct {
	Tiles  []Tile
	Scores map[rune]int
}

// englishCounts is the standard English SCRABBLE(tm) letter distribution:
// 100 tiles, A:9 ... Z:1, plus two blanks. See spec Section 6.
var englishCounts = map[rune]int{
	'A': 9, 'B': 2, 'C': 2, 'D': 4, 'E': 12,
	'F': 2, 'G': 3, 'H': 2, 'I': 9, 'J': 1,
	'K': 1, 'L': 4, 'M': 2, 'N': 6, 'O': 8,
	'P': 2, 'Q': 1, 'R': 6, 'S': 4, 'T': 6,
	'U': 4, 'V': 2, 'W': 2, 'X': 1, 'Y': 2,
	'Z': 1, BlankLetter: 2,
}

// englishScores is the standard English SCRABBLE(tm) letter point table.
var englishScores = map[rune]int{
	'A': 1, 'B': 3, 'C': 3, 'D': 2, 'E': 1,
	'F': 4, 'G': 2, 'H': 4, 'I': 1, 'J': 8,
	'K': 5, 'L': 1, 'M': 3, 'N': 1, 'O': 1,
	'P': 3, 'Q': 10, 'R': 1, 'S': 1, 'T': 1,
	'U': 1, 'V': 4, 'W': 4, 'X': 8, 'Y': 4,
	'Z': 10, BlankLetter: 0,
}

// buildTileSet assembles a TileSet from a letter-count table and a scoring
// table, in the manner of the teacher's initTileSet.
func buildTileSet(counts map[rune]int, scores map[rune]int) *TileSet {
	numTiles := 0
	for _, count := range counts {
		numTiles += count
	}
	tiles := make([]Tile, numTiles)
	i := 0
	for letter, count := range counts {
		isBlank := letter == BlankLetter
		value := scores[letter]
		for j := 0; j < count; j++ {
			t := &tiles[i]
			i++
			t.Letter = letter
			t.IsBlank = isBlank
			t.Value = value
			if !isBlank {
				t.Meaning = letter
			}
		}
	}
	if i != numTiles {
		panic("scrabblecore: did not assign all tiles in tile set")
	}
	return &TileSet{Tiles: tiles, Scores: scores}
}

// initEnglishTileSet builds the standard English SCRABBLE(tm) TileSet.
func initEnglishTileSet() *TileSet {
	return buildTileSet(englishCounts, englishScores)
}

// EnglishTileSet is the standard English SCRABBLE(tm) tile set: 100 tiles
// with the classic letter distribution and point values.
var EnglishTileSet = initEnglishTileSet()
