// board.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file implements the Board: a 15x15 grid of Squares, their premium
// multipliers, and the adjacency matrix used by move validation and the
// AI move generator.

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
	"fmt"
	"strings"
)

// BoardSize is the side length of the board.
const BoardSize = 15

// CenterRow and CenterCol locate the center square, which the opening
// move must cover.
const (
	CenterRow = BoardSize / 2
	CenterCol = BoardSize / 2
)

// Indices into AdjSquares.
const (
	Above = 0
	Left  = 1
	Right = 2
	Below = 3
)

// AdjSquares holds the four neighbors of a Square, nil where a neighbor
// does not exist (edge of the board).
type AdjSquares [4]*Square

// Square is a single board cell: its premium multipliers, the Tile
// occupying it (if any), and whether its premium has already been
// consumed by an earlier move. Per spec, a premium only ever applies the
// first time a tile is placed on the square.
type Square struct {
	Tile             *Tile
	LetterMultiplier int
	WordMultiplier   int
	PremiumConsumed  bool
	Row, Col         int
}

// String renders a Square as its tile's displayed letter, or "." if empty.
func (sq *Square) String() string {
	if sq == nil || sq.Tile == nil {
		return "."
	}
	return sq.Tile.String()
}

// EffectiveLetterMultiplier returns the letter multiplier that applies to
// a tile placed on this square right now: 1 if the premium has already
// been consumed by a previous move, the square's nominal multiplier
// otherwise.
func (sq *Square) EffectiveLetterMultiplier() int {
	if sq.PremiumConsumed {
		return 1
	}
	return sq.LetterMultiplier
}

// EffectiveWordMultiplier is the word-multiplier analogue of
// EffectiveLetterMultiplier.
func (sq *Square) EffectiveWordMultiplier() int {
	if sq.PremiumConsumed {
		return 1
	}
	return sq.WordMultiplier
}

// Board is the 15x15 grid of Squares, plus a cached adjacency matrix.
type Board struct {
	Squares   [BoardSize][BoardSize]Square
	Adjacents [BoardSize][BoardSize]AdjSquares
	NumTiles  int
}

// wordMultipliers and letterMultipliers encode the standard English
// SCRABBLE(tm) premium-square layout: triple/double word score (3/2) and
// triple/double letter score (3/2), all other squares plain (1). Row 0
// through 14, column 0 through 14; the center square (7,7) is a double
// word score. See spec Section 6.
var wordMultipliers = [BoardSize]string{
	"311111131111113",
	"121111111111121",
	"112111111111211",
	"111211111112111",
	"111121111121111",
	"111111111111111",
	"111111111111111",
	"311111121111113",
	"111111111111111",
	"111111111111111",
	"111121111121111",
	"111211111112111",
	"112111111111211",
	"121111111111121",
	"311111131111113",
}

var letterMultipliers = [BoardSize]string{
	"111211111112111",
	"111113111311111",
	"111111212111111",
	"211111121111112",
	"111111111111111",
	"131113111311131",
	"112111212111211",
	"111211111112111",
	"112111212111211",
	"131113111311131",
	"111111111111111",
	"211111121111112",
	"111111212111111",
	"111113111311111",
	"111211111112111",
}

// NewBoard allocates and initializes an empty Board with the standard
// premium layout and a precomputed adjacency matrix.
func NewBoard() *Board {
	board := &Board{}
	const zero = int('0')
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			sq := board.Sq(row, col)
			sq.Row = row
			sq.Col = col
			sq.LetterMultiplier = int(letterMultipliers[row][col]) - zero
			sq.WordMultiplier = int(wordMultipliers[row][col]) - zero
		}
	}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			adj := &board.Adjacents[row][col]
			if row > 0 {
				adj[Above] = board.Sq(row-1, col)
			}
			if row < BoardSize-1 {
				adj[Below] = board.Sq(row+1, col)
			}
			if col > 0 {
				adj[Left] = board.Sq(row, col-1)
			}
			if col < BoardSize-1 {
				adj[Right] = board.Sq(row, col+1)
			}
		}
	}
	return board
}

// Sq returns a pointer to the Square at (row, col). Callers must ensure
// the coordinates are in range; use InBounds to check first.
func (board *Board) Sq(row, col int) *Square {
	return &board.Squares[row][col]
}

// InBounds reports whether (row, col) is a valid board coordinate.
func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// TileAt returns the Tile at (row, col), or nil if the square is empty or
// the coordinate is out of bounds.
func (board *Board) TileAt(row, col int) *Tile {
	if !InBounds(row, col) {
		return nil
	}
	return board.Squares[row][col].Tile
}

// IsEmpty reports whether the board has no tiles placed on it yet.
func (board *Board) IsEmpty() bool {
	return board.NumTiles == 0
}

// CenterSquare returns the board's center square, which the first move
// must cover.
func (board *Board) CenterSquare() *Square {
	return board.Sq(CenterRow, CenterCol)
}

// String renders the Board as a printable grid, 1-based column numbers
// across the top and row numbers down the side.
func (board *Board) String() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for col := 0; col < BoardSize; col++ {
		fmt.Fprintf(&sb, "%2d ", col+1)
	}
	sb.WriteString("\n")
	for row := 0; row < BoardSize; row++ {
		fmt.Fprintf(&sb, "%2d ", row+1)
		for col := 0; col < BoardSize; col++ {
			fmt.Fprintf(&sb, "%v  ", board.Sq(row, col))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// NumAdjacentTiles returns the number of tiles on the board adjacent to
// (row, col) - used by the connectivity check in validator.go and by
// AnchorSquares in axis.go.
func (board *Board) NumAdjacentTiles(row, col int) int {
	count := 0
	for _, sq := range board.Adjacents[row][col] {
		if sq != nil && sq.Tile != nil {
			count++
		}
	}
	return count
}

// Fragment returns the run of tiles extending from (row, col) in the
// given direction (Above/Below/Left/Right), not including (row, col)
// itself, stopping at the first empty square or the edge of the board.
func (board *Board) Fragment(row, col int, direction int) []*Tile {
	if !InBounds(row, col) || direction < Above || direction > Below {
		return nil
	}
	frag := make([]*Tile, 0, BoardSize-1)
	for {
		sq := board.Adjacents[row][col][direction]
		if sq == nil || sq.Tile == nil {
			break
		}
		frag = append(frag, sq.Tile)
		row, col = sq.Row, sq.Col
	}
	return frag
}

// WordFragment returns the word formed by the tile run emanating from
// (row, col) in the given direction, in left-to-right / top-to-bottom
// reading order, not including (row, col) itself.
func (board *Board) WordFragment(row, col int, direction int) string {
	frag := board.Fragment(row, col, direction)
	var sb strings.Builder
	if direction == Left || direction == Above {
		for i := len(frag) - 1; i >= 0; i-- {
			sb.WriteRune(frag[i].Meaning)
		}
	} else {
		for _, tile := range frag {
			sb.WriteRune(tile.Meaning)
		}
	}
	return sb.String()
}

// CrossWord returns the full word crossing (row, col) perpendicular to
// axisHorizontal (i.e. the vertical word if axisHorizontal is true), built
// from the existing board tiles around (row, col) plus the tile about to
// be placed there. ok is false if there is no crossing (the tile would
// stand alone in the cross direction).
func (board *Board) CrossWord(row, col int, axisHorizontal bool, placing *Tile) (word string, ok bool) {
	var before, after int
	if axisHorizontal {
		before, after = Above, Below
	} else {
		before, after = Left, Right
	}
	left := board.Fragment(row, col, before)
	right := board.Fragment(row, col, after)
	if len(left) == 0 && len(right) == 0 {
		return "", false
	}
	var sb strings.Builder
	for i := len(left) - 1; i >= 0; i-- {
		sb.WriteRune(left[i].Meaning)
	}
	sb.WriteRune(placing.Meaning)
	for _, tile := range right {
		sb.WriteRune(tile.Meaning)
	}
	return sb.String(), true
}
