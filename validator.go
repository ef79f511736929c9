// validator.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file implements move validation: overlaying a tentative PlaceMove
// on top of the live board, extracting the main word and any cross-words
// it forms, checking each against the dictionary, and enforcing the
// geometric and connectivity rules a legal placement must satisfy.
//
// Grounded on model/MoveValidator.java's overall shape (overlay, collect
// words, validate, check connectivity), but - per the redesign this
// engine implements - connectivity is derived directly from the overlay
// diff (the set of newly placed positions) instead of by re-scanning the
// board for word-text matches, and there is no bidirectional-reading
// mode.

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

// ValidationResult carries everything score.go and game.go need once a
// PlaceMove has been checked: the words it forms and the overlay map of
// newly placed tiles, keyed by board position.
type ValidationResult struct {
	MainWord     FormedWord
	CrossWords   []FormedWord
	NewPositions map[Coordinate]*Tile
}

// directionDelta returns the (rowDelta, colDelta) unit step for a
// Direction.
func directionDelta(dir Direction) (rowDelta, colDelta int) {
	if dir == Vertical {
		return 1, 0
	}
	return 0, 1
}

// ValidatePlace checks move against board and dict, returning the words
// it forms on success. first indicates whether this is the opening move
// of the game (board.IsEmpty()); it is passed explicitly rather than
// re-derived so callers validating against a hypothetical/overlay board
// state keep control of the rule.
func ValidatePlace(board *Board, dict *Gaddag, move *PlaceMove, first bool) (*ValidationResult, error) {
	if len(move.Tiles) == 0 {
		return nil, ErrNoTiles
	}

	rowDelta, colDelta := directionDelta(move.Direction)
	newPositions := make(map[Coordinate]*Tile, len(move.Tiles))
	order := make([]Coordinate, 0, len(move.Tiles))
	row, col := move.StartRow, move.StartCol
	tileIdx := 0
	for tileIdx < len(move.Tiles) {
		if !InBounds(row, col) {
			return nil, ErrOutOfBounds
		}
		coord := Coordinate{row, col}
		order = append(order, coord)
		if board.TileAt(row, col) == nil {
			newPositions[coord] = move.Tiles[tileIdx]
			tileIdx++
		}
		row += rowDelta
		col += colDelta
	}

	if first {
		center := Coordinate{CenterRow, CenterCol}
		if _, ok := newPositions[center]; !ok {
			return nil, ErrFirstMoveMissesCenter
		}
	}

	overlay := func(r, c int) *Tile {
		if t, ok := newPositions[Coordinate{r, c}]; ok {
			return t
		}
		return board.TileAt(r, c)
	}

	// Main word: the pre-existing prefix before StartRow/StartCol, the
	// covered run itself, then the pre-existing suffix after the last
	// covered square.
	lastRow, lastCol := row-rowDelta, col-colDelta
	reverseRow, reverseCol := -rowDelta, -colDelta
	var mainRunes []rune
	pr, pc := move.StartRow+reverseRow, move.StartCol+reverseCol
	prefixLen := 0
	for InBounds(pr, pc) {
		t := board.TileAt(pr, pc)
		if t == nil {
			break
		}
		prefixLen++
		pr, pc = pr+reverseRow, pc+reverseCol
	}
	mainStartRow, mainStartCol := move.StartRow+reverseRow*prefixLen, move.StartCol+reverseCol*prefixLen
	for r, c := mainStartRow, mainStartCol; ; r, c = r+rowDelta, c+colDelta {
		t := overlay(r, c)
		if t == nil {
			break
		}
		mainRunes = append(mainRunes, t.Meaning)
		if r == lastRow && c == lastCol {
			// Continue past the covered run to pick up any
			// pre-existing suffix.
			r, c = r+rowDelta, c+colDelta
			for InBounds(r, c) {
				suffixTile := board.TileAt(r, c)
				if suffixTile == nil {
					break
				}
				mainRunes = append(mainRunes, suffixTile.Meaning)
				r, c = r+rowDelta, c+colDelta
			}
			break
		}
	}
	mainWord := string(mainRunes)
	if !dict.IsValidWord(mainWord) {
		return nil, notInDictionary(mainWord)
	}

	result := &ValidationResult{
		MainWord: FormedWord{
			Word:       mainWord,
			Row:        mainStartRow,
			Col:        mainStartCol,
			Horizontal: move.Direction == Horizontal,
		},
		NewPositions: newPositions,
	}

	crossRowDelta, crossColDelta := colDelta, rowDelta // perpendicular unit step
	for _, coord := range order {
		if _, isNew := newPositions[coord]; !isNew {
			continue
		}
		prefix, cr, cc := "", coord.Row-crossRowDelta, coord.Col-crossColDelta
		startRow, startCol := coord.Row, coord.Col
		var before []rune
		for InBounds(cr, cc) {
			t := board.TileAt(cr, cc)
			if t == nil {
				break
			}
			before = append([]rune{t.Meaning}, before...)
			startRow, startCol = cr, cc
			cr, cc = cr-crossRowDelta, cc-crossColDelta
		}
		prefix = string(before)
		var after []rune
		cr, cc = coord.Row+crossRowDelta, coord.Col+crossColDelta
		for InBounds(cr, cc) {
			t := board.TileAt(cr, cc)
			if t == nil {
				break
			}
			after = append(after, t.Meaning)
			cr, cc = cr+crossRowDelta, cc+crossColDelta
		}
		crossWord := prefix + string(overlay(coord.Row, coord.Col).Meaning) + string(after)
		if len([]rune(crossWord)) < 2 {
			continue
		}
		if !dict.IsValidWord(crossWord) {
			return nil, notInDictionary(crossWord)
		}
		result.CrossWords = append(result.CrossWords, FormedWord{
			Word:       crossWord,
			Row:        startRow,
			Col:        startCol,
			Horizontal: move.Direction == Vertical,
		})
	}

	if !first {
		connected := prefixLen > 0 || len(order) > len(newPositions) || len(result.CrossWords) > 0
		if !connected {
			for coord := range newPositions {
				if board.NumAdjacentTiles(coord.Row, coord.Col) > 0 {
					connected = true
					break
				}
			}
		}
		if !connected {
			return nil, ErrDisconnected
		}
	}

	return result, nil
}
