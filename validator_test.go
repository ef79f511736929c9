// validator_test.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// Tests for move validation: the opening move, connectivity, cross-words,
// and the dictionary/geometry error cases.

package scrabblecore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDict(t *testing.T) *Gaddag {
	t.Helper()
	g := NewGaddag()
	for _, w := range []string{"CAT", "CATS", "CARE", "AT", "TO", "TA", "ART", "RAT"} {
		g.Insert(w)
	}
	return g
}

func placeTiles(letters string) []*Tile {
	tiles := make([]*Tile, len(letters))
	for i, r := range letters {
		tiles[i] = &Tile{Letter: r, Meaning: r, Value: EnglishTileSet.Scores[r]}
	}
	return tiles
}

func TestValidatePlaceOpeningMoveMustCoverCenter(t *testing.T) {
	board := NewBoard()
	dict := testDict(t)
	move := &PlaceMove{StartRow: 0, StartCol: 0, Direction: Horizontal, Tiles: placeTiles("CAT")}
	_, err := ValidatePlace(board, dict, move, true)
	assert.ErrorIs(t, err, ErrFirstMoveMissesCenter)
}

func TestValidatePlaceOpeningMoveSucceeds(t *testing.T) {
	board := NewBoard()
	dict := testDict(t)
	move := &PlaceMove{StartRow: CenterRow, StartCol: CenterCol - 1, Direction: Horizontal, Tiles: placeTiles("CAT")}
	result, err := ValidatePlace(board, dict, move, true)
	require.NoError(t, err)
	assert.Equal(t, "CAT", result.MainWord.Word)
	assert.Len(t, result.NewPositions, 3)
}

func TestValidatePlaceRejectsUnknownWord(t *testing.T) {
	board := NewBoard()
	dict := testDict(t)
	move := &PlaceMove{StartRow: CenterRow, StartCol: CenterCol - 1, Direction: Horizontal, Tiles: placeTiles("ZZZ")}
	_, err := ValidatePlace(board, dict, move, true)
	var notFound *NotInDictionaryError
	assert.ErrorAs(t, err, &notFound)
}

func TestValidatePlaceDisconnectedRejected(t *testing.T) {
	board := NewBoard()
	dict := testDict(t)
	opening := &PlaceMove{StartRow: CenterRow, StartCol: CenterCol - 1, Direction: Horizontal, Tiles: placeTiles("CAT")}
	_, err := ValidatePlace(board, dict, opening, true)
	require.NoError(t, err)
	placeOnBoard(board, opening, placeTiles("CAT"))

	// Far from the existing CAT, disconnected from everything.
	far := &PlaceMove{StartRow: 0, StartCol: 0, Direction: Horizontal, Tiles: placeTiles("AT")}
	_, err = ValidatePlace(board, dict, far, false)
	assert.ErrorIs(t, err, ErrDisconnected)
}

func TestValidatePlaceFormsCrossWord(t *testing.T) {
	board := NewBoard()
	dict := testDict(t)
	opening := &PlaceMove{StartRow: CenterRow, StartCol: CenterCol - 1, Direction: Horizontal, Tiles: placeTiles("CAT")}
	_, err := ValidatePlace(board, dict, opening, true)
	require.NoError(t, err)
	placeOnBoard(board, opening, placeTiles("CAT"))

	// Play a single 'T' vertically below the A of CAT: it forms the
	// vertical word "AT" crossing CAT, which is the move's main word.
	aCol := CenterCol // 'A' of CAT sits at (CenterRow, CenterCol)
	below := &PlaceMove{StartRow: CenterRow + 1, StartCol: aCol, Direction: Vertical, Tiles: placeTiles("T")}
	result, err := ValidatePlace(board, dict, below, false)
	require.NoError(t, err)
	assert.Equal(t, "AT", result.MainWord.Word)
}

func TestValidatePlaceNoTilesRejected(t *testing.T) {
	board := NewBoard()
	dict := testDict(t)
	move := &PlaceMove{StartRow: CenterRow, StartCol: CenterCol, Direction: Horizontal, Tiles: nil}
	_, err := ValidatePlace(board, dict, move, true)
	assert.ErrorIs(t, err, ErrNoTiles)
}

// placeOnBoard writes move's tiles directly onto board, the way Game.Commit
// would, for tests that need a pre-existing placement to validate against.
func placeOnBoard(board *Board, move *PlaceMove, tiles []*Tile) {
	positions := orderedNewPositions(board, move)
	for i, coord := range positions {
		sq := board.Sq(coord.Row, coord.Col)
		sq.Tile = tiles[i]
		sq.PremiumConsumed = true
	}
	board.NumTiles += len(positions)
}
