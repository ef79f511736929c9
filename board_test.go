// board_test.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// Tests for the Board/Square premium layout and adjacency helpers.

package scrabblecore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardPremiumLayout(t *testing.T) {
	board := NewBoard()

	tripleWordCorners := []Coordinate{{0, 0}, {0, 7}, {0, 14}, {7, 0}, {7, 14}, {14, 0}, {14, 7}, {14, 14}}
	for _, c := range tripleWordCorners {
		assert.Equal(t, 3, board.Sq(c.Row, c.Col).WordMultiplier, "TW at %v", c)
	}

	center := board.CenterSquare()
	assert.Equal(t, 2, center.WordMultiplier, "center square is a double word score")

	tripleLetterSpots := []Coordinate{{1, 5}, {1, 9}, {5, 1}, {5, 5}, {5, 9}, {5, 13}}
	for _, c := range tripleLetterSpots {
		assert.Equal(t, 3, board.Sq(c.Row, c.Col).LetterMultiplier, "TL at %v", c)
	}

	assert.Equal(t, 1, board.Sq(6, 0).WordMultiplier)
	assert.Equal(t, 1, board.Sq(6, 0).LetterMultiplier)
}

func TestBoardIsEmptyAndNumTiles(t *testing.T) {
	board := NewBoard()
	require.True(t, board.IsEmpty())
	board.CenterSquare().Tile = &Tile{Letter: 'A', Meaning: 'A', Value: 1}
	board.NumTiles++
	assert.False(t, board.IsEmpty())
	assert.Equal(t, 1, board.NumTiles)
}

func TestBoardNumAdjacentTiles(t *testing.T) {
	board := NewBoard()
	assert.Equal(t, 0, board.NumAdjacentTiles(CenterRow, CenterCol))
	board.Sq(CenterRow-1, CenterCol).Tile = &Tile{Letter: 'A', Meaning: 'A'}
	assert.Equal(t, 1, board.NumAdjacentTiles(CenterRow, CenterCol))
}

func TestEffectiveMultipliersConsumedOnce(t *testing.T) {
	board := NewBoard()
	sq := board.Sq(0, 0)
	assert.Equal(t, 3, sq.EffectiveWordMultiplier())
	sq.PremiumConsumed = true
	assert.Equal(t, 1, sq.EffectiveWordMultiplier())
	assert.Equal(t, 1, sq.EffectiveLetterMultiplier())
}

func TestBoardCrossWord(t *testing.T) {
	board := NewBoard()
	board.Sq(7, 6).Tile = &Tile{Letter: 'C', Meaning: 'C'}
	board.Sq(8, 6).Tile = &Tile{Letter: 'T', Meaning: 'T'}
	word, ok := board.CrossWord(7, 6, false, &Tile{Letter: 'C', Meaning: 'C'})
	// axisHorizontal=false means the cross-word runs horizontally through
	// (7,6); since no horizontal neighbors are set, it is not crossed.
	assert.False(t, ok)
	_ = word

	word, ok = board.CrossWord(6, 6, true, &Tile{Letter: 'A', Meaning: 'A'})
	require.True(t, ok)
	assert.Equal(t, "ACT", word)
}
