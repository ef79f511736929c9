// movegen_test.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// Tests for AnchorSquares and GenerateCandidates.

package scrabblecore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnchorSquaresEmptyBoard(t *testing.T) {
	board := NewBoard()
	assert.Nil(t, AnchorSquares(board))
}

func TestAnchorSquaresAroundExistingTile(t *testing.T) {
	board := NewBoard()
	board.CenterSquare().Tile = &Tile{Letter: 'A', Meaning: 'A'}
	board.NumTiles = 1
	anchors := AnchorSquares(board)
	require.NotEmpty(t, anchors)
	for _, a := range anchors {
		assert.Equal(t, 1, board.NumAdjacentTiles(a.Row, a.Col))
	}
}

func rackFromLetters(letters string) *Rack {
	rack := NewRack()
	for _, r := range letters {
		rack.AddTile(&Tile{Letter: r, Meaning: r, Value: EnglishTileSet.Scores[r]})
	}
	return rack
}

func TestGenerateCandidatesOpeningMove(t *testing.T) {
	board := NewBoard()
	dict := testDict(t)
	rack := rackFromLetters("CATXYZQ")
	candidates, err := GenerateCandidates(context.Background(), board, dict, rack)
	require.NoError(t, err)
	require.NotEmpty(t, candidates)
	for _, c := range candidates {
		assert.Contains(t, c.Result.NewPositions, Coordinate{CenterRow, CenterCol})
	}
}

func TestGenerateCandidatesDeduplicates(t *testing.T) {
	board := NewBoard()
	dict := testDict(t)
	rack := rackFromLetters("CATXYZQ")
	candidates, err := GenerateCandidates(context.Background(), board, dict, rack)
	require.NoError(t, err)
	seen := make(map[uint64]bool)
	for _, c := range candidates {
		key := candidateKey(c.Move)
		assert.False(t, seen[key], "duplicate candidate move returned")
		seen[key] = true
	}
}

func TestGenerateCandidatesEmptyRack(t *testing.T) {
	board := NewBoard()
	dict := testDict(t)
	rack := NewRack()
	candidates, err := GenerateCandidates(context.Background(), board, dict, rack)
	require.NoError(t, err)
	assert.Nil(t, candidates)
}

func TestGenerateCandidatesRespectsCancellation(t *testing.T) {
	board := NewBoard()
	dict := testDict(t)
	rack := rackFromLetters("CATXYZQ")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := GenerateCandidates(ctx, board, dict, rack)
	assert.Error(t, err)
}
