// tile_test.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// Tests for the Letter/Tile data model.

package scrabblecore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnglishTileSetTotals(t *testing.T) {
	require.NotNil(t, EnglishTileSet)
	assert.Len(t, EnglishTileSet.Tiles, 100)

	counts := make(map[rune]int)
	for _, tile := range EnglishTileSet.Tiles {
		counts[tile.Letter]++
	}
	assert.Equal(t, 9, counts['A'])
	assert.Equal(t, 12, counts['E'])
	assert.Equal(t, 1, counts['Q'])
	assert.Equal(t, 1, counts['Z'])
	assert.Equal(t, 2, counts[BlankLetter])
}

func TestTileAssignMeaning(t *testing.T) {
	blank := &Tile{Letter: BlankLetter, IsBlank: true}
	blank.AssignMeaning('R')
	assert.Equal(t, 'R', blank.Meaning)

	letter := &Tile{Letter: 'D', Value: 2}
	letter.AssignMeaning('X') // no-op: a non-blank always means itself
	assert.Equal(t, 'D', letter.Meaning)
}

func TestTileScoresMatchStandardDistribution(t *testing.T) {
	assert.Equal(t, 1, EnglishTileSet.Scores['A'])
	assert.Equal(t, 3, EnglishTileSet.Scores['B'])
	assert.Equal(t, 10, EnglishTileSet.Scores['Q'])
	assert.Equal(t, 10, EnglishTileSet.Scores['Z'])
	assert.Equal(t, 0, EnglishTileSet.Scores[BlankLetter])
}
