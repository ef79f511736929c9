// bag_test.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// Tests for the Bag: drawing, returning, and the exchange-eligibility rule.

package scrabblecore

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deterministicRand returns a fixed-seed *rand.Rand shared by tests that
// need reproducible draws without caring about the exact sequence.
func deterministicRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestBagDrawReducesCount(t *testing.T) {
	bag := NewBag(EnglishTileSet, deterministicRand())
	require.Equal(t, 100, bag.TileCount())
	tile := bag.DrawTile()
	require.NotNil(t, tile)
	assert.Equal(t, 99, bag.TileCount())
}

func TestBagDrawEmptyReturnsNil(t *testing.T) {
	tiny := &TileSet{Tiles: []Tile{{Letter: 'A', Value: 1}}, Scores: map[rune]int{'A': 1}}
	bag := NewBag(tiny, deterministicRand())
	require.NotNil(t, bag.DrawTile())
	assert.Nil(t, bag.DrawTile())
}

func TestBagDrawTileByLetter(t *testing.T) {
	bag := NewBag(EnglishTileSet, deterministicRand())
	tile := bag.DrawTileByLetter('Z')
	require.NotNil(t, tile)
	assert.Equal(t, 'Z', tile.Letter)
	assert.Nil(t, bag.DrawTileByLetter('Z'), "only one Z in the standard set")
}

func TestBagReturnTile(t *testing.T) {
	bag := NewBag(EnglishTileSet, deterministicRand())
	tile := bag.DrawTile()
	bag.ReturnTile(tile)
	assert.Equal(t, 100, bag.TileCount())
}

func TestBagExchangeAllowed(t *testing.T) {
	bag := NewBag(EnglishTileSet, deterministicRand())
	assert.True(t, bag.ExchangeAllowed())
	for bag.TileCount() >= RackSize {
		bag.DrawTile()
	}
	assert.False(t, bag.ExchangeAllowed())
}
