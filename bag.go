// bag.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file contains the Bag logic: drawing and returning tiles using
// caller-supplied randomness rather than a hidden global generator, so a
// game (or a simulation of many games) can be replayed deterministically
// from a seed.

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
	"math/rand"
	"strings"
)

// Bag is the pool of tiles yet to be drawn in a game. Unlike the teacher,
// which draws through the package-level math/rand default source, a Bag
// here carries its own *rand.Rand so a Game can be seeded explicitly and
// replayed bit-for-bit.
type Bag struct {
	tiles []*Tile
	rng   *rand.Rand
}

// NewBag copies tileSet into a fresh Bag, drawable using rng. Passing a
// rng seeded from a fixed value makes the resulting sequence of draws
// reproducible.
func NewBag(tileSet *TileSet, rng *rand.Rand) *Bag {
	tiles := make([]*Tile, len(tileSet.Tiles))
	for i := range tileSet.Tiles {
		t := tileSet.Tiles[i]
		tiles[i] = &t
	}
	return &Bag{tiles: tiles, rng: rng}
}

// DrawTile removes and returns one uniformly-random tile from the bag, or
// nil if the bag is empty.
func (bag *Bag) DrawTile() *Tile {
	if bag == nil || len(bag.tiles) == 0 {
		return nil
	}
	i := bag.rng.Intn(len(bag.tiles))
	tile := bag.tiles[i]
	bag.tiles = append(bag.tiles[:i], bag.tiles[i+1:]...)
	return tile
}

// DrawTileByLetter removes and returns a tile matching the given letter,
// or nil if none remains in the bag. Used to construct a specific rack
// for testing.
func (bag *Bag) DrawTileByLetter(letter rune) *Tile {
	if bag == nil {
		return nil
	}
	for i, tile := range bag.tiles {
		if tile.Letter == letter {
			bag.tiles = append(bag.tiles[:i], bag.tiles[i+1:]...)
			return tile
		}
	}
	return nil
}

// ReturnTile puts a previously drawn tile back into the bag.
func (bag *Bag) ReturnTile(tile *Tile) {
	if bag == nil || tile == nil {
		return
	}
	bag.tiles = append(bag.tiles, tile)
}

// TileCount returns the number of tiles left in the bag.
func (bag *Bag) TileCount() int {
	if bag == nil {
		return 0
	}
	return len(bag.tiles)
}

// ExchangeAllowed reports whether at least RackSize tiles remain in the
// bag, the rule that gates whether an EXCHANGE move may be made.
func (bag *Bag) ExchangeAllowed() bool {
	return bag != nil && len(bag.tiles) >= RackSize
}

// String renders the bag's remaining tile count and contents.
func (bag *Bag) String() string {
	if bag == nil || len(bag.tiles) == 0 {
		return "empty"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "(%d tiles): ", len(bag.tiles))
	for _, tile := range bag.tiles {
		sb.WriteString(tile.String())
		sb.WriteString(" ")
	}
	return strings.TrimRight(sb.String(), " ")
}
