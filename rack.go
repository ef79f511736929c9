// rack.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.
// This file implements the Rack struct and its operations: adding,
// removing and querying tiles held by a player.

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

// RackSize is the number of tile slots in a player's rack.
const RackSize = 7

// Rack represents a player's rack of tiles: up to RackSize slots, plus a
// running letter-count map (blanks counted under BlankLetter) kept in
// sync with the slots so callers don't need to rescan the rack to answer
// "how many E's do I hold".
type Rack struct {
	Slots   [RackSize]*Tile
	Letters map[rune]int
}

// NewRack returns an empty, initialized Rack.
func NewRack() *Rack {
	return &Rack{Letters: make(map[rune]int)}
}

// addLetter increments the rack's letter-count map.
func (rack *Rack) addLetter(letter rune) {
	if rack.Letters == nil {
		rack.Letters = make(map[rune]int)
	}
	rack.Letters[letter]++
}

// removeLetter decrements the rack's letter-count map, panicking if the
// letter was not present (a Rack invariant violation, not a user error).
func (rack *Rack) removeLetter(letter rune) {
	if rack.Letters[letter] <= 0 {
		panic(fmt.Sprintf("scrabblecore: rack does not contain letter %q", letter))
	}
	rack.Letters[letter]--
}

// AddTile places a tile in the first free slot. It returns false if the
// rack is already full.
func (rack *Rack) AddTile(tile *Tile) bool {
	for i, sq := range rack.Slots {
		if sq == nil {
			rack.Slots[i] = tile
			rack.addLetter(tile.Letter)
			return true
		}
	}
	return false
}

// Fill draws tiles from the bag to fill every empty slot. It returns
// false if the bag runs out before the rack is full; whatever tiles were
// drawn remain in the rack.
func (rack *Rack) Fill(bag *Bag) bool {
	for i, sq := range rack.Slots {
		if sq != nil {
			continue
		}
		tile := bag.DrawTile()
		if tile == nil {
			return false
		}
		rack.Slots[i] = tile
		rack.addLetter(tile.Letter)
	}
	return true
}

// NumTiles returns the number of tiles currently on the rack.
func (rack *Rack) NumTiles() int {
	n := 0
	for _, sq := range rack.Slots {
		if sq != nil {
			n++
		}
	}
	return n
}

// IsEmpty reports whether the rack holds no tiles.
func (rack *Rack) IsEmpty() bool {
	return rack.NumTiles() == 0
}

// IsFull reports whether every rack slot holds a tile.
func (rack *Rack) IsFull() bool {
	return rack.NumTiles() == RackSize
}

// AsRunes returns the letters on the rack (BlankLetter for an
// unassigned blank), in slot order.
func (rack *Rack) AsRunes() []rune {
	runes := make([]rune, 0, RackSize)
	for _, sq := range rack.Slots {
		if sq != nil {
			runes = append(runes, sq.Letter)
		}
	}
	return runes
}

// AsString is the AsRunes rack contents as a string.
func (rack *Rack) AsString() string {
	return string(rack.AsRunes())
}

// HasTile reports whether the exact Tile (by pointer identity) is on the
// rack.
func (rack *Rack) HasTile(tile *Tile) bool {
	if tile == nil {
		return false
	}
	for _, sq := range rack.Slots {
		if sq == tile {
			return true
		}
	}
	return false
}

// FindTile finds a tile matching the given letter (BlankLetter matches
// any blank tile) and returns it, or nil if none is on the rack.
func (rack *Rack) FindTile(letter rune) *Tile {
	for _, sq := range rack.Slots {
		if sq != nil && sq.Letter == letter {
			return sq
		}
	}
	return nil
}

// FindTiles resolves each requested letter to a distinct Tile on the
// rack, in the manner of the teacher's Rack.FindTiles: a letter requested
// twice is matched against two different slots. Letters with no matching
// tile are simply omitted from the result, so callers that require an
// exact match must compare len(result) to len(letters).
func (rack *Rack) FindTiles(letters []rune) []*Tile {
	result := make([]*Tile, 0, len(letters))
	var picked [RackSize]bool
	for _, letter := range letters {
		for i, sq := range rack.Slots {
			if !picked[i] && sq != nil && sq.Letter == letter {
				result = append(result, sq)
				picked[i] = true
				break
			}
		}
	}
	return result
}

// RemoveTile removes the exact Tile (by pointer identity) from the rack,
// or, if that Tile is not on the rack, the first tile whose Letter, Value
// and IsBlank all match it. It returns false if neither is found.
func (rack *Rack) RemoveTile(tile *Tile) bool {
	if tile == nil {
		return false
	}
	for i, sq := range rack.Slots {
		if sq == tile {
			rack.removeLetter(tile.Letter)
			rack.Slots[i] = nil
			return true
		}
	}
	for i, sq := range rack.Slots {
		if sq != nil && sq.Letter == tile.Letter && sq.Value == tile.Value && sq.IsBlank == tile.IsBlank {
			rack.removeLetter(sq.Letter)
			rack.Slots[i] = nil
			return true
		}
	}
	return false
}

// ReturnToBag removes every tile from the rack and returns it to the bag.
func (rack *Rack) ReturnToBag(bag *Bag) {
	for i, sq := range rack.Slots {
		if sq == nil {
			continue
		}
		rack.removeLetter(sq.Letter)
		bag.ReturnTile(sq)
		rack.Slots[i] = nil
	}
}

// String renders the rack's tiles space-separated, with an underscore for
// each empty slot.
func (rack *Rack) String() string {
	var sb strings.Builder
	for _, sq := range rack.Slots {
		if sq == nil {
			sb.WriteString("_ ")
			continue
		}
		sb.WriteString(sq.String())
		sb.WriteString(" ")
	}
	return strings.TrimRight(sb.String(), " ")
}
