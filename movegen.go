// movegen.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file contains code to generate every legal PlaceMove available to
// a rack on a board, given a dictionary. It is a part of the Go
// 'scrabblecore' package.
//
// Unlike the teacher's DAWG/cross-check Appel & Jacobson implementation,
// candidate words come directly from the GADDAG's words_from query: for
// the opening move, every word the rack can spell through each of its
// distinct letters; for later moves, every word reachable from each
// anchor square's candidate letter. Each candidate alignment is first
// checked by resolvePlacement against the rack (with blanks substituting
// for any deficit) and then independently fed through ValidatePlace -
// see spec Section 4.5.

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
	"context"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// Candidate is one fully validated and scored PlaceMove produced by
// GenerateCandidates.
type Candidate struct {
	Move   *PlaceMove
	Result *ValidationResult
	Score  int
}

// maxConcurrentAxes bounds how many candidate-placement goroutines (one
// per word tried at an anchor and axis) run at once, the GADDAG-generator
// analogue of the teacher's per-axis goroutine
// fan-out, but cancellation-aware via errgroup rather than an unbounded
// raw channel fan-out.
const maxConcurrentAxes = 8

// GenerateCandidates returns every legal, non-zero-scoring PlaceMove
// available to rack on board, deduplicated by starting square, axis and
// tile list. It returns early with ctx.Err() if ctx is cancelled - the
// AI search's natural checkpoint between anchor squares.
func GenerateCandidates(ctx context.Context, board *Board, dict *Gaddag, rack *Rack) ([]*Candidate, error) {
	rackLetters := rack.AsRunes()
	if len(rackLetters) == 0 {
		return nil, nil
	}
	distinct := lo.Uniq(rackLetters)

	var (
		mu    sync.Mutex
		seen  = make(map[uint64]struct{})
		found []*Candidate
	)
	collect := func(move *PlaceMove, result *ValidationResult, score int) {
		if score == 0 {
			return
		}
		key := candidateKey(move)
		mu.Lock()
		defer mu.Unlock()
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		found = append(found, &Candidate{Move: move, Result: result, Score: score})
	}

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentAxes)

	if board.IsEmpty() {
		for _, letter := range distinct {
			letter := letter
			words := dict.WordsFrom(rackLetters, letter, true, true)
			for _, word := range words {
				word := word
				group.Go(func() error {
					if err := gctx.Err(); err != nil {
						return err
					}
					tryOpeningPlacements(board, dict, rack, word, collect)
					return nil
				})
			}
		}
	} else {
		for _, anchor := range AnchorSquares(board) {
			anchor := anchor
			for _, axis := range [...]Direction{Horizontal, Vertical} {
				axis := axis
				for _, letter := range distinct {
					letter := letter
					words := dict.WordsFrom(rackLetters, letter, true, true)
					for _, word := range words {
						word := word
						group.Go(func() error {
							if err := gctx.Err(); err != nil {
								return err
							}
							tryAnchoredPlacements(board, dict, rack, anchor, axis, letter, word, collect)
							return nil
						})
					}
				}
			}
		}
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return found, nil
}

// tryOpeningPlacements attempts every offset of word that covers the
// center square, per spec Section 4.5 step 2.
func tryOpeningPlacements(board *Board, dict *Gaddag, rack *Rack, word string, collect func(*PlaceMove, *ValidationResult, int)) {
	n := len([]rune(word))
	for offset := 0; offset < n; offset++ {
		attempt(board, dict, rack, CenterRow, CenterCol-offset, Horizontal, word, true, collect)
		attempt(board, dict, rack, CenterRow-offset, CenterCol, Vertical, word, true, collect)
	}
}

// tryAnchoredPlacements attempts placing word at every occurrence of
// letter within it, anchored at the given square, per spec Section 4.5
// step 3.
func tryAnchoredPlacements(board *Board, dict *Gaddag, rack *Rack, anchor Coordinate, axis Direction, letter rune, word string, collect func(*PlaceMove, *ValidationResult, int)) {
	runes := []rune(word)
	rowDelta, colDelta := directionDelta(axis)
	for i, r := range runes {
		if r != letter {
			continue
		}
		startRow := anchor.Row - i*rowDelta
		startCol := anchor.Col - i*colDelta
		attempt(board, dict, rack, startRow, startCol, axis, word, false, collect)
	}
}

// attempt resolves word against rack and board starting at (row, col)
// along direction, validates and scores it, and reports it to collect on
// success. Failures (infeasible rack, invalid geometry, dictionary miss)
// are silently dropped, since the search tries many alignments that were
// never expected to all succeed.
func attempt(board *Board, dict *Gaddag, rack *Rack, row, col int, direction Direction, word string, first bool, collect func(*PlaceMove, *ValidationResult, int)) {
	move, ok := resolvePlacement(board, rack, row, col, direction, word)
	if !ok {
		return
	}
	result, err := ValidatePlace(board, dict, move, first)
	if err != nil {
		return
	}
	score := ScorePlace(board, move, result)
	collect(move, result, score)
}

// resolvePlacement walks word's squares from (row, col) along direction,
// matching existing board tiles and drawing new tiles from rack (with
// blank substitution for any deficit). It returns ok=false if the
// placement runs off the board, collides with a mismatched existing
// tile, or the rack cannot supply the letters still needed.
func resolvePlacement(board *Board, rack *Rack, row, col int, direction Direction, word string) (*PlaceMove, bool) {
	rowDelta, colDelta := directionDelta(direction)
	counts := make(map[rune]int, len(rack.Letters))
	for letter, n := range rack.Letters {
		counts[letter] = n
	}
	used := make(map[rune]int)
	var tiles []*Tile
	r, c := row, col
	for _, letter := range word {
		if !InBounds(r, c) {
			return nil, false
		}
		if existing := board.TileAt(r, c); existing != nil {
			if existing.Meaning != letter {
				return nil, false
			}
		} else {
			tile, ok := takeRackLetter(counts, used, letter)
			if !ok {
				return nil, false
			}
			tiles = append(tiles, tile)
		}
		r += rowDelta
		c += colDelta
	}
	if len(tiles) == 0 {
		// Every square in the run was already occupied: not a move.
		return nil, false
	}
	return &PlaceMove{StartRow: row, StartCol: col, Direction: direction, Tiles: tiles}, true
}

// takeRackLetter draws one occurrence of letter from counts, falling
// back to a blank, and returns a freshly built Tile for it. counts/used
// are a private scratch copy of the rack's letter multiset, not the rack
// itself - move generation never mutates the rack it searches.
func takeRackLetter(counts, used map[rune]int, letter rune) (*Tile, bool) {
	if counts[letter] > used[letter] {
		used[letter]++
		return &Tile{Letter: letter, Meaning: letter, Value: EnglishTileSet.Scores[letter]}, true
	}
	if counts[BlankLetter] > used[BlankLetter] {
		used[BlankLetter]++
		return &Tile{Letter: BlankLetter, Meaning: letter, IsBlank: true, Value: 0}, true
	}
	return nil, false
}

// candidateKey hashes a PlaceMove's (start, axis, tile-list-by-position)
// into a dedup key, per spec Section 4.5 step 4.
func candidateKey(move *PlaceMove) uint64 {
	var buf []byte
	buf = fmt.Appendf(buf, "%d,%d,%v:", move.StartRow, move.StartCol, move.Direction)
	for _, t := range move.Tiles {
		buf = append(buf, byte(t.Meaning), byte(t.Value))
	}
	return xxhash.Sum64(buf)
}
