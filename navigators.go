// navigators.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.
// This file implements words_from: the anchor-letter DFS that walks the
// GADDAG to enumerate every dictionary word a rack can form around a
// fixed anchor letter, optionally extending left of it, right of it, or
// both. This is the engine movegen.go drives once per rack letter per
// anchor square.

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
	"sort"
	"strings"
)

// wordsFromKey is the cache key for a words_from query: the rack as a
// sorted letter string (so "CAT" and "TAC" hash the same), the anchor,
// and the two direction flags.
type wordsFromKey struct {
	rack       string
	anchor     rune
	allowLeft  bool
	allowRight bool
}

// rackMultiset counts remaining rack letters available to the DFS. It is
// mutated and restored in place as the search descends and backtracks,
// the same consume/restore discipline as the teacher's Rack bookkeeping.
type rackMultiset map[rune]int

func newRackMultiset(letters []rune) rackMultiset {
	m := make(rackMultiset, len(letters))
	for _, l := range letters {
		m[l]++
	}
	return m
}

// take consumes one occurrence of letter from the multiset, falling back
// to a blank if no exact letter is available. It reports which source it
// consumed from (needed so restore() can put it back correctly) and
// whether a tile was available at all.
func (m rackMultiset) take(letter rune) (from rune, ok bool) {
	if m[letter] > 0 {
		m[letter]--
		return letter, true
	}
	if letter != BlankLetter && m[BlankLetter] > 0 {
		m[BlankLetter]--
		return BlankLetter, true
	}
	return 0, false
}

func (m rackMultiset) restore(from rune) {
	m[from]++
}

// WordsFrom returns the set of dictionary words containing anchor, built
// from rackLetters, subject to allowLeft/allowRight: see spec for the
// full query contract. Results are cached per (rack, anchor, allowLeft,
// allowRight) tuple since AI move generation repeats the same query for
// every candidate anchor square.
func (g *Gaddag) WordsFrom(rackLetters []rune, anchor rune, allowLeft, allowRight bool) []string {
	anchor = toUpperRune(anchor)
	key := wordsFromKey{
		rack:       sortedRackKey(rackLetters),
		anchor:     anchor,
		allowLeft:  allowLeft,
		allowRight: allowRight,
	}
	if cached, ok := g.cache.Get(key); ok {
		return cached
	}

	start := g.root.child(anchor)
	if start == nil {
		g.cache.Add(key, nil)
		return nil
	}

	found := make(map[string]struct{})
	var current strings.Builder
	current.WriteRune(anchor)
	rack := newRackMultiset(rackLetters)

	var dfs func(node *gaddagNode, passedDelimiter bool)
	dfs = func(node *gaddagNode, passedDelimiter bool) {
		if node.terminal && passedDelimiter {
			found[current.String()] = struct{}{}
		}
		for letter, child := range node.children {
			switch {
			case letter == delimiter:
				if allowLeft {
					dfs(child, true)
				}
			case !passedDelimiter:
				if !allowLeft {
					continue
				}
				from, ok := rack.take(letter)
				if !ok {
					continue
				}
				prependRune(&current, letter)
				dfs(child, false)
				popFirstRune(&current)
				rack.restore(from)
			default: // passedDelimiter
				if !allowRight {
					continue
				}
				from, ok := rack.take(letter)
				if !ok {
					continue
				}
				current.WriteRune(letter)
				dfs(child, true)
				popLastRune(&current)
				rack.restore(from)
			}
		}
	}
	dfs(start, false)

	words := make([]string, 0, len(found))
	for w := range found {
		words = append(words, w)
	}
	sort.Strings(words)
	g.cache.Add(key, words)
	return words
}

// sortedRackKey renders rackLetters as a sorted string, so permutations
// of the same rack share one cache entry.
func sortedRackKey(letters []rune) string {
	sorted := append([]rune(nil), letters...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return string(sorted)
}

func toUpperRune(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

// prependRune, popFirstRune and popLastRune maintain current as the DFS
// descends to either side of the anchor. current is rebuilt from its
// rune slice each call; GADDAG words are short (board-bounded) so this
// trades a little allocation for straightforward backtracking.
func prependRune(sb *strings.Builder, r rune) {
	s := string(r) + sb.String()
	sb.Reset()
	sb.WriteString(s)
}

func popFirstRune(sb *strings.Builder) {
	runes := []rune(sb.String())
	sb.Reset()
	sb.WriteString(string(runes[1:]))
}

func popLastRune(sb *strings.Builder) {
	runes := []rune(sb.String())
	sb.Reset()
	sb.WriteString(string(runes[:len(runes)-1]))
}
