// gaddag.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file implements the dictionary: a GADDAG trie built from a plain
// word list, supporting membership queries and anchor-based word
// enumeration for move validation and AI move generation.
//
// A GADDAG indexes, for every word w of length n and every split point
// i in [0,n], the sequence reverse(w[0:i]) + delimiter + w[i:n] - n+1
// sequences per word. For i >= 1 the sequence begins with w[i-1], so
// every letter of w can act as the anchor.
// Entering the trie at the child edge
// labelled with a chosen "anchor" letter and walking outward before and
// after the delimiter lets a single structure answer both "what can
// extend left of this letter" and "what can extend right of it" without
// separate prefix and suffix indexes. See Appel & Jacobson, "The World's
// Fastest Scrabble Program" (1988), and this package's Java precursor,
// model/Gaddag.java.

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
	"bufio"
	"context"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	lru "github.com/hashicorp/golang-lru/v2"
)

// delimiter is the GADDAG split-point marker. It cannot collide with any
// dictionary letter since word validation restricts words to [A-Z]+.
const delimiter = '+'

// gaddagNode is one trie node: an edge map keyed by letter (or delimiter)
// and whether the node terminates a valid GADDAG sequence.
type gaddagNode struct {
	children map[rune]*gaddagNode
	terminal bool
}

func newGaddagNode() *gaddagNode {
	return &gaddagNode{children: make(map[rune]*gaddagNode)}
}

func (n *gaddagNode) child(letter rune) *gaddagNode {
	return n.children[letter]
}

func (n *gaddagNode) getOrCreateChild(letter rune) *gaddagNode {
	child, ok := n.children[letter]
	if !ok {
		child = newGaddagNode()
		n.children[letter] = child
	}
	return child
}

// wordsFromCacheSize bounds the LRU cache of words_from results, keyed on
// the (rack, anchor, allowLeft, allowRight) query tuple. Cross-checks
// during AI move generation repeat the same anchor/rack combinations
// across many candidate placements, so this cache does real work; sizing
// follows the teacher's dawg.go crossCache.
const wordsFromCacheSize = 4096

// Gaddag is the built dictionary: a trie plus a parallel membership set
// for O(1) is_valid_word lookups.
type Gaddag struct {
	root     *gaddagNode
	words    map[string]struct{}
	cache    *lru.Cache[wordsFromKey, []string]
	wordAlphabetRE *regexp.Regexp
}

var alphaOnly = regexp.MustCompile(`^[A-Z]+$`)

// NewGaddag returns an empty Gaddag, ready for Insert calls.
func NewGaddag() *Gaddag {
	cache, err := lru.New[wordsFromKey, []string](wordsFromCacheSize)
	if err != nil {
		// Only returns an error for a non-positive size, which
		// wordsFromCacheSize never is.
		panic(err)
	}
	return &Gaddag{
		root:           newGaddagNode(),
		words:          make(map[string]struct{}),
		cache:          cache,
		wordAlphabetRE: alphaOnly,
	}
}

// Insert normalizes word (trim, uppercase) and, if it matches [A-Z]+ and
// has length >= 2, adds it to the membership set and inserts every
// GADDAG split-point sequence into the trie. Shorter or malformed input
// is silently skipped, matching the Java precursor's addWord.
func (g *Gaddag) Insert(word string) {
	word = strings.ToUpper(strings.TrimSpace(word))
	if len(word) < 2 || !g.wordAlphabetRE.MatchString(word) {
		return
	}
	if _, ok := g.words[word]; ok {
		return
	}
	g.words[word] = struct{}{}
	runes := []rune(word)
	for i := 0; i <= len(runes); i++ {
		g.insertSequence(reversedPrefix(runes, i), runes[i:])
	}
}

// reversedPrefix returns runes[0:i] reversed - the "before the delimiter"
// half of a GADDAG split-point sequence.
func reversedPrefix(runes []rune, i int) []rune {
	rev := make([]rune, i)
	for j := 0; j < i; j++ {
		rev[j] = runes[i-1-j]
	}
	return rev
}

// insertSequence walks/creates the trie path reversedPrefix, delimiter,
// suffix and marks its terminal node.
func (g *Gaddag) insertSequence(reversedPrefixRunes, suffix []rune) {
	node := g.root
	for _, r := range reversedPrefixRunes {
		node = node.getOrCreateChild(r)
	}
	node = node.getOrCreateChild(delimiter)
	for _, r := range suffix {
		node = node.getOrCreateChild(r)
	}
	node.terminal = true
}

// IsValidWord reports whether the normalized uppercase form of s is a
// word this Gaddag was built from.
func (g *Gaddag) IsValidWord(s string) bool {
	if s == "" {
		return false
	}
	_, ok := g.words[strings.ToUpper(strings.TrimSpace(s))]
	return ok
}

// WordCount returns the number of distinct words indexed.
func (g *Gaddag) WordCount() int {
	return len(g.words)
}

// LoadWordList reads newline-delimited words from r, inserting each one.
// A blank line or a line starting with '#' is skipped, allowing a word
// list to carry a comment header.
func (g *Gaddag) LoadWordList(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	before := len(g.words)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		g.Insert(line)
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return len(g.words) - before, nil
}

// LoadWordListFile opens path and loads its word list, retrying transient
// I/O failures (a cold network mount hiccup) a few times before giving up
// with ErrDictionaryLoad. open is injected so callers can supply any
// opener returning an io.ReadCloser, e.g. a thin wrapper around os.Open
// or an embed.FS's Open.
func LoadWordListFile(ctx context.Context, path string, open func(string) (io.ReadCloser, error)) (*Gaddag, error) {
	g := NewGaddag()
	err := retry.Do(
		func() error {
			f, err := open(path)
			if err != nil {
				return err
			}
			defer f.Close()
			_, err = g.LoadWordList(f)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(50*time.Millisecond),
	)
	if err != nil {
		return nil, &dictionaryLoadError{path: path, cause: err}
	}
	return g, nil
}

// dictionaryLoadError names the path that failed to load while still
// unwrapping to ErrDictionaryLoad.
type dictionaryLoadError struct {
	path  string
	cause error
}

func (e *dictionaryLoadError) Error() string {
	return "scrabblecore: failed to load dictionary from " + e.path + ": " + e.cause.Error()
}

func (e *dictionaryLoadError) Unwrap() error {
	return ErrDictionaryLoad
}
