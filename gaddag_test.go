// gaddag_test.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// Tests for the GADDAG dictionary: membership, load, and the words_from
// anchor query in navigators.go.

package scrabblecore

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallDict(t *testing.T) *Gaddag {
	t.Helper()
	g := NewGaddag()
	for _, w := range []string{"CAT", "CATS", "CAR", "CARS", "AT", "ARE", "EAT", "TEA", "ATE"} {
		g.Insert(w)
	}
	return g
}

func TestGaddagIsValidWord(t *testing.T) {
	g := smallDict(t)
	assert.True(t, g.IsValidWord("cat"))
	assert.True(t, g.IsValidWord("CAT"))
	assert.True(t, g.IsValidWord("  cats  "))
	assert.False(t, g.IsValidWord("dog"))
	assert.False(t, g.IsValidWord(""))
}

func TestGaddagInsertRejectsMalformed(t *testing.T) {
	g := NewGaddag()
	g.Insert("a")     // too short
	g.Insert("CA-T")  // not [A-Z]+
	g.Insert("dog1")  // has a digit
	assert.Equal(t, 0, g.WordCount())
	g.Insert("dog")
	assert.Equal(t, 1, g.WordCount())
	g.Insert("DOG") // duplicate after normalization
	assert.Equal(t, 1, g.WordCount())
}

func TestGaddagWordsFromAnchor(t *testing.T) {
	g := smallDict(t)
	words := g.WordsFrom([]rune("CTSRAE"), 'A', true, true)
	assert.Contains(t, words, "CAT")
	assert.Contains(t, words, "CAR")
	assert.Contains(t, words, "ARE")
	assert.Contains(t, words, "EAT")
	assert.Contains(t, words, "ATE")
	assert.NotContains(t, words, "DOG")
}

func TestGaddagWordsFromDirectionRestriction(t *testing.T) {
	g := smallDict(t)
	// Anchored at the middle letter 'A' of CAT, forbidding rightward
	// extension means the trailing 'T' can never be consumed, so the
	// DFS dead-ends at the delimiter and "CAT" is unreachable.
	leftOnly := g.WordsFrom([]rune("C"), 'A', true, false)
	assert.NotContains(t, leftOnly, "CAT")

	// Allowing both directions from the same anchor completes the word.
	both := g.WordsFrom([]rune("CT"), 'A', true, true)
	assert.Contains(t, both, "CAT")
}

func TestGaddagWordsFromUsesBlank(t *testing.T) {
	g := smallDict(t)
	words := g.WordsFrom([]rune("?"), 'A', true, true)
	assert.Contains(t, words, "AT")
}

func TestGaddagLoadWordList(t *testing.T) {
	g := NewGaddag()
	n, err := g.LoadWordList(strings.NewReader("# comment\nCAT\n\nDOG\nCAT\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.True(t, g.IsValidWord("dog"))
}

func TestLoadWordListFileRetriesThenFails(t *testing.T) {
	attempts := 0
	open := func(path string) (io.ReadCloser, error) {
		attempts++
		return nil, os.ErrNotExist
	}
	_, err := LoadWordListFile(context.Background(), "missing.txt", open)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDictionaryLoad))
	assert.Equal(t, 3, attempts)
}

func TestLoadWordListFileSucceeds(t *testing.T) {
	open := func(path string) (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader("CAT\nDOG\n")), nil
	}
	g, err := LoadWordListFile(context.Background(), "words.txt", open)
	require.NoError(t, err)
	assert.True(t, g.IsValidWord("CAT"))
	assert.Equal(t, 2, g.WordCount())
}
