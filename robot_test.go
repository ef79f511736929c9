// robot_test.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// Tests for the rack-leave/premium heuristics and the robot fallback.

package scrabblecore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRackLeaveValueRewardsBalancedVowels(t *testing.T) {
	balanced := rackLeaveValue([]rune("AEINRT"))
	vowelHeavy := rackLeaveValue([]rune("AEIOUAE"))
	assert.Greater(t, balanced, vowelHeavy)
}

func TestRackLeaveValueRewardsBlankAndS(t *testing.T) {
	plain := rackLeaveValue([]rune("CDFGHT"))
	withBlank := rackLeaveValue([]rune("CDFGHT?"))
	withS := rackLeaveValue([]rune("CDFGHS"))
	assert.Greater(t, withBlank, plain)
	assert.Greater(t, withS, plain)
}

func TestRackLeaveValuePenalizesHardLetters(t *testing.T) {
	one := rackLeaveValue([]rune("JABCDE"))
	two := rackLeaveValue([]rune("JJABCD"))
	assert.Greater(t, one, two, "a second hard letter is worse than the first")
}

func TestPremiumUsageValueScoresTripleWord(t *testing.T) {
	board := NewBoard()
	tile := &Tile{Letter: 'C', Meaning: 'C', Value: 3}
	candidate := &Candidate{
		Result: &ValidationResult{NewPositions: map[Coordinate]*Tile{{0, 0}: tile}},
	}
	assert.Equal(t, 15.0, premiumUsageValue(board, candidate))
}

func TestPremiumUsageValueSkipsConsumedSquares(t *testing.T) {
	board := NewBoard()
	board.Sq(0, 0).PremiumConsumed = true
	tile := &Tile{Letter: 'C', Meaning: 'C', Value: 3}
	candidate := &Candidate{
		Result: &ValidationResult{NewPositions: map[Coordinate]*Tile{{0, 0}: tile}},
	}
	assert.Equal(t, 0.0, premiumUsageValue(board, candidate))
}

func TestStrategicRobotFallsBackToExchange(t *testing.T) {
	board := NewBoard()
	dict := NewGaddag() // empty dictionary: no move will ever validate
	rack := rackFromLetters("ZQXJKWV")
	bag := NewBag(EnglishTileSet, deterministicRand())

	robot := StrategicRobot{}
	move := robot.GenerateMove(context.Background(), board, dict, rack, bag, deterministicRand())
	exchange, ok := move.(*ExchangeMove)
	require.True(t, ok, "with no legal candidates and a full bag, the robot exchanges")
	assert.Len(t, exchange.Letters, 2)
}

func TestStrategicRobotPassesWhenBagTooSmall(t *testing.T) {
	board := NewBoard()
	dict := NewGaddag()
	rack := rackFromLetters("ZQXJKWV")
	tiny := &TileSet{Tiles: []Tile{{Letter: 'A', Value: 1}}, Scores: map[rune]int{'A': 1}}
	bag := NewBag(tiny, deterministicRand())

	robot := StrategicRobot{}
	move := robot.GenerateMove(context.Background(), board, dict, rack, bag, deterministicRand())
	_, ok := move.(*PassMove)
	assert.True(t, ok)
}

func TestEasyRobotPicksAValidCandidate(t *testing.T) {
	board := NewBoard()
	dict := testDict(t)
	rack := rackFromLetters("CATXYZQ")
	bag := NewBag(EnglishTileSet, deterministicRand())

	robot := EasyRobot{}
	move := robot.GenerateMove(context.Background(), board, dict, rack, bag, deterministicRand())
	place, ok := move.(*PlaceMove)
	require.True(t, ok)
	_, err := ValidatePlace(board, dict, place, true)
	assert.NoError(t, err)
}
