// game.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file implements Game: the client-facing container for an
// in-progress match, and the move lifecycle state machine (propose,
// validate, score, commit) that every PLACE move passes through before it
// touches the board.

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
	"math/rand"
	"strings"
)

const (
	minPlayers = 2
	maxPlayers = 4
)

// lifecycleState tracks a pending PLACE move's progress through
// Validate -> Score -> Commit. A move that is Rejected (Validate or Score
// returns an error) simply never advances and is dropped.
type lifecycleState int

const (
	stateIdle lifecycleState = iota
	stateValidated
	stateScored
)

// pendingMove is the game's one slot for a move working its way through
// the lifecycle. Starting a new Validate call always overwrites it.
type pendingMove struct {
	move   *PlaceMove
	result *ValidationResult
	score  int
	state  lifecycleState
}

// Player is one seat at a Game. Robot is nil for a human-controlled seat.
type Player struct {
	Name  string
	Rack  *Rack
	Score int
	Robot Robot
}

// MoveRecord is one entry in a Game's move history.
type MoveRecord struct {
	Player int
	Move   Move
	Score  int
}

// Game is an in-progress SCRABBLE(tm) match: a board, a bag, a dictionary,
// two to four players, and the moves played so far.
type Game struct {
	Board *Board
	Bag   *Bag
	Dict  *Gaddag

	Players []*Player
	History []MoveRecord

	rng               *rand.Rand
	started           bool
	over              bool
	currentPlayer     int
	consecutivePasses int
	pending           *pendingMove
}

// NewGame creates a fresh, unstarted Game over tileSet and dict, drawable
// using rng. Randomness is always caller-supplied (see bag.go) so a Game,
// or a whole tournament of them, can be replayed bit-for-bit from a seed.
func NewGame(tileSet *TileSet, dict *Gaddag, rng *rand.Rand) *Game {
	return &Game{
		Board: NewBoard(),
		Bag:   NewBag(tileSet, rng),
		Dict:  dict,
		rng:   rng,
	}
}

// AddPlayer seats a new player under name, optionally controlled by robot
// (nil for a human-controlled seat). It fails once Start has been called,
// or once four players are already seated.
func (game *Game) AddPlayer(name string, robot Robot) (int, error) {
	if game.started {
		return 0, ErrGameAlreadyStarted
	}
	if len(game.Players) >= maxPlayers {
		return 0, ErrTooManyPlayers
	}
	game.Players = append(game.Players, &Player{Name: name, Rack: NewRack(), Robot: robot})
	return len(game.Players) - 1, nil
}

// Start fills every seated player's rack from the bag and opens the game
// for moves. It requires at least two seated players and may only be
// called once.
func (game *Game) Start() error {
	if game.started {
		return ErrGameAlreadyStarted
	}
	if len(game.Players) < minPlayers {
		return ErrNotEnoughPlayers
	}
	for _, p := range game.Players {
		p.Rack.Fill(game.Bag)
	}
	game.started = true
	return nil
}

// CurrentPlayer returns the index of the player whose turn it is.
func (game *Game) CurrentPlayer() int {
	return game.currentPlayer
}

// IsOver reports whether the game has ended: either a player emptied
// their rack with the bag also empty, or 2 * number of players
// consecutive passes were made (an exchange resets the count).
func (game *Game) IsOver() bool {
	return game.over
}

// Scores returns each player's current score, in seating order.
func (game *Game) Scores() []int {
	scores := make([]int, len(game.Players))
	for i, p := range game.Players {
		scores[i] = p.Score
	}
	return scores
}

// RackOf returns the rack of the player seated at playerIdx.
func (game *Game) RackOf(playerIdx int) *Rack {
	return game.Players[playerIdx].Rack
}

func (game *Game) checkActive() error {
	if !game.started {
		return ErrGameNotStarted
	}
	if game.over {
		return ErrGameOver
	}
	return nil
}

// Validate checks a tentative PLACE move against the live board and
// dictionary without applying it. On success the move becomes the
// game's pending move, the only one Score and Commit may act on.
func (game *Game) Validate(move *PlaceMove) (*ValidationResult, error) {
	if err := game.checkActive(); err != nil {
		return nil, err
	}
	result, err := ValidatePlace(game.Board, game.Dict, move, game.Board.IsEmpty())
	if err != nil {
		game.pending = nil
		return nil, err
	}
	game.pending = &pendingMove{move: move, result: result, state: stateValidated}
	return result, nil
}

// Score computes the point value of the pending validated move. It must
// follow a successful call to Validate for the same move.
func (game *Game) Score() (int, error) {
	if err := game.checkActive(); err != nil {
		return 0, err
	}
	if game.pending == nil || game.pending.state != stateValidated {
		return 0, ErrWrongLifecycleState
	}
	score := ScorePlace(game.Board, game.pending.move, game.pending.result)
	game.pending.score = score
	game.pending.state = stateScored
	return score, nil
}

// Commit applies the pending scored move to the board: it places tiles,
// consumes their squares' premiums, removes the spent tiles from the
// current player's rack, refills the rack from the bag, credits the
// score, appends to History, and advances to the next player. Commit is
// all-or-nothing: if the current player's rack turns out not to hold the
// tiles the move names, nothing is mutated and an error is returned.
func (game *Game) Commit() error {
	if err := game.checkActive(); err != nil {
		return err
	}
	if game.pending == nil || game.pending.state != stateScored {
		return ErrWrongLifecycleState
	}
	pending := game.pending
	player := game.Players[game.currentPlayer]

	resolved, err := resolveRackTiles(player.Rack, pending.move.Tiles)
	if err != nil {
		return err
	}
	positions := orderedNewPositions(game.Board, pending.move)
	if len(positions) != len(resolved) {
		return ErrWrongLifecycleState
	}

	for i, coord := range positions {
		tile := resolved[i]
		tile.PlayedBy = game.currentPlayer
		sq := game.Board.Sq(coord.Row, coord.Col)
		sq.Tile = tile
		sq.PremiumConsumed = true
	}
	game.Board.NumTiles += len(positions)

	player.Score += pending.score
	game.History = append(game.History, MoveRecord{Player: game.currentPlayer, Move: pending.move, Score: pending.score})
	game.consecutivePasses = 0
	game.pending = nil

	player.Rack.Fill(game.Bag)
	if player.Rack.IsEmpty() && game.Bag.TileCount() == 0 {
		player.Score += EmptyRackBonus
		game.endGame()
		return nil
	}

	game.advanceTurn()
	return nil
}

// resolveRackTiles maps move's (possibly synthetic, AI-generated) Tile
// descriptions onto real tiles held in rack, removing them. It checks
// feasibility for every tile before removing any of them, so a call that
// fails leaves rack untouched.
func resolveRackTiles(rack *Rack, tiles []*Tile) ([]*Tile, error) {
	need := make(map[rune]int, len(tiles))
	for _, t := range tiles {
		if t.IsBlank {
			need[BlankLetter]++
		} else {
			need[t.Letter]++
		}
	}
	for letter, n := range need {
		if rack.Letters[letter] < n {
			return nil, ErrTilesNotInRack
		}
	}
	resolved := make([]*Tile, len(tiles))
	for i, t := range tiles {
		var real *Tile
		if t.IsBlank {
			real = rack.FindTile(BlankLetter)
		} else {
			real = rack.FindTile(t.Letter)
		}
		rack.RemoveTile(real)
		if t.IsBlank {
			real.AssignMeaning(t.Meaning)
		}
		resolved[i] = real
	}
	return resolved, nil
}

// orderedNewPositions re-walks move's covered squares against board (which
// must still be in the pre-commit state ValidatePlace saw it in) to
// recover, in tile order, the board coordinates move.Tiles fill.
func orderedNewPositions(board *Board, move *PlaceMove) []Coordinate {
	rowDelta, colDelta := directionDelta(move.Direction)
	positions := make([]Coordinate, 0, len(move.Tiles))
	row, col := move.StartRow, move.StartCol
	for len(positions) < len(move.Tiles) && InBounds(row, col) {
		if board.TileAt(row, col) == nil {
			positions = append(positions, Coordinate{row, col})
		}
		row += rowDelta
		col += colDelta
	}
	return positions
}

// Exchange swaps the rack tiles matching letters for fresh tiles drawn
// from the bag, ending the current player's turn without scoring. It
// requires at least RackSize tiles remaining in the bag.
func (game *Game) Exchange(letters []rune) error {
	if err := game.checkActive(); err != nil {
		return err
	}
	if !game.Bag.ExchangeAllowed() {
		return ErrBagUnderflow
	}
	player := game.Players[game.currentPlayer]
	tiles := player.Rack.FindTiles(letters)
	if len(tiles) != len(letters) {
		return ErrTilesNotInRack
	}
	for _, t := range tiles {
		player.Rack.RemoveTile(t)
	}
	for _, t := range tiles {
		game.Bag.ReturnTile(t)
	}
	player.Rack.Fill(game.Bag)

	game.History = append(game.History, MoveRecord{Player: game.currentPlayer, Move: &ExchangeMove{Letters: letters}})
	game.consecutivePasses = 0
	game.pending = nil
	game.advanceTurn()
	return nil
}

// Pass ends the current player's turn without placing or exchanging
// tiles. After 2 * number-of-players consecutive passes, the game ends.
func (game *Game) Pass() error {
	if err := game.checkActive(); err != nil {
		return err
	}
	game.History = append(game.History, MoveRecord{Player: game.currentPlayer, Move: &PassMove{}})
	game.consecutivePasses++
	game.pending = nil
	if game.consecutivePasses >= 2*len(game.Players) {
		game.endGame()
		return nil
	}
	game.advanceTurn()
	return nil
}

func (game *Game) advanceTurn() {
	game.currentPlayer = (game.currentPlayer + 1) % len(game.Players)
}

func (game *Game) endGame() {
	game.over = true
}

// GenerateAIMove asks the current player's Robot to produce a move
// against the live board and rack. It does not apply the move; callers
// pass the result to ApplyMove (or the individual lifecycle calls) to
// make it part of the game.
func (game *Game) GenerateAIMove(ctx context.Context) (Move, error) {
	if err := game.checkActive(); err != nil {
		return nil, err
	}
	player := game.Players[game.currentPlayer]
	if player.Robot == nil {
		return nil, fmt.Errorf("scrabblecore: player %q has no robot", player.Name)
	}
	return player.Robot.GenerateMove(ctx, game.Board, game.Dict, player.Rack, game.Bag, game.rng), nil
}

// ApplyMove routes move through the lifecycle its kind requires: a PLACE
// move is validated, scored and committed in one step; an EXCHANGE or
// PASS move is applied directly.
func (game *Game) ApplyMove(move Move) error {
	switch m := move.(type) {
	case *PlaceMove:
		if _, err := game.Validate(m); err != nil {
			return err
		}
		if _, err := game.Score(); err != nil {
			return err
		}
		return game.Commit()
	case *ExchangeMove:
		return game.Exchange(m.Letters)
	case *PassMove:
		return game.Pass()
	default:
		return fmt.Errorf("scrabblecore: unknown move type %T", move)
	}
}

// String renders the game's board, racks, bag and move history, in the
// teacher's original layout.
func (game *Game) String() string {
	var sb strings.Builder
	for i, p := range game.Players {
		fmt.Fprintf(&sb, "%v: %v\n", p.Name, p.Score)
		if i == game.currentPlayer && !game.over {
			sb.WriteString("  (to move)\n")
		}
	}
	fmt.Fprintf(&sb, "%v\n", game.Board)
	for i, p := range game.Players {
		fmt.Fprintf(&sb, "Rack %d: %v\n", i, p.Rack)
	}
	fmt.Fprintf(&sb, "Bag: %v\n", game.Bag)
	if len(game.History) > 0 {
		sb.WriteString("Moves:\n")
		for _, rec := range game.History {
			fmt.Fprintf(&sb, "  player %d: %v (%d)\n", rec.Player, rec.Move, rec.Score)
		}
	}
	return sb.String()
}
