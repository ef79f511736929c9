// main.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// skraflsim runs robot-versus-robot games and reports win counts, the
// successor to the retrieval pack's plain-flag example program: a cobra
// CLI in its place, since the wider pack (e.g. macondo's cmd/shell) uses
// cobra for its own command surface.

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

package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	scrabblecore "github.com/tjaldur/scrabblecore"
)

var (
	wordlistPath string
	numGames     int
	seed         int64
	verbose      bool
)

func main() {
	root := &cobra.Command{
		Use:   "skraflsim",
		Short: "Simulate SCRABBLE(tm) games between two robots",
		RunE:  runSimulation,
	}
	root.Flags().StringVarP(&wordlistPath, "wordlist", "w", "testdata/wordlist_small.txt", "path to a newline-delimited word list")
	root.Flags().IntVarP(&numGames, "num", "n", 10, "number of games to simulate")
	root.Flags().Int64VarP(&seed, "seed", "s", 1, "random seed for reproducible simulations")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "print each game's board and move history")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	scrabblecore.InitLogging(level, true)

	f, err := os.Open(wordlistPath)
	if err != nil {
		return err
	}
	defer f.Close()

	dict := scrabblecore.NewGaddag()
	if _, err := dict.LoadWordList(f); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(seed))
	var winsA, winsB, draws int
	for i := 0; i < numGames; i++ {
		scoreA, scoreB := simulateGame(dict, rng, verbose)
		switch {
		case scoreA > scoreB:
			winsA++
		case scoreB > scoreA:
			winsB++
		default:
			draws++
		}
	}
	fmt.Printf("%d games played using %q.\nRobot A won %d, Robot B won %d, %d draws.\n",
		numGames, wordlistPath, winsA, winsB, draws)
	return nil
}

func simulateGame(dict *scrabblecore.Gaddag, rng *rand.Rand, verbose bool) (scoreA, scoreB int) {
	game := scrabblecore.NewGame(scrabblecore.EnglishTileSet, dict, rng)
	if _, err := game.AddPlayer("Robot A", scrabblecore.StrategicRobot{}); err != nil {
		scrabblecore.Log.Error().Err(err).Msg("failed to seat Robot A")
		return 0, 0
	}
	if _, err := game.AddPlayer("Robot B", scrabblecore.StrategicRobot{}); err != nil {
		scrabblecore.Log.Error().Err(err).Msg("failed to seat Robot B")
		return 0, 0
	}
	if err := game.Start(); err != nil {
		scrabblecore.Log.Error().Err(err).Msg("failed to start game")
		return 0, 0
	}

	ctx := context.Background()
	for !game.IsOver() {
		move, err := game.GenerateAIMove(ctx)
		if err != nil {
			scrabblecore.Log.Error().Err(err).Msg("robot move generation failed")
			break
		}
		if err := game.ApplyMove(move); err != nil {
			scrabblecore.Log.Warn().Err(err).Msg("robot move rejected, passing instead")
			_ = game.Pass()
		}
		if verbose {
			fmt.Println(game)
		}
	}
	scores := game.Scores()
	return scores[0], scores[1]
}
