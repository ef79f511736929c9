// main.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// skraflserver exposes a minimal HTTP API over an in-memory set of games,
// using gorilla/mux for routing in place of the retrieval pack's
// cloud-datastore-backed App Engine handler (go-app/main.go): a single
// process holding games in memory, no persistence layer, matching this
// package's own Non-goals.

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
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"sync"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	scrabblecore "github.com/tjaldur/scrabblecore"
)

// server holds every in-progress game, keyed by an incrementing id.
type server struct {
	mu     sync.Mutex
	games  map[int]*scrabblecore.Game
	nextID int
	dict   *scrabblecore.Gaddag
	rng    *rand.Rand
}

func newServer(dict *scrabblecore.Gaddag, rng *rand.Rand) *server {
	return &server{games: make(map[int]*scrabblecore.Game), dict: dict, rng: rng}
}

type newGameRequest struct {
	Players []string `json:"players"`
	Robots  []bool   `json:"robots"`
}

type newGameResponse struct {
	ID int `json:"id"`
}

func (s *server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	game := scrabblecore.NewGame(scrabblecore.EnglishTileSet, s.dict, s.rng)
	for i, name := range req.Players {
		var robot scrabblecore.Robot
		if i < len(req.Robots) && req.Robots[i] {
			robot = scrabblecore.StrategicRobot{}
		}
		if _, err := game.AddPlayer(name, robot); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	if err := game.Start(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.games[id] = game
	s.mu.Unlock()

	writeJSON(w, newGameResponse{ID: id})
}

func (s *server) gameByID(r *http.Request) (*scrabblecore.Game, error) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	game, ok := s.games[id]
	if !ok {
		return nil, fmt.Errorf("no such game: %d", id)
	}
	return game, nil
}

func (s *server) handleGameState(w http.ResponseWriter, r *http.Request) {
	game, err := s.gameByID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, map[string]any{
		"board":         game.Board.String(),
		"scores":        game.Scores(),
		"current":       game.CurrentPlayer(),
		"over":          game.IsOver(),
		"bag_remaining": game.Bag.TileCount(),
	})
}

type placeRequest struct {
	StartRow  int    `json:"start_row"`
	StartCol  int    `json:"start_col"`
	Direction string `json:"direction"`
	Letters   string `json:"letters"`
}

func (s *server) handlePlace(w http.ResponseWriter, r *http.Request) {
	game, err := s.gameByID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	var req placeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	direction := scrabblecore.Horizontal
	if req.Direction == "V" {
		direction = scrabblecore.Vertical
	}
	rack := game.RackOf(game.CurrentPlayer())
	tiles := rack.FindTiles([]rune(req.Letters))
	if len(tiles) != len([]rune(req.Letters)) {
		http.Error(w, "letters not available on rack", http.StatusBadRequest)
		return
	}
	move := &scrabblecore.PlaceMove{StartRow: req.StartRow, StartCol: req.StartCol, Direction: direction, Tiles: tiles}

	result, err := game.Validate(move)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	score, err := game.Score()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := game.Commit(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]any{"score": score, "word": result.MainWord.Word})
}

func (s *server) handlePass(w http.ResponseWriter, r *http.Request) {
	game, err := s.gameByID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err := game.Pass(); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, map[string]any{"ok": true})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func main() {
	cfg, err := scrabblecore.LoadConfig("")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	scrabblecore.InitLogging(level, cfg.LogPretty)

	f, err := os.Open(cfg.WordListPath)
	if err != nil {
		scrabblecore.Log.Fatal().Err(err).Msg("failed to open word list")
	}
	defer f.Close()
	dict := scrabblecore.NewGaddag()
	if _, err := dict.LoadWordList(f); err != nil {
		scrabblecore.Log.Fatal().Err(err).Msg("failed to load word list")
	}

	srv := newServer(dict, rand.New(rand.NewSource(cfg.Seed)))

	router := mux.NewRouter()
	router.HandleFunc("/games", srv.handleNewGame).Methods(http.MethodPost)
	router.HandleFunc("/games/{id}", srv.handleGameState).Methods(http.MethodGet)
	router.HandleFunc("/games/{id}/place", srv.handlePlace).Methods(http.MethodPost)
	router.HandleFunc("/games/{id}/pass", srv.handlePass).Methods(http.MethodPost)

	scrabblecore.Log.Info().Str("addr", cfg.ListenAddr).Msg("listening")
	if err := http.ListenAndServe(cfg.ListenAddr, router); err != nil {
		scrabblecore.Log.Fatal().Err(err).Msg("server exited")
	}
}
