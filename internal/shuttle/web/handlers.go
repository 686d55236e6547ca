// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"laptudirm.com/x/shuttle/pkg/gamegen"
)

type playerRequest struct {
	Name string `json:"name"`
}

type configRequest struct {
	Courts   *int    `json:"courts"`
	TeamSize *int    `json:"team_size"`
	Strategy *string `json:"strategy"`
}

type gameResponse struct {
	Game      gamegen.Game `json:"game"`
	Formatted string       `json:"formatted"`
}

// GetSession returns the full session state.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	writeJSON(w, http.StatusOK, s.session)
}

// AddPlayer appends a player to the roster and remembers the name.
func (s *Server) AddPlayer(w http.ResponseWriter, r *http.Request) {
	var req playerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		http.Error(w, "missing player name", http.StatusBadRequest)
		return
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.session.AddPlayer(req.Name)
	if s.history != nil {
		s.history.Add(req.Name)
	}

	writeJSON(w, http.StatusCreated, s.session)
}

// RemovePlayer drops a player from the roster. Since players are known
// by their roster position, this also clears the game log.
func (s *Server) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !s.session.RemovePlayer(name) {
		http.Error(w, "player not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, s.session)
}

// UpdateConfig changes the court count, team size or strategy. Absent
// fields are left as they are; values below one are clamped.
func (s *Server) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req configRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if req.Courts != nil {
		s.session.SetCourts(*req.Courts)
	}

	if req.TeamSize != nil {
		s.session.SetTeamSize(*req.TeamSize)
	}

	if req.Strategy != nil {
		strategy, err := gamegen.NewStrategy(*req.Strategy)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		s.session.Strategy = strategy
	}

	writeJSON(w, http.StatusOK, s.session)
}

// ProposeGame suggests the next game without committing it.
func (s *Server) ProposeGame(w http.ResponseWriter, r *http.Request) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	game, ok := s.session.NextGame()
	if !ok {
		http.Error(w, "not enough eligible players for another game", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, gameResponse{
		Game:      game,
		Formatted: s.session.FormatGame(game),
	})
}

// CommitGame appends the game in the request body to the session log.
func (s *Server) CommitGame(w http.ResponseWriter, r *http.Request) {
	var game gamegen.Game
	if err := json.NewDecoder(r.Body).Decode(&game); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.session.AddGame(game)

	writeJSON(w, http.StatusCreated, s.session)
}

// ProposeAndCommitGame suggests the next game and commits it in one
// step, which is what the court-side UI does between matches.
func (s *Server) ProposeAndCommitGame(w http.ResponseWriter, r *http.Request) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	game, ok := s.session.NextGame()
	if !ok {
		http.Error(w, "not enough eligible players for another game", http.StatusNotFound)
		return
	}

	s.session.AddGame(game)

	writeJSON(w, http.StatusCreated, gameResponse{
		Game:      game,
		Formatted: s.session.FormatGame(game),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
