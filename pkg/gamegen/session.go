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

// Package gamegen generates balanced matchups for a group of players
// taking turns on a limited number of courts. It picks the fairest next
// game from every structurally possible one, preferring players who have
// played the least and team compositions which haven't played together.
package gamegen

import "strings"

// Placeholder is substituted for any player index which no longer
// resolves to a name in the roster.
const Placeholder = "?"

// A Session is one play gathering: a roster of players, the log of games
// played so far, and the configuration of the courts. The session lives
// in memory and is owned by a single caller; it is not safe for
// concurrent use without external locking.
type Session struct {
	// Player names in roster order. A player is identified everywhere
	// else by its index into this slice.
	Players []string `yaml:"players" json:"players"`

	// Games committed so far, in play order.
	Games []Game `yaml:"games,omitempty" json:"games"`

	// The number of courts available for simultaneous games.
	Courts int `yaml:"courts" json:"courts"`

	// The number of players on one side of a court, i.e. 1 for singles
	// and 2 for doubles.
	TeamSize int `yaml:"team-size" json:"team_size"`

	// Strategy controls the candidate enumeration order, which decides
	// how equal-cost games are tied broken. Nil means Normal.
	Strategy Strategy `yaml:"-" json:"-"`
}

// NewSession returns an empty session configured for doubles on a single
// court with deterministic tie-breaking.
func NewSession() *Session {
	return &Session{
		Courts:   1,
		TeamSize: 2,
		Strategy: Normal{},
	}
}

// AddPlayer appends a player to the end of the roster.
func (s *Session) AddPlayer(name string) {
	s.Players = append(s.Players, name)
}

// RemovePlayer removes the named player from the roster and reports
// whether it was found. Since players are identified by their roster
// position, removal shifts every later index and invalidates all
// recorded games, so the game log is cleared alongside.
func (s *Session) RemovePlayer(name string) bool {
	for i, player := range s.Players {
		if player == name {
			s.Games = nil
			s.Players = append(s.Players[:i], s.Players[i+1:]...)
			return true
		}
	}

	return false
}

// AddGame appends a game to the session's log. The game is recorded as
// is; callers should commit the result of NextGame before mutating the
// roster.
func (s *Session) AddGame(g Game) {
	s.Games = append(s.Games, g)
}

// SetCourts changes the number of courts, clamped to at least one.
func (s *Session) SetCourts(n int) {
	s.Courts = max(n, 1)
}

// SetTeamSize changes the team size, clamped to at least one.
func (s *Session) SetTeamSize(n int) {
	s.TeamSize = max(n, 1)
}

// Normalize clamps the session's configuration to usable values and
// fills in a default strategy. Sessions unmarshalled from a file pass
// through here before use.
func (s *Session) Normalize() {
	s.Courts = max(s.Courts, 1)
	s.TeamSize = max(s.TeamSize, 1)
	if s.Strategy == nil {
		s.Strategy = Normal{}
	}
}

// FormatGame renders a game using the roster's player names, in the form
// "A and B vs. C and D". Indices which don't resolve to a player are
// rendered as a placeholder instead of failing.
func (s *Session) FormatGame(g Game) string {
	sides := make([]string, 0, 2)
	for _, team := range g.Teams() {
		names := make([]string, len(team))
		for i, player := range team {
			if player >= 0 && player < len(s.Players) {
				names[i] = s.Players[player]
			} else {
				names[i] = Placeholder
			}
		}

		sides = append(sides, strings.Join(names, " and "))
	}

	return strings.Join(sides, " vs. ")
}

func max(a, b int) int {
	if a > b {
		return a
	}

	return b
}
