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

package gamegen

import (
	"sort"
	"strconv"
	"strings"
)

// Team is one side of a court: the set of players grouped together,
// identified by their indices into the session's roster.
type Team []int

// Key returns a canonical representation of the team which is identical
// for any ordering of the same players. It is used to count how often an
// exact team composition has played together.
func (t Team) Key() string {
	sorted := make([]int, len(t))
	copy(sorted, t)
	sort.Ints(sorted)

	parts := make([]string, len(sorted))
	for i, player := range sorted {
		parts[i] = strconv.Itoa(player)
	}

	return strings.Join(parts, ",")
}

// Contains reports whether the given player is part of the team.
func (t Team) Contains(player int) bool {
	for _, p := range t {
		if p == player {
			return true
		}
	}

	return false
}

// A Game is a single match between two disjoint, equally sized teams.
// Games are immutable once created; the two sides are distinguishable.
type Game struct {
	TeamA Team `yaml:"team-a" json:"team_a"`
	TeamB Team `yaml:"team-b" json:"team_b"`
}

// Players lists the indices of every player taking part in the game.
func (g Game) Players() []int {
	players := make([]int, 0, len(g.TeamA)+len(g.TeamB))
	players = append(players, g.TeamA...)
	players = append(players, g.TeamB...)
	return players
}

// Teams lists the two sides of the game.
func (g Game) Teams() [2]Team {
	return [2]Team{g.TeamA, g.TeamB}
}
