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

import "github.com/samber/lo"

// NextGame suggests the fairest game to play next, taking into account
// players already committed to other courts in the current round. The
// second return value is false when no structurally valid game exists,
// which is a normal outcome when too few players are eligible.
func (s *Session) NextGame() (Game, bool) {
	return s.GenerateGame(s.Excluded())
}

// Excluded lists the players who cannot take part in the next game
// because they are already on a court in the current round.
//
// Rounds are implicit in the game log: the log length modulo the court
// count gives the court the next game will be played on. Every game
// since the round started occupies its players until the round is over.
func (s *Session) Excluded() []int {
	courts := max(s.Courts, 1)

	// the remainder of games divided by courts is the court number of
	// the next game within the current round
	court_number := len(s.Games) % courts
	if courts == 1 || court_number == 0 {
		return nil
	}

	return lo.FlatMap(s.Games[len(s.Games)-court_number:], func(g Game, _ int) []int {
		return g.Players()
	})
}

// GenerateGame picks the fairest game constructible from the roster
// minus the excluded players. Every pair of disjoint teams drawable from
// the eligible pool is considered and the cheapest one wins; ties keep
// the candidate enumerated first, so the Strategy's pool ordering decides
// between equally fair games.
func (s *Session) GenerateGame(excluded []int) (Game, bool) {
	playerCounts := s.PlayerGameCounts()
	teamCounts := s.TeamGameCounts()

	pool := make([]int, 0, len(s.Players))
	for i := range s.Players {
		if !lo.Contains(excluded, i) {
			pool = append(pool, i)
		}
	}

	strategy := s.Strategy
	if strategy == nil {
		strategy = Normal{}
	}

	teams := combinations(strategy.Order(pool), max(s.TeamSize, 1))

	var best Game
	var bestCost int
	found := false

	for i := 0; i < len(teams); i++ {
		for j := i + 1; j < len(teams); j++ {
			// a player cannot be on both sides of the court
			if lo.SomeBy(teams[i], teams[j].Contains) {
				continue
			}

			game := Game{TeamA: teams[i], TeamB: teams[j]}
			cost := s.cost(game, playerCounts, teamCounts)

			if !found || cost < bestCost {
				best, bestCost, found = game, cost, true
			}
		}
	}

	return best, found
}

// cost scores a candidate game: the total number of games its players
// have already played, plus the number of games its exact team
// compositions have already played together. Lower is fairer.
func (s *Session) cost(g Game, playerCounts map[int]int, teamCounts map[string]int) int {
	total := lo.SumBy(g.Players(), func(player int) int {
		return playerCounts[player]
	})

	for _, team := range g.Teams() {
		total += teamCounts[team.Key()]
	}

	return total
}

// combinations enumerates every way of choosing k players from the pool,
// preserving the pool's order both within and across the combinations.
func combinations(pool []int, k int) []Team {
	if k <= 0 || k > len(pool) {
		return nil
	}

	indices := make([]int, k)
	for i := range indices {
		indices[i] = i
	}

	var teams []Team
	for {
		team := make(Team, k)
		for i, index := range indices {
			team[i] = pool[index]
		}
		teams = append(teams, team)

		// advance to the next combination, rolling over exhausted
		// positions from the right
		i := k - 1
		for i >= 0 && indices[i] == len(pool)-k+i {
			i--
		}

		if i < 0 {
			return teams
		}

		indices[i]++
		for j := i + 1; j < k; j++ {
			indices[j] = indices[j-1] + 1
		}
	}
}
