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

// PlayerGameCounts counts the number of games each player has taken part
// in, on either side. The counts are derived from the full game log on
// every call, so they can never go stale when the configuration or the
// roster changes. Players missing from the map have a count of zero.
func (s *Session) PlayerGameCounts() map[int]int {
	counts := make(map[int]int)

	for _, game := range s.Games {
		for _, player := range game.Players() {
			counts[player]++
		}
	}

	return counts
}

// TeamGameCounts counts the number of games each exact team composition
// has played as one side of a court, keyed by Team.Key. Compositions
// missing from the map have a count of zero.
func (s *Session) TeamGameCounts() map[string]int {
	counts := make(map[string]int)

	for _, game := range s.Games {
		for _, team := range game.Teams() {
			counts[team.Key()]++
		}
	}

	return counts
}
