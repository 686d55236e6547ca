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

package cmd

import (
	"fmt"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"laptudirm.com/x/shuttle/pkg/gamegen"
)

const SPIN = 31

func Balance() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Measure how evenly generated games spread across players",
		Args:  cobra.NoArgs,

		Long: heredoc.Doc(`balance simulates gatherings where every suggested game is
			played, and reports the spread between the most and least
			played player. A small spread means the generator is keeping
			game time fair as the session goes on.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			players, _ := cmd.Flags().GetInt("players")
			teamSize, _ := cmd.Flags().GetInt("team-size")
			trials, _ := cmd.Flags().GetInt("trials")
			gameCounts, _ := cmd.Flags().GetIntSlice("games")

			s := spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond)
			s.Start()

			type row struct {
				games, min, max int
			}

			rows := make([]row, 0, len(gameCounts))
			for _, games := range gameCounts {
				min, max := 0, 0

				for trial := 0; trial < trials; trial++ {
					counts := simulate(players, teamSize, games)

					trialMin := lo.Min(counts)
					trialMax := lo.Max(counts)

					if trial == 0 || trialMin < min {
						min = trialMin
					}

					if trial == 0 || trialMax > max {
						max = trialMax
					}
				}

				rows = append(rows, row{games, min, max})
			}

			s.Stop()

			fmt.Println("╔═══════════════════════════════════╗")
			fmt.Println("║   Games     Min     Max    Spread ║")
			fmt.Println("╠═══════════════════════════════════╣")
			for _, r := range rows {
				fmt.Printf("║   %5d   %5d   %5d    %5d  ║\n", r.games, r.min, r.max, r.max-r.min)
			}
			fmt.Println("╚═══════════════════════════════════╝")

			return nil
		},
	}

	cmd.Flags().Int("players", 6, "Number of players in the simulated roster")
	cmd.Flags().Int("team-size", 2, "Players on one side of a court")
	cmd.Flags().Int("trials", 10, "Simulated gatherings per game count")
	cmd.Flags().IntSlice("games", []int{20, 40, 60, 80, 100}, "Game counts to simulate")

	return cmd
}

// simulate plays out a gathering where every suggestion is committed,
// returning the per-player game counts at the end. The shuffled strategy
// makes the trials differ from each other.
func simulate(players, teamSize, games int) []int {
	session := gamegen.NewSession()
	session.SetTeamSize(teamSize)
	session.Strategy = gamegen.NewShuffled(nil)

	for i := 0; i < players; i++ {
		session.AddPlayer(fmt.Sprintf("Player %d", i+1))
	}

	for i := 0; i < games; i++ {
		game, ok := session.NextGame()
		if !ok {
			break
		}

		session.AddGame(game)
	}

	// include players who never made it into a game
	played := session.PlayerGameCounts()
	counts := make([]int, players)
	for i := range counts {
		counts[i] = played[i]
	}

	return counts
}
