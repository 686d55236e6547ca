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
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"laptudirm.com/x/shuttle/pkg/gamegen"
	"laptudirm.com/x/shuttle/pkg/roster"
)

func Run() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [session-file]",
		Short: "Run an interactive gathering, suggesting one game at a time",
		Args:  cobra.MaximumNArgs(1),

		Long: heredoc.Doc(`run drives a play gathering from the terminal. It suggests the
			fairest next game for the current roster, waits for it to be
			played, and repeats. The roster and courts can be changed at
			any point between games.

			The roster and configuration are taken from the optional YAML
			session file and the --player, --courts, --team-size and
			--strategy flags.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			session := gamegen.NewSession()

			if len(args) == 1 {
				if err := loadSession(args[0], session); err != nil {
					return err
				}
			}

			if err := applyFlags(cmd, session); err != nil {
				return err
			}

			history := roster.Load(roster.DefaultFile)
			history.Add(session.Players...)

			return runSession(cmd, session, history)
		},
	}

	addSessionFlags(cmd)
	return cmd
}

// addSessionFlags registers the flags shared by the run and serve
// commands for describing a session without a session file.
func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("player", "p", nil, "Add a player to the roster (repeatable)")
	cmd.Flags().IntP("courts", "c", 1, "Number of courts in simultaneous use")
	cmd.Flags().IntP("team-size", "s", 2, "Players on one side of a court")
	cmd.Flags().String("strategy", "normal", "Tie-break strategy (normal or shuffled)")
}

// sessionFile is the on-disk description of a gathering.
type sessionFile struct {
	Players  []string `yaml:"players"`
	Courts   int      `yaml:"courts"`
	TeamSize int      `yaml:"team-size"`
	Strategy string   `yaml:"strategy"`
}

func loadSession(path string, session *gamegen.Session) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read session file: %w", err)
	}

	var config sessionFile
	if err := yaml.Unmarshal(file, &config); err != nil {
		return fmt.Errorf("parse session file: %w", err)
	}

	session.Players = append(session.Players, config.Players...)

	if config.Courts != 0 {
		session.SetCourts(config.Courts)
	}

	if config.TeamSize != 0 {
		session.SetTeamSize(config.TeamSize)
	}

	if config.Strategy != "" {
		session.Strategy, err = gamegen.NewStrategy(config.Strategy)
		if err != nil {
			return err
		}
	}

	return nil
}

func applyFlags(cmd *cobra.Command, session *gamegen.Session) error {
	players, _ := cmd.Flags().GetStringArray("player")
	for _, player := range players {
		session.AddPlayer(player)
	}

	if cmd.Flag("courts").Changed {
		courts, _ := cmd.Flags().GetInt("courts")
		session.SetCourts(courts)
	}

	if cmd.Flag("team-size").Changed {
		size, _ := cmd.Flags().GetInt("team-size")
		session.SetTeamSize(size)
	}

	if cmd.Flag("strategy").Changed {
		name, _ := cmd.Flags().GetString("strategy")
		strategy, err := gamegen.NewStrategy(name)
		if err != nil {
			return err
		}

		session.Strategy = strategy
	}

	return nil
}

// runSession is the interactive loop: suggest a game, read a command,
// repeat until the gathering is over.
func runSession(cmd *cobra.Command, session *gamegen.Session, history *roster.History) error {
	scanner := bufio.NewScanner(cmd.InOrStdin())

	for {
		game, ok := session.NextGame()
		if ok {
			court := len(session.Games)%session.Courts + 1
			fmt.Printf("\x1b[33mCourt %d\x1b[0m: %s\n", court, session.FormatGame(game))
			fmt.Print("[enter] play  a <name>  r <name>  courts <n>  teams <n>  players  q > ")
		} else {
			logrus.Warn("Not enough eligible players for another game.")
			fmt.Print("a <name>  r <name>  courts <n>  teams <n>  players  q > ")
		}

		if !scanner.Scan() {
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			if ok {
				session.AddGame(game)
			}

			continue
		}

		switch command, rest := fields[0], strings.Join(fields[1:], " "); command {
		case "a", "add":
			if rest == "" {
				logrus.Error("add: missing player name")
				continue
			}

			session.AddPlayer(rest)
			history.Add(rest)

		case "r", "remove":
			if !session.RemovePlayer(rest) {
				logrus.Warnf("remove: no player named %s", rest)
				continue
			}

			logrus.Warn("Player removed: the game history has been reset.")

		case "courts":
			n, err := strconv.Atoi(rest)
			if err != nil {
				logrus.Errorf("courts: %s is not a number", rest)
				continue
			}

			session.SetCourts(n)

		case "teams":
			n, err := strconv.Atoi(rest)
			if err != nil {
				logrus.Errorf("teams: %s is not a number", rest)
				continue
			}

			session.SetTeamSize(n)

		case "players":
			printRoster(session)

		case "q", "quit":
			fmt.Printf("%d games played. See you next time!\n", len(session.Games))
			return nil

		default:
			logrus.Errorf("unknown command %s", command)
		}
	}
}

func printRoster(session *gamegen.Session) {
	counts := session.PlayerGameCounts()
	for i, player := range session.Players {
		fmt.Printf("- \x1b[34m%-20s\x1b[0m %d games\n", player, counts[i])
	}
}
