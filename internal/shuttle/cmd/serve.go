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
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/shuttle/internal/shuttle/web"
	"laptudirm.com/x/shuttle/pkg/gamegen"
	"laptudirm.com/x/shuttle/pkg/roster"
)

func Serve() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve [session-file]",
		Short: "Serve a session over a JSON API for a browser front end",
		Args:  cobra.MaximumNArgs(1),

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

			addr, _ := cmd.Flags().GetString("addr")
			logrus.Infof("Serving the session API on %s", addr)

			return web.NewServer(session, history).ListenAndServe(addr)
		},
	}

	cmd.Flags().String("addr", ":8081", "Address to serve the session API on")
	addSessionFlags(cmd)
	return cmd
}
