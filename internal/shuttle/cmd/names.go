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

	"github.com/spf13/cobra"

	"laptudirm.com/x/shuttle/pkg/roster"
)

func Names() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "names",
		Short: "Lists the player names remembered from past gatherings",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			history := roster.Load(roster.DefaultFile)

			if clear, _ := cmd.Flags().GetBool("clear"); clear {
				history.Clear()
				fmt.Println("Forgot all remembered player names.")
				return nil
			}

			if len(history.Names) == 0 {
				fmt.Println("\x1b[31mNo Remembered Players.\x1b[0m")
				return nil
			}

			fmt.Println("\x1b[32mRemembered Players\x1b[0m:")
			for _, name := range history.Sorted() {
				fmt.Printf("- \x1b[34m%s\x1b[0m\n", name)
			}

			return nil
		},
	}

	cmd.Flags().Bool("clear", false, "Forget every remembered name")
	return cmd
}
