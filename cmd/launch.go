package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// launchCmd represents the launch command
var launchCmd = &cobra.Command{
	Use:   "launch [store:id]",
	Short: "Launch a game through its platform client",
	Long:  `Launches a game by its unique key, e.g. "steam:440" or "epic:Fortnite".`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}

		key := args[0]
		if _, err := rt.store.RecordGameLaunch(key); err != nil {
			return err
		}
		if err := rt.lib.LaunchGame(key); err != nil {
			return err
		}

		fmt.Printf("Launched %s\n", key)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(launchCmd)
}
