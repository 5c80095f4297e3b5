package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// storesCmd represents the stores command
var storesCmd = &cobra.Command{
	Use:   "stores",
	Short: "Show detected platform clients",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}

		for _, st := range rt.lib.Stores() {
			status := "not found"
			if st.IsAvailable() {
				status = "available"
			}
			fmt.Printf("%-8s %-18s %-10s %s\n", st.StoreID(), st.DisplayName(), status, st.ClientPath())
		}

		if id := rt.steamStore.Paths().DetectSteamID(); id != "" {
			fmt.Printf("\nSteam account: %s\n", id)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(storesCmd)
}
