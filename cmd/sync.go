package cmd

import (
	"fmt"

	"game-launcher/core/library"

	"github.com/spf13/cobra"
)

var cachedFlag bool

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync [steam|epic]",
	Short: "Sync remotely owned games for a platform",
	Long: `Fetches the platform's owned-games catalog, merges it with the local
installed scan and persists the result. With --cached no network call is
made; the last synced list is re-merged against a fresh local scan.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}

		storeID := args[0]

		var games []library.Game
		if cachedFlag {
			var lastSync uint64
			games, lastSync, err = rt.reconciler.Cached(library.StoreType(storeID))
			if err != nil {
				return err
			}
			fmt.Printf("Last synced at %d\n", lastSync)
		} else {
			src, err := rt.source(storeID)
			if err != nil {
				return err
			}
			games, err = rt.reconciler.Sync(src)
			if err != nil {
				return err
			}
		}

		installed := 0
		for _, g := range games {
			if g.Installed {
				installed++
			}
		}
		fmt.Printf("%d owned, %d installed\n", len(games), installed)
		return nil
	},
}

func init() {
	syncCmd.Flags().BoolVar(&cachedFlag, "cached", false, "reuse the last synced list, no network call")
	RootCmd.AddCommand(syncCmd)
}
