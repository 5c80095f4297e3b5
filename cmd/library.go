package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var installedOnly bool

// libraryCmd represents the library command
var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Scan all platforms and list the unified catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}

		games, err := rt.lib.RefreshAll()
		if err != nil {
			return err
		}
		if installedOnly {
			games = rt.lib.GetInstalledGames()
		}

		for _, g := range games {
			marker := " "
			if g.Installed {
				marker = "*"
			}
			fmt.Printf("%s %-12s %-40s %s\n", marker, g.UniqueKey(), g.Name, g.InstallPath)
		}
		fmt.Printf("\n%d games (* installed)\n", len(games))
		return nil
	},
}

func init() {
	libraryCmd.Flags().BoolVar(&installedOnly, "installed", false, "only list installed games")
	RootCmd.AddCommand(libraryCmd)
}
