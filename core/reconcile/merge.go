package reconcile

import (
	"strings"

	"game-launcher/core/library"
)

// Merge combines a remote owned-games list with the locally installed list.
// For every owned game with a matching installed entry the local install
// metadata wins: installed flag, install path, executable, and size on disk.
// Remote placeholder names (the "App 12345" pattern) are replaced with the
// local name when one exists. Owned games without a local match come out
// with every install field cleared, so re-merging a previously merged list
// against a fresh scan always reflects the current install state. Merging
// twice with no underlying change yields identical output.
func Merge(owned, installed []library.Game) []library.Game {
	local := make(map[string]library.Game, len(installed))
	for _, g := range installed {
		local[g.UniqueKey()] = g
	}

	merged := make([]library.Game, 0, len(owned))
	for _, g := range owned {
		if match, ok := local[g.UniqueKey()]; ok {
			g.Installed = true
			g.InstallPath = match.InstallPath
			g.Executable = match.Executable
			g.SizeBytes = match.SizeBytes
			if strings.HasPrefix(g.Name, "App ") && match.Name != "" {
				g.Name = match.Name
			}
		} else {
			g.Installed = false
			g.InstallPath = ""
			g.Executable = ""
			g.SizeBytes = 0
		}
		merged = append(merged, g)
	}
	return merged
}
