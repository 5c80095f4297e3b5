//go:build darwin

package steam

import "os/exec"

func launchClient(exe, gameID string) error {
	// Steam.app is a bundle, not a binary; launch through open.
	return exec.Command("open", "-a", exe, "--args", "-applaunch", gameID).Start()
}
