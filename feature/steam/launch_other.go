//go:build !darwin

package steam

import "os/exec"

func launchClient(exe, gameID string) error {
	return exec.Command(exe, "-applaunch", gameID).Start()
}
