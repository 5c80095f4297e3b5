//go:build !windows && !darwin

package utils

import "os/exec"

// OpenURI hands a URI to the OS shell so the registered protocol handler
// picks it up. The process is detached; no exit status is collected.
func OpenURI(uri string) error {
	return exec.Command("xdg-open", uri).Start()
}
