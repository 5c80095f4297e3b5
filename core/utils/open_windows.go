//go:build windows

package utils

import "os/exec"

// OpenURI hands a URI to the OS shell so the registered protocol handler
// picks it up. The process is detached; no exit status is collected.
func OpenURI(uri string) error {
	// "start" needs an explicit empty title argument or it eats the URI.
	return exec.Command("cmd", "/C", "start", "", uri).Start()
}
