//go:build !windows && !darwin

package epic

// The Epic Games Launcher has no native Linux build. Online ownership still
// works; local detection reports nothing.
func detectPlatform() Paths {
	return Paths{}
}
