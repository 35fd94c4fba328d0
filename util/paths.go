package util

import "os"

// DefaultDataDir is where BlueZ keeps its per-adapter storage
const DefaultDataDir = "/var/lib/bluetooth"

// GetDataDir returns the root of the attribute database tree
func GetDataDir() string {
	if envDir := os.Getenv("ATTMON_DIR"); envDir != "" {
		return envDir
	}
	return DefaultDataDir
}
