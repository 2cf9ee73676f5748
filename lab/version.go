package lab

import "github.com/czffzc/ConVulAgent/internal/experiment"

// Version information for the counter lab.
const (
	// Version is the current version of the lab.
	Version = "0.1.0"

	// VersionMajor is the major version number.
	VersionMajor = 0

	// VersionMinor is the minor version number.
	VersionMinor = 1

	// VersionPatch is the patch version number.
	VersionPatch = 0
)

// Info provides runtime information about the experiment defaults.
type Info struct {
	// Version is the lab version string.
	Version string

	// DefaultWorkers is the canonical worker pool size.
	DefaultWorkers int

	// DefaultIncrements is the canonical per-worker increment count.
	DefaultIncrements int
}

// GetInfo returns information about the lab.
//
// Example:
//
//	info := lab.GetInfo()
//	fmt.Printf("counterlab %s (%d workers × %d increments)\n",
//		info.Version, info.DefaultWorkers, info.DefaultIncrements)
func GetInfo() Info {
	return Info{
		Version:           Version,
		DefaultWorkers:    experiment.DefaultWorkers,
		DefaultIncrements: experiment.DefaultIncrements,
	}
}
