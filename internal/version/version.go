// ABOUTME: Version constants
// ABOUTME: Identifies the player build to logs and discovery
package version

const (
	// Version is the player version string
	Version = "0.1.0"

	// Product is the player product name
	Product = "OpenPlayer"

	// Manufacturer identifies the project
	Manufacturer = "CommonsLab"
)
