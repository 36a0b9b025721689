// Package version contains the current version of the comparison tools.
package version

// Version is the package version. Release builds override it with -ldflags "-X".
var Version = "1.2.0" //nolint:gochecknoglobals
