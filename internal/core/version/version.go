// Package version reports build information for libfj binaries
package version

import "fmt"

// BuildInfo holds version information about a build
type BuildInfo struct {
	Component string `json:"component"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
}

// Info returns the build information for component.
// Set via -ldflags "-X 'libfj/internal/core/version.version=v0.1.0' -X 'libfj/internal/core/version.commit=abcd'"
func Info(component string) BuildInfo {
	return BuildInfo{
		Component: component,
		Version:   version,
		Commit:    commit,
		Date:      date,
	}
}

// String renders the info on one line
func (b BuildInfo) String() string {
	return fmt.Sprintf("%s %s (%s, %s)", b.Component, b.Version, b.Commit, b.Date)
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
