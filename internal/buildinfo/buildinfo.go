// Package buildinfo holds the build metadata of the volnita binary. The
// linker injects values into cmd/volnita; main forwards them with Set.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Info describes one build.
type Info struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
}

const (
	unsetCommit  = "none"
	unsetBuiltBy = "unknown"
)

var current = Info{Version: "dev", Commit: unsetCommit, Date: "unknown", BuiltBy: unsetBuiltBy}

// Set stores the build metadata received from linker-injected variables.
func Set(version, commit, date, builtBy string) {
	current = Info{Version: version, Commit: commit, Date: date, BuiltBy: builtBy}
}

// Get returns the build metadata. A missing commit or builder is filled in
// from the VCS revision and Go version recorded by the toolchain.
func Get() Info {
	info := current
	if info.Commit != unsetCommit && info.BuiltBy != unsetBuiltBy {
		return info
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if info.Commit == unsetCommit {
		for _, setting := range bi.Settings {
			if setting.Key == "vcs.revision" {
				info.Commit = setting.Value
			}
		}
	}
	if info.BuiltBy == unsetBuiltBy {
		info.BuiltBy = bi.GoVersion
	}
	return info
}

// Format renders the metadata as printed by --version.
func (i Info) Format(name string) string {
	return fmt.Sprintf("%s version %s\ncommit: %s\nbuilt at: %s\nbuilt by: %s\n", name, i.Version, i.Commit, i.Date, i.BuiltBy)
}
