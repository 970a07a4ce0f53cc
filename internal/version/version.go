package version

import (
	"runtime/debug"
	"strconv"
)

// Set with -ldflags "-X github.com/ericogr/lingjing-idle/internal/version.Version=...".
// Empty values fall back to the VCS stamp the toolchain embeds.
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
	Dirty   = ""
)

// Info is the build metadata reported by the server and the CLIs.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date,omitempty"`
	Dirty     bool   `json:"dirty"`
	GoVersion string `json:"go_version,omitempty"`
}

// Get merges the linker values with the embedded build info.
func Get() Info {
	info := Info{Version: Version, Commit: Commit, Date: Date}
	info.Dirty, _ = strconv.ParseBool(Dirty)
	if bi, ok := debug.ReadBuildInfo(); ok {
		fill(&info, bi)
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	return info
}

func fill(info *Info, bi *debug.BuildInfo) {
	info.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == "" {
				info.Date = s.Value
			}
		case "vcs.modified":
			if Dirty == "" {
				info.Dirty = s.Value == "true"
			}
		}
	}
}

// String is the one-line form used in startup logs.
func (i Info) String() string {
	s := i.Version + " (" + i.Commit
	if i.Dirty {
		s += ", dirty"
	}
	return s + ")"
}
