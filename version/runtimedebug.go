package version

import (
	"fmt"
	"runtime/debug"
)

const unknown = "(devel)"

// BuildInfo returns the build information
func BuildInfo() (*debug.BuildInfo, error) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, fmt.Errorf("fetching build info failed")
	}

	if bi == nil {
		return nil, fmt.Errorf("build information is empty")
	}

	return bi, nil
}

// String returns the main module version followed by the vcs revision, when known.
func String() string {
	bi, err := BuildInfo()
	if err != nil {
		return unknown
	}

	v := bi.Main.Version
	if v == "" {
		v = unknown
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			rev := s.Value
			if len(rev) > 12 {
				rev = rev[:12]
			}
			return v + " " + rev
		}
	}
	return v
}
