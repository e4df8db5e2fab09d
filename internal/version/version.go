package version

import (
	"fmt"
	"regexp"
)

// Build metadata, set via ldflags at release time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
	BuiltBy = "local"
)

var semverRe = regexp.MustCompile(`^v?(\d+\.\d+\.\d+)$`)

// Release reports whether Version is a clean semver tag.
func Release() bool {
	return semverRe.MatchString(Version)
}

// String formats the build metadata for --version. Release builds print just
// the tag; everything else carries commit, date and builder.
func String() string {
	if m := semverRe.FindStringSubmatch(Version); m != nil {
		return "v" + m[1]
	}
	return fmt.Sprintf("%s (Commit: %s) (Date: %s) (Built by: %s)", Version, Commit, Date, BuiltBy)
}
