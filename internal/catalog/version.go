package catalog

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// toolSatisfies reports whether the running tool version meets the catalog's
// minimum. Both sides tolerate a leading "v". A non-semver tool version
// (development builds report "dev") returns an error so callers can skip the
// gate.
func toolSatisfies(toolVersion, minVersion string) (bool, error) {
	tv, err := parseSemver(toolVersion)
	if err != nil {
		return false, fmt.Errorf("parsing tool version %q: %w", toolVersion, err)
	}
	mv, err := parseSemver(minVersion)
	if err != nil {
		return false, fmt.Errorf("parsing min_tool_version %q: %w", minVersion, err)
	}
	return tv.Compare(mv) >= 0, nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
