package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rxtech-lab/argo-compose/pkg/errors"
)

// CheckMinimumVersion checks whether the running engine satisfies the minimum
// version a strategy configuration declares. Returns nil if compatible.
//
// Compatibility Rules:
//   - If the engine version is "main" (development build), the check is skipped
//   - An empty minimum version means no constraint
//   - Otherwise the engine version must be >= the minimum version
//
// Examples:
//   - Engine 0.3.0, minimum 0.2.0 -> OK
//   - Engine 0.3.0, minimum 0.3.0 -> OK (exact match)
//   - Engine 0.2.5, minimum 0.3.0 -> ERROR
//   - Engine main, minimum 0.3.0 -> OK (dev build, skip check)
func CheckMinimumVersion(engineVersion, minVersion string) error {
	// Strip 'v' prefix if present for consistency
	engineVersion = strings.TrimPrefix(engineVersion, "v")
	minVersion = strings.TrimPrefix(minVersion, "v")

	// Skip version check for "main" (development builds)
	if engineVersion == "main" || minVersion == "" {
		return nil
	}

	engineSemver, err := semver.NewVersion(engineVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid engine version '%s'", engineVersion)
	}

	minSemver, err := semver.NewVersion(minVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid minimum version '%s'", minVersion)
	}

	if engineSemver.LessThan(minSemver) {
		return errors.Newf(errors.ErrCodeInvalidVersion,
			"engine version %s is older than the required minimum %s",
			engineSemver.String(), minSemver.String())
	}

	return nil
}
