package catalog

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

// versionRegex matches the first dotted version number in a banner, e.g.
// "23.0.0.0" in "Oracle Database 23ai Free Release 23.0.0.0.0 - ..." or
// "25.7.1.3" in "25.7.1.3 (official build)".
var versionRegex = regexp.MustCompile(`(\d+)\.(\d+)(?:\.(\d+))?`)

// VersionInfo represents parsed server version information
type VersionInfo struct {
	Major int    // Major version number (e.g., 23)
	Minor int    // Minor version number (e.g., 0)
	Patch int    // Patch version number (e.g., 1)
	Raw   string // Raw banner returned by the server
}

// String returns the version as a string in format "major.minor.patch"
func (v VersionInfo) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// IsAtLeast checks if this version is at least the specified version
func (v VersionInfo) IsAtLeast(major, minor int) bool {
	if v.Major > major {
		return true
	}
	if v.Major == major && v.Minor >= minor {
		return true
	}
	return false
}

// GetVersion retrieves and parses the server version using the dialect's
// version query.
func (c *Client) GetVersion(ctx context.Context) (*VersionInfo, error) {
	res, err := c.Query(ctx, c.dialect.VersionQuery, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query server version")
	}

	banners := res.Strings()
	if len(banners) == 0 {
		return nil, errors.New("server returned no version")
	}

	version, err := parseVersion(banners[0])
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse server version: %s", banners[0])
	}

	return version, nil
}

// parseVersion extracts structured version information from a server banner.
func parseVersion(banner string) (*VersionInfo, error) {
	matches := versionRegex.FindStringSubmatch(banner)
	if len(matches) < 3 {
		return nil, fmt.Errorf("invalid version format: %s", banner)
	}

	major, err := strconv.Atoi(matches[1])
	if err != nil {
		return nil, fmt.Errorf("invalid major version: %s", matches[1])
	}

	minor, err := strconv.Atoi(matches[2])
	if err != nil {
		return nil, fmt.Errorf("invalid minor version: %s", matches[2])
	}

	patch := 0
	if matches[3] != "" {
		patch, err = strconv.Atoi(matches[3])
		if err != nil {
			return nil, fmt.Errorf("invalid patch version: %s", matches[3])
		}
	}

	return &VersionInfo{
		Major: major,
		Minor: minor,
		Patch: patch,
		Raw:   banner,
	}, nil
}
