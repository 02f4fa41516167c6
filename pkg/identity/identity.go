// Package identity resolves a (title, platform) pair to a canonical storage
// key and filesystem-safe path segments. Resolution never fails; unknown or
// empty inputs fall back to "Unknown" segments so every request yields a
// usable path.
package identity

import (
	"path/filepath"
	"strings"

	"github.com/agentstation/trophycase/pkg/constants"
)

// Identity is the resolved storage location for one (title, platform).
type Identity struct {
	// PlatformFolder is the vendor-qualified platform directory name.
	PlatformFolder string

	// TitleFolder is the sanitized title used for both the directory and the
	// cache file stem.
	TitleFolder string

	// CanonicalFilePath is the absolute path of the reconciled cache file:
	// <account>/Achievements/<PlatformFolder>/<TitleFolder>/<TitleFolder>.json
	CanonicalFilePath string
}

// platformFolders maps generic platform labels to the vendor-qualified folder
// names used on disk. Lookup is case-insensitive.
var platformFolders = map[string]string{
	"pc":            "PC (Microsoft Windows)",
	"windows":       "PC (Microsoft Windows)",
	"mac":           "macOS",
	"macos":         "macOS",
	"linux":         "Linux",
	"steam":         "Steam",
	"gog":           "GOG",
	"epic":          "Epic Games Store",
	"playstation":   "PlayStation",
	"playstation 4": "PlayStation 4",
	"playstation 5": "PlayStation 5",
	"xbox":          "Xbox",
	"xbox one":      "Xbox One",
	"switch":        "Nintendo Switch",
}

// PlatformFolder returns the folder label for a platform. Unknown platforms
// fall back to the sanitized input; a blank platform resolves to "Unknown".
func PlatformFolder(platform string) string {
	p := strings.TrimSpace(platform)
	if p == "" {
		return constants.UnknownSegment
	}
	if folder, ok := platformFolders[strings.ToLower(p)]; ok {
		return folder
	}
	return Sanitize(p)
}

// Resolve turns an account root plus (title, platform) into the canonical
// storage identity. It never fails.
func Resolve(accountRoot, platform, title string) Identity {
	platformFolder := PlatformFolder(platform)
	titleFolder := Sanitize(title)

	return Identity{
		PlatformFolder: platformFolder,
		TitleFolder:    titleFolder,
		CanonicalFilePath: filepath.Join(
			accountRoot,
			constants.AchievementsDir,
			platformFolder,
			titleFolder,
			titleFolder+constants.CacheExt,
		),
	}
}

// CanonicalDir returns the directory holding the canonical cache file.
func (id Identity) CanonicalDir() string {
	return filepath.Dir(id.CanonicalFilePath)
}

// Key returns a stable lock/dedupe key for this identity. Two requests with
// the same key must not write the canonical file concurrently.
func (id Identity) Key() string {
	return strings.ToLower(id.CanonicalFilePath)
}
