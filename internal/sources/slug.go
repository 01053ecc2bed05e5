package sources

import (
	"path"
	"regexp"
	"strings"

	"github.com/goliatone/go-slug"
)

var nonWordRuns = regexp.MustCompile(`[^a-z0-9]+`)

// SlugFromPath derives the URL-safe identifier for a post from its file name
// or repository path: the extension is dropped, the rest is lowercased and
// non-word runs collapse to a single hyphen. The derivation is idempotent.
func SlugFromPath(filePath string) string {
	name := path.Base(strings.ReplaceAll(filePath, "\\", "/"))
	name = strings.TrimSuffix(name, path.Ext(name))

	if normalized, err := slug.Normalize(name); err == nil && normalized != "" {
		return normalized
	}

	// go-slug rejects some degenerate inputs; fall back to the same rules
	// applied by hand.
	lowered := strings.ToLower(name)
	return strings.Trim(nonWordRuns.ReplaceAllString(lowered, "-"), "-")
}

// TitleFromPath returns the fallback title used when the frontmatter omits
// one: the file name stem, untouched.
func TitleFromPath(filePath string) string {
	name := path.Base(strings.ReplaceAll(filePath, "\\", "/"))
	return strings.TrimSuffix(name, path.Ext(name))
}
