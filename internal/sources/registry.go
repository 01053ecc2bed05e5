package sources

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goliatone/go-blogbuild/pkg/interfaces"
)

// ErrRegistryNotFound signals that the registry file is absent. Callers
// degrade to an empty source list rather than failing the build.
var ErrRegistryNotFound = errors.New("sources: registry file not found")

type registryDocument struct {
	Sources []interfaces.ContentSource `json:"sources"`
}

// LoadRegistry reads the declarative source registry from a JSON file with a
// top-level "sources" array. A missing file returns ErrRegistryNotFound; a
// malformed file is a configuration error surfaced to the driver.
func LoadRegistry(path string) ([]interfaces.ContentSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRegistryNotFound, path)
		}
		return nil, fmt.Errorf("sources: read registry %s: %w", path, err)
	}

	var doc registryDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("sources: decode registry %s: %w", path, err)
	}

	out := make([]interfaces.ContentSource, 0, len(doc.Sources))
	for _, src := range doc.Sources {
		src.Type = normalizeSourceType(src.Type)
		if src.Pattern == "" {
			src.Pattern = defaultPattern
		}
		out = append(out, src)
	}
	return out, nil
}

// normalizeSourceType maps registry aliases onto the canonical discriminator
// values; "remote" is accepted as a synonym for github.
func normalizeSourceType(value interfaces.SourceType) interfaces.SourceType {
	switch strings.ToLower(strings.TrimSpace(string(value))) {
	case "local":
		return interfaces.SourceLocal
	case "github", "remote":
		return interfaces.SourceGitHub
	default:
		return value
	}
}
