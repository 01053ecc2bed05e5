package sources

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-blogbuild/internal/logging"
	"github.com/goliatone/go-blogbuild/pkg/interfaces"
)

// Aggregator scans every registry source in order, concatenates the results,
// and deduplicates by slug with last-occurrence-wins semantics.
type Aggregator struct {
	registryPath string
	scanners     map[interfaces.SourceType]interfaces.SourceScanner
	logger       interfaces.Logger
}

// NewAggregator wires an aggregator over the supplied per-type scanners.
func NewAggregator(registryPath string, scanners map[interfaces.SourceType]interfaces.SourceScanner, logger interfaces.Logger) *Aggregator {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Aggregator{
		registryPath: registryPath,
		scanners:     scanners,
		logger:       logger,
	}
}

// Aggregate loads the registry and scans each source sequentially, in
// declaration order. Source-level failures (unreachable listing, unknown
// type) are logged and cost only that source; a missing registry yields an
// empty set with a warning.
func (a *Aggregator) Aggregate(ctx context.Context) ([]interfaces.Post, interfaces.ScanStats, error) {
	stats := interfaces.ScanStats{}

	registry, err := LoadRegistry(a.registryPath)
	if err != nil {
		if errors.Is(err, ErrRegistryNotFound) {
			a.logger.Warn("sources.registry_missing", "path", a.registryPath)
			return nil, stats, nil
		}
		return nil, stats, err
	}

	var all []interfaces.Post
	for _, source := range registry {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}

		scanner, ok := a.scanners[source.Type]
		if !ok {
			a.logger.Error("sources.unknown_type", "type", string(source.Type), "path", source.Path)
			continue
		}

		result, scanErr := scanner.Scan(ctx, source)
		stats = stats.Merge(result.Stats)
		if scanErr != nil {
			a.logger.Error("sources.scan_failed", "type", string(source.Type), "path", source.Path, "error", scanErr)
			continue
		}
		all = append(all, result.Posts...)
	}

	return dedupeBySlug(all), stats, nil
}

// dedupeBySlug keeps exactly one post per slug. Later posts in scan order
// replace earlier ones, while output order preserves each slug's first
// appearance.
func dedupeBySlug(posts []interfaces.Post) []interfaces.Post {
	if len(posts) == 0 {
		return nil
	}

	byIndex := make(map[string]int, len(posts))
	out := make([]interfaces.Post, 0, len(posts))
	for _, post := range posts {
		if idx, seen := byIndex[post.Slug]; seen {
			out[idx] = post
			continue
		}
		byIndex[post.Slug] = len(out)
		out = append(out, post)
	}
	return out
}

// FilterByStatus returns the posts eligible for output. By default only
// published posts pass; includeAll is the escape hatch that keeps drafts and
// archived posts in the build.
func FilterByStatus(posts []interfaces.Post, includeAll bool) []interfaces.Post {
	if includeAll {
		return posts
	}
	out := make([]interfaces.Post, 0, len(posts))
	for _, post := range posts {
		if post.Status == interfaces.StatusPublished {
			out = append(out, post)
		}
	}
	return out
}

// Describe renders a short human-readable identifier for a source, used in
// diagnostics.
func Describe(source interfaces.ContentSource) string {
	if source.Type == interfaces.SourceGitHub {
		return fmt.Sprintf("%s:%s/%s", source.Type, source.RepoSlug(), source.Path)
	}
	return fmt.Sprintf("%s:%s", source.Type, source.Path)
}
