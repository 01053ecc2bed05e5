package sources

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/goliatone/go-blogbuild/internal/logging"
	"github.com/goliatone/go-blogbuild/pkg/interfaces"
)

const defaultPattern = "*.md"

// LocalScanner produces posts from markdown files in a local directory. A
// missing directory degrades to an empty result with a warning; individual
// files that fail to parse are counted and skipped.
type LocalScanner struct {
	logger interfaces.Logger
	now    func() time.Time
}

// NewLocalScanner builds a scanner for local directory sources.
func NewLocalScanner(logger interfaces.Logger) *LocalScanner {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &LocalScanner{
		logger: logger,
		now:    time.Now,
	}
}

var _ interfaces.SourceScanner = (*LocalScanner)(nil)

// Scan implements interfaces.SourceScanner for local sources.
func (s *LocalScanner) Scan(ctx context.Context, source interfaces.ContentSource) (interfaces.ScanResult, error) {
	result := interfaces.ScanResult{}
	logger := logging.WithSourceContext(s.logger, string(source.Type), source.Path)

	if err := ctx.Err(); err != nil {
		return result, err
	}

	entries, err := os.ReadDir(source.Path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("sources.local.directory_missing")
			return result, nil
		}
		return result, err
	}

	pattern := source.Pattern
	if pattern == "" {
		pattern = defaultPattern
	}

	buildTime := s.now().UTC()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matched, matchErr := filepath.Match(pattern, entry.Name())
		if matchErr != nil || !matched {
			continue
		}

		if err := ctx.Err(); err != nil {
			return result, err
		}

		result.Stats.Attempted++
		fullPath := filepath.Join(source.Path, entry.Name())
		data, readErr := os.ReadFile(fullPath)
		if readErr != nil {
			result.Stats.Failed++
			logger.Error("sources.local.read_failed", "file", entry.Name(), "error", readErr)
			continue
		}

		parsed, parseErr := parsePost(source, entry.Name(), data, buildTime)
		if parseErr != nil {
			result.Stats.Failed++
			logger.Error("sources.local.parse_failed", "file", entry.Name(), "error", parseErr)
			continue
		}
		if parsed.DateErr != nil {
			logger.Warn("sources.local.date_invalid", "file", entry.Name(), "error", parsed.DateErr)
		}

		result.Stats.Succeeded++
		result.Posts = append(result.Posts, parsed.Post)
	}

	return result, nil
}
