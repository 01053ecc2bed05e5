package generator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-blogbuild/internal/logging"
	"github.com/goliatone/go-blogbuild/internal/sources"
	"github.com/goliatone/go-blogbuild/pkg/interfaces"
)

var (
	errAggregatorRequired = errors.New("generator: post aggregator is required")
	errConverterRequired  = errors.New("generator: markdown converter is required")
	errComposerRequired   = errors.New("generator: page composer is required")
	errWriterRequired     = errors.New("generator: artifact writer is required")
)

// Service describes the build driver contract.
type Service interface {
	Build(ctx context.Context, opts BuildOptions) (*BuildResult, error)
}

// Config captures runtime behaviour toggles for the build driver.
type Config struct {
	OutputDir string
	BasePath  string
	// IncludeAll keeps draft and archived posts in the output; the default
	// build publishes only posts with status published.
	IncludeAll bool
	CleanBuild bool
}

// BuildOptions narrows the scope of a single run.
type BuildOptions struct {
	// DryRun performs the full pipeline without writing artifacts.
	DryRun bool
}

// PostAggregator abstracts the source aggregation stage.
type PostAggregator interface {
	Aggregate(ctx context.Context) ([]interfaces.Post, interfaces.ScanStats, error)
}

// PageComposer abstracts the page composition stage.
type PageComposer interface {
	ComposePost(post interfaces.Post, body []byte) (string, error)
	ComposeHomepage(summaries []interfaces.Summary) (string, error)
}

// Dependencies lists the collaborators required by the driver.
type Dependencies struct {
	Aggregator PostAggregator
	Converter  interfaces.MarkdownConverter
	Composer   PageComposer
	Writer     ArtifactWriter
	Logger     interfaces.Logger
}

// Artifact records one written output file.
type Artifact struct {
	Path     string
	Checksum string
	Size     int
}

// Diagnostic reports a per-post outcome; skipped posts carry the error that
// excluded them.
type Diagnostic struct {
	Slug     string
	Output   string
	Skipped  bool
	Err      error
	Duration time.Duration
}

// BuildResult reports aggregated build metadata.
type BuildResult struct {
	PagesBuilt   int
	PagesSkipped int
	Fetch        interfaces.ScanStats
	Artifacts    []Artifact
	Diagnostics  []Diagnostic
	Errors       []error
	Duration     time.Duration
	DryRun       bool
}

// NewService wires a build driver with the provided configuration and
// dependencies.
func NewService(cfg Config, deps Dependencies) Service {
	if deps.Logger == nil {
		deps.Logger = logging.NoOp()
	}
	return &service{
		cfg:  cfg,
		deps: deps,
		now:  time.Now,
	}
}

type service struct {
	cfg  Config
	deps Dependencies
	now  func() time.Time
}

// Build runs the pipeline end to end: load registry, aggregate, filter,
// compose each page, write the index artifact and the homepage. Per-post
// failures are contained; only artifact writes are fatal.
func (s *service) Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := s.checkDependencies(); err != nil {
		return nil, err
	}

	start := s.now()
	logger := s.deps.Logger

	if !opts.DryRun {
		if s.cfg.CleanBuild {
			if err := s.deps.Writer.Clean(ctx, s.cfg.OutputDir); err != nil {
				return nil, fmt.Errorf("generator: clean output dir: %w", err)
			}
		}
		if err := s.deps.Writer.EnsureDir(ctx, s.cfg.OutputDir); err != nil {
			return nil, fmt.Errorf("generator: ensure output dir: %w", err)
		}
	}

	posts, stats, err := s.deps.Aggregator.Aggregate(ctx)
	if err != nil {
		return nil, err
	}

	published := sources.FilterByStatus(posts, s.cfg.IncludeAll)
	logger.Info("generator.aggregated",
		"total", len(posts),
		"eligible", len(published),
		"attempted", stats.Attempted,
		"failed", stats.Failed,
	)

	result := &BuildResult{
		Fetch:  stats,
		DryRun: opts.DryRun,
	}

	composed := make([]interfaces.Post, 0, len(published))
	for _, post := range published {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		diag, document := s.composePage(post)
		result.Diagnostics = append(result.Diagnostics, diag)
		if diag.Skipped {
			result.PagesSkipped++
			result.Errors = append(result.Errors, diag.Err)
			logging.WithPostContext(logger, post.Slug).Error("generator.page_skipped", "error", diag.Err)
			continue
		}

		if !opts.DryRun {
			artifact, writeErr := s.writeArtifact(ctx, diag.Output, []byte(document))
			if writeErr != nil {
				return result, fmt.Errorf("generator: write %s: %w", diag.Output, writeErr)
			}
			result.Artifacts = append(result.Artifacts, artifact)
		}
		result.PagesBuilt++
		composed = append(composed, post)
	}

	index := BuildIndex(composed, s.now().UTC())

	if !opts.DryRun {
		indexData, err := MarshalIndex(index)
		if err != nil {
			return result, err
		}
		artifact, err := s.writeArtifact(ctx, s.outputPath(indexFileName), indexData)
		if err != nil {
			return result, fmt.Errorf("generator: write index: %w", err)
		}
		result.Artifacts = append(result.Artifacts, artifact)

		homepage, err := s.deps.Composer.ComposeHomepage(index.Posts)
		if err != nil {
			return result, fmt.Errorf("generator: compose homepage: %w", err)
		}
		artifact, err = s.writeArtifact(ctx, s.outputPath(homepageFileName), []byte(homepage))
		if err != nil {
			return result, fmt.Errorf("generator: write homepage: %w", err)
		}
		result.Artifacts = append(result.Artifacts, artifact)

		if asset := s.hydrationAsset(); len(asset) > 0 {
			artifact, err = s.writeArtifact(ctx, s.outputPath(hydrateFileName), asset)
			if err != nil {
				return result, fmt.Errorf("generator: write hydration asset: %w", err)
			}
			result.Artifacts = append(result.Artifacts, artifact)
		}
	}

	result.Duration = s.now().Sub(start)
	logger.Info("generator.build_complete",
		"pages_built", result.PagesBuilt,
		"pages_skipped", result.PagesSkipped,
		"duration_ms", result.Duration.Milliseconds(),
		"dry_run", opts.DryRun,
	)
	return result, nil
}

// composePage converts and composes a single post. Failures mark the
// diagnostic as skipped; they never abort the loop.
func (s *service) composePage(post interfaces.Post) (Diagnostic, string) {
	diag := Diagnostic{
		Slug:   post.Slug,
		Output: s.outputPath(post.Slug + ".html"),
	}
	start := s.now()

	body, err := s.deps.Converter.Convert([]byte(post.Content))
	if err != nil {
		diag.Skipped = true
		diag.Err = fmt.Errorf("convert %s: %w", post.Slug, err)
		diag.Duration = s.now().Sub(start)
		return diag, ""
	}

	document, err := s.deps.Composer.ComposePost(post, body)
	if err != nil {
		diag.Skipped = true
		diag.Err = fmt.Errorf("compose %s: %w", post.Slug, err)
		diag.Duration = s.now().Sub(start)
		return diag, ""
	}

	diag.Duration = s.now().Sub(start)
	return diag, document
}

func (s *service) writeArtifact(ctx context.Context, path string, data []byte) (Artifact, error) {
	if err := s.deps.Writer.WriteFile(ctx, path, data); err != nil {
		return Artifact{}, err
	}
	return Artifact{
		Path:     path,
		Checksum: computeHash(data),
		Size:     len(data),
	}, nil
}

func (s *service) hydrationAsset() []byte {
	if provider, ok := s.deps.Composer.(interface{ HydrationAsset() []byte }); ok {
		return provider.HydrationAsset()
	}
	return nil
}

func (s *service) outputPath(name string) string {
	base := strings.TrimRight(s.cfg.OutputDir, "/")
	if base == "" {
		return name
	}
	return base + "/" + name
}

func (s *service) checkDependencies() error {
	switch {
	case s.deps.Aggregator == nil:
		return errAggregatorRequired
	case s.deps.Converter == nil:
		return errConverterRequired
	case s.deps.Composer == nil:
		return errComposerRequired
	case s.deps.Writer == nil:
		return errWriterRequired
	}
	return nil
}

func computeHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
