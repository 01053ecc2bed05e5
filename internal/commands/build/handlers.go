package buildcmd

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-blogbuild/internal/commands"
	"github.com/goliatone/go-blogbuild/internal/generator"
	"github.com/goliatone/go-blogbuild/internal/logging"
	"github.com/goliatone/go-blogbuild/pkg/interfaces"
)

const buildOperation = "blog.build_site"

// ErrGeneratorRequired is returned when a handler is constructed without a
// build service.
var ErrGeneratorRequired = errors.New("build command: generator service is required")

var _ command.Commander[BuildSiteCommand] = (*BuildSiteHandler)(nil)

// BuildSiteHandler orchestrates pipeline runs through the shared command
// handler foundation.
type BuildSiteHandler struct {
	inner *commands.Handler[BuildSiteCommand]
}

// NewBuildSiteHandler creates a handler bound to the supplied build service.
func NewBuildSiteHandler(service generator.Service, logger interfaces.Logger, opts ...commands.HandlerOption[BuildSiteCommand]) (*BuildSiteHandler, error) {
	if service == nil {
		return nil, ErrGeneratorRequired
	}
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg BuildSiteCommand) error {
		result, err := service.Build(ctx, generator.BuildOptions{DryRun: msg.DryRun})
		if result != nil && msg.ResultCallback != nil {
			msg.ResultCallback(result)
		}
		if err != nil {
			return err
		}
		if result != nil {
			logging.WithFields(baseLogger, map[string]any{
				"pages_built":   result.PagesBuilt,
				"pages_skipped": result.PagesSkipped,
				"fetch_failed":  result.Fetch.Failed,
				"dry_run":       msg.DryRun,
			}).Info("blog.command.build.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[BuildSiteCommand]{
		commands.WithLogger[BuildSiteCommand](baseLogger),
		commands.WithOperation[BuildSiteCommand](buildOperation),
		commands.WithMessageFields(func(msg BuildSiteCommand) map[string]any {
			fields := map[string]any{}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			return fields
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &BuildSiteHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}, nil
}

// Execute satisfies command.Commander[BuildSiteCommand].
func (h *BuildSiteHandler) Execute(ctx context.Context, msg BuildSiteCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ErrWriterRequired is returned when a clean handler is constructed without
// an artifact writer.
var ErrWriterRequired = errors.New("build command: artifact writer is required")

var _ command.Commander[CleanSiteCommand] = (*CleanSiteHandler)(nil)

// CleanSiteHandler removes previously generated artifacts.
type CleanSiteHandler struct {
	inner *commands.Handler[CleanSiteCommand]
}

// NewCleanSiteHandler creates a handler that clears outputDir through the
// supplied writer.
func NewCleanSiteHandler(writer generator.ArtifactWriter, outputDir string, logger interfaces.Logger, opts ...commands.HandlerOption[CleanSiteCommand]) (*CleanSiteHandler, error) {
	if writer == nil {
		return nil, ErrWriterRequired
	}

	exec := func(ctx context.Context, msg CleanSiteCommand) error {
		return writer.Clean(ctx, outputDir)
	}

	handlerOpts := []commands.HandlerOption[CleanSiteCommand]{
		commands.WithLogger[CleanSiteCommand](logger),
		commands.WithOperation[CleanSiteCommand]("blog.clean_site"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CleanSiteHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}, nil
}

// Execute satisfies command.Commander[CleanSiteCommand].
func (h *CleanSiteHandler) Execute(ctx context.Context, msg CleanSiteCommand) error {
	return h.inner.Execute(ctx, msg)
}
