// Package blogbuild assembles the content pipeline: it scans configured
// markdown sources, converts articles to static HTML, and writes the
// browsable artifacts into a single output directory.
package blogbuild

import (
	"context"
	"net/http"

	"github.com/goliatone/go-blogbuild/internal/composer"
	"github.com/goliatone/go-blogbuild/internal/generator"
	"github.com/goliatone/go-blogbuild/internal/logging"
	"github.com/goliatone/go-blogbuild/internal/logging/gologger"
	"github.com/goliatone/go-blogbuild/internal/markdown"
	"github.com/goliatone/go-blogbuild/internal/sources"
	"github.com/goliatone/go-blogbuild/pkg/interfaces"
)

// Module owns a fully wired pipeline. Construct it once per build run.
type Module struct {
	config    Config
	provider  interfaces.LoggerProvider
	logger    interfaces.Logger
	generator generator.Service
}

// Option customizes module construction.
type Option func(*moduleOptions)

type moduleOptions struct {
	provider   interfaces.LoggerProvider
	httpClient *http.Client
}

// WithLoggerProvider installs an external logger provider instead of the
// one built from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(o *moduleOptions) {
		o.provider = provider
	}
}

// WithHTTPClient overrides the client used for remote source fetching.
func WithHTTPClient(client *http.Client) Option {
	return func(o *moduleOptions) {
		o.httpClient = client
	}
}

// New validates cfg and wires scanners, converter, composer, and the
// generator service together.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &moduleOptions{}
	for _, opt := range opts {
		opt(options)
	}

	provider := options.provider
	if provider == nil {
		built, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
		})
		if err != nil {
			return nil, err
		}
		provider = built
	}

	sourcesLogger := logging.SourcesLogger(provider)
	scanners := map[interfaces.SourceType]interfaces.SourceScanner{
		interfaces.SourceLocal: sources.NewLocalScanner(sourcesLogger),
		interfaces.SourceGitHub: sources.NewGitHubScanner(sources.GitHubScannerConfig{
			Token:      cfg.GitHub.Token,
			APIBaseURL: cfg.GitHub.APIBaseURL,
			HTTPClient: options.httpClient,
			Logger:     sourcesLogger,
		}),
	}
	aggregator := sources.NewAggregator(cfg.RegistryPath, scanners, sourcesLogger)

	converter := markdown.NewGoldmarkConverter(interfaces.ConvertOptions{
		Extensions:     cfg.Markdown.Extensions,
		HighlightStyle: cfg.Markdown.HighlightStyle,
		BasePath:       cfg.BasePath,
	})

	site := interfaces.SiteMeta{
		Title:       cfg.Site.Title,
		Description: cfg.Site.Description,
		BasePath:    cfg.BasePath,
	}
	comp, err := composer.New(site, nil, nil, logging.ComposerLogger(provider))
	if err != nil {
		return nil, err
	}

	service := generator.NewService(generator.Config{
		OutputDir:  cfg.OutputDir,
		BasePath:   cfg.BasePath,
		IncludeAll: cfg.IncludeAll,
		CleanBuild: cfg.CleanBuild,
	}, generator.Dependencies{
		Aggregator: aggregator,
		Converter:  converter,
		Composer:   comp,
		Writer:     generator.NewFSWriter(),
		Logger:     logging.GeneratorLogger(provider),
	})

	return &Module{
		config:    cfg,
		provider:  provider,
		logger:    logging.ModuleLogger(provider, ""),
		generator: service,
	}, nil
}

// Generator exposes the build service for command wiring.
func (m *Module) Generator() generator.Service {
	return m.generator
}

// Logger returns the root module logger.
func (m *Module) Logger() interfaces.Logger {
	return m.logger
}

// LoggerProvider returns the provider the module logs through.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	return m.provider
}

// Build runs the full pipeline with the module configuration.
func (m *Module) Build(ctx context.Context, opts generator.BuildOptions) (*generator.BuildResult, error) {
	return m.generator.Build(ctx, opts)
}
