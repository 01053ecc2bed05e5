package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	blogbuild "github.com/goliatone/go-blogbuild"
	"github.com/goliatone/go-blogbuild/internal/commands"
	buildcmd "github.com/goliatone/go-blogbuild/internal/commands/build"
	"github.com/goliatone/go-blogbuild/internal/generator"
	"github.com/joho/godotenv"
)

func main() {
	if err := runBuild(os.Args[1:]); err != nil {
		log.Fatalf("blogbuild: %v", err)
	}
}

func runBuild(args []string) error {
	fs := flag.NewFlagSet("blogbuild", flag.ExitOnError)
	registry := fs.String("registry", "content-sources.json", "Path to the JSON source registry")
	outputDir := fs.String("out", "public", "Directory that receives generated artifacts")
	basePath := fs.String("base-path", "", "URL prefix when the site is hosted under a sub-path")
	siteTitle := fs.String("site-title", "Blog", "Site title used by page shells")
	siteDescription := fs.String("site-description", "", "Site description used by page shells")
	includeDrafts := fs.Bool("include-drafts", false, "Keep draft and archived posts in the output")
	clean := fs.Bool("clean", false, "Remove the output directory before building")
	dryRun := fs.Bool("dry-run", false, "Run the pipeline without writing artifacts")
	highlightStyle := fs.String("highlight-style", "github", "Chroma style for fenced code blocks")
	logLevel := fs.String("log-level", "info", "Log level (debug, info, warn, error)")
	logFormat := fs.String("log-format", "console", "Log format (console, json, pretty)")
	timeout := fs.Duration("timeout", 5*time.Minute, "Maximum duration for the whole build")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "blogbuild: skipping .env: %v\n", err)
	}

	cfg := blogbuild.DefaultConfig()
	cfg.RegistryPath = *registry
	cfg.OutputDir = *outputDir
	cfg.BasePath = strings.TrimRight(*basePath, "/")
	cfg.IncludeAll = *includeDrafts
	cfg.CleanBuild = *clean
	cfg.Site.Title = *siteTitle
	cfg.Site.Description = *siteDescription
	cfg.Markdown.HighlightStyle = *highlightStyle
	cfg.Logging.Level = *logLevel
	cfg.Logging.Format = *logFormat
	cfg.ApplyEnv(os.LookupEnv)

	module, err := blogbuild.New(cfg)
	if err != nil {
		return fmt.Errorf("configure module: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var result *generator.BuildResult
	handler, err := buildcmd.NewBuildSiteHandler(module.Generator(), commands.CommandLogger(module.LoggerProvider(), "build"))
	if err != nil {
		return fmt.Errorf("configure build handler: %w", err)
	}
	cmd := buildcmd.BuildSiteCommand{
		DryRun: *dryRun,
		ResultCallback: func(r *generator.BuildResult) {
			result = r
		},
	}
	if err := handler.Execute(ctx, cmd); err != nil {
		return fmt.Errorf("execute build command: %w", err)
	}

	printSummary(os.Stdout, result)

	return nil
}

func printSummary(out *os.File, result *generator.BuildResult) {
	if result == nil {
		return
	}

	if result.DryRun {
		fmt.Fprintln(out, "🔍 dry run, nothing written")
	}
	fmt.Fprintf(out, "📄 %d page(s) built, %d skipped\n", result.PagesBuilt, result.PagesSkipped)
	fmt.Fprintf(out, "📥 sources: %d file(s) attempted, %d parsed, %d failed\n",
		result.Fetch.Attempted, result.Fetch.Succeeded, result.Fetch.Failed)
	for _, diag := range result.Diagnostics {
		if diag.Skipped {
			fmt.Fprintf(out, "⚠️  skipped %s: %v\n", diag.Slug, diag.Err)
		}
	}
	for _, buildErr := range result.Errors {
		fmt.Fprintf(out, "⚠️  %v\n", buildErr)
	}
	fmt.Fprintf(out, "✅ done in %s\n", result.Duration.Round(time.Millisecond))
}
