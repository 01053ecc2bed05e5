package logging

import (
	"strings"

	"github.com/goliatone/go-blogbuild/pkg/interfaces"
)

const (
	rootModule      = "blog"
	sourcesModule   = "blog.sources"
	markdownModule  = "blog.markdown"
	composerModule  = "blog.composer"
	generatorModule = "blog.generator"
)

const (
	fieldSourceType = "source_type"
	fieldSourcePath = "source_path"
	fieldPostSlug   = "slug"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// SourcesLogger returns the logger namespace reserved for source scanners.
func SourcesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, sourcesModule)
}

// MarkdownLogger returns the logger namespace reserved for markdown conversion.
func MarkdownLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, markdownModule)
}

// ComposerLogger returns the logger namespace reserved for page composition.
func ComposerLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, composerModule)
}

// GeneratorLogger returns the logger namespace reserved for the build driver.
func GeneratorLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, generatorModule)
}

// WithSourceContext enriches the provided logger with common scan fields such
// as source type and path. Empty values are ignored.
func WithSourceContext(logger interfaces.Logger, sourceType, path string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(sourceType); trimmed != "" {
		fields[fieldSourceType] = trimmed
	}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		fields[fieldSourcePath] = trimmed
	}
	return WithFields(logger, fields)
}

// WithPostContext attaches the post slug to subsequent log entries.
func WithPostContext(logger interfaces.Logger, slug string) interfaces.Logger {
	if strings.TrimSpace(slug) == "" {
		return logger
	}
	return WithFields(logger, map[string]any{fieldPostSlug: slug})
}
