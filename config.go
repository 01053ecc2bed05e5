package blogbuild

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Env variable names honoured by ApplyEnv. GITHUB_TOKEN enables
// authenticated remote fetching; the unauthenticated API works but is
// rate-limited aggressively.
const (
	EnvGitHubToken   = "GITHUB_TOKEN"
	EnvIncludeDrafts = "BLOGBUILD_INCLUDE_DRAFTS"
	EnvBasePath      = "BLOGBUILD_BASE_PATH"
)

// Config aggregates the pipeline settings. Fields use simple types so host
// applications can populate them from flags, files, or the environment.
type Config struct {
	// RegistryPath locates the JSON source registry.
	RegistryPath string
	// OutputDir receives every generated artifact.
	OutputDir string
	// BasePath prefixes generated internal links when the site is hosted
	// under a sub-path.
	BasePath string
	// IncludeAll keeps draft and archived posts in the output.
	IncludeAll bool
	// CleanBuild removes the output directory before writing.
	CleanBuild bool
	Site       SiteConfig
	GitHub     GitHubConfig
	Markdown   MarkdownConfig
	Logging    LoggingConfig
}

// SiteConfig captures site-level presentation values.
type SiteConfig struct {
	Title       string
	Description string
}

// GitHubConfig wires the remote scanner.
type GitHubConfig struct {
	Token string
	// APIBaseURL overrides the GitHub API endpoint, mainly for tests.
	APIBaseURL string
}

// MarkdownConfig tunes the converter.
type MarkdownConfig struct {
	Extensions     []string
	HighlightStyle string
}

// LoggingConfig captures provider options for runtime logging.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
}

// DefaultConfig returns the settings a fresh checkout builds with.
func DefaultConfig() Config {
	return Config{
		RegistryPath: "content-sources.json",
		OutputDir:    "public",
		Site: SiteConfig{
			Title:       "Blog",
			Description: "Generated by blogbuild",
		},
		Markdown: MarkdownConfig{
			HighlightStyle: "github",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate reports configuration errors before any pipeline work starts.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.RegistryPath, validation.Required),
		validation.Field(&c.OutputDir, validation.Required),
		validation.Field(&c.Logging),
	)
}

// Validate checks the logging provider options.
func (c LoggingConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Format, validation.In("", "console", "json", "pretty")),
		validation.Field(&c.Level, validation.In("", "trace", "debug", "info", "warn", "warning", "error", "fatal")),
	)
}

// ApplyEnv overlays the documented environment toggles onto the config.
// lookup follows the os.LookupEnv contract.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if lookup == nil {
		return
	}
	if token, ok := lookup(EnvGitHubToken); ok && strings.TrimSpace(token) != "" {
		c.GitHub.Token = strings.TrimSpace(token)
	}
	if raw, ok := lookup(EnvIncludeDrafts); ok {
		c.IncludeAll = parseBoolish(raw)
	}
	if base, ok := lookup(EnvBasePath); ok {
		c.BasePath = strings.TrimRight(strings.TrimSpace(base), "/")
	}
}

func parseBoolish(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
