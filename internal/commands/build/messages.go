package buildcmd

import (
	"github.com/goliatone/go-blogbuild/internal/generator"
)

const (
	buildSiteMessageType = "blog.build"
	cleanSiteMessageType = "blog.clean"
)

// ResultCallback receives the build result produced by a run. The callback
// is optional and invoked synchronously from the handler.
type ResultCallback func(*generator.BuildResult)

// BuildSiteCommand executes a full pipeline run.
type BuildSiteCommand struct {
	// DryRun performs the whole pipeline without writing artifacts.
	DryRun bool `json:"dry_run,omitempty"`
	// ResultCallback surfaces the BuildResult to the caller (e.g. for the
	// CLI summary). Excluded from serialisation.
	ResultCallback ResultCallback `json:"-"`
}

// Type implements command.Message.
func (BuildSiteCommand) Type() string { return buildSiteMessageType }

// CleanSiteCommand clears previously generated artifacts from the output
// directory.
type CleanSiteCommand struct{}

// Type implements command.Message.
func (CleanSiteCommand) Type() string { return cleanSiteMessageType }
