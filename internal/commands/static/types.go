package staticcmd

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-sitegen/internal/generator"
)

const (
	buildSiteMessageType = "sitegen.static.build"
	diffSiteMessageType  = "sitegen.static.diff"
	cleanSiteMessageType = "sitegen.static.clean"
)

// ResultCallback receives build results produced by generator operations. The callback is optional
// and is invoked synchronously from the handler when a BuildResult is available.
type ResultCallback func(ResultEnvelope)

// ResultEnvelope captures the outcome of a static command execution that generated a BuildResult.
type ResultEnvelope struct {
	Result   *generator.BuildResult
	Metadata map[string]any
}

// BuildSiteCommand executes a generator build.
type BuildSiteCommand struct {
	IncludeDrafts  bool           `json:"include_drafts,omitempty"`
	DryRun         bool           `json:"dry_run,omitempty"`
	Force          bool           `json:"force,omitempty"`
	ResultCallback ResultCallback `json:"-"`
}

// Type implements command.Message.
func (BuildSiteCommand) Type() string { return buildSiteMessageType }

// Validate ensures mutually exclusive flags are not combined.
func (m BuildSiteCommand) Validate() error {
	errs := validation.Errors{}
	if m.DryRun && m.Force {
		errs["dry_run"] = validation.NewError("sitegen.static.build.flags_conflict", "dry_run and force cannot be combined")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DiffSiteCommand performs a dry-run build to surface differences without writing artifacts.
type DiffSiteCommand struct {
	IncludeDrafts  bool           `json:"include_drafts,omitempty"`
	Force          bool           `json:"force,omitempty"`
	ResultCallback ResultCallback `json:"-"`
}

// Type implements command.Message.
func (DiffSiteCommand) Type() string { return diffSiteMessageType }

// Validate satisfies command.Message; there are no payload constraints.
func (DiffSiteCommand) Validate() error { return nil }

// CleanSiteCommand clears generator artifacts from the configured output root.
type CleanSiteCommand struct{}

// Type implements command.Message.
func (CleanSiteCommand) Type() string { return cleanSiteMessageType }

// Validate satisfies command.Message; there are no payload constraints.
func (CleanSiteCommand) Validate() error { return nil }

// FeatureGates exposes runtime switches used to guard handler execution.
type FeatureGates struct {
	GeneratorEnabled func() bool
}

func (g FeatureGates) generatorEnabled() bool {
	if g.GeneratorEnabled == nil {
		return true
	}
	return g.GeneratorEnabled()
}
