package staticcmd

import (
	"context"
	"errors"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-sitegen/internal/generator"
)

type stubGenerator struct {
	buildOpts  []generator.BuildOptions
	buildErr   error
	cleanCalls int
	cleanErr   error
}

func (s *stubGenerator) Build(ctx context.Context, opts generator.BuildOptions) (*generator.BuildResult, error) {
	s.buildOpts = append(s.buildOpts, opts)
	if s.buildErr != nil {
		return nil, s.buildErr
	}
	return &generator.BuildResult{PagesBuilt: 3, DryRun: opts.DryRun}, nil
}

func (s *stubGenerator) Clean(ctx context.Context) error {
	s.cleanCalls++
	return s.cleanErr
}

func TestBuildSiteHandler(t *testing.T) {
	svc := &stubGenerator{}
	handler := NewBuildSiteHandler(svc, nil, FeatureGates{})

	var captured *generator.BuildResult
	err := handler.Execute(context.Background(), BuildSiteCommand{
		IncludeDrafts: true,
		ResultCallback: func(envelope ResultEnvelope) {
			captured = envelope.Result
		},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(svc.buildOpts) != 1 || !svc.buildOpts[0].IncludeDrafts {
		t.Fatalf("build options not forwarded: %#v", svc.buildOpts)
	}
	if captured == nil || captured.PagesBuilt != 3 {
		t.Fatalf("result callback should receive the build result: %#v", captured)
	}
}

func TestBuildSiteHandler_ValidationConflict(t *testing.T) {
	svc := &stubGenerator{}
	handler := NewBuildSiteHandler(svc, nil, FeatureGates{})

	err := handler.Execute(context.Background(), BuildSiteCommand{DryRun: true, Force: true})
	if err == nil {
		t.Fatal("dry_run and force together should fail validation")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if len(svc.buildOpts) != 0 {
		t.Fatal("generator must not run when validation fails")
	}
}

func TestBuildSiteHandler_DisabledGate(t *testing.T) {
	svc := &stubGenerator{}
	handler := NewBuildSiteHandler(svc, nil, FeatureGates{
		GeneratorEnabled: func() bool { return false },
	})

	err := handler.Execute(context.Background(), BuildSiteCommand{})
	if err == nil {
		t.Fatal("expected the disabled gate to fail the command")
	}
	if !errors.Is(err, generator.ErrServiceDisabled) {
		t.Fatalf("expected ErrServiceDisabled in the chain, got %v", err)
	}
	if len(svc.buildOpts) != 0 {
		t.Fatal("generator must not run when the gate is closed")
	}
}

func TestBuildSiteHandler_NilService(t *testing.T) {
	handler := NewBuildSiteHandler(nil, nil, FeatureGates{})
	err := handler.Execute(context.Background(), BuildSiteCommand{})
	if !errors.Is(err, generator.ErrServiceDisabled) {
		t.Fatalf("expected ErrServiceDisabled, got %v", err)
	}
}

func TestBuildSiteHandler_BuildErrorSurfaces(t *testing.T) {
	cause := errors.New("render exploded")
	svc := &stubGenerator{buildErr: cause}
	handler := NewBuildSiteHandler(svc, nil, FeatureGates{})

	callbackRan := false
	err := handler.Execute(context.Background(), BuildSiteCommand{
		ResultCallback: func(ResultEnvelope) { callbackRan = true },
	})
	if !errors.Is(err, cause) {
		t.Fatalf("expected the build error in the chain, got %v", err)
	}
	if !callbackRan {
		t.Fatal("callback should still fire so callers can inspect partial results")
	}
}

func TestDiffSiteHandler_ForcesDryRun(t *testing.T) {
	svc := &stubGenerator{}
	handler := NewDiffSiteHandler(svc, nil, FeatureGates{})

	var captured *generator.BuildResult
	err := handler.Execute(context.Background(), DiffSiteCommand{
		IncludeDrafts: true,
		ResultCallback: func(envelope ResultEnvelope) {
			captured = envelope.Result
		},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(svc.buildOpts) != 1 {
		t.Fatalf("expected one build, got %d", len(svc.buildOpts))
	}
	if !svc.buildOpts[0].DryRun {
		t.Fatal("diff must always run as a dry run")
	}
	if !svc.buildOpts[0].IncludeDrafts {
		t.Fatal("diff should forward the drafts flag")
	}
	if captured == nil || !captured.DryRun {
		t.Fatalf("diff result should flag the dry run: %#v", captured)
	}
}

func TestCleanSiteHandler(t *testing.T) {
	svc := &stubGenerator{}
	handler := NewCleanSiteHandler(svc, nil, FeatureGates{})

	if err := handler.Execute(context.Background(), CleanSiteCommand{}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if svc.cleanCalls != 1 {
		t.Fatalf("expected one clean call, got %d", svc.cleanCalls)
	}
}

func TestMessageTypes(t *testing.T) {
	if got := (BuildSiteCommand{}).Type(); got != "sitegen.static.build" {
		t.Fatalf("build message type = %q", got)
	}
	if got := (DiffSiteCommand{}).Type(); got != "sitegen.static.diff" {
		t.Fatalf("diff message type = %q", got)
	}
	if got := (CleanSiteCommand{}).Type(); got != "sitegen.static.clean" {
		t.Fatalf("clean message type = %q", got)
	}
}
