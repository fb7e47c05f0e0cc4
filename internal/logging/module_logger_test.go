package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

type recordingProvider struct {
	requested []string
	logger    *recordingLogger
}

func (p *recordingProvider) GetLogger(name string) interfaces.Logger {
	p.requested = append(p.requested, name)
	if p.logger == nil {
		p.logger = &recordingLogger{}
	}
	return p.logger
}

type recordingLogger struct {
	fields map[string]any
}

func (l *recordingLogger) Trace(string, ...any) {}
func (l *recordingLogger) Debug(string, ...any) {}
func (l *recordingLogger) Info(string, ...any)  {}
func (l *recordingLogger) Warn(string, ...any)  {}
func (l *recordingLogger) Error(string, ...any) {}
func (l *recordingLogger) Fatal(string, ...any) {}

func (l *recordingLogger) WithContext(ctx context.Context) interfaces.Logger { return l }

func (l *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	merged := make(map[string]any, len(l.fields)+len(fields))
	for key, value := range l.fields {
		merged[key] = value
	}
	for key, value := range fields {
		merged[key] = value
	}
	return &recordingLogger{fields: merged}
}

func TestModuleLogger_RequestsNamespace(t *testing.T) {
	provider := &recordingProvider{}
	logger := ModuleLogger(provider, "sitegen.test")

	if len(provider.requested) != 1 || provider.requested[0] != "sitegen.test" {
		t.Fatalf("unexpected namespaces requested: %v", provider.requested)
	}
	recorded, ok := logger.(*recordingLogger)
	if !ok {
		t.Fatalf("expected the provider logger back, got %T", logger)
	}
	if recorded.fields["module"] != "sitegen.test" {
		t.Fatalf("module field missing: %#v", recorded.fields)
	}
}

func TestMarkdownLogger_RequestsMarkdownModule(t *testing.T) {
	provider := &recordingProvider{}
	_ = MarkdownLogger(provider)

	if len(provider.requested) != 1 || provider.requested[0] != "sitegen.markdown" {
		t.Fatalf("unexpected namespaces requested: %v", provider.requested)
	}
}

func TestWithBuildContext_AttachesFields(t *testing.T) {
	base := &recordingLogger{}
	logger := WithBuildContext(base, "posts/hello.md", "hello", "render")

	recorded, ok := logger.(*recordingLogger)
	if !ok {
		t.Fatalf("expected a fields-capable logger back, got %T", logger)
	}
	if recorded.fields["source_path"] != "posts/hello.md" {
		t.Fatalf("source path missing: %#v", recorded.fields)
	}
	if recorded.fields["slug"] != "hello" {
		t.Fatalf("slug missing: %#v", recorded.fields)
	}
	if recorded.fields["build_action"] != "render" {
		t.Fatalf("action missing: %#v", recorded.fields)
	}
}

func TestWithBuildContext_SkipsEmptyValues(t *testing.T) {
	base := &recordingLogger{}
	logger := WithBuildContext(base, "  ", "", "load")

	recorded, ok := logger.(*recordingLogger)
	if !ok {
		t.Fatalf("expected a fields-capable logger back, got %T", logger)
	}
	if _, present := recorded.fields["source_path"]; present {
		t.Fatalf("blank path should be skipped: %#v", recorded.fields)
	}
	if recorded.fields["build_action"] != "load" {
		t.Fatalf("action missing: %#v", recorded.fields)
	}
}
