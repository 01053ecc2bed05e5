package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-blogbuild/pkg/interfaces"
)

type recordingLogger struct {
	fields map[string]any
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	merged := make(map[string]any, len(r.fields)+len(fields))
	for k, v := range r.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &recordingLogger{fields: merged}
}

func (r *recordingLogger) WithContext(context.Context) interfaces.Logger { return r }

type recordingProvider struct {
	requested []string
	logger    *recordingLogger
}

func (p *recordingProvider) GetLogger(name string) interfaces.Logger {
	p.requested = append(p.requested, name)
	return p.logger
}

func TestModuleLogger_NilProvider(t *testing.T) {
	logger := ModuleLogger(nil, "blog.sources")
	if logger == nil {
		t.Fatal("expected a usable logger even without a provider")
	}
	// Must not panic.
	logger.Info("noop")
}

func TestModuleLogger_AttachesModuleField(t *testing.T) {
	provider := &recordingProvider{logger: &recordingLogger{}}

	logger := ModuleLogger(provider, "blog.generator")

	recorded, ok := logger.(*recordingLogger)
	if !ok {
		t.Fatalf("expected fields applied through WithFields, got %T", logger)
	}
	if recorded.fields["module"] != "blog.generator" {
		t.Fatalf("expected module field, got %#v", recorded.fields)
	}
	if len(provider.requested) != 1 || provider.requested[0] != "blog.generator" {
		t.Fatalf("expected provider lookup by module name, got %#v", provider.requested)
	}
}

func TestModuleLogger_EmptyModuleDefaultsToRoot(t *testing.T) {
	provider := &recordingProvider{logger: &recordingLogger{}}

	ModuleLogger(provider, "")
	if len(provider.requested) != 1 || provider.requested[0] != "blog" {
		t.Fatalf("expected root module lookup, got %#v", provider.requested)
	}
}

func TestNamespaceHelpers(t *testing.T) {
	provider := &recordingProvider{logger: &recordingLogger{}}

	SourcesLogger(provider)
	MarkdownLogger(provider)
	ComposerLogger(provider)
	GeneratorLogger(provider)

	want := []string{"blog.sources", "blog.markdown", "blog.composer", "blog.generator"}
	if len(provider.requested) != len(want) {
		t.Fatalf("expected %d lookups, got %#v", len(want), provider.requested)
	}
	for i, name := range want {
		if provider.requested[i] != name {
			t.Fatalf("lookup %d: got %q, want %q", i, provider.requested[i], name)
		}
	}
}

func TestWithSourceContext(t *testing.T) {
	base := &recordingLogger{}

	logger := WithSourceContext(base, "local", "content/articles")
	recorded, ok := logger.(*recordingLogger)
	if !ok {
		t.Fatalf("expected fields logger, got %T", logger)
	}
	if recorded.fields["source_type"] != "local" || recorded.fields["source_path"] != "content/articles" {
		t.Fatalf("unexpected fields: %#v", recorded.fields)
	}
}

func TestWithFields_NonFieldsLoggerPassthrough(t *testing.T) {
	logger := NoOp()
	if got := WithFields(logger, nil); got == nil {
		t.Fatal("expected logger returned unchanged for empty fields")
	}
}
