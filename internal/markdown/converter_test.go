package markdown

import (
	"strings"
	"testing"

	"github.com/goliatone/go-blogbuild/pkg/interfaces"
)

func convert(t *testing.T, source string, opts interfaces.ConvertOptions) string {
	t.Helper()
	converter := NewGoldmarkConverter(opts)
	out, err := converter.Convert([]byte(source))
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	return string(out)
}

func TestConvert_HeadingClasses(t *testing.T) {
	got := convert(t, "# Title\n\n## Section\n", interfaces.ConvertOptions{})

	if !strings.Contains(got, `<h1 id="title" class="bb-heading bb-h1">Title</h1>`) {
		t.Fatalf("expected classed h1 with anchor id, got %q", got)
	}
	if !strings.Contains(got, `class="bb-heading bb-h2"`) {
		t.Fatalf("expected classed h2, got %q", got)
	}
}

func TestConvert_ParagraphAndEmphasis(t *testing.T) {
	got := convert(t, "Plain text with **bold** and *italics* and ~~gone~~.\n", interfaces.ConvertOptions{})

	if !strings.Contains(got, `<p class="bb-paragraph">`) {
		t.Fatalf("expected classed paragraph, got %q", got)
	}
	if !strings.Contains(got, `<strong class="bb-strong">bold</strong>`) {
		t.Fatalf("expected classed strong, got %q", got)
	}
	if !strings.Contains(got, `<em class="bb-em">italics</em>`) {
		t.Fatalf("expected classed em, got %q", got)
	}
	if !strings.Contains(got, `<del class="bb-del">gone</del>`) {
		t.Fatalf("expected strikethrough from the gfm extension, got %q", got)
	}
}

func TestConvert_ExternalLinkPolicy(t *testing.T) {
	got := convert(t, "[docs](https://example.com/docs)\n", interfaces.ConvertOptions{})

	if !strings.Contains(got, `href="https://example.com/docs"`) {
		t.Fatalf("expected external href preserved, got %q", got)
	}
	if !strings.Contains(got, `target="_blank" rel="noopener noreferrer"`) {
		t.Fatalf("expected new-tab hardening on external link, got %q", got)
	}
}

func TestConvert_InternalLinkBasePath(t *testing.T) {
	got := convert(t, "[about](/about.html)\n", interfaces.ConvertOptions{BasePath: "/blog"})

	if !strings.Contains(got, `href="/blog/about.html"`) {
		t.Fatalf("expected base path applied to internal link, got %q", got)
	}
	if strings.Contains(got, "target=") {
		t.Fatalf("internal link must not open a new tab, got %q", got)
	}
}

func TestConvert_CodeBlockKnownLanguage(t *testing.T) {
	got := convert(t, "```go\nfmt.Println(\"hi\")\n```\n", interfaces.ConvertOptions{})

	if !strings.Contains(got, `<pre class="bb-codeblock"><code data-language="go">`) {
		t.Fatalf("expected classed pre/code wrapper, got %q", got)
	}
	// Chroma emits span-wrapped tokens for recognised languages.
	if !strings.Contains(got, "<span") {
		t.Fatalf("expected highlighted tokens, got %q", got)
	}
}

func TestConvert_CodeBlockUnknownLanguage(t *testing.T) {
	got := convert(t, "```wibble\n<script>alert(1)</script>\n```\n", interfaces.ConvertOptions{})

	if strings.Contains(got, "<script>alert(1)</script>") {
		t.Fatalf("code content must be escaped, got %q", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") && !strings.Contains(got, "&lt;script") {
		t.Fatalf("expected escaped script tag inside code block, got %q", got)
	}
}

func TestConvert_Table(t *testing.T) {
	source := "| Name | Count |\n| --- | --- |\n| one | 1 |\n"
	got := convert(t, source, interfaces.ConvertOptions{})

	if !strings.Contains(got, `<table class="bb-table">`) {
		t.Fatalf("expected classed table, got %q", got)
	}
	if !strings.Contains(got, "<thead") || !strings.Contains(got, "<tbody>") {
		t.Fatalf("expected thead/tbody structure, got %q", got)
	}
	if !strings.Contains(got, `<th class="bb-table-th"`) {
		t.Fatalf("expected classed header cell, got %q", got)
	}
	if !strings.Contains(got, `<td class="bb-table-td"`) {
		t.Fatalf("expected classed data cell, got %q", got)
	}
}

func TestConvert_TaskList(t *testing.T) {
	got := convert(t, "- [x] done\n- [ ] pending\n", interfaces.ConvertOptions{})

	if !strings.Contains(got, `type="checkbox"`) {
		t.Fatalf("expected task list checkboxes, got %q", got)
	}
	if !strings.Contains(got, `class="bb-list bb-list-bullet"`) {
		t.Fatalf("expected classed list, got %q", got)
	}
}

func TestConvert_ExtensionSelection(t *testing.T) {
	source := "Term\n: Definition\n"

	without := convert(t, source, interfaces.ConvertOptions{Extensions: []string{"gfm"}})
	if strings.Contains(without, "<dl") {
		t.Fatalf("definition lists should be off unless requested, got %q", without)
	}

	with := convert(t, source, interfaces.ConvertOptions{Extensions: []string{"gfm", "definition"}})
	if !strings.Contains(with, "<dl") {
		t.Fatalf("expected definition list markup, got %q", with)
	}
}

func TestConvert_ClassOverrides(t *testing.T) {
	got := convert(t, "# Title\n", interfaces.ConvertOptions{
		Classes: map[string]string{"h1": "headline"},
	})

	if !strings.Contains(got, `class="headline"`) {
		t.Fatalf("expected overridden h1 class, got %q", got)
	}
	if strings.Contains(got, "bb-h1") {
		t.Fatalf("default class should be replaced, got %q", got)
	}
}

func TestConvert_EmptyInput(t *testing.T) {
	got := convert(t, "", interfaces.ConvertOptions{})
	if strings.TrimSpace(got) != "" {
		t.Fatalf("expected empty output for empty input, got %q", got)
	}
}
