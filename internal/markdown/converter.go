package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"

	"github.com/goliatone/go-blogbuild/pkg/interfaces"
)

// GoldmarkConverter implements interfaces.MarkdownConverter using the
// goldmark engine with a classed node renderer. The converter is stateless so
// a single instance can serve a whole build without locking.
type GoldmarkConverter struct {
	defaultOptions interfaces.ConvertOptions
}

// NewGoldmarkConverter constructs a converter with the supplied defaults
// (GFM extensions, theme class table, chroma highlight style).
func NewGoldmarkConverter(defaults interfaces.ConvertOptions) *GoldmarkConverter {
	return &GoldmarkConverter{
		defaultOptions: defaults,
	}
}

// Convert satisfies interfaces.MarkdownConverter by rendering markdown into
// an HTML fragment using the converter's default configuration.
func (c *GoldmarkConverter) Convert(markdown []byte) ([]byte, error) {
	return c.ConvertWithOptions(markdown, c.defaultOptions)
}

// ConvertWithOptions renders markdown into an HTML fragment using the
// provided options. A failure anywhere in the document aborts conversion of
// that document only; callers skip the post and continue.
func (c *GoldmarkConverter) ConvertWithOptions(markdown []byte, opts interfaces.ConvertOptions) (out []byte, err error) {
	// Rendering rules are table-driven and a bad rule must cost one post,
	// not the whole build.
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("markdown convert: %v", r)
		}
	}()

	engine := newGoldmarkEngine(opts)
	var buf bytes.Buffer
	if convErr := engine.Convert(markdown, &buf); convErr != nil {
		return nil, fmt.Errorf("markdown convert: %w", convErr)
	}
	return buf.Bytes(), nil
}

// newGoldmarkEngine builds a goldmark.Markdown configured with the classed
// node renderer. Unsupported extension names are ignored.
func newGoldmarkEngine(opts interfaces.ConvertOptions) goldmark.Markdown {
	exts := collectExtensions(opts.Extensions)

	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(
			renderer.WithNodeRenderers(
				util.Prioritized(newClassedRenderer(rendererConfig{
					classes:        mergeClasses(opts.Classes),
					highlightStyle: opts.HighlightStyle,
					basePath:       strings.TrimRight(opts.BasePath, "/"),
				}), 100),
			),
		),
	}

	if len(exts) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(exts...))
	}

	return goldmark.New(engineOptions...)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{
			extension.GFM,
			extension.Linkify,
			extension.TaskList,
		}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}

		if _, ok := seen[key]; ok {
			continue
		}

		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}

		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}

	return extenders
}
