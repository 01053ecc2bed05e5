package interfaces

// MarkdownConverter defines how a post's markdown body is converted into an
// HTML fragment. Implementations should be reusable across documents so a
// single instance can serve a whole build.
type MarkdownConverter interface {
	// Convert renders markdown into an HTML fragment using the
	// converter's default settings.
	Convert(markdown []byte) ([]byte, error)
	// ConvertWithOptions renders markdown into an HTML fragment using the
	// supplied overrides.
	ConvertWithOptions(markdown []byte, opts ConvertOptions) ([]byte, error)
}

// ConvertOptions customises markdown conversion, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ConvertOptions struct {
	// Extensions lists goldmark extension names to enable (gfm, table,
	// strikethrough, linkify, tasklist). Empty enables the defaults.
	Extensions []string
	// HighlightStyle selects the chroma style applied to fenced code.
	HighlightStyle string
	// BasePath prefixes internal link targets so generated pages work
	// when hosted under a sub-path.
	BasePath string
	// Classes overrides the utility class emitted per node kind. Keys the
	// converter does not recognise are ignored.
	Classes map[string]string
}
