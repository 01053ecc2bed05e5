package markdown

import (
	htmlesc "html"
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// defaultClasses is the theme contract applied per node kind. The names are
// opaque to the pipeline; internal/composer owns the matching style rules.
var defaultClasses = map[string]string{
	"h1":           "bb-heading bb-h1",
	"h2":           "bb-heading bb-h2",
	"h3":           "bb-heading bb-h3",
	"h4":           "bb-heading bb-h4",
	"h5":           "bb-heading bb-h5",
	"h6":           "bb-heading bb-h6",
	"paragraph":    "bb-paragraph",
	"code_block":   "bb-codeblock",
	"code_inline":  "bb-code",
	"link":         "bb-link",
	"image":        "bb-image",
	"list_ordered": "bb-list bb-list-ordered",
	"list_bullet":  "bb-list bb-list-bullet",
	"list_item":    "bb-list-item",
	"table":        "bb-table",
	"table_head":   "bb-table-head",
	"table_row":    "bb-table-row",
	"table_th":     "bb-table-th",
	"table_td":     "bb-table-td",
	"blockquote":   "bb-blockquote",
	"em":           "bb-em",
	"strong":       "bb-strong",
	"del":          "bb-del",
	"hr":           "bb-hr",
}

func mergeClasses(overrides map[string]string) map[string]string {
	merged := make(map[string]string, len(defaultClasses))
	for key, value := range defaultClasses {
		merged[key] = value
	}
	for key, value := range overrides {
		if _, known := defaultClasses[key]; known {
			merged[key] = value
		}
	}
	return merged
}

type rendererConfig struct {
	classes        map[string]string
	highlightStyle string
	basePath       string
}

// classedRenderer renders markdown nodes with the theme's class contract
// attached. It registers one rendering rule per node kind; kinds it does not
// register (text, raw HTML, task list markers) fall through to goldmark's
// default renderer.
type classedRenderer struct {
	cfg rendererConfig
}

func newClassedRenderer(cfg rendererConfig) *classedRenderer {
	if cfg.classes == nil {
		cfg.classes = mergeClasses(nil)
	}
	return &classedRenderer{cfg: cfg}
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *classedRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindHeading, r.renderHeading)
	reg.Register(ast.KindParagraph, r.renderParagraph)
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
	reg.Register(ast.KindCodeBlock, r.renderCodeBlock)
	reg.Register(ast.KindCodeSpan, r.renderCodeSpan)
	reg.Register(ast.KindLink, r.renderLink)
	reg.Register(ast.KindAutoLink, r.renderAutoLink)
	reg.Register(ast.KindImage, r.renderImage)
	reg.Register(ast.KindList, r.renderList)
	reg.Register(ast.KindListItem, r.renderListItem)
	reg.Register(ast.KindBlockquote, r.renderBlockquote)
	reg.Register(ast.KindEmphasis, r.renderEmphasis)
	reg.Register(ast.KindThematicBreak, r.renderThematicBreak)
	reg.Register(east.KindTable, r.renderTable)
	reg.Register(east.KindTableHeader, r.renderTableHeader)
	reg.Register(east.KindTableRow, r.renderTableRow)
	reg.Register(east.KindTableCell, r.renderTableCell)
	reg.Register(east.KindStrikethrough, r.renderStrikethrough)
}

func (r *classedRenderer) class(key string) string {
	return r.cfg.classes[key]
}

func (r *classedRenderer) renderHeading(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Heading)
	tag := "h" + strconv.Itoa(n.Level)
	if entering {
		_, _ = w.WriteString("<" + tag)
		if id, ok := n.AttributeString("id"); ok {
			if raw, isBytes := id.([]byte); isBytes {
				_, _ = w.WriteString(` id="` + htmlesc.EscapeString(string(raw)) + `"`)
			}
		}
		writeClass(w, r.class(tag))
		_ = w.WriteByte('>')
	} else {
		_, _ = w.WriteString("</" + tag + ">\n")
	}
	return ast.WalkContinue, nil
}

func (r *classedRenderer) renderParagraph(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<p")
		writeClass(w, r.class("paragraph"))
		_ = w.WriteByte('>')
	} else {
		_, _ = w.WriteString("</p>\n")
	}
	return ast.WalkContinue, nil
}

func (r *classedRenderer) renderFencedCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.FencedCodeBlock)
	language := ""
	if lang := n.Language(source); lang != nil {
		language = string(lang)
	}
	r.writeCode(w, codeLines(source, node), language)
	return ast.WalkContinue, nil
}

func (r *classedRenderer) renderCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	r.writeCode(w, codeLines(source, node), "")
	return ast.WalkContinue, nil
}

// writeCode emits a highlighted code block, degrading to escaped plain text
// whenever the highlighter cannot serve the request.
func (r *classedRenderer) writeCode(w util.BufWriter, code, language string) {
	_, _ = w.WriteString("<pre")
	writeClass(w, r.class("code_block"))
	_, _ = w.WriteString("><code")
	if language != "" {
		_, _ = w.WriteString(` data-language="` + htmlesc.EscapeString(language) + `"`)
	}
	_ = w.WriteByte('>')

	highlighted, err := highlightCode(code, language, r.cfg.highlightStyle)
	if err != nil {
		_, _ = w.WriteString(htmlesc.EscapeString(code))
	} else {
		_, _ = w.WriteString(highlighted)
	}
	_, _ = w.WriteString("</code></pre>\n")
}

func (r *classedRenderer) renderCodeSpan(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<code")
		writeClass(w, r.class("code_inline"))
		_ = w.WriteByte('>')
	} else {
		_, _ = w.WriteString("</code>")
	}
	return ast.WalkContinue, nil
}

func (r *classedRenderer) renderLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		_, _ = w.WriteString("</a>")
		return ast.WalkContinue, nil
	}
	n := node.(*ast.Link)
	r.writeAnchorOpen(w, string(n.Destination), string(n.Title))
	return ast.WalkContinue, nil
}

func (r *classedRenderer) renderAutoLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.AutoLink)
	url := string(n.URL(source))
	label := string(n.Label(source))
	dest := url
	if n.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(dest, "mailto:") {
		dest = "mailto:" + dest
	}
	r.writeAnchorOpen(w, dest, "")
	_, _ = w.WriteString(htmlesc.EscapeString(label))
	_, _ = w.WriteString("</a>")
	return ast.WalkContinue, nil
}

// writeAnchorOpen applies the external-link policy: absolute http(s)
// destinations open in a new tab with rel hardening, internal destinations
// are prefixed with the configured base path.
func (r *classedRenderer) writeAnchorOpen(w util.BufWriter, dest, title string) {
	external := isExternalURL(dest)
	if !external && r.cfg.basePath != "" && strings.HasPrefix(dest, "/") {
		dest = r.cfg.basePath + dest
	}

	_, _ = w.WriteString(`<a href="`)
	_, _ = w.Write(util.URLEscape([]byte(dest), true))
	_ = w.WriteByte('"')
	writeClass(w, r.class("link"))
	if title != "" {
		_, _ = w.WriteString(` title="` + htmlesc.EscapeString(title) + `"`)
	}
	if external {
		_, _ = w.WriteString(` target="_blank" rel="noopener noreferrer"`)
	}
	_ = w.WriteByte('>')
}

func (r *classedRenderer) renderImage(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.Image)
	dest := string(n.Destination)
	if !isExternalURL(dest) && r.cfg.basePath != "" && strings.HasPrefix(dest, "/") {
		dest = r.cfg.basePath + dest
	}
	_, _ = w.WriteString(`<img src="`)
	_, _ = w.Write(util.URLEscape([]byte(dest), true))
	_ = w.WriteByte('"')
	_, _ = w.WriteString(` alt="` + htmlesc.EscapeString(string(n.Text(source))) + `"`)
	writeClass(w, r.class("image"))
	if title := string(n.Title); title != "" {
		_, _ = w.WriteString(` title="` + htmlesc.EscapeString(title) + `"`)
	}
	_, _ = w.WriteString(">")
	return ast.WalkSkipChildren, nil
}

func (r *classedRenderer) renderList(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.List)
	tag := "ul"
	classKey := "list_bullet"
	if n.IsOrdered() {
		tag = "ol"
		classKey = "list_ordered"
	}
	if entering {
		_, _ = w.WriteString("<" + tag)
		if n.IsOrdered() && n.Start != 1 {
			_, _ = w.WriteString(` start="` + strconv.Itoa(n.Start) + `"`)
		}
		writeClass(w, r.class(classKey))
		_ = w.WriteByte('>')
		_ = w.WriteByte('\n')
	} else {
		_, _ = w.WriteString("</" + tag + ">\n")
	}
	return ast.WalkContinue, nil
}

func (r *classedRenderer) renderListItem(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<li")
		writeClass(w, r.class("list_item"))
		_ = w.WriteByte('>')
	} else {
		_, _ = w.WriteString("</li>\n")
	}
	return ast.WalkContinue, nil
}

func (r *classedRenderer) renderBlockquote(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<blockquote")
		writeClass(w, r.class("blockquote"))
		_ = w.WriteByte('>')
		_ = w.WriteByte('\n')
	} else {
		_, _ = w.WriteString("</blockquote>\n")
	}
	return ast.WalkContinue, nil
}

func (r *classedRenderer) renderEmphasis(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Emphasis)
	tag := "em"
	classKey := "em"
	if n.Level == 2 {
		tag = "strong"
		classKey = "strong"
	}
	if entering {
		_, _ = w.WriteString("<" + tag)
		writeClass(w, r.class(classKey))
		_ = w.WriteByte('>')
	} else {
		_, _ = w.WriteString("</" + tag + ">")
	}
	return ast.WalkContinue, nil
}

func (r *classedRenderer) renderThematicBreak(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<hr")
		writeClass(w, r.class("hr"))
		_, _ = w.WriteString(">\n")
	}
	return ast.WalkContinue, nil
}

func (r *classedRenderer) renderTable(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<table")
		writeClass(w, r.class("table"))
		_ = w.WriteByte('>')
		_ = w.WriteByte('\n')
	} else {
		_, _ = w.WriteString("</tbody></table>\n")
	}
	return ast.WalkContinue, nil
}

func (r *classedRenderer) renderTableHeader(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<thead")
		writeClass(w, r.class("table_head"))
		_, _ = w.WriteString("><tr")
		writeClass(w, r.class("table_row"))
		_ = w.WriteByte('>')
	} else {
		// GFM tables always carry a header; open the body here so row
		// dispatch stays generic for every subsequent row.
		_, _ = w.WriteString("</tr></thead><tbody>\n")
	}
	return ast.WalkContinue, nil
}

func (r *classedRenderer) renderTableRow(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<tr")
		writeClass(w, r.class("table_row"))
		_ = w.WriteByte('>')
	} else {
		_, _ = w.WriteString("</tr>\n")
	}
	return ast.WalkContinue, nil
}

func (r *classedRenderer) renderTableCell(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*east.TableCell)
	tag := "td"
	classKey := "table_td"
	if n.Parent() != nil && n.Parent().Kind() == east.KindTableHeader {
		tag = "th"
		classKey = "table_th"
	}
	if entering {
		_, _ = w.WriteString("<" + tag)
		writeClass(w, r.class(classKey))
		if n.Alignment != east.AlignNone {
			_, _ = w.WriteString(` align="` + n.Alignment.String() + `"`)
		}
		_ = w.WriteByte('>')
	} else {
		_, _ = w.WriteString("</" + tag + ">")
	}
	return ast.WalkContinue, nil
}

func (r *classedRenderer) renderStrikethrough(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<del")
		writeClass(w, r.class("del"))
		_ = w.WriteByte('>')
	} else {
		_, _ = w.WriteString("</del>")
	}
	return ast.WalkContinue, nil
}

func writeClass(w util.BufWriter, class string) {
	if class == "" {
		return
	}
	_, _ = w.WriteString(` class="` + class + `"`)
}

func codeLines(source []byte, node ast.Node) string {
	var sb strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		sb.Write(segment.Value(source))
	}
	return sb.String()
}

func isExternalURL(dest string) bool {
	return strings.HasPrefix(dest, "http://") || strings.HasPrefix(dest, "https://")
}
