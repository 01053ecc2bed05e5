package composer

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-blogbuild/pkg/interfaces"
)

// StyleRule pairs a utility class with the CSS emitted when a document uses
// that class.
type StyleRule struct {
	Class string
	CSS   string
}

var classAttrPattern = regexp.MustCompile(`class="([^"]*)"`)

// UtilityExtractor implements interfaces.StyleExtractor over a fixed rule
// universe: it scans the document for class attribute usage and keeps only
// the matching rules, in universe order, so every page ships the minimal
// stylesheet it actually references.
type UtilityExtractor struct {
	rules []StyleRule
}

// NewUtilityExtractor builds an extractor over the supplied rule universe.
// Passing nil selects the default theme rules.
func NewUtilityExtractor(rules []StyleRule) *UtilityExtractor {
	if rules == nil {
		rules = DefaultStyleRules()
	}
	return &UtilityExtractor{rules: rules}
}

var _ interfaces.StyleExtractor = (*UtilityExtractor)(nil)

// Extract implements interfaces.StyleExtractor.
func (e *UtilityExtractor) Extract(html string) (string, error) {
	used := map[string]struct{}{}
	for _, match := range classAttrPattern.FindAllStringSubmatch(html, -1) {
		for _, class := range strings.Fields(match[1]) {
			used[class] = struct{}{}
		}
	}

	var sb strings.Builder
	for _, rule := range e.rules {
		if _, ok := used[rule.Class]; !ok {
			continue
		}
		sb.WriteString(rule.CSS)
		sb.WriteByte('\n')
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

// DefaultStyleRules returns the built-in theme universe covering the shell
// chrome and the converter's node classes.
func DefaultStyleRules() []StyleRule {
	return []StyleRule{
		{"bb-body", `.bb-body{margin:0;font-family:-apple-system,BlinkMacSystemFont,"Segoe UI",Roboto,sans-serif;color:#1f2933;background:#ffffff;line-height:1.6}`},
		{"bb-nav", `.bb-nav{display:flex;gap:1.5rem;align-items:center;padding:1rem 1.5rem;border-bottom:1px solid #e4e7eb}`},
		{"bb-nav-brand", `.bb-nav-brand{font-weight:700;font-size:1.125rem;color:#1f2933;text-decoration:none}`},
		{"bb-nav-link", `.bb-nav-link{color:#52606d;text-decoration:none}`},
		{"bb-main", `.bb-main{max-width:46rem;margin:0 auto;padding:2rem 1.5rem}`},
		{"bb-article", `.bb-article{display:block}`},
		{"bb-post-header", `.bb-post-header{margin-bottom:2rem}`},
		{"bb-post-title", `.bb-post-title{font-size:2.25rem;font-weight:800;margin:0 0 .5rem}`},
		{"bb-post-meta", `.bb-post-meta{color:#7b8794;font-size:.875rem;margin:0}`},
		{"bb-post-body", `.bb-post-body{display:block}`},
		{"bb-footer", `.bb-footer{border-top:1px solid #e4e7eb;padding:1.5rem;margin-top:3rem}`},
		{"bb-footer-text", `.bb-footer-text{color:#7b8794;font-size:.875rem;margin:0;text-align:center}`},
		{"bb-listing", `.bb-listing{display:flex;flex-direction:column;gap:2rem}`},
		{"bb-listing-item", `.bb-listing-item{border-bottom:1px solid #e4e7eb;padding-bottom:1.5rem}`},
		{"bb-listing-title", `.bb-listing-title{font-size:1.5rem;font-weight:700;margin:0 0 .25rem}`},
		{"bb-listing-meta", `.bb-listing-meta{color:#7b8794;font-size:.875rem;margin:0 0 .5rem}`},
		{"bb-listing-desc", `.bb-listing-desc{color:#52606d;margin:0}`},
		{"bb-heading", `.bb-heading{font-weight:700;line-height:1.25;margin:1.75rem 0 .75rem}`},
		{"bb-h1", `.bb-h1{font-size:2rem}`},
		{"bb-h2", `.bb-h2{font-size:1.5rem}`},
		{"bb-h3", `.bb-h3{font-size:1.25rem}`},
		{"bb-h4", `.bb-h4{font-size:1.125rem}`},
		{"bb-h5", `.bb-h5{font-size:1rem}`},
		{"bb-h6", `.bb-h6{font-size:.875rem;text-transform:uppercase;letter-spacing:.05em}`},
		{"bb-paragraph", `.bb-paragraph{margin:0 0 1rem}`},
		{"bb-codeblock", `.bb-codeblock{background:#f5f7fa;border-radius:.375rem;padding:1rem;overflow-x:auto;font-size:.875rem;margin:0 0 1rem}`},
		{"bb-code", `.bb-code{background:#f5f7fa;border-radius:.25rem;padding:.125rem .375rem;font-size:.875em}`},
		{"bb-link", `.bb-link{color:#2563eb;text-decoration:underline}`},
		{"bb-image", `.bb-image{max-width:100%;border-radius:.375rem;margin:0 0 1rem}`},
		{"bb-list", `.bb-list{margin:0 0 1rem;padding-left:1.5rem}`},
		{"bb-list-ordered", `.bb-list-ordered{list-style:decimal}`},
		{"bb-list-bullet", `.bb-list-bullet{list-style:disc}`},
		{"bb-list-item", `.bb-list-item{margin:.25rem 0}`},
		{"bb-table", `.bb-table{border-collapse:collapse;width:100%;margin:0 0 1rem}`},
		{"bb-table-head", `.bb-table-head{background:#f5f7fa}`},
		{"bb-table-row", `.bb-table-row{border-bottom:1px solid #e4e7eb}`},
		{"bb-table-th", `.bb-table-th{text-align:left;padding:.5rem .75rem;font-weight:600}`},
		{"bb-table-td", `.bb-table-td{padding:.5rem .75rem}`},
		{"bb-blockquote", `.bb-blockquote{border-left:4px solid #cbd2d9;color:#52606d;margin:0 0 1rem;padding:.25rem 0 .25rem 1rem}`},
		{"bb-em", `.bb-em{font-style:italic}`},
		{"bb-strong", `.bb-strong{font-weight:700}`},
		{"bb-del", `.bb-del{text-decoration:line-through}`},
		{"bb-hr", `.bb-hr{border:none;border-top:1px solid #e4e7eb;margin:2rem 0}`},
	}
}
