package interfaces

import "html/template"

// PostShellData carries everything the post shell template needs. Body is a
// designated content slot: it is injected as pre-rendered HTML through the
// template tree, never through string substitution, so a post whose content
// happens to contain a placeholder-looking token renders verbatim.
type PostShellData struct {
	Site   SiteMeta
	Post   Post
	Body   template.HTML
	Head   HeadMeta
	Links  NavLinks
	Styles template.CSS
}

// ListingShellData carries the homepage listing inputs.
type ListingShellData struct {
	Site   SiteMeta
	Posts  []Summary
	Head   HeadMeta
	Links  NavLinks
	Styles template.CSS
}

// SiteMeta captures site-level presentation values.
type SiteMeta struct {
	Title       string
	Description string
	BasePath    string
}

// HeadMeta lists the document head values injected per page. Fields hold raw
// text; the shell renderer escapes every value contextually on output, so
// user-authored metadata can never inject markup.
type HeadMeta struct {
	Title         string
	Description   string
	OGTitle       string
	OGDescription string
	OGType        string
	PublishedTime string
	Author        string
	// Keywords is the space-joined tag list; empty means the meta tag is
	// omitted entirely.
	Keywords string
}

// NavLinks holds the navigation targets rendered by the shell chrome.
type NavLinks struct {
	Home      string
	IndexJSON string
	Hydrate   string
}

// ShellRenderer produces complete HTML documents from shell data. The
// presentational markup (navigation, footer, article frame) is owned by the
// implementation; the pipeline only supplies data.
type ShellRenderer interface {
	RenderPost(data PostShellData) (string, error)
	RenderListing(data ListingShellData) (string, error)
}

// StyleExtractor reduces a universe of style rules to the subset referenced
// by the supplied HTML document. Implementations must be independent of the
// rest of the pipeline so the purge step stays swappable and testable.
type StyleExtractor interface {
	Extract(html string) (string, error)
}
