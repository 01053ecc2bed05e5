package composer

import (
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/goliatone/go-blogbuild/internal/logging"
	"github.com/goliatone/go-blogbuild/pkg/interfaces"
)

//go:embed assets/hydrate.js
var hydrationScript []byte

// HydrationScript returns the client-side hydration asset written next to
// the generated pages.
func HydrationScript() []byte {
	return hydrationScript
}

// HydrationAsset exposes the hydration script to the build driver.
func (c *Composer) HydrationAsset() []byte {
	return hydrationScript
}

// Composer merges converted markdown with the presentational shells and
// inlines a page-scoped stylesheet into each document.
type Composer struct {
	shells interfaces.ShellRenderer
	styles interfaces.StyleExtractor
	site   interfaces.SiteMeta
	logger interfaces.Logger
}

// New wires a composer. Nil shells or styles select the built-in
// implementations.
func New(site interfaces.SiteMeta, shells interfaces.ShellRenderer, styles interfaces.StyleExtractor, logger interfaces.Logger) (*Composer, error) {
	if shells == nil {
		set, err := NewShellSet()
		if err != nil {
			return nil, err
		}
		shells = set
	}
	if styles == nil {
		styles = NewUtilityExtractor(nil)
	}
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Composer{
		shells: shells,
		styles: styles,
		site:   site,
		logger: logger,
	}, nil
}

// ComposePost produces the complete HTML document for a post from its
// converted body fragment.
func (c *Composer) ComposePost(post interfaces.Post, body []byte) (string, error) {
	data := interfaces.PostShellData{
		Site:  c.site,
		Post:  post,
		Body:  template.HTML(body),
		Head:  PostHead(post, c.site),
		Links: c.navLinks(),
	}

	// First pass renders without styles so the purge step sees the full
	// class usage; the second pass inlines the extracted subset.
	page, err := c.shells.RenderPost(data)
	if err != nil {
		return "", err
	}
	css, err := c.styles.Extract(page)
	if err != nil {
		return "", fmt.Errorf("composer: extract styles for %s: %w", post.Slug, err)
	}
	data.Styles = template.CSS(css)
	return c.shells.RenderPost(data)
}

// ComposeHomepage produces the listing document for the supplied summaries.
func (c *Composer) ComposeHomepage(summaries []interfaces.Summary) (string, error) {
	data := interfaces.ListingShellData{
		Site:  c.site,
		Posts: summaries,
		Head:  ListingHead(c.site),
		Links: c.navLinks(),
	}

	page, err := c.shells.RenderListing(data)
	if err != nil {
		return "", err
	}
	css, err := c.styles.Extract(page)
	if err != nil {
		return "", fmt.Errorf("composer: extract homepage styles: %w", err)
	}
	data.Styles = template.CSS(css)
	return c.shells.RenderListing(data)
}

func (c *Composer) navLinks() interfaces.NavLinks {
	base := strings.TrimRight(c.site.BasePath, "/")
	return interfaces.NavLinks{
		Home:      base + "/",
		IndexJSON: base + "/blog-index.json",
		Hydrate:   base + "/hydrate.js",
	}
}
