package composer

import (
	"strings"
	"testing"
)

func TestUtilityExtractor_KeepsOnlyUsedRules(t *testing.T) {
	extractor := NewUtilityExtractor([]StyleRule{
		{"bb-a", ".bb-a{color:red}"},
		{"bb-b", ".bb-b{color:blue}"},
		{"bb-c", ".bb-c{color:green}"},
	})

	css, err := extractor.Extract(`<div class="bb-c bb-a">x</div>`)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if strings.Contains(css, ".bb-b") {
		t.Fatalf("unused rule survived the purge: %q", css)
	}
	// Output follows universe order, not usage order.
	if css != ".bb-a{color:red}\n.bb-c{color:green}" {
		t.Fatalf("unexpected extraction result: %q", css)
	}
}

func TestUtilityExtractor_NoClasses(t *testing.T) {
	extractor := NewUtilityExtractor(nil)

	css, err := extractor.Extract("<p>bare</p>")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if css != "" {
		t.Fatalf("expected empty stylesheet, got %q", css)
	}
}
