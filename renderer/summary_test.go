package renderer

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/nexusfo/nexus"
)

// parse runs the GFM parser over the rendered summary so the test checks
// markdown structure, not string formatting details.
func parse(t *testing.T, source []byte) ast.Node {
	t.Helper()
	parser := goldmark.New(goldmark.WithExtensions(extension.GFM)).Parser()
	return parser.Parse(text.NewReader(source))
}

func TestSummaryMarkdownStructure(t *testing.T) {
	snap := nexus.Aggregate(nexus.Figures())
	source := []byte(SummaryMarkdown(snap))
	root := parse(t, source)

	var h1, h2, tables int
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Heading:
			if v.Level == 1 {
				h1++
			}
			if v.Level == 2 {
				h2++
			}
		default:
			if n.Kind() == east.KindTable {
				tables++
			}
		}
		return ast.WalkContinue, nil
	})

	if h1 != 1 {
		t.Errorf("got %d level-1 headings, want 1", h1)
	}
	if h2 != 3 {
		t.Errorf("got %d level-2 headings, want 3 (allocation, evolution, risk)", h2)
	}
	if tables != 3 {
		t.Errorf("got %d tables, want 3", tables)
	}

	// Every allocation class must appear in the rendered document.
	for _, a := range snap.Allocation {
		if !strings.Contains(string(source), a.Name) {
			t.Errorf("summary does not mention allocation class %q", a.Name)
		}
	}
	if !strings.Contains(string(source), snap.TotalWealth.String()) {
		t.Error("summary does not state the total wealth")
	}
}

func TestSummaryMarkdownListsFlaggedRecords(t *testing.T) {
	snap := nexus.Aggregate([]nexus.Figure{
		{Name: "Activo Válido", Category: nexus.Treasury, Amount: 1_000_000},
		{Name: "Registro Corrupto", Category: nexus.RealEstate, Raw: "N/A"},
	})
	source := SummaryMarkdown(snap)

	if !strings.Contains(source, "Registros Descartados") {
		t.Fatal("summary omits the flagged-records section")
	}
	if !strings.Contains(source, "Registro Corrupto") {
		t.Error("summary does not name the flagged record")
	}
}
