package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/nexusfo/nexus"
	"github.com/nexusfo/nexus/narrative"
)

var testDate = time.Date(2026, time.February, 10, 12, 0, 0, 0, time.UTC)

// stamp pins the document metadata dates so two builds of the same request
// serialize byte-identically.
func stamp(d *Document) *Document {
	d.pdf.SetCreationDate(testDate)
	d.pdf.SetModificationDate(testDate)
	return d
}

func testSnapshot(t *testing.T) nexus.Snapshot {
	t.Helper()
	return nexus.Aggregate([]nexus.Figure{
		{Name: "Cartera Inmobiliaria", Category: nexus.RealEstate, Amount: 45_000_000},
		{Name: "Cartera Financiera", Category: nexus.PublicMarkets, Amount: 30_000_000},
		{Name: "Tesorería", Category: nexus.Treasury, Amount: 25_000_000},
	})
}

func TestBuildEmptySelectionIsCoverOnly(t *testing.T) {
	document := Build(Request{
		Title:    "Informe Mensual",
		Snapshot: testSnapshot(t),
		Date:     testDate,
	})
	if got := document.Pages(); got != 1 {
		t.Errorf("document has %d pages, want only the cover", got)
	}
}

func TestBuildIgnoresUnknownSections(t *testing.T) {
	base := Request{
		Sections: []string{"treasury", "risks"},
		Title:    "Informe Mensual",
		Snapshot: testSnapshot(t),
		Date:     testDate,
	}
	withUnknown := base
	withUnknown.Sections = []string{"treasury", "crystal_ball", "risks", ""}

	want, err := stamp(Build(base)).Bytes()
	if err != nil {
		t.Fatal(err)
	}
	got, err := stamp(Build(withUnknown)).Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Error("unknown section ids changed the output; they must be ignored")
	}
}

func TestBuildSectionOrderIsFixed(t *testing.T) {
	a := Request{
		Sections: []string{"impact", "summary", "portfolio"},
		Title:    "Informe",
		Snapshot: testSnapshot(t),
		Date:     testDate,
	}
	b := a
	b.Sections = []string{"portfolio", "impact", "summary"}

	first, err := stamp(Build(a)).Bytes()
	if err != nil {
		t.Fatal(err)
	}
	second, err := stamp(Build(b)).Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("selection order changed the output; chapter order is fixed")
	}
}

func TestBuildAllSectionsProducesEveryChapter(t *testing.T) {
	ids := make([]string, 0, len(sections))
	for _, s := range sections {
		ids = append(ids, s.id)
	}
	fallback := narrative.Fallback("prueba")
	document := Build(Request{
		Sections:  ids,
		Title:     "Informe Integral",
		Snapshot:  nexus.Aggregate(nexus.Figures()),
		Narrative: &fallback,
		Date:      testDate,
	})
	// Cover, five summary pages, nine further chapters; overflowing tables
	// may add more.
	if got := document.Pages(); got < 15 {
		t.Errorf("document has %d pages, want at least 15", got)
	}
}

func TestEndToEndFallbackNarrativeReachesDocument(t *testing.T) {
	// The AI call failed; the caller substitutes the fallback bundle and the
	// delivered summary must carry its placeholder text.
	fallback := narrative.Fallback("servicio no disponible")
	document := Build(Request{
		Sections:  []string{"summary"},
		Title:     "Informe Mensual",
		Snapshot:  testSnapshot(t),
		Narrative: &fallback,
		Date:      testDate,
	})
	document.pdf.SetCompression(false)

	saves := 0
	err := Deliver(document, t.TempDir()+"/informe.pdf", func(name string, data []byte) error {
		saves++
		if !strings.Contains(string(data), "No se pudo generar el an") {
			t.Error("summary does not contain the fallback executive-summary text")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Deliver() failed: %v", err)
	}
	if saves != 1 {
		t.Errorf("save capability invoked %d times, want exactly 1", saves)
	}
}

func TestBuildLiquidityAlert(t *testing.T) {
	document := BuildLiquidityAlert(testDate)
	if document.Pages() < 1 {
		t.Fatal("liquidity alert produced no pages")
	}
	data, err := document.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("liquidity alert serialized to zero bytes")
	}
}

func TestTacticalRecommendations(t *testing.T) {
	snap := testSnapshot(t)
	recs := tacticalRecommendations(snap)
	if len(recs) < 2 {
		t.Fatalf("got %d recommendations, want at least liquidity and performance", len(recs))
	}
	// Treasury is 25% of this snapshot, well above the 10% liquidity floor.
	if recs[0].kind != "success" {
		t.Errorf("liquidity recommendation kind = %q, want success", recs[0].kind)
	}
	// Real estate holds 45% of the total, above the concentration threshold.
	var found bool
	for _, r := range recs {
		if r.title == "Concentración de Activos" {
			found = true
		}
	}
	if !found {
		t.Error("missing the concentration recommendation for a 45% single class")
	}
}
