package narrative

import (
	"strings"
	"testing"
	"time"

	"github.com/nexusfo/nexus"
)

func TestBuildPromptEmbedsContract(t *testing.T) {
	snap := nexus.Aggregate(nexus.Figures())
	c := NewContext(snap, time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC))

	if c.ReportContext.Period != "febrero de 2026" {
		t.Errorf("Period = %q, want %q", c.ReportContext.Period, "febrero de 2026")
	}

	prompt, err := BuildPrompt(c)
	if err != nil {
		t.Fatalf("BuildPrompt() failed: %v", err)
	}

	// Every key of the output contract must be spelled out in the prompt.
	for _, key := range keys {
		if !strings.Contains(prompt, `"`+key+`"`) {
			t.Errorf("prompt does not mention required key %q", key)
		}
	}
	// The serialized context must cite the total wealth and the first
	// property so the model can reference them.
	if !strings.Contains(prompt, snap.TotalWealth.String()) {
		t.Error("prompt does not cite the total wealth")
	}
	if !strings.Contains(prompt, nexus.RealEstateAssets[0].Name) {
		t.Error("prompt does not cite the first real-estate asset")
	}
}
