package narrative

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// FormatError reports a completion that could not be turned into a Bundle.
// Callers branch on it to substitute the fallback bundle.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "malformed narrative completion: " + e.Reason
}

var trailingCommas = regexp.MustCompile(`,\s*([}\]])`)

// Parse extracts the Bundle from a raw model completion. Models wrap the
// JSON object in prose or markdown code fences, so the parser keeps the
// first-'{'-to-last-'}' span, strips fence tokens and parses strictly. On
// failure it applies exactly one repair pass (trailing commas before '}' or
// ']') and retries once; anything still invalid is a *FormatError.
//
// Parse never returns a partial bundle: all nine fields must be present as
// strings.
func Parse(raw string) (Bundle, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return Bundle{}, &FormatError{Reason: "no JSON object span found"}
	}
	clean := raw[start : end+1]
	clean = strings.ReplaceAll(clean, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")

	bundle, err := decode(clean)
	if err != nil {
		// One bounded repair pass, then give up.
		repaired := trailingCommas.ReplaceAllString(clean, "$1")
		bundle, err = decode(repaired)
		if err != nil {
			return Bundle{}, &FormatError{Reason: err.Error()}
		}
	}
	return bundle, nil
}

func decode(text string) (Bundle, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return Bundle{}, err
	}
	values := make(map[string]string, len(keys))
	for _, key := range keys {
		rawValue, ok := fields[key]
		if !ok {
			return Bundle{}, fmt.Errorf("missing field %q", key)
		}
		var s string
		if err := json.Unmarshal(rawValue, &s); err != nil {
			return Bundle{}, fmt.Errorf("field %q is not a string", key)
		}
		values[key] = s
	}
	return Bundle{
		ExecutiveSummary:      values["executiveSummary"],
		MacroAnalysis:         values["macroAnalysis"],
		StrategyNotes:         values["strategyNotes"],
		SectorFocus:           values["sectorFocus"],
		GeoStrategy:           values["geoStrategy"],
		PortfolioPerformance:  values["portfolioPerformance"],
		RiskAnalysis:          values["riskAnalysis"],
		CashFlowAnalysis:      values["cashFlowAnalysis"],
		PhilanthropySpotlight: values["philanthropySpotlight"],
	}, nil
}
