package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"

	"github.com/nexusfo/nexus"
	"github.com/nexusfo/nexus/narrative"
	"github.com/nexusfo/nexus/report"
)

// allSections is the default selection: the full integrated document.
var allSections = []string{
	"summary", "portfolio", "real_estate", "private_equity", "treasury",
	"business", "risks", "environmental", "passion_assets", "impact",
}

type reportCmd struct {
	sections string
	title    string
	output   string
	noAI     bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "generate the integrated wealth report (PDF)" }
func (*reportCmd) Usage() string {
	return `nfo report [-sections <ids>] [-title <title>] [-o <file>] [-no-ai]

  Aggregates the asset records into a net-worth snapshot, requests the AI
  narrative and assembles the paginated PDF document. A narrative failure
  never blocks document production: the report falls back to deterministic
  placeholder prose.

  Section ids: ` + strings.Join(allSections, ", ") + `
  Unknown ids are ignored.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sections, "sections", strings.Join(allSections, ","), "Comma-separated section ids to include.")
	f.StringVar(&c.title, "title", "Memoria Mensual", "Report title printed on the cover.")
	f.StringVar(&c.output, "o", "Nexus_Report_Premium.pdf", "Output file.")
	f.BoolVar(&c.noAI, "no-ai", false, "Skip the AI narrative entirely.")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := session.Start(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer session.Finish()

	snap := nexus.Aggregate(nexus.Figures())
	for _, name := range snap.Flagged {
		fmt.Fprintf(os.Stderr, "warning: figure %q could not be normalized, counted as zero\n", name)
	}

	var bundle *narrative.Bundle
	if !c.noAI {
		b := fetchNarrative(ctx, snap)
		bundle = &b
	}

	document := report.Build(report.Request{
		Sections:  strings.Split(c.sections, ","),
		Title:     c.title,
		Snapshot:  snap,
		Narrative: bundle,
		Date:      time.Now(),
	})
	if err := report.Deliver(document, c.output, nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "✅ Report written to %s (%d pages).\n", c.output, document.Pages())
	return subcommands.ExitSuccess
}

// fetchNarrative runs the AI path and substitutes the fallback bundle on any
// failure, from missing credentials to malformed completions.
func fetchNarrative(ctx context.Context, snap nexus.Snapshot) narrative.Bundle {
	client, err := narrative.NewClient(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: narrative unavailable: %v\n", err)
		return narrative.Fallback(err.Error())
	}
	bundle, err := client.GenerateReport(ctx, snap)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: narrative failed: %v\n", err)
		return narrative.Fallback(err.Error())
	}
	return bundle
}
