package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/nexusfo/nexus"
	"github.com/nexusfo/nexus/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the consolidated net-worth summary" }
func (*summaryCmd) Usage() string {
	return `nfo summary

  Displays the aggregated net worth, allocation, evolution and risk
  metrics in the terminal.
`
}

func (*summaryCmd) SetFlags(_ *flag.FlagSet) {}

func (*summaryCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snap := nexus.Aggregate(nexus.Figures())
	printMarkdown(renderer.SummaryMarkdown(snap))
	return subcommands.ExitSuccess
}
