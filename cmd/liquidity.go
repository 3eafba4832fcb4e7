package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/nexusfo/nexus/report"
)

type liquidityCmd struct {
	output string
}

func (*liquidityCmd) Name() string     { return "liquidity" }
func (*liquidityCmd) Synopsis() string { return "generate the treasury liquidity alert report (PDF)" }
func (*liquidityCmd) Usage() string {
	return `nfo liquidity [-o <file>]

  Produces the standalone treasury stress report: alert banner, key
  liquidity metrics, the six-month cash-flow projection and recommended
  actions.
`
}

func (c *liquidityCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "Nexus_Risk_Alert_Liquidity.pdf", "Output file.")
}

func (c *liquidityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	document := report.BuildLiquidityAlert(time.Now())
	if err := report.Deliver(document, c.output, nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "✅ Liquidity alert written to %s.\n", c.output)
	return subcommands.ExitSuccess
}
