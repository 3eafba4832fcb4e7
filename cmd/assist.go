package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/nexusfo/nexus"
	"github.com/nexusfo/nexus/narrative"
)

// assistCmd is the subcommand for the interactive wealth assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the wealth assistant" }
func (*assistCmd) Usage() string {
	return `nfo assist [initial question]

  Starts an interactive chat grounded on the current portfolio snapshot.
  Type 'bye' or Ctrl+D to exit.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}

	client, err := narrative.NewClient(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	snap := nexus.Aggregate(nexus.Figures())
	assistant := narrative.NewAssistant(os.Stdout, os.Stdin)
	if err := assistant.Run(ctx, client, snap, prompts...); err != nil {
		fmt.Fprintln(os.Stderr, "Assistant failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
