// Package cmd implements the CLI application of the family-office dashboard.
package cmd

import (
	"github.com/google/subcommands"

	"github.com/nexusfo/nexus"
)

// Register the subcommands. A main package calls Register() and then
// Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "reports")
	c.Register(&liquidityCmd{}, "reports")
	c.Register(&summaryCmd{}, "dashboard")
	c.Register(&assistCmd{}, "dashboard")
}

// As a CLI application it has a very short lived lifecycle, so one global
// session guarding report generation is fine.
var session nexus.Session
