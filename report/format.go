package report

import (
	"fmt"

	"github.com/nexusfo/nexus"
)

// All numeric formatting funnels through these two helpers so every section
// renders money and rates identically: whole euros, one-decimal percentages.

func formatCurrency(v float64) string {
	return nexus.M(v).String()
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
