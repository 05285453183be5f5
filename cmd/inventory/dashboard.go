package main

import (
	"context"
	"flag"

	"go-inventory-pos/internal/service"

	"github.com/google/subcommands"
)

type dashboardCmd struct {
	top int
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the dashboard totals and top products" }
func (*dashboardCmd) Usage() string {
	return `inventory dashboard [-top n]

  Displays sales, cost, profit and stock totals for the whole inventory.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.top, "top", service.DashboardTopN, "number of top performing products to list")
}

func (c *dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, cfg, err := openSession()
	if err != nil {
		return fail(err)
	}
	md := dashboardMarkdown(session.Dashboard(), session.TopPerformers(c.top), cfg.Currency)
	printMarkdown(md)
	return subcommands.ExitSuccess
}
