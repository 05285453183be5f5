package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type productsCmd struct{}

func (*productsCmd) Name() string     { return "products" }
func (*productsCmd) Synopsis() string { return "list products with stock and sales" }
func (*productsCmd) Usage() string {
	return `inventory products

  Lists every product with stock, sold, available and revenue.
`
}
func (*productsCmd) SetFlags(*flag.FlagSet) {}

func (*productsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, cfg, err := openSession()
	if err != nil {
		return fail(err)
	}
	printMarkdown(productsMarkdown(session.Products(), cfg.Currency))
	return subcommands.ExitSuccess
}

type ordersCmd struct{}

func (*ordersCmd) Name() string     { return "orders" }
func (*ordersCmd) Synopsis() string { return "list placed shop orders" }
func (*ordersCmd) Usage() string {
	return `inventory orders

  Lists the shop order log, oldest first.
`
}
func (*ordersCmd) SetFlags(*flag.FlagSet) {}

func (*ordersCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, cfg, err := openSession()
	if err != nil {
		return fail(err)
	}
	printMarkdown(ordersMarkdown(session.Orders(), cfg.Currency))
	return subcommands.ExitSuccess
}

type resetCmd struct {
	force bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "delete every product and order" }
func (*resetCmd) Usage() string {
	return `inventory reset -force

  Wipes products and orders from the store. Cannot be undone.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "confirm the reset")
}

func (c *resetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		fmt.Fprintln(os.Stderr, "Refusing to reset without -force")
		return subcommands.ExitUsageError
	}
	session, _, err := openSession()
	if err != nil {
		return fail(err)
	}
	if err := session.Reset(); err != nil {
		return fail(err)
	}
	fmt.Println("Store reset")
	return subcommands.ExitSuccess
}
