// Command inventory inspects and maintains the store the API server uses.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go-inventory-pos/internal/config"
	"go-inventory-pos/internal/repository"
	"go-inventory-pos/internal/service"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&dashboardCmd{}, "reports")
	subcommands.Register(&reportCmd{}, "reports")
	subcommands.Register(&exportCmd{}, "reports")

	subcommands.Register(&productsCmd{}, "data")
	subcommands.Register(&ordersCmd{}, "data")
	subcommands.Register(&resetCmd{}, "data")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}

// openSession loads the configured store for a single command
func openSession() (*service.Session, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log := cfg.NewLogger()
	if log.GetLevel() > logrus.WarnLevel {
		log.SetLevel(logrus.WarnLevel)
	}

	store, err := repository.OpenStore(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	session, err := service.NewSession(repository.NewProductRepo(store), repository.NewOrderRepo(store), nil, log)
	if err != nil {
		return nil, nil, err
	}
	return session, cfg, nil
}

func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		if out, err := r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
