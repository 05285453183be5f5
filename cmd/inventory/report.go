package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go-inventory-pos/internal/model"
	"go-inventory-pos/internal/service"

	"github.com/google/subcommands"
)

// reportFlags is shared by report and export
type reportFlags struct {
	scope string
	date  string
}

func (r *reportFlags) set(f *flag.FlagSet) {
	f.StringVar(&r.scope, "scope", "daily", "report scope: daily, monthly or all")
	f.StringVar(&r.date, "date", "", "reference date YYYY-MM-DD (defaults to today)")
}

func (r *reportFlags) build(session *service.Session) (model.ReportResult, error) {
	scope, err := service.ParseScope(r.scope)
	if err != nil {
		return model.ReportResult{}, err
	}
	ref := time.Now()
	if r.date != "" {
		ref, err = time.ParseInLocation("2006-01-02", r.date, time.Local)
		if err != nil {
			return model.ReportResult{}, fmt.Errorf("invalid date %q: %w", r.date, err)
		}
	}
	return session.Report(scope, ref)
}

type reportCmd struct {
	reportFlags
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display a daily, monthly or all-time sales report" }
func (*reportCmd) Usage() string {
	return `inventory report [-scope daily|monthly|all] [-date YYYY-MM-DD]

  Daily and monthly reports include products created in the period and every product that has sold.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) { c.set(f) }

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, cfg, err := openSession()
	if err != nil {
		return fail(err)
	}
	report, err := c.build(session)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(reportMarkdown(report, cfg.Currency))
	return subcommands.ExitSuccess
}

type exportCmd struct {
	reportFlags
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export a report as CSV" }
func (*exportCmd) Usage() string {
	return `inventory export [-scope daily|monthly|all] [-date YYYY-MM-DD] [-o <file>]

  Writes the report as CSV. Without -o the file is named inventory-report-<scope>-<date>.csv.
  Use -o - to write to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.set(f)
	f.StringVar(&c.output, "o", "", "output file")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, _, err := openSession()
	if err != nil {
		return fail(err)
	}
	report, err := c.build(session)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	now := time.Now()
	if c.output == "-" {
		if err := service.ExportCSV(os.Stdout, report, now); err != nil {
			return fail(err)
		}
		return subcommands.ExitSuccess
	}

	name := c.output
	if name == "" {
		name = service.ExportFileName(report.Scope, now)
	}
	if err := writeExport(name, report, now); err != nil {
		return fail(err)
	}
	fmt.Printf("Report written to %s\n", name)
	return subcommands.ExitSuccess
}

// writeExport creates the CSV file; a failed close is reported like a failed write
func writeExport(name string, report model.ReportResult, generatedAt time.Time) error {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := service.ExportCSV(file, report, generatedAt); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
