package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/fr4nk3nst1ner/salarystats/internal/client"
	"github.com/fr4nk3nst1ner/salarystats/internal/config"
	"github.com/fr4nk3nst1ner/salarystats/internal/logger"
	"github.com/fr4nk3nst1ner/salarystats/internal/scraper"
	"github.com/fr4nk3nst1ner/salarystats/internal/stats"
	"github.com/fr4nk3nst1ner/salarystats/internal/ui"
)

// printExamples displays usage examples for the program
func printExamples(w io.Writer) {
	fmt.Fprintln(w, "\n📋 salarystats usage examples 📋")
	fmt.Fprintln(w, "\n1. Average salaries for the default languages on HeadHunter and SuperJob:")
	fmt.Fprintln(w, "   SUPERJOB_SECRET_KEY=v3.r.xxx salarystats")

	fmt.Fprintln(w, "\n2. Only HeadHunter, no SuperJob key needed:")
	fmt.Fprintln(w, "   salarystats -source headhunter")

	fmt.Fprintln(w, "\n3. A few languages with debug output and no banner:")
	fmt.Fprintln(w, "   salarystats -languages \"Go,Rust,Python\" -debug -silence")

	fmt.Fprintln(w, "\n4. Another region, configured in a YAML file:")
	fmt.Fprintln(w, "   salarystats -config spb.yaml")
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "salarystats",
		Usage: "average programmer salaries per language from HeadHunter and SuperJob",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to a YAML config file (default: " + config.DefaultPath + " if present)"},
			&cli.StringFlag{Name: "languages", Usage: "comma separated languages to search for, overrides the config"},
			&cli.StringFlag{Name: "source", Usage: "only query one source (headhunter, superjob)"},
			&cli.BoolFlag{Name: "debug", Usage: "enable debug output"},
			&cli.BoolFlag{Name: "silence", Aliases: []string{"nobanner"}, Usage: "silence the banner"},
			&cli.BoolFlag{Name: "no-color", Usage: "disable colored output"},
			&cli.BoolFlag{Name: "no-progress", Usage: "hide progress bars"},
			&cli.BoolFlag{Name: "examples", Usage: "show usage examples"},
		},
		Action: run,
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	logger.SetVerbose(c.Bool("debug"))
	if c.Bool("no-color") {
		pterm.DisableColor()
	}

	ui.PrintBanner(os.Stderr, c.Bool("silence"))

	if c.Bool("examples") {
		printExamples(os.Stdout)
		return nil
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	httpClient, err := client.CreateHTTPClient(cfg.HTTP.Timeout, cfg.HTTP.Proxy)
	if err != nil {
		return err
	}

	providers := scraper.EnabledProviders(cfg, httpClient)
	return report(c.Context, os.Stdout, providers, cfg.Languages, !c.Bool("no-progress"))
}

// loadConfig applies command line overrides and validates the result
// before any request is sent
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("languages") {
		cfg.SetLanguages(c.String("languages"))
	}
	if err := cfg.SetSource(c.String("source")); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("Languages: %v", cfg.Languages)
	return cfg, nil
}

// report collects and prints one table per provider, separated by a blank line
func report(ctx context.Context, out io.Writer, providers []scraper.Provider, languages []string, progress bool) error {
	for i, provider := range providers {
		agg := &stats.Aggregator{}

		var bar *pb.ProgressBar
		if progress {
			bar = ui.NewProgress(os.Stderr, provider.Name(), len(languages))
			agg.OnTerm = func(string) { bar.Increment() }
		}

		result, err := agg.Collect(ctx, provider, languages)
		if bar != nil {
			bar.Finish()
		}
		if err != nil {
			return err
		}

		table, err := ui.RenderStats(provider.Title(), result)
		if err != nil {
			return fmt.Errorf("failed to render %s table: %w", provider.Name(), err)
		}

		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, table)
	}

	return nil
}
