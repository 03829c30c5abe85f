package terminal

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"uitestframework/application/checker"
	"uitestframework/application/pom"
	"uitestframework/domain/entities"
	"uitestframework/infrastructure/browser"
	"uitestframework/infrastructure/catalog"
	"uitestframework/infrastructure/config"
)

type globalFlags struct {
	configPath string
	backend    string
	browser    string
	logLevel   string
}

// Terminal holds the command tree and its dependencies
type Terminal struct {
	out    io.Writer
	flags  globalFlags
	launch browser.Launcher
}

// NewTerminal - creates the command line interface writing to out
func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out, launch: browser.Launch}
}

// RootCommand - builds the cobra command tree
func (t *Terminal) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "uitestframework",
		Short:         "Page object model tooling for browser tests",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(t.out)
	root.SetErr(t.out)

	pf := root.PersistentFlags()
	pf.StringVarP(&t.flags.configPath, "config", "c", "uitest.yaml", "configuration file")
	pf.StringVar(&t.flags.backend, "backend", "", "automation backend: selenium, playwright or chromedp")
	pf.StringVar(&t.flags.browser, "browser", "", "browser identifier")
	pf.StringVar(&t.flags.logLevel, "log-level", "", "log level")

	root.AddCommand(t.checkCommand(), t.browsersCommand())
	return root
}

func (t *Terminal) loadConfig() (*config.Config, *logrus.Logger, error) {
	cfg, err := config.Load(t.flags.configPath)
	if err != nil {
		return nil, nil, err
	}
	if t.flags.backend != "" {
		cfg.Backend = entities.Backend(t.flags.backend)
	}
	if t.flags.browser != "" {
		cfg.Browser = entities.Browser(t.flags.browser)
	}
	if t.flags.logLevel != "" {
		cfg.LogLevel = t.flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger, err := config.NewLogger(cfg.LogLevel, os.Stderr)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func (t *Terminal) checkCommand() *cobra.Command {
	var pagesPath, baseURL string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Open every catalog page and look up its declared elements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := t.loadConfig()
			if err != nil {
				return err
			}

			pages, err := catalog.Load(pagesPath)
			if err != nil {
				return err
			}

			model := pom.NewModel(pages.Routes(), logger)
			session, err := t.launch(cfg, pom.NewListener(model), logger)
			if err != nil {
				return fmt.Errorf("failed to launch browser: %w", err)
			}
			defer session.Quit()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			results, err := checker.NewChecker(session, model, logger).CheckAll(ctx, baseURL)
			failed := t.printResults(results)
			if err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d pages failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&pagesPath, "pages", "p", "pages.yaml", "page catalog file")
	cmd.Flags().StringVarP(&baseURL, "base-url", "u", "http://localhost:8000", "application base URL")
	return cmd
}

func (t *Terminal) printResults(results []entities.PageCheck) int {
	ok := color.New(color.FgGreen).SprintFunc()
	bad := color.New(color.FgRed).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()

	failed := 0
	for _, r := range results {
		status := ok("PASS")
		if !r.OK() {
			status = bad("FAIL")
			failed++
		}
		fmt.Fprintf(t.out, "%s %s %s\n", status, r.Path, faint(r.URL))
		if r.Error != "" {
			fmt.Fprintf(t.out, "    %s\n", bad(r.Error))
		}
		for _, e := range r.Elements {
			if e.Found {
				fmt.Fprintf(t.out, "    %s %s %s\n", ok("✓"), e.Name, faint(e.Locator))
			} else {
				fmt.Fprintf(t.out, "    %s %s %s\n", bad("✗"), e.Name, faint(e.Error))
			}
		}
	}
	return failed
}

func (t *Terminal) browsersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browsers",
		Short: "List recognized browser identifiers per backend",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			bold := color.New(color.Bold).SprintFunc()
			for _, backend := range entities.Backends {
				fmt.Fprintf(t.out, "%s\n", bold(backend))
				for i, b := range browser.Supported(backend) {
					suffix := ""
					if i == 0 {
						suffix = " (default)"
					}
					fmt.Fprintf(t.out, "  %s%s\n", b, suffix)
				}
			}
		},
	}
}

// Execute - runs the command line interface
func Execute() error {
	return NewTerminal(os.Stdout).RootCommand().ExecuteContext(context.Background())
}
