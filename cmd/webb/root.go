package main

import (
	"context"
	"fmt"
	"net/url"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/webb-inc/webb/internal/navigation"
	"github.com/webb-inc/webb/internal/theme"
	"github.com/webb-inc/webb/internal/tui"
)

type rootFlags struct {
	view       string
	location   string
	configPath string
	logFile    string
	logLevel   string
	offline    bool
}

// isInteractive is swapped out by tests.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "webb",
		Short:         "Browse the WEBB Inc. portfolio in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		Version:       version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, flags)
		},
	}

	cmd.SetVersionTemplate(buildInfo())
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to the settings file")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Log file path (\"-\" discards logs)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&flags.offline, "offline", false, "Browse the cached snapshot instead of the content service")
	cmd.Flags().StringVar(&flags.view, "view", "", "Start view (LANDING, COMMERCIAL, MV, JAMES_WEBB, ABOUT)")
	cmd.Flags().StringVar(&flags.location, "location", "", "Start location, e.g. \"/?view=MV\"")

	cmd.AddCommand(newProjectsCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runBrowse(cmd *cobra.Command, flags *rootFlags) error {
	ctx := commandContext(cmd)
	app, err := newAppContext(ctx, flags)
	if err != nil {
		return err
	}
	defer app.Close(context.Background())

	if !isInteractive() {
		fetchCtx, cancel := contentContext(ctx, app)
		defer cancel()
		return renderProjectsTable(cmd.OutOrStdout(), app.Provider.GetProjectsWithFallback(fetchCtx))
	}

	log := app.Logger
	model := tui.NewModel(tui.Options{
		Projects: app.Provider,
		Navigation: navigation.NewStore(navigation.Options{
			Timings: app.Settings.Timings.Navigation(),
			Logger:  log,
		}),
		Theme:    theme.NewStore(app.Settings.Timings.Theme(), nil),
		Settings: app.Settings,
		Location: startLocation(flags, app.Settings.InitialView),
		Timeout:  app.Env.ContentTimeout,
		Logger:   log,
	})

	log.Info("starting browser")
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run browser: %w", err)
	}
	return nil
}

// startLocation picks the start location: --view, then --location, then the
// settings file. Unknown views fall back to the landing page inside the store.
func startLocation(flags *rootFlags, initialView string) string {
	switch {
	case flags.view != "":
		return "/?" + url.Values{"view": {flags.view}}.Encode()
	case flags.location != "":
		return flags.location
	case initialView != "":
		return "/?" + url.Values{"view": {initialView}}.Encode()
	}
	return "/"
}
