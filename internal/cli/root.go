// Package cli provides the command-line interface for tracker.
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/runoshun/tracker/internal/app"
	"github.com/runoshun/tracker/internal/domain"
	"github.com/runoshun/tracker/internal/tui"
)

// Command group IDs.
const (
	groupSetup = "setup"
	groupTask  = "task"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for tracker.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var ephemeral bool

	root := &cobra.Command{
		Use:   "tracker",
		Short: "Terminal task tracker",
		Long: `tracker keeps a list of short text tasks.

Add, search, toggle and delete tasks in the interactive TUI (run without
arguments) or with the subcommands below. The list is stored under one key
of the configured medium and survives restarts.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}

			// Config commands work even when the store cannot be opened
			if isConfigCommand(cmd) {
				return nil
			}

			if ephemeral {
				c.AppConfig.Store.Backend = domain.BackendMemory
			}
			return c.OpenStore(cmd.Context())
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	root.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep tasks in memory only for this run")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
	)

	// Setup commands
	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	// Task management commands
	addCmd := newAddCommand(c)
	addCmd.GroupID = groupTask

	listCmd := newListCommand(c)
	listCmd.GroupID = groupTask

	toggleCmd := newToggleCommand(c)
	toggleCmd.GroupID = groupTask

	rmCmd := newRmCommand(c)
	rmCmd.GroupID = groupTask

	exportCmd := newExportCommand(c)
	exportCmd.GroupID = groupTask

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupTask

	root.AddCommand(
		configCmd,
		addCmd,
		listCmd,
		toggleCmd,
		rmCmd,
		exportCmd,
		tuiCmd,
	)

	return root
}

// isConfigCommand reports whether cmd is config or one of its subcommands.
func isConfigCommand(cmd *cobra.Command) bool {
	for p := cmd; p != nil; p = p.Parent() {
		if p.Name() == "config" {
			return true
		}
	}
	return false
}

// launchTUI runs the interactive TUI until the user quits.
func launchTUI(c *app.Container) error {
	model := tui.New(c.ViewModel())
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
