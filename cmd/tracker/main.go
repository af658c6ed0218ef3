// Package main is the entry point for the tracker CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/runoshun/tracker/internal/app"
	"github.com/runoshun/tracker/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() (err error) {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Create dependency injection container
	container, err := app.New(cwd)
	if err != nil {
		// A broken config file must not block help, version or the template
		return runWithoutContainer(err)
	}
	defer func() {
		err = errors.Join(err, container.Close())
	}()

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}

// runWithoutContainer handles cases where configuration could not be loaded.
func runWithoutContainer(initErr error) error {
	if !canRunWithoutConfig(os.Args[1:]) {
		return fmt.Errorf("failed to initialize: %w", initErr)
	}
	return cli.NewRootCommand(nil, version).Execute()
}

func canRunWithoutConfig(args []string) bool {
	if len(args) == 0 {
		return false
	}
	if args[0] == "help" {
		return true
	}
	if len(args) >= 2 && args[0] == "config" && args[1] == "template" {
		return true
	}
	for _, arg := range args {
		if arg == "--version" || arg == "-v" || arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}
