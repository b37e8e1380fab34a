package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"testhelper/internal/cli"
	"testhelper/internal/cli/commands"
	"testhelper/internal/registry"
	"testhelper/internal/suites/square"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "testhelper",
		Short:         "Compare expected and actual values and report pass/fail",
		Long:          `Runs registered test cases one after another, prints a line per reported comparison, a summary per test and a final total.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Register test cases
	reg := registry.New()
	if err := square.Register(reg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitError)
	}

	var flags cli.Flags
	cmds := commands.NewCommands(reg, &flags)
	cmds.Register(rootCmd, &flags)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		if err.Error() != "" {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		var coded *cli.CodedError
		if errors.As(err, &coded) {
			os.Exit(coded.Code)
		}
		os.Exit(cli.ExitError)
	}
}
