package commands

import (
	"github.com/spf13/cobra"

	"testhelper/internal/cli"
	"testhelper/internal/registry"
)

// Commands holds all CLI commands
type Commands struct {
	Run  *RunCommand
	List *ListCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(reg *registry.Registry, flags *cli.Flags) *Commands {
	return &Commands{
		Run:  NewRunCommand(reg, flags),
		List: NewListCommand(reg, flags),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags) {
	flags.AddGlobal(rootCmd.PersistentFlags())

	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run registered tests",
		Long:  "Run the selected registered tests one after another and report every comparison",
		Args:  cobra.NoArgs,
		RunE:  c.Run.Execute,
	}
	cli.AddRun(runCmd.Flags())
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered tests",
		Long:  "List the registered tests matching the selection without running them",
		Args:  cobra.NoArgs,
		RunE:  c.List.Execute,
	}
	cli.AddSelection(listCmd.Flags())
	rootCmd.AddCommand(listCmd)
}

// unknownSkips returns the --skip names that match no registered case
func unknownSkips(reg *registry.Registry, skip []string) []string {
	var unknown []string
	for _, name := range skip {
		if _, ok := reg.Lookup(name); !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}
