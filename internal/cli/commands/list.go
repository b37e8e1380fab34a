package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"testhelper/internal/cli"
	"testhelper/internal/config"
	"testhelper/internal/registry"
	"testhelper/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	registry *registry.Registry
	flags    *cli.Flags
}

// NewListCommand creates a new ListCommand
func NewListCommand(reg *registry.Registry, flags *cli.Flags) *ListCommand {
	return &ListCommand{
		registry: reg,
		flags:    flags,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(lc.flags.LoadOptions(cmd.Flags()))
	if err != nil {
		return cli.WithCode(err, cli.ExitError)
	}

	out := cmd.OutOrStdout()
	for _, name := range unknownSkips(lc.registry, cfg.Skip) {
		color.New(color.FgYellow).Fprintf(cmd.ErrOrStderr(), "Unknown test in --skip: %s\n", name)
	}

	cases := lc.registry.Select(cfg.Filter, cfg.Skip)
	if len(cases) == 0 {
		color.New(color.FgYellow).Fprintln(out, "No tests found")
		return nil
	}

	infos := make([]ui.CaseInfo, 0, len(cases))
	for _, c := range cases {
		infos = append(infos, ui.CaseInfo{Name: c.Name, Description: c.Description})
	}
	ui.PrintCaseList(out, infos, lc.registry.Len())
	return nil
}
