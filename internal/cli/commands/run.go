package commands

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"testhelper/internal/cli"
	"testhelper/internal/config"
	"testhelper/internal/execution"
	"testhelper/internal/logging"
	"testhelper/internal/metrics"
	"testhelper/internal/registry"
	"testhelper/internal/reporter"
	"testhelper/internal/sink"
	"testhelper/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	registry *registry.Registry
	flags    *cli.Flags
	viewer   *ui.RunViewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(reg *registry.Registry, flags *cli.Flags) *RunCommand {
	return &RunCommand{
		registry: reg,
		flags:    flags,
		viewer:   ui.NewRunViewer(),
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(rc.flags.LoadOptions(cmd.Flags()))
	if err != nil {
		return cli.WithCode(err, cli.ExitError)
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return cli.WithCode(err, cli.ExitError)
	}
	defer func() { _ = log.Sync() }()

	// Nothing can be reported without an output, so this aborts the run.
	out, closeOut, err := sink.Open(cfg.Output)
	if err != nil {
		return cli.Errorf("open output: %w", err)
	}
	defer func() {
		if err := closeOut(); err != nil {
			log.Warn("close output", zap.Error(err))
		}
	}()

	for _, name := range unknownSkips(rc.registry, cfg.Skip) {
		log.Warn("skip names no registered test", zap.String("name", name))
	}

	cases := rc.registry.Select(cfg.Filter, cfg.Skip)
	if len(cases) == 0 {
		color.New(color.FgYellow).Fprintln(cmd.ErrOrStderr(), "No tests to execute")
		return nil
	}
	log.Info("running tests", zap.Int("count", len(cases)), zap.String("output", cfg.Output), zap.String("format", cfg.Format))

	promRegistry := prometheus.NewRegistry()
	session := reporter.NewSession(out, rc.formatter(cfg),
		reporter.WithObserver(metrics.NewPromObserver(promRegistry)),
		reporter.WithLogger(log),
	)

	opts := []execution.Option{
		execution.WithFailFast(cfg.FailFast),
		execution.WithLogger(log),
	}
	if progressEnabled(cfg, cli.IsTerminal(os.Stderr)) {
		opts = append(opts, execution.WithProgress(ui.NewProgressBar(len(cases), os.Stderr)))
	}

	result, err := execution.NewRunner(session, opts...).Run(cmd.Context(), cases)
	if err != nil {
		return cli.WithCode(err, cli.ExitError)
	}
	log.Info("run finished", zap.Duration("duration", result.Duration))

	if cfg.MetricsTextfile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsTextfile, promRegistry); err != nil {
			return cli.WithCode(err, cli.ExitError)
		}
	}

	if cfg.Inspect {
		if cli.IsTerminal(os.Stdin) && cli.IsTerminal(os.Stdout) {
			if err := rc.viewer.View(result); err != nil {
				return cli.WithCode(err, cli.ExitError)
			}
		} else {
			log.Warn("--inspect needs a terminal, skipping")
		}
	}

	if result.Failed() {
		return cli.WithCode(nil, cli.ExitTestsFailed)
	}
	return nil
}

func (rc *RunCommand) formatter(cfg *config.Config) reporter.Formatter {
	if cfg.Format == config.FormatTAP {
		return ui.NewTAPFormatter()
	}
	useColor := cfg.Color
	switch strings.ToLower(cfg.Output) {
	case sink.TargetStdout:
		useColor = useColor && cli.IsTerminal(os.Stdout)
	case sink.TargetStderr:
		useColor = useColor && cli.IsTerminal(os.Stderr)
	default:
		useColor = false
	}
	return ui.NewTextFormatter(useColor)
}

// progressEnabled reports whether the progress bar may draw on stderr. Result
// lines written to stderr would be interleaved with the redraws.
func progressEnabled(cfg *config.Config, stderrIsTerminal bool) bool {
	return cfg.Progress && stderrIsTerminal && strings.ToLower(cfg.Output) != sink.TargetStderr
}
