package cli

import (
	"github.com/spf13/pflag"

	"testhelper/internal/config"
)

// Flags holds the global command-line flags
type Flags struct {
	ConfigFile string
	EnvFile    string
}

// AddGlobal registers the global flags on fs
func (f *Flags) AddGlobal(fs *pflag.FlagSet) {
	fs.StringVar(&f.ConfigFile, "config", "", "Config file (toml, yaml or json)")
	fs.StringVar(&f.EnvFile, "env-file", config.DefaultEnvFile, "Dotenv file loaded into the environment when present")
}

// LoadOptions returns the config load options for a command's flag set
func (f *Flags) LoadOptions(fs *pflag.FlagSet) config.LoadOptions {
	return config.LoadOptions{
		ConfigFile: f.ConfigFile,
		EnvFile:    f.EnvFile,
		Flags:      fs,
	}
}

// AddSelection registers the case selection flags
func AddSelection(fs *pflag.FlagSet) {
	fs.StringP("filter", "f", "", "Filter tests by name pattern (supports wildcards, e.g., 'square*' or '*fixed*')")
	fs.StringSlice("skip", nil, "Names of tests to skip (comma separated)")
}

// AddRun registers the run command flags
func AddRun(fs *pflag.FlagSet) {
	AddSelection(fs)
	fs.StringP("output", "o", config.DefaultOutput, "Where result lines go: stdout, stderr, none, or a file/device path")
	fs.String("format", config.DefaultFormat, "Result line format: text or tap")
	fs.Bool("no-color", false, "Disable coloured output")
	fs.Bool("fail-fast", false, "Stop after the first test with a failed comparison")
	fs.Bool("progress", false, "Show a progress bar on stderr")
	fs.Bool("inspect", false, "Browse the results interactively when the run finishes")
	fs.String("metrics-textfile", "", "Write Prometheus counters to this file after the run")
	fs.String("log-level", config.DefaultLogLevel, "Diagnostics log level: debug, info, warn, error")
}
