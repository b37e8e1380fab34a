package config

const (
	// DefaultOutput is where result lines go
	DefaultOutput = "stdout"
	// DefaultFormat is the result line format
	DefaultFormat = FormatText
	// DefaultLogLevel is the diagnostics log level
	DefaultLogLevel = "warn"
	// DefaultEnvFile is loaded into the environment when present
	DefaultEnvFile = ".env"
	// EnvPrefix prefixes every environment override, e.g. TESTHELPER_FORMAT
	EnvPrefix = "TESTHELPER"
)

const (
	// FormatText is the human-readable line format
	FormatText = "text"
	// FormatTAP is TAP version 13
	FormatTAP = "tap"
)

// Formats lists the accepted output formats
var Formats = []string{FormatText, FormatTAP}
