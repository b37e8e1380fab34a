package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// TargetStdout writes lines to standard output
	TargetStdout = "stdout"
	// TargetStderr writes lines to standard error
	TargetStderr = "stderr"
	// TargetNone discards lines
	TargetNone = "none"
)

// Open resolves an output target to a Sink. Any target other than the
// well-known names is treated as a path; the file (or an OS-configured
// character device such as a serial port) is opened for appending. The
// returned close func is never nil.
func Open(target string) (Sink, func() error, error) {
	noClose := func() error { return nil }

	switch strings.ToLower(strings.TrimSpace(target)) {
	case "", TargetStdout:
		return NewWriterSink(os.Stdout), noClose, nil
	case TargetStderr:
		return NewWriterSink(os.Stderr), noClose, nil
	case TargetNone:
		return Nop{}, noClose, nil
	}

	path := filepath.Clean(target)
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return nil, noClose, fmt.Errorf("output target is a directory: %s", path)
	case err != nil && !os.IsNotExist(err):
		return nil, noClose, fmt.Errorf("stat output target %s: %w", path, err)
	case os.IsNotExist(err):
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, noClose, fmt.Errorf("create output dir: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, noClose, fmt.Errorf("open output target %s: %w", path, err)
	}
	return NewWriterSink(f), f.Close, nil
}
