package sink

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Sink receives human-readable result lines
type Sink interface {
	WriteLine(line string) error
}

// WriterSink writes each line to an io.Writer followed by a newline
type WriterSink struct {
	w io.Writer
}

// NewWriterSink creates a Sink backed by w
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// WriteLine writes line and a trailing newline
func (s *WriterSink) WriteLine(line string) error {
	if _, err := io.WriteString(s.w, line+"\n"); err != nil {
		return fmt.Errorf("write line: %w", err)
	}
	return nil
}

// Nop discards every line
type Nop struct{}

// WriteLine does nothing
func (Nop) WriteLine(string) error { return nil }

// Buffer keeps lines in memory
type Buffer struct {
	mu    sync.Mutex
	lines []string
}

// NewBuffer creates an empty Buffer
func NewBuffer() *Buffer {
	return &Buffer{}
}

// WriteLine appends line
func (b *Buffer) WriteLine(line string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = append(b.lines, line)
	return nil
}

// Lines returns a copy of the written lines
func (b *Buffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Drain returns the written lines and empties the buffer
func (b *Buffer) Drain() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.lines
	b.lines = nil
	return out
}

// String returns the lines joined with newlines
func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}

// LineWriter adapts a Sink to io.Writer. Bytes are buffered until a newline
// arrives; Flush forwards a trailing partial line.
type LineWriter struct {
	sink Sink
	buf  bytes.Buffer
}

// NewLineWriter creates a LineWriter that forwards complete lines to s
func NewLineWriter(s Sink) *LineWriter {
	return &LineWriter{sink: s}
}

// Write implements io.Writer
func (lw *LineWriter) Write(p []byte) (int, error) {
	lw.buf.Write(p)
	for {
		i := bytes.IndexByte(lw.buf.Bytes(), '\n')
		if i < 0 {
			break
		}
		line := string(lw.buf.Next(i + 1))
		if err := lw.sink.WriteLine(strings.TrimRight(line, "\r\n")); err != nil {
			return len(p), err
		}
	}
	return len(p), nil
}

// Flush writes any buffered partial line
func (lw *LineWriter) Flush() error {
	if lw.buf.Len() == 0 {
		return nil
	}
	line := lw.buf.String()
	lw.buf.Reset()
	return lw.sink.WriteLine(line)
}
