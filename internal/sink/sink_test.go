package sink

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("link down") }

func TestWriterSink_WriteLine(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriterSink(&buf)

	require.NoError(t, s.WriteLine("first"))
	require.NoError(t, s.WriteLine("second"))
	assert.Equal(t, "first\nsecond\n", buf.String())
}

func TestWriterSink_WriteError(t *testing.T) {
	s := NewWriterSink(failingWriter{})
	err := s.WriteLine("x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "link down")
}

func TestBuffer(t *testing.T) {
	b := NewBuffer()
	require.NoError(t, b.WriteLine("a"))
	require.NoError(t, b.WriteLine("b"))

	lines := b.Lines()
	assert.Equal(t, []string{"a", "b"}, lines)

	lines[0] = "changed"
	assert.Equal(t, "a", b.Lines()[0], "Lines must return a copy")
	assert.Equal(t, "a\nb", b.String())
}

func TestBuffer_Drain(t *testing.T) {
	b := NewBuffer()
	lw := NewLineWriter(b)
	_, err := lw.Write([]byte("TAP version 13\nok 1 - a\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"TAP version 13", "ok 1 - a"}, b.Drain())
	assert.Empty(t, b.Drain())
	assert.Empty(t, b.Lines())
}

func TestLineWriter(t *testing.T) {
	b := NewBuffer()
	lw := NewLineWriter(b)

	n, err := lw.Write([]byte("ok 1 - one\nok 2"))
	require.NoError(t, err)
	assert.Equal(t, 15, n)
	assert.Equal(t, []string{"ok 1 - one"}, b.Lines())

	_, err = lw.Write([]byte(" - two\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"ok 1 - one", "ok 2 - two"}, b.Lines())

	_, err = lw.Write([]byte("1..2"))
	require.NoError(t, err)
	require.NoError(t, lw.Flush())
	assert.Equal(t, []string{"ok 1 - one", "ok 2 - two", "1..2"}, b.Lines())

	require.NoError(t, lw.Flush(), "flushing an empty buffer is a no-op")
	assert.Len(t, b.Lines(), 3)
}

func TestOpen(t *testing.T) {
	t.Run("well-known targets", func(t *testing.T) {
		for _, target := range []string{"", "stdout", "STDERR", "none"} {
			s, closeFn, err := Open(target)
			require.NoError(t, err, target)
			require.NotNil(t, s)
			require.NoError(t, closeFn())
		}
	})

	t.Run("none discards", func(t *testing.T) {
		s, _, err := Open("none")
		require.NoError(t, err)
		assert.IsType(t, Nop{}, s)
	})

	t.Run("file path is created and appended", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out", "results.txt")

		s, closeFn, err := Open(path)
		require.NoError(t, err)
		require.NoError(t, s.WriteLine("one"))
		require.NoError(t, closeFn())

		s, closeFn, err = Open(path)
		require.NoError(t, err)
		require.NoError(t, s.WriteLine("two"))
		require.NoError(t, closeFn())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "one\ntwo\n", string(data))
	})

	t.Run("directory is rejected", func(t *testing.T) {
		_, closeFn, err := Open(t.TempDir())
		require.Error(t, err)
		require.NotNil(t, closeFn)
	})
}
