package reporter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"testhelper/internal/domain"
	"testhelper/internal/sink"
	"testhelper/internal/ui"
)

func newTestSession(t *testing.T) (*Session, *sink.Buffer) {
	t.Helper()
	buf := sink.NewBuffer()
	s := NewSession(buf, ui.NewTextFormatter(false))
	require.NoError(t, s.Begin())
	return s, buf
}

func square(v int) int { return v * v }

func TestReport_MatchingValuesPass(t *testing.T) {
	s, buf := newTestSession(t)
	r := s.NewReporter("square()", "basic fixed value test")

	for _, v := range []int{-3, 0, 1, 7, 46340} {
		passedBefore, failedBefore := r.Passed(), r.Failed()
		ok := Report(r, v*v, square(v))

		assert.True(t, ok)
		assert.Equal(t, passedBefore+1, r.Passed())
		assert.Equal(t, failedBefore, r.Failed())
	}
	assert.Len(t, buf.Lines(), 5)
}

func TestReport_MismatchFails(t *testing.T) {
	s, buf := newTestSession(t)
	r := s.NewReporter("mismatch", "")

	pairs := [][2]int{{1, 2}, {5, 4}, {-1, 1}}
	for _, p := range pairs {
		ok := Report(r, p[0], p[1])
		assert.False(t, ok)
	}
	assert.Equal(t, 0, r.Passed())
	assert.Equal(t, len(pairs), r.Failed())
	assert.Equal(t, "[FAIL] mismatch: expected 5, actual 4", buf.Lines()[1])
}

func TestReport_LineContainsNameAndValues(t *testing.T) {
	s, buf := newTestSession(t)
	r := s.NewReporter("greeting", "")

	Report(r, "hello", "hello")
	require.Len(t, buf.Lines(), 1)
	assert.Equal(t, "[PASS] greeting: expected hello, actual hello", buf.Lines()[0])
}

func TestCompare_IsSilent(t *testing.T) {
	s, buf := newTestSession(t)
	r := s.NewReporter("silent", "")

	assert.True(t, Compare(r, 4, 4))
	assert.False(t, Compare(r, 4, 5))
	assert.Empty(t, buf.Lines())
	assert.Equal(t, 1, r.Passed())
	assert.Equal(t, 1, r.Failed())

	sum := r.Summary()
	require.Len(t, sum.Failures, 1)
	assert.Equal(t, domain.Comparison{Case: "silent", Index: 2, Expected: "4", Actual: "5", Silent: true}, sum.Failures[0])
}

func TestCount_MatchesComparisons(t *testing.T) {
	s, _ := newTestSession(t)
	r := s.NewReporter("count", "")

	const n = 25
	for i := 0; i < n; i++ {
		if i%3 == 0 {
			Report(r, i, i+1)
		} else if i%2 == 0 {
			Compare(r, i, i)
		} else {
			Report(r, i, i)
		}
	}
	assert.Equal(t, n, r.Count())
	assert.Equal(t, n, r.Passed()+r.Failed())
}

func TestFinishTest_Idempotent(t *testing.T) {
	s, buf := newTestSession(t)
	r := s.NewReporter("square()", "basic fixed value test")
	Report(r, 1, 1)
	Report(r, 2, 3)

	r.FinishTest()
	r.FinishTest()

	lines := buf.Lines()
	require.Len(t, lines, 4)
	assert.Equal(t, lines[2], lines[3])
	assert.Equal(t, "square() (basic fixed value test): 1/2 passed, 1 failed (50.0%)", lines[2])
	assert.Equal(t, 1, r.Passed())
	assert.Equal(t, 1, r.Failed())
	assert.Equal(t, 1, s.Totals().Cases, "a case is counted once")
}

func TestRecordPanic(t *testing.T) {
	s, buf := newTestSession(t)
	r := s.NewReporter("boom", "")

	r.RecordPanic("nil map")

	assert.Equal(t, 1, r.Failed())
	assert.Equal(t, "nil map", r.Summary().Panic)
	assert.Equal(t, "[FAIL] boom: expected no panic, actual panic: nil map", buf.Lines()[0])
}

func TestReporter_Metadata(t *testing.T) {
	s, _ := newTestSession(t)
	r := s.NewReporter("name", "desc")
	assert.Equal(t, "name", r.Name())
	assert.Equal(t, "desc", r.Description())
	assert.Zero(t, r.Count())
}

func TestReport_MultiLineValuesStayOnOneLine(t *testing.T) {
	var out strings.Builder
	s := NewSession(sink.NewWriterSink(&out), ui.NewTextFormatter(false))
	require.NoError(t, s.Begin())
	r := s.NewReporter("multi", "")

	assert.False(t, Report(r, "a\nb", "a\nc"))
	assert.True(t, Report(r, "tab\there", "tab\there"))

	assert.Equal(t,
		"[FAIL] multi: expected \"a\\nb\", actual \"a\\nc\"\n"+
			"[PASS] multi: expected \"tab\\there\", actual \"tab\\there\"\n",
		out.String())

	assert.Equal(t, `"a\nb"`, r.Summary().Failures[0].Expected)
}

func TestRecordPanic_MultiLineMessage(t *testing.T) {
	s, buf := newTestSession(t)
	r := s.NewReporter("boom", "")

	r.RecordPanic("line one\nline two")

	require.Len(t, buf.Lines(), 1)
	assert.Equal(t, `"line one\nline two"`, r.Summary().Panic)
}
