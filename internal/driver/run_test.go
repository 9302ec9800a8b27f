package driver_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takoeight0821/monkey/internal/driver"
	"github.com/takoeight0821/monkey/internal/lexer"
)

func TestRunSourcePretty(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	r := driver.NewRunner(&out)
	require.NoError(t, r.RunSource("let five = 5;"))

	expected := "LET,\nIDENT(five),\nASSIGN,\nINTEGER(5),\nSEMICOLON,\nend of file\n"
	if diff := cmp.Diff(expected, out.String()); diff != "" {
		t.Errorf("RunSource mismatch (-want +got):\n%s", diff)
	}
}

func TestRunSourceEmpty(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, driver.NewRunner(&out).RunSource(""))
	assert.Equal(t, driver.Trailer+"\n", out.String())
}

func TestRunSourceDebug(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	r := driver.NewRunner(&out, driver.WithFormat(driver.Debug))
	require.NoError(t, r.RunSource("x @"))

	expected := "{IDENT, \"x\", 1, <nil>}\n{ILLEGAL, \"@\", 1, <nil>}\nend of file\n"
	assert.Equal(t, expected, out.String())
}

func TestRunSourceGo(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	r := driver.NewRunner(&out, driver.WithFormat(driver.Go))
	require.NoError(t, r.RunSource("five"))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "token.Token{")
	assert.Contains(t, lines[0], `"five"`)
	assert.Equal(t, driver.Trailer, lines[1])
}

func TestRunSourceError(t *testing.T) {
	t.Parallel()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	var out bytes.Buffer
	r := driver.NewRunner(&out, driver.WithLogger(logger))
	err := r.RunSource("1 + 99999999999999999999")

	var invalid *lexer.InvalidIntegerError
	require.ErrorAs(t, err, &invalid)
	assert.True(t, strings.HasPrefix(err.Error(), "lex: "))
	assert.Equal(t, "INTEGER(1),\nPLUS,\n", out.String())

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "scan aborted", hook.LastEntry().Message)
	assert.Equal(t, 2, hook.LastEntry().Data["tokens"])
}

func TestRunSourceLogsIllegal(t *testing.T) {
	t.Parallel()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	var out bytes.Buffer
	require.NoError(t, driver.NewRunner(&out, driver.WithLogger(logger)).RunSource("a @ b"))

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "illegal character", entries[0].Message)
	assert.Equal(t, "@", entries[0].Data["char"])
	assert.Equal(t, 3, entries[1].Data["tokens"])
	assert.Equal(t, 1, entries[1].Data["illegal"])
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, f := range []driver.Format{driver.Pretty, driver.Debug, driver.Go} {
		got, err := driver.ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := driver.ParseFormat("json")
	assert.Error(t, err)
}
