package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T, level string) (*Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	l := &Logger{}
	l.InitWithWriter(buf, level)
	return l, buf
}

func TestInfoWritesJSON(t *testing.T) {
	l, buf := newTestLogger(t, "Info")

	l.Info("hello")

	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), `"level":"info"`)
}

func TestLevelFiltersDebug(t *testing.T) {
	l, buf := newTestLogger(t, "Warn")

	l.Debug("debug line")
	l.Info("info line")
	l.Warn("warn line")

	assert.NotContains(t, buf.String(), "debug line")
	assert.NotContains(t, buf.String(), "info line")
	assert.Contains(t, buf.String(), "warn line")
}

func TestWithMatch(t *testing.T) {
	l, buf := newTestLogger(t, "Info")

	l.WithMatch("abc").WithField("left", 3).Info("Left scores! 3 - 1")

	assert.Contains(t, buf.String(), `"match":"abc"`)
	assert.Contains(t, buf.String(), `"left":3`)
	assert.Contains(t, buf.String(), `"msg":"Left scores! 3 - 1"`)
}

func TestFatalExits(t *testing.T) {
	l, buf := newTestLogger(t, "Info")
	std := logrus.StandardLogger()
	exitFunc := std.ExitFunc
	t.Cleanup(func() { std.ExitFunc = exitFunc })

	code := -1
	std.ExitFunc = func(c int) { code = c }

	l.Fatal("screen failed")

	assert.Equal(t, 1, code, "Fatal should exit with status 1")
	assert.Contains(t, buf.String(), `"level":"fatal"`)
	assert.Contains(t, buf.String(), "screen failed")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.TraceLevel, parseLevel("Trace"))
	assert.Equal(t, logrus.InfoLevel, parseLevel("Info"))
	assert.Equal(t, logrus.WarnLevel, parseLevel("Warn"))
	assert.Equal(t, logrus.ErrorLevel, parseLevel("Error"))
	assert.Equal(t, logrus.FatalLevel, parseLevel("Fatal"))
	assert.Equal(t, logrus.DebugLevel, parseLevel("whatever"), "Unknown levels should fall back to Debug")
}

func TestInitFromProperties(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "pong.log")
	path := filepath.Join(dir, "logger.properties")
	require.NoError(t, os.WriteFile(path, []byte("logFilename="+logFile+"\nlevel=Info\n"), 0o644))

	l := &Logger{}
	require.NoError(t, l.Init(path))
	l.Info("match started")

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "match started")
}

func TestInitMissingProperties(t *testing.T) {
	props, err := readLoggerProperties(filepath.Join(t.TempDir(), "missing.properties"))

	assert.Error(t, err)
	assert.Equal(t, "pong.log", props.logFilename, "Defaults should be used")
	assert.Equal(t, "Info", props.level)
	assert.Equal(t, 10, props.maxSize)
}
