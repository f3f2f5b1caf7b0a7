package logger

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = &Logger{echo: true}

type Logger struct {
	echo bool
}

type properties struct {
	logFilename  string
	maxSize      int
	maxBackups   int
	maxAge       int
	compressFlag bool
	level        string
}

func readLoggerProperties(path string) (properties, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("properties")
	v.SetDefault("logFilename", "pong.log")
	v.SetDefault("maxSize", 10)
	v.SetDefault("maxBackups", 3)
	v.SetDefault("maxAge", 28)
	v.SetDefault("compress", false)
	v.SetDefault("level", "Info")

	err := v.ReadInConfig()
	if err != nil {
		err = fmt.Errorf("read logger properties %s: %w", path, err)
	}

	return properties{
		logFilename:  cast.ToString(v.Get("logFilename")),
		maxSize:      cast.ToInt(v.Get("maxSize")),
		maxBackups:   cast.ToInt(v.Get("maxBackups")),
		maxAge:       cast.ToInt(v.Get("maxAge")),
		compressFlag: cast.ToBool(v.Get("compress")),
		level:        cast.ToString(v.Get("level")),
	}, err
}

// Init points logrus at a rotating file described by the properties file at path.
// A missing file is not fatal: defaults are used and the error is returned for reporting.
func (l *Logger) Init(path string) error {
	props, err := readLoggerProperties(path)

	l.InitWithWriter(&lumberjack.Logger{
		Filename:   props.logFilename,
		MaxSize:    props.maxSize,
		MaxBackups: props.maxBackups,
		MaxAge:     props.maxAge,
		Compress:   props.compressFlag,
	}, props.level)

	return err
}

func (l *Logger) InitWithWriter(w io.Writer, level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(w)
	logrus.SetLevel(parseLevel(level))
}

func parseLevel(level string) logrus.Level {
	switch level {

	case "Trace":
		return logrus.TraceLevel

	case "Info":
		return logrus.InfoLevel

	case "Warn":
		return logrus.WarnLevel

	case "Error":
		return logrus.ErrorLevel

	case "Fatal":
		return logrus.FatalLevel

	default:
		return logrus.DebugLevel
	}
}

// SetEcho turns the stdout copy of every message on or off. It must be off while
// the terminal screen owns stdout.
func (l *Logger) SetEcho(echo bool) {
	l.echo = echo
}

// WithMatch returns an entry tagged with the match id.
func (l *Logger) WithMatch(id string) *logrus.Entry {
	return logrus.WithField("match", id)
}

func (l *Logger) print(prefix, message string) {
	if l.echo {
		fmt.Println(prefix, message)
	}
}

func (l *Logger) Info(message string) {
	logrus.Info(message)
	l.print("Info:", message)
}

func (l *Logger) Error(message string) {
	logrus.Error(message)
	l.print("Error:", message)
}

func (l *Logger) Debug(message string) {
	logrus.Debug(message)
	l.print("Debug:", message)
}

func (l *Logger) Warn(message string) {
	logrus.Warn(message)
	l.print("Warn:", message)
}

// Fatal logs and exits the process with status 1.
func (l *Logger) Fatal(message string) {
	l.print("Fatal:", message)
	logrus.Fatal(message)
}
