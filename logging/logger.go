package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Logger = logrus.New()

type Options struct {
	File       string
	Level      string
	Stdout     bool
	SystemName string
}

// CustomFormatter renders one line per entry. Fields follow the message in
// key order.
type CustomFormatter struct {
	SystemName string
}

func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	fmt.Fprintf(b, "Date: %s, Time: %s, Event Source: %s, Event Type: %s, Event ID: %s, Message: %s",
		entry.Time.Format("2006-01-02"),
		entry.Time.Format("15:04:05"),
		f.SystemName,
		strings.ToUpper(entry.Level.String()),
		uuid.NewString(),
		entry.Message,
	)

	keys := make([]string, 0, len(entry.Data))
	for key := range entry.Data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(b, ", %s: %v", key, entry.Data[key])
	}

	if entry.HasCaller() {
		fmt.Fprintf(b, ", Location: %s:%d in %s", entry.Caller.File, entry.Caller.Line, entry.Caller.Function)
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

// InitLogger points Logger at a rotating log file, optionally mirrored to stdout.
func InitLogger(opts Options) error {
	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		return fmt.Errorf("parsing log level %q: %w", opts.Level, err)
	}

	if dir := filepath.Dir(opts.File); dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
	}

	logFile := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}

	var out io.Writer = logFile
	if opts.Stdout {
		out = io.MultiWriter(logFile, os.Stdout)
	}
	Logger.SetOutput(out)

	Logger.SetFormatter(&CustomFormatter{SystemName: opts.SystemName})

	Logger.SetLevel(level)
	Logger.SetReportCaller(true)
	return nil
}
