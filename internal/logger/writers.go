package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newFormatWriter wraps output according to the log format.
// JSON is written as-is; console and text go through zerolog.ConsoleWriter.
func newFormatWriter(output io.Writer, format LogFormat, noColor bool) io.Writer {
	switch format {
	case FormatJSON:
		return output
	case FormatText:
		noColor = true
	}
	return zerolog.ConsoleWriter{
		Out:        output,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}
}

// newConsoleWriter creates the stderr writer (or the configured override)
func newConsoleWriter(cfg LoggerConfig) io.Writer {
	out := cfg.ConsoleOutput
	noColor := false
	if out == nil {
		out = os.Stderr
	} else {
		noColor = true
	}
	return newFormatWriter(out, cfg.Format, noColor)
}

// newFileWriter creates a rotating file writer. Colors are never written to files.
func newFileWriter(cfg LoggerConfig) (io.Writer, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
		return nil, nil, err
	}

	lj := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		LocalTime:  true,
	}
	return newFormatWriter(lj, cfg.Format, true), lj, nil
}
