package utils

import (
	"io"
	"os"

	"github.com/phuslu/log"
)

type LogConfig struct {
	Level   string
	File    string
	Maxsize int64
	Backups int
}

// NewLogger builds the run logger: colored console output on a terminal,
// JSON lines otherwise, or a rotating file when File is set.
func NewLogger(cfg LogConfig, stderr io.Writer, traceId string) log.Logger {
	var writer log.Writer
	switch {
	case cfg.File != "":
		writer = &log.FileWriter{
			Filename:     cfg.File,
			MaxSize:      cfg.Maxsize,
			MaxBackups:   cfg.Backups,
			LocalTime:    true,
			FileMode:     os.FileMode(0600),
			EnsureFolder: true,
		}
	case stderr == os.Stderr && log.IsTerminal(os.Stderr.Fd()):
		writer = &log.ConsoleWriter{
			Writer:         stderr,
			ColorOutput:    true,
			EndWithMessage: true,
		}
	default:
		writer = &log.IOWriter{Writer: stderr}
	}
	logger := log.Logger{
		Level:  log.ParseLevel(cfg.Level),
		Writer: writer,
	}
	if traceId != "" {
		logger.Context = log.NewContext(nil).Str("Identifier", traceId).Value()
	}
	return logger
}
