package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// ConsoleHook mirrors entries to the console alongside the file sink.
// Warnings and worse go to stderr, everything else to stdout.
type ConsoleHook struct {
	out    io.Writer
	errOut io.Writer
}

func NewConsoleHook() *ConsoleHook {
	return &ConsoleHook{out: os.Stdout, errOut: os.Stderr}
}

func (h *ConsoleHook) Fire(entry *logrus.Entry) error {
	line, err := entry.Logger.Formatter.Format(entry)
	if err != nil {
		return err
	}

	w := h.out
	if entry.Level <= logrus.WarnLevel {
		w = h.errOut
	}
	_, err = w.Write(line)
	return err
}

func (h *ConsoleHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
