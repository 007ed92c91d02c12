// internal/logging/logging.go
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Graylog2/go-gelf/gelf"
	"github.com/rs/zerolog"
)

// ParseLevel переводит строковый уровень в zerolog.Level. Неизвестные значения дают info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "DISABLED", "OFF":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// New создаёт логгер с человекочитаемым выводом в w.
func New(w io.Writer, level string) zerolog.Logger {
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: w != os.Stderr}
	return zerolog.New(console).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// Open создаёт логгер для файла path. Пустой path означает stderr.
// Если задан graylogAddr (host:port), записи в JSON дублируются на GELF-сервер по UDP.
// Возвращаемая функция закрывает файл и соединение.
func Open(path, level, graylogAddr string) (zerolog.Logger, func() error, error) {
	var out io.Writer = os.Stderr
	closers := []io.Closer{}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closers = append(closers, f)
	}

	logger, closeSink, err := OpenWriter(out, level, graylogAddr)
	if err != nil {
		closeAll(closers)
		return zerolog.Nop(), nil, err
	}
	return logger, func() error {
		sinkErr := closeSink()
		if err := closeAll(closers); err != nil {
			return err
		}
		return sinkErr
	}, nil
}

// OpenWriter создаёт логгер с выводом в out и, если задан graylogAddr,
// копией записей на GELF-сервер. out = io.Discard оставляет только GELF.
// Возвращаемая функция закрывает соединение с сервером; out не закрывается.
func OpenWriter(out io.Writer, level, graylogAddr string) (zerolog.Logger, func() error, error) {
	w := out
	if out != io.Discard {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: out != os.Stderr}
	}
	closers := []io.Closer{}
	if graylogAddr != "" {
		gw, err := gelf.NewWriter(graylogAddr)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("failed to connect to graylog: %w", err)
		}
		if out == io.Discard {
			w = gw
		} else {
			w = zerolog.MultiLevelWriter(w, gw)
		}
		closers = append(closers, gw)
	}

	logger := zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger()
	return logger, func() error { return closeAll(closers) }, nil
}

func closeAll(closers []io.Closer) error {
	var first error
	for _, c := range closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
