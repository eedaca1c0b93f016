// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Logger defines the interface for diagnostic logging operations.
// The PKI core types themselves never log; only boundary codecs such as
// the pemfile parser emit diagnostics, and they default to [Nop].
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// StdLogger implements Logger using the standard log package.
// It writes human-readable lines without timestamps, suitable for
// command-line diagnostics.
type StdLogger struct{ logger *log.Logger }

// New creates a new StdLogger writing to stderr.
func New() *StdLogger {
	l := log.New(os.Stderr, "", 0)
	return &StdLogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (s *StdLogger) Printf(format string, v ...any) { s.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (s *StdLogger) Println(v ...any) { s.logger.Println(v...) }

// SetOutput sets the output destination for the logger.
func (s *StdLogger) SetOutput(w io.Writer) { s.logger.SetOutput(w) }

// JSONLogger implements Logger with one JSON object per line, for
// embedding into hosts that collect structured logs.
//
// JSONLogger is safe for concurrent use by multiple goroutines.
type JSONLogger struct {
	mu     sync.Mutex
	writer io.Writer
}

// NewJSONLogger creates a new JSONLogger writing to writer.
// A nil writer discards all output.
func NewJSONLogger(writer io.Writer) *JSONLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &JSONLogger{writer: writer}
}

// Printf formats and logs a structured message in JSON format.
//
// Printf is safe for concurrent use by multiple goroutines.
func (j *JSONLogger) Printf(format string, v ...any) {
	j.emit(fmt.Sprintf(format, v...))
}

// Println logs a structured message in JSON format.
//
// Println is safe for concurrent use by multiple goroutines.
func (j *JSONLogger) Println(v ...any) {
	j.emit(fmt.Sprint(v...))
}

func (j *JSONLogger) emit(msg string) {
	logEntry := map[string]any{
		"level":   "info",
		"message": msg,
	}

	data, _ := json.Marshal(logEntry)

	j.mu.Lock()
	fmt.Fprintln(j.writer, string(data))
	j.mu.Unlock()
}

// SetOutput sets the output destination for the JSON logger.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (j *JSONLogger) SetOutput(w io.Writer) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if w == nil {
		j.writer = io.Discard
	} else {
		j.writer = w
	}
}

// nopLogger discards everything.
type nopLogger struct{}

// Nop returns a Logger that discards all output. It is the default for
// library consumers that do not want diagnostics.
func Nop() Logger { return nopLogger{} }

func (nopLogger) Printf(string, ...any) {}
func (nopLogger) Println(...any)        {}
func (nopLogger) SetOutput(io.Writer)   {}
