// Package jsonlog emits one JSON object per log line. Small on purpose:
// structured enough to grep and ship, nothing more.
package jsonlog

import (
	"encoding/json"
	"io"
	"log"
	"time"
)

type Fields map[string]any

type Logger struct {
	base *log.Logger
	app  string
}

// New returns a logger writing to w. app, when non-empty, is stamped on
// every line.
func New(w io.Writer, app string) *Logger {
	return &Logger{
		base: log.New(w, "", 0), // no prefix; we emit JSON ourselves
		app:  app,
	}
}

func (l *Logger) Info(msg string, fields Fields)  { l.emit("INFO", msg, fields) }
func (l *Logger) Warn(msg string, fields Fields)  { l.emit("WARN", msg, fields) }
func (l *Logger) Error(msg string, fields Fields) { l.emit("ERROR", msg, fields) }

func (l *Logger) emit(level, msg string, fields Fields) {
	m := make(map[string]any, 4+len(fields))
	m["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	m["level"] = level
	m["msg"] = msg
	if l.app != "" {
		m["app"] = l.app
	}
	for k, v := range fields {
		m[k] = v
	}
	b, _ := json.Marshal(m)
	l.base.Print(string(b))
}
