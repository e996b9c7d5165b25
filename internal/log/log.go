// Copyright (c) 2025 The ai-pathfinder Authors.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

// InitLogger sets up Apex with a custom handler and a log level from the
// CAVEGEN_LOG env variable.
func InitLogger() {
	level := strings.ToLower(os.Getenv("CAVEGEN_LOG"))
	if level == "" {
		level = "error"
	}
	log.SetHandler(&CustomHandler{Writer: os.Stderr})

	// Unknown levels fall back to ERROR instead of panicking.
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.ErrorLevel
	}
	log.SetLevel(lvl)
}

// CustomHandler formats log messages and writes them to Writer, which
// defaults to stderr so command output on stdout stays parseable.
type CustomHandler struct {
	Writer io.Writer
	now    func() time.Time
}

// HandleLog implements the log.Handler interface
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	w := h.Writer
	if w == nil {
		w = os.Stderr
	}
	now := time.Now
	if h.now != nil {
		now = h.now
	}

	timestamp := now().Format("2006-01-02 15:04:05")
	level := strings.ToUpper(e.Level.String())
	_, err := fmt.Fprintf(w, "%s %.1s %s%s\n", timestamp, level, e.Message, fields(e.Fields))
	return err
}

func fields(f log.Fields) string {
	if len(f) == 0 {
		return ""
	}
	var b strings.Builder
	for _, name := range f.Names() {
		fmt.Fprintf(&b, " %s=%v", name, f.Get(name))
	}
	return b.String()
}
