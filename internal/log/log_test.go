// Copyright (c) 2025 The ai-pathfinder Authors.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"bytes"
	"testing"
	"time"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
)

func TestCustomHandler(t *testing.T) {
	var b bytes.Buffer
	h := &CustomHandler{
		Writer: &b,
		now:    func() time.Time { return time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC) },
	}

	logger := &log.Logger{Handler: h, Level: log.DebugLevel}
	logger.Debug("placing caverns")
	logger.WithField("count", 3).Warn("slow placement")

	assert.Equal(t,
		"2025-03-04 05:06:07 D placing caverns\n"+
			"2025-03-04 05:06:07 W slow placement count=3\n",
		b.String())
}

func TestInitLogger(t *testing.T) {
	defer log.SetLevel(log.ErrorLevel)

	t.Setenv("CAVEGEN_LOG", "debug")
	InitLogger()
	assert.Equal(t, log.DebugLevel, log.Log.(*log.Logger).Level)

	t.Setenv("CAVEGEN_LOG", "")
	InitLogger()
	assert.Equal(t, log.ErrorLevel, log.Log.(*log.Logger).Level)

	t.Setenv("CAVEGEN_LOG", "chatty")
	InitLogger()
	assert.Equal(t, log.ErrorLevel, log.Log.(*log.Logger).Level)
}
