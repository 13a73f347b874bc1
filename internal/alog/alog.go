// Copyright (c) 2023, The AFC Engine Authors.
// All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are met:
// 1. Redistributions of source code must retain the above copyright
//    notice, this list of conditions and the following disclaimer.
// 2. Redistributions in binary form must reproduce the above copyright
//    notice, this list of conditions and the following disclaimer in the
//    documentation and/or other materials provided with the distribution.
// 3. Neither the name of the copyright holder nor the
//    names of its contributors may be used to endorse or promote products
//    derived from this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
// AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
// IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
// ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
// LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
// CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
// SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
// INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
// CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
// ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
// POSSIBILITY OF SUCH DAMAGE.

// Package alog is the engine's structured-logging wrapper, adapted from
// the simulator's zap-based logger: a package-level level-filtered logger
// for engine startup/shutdown, plus a per-analysis derived logger carrying
// a correlation ID so every line from one RLAN analysis can be grepped
// together. Where the logs actually end up (stderr, a file, a shipping
// agent) is a sink concern left to the operator's zap config, not this
// package.
package alog

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level mirrors zap's level but keeps the engine's call sites decoupled
// from the zap import outside this package.
type Level int8

const (
	DebugLevel Level = -1
	InfoLevel  Level = 0
	WarnLevel  Level = 1
	ErrorLevel Level = 2
)

var (
	mu        sync.Mutex
	base      *zap.Logger
	curLevel  zap.AtomicLevel
)

func init() {
	curLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	cfg := zap.Config{
		Level:            curLevel,
		Development:      false,
		Encoding:         "console",
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:    "message",
			LevelKey:      "level",
			TimeKey:       "ts",
			EncodeLevel:   zapcore.CapitalLevelEncoder,
			EncodeTime:    zapcore.ISO8601TimeEncoder,
			LineEnding:    zapcore.DefaultLineEnding,
		},
	}
	l, err := cfg.Build()
	if err != nil {
		// zap config here is a fixed literal; a build failure means this
		// package itself is broken, not a runtime condition callers can
		// recover from.
		_, _ = os.Stderr.WriteString("alog: failed to build logger: " + err.Error() + "\n")
		l = zap.NewNop()
	}
	base = l
}

// SetLevel adjusts the process-wide minimum log level.
func SetLevel(lv Level) {
	mu.Lock()
	defer mu.Unlock()
	switch lv {
	case DebugLevel:
		curLevel.SetLevel(zapcore.DebugLevel)
	case WarnLevel:
		curLevel.SetLevel(zapcore.WarnLevel)
	case ErrorLevel:
		curLevel.SetLevel(zapcore.ErrorLevel)
	default:
		curLevel.SetLevel(zapcore.InfoLevel)
	}
}

// Logger is the interface the rest of the engine logs through; callers get
// one via Base() or For(correlationID).
type Logger struct {
	z *zap.Logger
}

// Base returns the process-wide logger, unscoped to any analysis.
func Base() *Logger { return &Logger{z: base} }

// For returns a logger derived from Base that stamps every line with the
// given analysis correlation ID.
func For(correlationID string) *Logger {
	return &Logger{z: base.With(zap.String("analysis_id", correlationID))}
}

func (l *Logger) Debug(msg string, kv ...interface{}) { l.z.Sugar().Debugw(msg, kv...) }
func (l *Logger) Info(msg string, kv ...interface{})  { l.z.Sugar().Infow(msg, kv...) }
func (l *Logger) Warn(msg string, kv ...interface{})  { l.z.Sugar().Warnw(msg, kv...) }
func (l *Logger) Error(msg string, kv ...interface{}) { l.z.Sugar().Errorw(msg, kv...) }

// Sync flushes any buffered log entries; call it before process exit.
func Sync() {
	_ = base.Sync()
}
