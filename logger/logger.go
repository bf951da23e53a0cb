// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package logger builds the loggers
// used by the commands.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger
// that writes into the standard error.
// If verbose is true,
// debug messages are also written.
func New(verbose bool) *zap.Logger {
	return NewWriter(os.Stderr, verbose)
}

// NewWriter returns a console logger
// that writes into w.
func NewWriter(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	cfg.CallerKey = ""
	enc := zapcore.NewConsoleEncoder(cfg)

	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)
	return zap.New(core)
}
