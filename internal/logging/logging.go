// Package logging builds the audit logger. The core logs every successful
// mutation; the CLI points the sink at carbnb.log inside the data
// directory, keeping library use silent by default.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// NewFileLogger returns a sugared logger writing JSON entries to the given
// file path, creating the file if needed.
func NewFileLogger(path string) (*zap.SugaredLogger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}
	return logger.Sugar(), nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
