// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package obslog wraps go.uber.org/zap behind a thin
// Debugf/Infof/Warnf/Errorf surface so call sites never depend on zap
// directly.
package obslog

import "go.uber.org/zap"

// Helper is a leveled logger handed down into decoder, walker and
// index-sink code.
type Helper struct {
	sugar *zap.SugaredLogger
}

// NewHelper wraps a zap.Logger. A nil logger produces a Helper that
// discards all output, which is the default used when a caller doesn't
// supply one (no log.NewFilter(level=Error)-by-default surprise).
func NewHelper(logger *zap.Logger) *Helper {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Helper{sugar: logger.Sugar()}
}

// NewProduction builds a Helper backed by zap's production JSON config.
func NewProduction() (*Helper, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return NewHelper(logger), nil
}

// NewDevelopment builds a Helper backed by zap's human-readable console
// config, used by the CLI's --verbose flag.
func NewDevelopment() (*Helper, error) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return NewHelper(logger), nil
}

func (h *Helper) Debugf(format string, args ...interface{}) { h.sugar.Debugf(format, args...) }
func (h *Helper) Infof(format string, args ...interface{})  { h.sugar.Infof(format, args...) }
func (h *Helper) Warnf(format string, args ...interface{})  { h.sugar.Warnf(format, args...) }
func (h *Helper) Errorf(format string, args ...interface{}) { h.sugar.Errorf(format, args...) }

// Sync flushes any buffered log entries, to be called before process exit.
func (h *Helper) Sync() error { return h.sugar.Sync() }
