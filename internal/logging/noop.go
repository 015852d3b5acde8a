// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"
)

var _ logging.Logger = (*Noop)(nil)

// Noop drops every message. It is the logger used when a caller does not
// supply one.
type Noop struct{}

// OrNoop returns [log], or a [Noop] if [log] is nil.
func OrNoop(log logging.Logger) logging.Logger {
	if log == nil {
		return &Noop{}
	}
	return log
}

func (*Noop) Write([]byte) (int, error)     { return 0, nil }
func (*Noop) Fatal(string, ...zap.Field)    {}
func (*Noop) Error(string, ...zap.Field)    {}
func (*Noop) Warn(string, ...zap.Field)     {}
func (*Noop) Info(string, ...zap.Field)     {}
func (*Noop) Trace(string, ...zap.Field)    {}
func (*Noop) Debug(string, ...zap.Field)    {}
func (*Noop) Verbo(string, ...zap.Field)    {}
func (*Noop) SetLevel(logging.Level)        {}
func (*Noop) Enabled(logging.Level) bool    { return false }
func (*Noop) StopOnPanic()                  {}
func (*Noop) RecoverAndPanic(func())        {}
func (*Noop) RecoverAndExit(func(), func()) {}
func (*Noop) Stop()                         {}
