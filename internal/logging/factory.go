// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/ava-labs/avalanchego/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Factory creates named loggers that write to a rotating file in
// [logging.Config.Directory] and, unless DisableWriterDisplaying is set, to
// stderr.
//
// AvalancheGo's factory always writes to stdout, which would interleave log
// lines with the JSON responses the CLI prints there.
type Factory struct {
	config logging.Config

	lock    sync.Mutex
	loggers map[string]logging.Logger
}

func NewFactory(config logging.Config) *Factory {
	return &Factory{
		config:  config,
		loggers: make(map[string]logging.Logger),
	}
}

// Make returns a new logger called [name].
func (f *Factory) Make(name string) (logging.Logger, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	if _, ok := f.loggers[name]; ok {
		return nil, fmt.Errorf("logger with name %q already exists", name)
	}
	config := f.config
	config.LoggerName = name

	var consoleWriter io.WriteCloser = os.Stderr
	if config.DisableWriterDisplaying {
		consoleWriter = discardWriteCloser{io.Discard}
	}
	consoleCore := logging.NewWrappedCore(config.DisplayLevel, consoleWriter, logging.Colors.ConsoleEncoder())
	consoleCore.WriterDisabled = config.DisableWriterDisplaying

	cores := []logging.WrappedCore{consoleCore}
	if len(config.Directory) > 0 {
		rw := &lumberjack.Logger{
			Filename:   filepath.Join(config.Directory, name+".log"),
			MaxSize:    config.MaxSize,  // megabytes
			MaxAge:     config.MaxAge,   // days
			MaxBackups: config.MaxFiles, // files
			Compress:   config.Compress,
		}
		cores = append(cores, logging.NewWrappedCore(config.LogLevel, rw, config.LogFormat.FileEncoder()))
	}

	l := logging.NewLogger(config.LogFormat.WrapPrefix(config.MsgPrefix), cores...)
	f.loggers[name] = l
	return l, nil
}

// SetLevel changes the level of every logger made by f.
func (f *Factory) SetLevel(level logging.Level) {
	f.lock.Lock()
	defer f.lock.Unlock()

	for _, l := range f.loggers {
		l.SetLevel(level)
	}
}

// Close stops every logger made by f.
func (f *Factory) Close() {
	f.lock.Lock()
	defer f.lock.Unlock()

	for _, l := range f.loggers {
		l.Stop()
	}
	f.loggers = nil
}

type discardWriteCloser struct {
	io.Writer
}

func (discardWriteCloser) Close() error {
	return nil
}
