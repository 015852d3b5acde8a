// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"
	"os"
	"path"

	"github.com/akamensky/argparse"
	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	ilogging "github.com/ava-labs/seqlist/internal/logging"
	"github.com/ava-labs/seqlist/utils"
)

const simulatorFolder = ".seqsim"

type Simulator struct {
	log        logging.Logger
	logFactory *ilogging.Factory

	logLevel *string
	logDir   *string
}

// Execute parses [args], including the program name, and runs the command
// they select.
func (s *Simulator) Execute(ctx context.Context, args []string) error {
	parser := argparse.NewParser("seqsim", "Sequence simulator")
	s.logLevel = parser.String("", "log-level", &argparse.Options{
		Default: "info",
		Help:    "log level",
	})
	s.logDir = parser.String("", "log-dir", &argparse.Options{
		Help: "directory of the simulator logs (default $HOME/" + simulatorFolder + "/logs)",
	})

	cmds := []Cmd{
		&runCmd{},
		&interpreterCmd{},
		&serveCmd{},
	}
	for _, c := range cmds {
		c.New(parser)
	}

	if err := parser.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, parser.Usage(err))
		return err
	}

	if err := s.Init(); err != nil {
		return err
	}
	defer s.logFactory.Close()

	for _, c := range cmds {
		if c.Happened() {
			return c.Run(ctx, s.log)
		}
	}
	return ErrNoCommand
}

func (s *Simulator) Init() error {
	logDir := *s.logDir
	if len(logDir) == 0 {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		logDir, err = utils.InitSubDirectory(path.Join(homeDir, simulatorFolder), "logs")
		if err != nil {
			return err
		}
	}

	loggingConfig := logging.Config{}
	var err error
	loggingConfig.LogLevel, err = logging.ToLevel(*s.logLevel)
	if err != nil {
		return err
	}
	loggingConfig.Directory = logDir
	loggingConfig.LogFormat = logging.JSON
	loggingConfig.DisableWriterDisplaying = true

	s.logFactory = ilogging.NewFactory(loggingConfig)
	s.log, err = s.logFactory.Make("simulator")
	if err != nil {
		s.logFactory.Close()
		return err
	}

	s.log.Info("simulator initialized",
		zap.String("log-level", *s.logLevel),
		zap.String("log-dir", logDir),
	)
	return nil
}
