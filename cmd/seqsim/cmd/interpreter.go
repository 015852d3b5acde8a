// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/akamensky/argparse"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/manifoldco/promptui"
	"github.com/mattn/go-shellwords"
	"go.uber.org/zap"

	"github.com/ava-labs/seqlist/cmd/seqsim/session"
	"github.com/ava-labs/seqlist/utils"
)

const (
	helpCommand = "help"
	exitCommand = "exit"
	quitCommand = "quit"
)

var _ Cmd = (*interpreterCmd)(nil)

type interpreterCmd struct {
	cmd *argparse.Command

	interactive *bool

	in  io.Reader
	out io.Writer
}

func (c *interpreterCmd) New(parser *argparse.Parser) {
	c.cmd = parser.NewCommand("interpreter", "Read operations from a buffered stdin, one per line")
	c.interactive = c.cmd.Flag("i", "interactive", &argparse.Options{
		Help: "prompt for each operation",
	})
	c.in = os.Stdin
	c.out = os.Stdout
}

func (c *interpreterCmd) Run(ctx context.Context, log logging.Logger) error {
	s := session.New()
	if *c.interactive {
		utils.Outf("{{cyan}}operations:{{/}}\n%s", session.Usage())
		return c.prompt(ctx, log, s)
	}
	return c.scan(ctx, log, s)
}

func (c *interpreterCmd) Happened() bool {
	return c.cmd.Happened()
}

func (c *interpreterCmd) scan(ctx context.Context, log logging.Logger, s *session.Session) error {
	scanner := bufio.NewScanner(c.in)
	for id := 0; scanner.Scan(); id++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		stop, err := c.exec(log, s, id, scanner.Text())
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}
	return scanner.Err()
}

func (c *interpreterCmd) prompt(ctx context.Context, log logging.Logger, s *session.Session) error {
	p := promptui.Prompt{
		Label:    "seqsim",
		Validate: validateLine,
	}
	for id := 0; ; id++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := p.Run()
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return nil
		}
		if err != nil {
			return err
		}
		stop, err := c.exec(log, s, id, line)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}
}

func isCommand(name string) bool {
	return name == helpCommand || name == exitCommand || name == quitCommand
}

// validateLine accepts empty lines, interpreter commands and lines starting
// with a known operation.
func validateLine(line string) error {
	tokens, err := shellwords.Parse(line)
	if err != nil {
		return err
	}
	if len(tokens) == 0 || isCommand(tokens[0]) || session.IsOp(tokens[0]) {
		return nil
	}
	return fmt.Errorf("%w: %q", session.ErrUnknownOp, tokens[0])
}

// exec runs one line. It returns true once the user asks to stop.
func (c *interpreterCmd) exec(log logging.Logger, s *session.Session, id int, line string) (bool, error) {
	line = strings.TrimSpace(line)
	if len(line) == 0 || strings.HasPrefix(line, "#") {
		return false, nil
	}

	tokens, err := shellwords.Parse(line)
	if err != nil {
		resp := newResponse(id, "", line)
		resp.setResult(nil, err)
		return false, resp.Print(c.out)
	}
	switch tokens[0] {
	case exitCommand, quitCommand:
		return true, nil
	case helpCommand:
		_, err := io.WriteString(c.out, session.Usage())
		return false, err
	}

	op := tokens[0]
	resp := newResponse(id, "", op)
	args, err := session.ParseValues(tokens[1:])
	if err != nil {
		resp.setResult(nil, err)
		return false, resp.Print(c.out)
	}
	log.Debug("interpreter",
		zap.String("op", op),
		zap.Any("args", args),
	)
	resp.setResult(s.Do(session.Op(op), args))
	return false, resp.Print(c.out)
}
