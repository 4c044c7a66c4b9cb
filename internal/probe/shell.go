// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"context"
	"fmt"
	"os/exec"
	"slices"
	"strings"

	"github.com/go-logr/logr"
	"github.com/ironcore-dev/inventory-probe/internal/api/inventory"
)

// Runner starts a program and returns its combined stdout and stderr.
type Runner interface {
	CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

// NewExecRunner returns a Runner backed by os/exec. The child is always waited
// on before CombinedOutput returns.
func NewExecRunner() Runner {
	return execRunner{}
}

func (execRunner) CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Shell hands a command string to a fixed interpreter invocation, e.g.
// `powershell -NoProfile -Command <command>`.
type Shell struct {
	Program string
	Args    []string
	runner  Runner
	log     logr.Logger
}

// NewShell creates a Shell that runs commands as `program args... <command>`.
func NewShell(log logr.Logger, runner Runner, program string, args ...string) *Shell {
	return &Shell{
		Program: program,
		Args:    args,
		runner:  runner,
		log:     log,
	}
}

// NewPowerShell creates the management shell used for CIM queries.
func NewPowerShell(log logr.Logger, runner Runner) *Shell {
	return NewShell(log, runner, "powershell", "-NoProfile", "-NonInteractive", "-Command")
}

// Query runs command and returns its output with invalid UTF-8 dropped and
// surrounding whitespace removed. Any failure to run the command, including a
// non-zero exit, yields an unavailable field that renders as
// inventory.NotAvailable.
func (s *Shell) Query(ctx context.Context, command string) inventory.Field[string] {
	args := append(slices.Clone(s.Args), command)
	out, err := s.runner.CombinedOutput(ctx, s.Program, args...)
	if err != nil {
		err = fmt.Errorf("failed to run %s %q: %w", s.Program, command, err)
		s.log.V(1).Info("Command failed", "command", command, "error", err.Error())
		return inventory.Unavailable[string](err)
	}
	return inventory.Available(strings.TrimSpace(strings.ToValidUTF8(string(out), "")))
}
