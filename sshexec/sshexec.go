// Copyright 2026 The go-misc Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sshexec runs commands on a remote host through the local ssh and
// scp binaries. It shells out rather than speaking the SSH protocol itself,
// so the user's ssh config, agent and known-hosts handling all apply
// unchanged.
package sshexec

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ledona/go-misc/logging"
)

// runCommand executes the assembled command line and returns its combined
// output. Swapped out in tests.
var runCommand = func(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// ExitError reports a remote command that ran but failed, with whatever
// output it produced.
type ExitError struct {
	Host   string
	Cmd    string
	Output string
	Err    error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("sshexec: %q on %s failed: %s: %s", e.Cmd, e.Host, e.Err, e.Output)
}

func (e *ExitError) Unwrap() error { return e.Err }

// Host identifies a remote endpoint for command execution.
type Host struct {
	// Addr is the host name or address, optionally prefixed user@.
	Addr string

	// Port overrides the ssh port when non-zero.
	Port int

	// IdentityFile is passed to ssh/scp with -i when set.
	IdentityFile string
}

// NewHost returns a Host for addr (optionally user@addr).
func NewHost(addr string) (*Host, error) {
	if addr == "" {
		return nil, errors.New("sshexec: host address is required")
	}
	return &Host{Addr: addr}, nil
}

func (h *Host) sshArgs() []string {
	var args []string
	if h.Port != 0 {
		args = append(args, "-p", fmt.Sprint(h.Port))
	}
	if h.IdentityFile != "" {
		args = append(args, "-i", h.IdentityFile)
	}
	return append(args, h.Addr)
}

func (h *Host) scpArgs() []string {
	var args []string
	if h.Port != 0 {
		// scp spells the port flag differently from ssh.
		args = append(args, "-P", fmt.Sprint(h.Port))
	}
	if h.IdentityFile != "" {
		args = append(args, "-i", h.IdentityFile)
	}
	return args
}

// Execute runs cmd on the host and returns its combined output. A non-zero
// exit comes back as an *ExitError carrying the output.
func (h *Host) Execute(ctx context.Context, cmd string) (string, error) {
	if cmd == "" {
		return "", errors.New("sshexec: command is required")
	}
	logging.Debugf(ctx, "sshexec: running %q on %s", cmd, h.Addr)
	out, err := runCommand(ctx, "ssh", append(h.sshArgs(), cmd)...)
	if err != nil {
		return "", &ExitError{Host: h.Addr, Cmd: cmd, Output: strings.TrimSpace(string(out)), Err: err}
	}
	return string(out), nil
}

// LS lists the contents of a remote directory, one entry per returned
// element. Hidden files are not included.
func (h *Host) LS(ctx context.Context, dir string) ([]string, error) {
	if dir == "" {
		dir = "."
	}
	out, err := h.Execute(ctx, "ls -1 "+shellQuote(dir))
	if err != nil {
		return nil, err
	}
	var names []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			names = append(names, line)
		}
	}
	return names, nil
}

// SCPTo copies a local file to remotePath on the host.
func (h *Host) SCPTo(ctx context.Context, localPath, remotePath string) error {
	return h.scp(ctx, localPath, h.Addr+":"+remotePath)
}

// SCPFrom copies remotePath on the host to a local file.
func (h *Host) SCPFrom(ctx context.Context, remotePath, localPath string) error {
	return h.scp(ctx, h.Addr+":"+remotePath, localPath)
}

func (h *Host) scp(ctx context.Context, src, dst string) error {
	if src == "" || dst == "" {
		return errors.New("sshexec: scp source and destination are required")
	}
	logging.Debugf(ctx, "sshexec: copying %s to %s", src, dst)
	out, err := runCommand(ctx, "scp", append(h.scpArgs(), src, dst)...)
	if err != nil {
		return &ExitError{
			Host: h.Addr, Cmd: fmt.Sprintf("scp %s %s", src, dst),
			Output: strings.TrimSpace(string(out)), Err: err,
		}
	}
	return nil
}

// shellQuote wraps s in single quotes for the remote shell.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
