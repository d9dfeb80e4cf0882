package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"dapka/internal/lib"
)

// CommandError is returned when an external command exits with a non-zero code.
type CommandError struct {
	Command  string
	ExitCode int
	Stdout   string
	Stderr   string
}

func (e *CommandError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		msg = strings.TrimSpace(e.Stdout)
	}
	return fmt.Sprintf("command %q exited with code %d: %s", e.Command, e.ExitCode, msg)
}

// Runner executes external programs synchronously, one at a time.
type Runner struct {
	log     *slog.Logger
	timeout time.Duration
}

// New returns a Runner. A zero timeout means commands may run forever.
func New(log *slog.Logger, timeout time.Duration) *Runner {
	return &Runner{
		log:     log,
		timeout: timeout,
	}
}

// Run executes name with args and returns its stdout.
func (r *Runner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	const op = "runner.Run"

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	command := strings.Join(append([]string{name}, args...), " ")
	log := r.log.With(slog.String("op", op), slog.String("command", command))
	log.Debug("running external command")

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	log.Debug("external command finished", slog.Duration("elapsed", time.Since(start)))

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, lib.Err(op, fmt.Errorf("command %q: %w", command, ctxErr))
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &CommandError{
				Command:  command,
				ExitCode: exitErr.ExitCode(),
				Stdout:   stdout.String(),
				Stderr:   stderr.String(),
			}
		}
		return nil, lib.Err(op, err)
	}

	return stdout.Bytes(), nil
}
