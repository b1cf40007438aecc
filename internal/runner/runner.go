// Package runner executes a fully resolved command string through the
// configured shell. A non-zero exit is informational, not an application
// error: callers report the code and return to the session loop.
package runner

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"
)

// ExecConfig contains configuration for executing a resolved command.
type ExecConfig struct {
	Command       string            // Fully resolved command text
	Shell         string            // Shell to use (bash, zsh, sh, pwsh)
	CWD           string            // Working directory
	Env           map[string]string // Extra environment variables
	Stream        bool              // Attach the controlling terminal directly
	DangerChecker *DangerChecker    // Optional dangerous command checking
	AutoConfirm   bool              // Skip the danger confirmation prompt
}

// ExecResult contains the result of executing a command.
type ExecResult struct {
	Command   string
	ExitCode  int
	Success   bool
	Output    string // Captured output (empty when streaming)
	Duration  time.Duration
	Dangerous bool
	Danger    *DangerInfo
	Canceled  bool
	Err       error
}

// exitCanceled is reported when the user declines a danger confirmation.
const exitCanceled = 13

// Exec executes a single resolved command with the given configuration.
func Exec(ctx context.Context, config ExecConfig) ExecResult {
	startTime := time.Now()

	result := ExecResult{Command: config.Command}

	if strings.TrimSpace(config.Command) == "" {
		result.Err = fmt.Errorf("empty command")
		result.ExitCode = 1
		result.Duration = time.Since(startTime)
		return result
	}

	if config.DangerChecker != nil {
		danger := config.DangerChecker.Check(config.Command)
		result.Dangerous = danger != nil
		result.Danger = danger

		if danger != nil {
			if config.AutoConfirm {
				fmt.Fprintf(os.Stderr, "Warning: %s\n", danger.Warning())
			} else {
				confirmed, err := danger.Confirm()
				if err != nil {
					result.Err = err
					result.ExitCode = 1
					result.Duration = time.Since(startTime)
					return result
				}
				if !confirmed {
					result.Canceled = true
					result.ExitCode = exitCanceled
					result.Duration = time.Since(startTime)
					return result
				}
			}
		}
	}

	shell := config.Shell
	if shell == "" {
		shell = "bash"
	}

	cmd := exec.CommandContext(ctx, shell, "-c", config.Command)

	if config.CWD != "" {
		cmd.Dir = config.CWD
	}

	if len(config.Env) > 0 {
		cmd.Env = append([]string{}, os.Environ()...)
		for k, v := range config.Env {
			cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
		}
	}

	if config.Stream {
		// Inherit the controlling terminal so interactive commands work.
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr

		err := cmd.Run()
		result.Duration = time.Since(startTime)
		if err != nil {
			if exitErr, ok := err.(*exec.ExitError); ok {
				result.ExitCode = getExitCode(exitErr)
			} else {
				result.Err = err
				result.ExitCode = 1
			}
			return result
		}
		result.Success = true
		return result
	}

	// Capture mode
	out, err := cmd.CombinedOutput()
	result.Output = string(out)
	result.Duration = time.Since(startTime)
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = getExitCode(exitErr)
		} else {
			result.Err = err
			result.ExitCode = 1
		}
		return result
	}
	result.Success = true
	return result
}

// getExitCode extracts the exit code from an exec.ExitError.
func getExitCode(err *exec.ExitError) int {
	if status, ok := err.Sys().(syscall.WaitStatus); ok {
		return status.ExitStatus()
	}
	return 1
}
