// Package errors provides sentinel errors and custom error types for the devctl application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrDetachedHead indicates that HEAD is not on a branch
	ErrDetachedHead = errors.New("detached HEAD")

	// ErrBranchExists indicates that a branch already exists locally
	ErrBranchExists = errors.New("branch already exists")

	// ErrStateNotFound indicates that no sync state has been recorded yet
	ErrStateNotFound = errors.New("state file not found")

	// ErrUnknownRepo indicates that a repo name is not present in the config
	ErrUnknownRepo = errors.New("unknown repo")
)

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// Diagnostic returns the short single-line message shown in per-repo
// reports: stderr if the command produced any, then stdout, then the
// underlying exec error.
func (e *GitCommandError) Diagnostic() string {
	if s := strings.TrimSpace(e.Stderr); s != "" {
		return firstLine(s)
	}
	if s := strings.TrimSpace(e.Stdout); s != "" {
		return firstLine(s)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "non-zero exit"
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// BranchExistsError represents an error when a branch already exists locally
// and --force was not given
type BranchExistsError struct {
	Repo       string
	BranchName string
}

func (e *BranchExistsError) Error() string {
	return fmt.Sprintf("%s: branch '%s' already exists locally (use --force to check it out and re-push)",
		e.Repo, e.BranchName)
}

// Is returns true if the target error is ErrBranchExists
func (e *BranchExistsError) Is(target error) bool {
	return target == ErrBranchExists
}

// NewBranchExistsError creates a new BranchExistsError
func NewBranchExistsError(repo, branchName string) *BranchExistsError {
	return &BranchExistsError{Repo: repo, BranchName: branchName}
}

// UnknownRepoError represents a --repos filter naming repos that are not
// in the configuration
type UnknownRepoError struct {
	Names []string
}

func (e *UnknownRepoError) Error() string {
	return fmt.Sprintf("unknown repo(s): %s", strings.Join(e.Names, ", "))
}

// Is returns true if the target error is ErrUnknownRepo
func (e *UnknownRepoError) Is(target error) bool {
	return target == ErrUnknownRepo
}

// NewUnknownRepoError creates a new UnknownRepoError
func NewUnknownRepoError(names []string) *UnknownRepoError {
	return &UnknownRepoError{Names: names}
}
