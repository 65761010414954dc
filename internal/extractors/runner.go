package extractors

import (
	"bytes"
	"context"
	"os/exec"
)

// CommandRunner abstracts external tool invocation so extractors can be
// tested without the tool installed.
type CommandRunner interface {
	// Run executes the named tool with input on stdin and returns stdout.
	Run(ctx context.Context, input []byte, name string, args ...string) ([]byte, error)
}

// ExecRunner runs tools via os/exec.
type ExecRunner struct{}

// Run executes the named tool with input on stdin and returns stdout.
func (ExecRunner) Run(ctx context.Context, input []byte, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = bytes.NewReader(input)
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// ToolAvailable reports whether the named tool is on PATH.
func ToolAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
