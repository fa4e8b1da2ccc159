package restore

import (
	"context"
	"fmt"
	"os/exec"
)

// DefaultNotifyCommand is the desktop notification helper.
const DefaultNotifyCommand = "notify-send"

// ExecNotifier shows notifications by spawning a helper program with the
// summary and body as its two arguments. It does not wait for the helper.
type ExecNotifier struct {
	command string
}

// NewExecNotifier creates a notifier for command; "" means notify-send.
func NewExecNotifier(command string) *ExecNotifier {
	if command == "" {
		command = DefaultNotifyCommand
	}
	return &ExecNotifier{command: command}
}

// Notify implements Notifier. Only a failure to start the helper is
// reported.
func (n *ExecNotifier) Notify(_ context.Context, summary, body string) error {
	cmd := exec.Command(n.command, summary, body)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("restore: notify: %w", err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
