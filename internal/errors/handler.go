// Package errors provides user-facing message handling for CLI and TUI
// contexts. The store and feed never surface failures as errors; what flows
// through here are transient status messages.
package errors

// ErrorHandler is the interface for user-facing message handling.
// Different implementations route messages differently based on context.
type ErrorHandler interface {
	Error(msg string)
	Warning(msg string)
	Info(msg string)
	Success(msg string)
}

// ColorOutput is the console output surface the CLI handler writes to.
type ColorOutput interface {
	Error(msgs ...string)
	Warning(msgs ...string)
	Info(msgs ...string)
	Success(msgs ...string)
}

// CLIHandler handles messages by printing to stdout/stderr through a ColorOutput.
type CLIHandler struct {
	colors ColorOutput
}

// NewCLIHandler creates a CLI handler writing to the given output.
func NewCLIHandler(colors ColorOutput) *CLIHandler {
	return &CLIHandler{colors: colors}
}

func (h *CLIHandler) Error(msg string) {
	h.colors.Error(msg)
}

func (h *CLIHandler) Warning(msg string) {
	h.colors.Warning(msg)
}

func (h *CLIHandler) Info(msg string) {
	h.colors.Info(msg)
}

func (h *CLIHandler) Success(msg string) {
	h.colors.Success(msg)
}
