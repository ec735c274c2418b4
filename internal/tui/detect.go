package tui

import (
	"os"

	"golang.org/x/term"
)

// NonInteractiveEnvVar forces non-interactive mode when set to 1.
const NonInteractiveEnvVar = "VENDORSUM_NON_INTERACTIVE"

// Mode represents the interaction mode of a command.
type Mode int

const (
	// ModeNonInteractive is used for CI/CD pipelines, scripts, and piped input.
	ModeNonInteractive Mode = iota
	// ModeInteractive is used when a human is at the terminal.
	ModeInteractive
)

// DetectMode determines whether vendorsum may prompt the user.
//
// Returns ModeNonInteractive if:
//   - VENDORSUM_NON_INTERACTIVE=1 is set
//   - CI is set
//   - stdin or stdout is not a terminal
func DetectMode() Mode {
	if os.Getenv(NonInteractiveEnvVar) == "1" {
		return ModeNonInteractive
	}
	if os.Getenv("CI") != "" {
		return ModeNonInteractive
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ModeNonInteractive
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModeNonInteractive
	}
	return ModeInteractive
}

// IsInteractive is a convenience function that returns true if running in interactive mode.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
