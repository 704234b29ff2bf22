package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"
)

// isTerminal reports whether stdin is a terminal (not piped/redirected).
func isTerminal() bool {
	return term.IsTerminal(int(syscall.Stdin))
}

// readPassword prompts on stderr and reads a password from stdin without
// echoing it, falling back to a plain buffered read when stdin isn't a
// terminal (scripts, pipes).
func readPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	if !isTerminal() {
		reader := bufio.NewReader(os.Stdin)
		pw, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return strings.TrimSuffix(strings.TrimSuffix(pw, "\n"), "\r"), nil
	}

	pw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(pw), nil
}

// PromptPassword asks the user for the vault's master password.
func PromptPassword() (string, error) {
	return readPassword("Master password: ")
}
