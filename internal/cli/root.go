// Package cli implements the command-line entry point over the op-vault
// and agile-keychain readers: subcommand dispatch, flag parsing, and
// password prompting. This is the "thin command-line entry point" spec.md
// §1 calls out as an external collaborator — the crypto core in
// internal/vault, internal/profile, internal/folder and
// internal/agilekeychain is reachable without it, but a real repo needs a
// binary over those packages (see SPEC_FULL.md §8).
package cli

import (
	"github.com/spf13/cobra"
)

// Version is set by main.go at build time.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "opvault-core",
	Short: "Read-only client for 1Password agile-keychain and op-vault containers",
	Long: `opvault-core reads, authenticates, and decrypts two on-disk password-vault
container formats: the legacy agile-keychain format and the newer op-vault
format. It never writes a vault back.

op-vault unlock uses:
  - PBKDF2-HMAC-SHA512 to derive a password key from the profile's salt and
    iteration count
  - AES-256-CBC + HMAC-SHA256 ("opdata01") to authenticate and decrypt the
    profile's master/overview key envelopes
  - SHA-512 of each decrypted envelope to derive the main keys used for all
    subsequent item decryption`,
	Version: Version,
}

// Execute runs the CLI application.
func Execute(version string) {
	Version = version
	rootCmd.Version = version
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
