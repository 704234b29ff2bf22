package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/opvault-core/opvault-core/internal/agilekeychain"
	"github.com/spf13/cobra"
)

const defaultKeychainRelPath = "Dropbox/1Password/1Password.agilekeychain"

func defaultKeychainPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, defaultKeychainRelPath), nil
}

var listAttachmentsCmd = &cobra.Command{
	Use:   "list-attachments",
	Short: "List attachments in the default agile-keychain",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		keychainPath, err := defaultKeychainPath()
		if err != nil {
			return err
		}
		archive, err := agilekeychain.WithKeychainPath(keychainPath)
		if err != nil {
			return err
		}
		for _, a := range archive.Attachments() {
			fmt.Printf("%s %s\n", a.UUID, a.Metadata.FileName)
		}
		return nil
	},
}

var exportAttachmentsCmd = &cobra.Command{
	Use:   "export-attachments",
	Short: "Export attachments from the default agile-keychain",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Not implemented in original_source/src/cli.rs either — left as a
		// stub rather than inventing an export format spec.md doesn't pin
		// down (see SPEC_FULL.md §8).
		fmt.Println("Not yet implemented")
		return nil
	},
}

func init() {
	exportAttachmentsCmd.Flags().StringP("uuid", "u", "", "item UUID to export")
	rootCmd.AddCommand(listAttachmentsCmd)
	rootCmd.AddCommand(exportAttachmentsCmd)
}
