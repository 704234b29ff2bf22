package cli

import (
	"fmt"

	"github.com/opvault-core/opvault-core/internal/vault"
	"github.com/spf13/cobra"
)

var unlockVaultCmd = &cobra.Command{
	Use:   "unlock-vault <vault-path>",
	Short: "Attempt to unlock an op-vault container",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lv, err := vault.New(args[0])
		if err != nil {
			return fmt.Errorf("loading vault: %w", err)
		}

		password, err := PromptPassword()
		if err != nil {
			return err
		}

		v, ok := lv.Unlock(password)
		if !ok {
			fmt.Println("Failed to unlock")
			return nil
		}
		defer v.Close()

		fmt.Println("Vault unlocked successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(unlockVaultCmd)
}
