package cli

import (
	"fmt"

	"github.com/opvault-core/opvault-core/internal/profile"
	"github.com/spf13/cobra"
)

var dumpProfileCmd = &cobra.Command{
	Use:   "dump-profile <profile.js>",
	Short: "Parse and print an op-vault profile.js",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := profile.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%+v\n", *p)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpProfileCmd)
}
