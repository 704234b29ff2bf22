package cli

import (
	"fmt"

	"github.com/opvault-core/opvault-core/internal/folder"
	"github.com/spf13/cobra"
)

var listFoldersCmd = &cobra.Command{
	Use:   "list-folders <folders.js>",
	Short: "Parse and print an op-vault folders.js",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		folders, err := folder.LoadMap(args[0])
		if err != nil {
			return err
		}
		for _, f := range folders {
			fmt.Printf("%+v\n", f)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listFoldersCmd)
}
