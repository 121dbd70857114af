package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/averett/pngvault/pkg/vault"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List secrets recorded in the local vault catalog",
	Long: `List the secrets previously embedded with --track, in the order
they were recorded.

Example:
  pngvault list`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := vault.Open(cfg.DataDir)
		if err != nil {
			return err
		}
		defer v.Close()

		entries, err := v.List()
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Println("No tracked secrets.")
			return nil
		}

		for _, e := range entries {
			fmt.Printf("%s  %s  %s  %d bytes  %s\n",
				e.ID, e.File, e.ChunkType, e.Length, e.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
