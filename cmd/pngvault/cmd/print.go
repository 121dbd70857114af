package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/averett/pngvault/pkg/png"
)

// printCmd represents the print command
var printCmd = &cobra.Command{
	Use:   "print <file>",
	Short: "List the chunks of a PNG file",
	Long: `Parse a PNG file and print a listing of its chunks: type codes,
payload lengths, and checksums.

Example:
  pngvault print cat.png`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := png.ReadFile(args[0])
		if err != nil {
			return err
		}

		fmt.Print(p)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(printCmd)
}
