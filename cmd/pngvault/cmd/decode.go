package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/averett/pngvault/pkg/png"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode <file> [chunk-type]",
	Short: "Read a secret message from a PNG file",
	Long: `Read a secret message from a PNG file. When the chunk type is
omitted, the default from the config file is used.

Example:
  pngvault decode cat.png ruSt`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		typeCode := cfg.Defaults.ChunkType
		if len(args) == 2 {
			typeCode = args[1]
		}

		p, err := png.ReadFile(path)
		if err != nil {
			return err
		}

		secret := p.ChunkByType(typeCode)
		if secret == nil {
			fmt.Println("No secret found :(")
			return nil
		}

		message, err := secret.DataAsText()
		if err != nil {
			return err
		}

		fmt.Println(message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
