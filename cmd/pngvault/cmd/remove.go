package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/averett/pngvault/pkg/png"
	"github.com/averett/pngvault/pkg/vault"
)

var removeTrack bool

// removeCmd represents the remove command
var removeCmd = &cobra.Command{
	Use:   "remove <file> [chunk-type]",
	Short: "Remove a secret message from a PNG file",
	Long: `Remove the first chunk of the given type from a PNG file and write
the file back. When the chunk type is omitted, the default from the config
file is used.

Example:
  pngvault remove cat.png ruSt`,
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

		removed, err := p.RemoveChunk(typeCode)
		if err != nil {
			return err
		}

		if err := png.WriteFile(path, p); err != nil {
			return err
		}

		if removeTrack {
			v, err := vault.Open(cfg.DataDir)
			if err != nil {
				return err
			}
			defer v.Close()

			// The file may never have been tracked; that is not a failure
			// of the removal itself.
			if err := v.Forget(path, typeCode); err != nil && !errors.Is(err, vault.ErrEntryNotFound) {
				return err
			}
		}

		fmt.Printf("Removed %s chunk (%d bytes) from %s\n", typeCode, removed.Length(), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
	removeCmd.Flags().BoolVar(&removeTrack, "track", false, "Drop the matching entry from the local vault catalog")
}
