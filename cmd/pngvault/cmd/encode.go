package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/averett/pngvault/pkg/chunk"
	"github.com/averett/pngvault/pkg/png"
	"github.com/averett/pngvault/pkg/vault"
)

var encodeTrack bool

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode <file> <chunk-type> <message>",
	Short: "Embed a secret message into a PNG file",
	Long: `Embed a secret message into a PNG file as a new chunk appended to
the end of the container.

Example:
  pngvault encode cat.png ruSt "meet me at dawn"
  pngvault encode cat.png ruSt "meet me at dawn" --track`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, typeCode, message := args[0], args[1], args[2]

		typ, err := chunk.TypeFromString(typeCode)
		if err != nil {
			return err
		}

		p, err := png.ReadFile(path)
		if err != nil {
			return err
		}

		p.AppendChunk(chunk.New(typ, []byte(message)))

		if err := png.WriteFile(path, p); err != nil {
			return err
		}

		if encodeTrack {
			v, err := vault.Open(cfg.DataDir)
			if err != nil {
				return err
			}
			defer v.Close()

			entry, err := v.Record(path, typeCode, len(message))
			if err != nil {
				return err
			}
			cmd.Printf("Tracked as %s\n", entry.ID)
		}

		fmt.Printf("Embedded %d bytes into %s as %s\n", len(message), path, typeCode)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().BoolVar(&encodeTrack, "track", false, "Record the embedded secret in the local vault catalog")
}
