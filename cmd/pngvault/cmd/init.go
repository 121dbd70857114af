/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/averett/pngvault/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a pngvault config file with a generated API key",
	Long: `Create the pngvault configuration file, generating a fresh API key
for the REST API. This is required before running the server.

Examples:
  pngvault init
  pngvault init --data-dir=./vault-data
  pngvault init --config=./custom-config.yaml --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		dataDir, _ := cmd.Flags().GetString("data-dir")
		force, _ := cmd.Flags().GetBool("force")

		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}

		if config.ConfigExists(configPath) && !force {
			cmd.Printf("Config already exists at %s. Use --force to overwrite.\n", configPath)
			return nil
		}

		created, err := config.BootstrapConfig(configPath, dataDir)
		if err != nil {
			return err
		}

		cmd.Printf("Created config at %s\n", configPath)
		cmd.Printf("API key: %s\n", created.Security.APIKey)
		cmd.Printf("Vault data directory: %s\n", created.DataDir)
		cmd.Printf("\nYou can now start the server with:\n")
		cmd.Printf("  pngvault serve\n")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("data-dir", "", "Data directory for the vault catalog (default ./data)")
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}
