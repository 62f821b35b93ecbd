package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

//go:generate swag init -d ../.. -g cmd/api/main.go -o ../../docs

var configPath string

var rootCmd = &cobra.Command{
	Use:           "homestead-api",
	Short:         "API de homestead-architect",
	SilenceUsage:  true,
	SilenceErrors: true,
	// sin subcomando => serve
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "archivo YAML de config (default: $CONFIG_FILE)")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

// @title Homestead Architect API
// @version 1.0
// @description API de gestión del homestead: propiedades, animales y reproducción.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
