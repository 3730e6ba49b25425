// Package cmd is the CLI entry: the root command runs the workspace UI.
package cmd

import (
	"fmt"
	"os"

	"portside/app"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var autoConnectFlag string

var rootCmd = &cobra.Command{
	Use:   "portside",
	Short: "Terminal workspace with connection profiles and a file browser",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("portside must be run from a terminal")
		}
		return app.Run(autoConnectFlag)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVar(&autoConnectFlag, "autoconnect", "",
		"profile id to connect on startup")
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
