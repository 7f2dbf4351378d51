package main

import (
	"github.com/spf13/cobra"

	"example.com/notes-store/internal/demo"
	"example.com/notes-store/internal/notes"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the scripted add/delete/list/update/get sequence",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	store := notes.NewStore(logger)
	return demo.Run(cmd.OutOrStdout(), store)
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
