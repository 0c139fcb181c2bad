package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "compose",
	Short: "Tools for trying out header composition",
}

func Execute() error {
	return rootCmd.Execute()
}
