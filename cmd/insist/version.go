package main

import (
	"fmt"

	"github.com/aretw0/insist"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of insist",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "insist version %s\n", insist.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
