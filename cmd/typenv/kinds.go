package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sagarc03/typenv"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the supported conversion kinds",
	Run: func(cmd *cobra.Command, args []string) {
		for _, kind := range typenv.Kinds() {
			fmt.Fprintln(cmd.OutOrStdout(), kind)
		}
	},
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}
