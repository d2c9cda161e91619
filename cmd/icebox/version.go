// Version command for the icebox CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frostkeep/icebox/pkg/icebox"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the icebox version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("icebox", icebox.Version)
	},
}
