// Package main provides the icebox CLI, a freezer inventory manager with
// categories, recipes, a shopping list, and dashboard preferences.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
