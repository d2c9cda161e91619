// Widgets commands manage the dashboard widget order preference.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var widgetsCmd = &cobra.Command{
	Use:   "widgets",
	Short: "Manage the dashboard widget order",
}

var widgetsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current widget order",
	Args:  cobra.NoArgs,
	RunE:  runWidgetsShow,
}

var widgetsSetCmd = &cobra.Command{
	Use:   "set <widget> <widget> <widget>",
	Short: "Set the widget order",
	Long: `Set the dashboard widget order. All three widgets must appear exactly
once: shopping-list, search, recent-items.

Example:
  icebox widgets set recent-items shopping-list search`,
	Args: cobra.ExactArgs(3),
	RunE: runWidgetsSet,
}

var widgetsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default widget order",
	Args:  cobra.NoArgs,
	RunE:  runWidgetsReset,
}

func init() {
	widgetsCmd.AddCommand(widgetsShowCmd)
	widgetsCmd.AddCommand(widgetsSetCmd)
	widgetsCmd.AddCommand(widgetsResetCmd)
}

func runWidgetsShow(cmd *cobra.Command, args []string) error {
	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}

	order := preferencesStore(dataDir).WidgetOrder()
	if flagJSON {
		return printJSON(order)
	}
	fmt.Println(strings.Join(order, " "))
	return nil
}

func runWidgetsSet(cmd *cobra.Command, args []string) error {
	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}

	if err := preferencesStore(dataDir).UpdateWidgetOrder(args); err != nil {
		return err
	}
	fmt.Println("Widget order updated.")
	return nil
}

func runWidgetsReset(cmd *cobra.Command, args []string) error {
	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}

	if err := preferencesStore(dataDir).ResetToDefault(); err != nil {
		return err
	}
	fmt.Println("Widget order reset to default.")
	return nil
}
