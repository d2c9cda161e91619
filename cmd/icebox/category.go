// Category commands manage item categories.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/frostkeep/icebox/pkg/types"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage item categories",
}

var categoryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a category",
	Long: `Add a category. The stable ID is derived from the name: uppercased,
with whitespace collapsed to underscores.

Example:
  icebox category add "Carnes Nobres"`,
	Args: cobra.ExactArgs(1),
	RunE: runCategoryAdd,
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	Args:  cobra.NoArgs,
	RunE:  runCategoryList,
}

var categoryRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a custom category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryRm,
}

func init() {
	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryRmCmd)
}

func runCategoryAdd(cmd *cobra.Command, args []string) error {
	backend, _, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	categories, err := categoryStore(backend)
	if err != nil {
		return err
	}

	id, err := categories.Add(args[0])
	if err != nil {
		if msg := categories.Message(); msg != "" {
			return fmt.Errorf("%s", msg)
		}
		return err
	}
	fmt.Println("Added category", id)
	return nil
}

func runCategoryList(cmd *cobra.Command, args []string) error {
	backend, _, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	categories, err := categoryStore(backend)
	if err != nil {
		return err
	}

	list := categories.Categories()
	if flagJSON {
		return printJSON(list)
	}
	printCategoryTable(list)
	return nil
}

func runCategoryRm(cmd *cobra.Command, args []string) error {
	backend, _, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	categories, err := categoryStore(backend)
	if err != nil {
		return err
	}

	if err := categories.Delete(args[0]); err != nil {
		if msg := categories.Message(); msg != "" {
			return fmt.Errorf("%s", msg)
		}
		return err
	}
	fmt.Println("Removed category", args[0])
	return nil
}

func printCategoryTable(categories []*types.Category) {
	if len(categories) == 0 {
		fmt.Println("No categories found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDEFAULT")
	for _, c := range categories {
		isDefault := ""
		if c.IsDefault {
			isDefault = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", c.CategoryID, c.Name, isDefault)
	}
	w.Flush()
	fmt.Print(sb.String())
}
