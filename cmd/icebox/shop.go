// Shop commands manage the shopping list and the restock flow that moves
// purchased items into the freezer.
package main

import (
	"bufio"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/frostkeep/icebox/pkg/reconcile"
	"github.com/frostkeep/icebox/pkg/types"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Manage the shopping list",
}

var (
	shopQuantity float64
	shopUnit     string
	shopNotes    string
)

var shopAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an item to the shopping list",
	Args:  cobra.ExactArgs(1),
	RunE:  runShopAdd,
}

var shopListCmd = &cobra.Command{
	Use:   "list",
	Short: "List shopping list items",
	Args:  cobra.NoArgs,
	RunE:  runShopList,
}

var shopCheckCmd = &cobra.Command{
	Use:   "check <id>",
	Short: "Mark a shopping list item as purchased",
	Args:  cobra.ExactArgs(1),
	RunE:  runShopToggle,
}

var shopUncheckCmd = &cobra.Command{
	Use:   "uncheck <id>",
	Short: "Unmark a purchased shopping list item",
	Args:  cobra.ExactArgs(1),
	RunE:  runShopToggle,
}

var shopRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a shopping list item",
	Args:  cobra.ExactArgs(1),
	RunE:  runShopRm,
}

var shopClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all purchased items from the list",
	Args:  cobra.NoArgs,
	RunE:  runShopClear,
}

var shopRestockCmd = &cobra.Command{
	Use:   "restock",
	Short: "Move purchased items into the freezer",
	Long: `Restock walks the purchased (checked) shopping list items. Items already
in the freezer have their stock incremented by the purchased quantity;
unknown items prompt for a category so they can be added as new freezer
items, or skipped.`,
	Args: cobra.NoArgs,
	RunE: runShopRestock,
}

func init() {
	shopAddCmd.Flags().Float64Var(&shopQuantity, "quantity", 1, "quantity to buy")
	shopAddCmd.Flags().StringVar(&shopUnit, "unit", "", "unit of measure")
	shopAddCmd.Flags().StringVar(&shopNotes, "notes", "", "free-form notes")

	shopCmd.AddCommand(shopAddCmd)
	shopCmd.AddCommand(shopListCmd)
	shopCmd.AddCommand(shopCheckCmd)
	shopCmd.AddCommand(shopUncheckCmd)
	shopCmd.AddCommand(shopRmCmd)
	shopCmd.AddCommand(shopClearCmd)
	shopCmd.AddCommand(shopRestockCmd)
}

func runShopAdd(cmd *cobra.Command, args []string) error {
	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}
	list, err := shoppingListStore(dataDir)
	if err != nil {
		return err
	}

	item := &types.ShoppingListItem{
		Name:     args[0],
		Quantity: shopQuantity,
		Unit:     shopUnit,
		Notes:    shopNotes,
	}
	id, err := list.Add(item)
	if err != nil {
		return err
	}
	fmt.Println("Added to shopping list:", id)
	return nil
}

func runShopList(cmd *cobra.Command, args []string) error {
	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}
	list, err := shoppingListStore(dataDir)
	if err != nil {
		return err
	}

	items := list.Items()
	if flagJSON {
		return printJSON(items)
	}
	if len(items) == 0 {
		fmt.Println("Shopping list is empty.")
		return nil
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tQTY\tUNIT\tPURCHASED")
	for _, item := range items {
		purchased := ""
		if item.Checked {
			purchased = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%g\t%s\t%s\n",
			item.ShoppingListItemID, item.Name, item.Quantity, item.Unit, purchased)
	}
	w.Flush()
	fmt.Print(sb.String())
	return nil
}

func runShopToggle(cmd *cobra.Command, args []string) error {
	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}
	list, err := shoppingListStore(dataDir)
	if err != nil {
		return err
	}

	if err := list.ToggleCheck(args[0]); err != nil {
		return err
	}
	fmt.Println("Toggled", args[0])
	return nil
}

func runShopRm(cmd *cobra.Command, args []string) error {
	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}
	list, err := shoppingListStore(dataDir)
	if err != nil {
		return err
	}

	if err := list.Delete(args[0]); err != nil {
		return err
	}
	fmt.Println("Removed", args[0])
	return nil
}

func runShopClear(cmd *cobra.Command, args []string) error {
	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}
	list, err := shoppingListStore(dataDir)
	if err != nil {
		return err
	}

	if err := list.ClearChecked(); err != nil {
		return err
	}
	fmt.Println("Cleared purchased items.")
	return nil
}

func runShopRestock(cmd *cobra.Command, args []string) error {
	backend, dataDir, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	items, err := foodItemStore(backend)
	if err != nil {
		return err
	}
	list, err := shoppingListStore(dataDir)
	if err != nil {
		return err
	}

	checked := list.Checked()
	if len(checked) == 0 {
		fmt.Println("No purchased items to restock.")
		return nil
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	r := reconcile.New(items, list)

	fmt.Printf("Move %d purchased item(s) into the freezer? [y/N] ", len(checked))
	if !readYes(reader) {
		if err := r.Reject(); err != nil {
			return err
		}
		fmt.Println("Purchased items cleared; freezer untouched.")
		return nil
	}

	if err := r.Start(checked); err != nil {
		return err
	}

	for r.State() == reconcile.AwaitingDetail {
		draft := r.Current()
		fmt.Printf("%q is not in the freezer yet.\n", draft.Name)
		fmt.Print("Category ID to add it (empty to skip): ")
		category, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read category: %w", err)
		}
		category = strings.TrimSpace(category)

		if category == "" {
			if err := r.ResolveCurrent(reconcile.DecisionCancel, nil); err != nil {
				return err
			}
			continue
		}

		draft.Category = category
		if err := r.ResolveCurrent(reconcile.DecisionSave, draft); err != nil {
			fmt.Println("Could not add item:", err)
		}
	}

	for _, failure := range r.Failures() {
		fmt.Printf("Failed to update %q: %v\n", failure.Name, failure.Err)
	}
	for _, name := range r.Skipped() {
		fmt.Printf("Skipped %q.\n", name)
	}
	fmt.Println("Restock complete.")
	return nil
}

// readYes reads one line and reports whether it is an affirmative answer.
func readYes(reader *bufio.Reader) bool {
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "s", "sim":
		return true
	}
	return false
}
