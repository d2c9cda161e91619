// Item commands manage the freezer inventory.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/frostkeep/icebox/pkg/query"
	"github.com/frostkeep/icebox/pkg/types"
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage freezer items",
}

var (
	itemName     string
	itemCategory string
	itemQuantity int
	itemExpires  string
	itemDrawer   int
	itemSection  string
	itemNotes    string

	itemListSearch   string
	itemListCategory string
	itemListGrouped  bool
	itemListRecent   int
)

var itemAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a food item to the freezer",
	Long: `Add a food item to the freezer inventory.

Example:
  icebox item add --name "Frango" --category CARNES --quantity 2
  icebox item add --name "Sopa" --category CALDOS --quantity 4 --drawer 2 --expires 2026-12-01`,
	Args: cobra.NoArgs,
	RunE: runItemAdd,
}

var itemListCmd = &cobra.Command{
	Use:   "list",
	Short: "List freezer items",
	Long: `List freezer items, optionally filtered.

Example:
  icebox item list
  icebox item list --search frango
  icebox item list --category CARNES
  icebox item list --grouped
  icebox item list --recent 5`,
	Args: cobra.NoArgs,
	RunE: runItemList,
}

var itemUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a freezer item",
	Args:  cobra.ExactArgs(1),
	RunE:  runItemUpdate,
}

var itemRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a freezer item",
	Args:  cobra.ExactArgs(1),
	RunE:  runItemRm,
}

func init() {
	for _, cmd := range []*cobra.Command{itemAddCmd, itemUpdateCmd} {
		cmd.Flags().StringVar(&itemName, "name", "", "item name")
		cmd.Flags().StringVar(&itemCategory, "category", "", "category ID")
		cmd.Flags().IntVar(&itemQuantity, "quantity", -1, "quantity in the freezer")
		cmd.Flags().StringVar(&itemExpires, "expires", "", "expiration date (YYYY-MM-DD)")
		cmd.Flags().IntVar(&itemDrawer, "drawer", 0, "freezer drawer number")
		cmd.Flags().StringVar(&itemSection, "section", "", "freezer section")
		cmd.Flags().StringVar(&itemNotes, "notes", "", "free-form notes")
	}
	itemAddCmd.MarkFlagRequired("name")
	itemAddCmd.MarkFlagRequired("category")

	itemListCmd.Flags().StringVar(&itemListSearch, "search", "", "filter by name substring")
	itemListCmd.Flags().StringVar(&itemListCategory, "category", "", "filter by category ID")
	itemListCmd.Flags().BoolVar(&itemListGrouped, "grouped", false, "group results by category")
	itemListCmd.Flags().IntVar(&itemListRecent, "recent", 0, "show only the N most recently added items")

	itemCmd.AddCommand(itemAddCmd)
	itemCmd.AddCommand(itemListCmd)
	itemCmd.AddCommand(itemUpdateCmd)
	itemCmd.AddCommand(itemRmCmd)
}

func runItemAdd(cmd *cobra.Command, args []string) error {
	backend, _, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	items, err := foodItemStore(backend)
	if err != nil {
		return err
	}

	quantity := itemQuantity
	if quantity < 0 {
		quantity = 1
	}
	item := &types.FoodItem{
		Name:     itemName,
		Category: itemCategory,
		Quantity: quantity,
		Notes:    itemNotes,
	}
	if err := applyItemLocation(item); err != nil {
		return err
	}

	id, err := items.Add(item)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(item)
	}
	fmt.Println("Added item", id)
	return nil
}

func runItemList(cmd *cobra.Command, args []string) error {
	backend, _, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	items, err := foodItemStore(backend)
	if err != nil {
		return err
	}

	all := items.Items()

	if itemListRecent > 0 {
		recent := query.RecentItems(all, itemListRecent)
		if flagJSON {
			return printJSON(recent)
		}
		printItemTable(recent)
		return nil
	}

	filters := query.Filters{SearchTerm: itemListSearch, Category: itemListCategory}
	if itemListGrouped {
		groups := query.GroupItems(all, filters)
		if flagJSON {
			return printJSON(groups)
		}
		printItemGroups(groups)
		return nil
	}

	filtered := query.FilterItems(all, filters)
	if flagJSON {
		return printJSON(filtered)
	}
	printItemTable(filtered)
	return nil
}

func runItemUpdate(cmd *cobra.Command, args []string) error {
	backend, _, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	items, err := foodItemStore(backend)
	if err != nil {
		return err
	}

	item, err := items.Get(args[0])
	if err != nil {
		return fmt.Errorf("get item: %w", err)
	}

	if cmd.Flags().Changed("name") {
		item.Name = itemName
	}
	if cmd.Flags().Changed("category") {
		item.Category = itemCategory
	}
	if cmd.Flags().Changed("quantity") {
		item.Quantity = itemQuantity
	}
	if cmd.Flags().Changed("notes") {
		item.Notes = itemNotes
	}
	if cmd.Flags().Changed("expires") || cmd.Flags().Changed("drawer") || cmd.Flags().Changed("section") {
		if err := applyItemLocation(item); err != nil {
			return err
		}
	}

	if err := items.Update(item); err != nil {
		return err
	}

	if flagJSON {
		return printJSON(item)
	}
	fmt.Println("Updated item", item.FoodItemID)
	return nil
}

func runItemRm(cmd *cobra.Command, args []string) error {
	backend, _, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	items, err := foodItemStore(backend)
	if err != nil {
		return err
	}

	if err := items.Delete(args[0]); err != nil {
		return err
	}
	fmt.Println("Removed item", args[0])
	return nil
}

// applyItemLocation fills expiration and location fields from flags.
func applyItemLocation(item *types.FoodItem) error {
	if itemExpires != "" {
		expires, err := time.Parse("2006-01-02", itemExpires)
		if err != nil {
			return fmt.Errorf("parse --expires: %w", err)
		}
		item.ExpirationDate = &expires
	}
	if itemDrawer > 0 || itemSection != "" {
		item.Location = &types.FreezerLocation{Drawer: itemDrawer, Section: itemSection}
	}
	return nil
}

func printItemTable(items []*types.FoodItem) {
	if len(items) == 0 {
		fmt.Println("No items found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tQTY\tEXPIRES\tADDED")
	for _, item := range items {
		expires := ""
		if item.ExpirationDate != nil {
			expires = formatDate(*item.ExpirationDate)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
			item.FoodItemID, item.Name, item.Category, item.Quantity,
			expires, formatDate(item.DateAdded))
	}
	w.Flush()
	fmt.Print(sb.String())
}

func printItemGroups(groups []query.Group) {
	if len(groups) == 0 {
		fmt.Println("No items found.")
		return
	}
	for i, group := range groups {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s:\n", group.Category)
		printItemTable(group.Items)
	}
}
