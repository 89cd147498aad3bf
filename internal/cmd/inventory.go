package cmd

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/spec-kit/supplychain-service/internal/api/dto"
)

func newInventoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Manage inventory items",
	}
	cmd.AddCommand(
		newInventoryListCmd(a),
		newInventoryGetCmd(a),
		newInventoryCreateCmd(a),
		newInventoryUpdateCmd(a),
		newInventoryDeleteCmd(a),
	)
	return cmd
}

func newInventoryListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List inventory items",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			items, err := a.inv.List(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tPRODUCT\tQTY\tPRICE\tCATEGORY\tLOCATION")
			for _, item := range items {
				fmt.Fprintf(w, "%d\t%s\t%d\t%.2f\t%s\t%s\n",
					item.ID, item.ProductName, item.Quantity, item.UnitPrice, item.Category, item.Location)
			}
			return w.Flush()
		},
	}
}

func newInventoryGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one inventory item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			item, err := a.inv.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("ID:          %d\nProduct:     %s\nDescription: %s\nQuantity:    %d\nUnit price:  %.2f\nCategory:    %s\nLocation:    %s\n",
				item.ID, item.ProductName, item.Description, item.Quantity, item.UnitPrice, item.Category, item.Location)
			return nil
		},
	}
}

func inventoryFlags(cmd *cobra.Command, req *dto.InventoryRequest) {
	cmd.Flags().StringVar(&req.ProductName, "name", "", "product name")
	cmd.Flags().StringVar(&req.Description, "description", "", "description")
	cmd.Flags().IntVar(&req.Quantity, "quantity", 0, "stock quantity")
	cmd.Flags().Float64Var(&req.UnitPrice, "price", 0, "unit price")
	cmd.Flags().StringVar(&req.Category, "category", "", "category")
	cmd.Flags().StringVar(&req.Location, "location", "", "warehouse location")
}

func newInventoryCreateCmd(a *app) *cobra.Command {
	var req dto.InventoryRequest
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an inventory item",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			if req.ProductName == "" {
				return fmt.Errorf("--name is required")
			}
			item, err := a.inv.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Printf("Created inventory item %d\n", item.ID)
			a.store.LogActivity("inventory_created", item.ProductName)
			return nil
		},
	}
	inventoryFlags(cmd, &req)
	return cmd
}

func newInventoryUpdateCmd(a *app) *cobra.Command {
	var req dto.InventoryRequest
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an inventory item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			item, err := a.inv.Update(cmd.Context(), id, req)
			if err != nil {
				return err
			}
			fmt.Printf("Updated inventory item %d\n", item.ID)
			return nil
		},
	}
	inventoryFlags(cmd, &req)
	return cmd
}

func newInventoryDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an inventory item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			if err := a.inv.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Deleted inventory item %d\n", id)
			return nil
		},
	}
}
