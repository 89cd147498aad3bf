package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/spec-kit/supplychain-service/internal/api/dto"
	"github.com/spec-kit/supplychain-service/internal/domain"
)

func newOrdersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Manage purchase orders",
	}
	cmd.AddCommand(
		newOrdersListCmd(a),
		newOrdersGetCmd(a),
		newOrdersCreateCmd(a),
		newOrdersUpdateCmd(a),
	)
	return cmd
}

func newOrdersListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			orders, err := a.ord.List(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tSTATUS\tTOTAL\tSUPPLIER")
			for _, o := range orders {
				fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%d\n",
					o.ID, o.OrderDate.Format("2006-01-02"), o.Status, o.TotalAmount, o.SupplierID)
			}
			return w.Flush()
		},
	}
}

func newOrdersGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one order with its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			order, err := a.ord.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("Order %d  %s  %s  total %.2f  supplier %d\n",
				order.ID, order.OrderDate.Format("2006-01-02"), order.Status, order.TotalAmount, order.SupplierID)
			for _, item := range order.Items {
				fmt.Printf("  item %d: inventory %d x%d @ %.2f\n", item.ID, item.InventoryID, item.Quantity, item.UnitPrice)
			}
			return nil
		},
	}
}

// parseOrderItem parses "inventoryID:quantity:unitPrice".
func parseOrderItem(raw string) (dto.OrderItemRequest, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 3 {
		return dto.OrderItemRequest{}, fmt.Errorf("item %q must be inventoryID:quantity:unitPrice", raw)
	}
	invID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return dto.OrderItemRequest{}, fmt.Errorf("item %q: bad inventory id", raw)
	}
	qty, err := strconv.Atoi(parts[1])
	if err != nil {
		return dto.OrderItemRequest{}, fmt.Errorf("item %q: bad quantity", raw)
	}
	price, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return dto.OrderItemRequest{}, fmt.Errorf("item %q: bad unit price", raw)
	}
	return dto.OrderItemRequest{InventoryID: invID, Quantity: qty, UnitPrice: price}, nil
}

func newOrdersCreateCmd(a *app) *cobra.Command {
	var supplierID int64
	var rawItems []string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Place an order",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			if supplierID == 0 || len(rawItems) == 0 {
				return fmt.Errorf("--supplier and at least one --item are required")
			}

			req := dto.OrderCreateRequest{SupplierID: supplierID}
			for _, raw := range rawItems {
				item, err := parseOrderItem(raw)
				if err != nil {
					return err
				}
				req.Items = append(req.Items, item)
			}

			order, err := a.ord.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Printf("Created order %d, total %.2f\n", order.ID, order.TotalAmount)
			a.store.LogActivity("order_placed", fmt.Sprintf("order %d", order.ID))
			return nil
		},
	}
	cmd.Flags().Int64Var(&supplierID, "supplier", 0, "supplier id")
	cmd.Flags().StringArrayVar(&rawItems, "item", nil, "order line as inventoryID:quantity:unitPrice (repeatable)")
	return cmd
}

func newOrdersUpdateCmd(a *app) *cobra.Command {
	var status string
	var supplierID int64
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change an order's status or supplier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}

			var req dto.OrderUpdateRequest
			if cmd.Flags().Changed("status") {
				s := domain.OrderStatus(status)
				req.Status = &s
			}
			if cmd.Flags().Changed("supplier") {
				req.SupplierID = &supplierID
			}
			if req.Status == nil && req.SupplierID == nil {
				return fmt.Errorf("nothing to update: pass --status or --supplier")
			}

			order, err := a.ord.Update(cmd.Context(), id, req)
			if err != nil {
				return err
			}
			fmt.Printf("Updated order %d (status %s)\n", order.ID, order.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "new status: pending, completed or cancelled")
	cmd.Flags().Int64Var(&supplierID, "supplier", 0, "new supplier id")
	return cmd
}
