package cmd

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/spec-kit/supplychain-service/internal/api/dto"
)

func newSuppliersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suppliers",
		Short: "Manage suppliers",
	}
	cmd.AddCommand(
		newSuppliersListCmd(a),
		newSuppliersCreateCmd(a),
		newSuppliersUpdateCmd(a),
		newSuppliersDeleteCmd(a),
	)
	return cmd
}

func newSuppliersListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List suppliers",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			suppliers, err := a.sup.List(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCONTACT\tEMAIL\tACTIVE")
			for _, s := range suppliers {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n", s.ID, s.Name, s.ContactName, s.Email, s.IsActive)
			}
			return w.Flush()
		},
	}
}

func supplierFlags(cmd *cobra.Command, req *dto.SupplierRequest) {
	cmd.Flags().StringVar(&req.Name, "name", "", "supplier name")
	cmd.Flags().StringVar(&req.ContactName, "contact", "", "contact person")
	cmd.Flags().StringVar(&req.Email, "email", "", "contact email")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&req.Address, "address", "", "postal address")
}

func newSuppliersCreateCmd(a *app) *cobra.Command {
	var req dto.SupplierRequest
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a supplier",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			if req.Name == "" {
				return fmt.Errorf("--name is required")
			}
			supplier, err := a.sup.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Printf("Created supplier %d\n", supplier.ID)
			a.store.LogActivity("supplier_created", supplier.Name)
			return nil
		},
	}
	supplierFlags(cmd, &req)
	return cmd
}

func newSuppliersUpdateCmd(a *app) *cobra.Command {
	var req dto.SupplierRequest
	var inactive bool
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a supplier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			if cmd.Flags().Changed("inactive") {
				active := !inactive
				req.IsActive = &active
			}
			supplier, err := a.sup.Update(cmd.Context(), id, req)
			if err != nil {
				return err
			}
			fmt.Printf("Updated supplier %d\n", supplier.ID)
			return nil
		},
	}
	supplierFlags(cmd, &req)
	cmd.Flags().BoolVar(&inactive, "inactive", false, "mark the supplier inactive")
	return cmd
}

func newSuppliersDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a supplier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			if err := a.sup.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Deleted supplier %d\n", id)
			return nil
		},
	}
}
