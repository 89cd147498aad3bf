// Package cmd implements the scmctl admin CLI, a plain-text front end over
// the supply chain API.
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spec-kit/supplychain-service/internal/config"
	"github.com/spec-kit/supplychain-service/internal/credential"
	"github.com/spec-kit/supplychain-service/internal/gateway"
	"github.com/spec-kit/supplychain-service/internal/observability"
	"github.com/spec-kit/supplychain-service/internal/session"
)

// app bundles the wired client stack shared by all commands.
type app struct {
	cfg     *config.ClientConfig
	logger  *zap.Logger
	client  *gateway.Client
	store   *session.Store
	sink    *session.RemoteSink
	inv     *gateway.Inventory
	sup     *gateway.Suppliers
	ord     *gateway.Orders
	search  *gateway.Search
	audit   *gateway.Activity
}

func newApp() (*app, error) {
	cfg, err := config.LoadClient()
	if err != nil {
		return nil, err
	}
	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return nil, err
	}

	creds := credential.NewFileStore(cfg.CredentialsFile)
	client := gateway.NewClient(cfg.BaseURL, cfg.Timeout(), creds, logger)
	audit := gateway.NewActivity(client)
	sink := session.NewRemoteSink(audit, logger, 64)

	return &app{
		cfg:    cfg,
		logger: logger,
		client: client,
		store:  session.NewStore(client, creds, sink, logger),
		sink:   sink,
		inv:    gateway.NewInventory(client),
		sup:    gateway.NewSuppliers(client),
		ord:    gateway.NewOrders(client),
		search: gateway.NewSearch(client),
		audit:  audit,
	}, nil
}

func (a *app) close() {
	if a.sink != nil {
		a.sink.Close()
	}
	_ = a.logger.Sync()
}

// requireSession restores the persisted session and fails the command when
// nobody is logged in.
func (a *app) requireSession(ctx context.Context) error {
	if err := a.store.Restore(ctx); err != nil {
		return fmt.Errorf("not logged in: %w", err)
	}
	if _, ok := a.store.Current(); !ok {
		return fmt.Errorf("not logged in: run 'scmctl login' first")
	}
	return nil
}

// Execute runs the CLI.
func Execute() error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	rootCmd := &cobra.Command{
		Use:           "scmctl",
		Short:         "Supply chain management admin CLI",
		Long:          "scmctl manages inventory, suppliers and orders against the supply chain API.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newInventoryCmd(a),
		newSuppliersCmd(a),
		newOrdersCmd(a),
		newSearchCmd(a),
		newActivityCmd(a),
		newExportCmd(a),
	)

	return rootCmd.Execute()
}
